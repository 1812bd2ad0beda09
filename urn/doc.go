// Package urn provides a generic Uniform Resource Name type.
//
// It only covers the outer `urn:<nid>:<nss>` grammar (RFC 2141) and the equivalence rules that go with it. Namespace-specific structure is left to packages built on top, such as nbn.
package urn
