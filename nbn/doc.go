// Package nbn provides a strict value type for National Bibliography Number URNs (RFC 8458), such as `urn:nbn:de:bsz-47110815`.
//
// Parsing checks NBN-specific structure on top of the generic URN grammar from package urn. It does not resolve identifiers, or check country codes and subnamespace prefixes against any registry.
package nbn
