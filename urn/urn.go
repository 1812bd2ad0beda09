package urn

import (
	"errors"
	"fmt"
	"strings"

	gourn "github.com/leodido/go-urn"
	"github.com/spaolacci/murmur3"
)

// Returned (wrapped) for any input which does not parse as a URN.
var ErrSyntax = errors.New("invalid URN syntax")

const maxLength = 8192

// Represents a syntactically valid URN, normalized for comparison: the "urn" prefix and namespace identifier are lower-case, and percent-encoded octets in the namespace specific string use lower-case hex.
//
// The namespace specific string is otherwise case-sensitive, so two values are equivalent exactly when they are == to each other.
//
// Always use [Parse] or [New] instead of the zero value.
type URN struct {
	nid string
	nss string
}

func Parse(raw string) (URN, error) {
	if raw == "" {
		return URN{}, fmt.Errorf("%w: expected URN, got empty string", ErrSyntax)
	}
	if len(raw) > maxLength {
		return URN{}, fmt.Errorf("%w: URN is too long (%d chars max)", ErrSyntax, maxLength)
	}
	u, ok := gourn.Parse([]byte(raw))
	if !ok {
		return URN{}, fmt.Errorf("%w: %q is not of the form urn:<nid>:<nss>", ErrSyntax, raw)
	}
	norm := u.Normalize()
	return URN{
		nid: strings.ToLower(norm.ID),
		nss: norm.SS,
	}, nil
}

// Builds a URN from a namespace identifier and namespace specific string. The parts go through the same grammar as [Parse].
func New(nid, nss string) (URN, error) {
	if nid == "" {
		return URN{}, fmt.Errorf("%w: empty namespace identifier", ErrSyntax)
	}
	if nss == "" {
		return URN{}, fmt.Errorf("%w: empty namespace specific string", ErrSyntax)
	}
	return Parse("urn:" + nid + ":" + nss)
}

// Namespace identifier, normalized to lower-case.
func (u URN) NID() string {
	return u.nid
}

// Namespace specific string.
func (u URN) NSS() string {
	return u.nss
}

func (u URN) IsZero() bool {
	return u == URN{}
}

func (u URN) Equal(other URN) bool {
	return u == other
}

// Returns a fast, compact hash of the normalized URN. Equal URNs always have equal hashes.
//
// current implementation uses murmur3 with the default seed
func (u URN) Hash() uint64 {
	return murmur3.Sum64([]byte(u.String()))
}

func (u URN) String() string {
	if u.IsZero() {
		return ""
	}
	return "urn:" + u.nid + ":" + u.nss
}

func (u URN) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *URN) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
