package nbn

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/slub/nbnurn/urn"
)

const NamespaceIdentifier = "nbn"

// Returned (wrapped) for every construction or parse failure, including failures of the underlying generic URN.
var ErrSyntax = errors.New("invalid NBN-URN syntax")

var (
	nssRegex    = regexp.MustCompile(`^(\w+)(:\w+)*-\w+$`)
	tokenRegex  = regexp.MustCompile(`^\w+$`)
	prefixRegex = regexp.MustCompile(`^\w+(:\w+)*$`)
)

// Represents a syntactically valid NBN-URN: `urn:nbn:<country-code>[:<subnamespace-prefix>]-<national-book-number>`.
//
// Values are immutable. Equality is that of the underlying generic URN (namespace identifier case-insensitive, everything else case-sensitive), so NBNURN values may be compared with == and used as map keys.
//
// Always use [Parse], [FromURN] or [New] instead of the zero value.
type NBNURN struct {
	countryCode        string
	subnamespacePrefix string
	nationalBookNumber string
	urn                urn.URN
}

// Builds an NBN-URN from its parts. An empty subnamespacePrefix means the segment is absent.
//
// Each part must be a word token (the prefix may join several with colons), so the accessors of the result return exactly the values passed in.
func New(countryCode, subnamespacePrefix, nationalBookNumber string) (NBNURN, error) {
	if !tokenRegex.MatchString(countryCode) {
		return NBNURN{}, fmt.Errorf("%w: country code %q is not a word token", ErrSyntax, countryCode)
	}
	if subnamespacePrefix != "" && !prefixRegex.MatchString(subnamespacePrefix) {
		return NBNURN{}, fmt.Errorf("%w: subnamespace prefix %q is not a colon-separated list of word tokens", ErrSyntax, subnamespacePrefix)
	}
	if !tokenRegex.MatchString(nationalBookNumber) {
		return NBNURN{}, fmt.Errorf("%w: national book number %q is not a word token", ErrSyntax, nationalBookNumber)
	}

	nss := countryCode + "-" + nationalBookNumber
	if subnamespacePrefix != "" {
		nss = countryCode + ":" + subnamespacePrefix + "-" + nationalBookNumber
	}
	u, err := urn.New(NamespaceIdentifier, nss)
	if err != nil {
		return NBNURN{}, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	return FromURN(u)
}

// Parses an NBN-URN literal, such as `urn:nbn:se:uu:diva-3475`.
func Parse(raw string) (NBNURN, error) {
	u, err := urn.Parse(raw)
	if err != nil {
		return NBNURN{}, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	return FromURN(u)
}

// Checks NBN structure of an already-parsed generic URN and splits out the parts.
//
// The namespace specific string is split on the first hyphen, and the left side on its first colon. Anything after that colon, further colons included, is the subnamespace prefix.
func FromURN(u urn.URN) (NBNURN, error) {
	if !strings.EqualFold(u.NID(), NamespaceIdentifier) {
		return NBNURN{}, fmt.Errorf("%w: namespace identifier %q is not supported, only %q is accepted", ErrSyntax, u.NID(), NamespaceIdentifier)
	}
	nss := u.NSS()
	if !nssRegex.MatchString(nss) {
		return NBNURN{}, fmt.Errorf("%w: namespace specific string %q is not a valid NBN", ErrSyntax, nss)
	}

	left, nationalBookNumber, _ := strings.Cut(nss, "-")
	countryCode, subnamespacePrefix := left, ""
	// regex guarantees the left side never starts with a colon; checked anyway so the country code is never empty
	if i := strings.IndexByte(left, ':'); i > 0 {
		countryCode, subnamespacePrefix = left[:i], left[i+1:]
	}
	return NBNURN{
		countryCode:        countryCode,
		subnamespacePrefix: subnamespacePrefix,
		nationalBookNumber: nationalBookNumber,
		urn:                u,
	}, nil
}

func (n NBNURN) CountryCode() string {
	return n.countryCode
}

// Subnamespace prefix, which may itself contain colons (eg, "uu:diva"). Empty if absent.
func (n NBNURN) SubnamespacePrefix() string {
	return n.subnamespacePrefix
}

func (n NBNURN) HasSubnamespacePrefix() bool {
	return n.subnamespacePrefix != ""
}

func (n NBNURN) NationalBookNumber() string {
	return n.nationalBookNumber
}

// The underlying generic URN.
func (n NBNURN) URN() urn.URN {
	return n.urn
}

func (n NBNURN) IsZero() bool {
	return n.urn.IsZero()
}

func (n NBNURN) Equal(other NBNURN) bool {
	return n.urn.Equal(other.urn)
}

func (n NBNURN) Hash() uint64 {
	return n.urn.Hash()
}

// Canonical literal, with lower-case "urn:nbn:" prefix.
func (n NBNURN) String() string {
	return n.urn.String()
}

func (n NBNURN) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *NBNURN) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
