package contract

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ErrUnknownURI is returned for URIs under the authority whose path is not
// one of the books paths.
var ErrUnknownURI = errors.New("unknown content URI")

// ErrForeignAuthority is returned for URIs that are not content URIs of
// this authority.
var ErrForeignAuthority = errors.New("URI does not belong to the books authority")

// MatchKind says what a content URI addresses.
type MatchKind int

const (
	MatchNone MatchKind = iota
	// MatchBooks is the whole books collection.
	MatchBooks
	// MatchBookID is a single book row.
	MatchBookID
)

func (k MatchKind) String() string {
	switch k {
	case MatchBooks:
		return "books"
	case MatchBookID:
		return "book_id"
	default:
		return "none"
	}
}

// Match is the outcome of matching a content URI.
type Match struct {
	Kind MatchKind
	// ID is set only for MatchBookID.
	ID int64
}

// MatchURI classifies raw against the books paths. Empty path segments are
// ignored, so "books/" is the collection.
func MatchURI(raw string) (Match, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Match{}, fmt.Errorf("parse %q: %w", raw, err)
	}
	// userinfo would be part of the authority on the device, so
	// "someone@<authority>" is a different authority
	if u.Scheme != Scheme || u.User != nil || u.Host != ContentAuthority {
		return Match{}, fmt.Errorf("%w: %s", ErrForeignAuthority, raw)
	}

	var segments []string
	for _, s := range strings.Split(u.Path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}

	switch {
	case len(segments) == 1 && segments[0] == PathBooks:
		return Match{Kind: MatchBooks}, nil
	case len(segments) == 2 && segments[0] == PathBooks && isDigits(segments[1]):
		id, err := strconv.ParseInt(segments[1], 10, 64)
		if err != nil {
			return Match{}, fmt.Errorf("%w: %s", ErrUnknownURI, raw)
		}
		return Match{Kind: MatchBookID, ID: id}, nil
	}
	return Match{}, fmt.Errorf("%w: %s", ErrUnknownURI, raw)
}

// TypeOf returns the MIME type served for raw.
func TypeOf(raw string) (string, error) {
	m, err := MatchURI(raw)
	if err != nil {
		return "", err
	}
	if m.Kind == MatchBookID {
		return ContentItemType, nil
	}
	return ContentListType, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
