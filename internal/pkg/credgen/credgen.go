// Package credgen derives club-portal login credentials: a synthetic email
// from the club's display name and a random throwaway password.
package credgen

import (
	"math/rand"
	"strconv"
	"strings"
)

const emailDomain = "@guestlist.club"

// Email lowercases the club name, strips every non-alphanumeric rune and
// appends the fixed portal domain.
func Email(clubName string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(clubName) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	return b.String() + emailDomain
}

// Password concatenates two pseudo-random base-36 fragments, the second
// upper-cased, yielding roughly 12 characters.
func Password() string {
	return fragment() + strings.ToUpper(fragment())
}

func fragment() string {
	s := strconv.FormatUint(rand.Uint64(), 36)
	if len(s) > 6 {
		s = s[len(s)-6:]
	}

	return s
}
