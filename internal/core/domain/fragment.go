package domain

import (
	"strings"

	"github.com/yndnr/cribcrack/pkg/alphabet"
)

// Contains reports whether fragment occurs in text as a contiguous,
// case-sensitive substring. Both breakers match through this function.
func Contains(text, fragment string) bool {
	return strings.Contains(text, fragment)
}

// ValidateFragment checks that fragment is a non-empty run of lowercase
// letters, as the repeating-key recoverer needs a residue for every
// position.
func ValidateFragment(fragment string) error {
	if fragment == "" {
		return ErrMissingArgument.WithDetails("known fragment is empty")
	}
	for i, c := range fragment {
		if !alphabet.IsLower(c) {
			return ErrInvalidArgument.WithDetailsf("known fragment has %q at byte %d, want a-z", c, i)
		}
	}
	return nil
}
