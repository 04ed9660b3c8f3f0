package crack

import (
	"unicode/utf8"

	"github.com/yndnr/cribcrack/internal/core/domain"
	"github.com/yndnr/cribcrack/pkg/alphabet"
)

// ShiftCount is the number of shift candidates.
const ShiftCount = alphabet.Size

// ShiftProblem is a validated mono-alphabetic search input.
type ShiftProblem struct {
	cipher   string
	fragment string
}

// NewShiftProblem validates the inputs of a shift search. Non-letters in
// the ciphertext are always accepted and pass through every decode.
func NewShiftProblem(cipher, fragment string) (*ShiftProblem, error) {
	if n, m := utf8.RuneCountInString(cipher), utf8.RuneCountInString(fragment); m > n {
		return nil, domain.ErrInvalidArgument.WithDetailsf("known fragment (%d chars) is longer than ciphertext (%d chars)", m, n)
	}
	return &ShiftProblem{cipher: cipher, fragment: fragment}, nil
}

// Try decodes the ciphertext with shift and reports whether the known
// fragment appears. An empty fragment never matches.
func (p *ShiftProblem) Try(shift int) (string, bool) {
	text := alphabet.DecodeShift(p.cipher, shift)
	if p.fragment == "" {
		return text, false
	}
	return text, domain.Contains(text, p.fragment)
}

// BreakShift tries every shift from 0 to 25 in ascending order and returns
// the first whose decode contains fragment. When several shifts match, the
// smallest one wins.
func BreakShift(cipher, fragment string) (domain.ShiftRecovery, error) {
	p, err := NewShiftProblem(cipher, fragment)
	if err != nil {
		return domain.ShiftRecovery{}, err
	}
	for shift := 0; shift < ShiftCount; shift++ {
		if text, ok := p.Try(shift); ok {
			r := domain.NewFound(text, shift, domain.Position{Index: shift})
			return r.WithStats(domain.Stats{Tried: shift + 1}), nil
		}
	}
	return domain.NewNotFound[int]().WithStats(domain.Stats{Tried: ShiftCount}), nil
}
