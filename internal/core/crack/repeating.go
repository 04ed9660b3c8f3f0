package crack

import (
	"errors"

	"github.com/yndnr/cribcrack/internal/core/domain"
	"github.com/yndnr/cribcrack/pkg/alphabet"
)

// RepeatingProblem is a validated repeating-key search input.
type RepeatingProblem struct {
	letters   *alphabet.Letters
	crib      []alphabet.Residue
	fragment  string
	keyLength int
}

// NewRepeatingProblem validates the inputs of a repeating-key search.
// Argument errors are reported before the ciphertext alphabet is checked.
func NewRepeatingProblem(cipher, fragment string, keyLength int, policy alphabet.Policy) (*RepeatingProblem, error) {
	if keyLength <= 0 {
		return nil, domain.ErrInvalidArgument.WithDetailsf("key length must be positive, got %d", keyLength)
	}
	if err := domain.ValidateFragment(fragment); err != nil {
		return nil, err
	}
	if keyLength > len(fragment) {
		return nil, domain.ErrInvalidArgument.WithDetailsf("key length %d exceeds known fragment length %d", keyLength, len(fragment))
	}

	letters, err := alphabet.Extract(cipher, policy)
	if err != nil {
		var verr *alphabet.ViolationError
		if errors.As(err, &verr) {
			return nil, domain.ErrAlphabetViolation.
				WithDetailsf("%q at position %d (policy %s)", verr.Char, verr.Pos, policy).
				WithCause(err)
		}
		return nil, err
	}
	if len(fragment) > letters.Len() {
		return nil, domain.ErrInvalidArgument.WithDetailsf("known fragment (%d letters) is longer than ciphertext (%d letters)", len(fragment), letters.Len())
	}

	crib, _ := alphabet.Extract(fragment, alphabet.Strict)
	return &RepeatingProblem{
		letters:   letters,
		crib:      crib.Residues(),
		fragment:  fragment,
		keyLength: keyLength,
	}, nil
}

// KeyLength returns the requested key period.
func (p *RepeatingProblem) KeyLength() int {
	return p.keyLength
}

// NewBuffer returns scratch space for Try. A buffer must not be shared
// between goroutines.
func (p *RepeatingProblem) NewBuffer() []alphabet.Residue {
	return make([]alphabet.Residue, p.letters.Len())
}

// Try decodes the whole ciphertext with key tiled over it and reports
// whether the known fragment appears in the result.
func (p *RepeatingProblem) Try(key alphabet.Key, buf []alphabet.Residue) (string, bool) {
	alphabet.DecodeResidues(buf, p.letters.Residues(), key)
	text := p.letters.Render(buf)
	return text, domain.Contains(text, p.fragment)
}

// RecoverKey runs the sliding-window known-plaintext attack: for each
// ciphertext offset it derives a key fragment from the crib, then tries
// every keyLength-long sub-window of that fragment as the repeating key.
// The first candidate in (offset, sub) order whose decode contains the
// fragment is returned. That key is the first found under this order, not
// necessarily the only key of the requested length that works.
func RecoverKey(cipher, fragment string, keyLength int, policy alphabet.Policy) (domain.KeyRecovery, error) {
	p, err := NewRepeatingProblem(cipher, fragment, keyLength, policy)
	if err != nil {
		return domain.KeyRecovery{}, err
	}

	buf := p.NewBuffer()
	tried := 0
	for c := range p.Candidates() {
		tried++
		if text, ok := p.Try(c.Key, buf); ok {
			r := domain.NewFound(text, c.Key.String(), c.Position())
			return r.WithStats(domain.Stats{Tried: tried}), nil
		}
	}
	return domain.NewNotFound[string]().WithStats(domain.Stats{Tried: tried}), nil
}
