package alphabet

import (
	"fmt"
	"strings"
)

// Policy decides how repeating-key functions treat characters outside a-z.
type Policy int

const (
	// Strict accepts lowercase a-z only.
	Strict Policy = iota
	// Passthrough copies non-letters unchanged without advancing the key
	// stream, and restores the case of uppercase letters.
	Passthrough
)

// ParsePolicy parses "strict" or "passthrough".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return Strict, nil
	case "passthrough":
		return Passthrough, nil
	default:
		return Strict, fmt.Errorf("alphabet: unknown policy %q", s)
	}
}

func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Passthrough:
		return "passthrough"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ViolationError reports a character outside the accepted alphabet.
type ViolationError struct {
	Pos  int // rune index in the input
	Char rune
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("alphabet: character %q at position %d is outside a-z", e.Char, e.Pos)
}

// Letters is the letter-only view of a text, remembering where each letter
// sits so a transformed sequence can be put back into the original shape.
type Letters struct {
	text  []rune
	index []int
	res   []Residue
}

// Extract builds the letter view of text under policy.
func Extract(text string, policy Policy) (*Letters, error) {
	runes := []rune(text)
	l := &Letters{
		text:  runes,
		index: make([]int, 0, len(runes)),
		res:   make([]Residue, 0, len(runes)),
	}
	for i, c := range runes {
		if policy == Strict && !IsLower(c) {
			return nil, &ViolationError{Pos: i, Char: c}
		}
		res, ok := ToResidue(c)
		if !ok {
			continue
		}
		l.index = append(l.index, i)
		l.res = append(l.res, res)
	}
	return l, nil
}

// Len returns the number of letters.
func (l *Letters) Len() int {
	return len(l.res)
}

// Residues returns the letter residues in order. Callers must not modify it.
func (l *Letters) Residues() []Residue {
	return l.res
}

// Render returns the original text with its letters replaced by res, each
// keeping the case of the letter it replaces. len(res) must equal Len().
func (l *Letters) Render(res []Residue) string {
	out := make([]rune, len(l.text))
	copy(out, l.text)
	for i, pos := range l.index {
		out[pos] = FromResidue(res[i], IsUpper(l.text[pos]))
	}
	return string(out)
}

// DecodeRepeating decrypts text with a repeating key.
func DecodeRepeating(text string, key Key, policy Policy) (string, error) {
	return mapRepeating(text, key, policy, DecodeResidues)
}

// EncodeRepeating encrypts text with a repeating key.
func EncodeRepeating(text string, key Key, policy Policy) (string, error) {
	return mapRepeating(text, key, policy, EncodeResidues)
}

func mapRepeating(text string, key Key, policy Policy, fn func(dst, src []Residue, key Key)) (string, error) {
	if len(key) == 0 {
		return "", ErrEmptyKey
	}
	letters, err := Extract(text, policy)
	if err != nil {
		return "", err
	}
	out := make([]Residue, letters.Len())
	fn(out, letters.Residues(), key)
	return letters.Render(out), nil
}
