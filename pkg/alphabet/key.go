package alphabet

import (
	"errors"
	"strings"
)

// ErrEmptyKey is returned when a key has no letters.
var ErrEmptyKey = errors.New("alphabet: key must contain at least one letter")

// Key is a repeating key. Position i of a text is shifted by Key.At(i).
type Key []Residue

// ParseKey converts a string of letters (either case) into a Key.
func ParseKey(s string) (Key, error) {
	if s == "" {
		return nil, ErrEmptyKey
	}
	key := make(Key, 0, len(s))
	for i, c := range []rune(s) {
		res, ok := ToResidue(c)
		if !ok {
			return nil, &ViolationError{Pos: i, Char: c}
		}
		key = append(key, res)
	}
	return key, nil
}

// Len returns the key period.
func (k Key) Len() int {
	return len(k)
}

// At returns the key residue used at text position pos.
func (k Key) At(pos int) Residue {
	return k[pos%len(k)]
}

// Tile repeats the key to exactly n residues, truncating the final period.
func (k Key) Tile(n int) Key {
	if len(k) == 0 || n <= 0 {
		return Key{}
	}
	tiled := make(Key, n)
	for i := 0; i < n; i += len(k) {
		copy(tiled[i:], k)
	}
	return tiled
}

// String returns the key as lowercase letters.
func (k Key) String() string {
	var b strings.Builder
	b.Grow(len(k))
	for _, res := range k {
		b.WriteRune(res.Letter())
	}
	return b.String()
}

// DeriveKeyFragment inverts c = (p + k) mod 26 position by position for an
// aligned ciphertext window and known plaintext. The result has the length
// of the shorter input.
func DeriveKeyFragment(window, known []Residue) Key {
	n := len(known)
	if len(window) < n {
		n = len(window)
	}
	frag := make(Key, n)
	for i := 0; i < n; i++ {
		frag[i] = window[i].Shift(int(known[i]))
	}
	return frag
}

// DecodeResidues writes src decoded with the repeating key into dst.
// dst must be at least as long as src.
func DecodeResidues(dst, src []Residue, key Key) {
	period := len(key)
	for i, j := 0, 0; i < len(src); i++ {
		dst[i] = src[i].Shift(int(key[j]))
		j++
		if j == period {
			j = 0
		}
	}
}

// EncodeResidues is the inverse of DecodeResidues.
func EncodeResidues(dst, src []Residue, key Key) {
	period := len(key)
	for i, j := 0, 0; i < len(src); i++ {
		dst[i] = src[i].Add(int(key[j]))
		j++
		if j == period {
			j = 0
		}
	}
}
