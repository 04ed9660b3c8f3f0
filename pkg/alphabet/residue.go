package alphabet

// Size is the number of letters in the alphabet ring.
const Size = 26

// Residue is a letter's position in the alphabet ring, always in [0, Size).
type Residue uint8

// Mod reduces n into [0, Size). Unlike the % operator the result is never
// negative.
func Mod(n int) Residue {
	m := n % Size
	if m < 0 {
		m += Size
	}
	return Residue(m)
}

// Shift returns (r - delta) mod Size.
func (r Residue) Shift(delta int) Residue {
	return Mod(int(r) - delta)
}

// Add returns (r + delta) mod Size.
func (r Residue) Add(delta int) Residue {
	return Mod(int(r) + delta)
}

// Letter returns the lowercase letter for r.
func (r Residue) Letter() rune {
	return FromResidue(r, false)
}

// IsLetter reports whether c is an ASCII Latin letter.
func IsLetter(c rune) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// IsLower reports whether c is a lowercase ASCII Latin letter.
func IsLower(c rune) bool {
	return 'a' <= c && c <= 'z'
}

// IsUpper reports whether c is an uppercase ASCII Latin letter.
func IsUpper(c rune) bool {
	return 'A' <= c && c <= 'Z'
}

// ToResidue converts a letter to its residue, ignoring case.
// ok is false for anything that is not an ASCII Latin letter.
func ToResidue(c rune) (res Residue, ok bool) {
	switch {
	case IsLower(c):
		return Residue(c - 'a'), true
	case IsUpper(c):
		return Residue(c - 'A'), true
	default:
		return 0, false
	}
}

// FromResidue converts a residue back to a letter, uppercase when upper is set.
func FromResidue(res Residue, upper bool) rune {
	res = Mod(int(res))
	if upper {
		return 'A' + rune(res)
	}
	return 'a' + rune(res)
}
