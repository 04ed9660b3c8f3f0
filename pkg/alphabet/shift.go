package alphabet

import "strings"

// DecodeShift undoes a mono-alphabetic shift. Letters move back by shift
// with their case kept; every other character is copied unchanged and does
// not influence its neighbours.
func DecodeShift(text string, shift int) string {
	return mapShift(text, -shift)
}

// EncodeShift applies a mono-alphabetic shift.
func EncodeShift(text string, shift int) string {
	return mapShift(text, shift)
}

func mapShift(text string, delta int) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, c := range text {
		res, ok := ToResidue(c)
		if !ok {
			b.WriteRune(c)
			continue
		}
		b.WriteRune(FromResidue(res.Add(delta), IsUpper(c)))
	}
	return b.String()
}
