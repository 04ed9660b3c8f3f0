// Package alphabet maps Latin letters onto the residue ring Z/26 and back.
//
// It isolates every alphabet-size and encoding assumption used by the
// breakers:
//
//   - residue.go: Residue type, true modulo, letter <-> residue conversion
//   - shift.go: mono-alphabetic (shift) encode and decode
//   - key.go: repeating keys, tiling and key-fragment derivation
//   - repeating.go: polyalphabetic (repeating-key) encode and decode
//
// Letters keep their case through a round trip. Characters outside A-Z and
// a-z are never shifted; whether they are accepted at all depends on the
// Policy of the repeating-key functions.
package alphabet
