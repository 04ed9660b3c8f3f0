package crack

import (
	"iter"

	"github.com/yndnr/cribcrack/internal/core/domain"
	"github.com/yndnr/cribcrack/pkg/alphabet"
)

// Candidate is one repeating key derived from the crib at a given
// ciphertext offset.
type Candidate struct {
	Index  int // position in enumeration order
	Offset int // ciphertext offset of the crib window
	Sub    int // start of Key inside the derived key fragment
	// Key aliases the key fragment of its offset; it must not be modified.
	Key alphabet.Key
}

// Position returns the candidate's place in the enumeration.
func (c Candidate) Position() domain.Position {
	return domain.Position{Index: c.Index, Offset: c.Offset, Sub: c.Sub}
}

// Candidates yields every candidate key in ascending (offset, sub) order.
// The key fragment for an offset is only correct when the window sits on
// a key period boundary, which is unknown, so every offset and every
// sub-window is produced.
func (p *RepeatingProblem) Candidates() iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		src := p.letters.Residues()
		m := len(p.crib)
		index := 0
		for offset := 0; offset+m <= len(src); offset++ {
			frag := alphabet.DeriveKeyFragment(src[offset:offset+m], p.crib)
			for sub := 0; sub+p.keyLength <= len(frag); sub++ {
				c := Candidate{
					Index:  index,
					Offset: offset,
					Sub:    sub,
					Key:    frag[sub : sub+p.keyLength : sub+p.keyLength],
				}
				if !yield(c) {
					return
				}
				index++
			}
		}
	}
}

// CandidateCount returns how many candidates Candidates yields.
func (p *RepeatingProblem) CandidateCount() int {
	offsets := p.letters.Len() - len(p.crib) + 1
	subs := len(p.crib) - p.keyLength + 1
	if offsets <= 0 || subs <= 0 {
		return 0
	}
	return offsets * subs
}
