package output

import (
	"fmt"

	"github.com/yndnr/cribcrack/internal/core/domain"
)

// Report is the rendered outcome of one recovery.
type Report struct {
	RunID     string    `json:"run_id" yaml:"run_id"`
	Variant   string    `json:"variant" yaml:"variant"`
	Source    string    `json:"source,omitempty" yaml:"source,omitempty"`
	Found     bool      `json:"found" yaml:"found"`
	Shift     *int      `json:"shift,omitempty" yaml:"shift,omitempty"`
	Key       string    `json:"key,omitempty" yaml:"key,omitempty"`
	Position  *Position `json:"position,omitempty" yaml:"position,omitempty"`
	Plaintext string    `json:"plaintext,omitempty" yaml:"plaintext,omitempty"`
	Tried     int       `json:"tried" yaml:"tried"`
	Skipped   int       `json:"skipped" yaml:"skipped"`
	Elapsed   string    `json:"elapsed" yaml:"elapsed"`
}

// Position is where the winning repeating key was derived.
type Position struct {
	Index  int `json:"index" yaml:"index"`
	Offset int `json:"offset" yaml:"offset"`
	Sub    int `json:"sub" yaml:"sub"`
}

func (p Position) String() string {
	return fmt.Sprintf("offset %d, sub %d (candidate %d)", p.Offset, p.Sub, p.Index)
}

// NewShiftReport builds a report from a shift recovery.
func NewShiftReport(r domain.ShiftRecovery, source string) *Report {
	rep := newReport(domain.VariantShift, r.Stats(), source)
	if text, shift, ok := r.Unwrap(); ok {
		rep.Found = true
		rep.Shift = &shift
		rep.Plaintext = text
	}
	return rep
}

// NewKeyReport builds a report from a repeating-key recovery.
func NewKeyReport(r domain.KeyRecovery, source string) *Report {
	rep := newReport(domain.VariantRepeating, r.Stats(), source)
	if text, key, ok := r.Unwrap(); ok {
		pos, _ := r.Position()
		rep.Found = true
		rep.Key = key
		rep.Plaintext = text
		rep.Position = &Position{Index: pos.Index, Offset: pos.Offset, Sub: pos.Sub}
	}
	return rep
}

func newReport(v domain.Variant, st domain.Stats, source string) *Report {
	return &Report{
		RunID:   st.RunID,
		Variant: string(v),
		Source:  source,
		Tried:   st.Tried,
		Skipped: st.Skipped,
		Elapsed: st.Elapsed.String(),
	}
}
