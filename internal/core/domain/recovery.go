package domain

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// RunIDPrefix is the prefix for recovery run IDs.
const RunIDPrefix = "ccrun-"

// Variant names the cipher family a recovery targets.
type Variant string

const (
	// VariantShift is the mono-alphabetic shift (Caesar) cipher.
	VariantShift Variant = "shift"
	// VariantRepeating is the polyalphabetic repeating-key (Vigenere) cipher.
	VariantRepeating Variant = "vigenere"
)

// Position locates the candidate that produced a match in the enumeration
// order. For the shift variant Offset and Sub are zero and Index is the
// shift itself.
type Position struct {
	Index  int // candidate index in enumeration order
	Offset int // ciphertext offset of the crib window
	Sub    int // start of the key inside the derived key fragment
}

// Stats describes the work behind a recovery. It never changes the
// found/not-found outcome.
type Stats struct {
	RunID   string
	Tried   int           // candidates decoded and verified
	Skipped int           // candidates skipped as already-tried keys
	Elapsed time.Duration // wall time of the search
}

// Recovery is the outcome of a key search: either Found with a plaintext and
// a key, or NotFound. The zero value is NotFound. Fields are unexported so a
// missing key can't be mistaken for shift 0 or an empty key.
type Recovery[K any] struct {
	found     bool
	plaintext string
	key       K
	pos       Position
	stats     Stats
}

// ShiftRecovery carries a recovered shift in [0,26).
type ShiftRecovery = Recovery[int]

// KeyRecovery carries a recovered repeating key as lowercase letters.
type KeyRecovery = Recovery[string]

// NewFound returns a Found outcome.
func NewFound[K any](plaintext string, key K, pos Position) Recovery[K] {
	return Recovery[K]{
		found:     true,
		plaintext: plaintext,
		key:       key,
		pos:       pos,
	}
}

// NewNotFound returns a NotFound outcome.
func NewNotFound[K any]() Recovery[K] {
	return Recovery[K]{}
}

// Found reports whether a key was recovered.
func (r Recovery[K]) Found() bool {
	return r.found
}

// Unwrap returns the decrypted text and key. ok is false for NotFound, in
// which case the other values are zero and meaningless.
func (r Recovery[K]) Unwrap() (plaintext string, key K, ok bool) {
	return r.plaintext, r.key, r.found
}

// Position returns where in the enumeration the match was found.
func (r Recovery[K]) Position() (Position, bool) {
	return r.pos, r.found
}

// Stats returns the search statistics.
func (r Recovery[K]) Stats() Stats {
	return r.stats
}

// WithStats returns a copy of r carrying s.
func (r Recovery[K]) WithStats(s Stats) Recovery[K] {
	r.stats = s
	return r
}

// NewRunID generates a run ID using ULID.
// Format: ccrun-{ulid_lowercase}.
func NewRunID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", ErrInternal.WithCause(err)
	}
	return RunIDPrefix + strings.ToLower(id.String()), nil
}

// IsValidRunID checks the run ID format.
func IsValidRunID(id string) bool {
	if !strings.HasPrefix(id, RunIDPrefix) {
		return false
	}
	_, err := ulid.ParseStrict(strings.ToUpper(strings.TrimPrefix(id, RunIDPrefix)))
	return err == nil
}
