package alphabet

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMod(t *testing.T) {
	tests := []struct {
		in   int
		want Residue
	}{
		{0, 0},
		{25, 25},
		{26, 0},
		{27, 1},
		{-1, 25},
		{-26, 0},
		{-27, 25},
		{-53, 25},
	}

	for _, tt := range tests {
		if got := Mod(tt.in); got != tt.want {
			t.Errorf("Mod(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestResidue_ShiftAdd(t *testing.T) {
	if got := Residue(0).Shift(1); got != 25 {
		t.Errorf("Shift wrap = %d, want 25", got)
	}
	if got := Residue(25).Add(1); got != 0 {
		t.Errorf("Add wrap = %d, want 0", got)
	}
	for r := 0; r < Size; r++ {
		for d := -30; d <= 30; d++ {
			if got := Residue(r).Add(d).Shift(d); got != Residue(r) {
				t.Fatalf("Residue(%d).Add(%d).Shift(%d) = %d", r, d, d, got)
			}
		}
	}
}

func TestToResidue(t *testing.T) {
	tests := []struct {
		in     rune
		want   Residue
		wantOK bool
	}{
		{'a', 0, true},
		{'z', 25, true},
		{'A', 0, true},
		{'Q', 16, true},
		{' ', 0, false},
		{'1', 0, false},
		{'é', 0, false},
	}

	for _, tt := range tests {
		got, ok := ToResidue(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ToResidue(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestFromResidue(t *testing.T) {
	if got := FromResidue(7, false); got != 'h' {
		t.Errorf("FromResidue(7, false) = %q, want 'h'", got)
	}
	if got := FromResidue(7, true); got != 'H' {
		t.Errorf("FromResidue(7, true) = %q, want 'H'", got)
	}
}

func TestShift_Example(t *testing.T) {
	// Rotating the alphabet by 6.
	plain := "the quick brown fox jumps over the lazy dog"
	cipher := "znk waoiq hxuct lud pasvy ubkx znk rgfe jum"

	if got := EncodeShift(plain, 6); got != cipher {
		t.Errorf("EncodeShift() = %q, want %q", got, cipher)
	}
	if got := DecodeShift(cipher, 6); got != plain {
		t.Errorf("DecodeShift() = %q, want %q", got, plain)
	}
}

func TestShift_PreservesCaseAndPunctuation(t *testing.T) {
	got := EncodeShift("Hello, World! 42", 3)
	if want := "Khoor, Zruog! 42"; got != want {
		t.Errorf("EncodeShift() = %q, want %q", got, want)
	}
}

func TestShift_RoundTrip(t *testing.T) {
	texts := []string{
		"",
		"abcdefghijklmnopqrstuvwxyz",
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		"thequickbrownfoxjumpsoverthelazydog",
		"MiXeD CaSe",
	}
	for _, text := range texts {
		for s := 0; s < Size; s++ {
			if got := DecodeShift(EncodeShift(text, s), s); got != text {
				t.Errorf("round trip shift %d: got %q, want %q", s, got, text)
			}
		}
	}
}

func TestParseKey(t *testing.T) {
	key, err := ParseKey("Cork")
	if err != nil {
		t.Fatalf("ParseKey() error = %v", err)
	}
	if diff := cmp.Diff(Key{2, 14, 17, 10}, key); diff != "" {
		t.Errorf("ParseKey() mismatch (-want +got):\n%s", diff)
	}
	if key.String() != "cork" {
		t.Errorf("String() = %q, want %q", key.String(), "cork")
	}

	if _, err := ParseKey(""); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("ParseKey(\"\") error = %v, want ErrEmptyKey", err)
	}

	_, err = ParseKey("co-rk")
	var verr *ViolationError
	if !errors.As(err, &verr) {
		t.Fatalf("ParseKey(co-rk) error = %v, want ViolationError", err)
	}
	if verr.Pos != 2 || verr.Char != '-' {
		t.Errorf("violation = %+v, want pos 2 char '-'", verr)
	}
}

func TestKey_Tile(t *testing.T) {
	key := Key{1, 2, 3}
	tests := []struct {
		n    int
		want Key
	}{
		{0, Key{}},
		{2, Key{1, 2}},
		{3, Key{1, 2, 3}},
		{7, Key{1, 2, 3, 1, 2, 3, 1}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, key.Tile(tt.n)); diff != "" {
			t.Errorf("Tile(%d) mismatch (-want +got):\n%s", tt.n, diff)
		}
	}
}

func TestKey_TileMatchesModularIndexing(t *testing.T) {
	key, _ := ParseKey("lemon")
	letters, err := Extract("attackatdawnattackatdusk", Strict)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	src := letters.Residues()

	tiled := key.Tile(len(src))
	viaDecode := make([]Residue, len(src))
	DecodeResidues(viaDecode, src, key)

	for pos := range src {
		want := src[pos].Shift(int(key.At(pos)))
		if tiled[pos] != key.At(pos) {
			t.Fatalf("tiled[%d] = %d, want %d", pos, tiled[pos], key.At(pos))
		}
		if viaDecode[pos] != want {
			t.Fatalf("decode[%d] = %d, want %d", pos, viaDecode[pos], want)
		}
	}
}

func TestDeriveKeyFragment(t *testing.T) {
	key, _ := ParseKey("cork")
	plain := "gingerbread"
	cipher, err := EncodeRepeating(plain, key, Strict)
	if err != nil {
		t.Fatalf("EncodeRepeating() error = %v", err)
	}

	c, _ := Extract(cipher, Strict)
	p, _ := Extract(plain, Strict)
	frag := DeriveKeyFragment(c.Residues(), p.Residues())

	if got, want := frag.String(), "corkcorkcor"; got != want {
		t.Errorf("DeriveKeyFragment() = %q, want %q", got, want)
	}
}

func TestRepeating_Vigenere(t *testing.T) {
	key, _ := ParseKey("lemon")
	got, err := EncodeRepeating("attackatdawn", key, Strict)
	if err != nil {
		t.Fatalf("EncodeRepeating() error = %v", err)
	}
	if want := "lxfopvefrnhr"; got != want {
		t.Errorf("EncodeRepeating() = %q, want %q", got, want)
	}

	plain, err := DecodeRepeating(got, key, Strict)
	if err != nil {
		t.Fatalf("DecodeRepeating() error = %v", err)
	}
	if plain != "attackatdawn" {
		t.Errorf("DecodeRepeating() = %q", plain)
	}
}

func TestRepeating_StrictRejects(t *testing.T) {
	key, _ := ParseKey("key")
	tests := []struct {
		name string
		text string
		pos  int
		char rune
	}{
		{"space", "attack at", 6, ' '},
		{"uppercase", "Attack", 0, 'A'},
		{"digit", "abc1", 3, '1'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRepeating(tt.text, key, Strict)
			var verr *ViolationError
			if !errors.As(err, &verr) {
				t.Fatalf("error = %v, want ViolationError", err)
			}
			if verr.Pos != tt.pos || verr.Char != tt.char {
				t.Errorf("violation = %+v, want pos %d char %q", verr, tt.pos, tt.char)
			}
		})
	}
}

func TestRepeating_Passthrough(t *testing.T) {
	key, _ := ParseKey("lemon")
	got, err := EncodeRepeating("Attack at Dawn!", key, Passthrough)
	if err != nil {
		t.Fatalf("EncodeRepeating() error = %v", err)
	}
	// Non-letters do not consume key positions.
	if want := "Lxfopv ef Rnhr!"; got != want {
		t.Errorf("EncodeRepeating() = %q, want %q", got, want)
	}

	plain, err := DecodeRepeating(got, key, Passthrough)
	if err != nil {
		t.Fatalf("DecodeRepeating() error = %v", err)
	}
	if plain != "Attack at Dawn!" {
		t.Errorf("DecodeRepeating() = %q", plain)
	}
}

func TestRepeating_EmptyKey(t *testing.T) {
	if _, err := DecodeRepeating("abc", nil, Strict); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("error = %v, want ErrEmptyKey", err)
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"", Strict, false},
		{"strict", Strict, false},
		{"Passthrough", Passthrough, false},
		{"loose", Strict, true},
	}

	for _, tt := range tests {
		got, err := ParsePolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePolicy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
