package frame

import (
	"testing"

	"github.com/mharwood/telepengo/internal/reason"
	"github.com/mharwood/telepengo/internal/teletable"
)

// buildElements concatenates the pattern for each code into one element
// stream, the same shape Decode expects.
func buildElements(codes ...int) []byte {
	var elements []byte
	for _, c := range codes {
		elements = append(elements, teletable.Table[c]...)
	}
	return elements
}

func TestDecodeRoundTrip(t *testing.T) {
	// "12" -> pair glyph 27+12=39, checksum = (127-39%127)%127 = 88
	glyphs := []int{39}
	sum := 0
	for _, g := range glyphs {
		sum += g
	}
	checksum := (checksumRadix - (sum % checksumRadix)) % checksumRadix

	elements := buildElements(append([]int{teletable.Start}, append(glyphs, checksum, teletable.Stop)...)...)

	decoded, err := Decode(elements)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if !decoded.HasStop {
		t.Error("expected HasStop = true")
	}
	if len(decoded.Glyphs) != 2 {
		t.Fatalf("decoded.Glyphs = %v, want 2 entries (data + checksum)", decoded.Glyphs)
	}

	text, err := ValidateChecksum(decoded.Glyphs)
	if err != nil {
		t.Fatalf("ValidateChecksum returned error: %v", err)
	}
	if text != "12" {
		t.Errorf("text = %q, want %q", text, "12")
	}
}

func TestDecodeStartNotFound(t *testing.T) {
	elements := buildElements(teletable.Stop)
	if _, err := Decode(elements); err == nil {
		t.Error("expected StartNotFound error")
	}
}

func TestDecodeStopNotFound(t *testing.T) {
	// Valid start, glyph, and checksum, but no stop pattern appended: P6.
	glyphs := []int{39}
	sum := 0
	for _, g := range glyphs {
		sum += g
	}
	checksum := (checksumRadix - (sum % checksumRadix)) % checksumRadix

	elements := buildElements(append([]int{teletable.Start}, append(glyphs, checksum)...)...)

	_, err := Decode(elements)
	if err == nil {
		t.Fatal("expected error when stop pattern is missing")
	}
	rerr, ok := err.(*reason.Error)
	if !ok {
		t.Fatalf("err = %v (%T), want *reason.Error", err, err)
	}
	if rerr.Kind != reason.StopNotFound {
		t.Errorf("Kind = %v, want %v", rerr.Kind, reason.StopNotFound)
	}
}

func TestValidateChecksumMismatch(t *testing.T) {
	// Data glyph 39, but wrong checksum.
	if _, err := ValidateChecksum([]int{39, 0}); err == nil {
		t.Error("expected ChecksumMismatch error")
	}
}

func TestGlyphsToDigitsSingleDigit(t *testing.T) {
	digits := glyphsToDigits([]int{17 + 7})
	if digits != "7" {
		t.Errorf("glyphsToDigits = %q, want %q", digits, "7")
	}
}

func TestGlyphsToDigitsPair(t *testing.T) {
	digits := glyphsToDigits([]int{27 + 42})
	if digits != "42" {
		t.Errorf("glyphsToDigits = %q, want %q", digits, "42")
	}
}
