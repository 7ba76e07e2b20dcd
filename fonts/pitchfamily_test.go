package fonts

import "testing"

func TestPitchFamilyRoundTrip(t *testing.T) {
	for p := PitchDefault; p <= PitchVariable; p++ {
		for f := FamilyUnknown; f <= FamilyDecorative; f++ {
			b := EncodePitchFamily(p, f)
			if got := DecodePitch(b); got != p {
				t.Fatalf("pitch %v family %v: decoded pitch %v from 0x%02x", p, f, got, b)
			}
			if got := DecodeFamily(b); got != f {
				t.Fatalf("pitch %v family %v: decoded family %v from 0x%02x", p, f, got, b)
			}
		}
	}
}

func TestPitchFamilyKnownValues(t *testing.T) {
	// variable pitch + swiss family is the legacy substitution pair
	b := EncodePitchFamily(PitchVariable, FamilySwiss)
	if b != 0x22 {
		t.Fatalf("variable/swiss encoded as 0x%02x, want 0x22", b)
	}
	if b := EncodePitchFamily(PitchFixed, FamilyModern); b != 0x31 {
		t.Fatalf("fixed/modern encoded as 0x%02x, want 0x31", b)
	}
}

func TestParsePitchFamilyRejectsOutOfRange(t *testing.T) {
	if _, ok := ParsePitch(3); ok {
		t.Fatal("ParsePitch(3) accepted")
	}
	if _, ok := ParseFamily(6); ok {
		t.Fatal("ParseFamily(6) accepted")
	}
	if _, ok := ParsePitch(-1); ok {
		t.Fatal("ParsePitch(-1) accepted")
	}
}
