package fonts

// The legacy pitch-and-family byte packs two small enumerations the way
// LOGFONT does: pitch in the low nibble, family in the high nibble. The
// encoding is a bijection over the valid pairs so values round-trip through
// the packed byte without loss.

// Pitch describes the glyph width behavior of a font.
type Pitch int

const (
	PitchDefault Pitch = iota
	PitchFixed
	PitchVariable
)

// String returns the pitch name.
func (p Pitch) String() string {
	switch p {
	case PitchFixed:
		return "fixed"
	case PitchVariable:
		return "variable"
	default:
		return "default"
	}
}

// ParsePitch validates a native pitch value.
func ParsePitch(n int) (Pitch, bool) {
	if n < int(PitchDefault) || n > int(PitchVariable) {
		return PitchDefault, false
	}
	return Pitch(n), true
}

// Family is the legacy font family classification.
type Family int

const (
	FamilyUnknown Family = iota // FF_DONTCARE
	FamilyRoman
	FamilySwiss
	FamilyModern
	FamilyScript
	FamilyDecorative
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case FamilyRoman:
		return "roman"
	case FamilySwiss:
		return "swiss"
	case FamilyModern:
		return "modern"
	case FamilyScript:
		return "script"
	case FamilyDecorative:
		return "decorative"
	default:
		return "unknown"
	}
}

// ParseFamily validates a native family value.
func ParseFamily(n int) (Family, bool) {
	if n < int(FamilyUnknown) || n > int(FamilyDecorative) {
		return FamilyUnknown, false
	}
	return Family(n), true
}

// EncodePitchFamily packs pitch and family into one byte.
func EncodePitchFamily(p Pitch, f Family) byte {
	return byte(int(p)&0x3 | int(f)<<4)
}

// DecodePitch extracts the pitch half of a packed byte.
func DecodePitch(b byte) Pitch {
	p, _ := ParsePitch(int(b & 0x3))
	return p
}

// DecodeFamily extracts the family half of a packed byte.
func DecodeFamily(b byte) Family {
	f, _ := ParseFamily(int(b >> 4 & 0xF))
	return f
}
