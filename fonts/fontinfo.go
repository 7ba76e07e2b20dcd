package fonts

// FontInfo describes a typeface together with its legacy classification
// bytes. All fields except the typeface itself are optional; the boolean
// result distinguishes "unset" from a real value.
type FontInfo interface {
	Typeface() string
	Charset() (Charset, bool)
	Pitch() (Pitch, bool)
	Family() (Family, bool)
}

// Font is a plain value implementation of FontInfo, for callers that need to
// describe an external font rather than one resolved from a document.
type Font struct {
	Face       string
	CharsetVal *Charset
	PitchVal   *Pitch
	FamilyVal  *Family
}

func (f Font) Typeface() string { return f.Face }

func (f Font) Charset() (Charset, bool) {
	if f.CharsetVal == nil {
		return CharsetANSI, false
	}
	return *f.CharsetVal, true
}

func (f Font) Pitch() (Pitch, bool) {
	if f.PitchVal == nil {
		return PitchDefault, false
	}
	return *f.PitchVal, true
}

func (f Font) Family() (Family, bool) {
	if f.FamilyVal == nil {
		return FamilyUnknown, false
	}
	return *f.FamilyVal, true
}
