package dml

// Enumerations mirroring the DrawingML simple types used by character
// properties. Parse functions accept the schema token and report whether it
// was recognized; String returns the schema token back.

// UnderlineStyle is the ST_TextUnderlineType enumeration.
type UnderlineStyle int

const (
	UnderlineNone UnderlineStyle = iota
	UnderlineWords
	UnderlineSingle
	UnderlineDouble
	UnderlineHeavy
	UnderlineDotted
	UnderlineDottedHeavy
	UnderlineDash
	UnderlineDashHeavy
	UnderlineDashLong
	UnderlineDashLongHeavy
	UnderlineDotDash
	UnderlineDotDashHeavy
	UnderlineDotDotDash
	UnderlineDotDotDashHeavy
	UnderlineWavy
	UnderlineWavyHeavy
	UnderlineWavyDouble
)

var underlineTokens = map[UnderlineStyle]string{
	UnderlineNone:            "none",
	UnderlineWords:           "words",
	UnderlineSingle:          "sng",
	UnderlineDouble:          "dbl",
	UnderlineHeavy:           "heavy",
	UnderlineDotted:          "dotted",
	UnderlineDottedHeavy:     "dottedHeavy",
	UnderlineDash:            "dash",
	UnderlineDashHeavy:       "dashHeavy",
	UnderlineDashLong:        "dashLong",
	UnderlineDashLongHeavy:   "dashLongHeavy",
	UnderlineDotDash:         "dotDash",
	UnderlineDotDashHeavy:    "dotDashHeavy",
	UnderlineDotDotDash:      "dotDotDash",
	UnderlineDotDotDashHeavy: "dotDotDashHeavy",
	UnderlineWavy:            "wavy",
	UnderlineWavyHeavy:       "wavyHeavy",
	UnderlineWavyDouble:      "wavyDbl",
}

func (u UnderlineStyle) String() string {
	if s, ok := underlineTokens[u]; ok {
		return s
	}
	return "none"
}

// ParseUnderlineStyle maps a schema token to an underline style.
func ParseUnderlineStyle(s string) (UnderlineStyle, bool) {
	for k, v := range underlineTokens {
		if v == s {
			return k, true
		}
	}
	return UnderlineNone, false
}

// StrikeStyle is the ST_TextStrikeType enumeration.
type StrikeStyle int

const (
	StrikeNone StrikeStyle = iota
	StrikeSingle
	StrikeDouble
)

func (s StrikeStyle) String() string {
	switch s {
	case StrikeSingle:
		return "sngStrike"
	case StrikeDouble:
		return "dblStrike"
	default:
		return "noStrike"
	}
}

// ParseStrikeStyle maps a schema token to a strike style.
func ParseStrikeStyle(s string) (StrikeStyle, bool) {
	switch s {
	case "noStrike":
		return StrikeNone, true
	case "sngStrike":
		return StrikeSingle, true
	case "dblStrike":
		return StrikeDouble, true
	}
	return StrikeNone, false
}

// CapsMode is the ST_TextCapsType enumeration.
type CapsMode int

const (
	CapsNone CapsMode = iota
	CapsSmall
	CapsAll
)

func (c CapsMode) String() string {
	switch c {
	case CapsSmall:
		return "small"
	case CapsAll:
		return "all"
	default:
		return "none"
	}
}

// ParseCapsMode maps a schema token to a caps mode.
func ParseCapsMode(s string) (CapsMode, bool) {
	switch s {
	case "none":
		return CapsNone, true
	case "small":
		return CapsSmall, true
	case "all":
		return CapsAll, true
	}
	return CapsNone, false
}

// FieldType classifies a text field run by its type attribute.
type FieldType int

const (
	FieldGeneric FieldType = iota
	FieldSlideNumber
	FieldDateTime
)

func (f FieldType) String() string {
	switch f {
	case FieldSlideNumber:
		return "slidenum"
	case FieldDateTime:
		return "datetime"
	default:
		return "generic"
	}
}

// ParseFieldType classifies a raw field type attribute. The datetime family
// ("datetime", "datetime1".."datetime13") collapses to FieldDateTime;
// anything unrecognized is generic.
func ParseFieldType(s string) FieldType {
	if s == "slidenum" {
		return FieldSlideNumber
	}
	if len(s) >= 8 && s[:8] == "datetime" {
		return FieldDateTime
	}
	return FieldGeneric
}

// SchemeColor is a slot in the theme color scheme.
type SchemeColor int

const (
	SchemeBackground1 SchemeColor = iota
	SchemeText1
	SchemeBackground2
	SchemeText2
	SchemeAccent1
	SchemeAccent2
	SchemeAccent3
	SchemeAccent4
	SchemeAccent5
	SchemeAccent6
	SchemeHyperlink
	SchemeFollowedHyperlink
	SchemeDark1
	SchemeLight1
	SchemeDark2
	SchemeLight2
	SchemePlaceholder // phClr, substituted from the shape style font reference
)

var schemeColorTokens = map[SchemeColor]string{
	SchemeBackground1:       "bg1",
	SchemeText1:             "tx1",
	SchemeBackground2:       "bg2",
	SchemeText2:             "tx2",
	SchemeAccent1:           "accent1",
	SchemeAccent2:           "accent2",
	SchemeAccent3:           "accent3",
	SchemeAccent4:           "accent4",
	SchemeAccent5:           "accent5",
	SchemeAccent6:           "accent6",
	SchemeHyperlink:         "hlink",
	SchemeFollowedHyperlink: "folHlink",
	SchemeDark1:             "dk1",
	SchemeLight1:            "lt1",
	SchemeDark2:             "dk2",
	SchemeLight2:            "lt2",
	SchemePlaceholder:       "phClr",
}

func (c SchemeColor) String() string {
	if s, ok := schemeColorTokens[c]; ok {
		return s
	}
	return "tx1"
}

// ParseSchemeColor maps a schema token to a scheme color slot.
func ParseSchemeColor(s string) (SchemeColor, bool) {
	for k, v := range schemeColorTokens {
		if v == s {
			return k, true
		}
	}
	return SchemeText1, false
}
