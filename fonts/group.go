package fonts

import "unicode"

// Font group classification for styled text. A presentation run carries up to
// four font records (latin, east asian, complex script, symbol) and the group
// of the text decides which record governs it. Classification follows the
// Unicode script of the first significant rune; everything the table below
// does not claim is treated as latin.

// Group selects which font record governs a span of text.
type Group int

const (
	GroupLatin Group = iota
	GroupEastAsian
	GroupComplexScript
	GroupSymbol
)

// String returns the DrawingML element suffix for the group.
func (g Group) String() string {
	switch g {
	case GroupEastAsian:
		return "ea"
	case GroupComplexScript:
		return "cs"
	case GroupSymbol:
		return "sym"
	default:
		return "latin"
	}
}

// ParseGroup maps a DrawingML element suffix back to a group. The "lt"
// shorthand used by theme placeholder typefaces ("+mj-lt") is accepted too.
func ParseGroup(s string) (Group, bool) {
	switch s {
	case "latin", "lt":
		return GroupLatin, true
	case "ea":
		return GroupEastAsian, true
	case "cs":
		return GroupComplexScript, true
	case "sym":
		return GroupSymbol, true
	}
	return GroupLatin, false
}

var eastAsianTables = []*unicode.RangeTable{
	unicode.Han,
	unicode.Hangul,
	unicode.Hiragana,
	unicode.Katakana,
	unicode.Bopomofo,
	unicode.Yi,
}

var complexScriptTables = []*unicode.RangeTable{
	unicode.Arabic,
	unicode.Hebrew,
	unicode.Syriac,
	unicode.Thaana,
	unicode.Devanagari,
	unicode.Bengali,
	unicode.Gurmukhi,
	unicode.Gujarati,
	unicode.Oriya,
	unicode.Tamil,
	unicode.Telugu,
	unicode.Kannada,
	unicode.Malayalam,
	unicode.Sinhala,
	unicode.Thai,
	unicode.Lao,
	unicode.Tibetan,
	unicode.Myanmar,
	unicode.Khmer,
	unicode.Mongolian,
}

// classify buckets a single rune. The second result is false for runes that
// carry no script information of their own (whitespace); such runes take the
// group of their neighbors.
func classify(r rune) (Group, bool) {
	if unicode.IsSpace(r) {
		return GroupLatin, false
	}
	switch {
	case r >= 0xE000 && r <= 0xF8FF: // private use area, symbol charsets
		return GroupSymbol, true
	case r >= 0x3000 && r <= 0x303F: // CJK symbols and punctuation
		return GroupEastAsian, true
	case r >= 0xFF00 && r <= 0xFFEF: // halfwidth and fullwidth forms
		return GroupEastAsian, true
	case r >= 0x200C && r <= 0x200F: // joiners and directional marks
		return GroupComplexScript, true
	case r >= 0x202A && r <= 0x202E: // bidi embedding controls
		return GroupComplexScript, true
	}
	for _, t := range eastAsianTables {
		if unicode.Is(t, r) {
			return GroupEastAsian, true
		}
	}
	for _, t := range complexScriptTables {
		if unicode.Is(t, r) {
			return GroupComplexScript, true
		}
	}
	return GroupLatin, true
}

// GroupFirst classifies text by its first script-significant rune.
// Empty or unclassifiable text is latin.
func GroupFirst(text string) Group {
	for _, r := range text {
		if g, ok := classify(r); ok {
			return g
		}
	}
	return GroupLatin
}

// GroupRange is a maximal sub-run of text governed by a single font group.
// Offset and Length are in bytes.
type GroupRange struct {
	Offset int
	Length int
	Group  Group
}

// GroupRanges splits text into maximal sub-runs of a single font group.
// Script-neutral runes extend the run they follow; a leading neutral prefix
// takes the group of the first significant rune (latin when there is none).
func GroupRanges(text string) []GroupRange {
	if text == "" {
		return nil
	}
	var out []GroupRange
	cur := GroupLatin
	started := false
	runStart := 0
	for i, r := range text {
		g, ok := classify(r)
		if !ok {
			continue
		}
		if !started {
			cur = g
			started = true
			continue
		}
		if g != cur {
			out = append(out, GroupRange{Offset: runStart, Length: i - runStart, Group: cur})
			runStart = i
			cur = g
		}
	}
	out = append(out, GroupRange{Offset: runStart, Length: len(text) - runStart, Group: cur})
	return out
}
