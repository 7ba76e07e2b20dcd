package dml

import (
	"fmt"

	"dmltext/fonts"
)

// Schema-level data model for run character formatting. Every field is
// independently optional: a nil pointer means the attribute is not set at
// this level and the effective value comes from an enclosing scope. "Unset"
// and "set to the default" are different states and must stay different.

// CharacterProperties mirrors the run properties record (a:rPr / a:defRPr).
type CharacterProperties struct {
	Size     *int // hundredths of a point
	Spacing  *int // hundredths of a point
	Bold     *bool
	Italic   *bool
	Underline *UnderlineStyle
	Strike    *StrikeStyle
	Baseline  *int // thousandths of a percent; positive superscript, negative subscript
	Caps      *CapsMode

	Latin         *TextFont
	EastAsian     *TextFont
	ComplexScript *TextFont
	Symbol        *TextFont

	Fill *SolidFill
	Link *Hyperlink
}

// Font returns the font record for a group. With create set, a missing
// record is allocated; without it, absence is reported as nil.
func (p *CharacterProperties) Font(g fonts.Group, create bool) *TextFont {
	var slot **TextFont
	switch g {
	case fonts.GroupEastAsian:
		slot = &p.EastAsian
	case fonts.GroupComplexScript:
		slot = &p.ComplexScript
	case fonts.GroupSymbol:
		slot = &p.Symbol
	default:
		slot = &p.Latin
	}
	if *slot == nil && create {
		*slot = &TextFont{}
	}
	return *slot
}

// ClearFont unsets the font record for a group, leaving other groups alone.
func (p *CharacterProperties) ClearFont(g fonts.Group) {
	switch g {
	case fonts.GroupEastAsian:
		p.EastAsian = nil
	case fonts.GroupComplexScript:
		p.ComplexScript = nil
	case fonts.GroupSymbol:
		p.Symbol = nil
	default:
		p.Latin = nil
	}
}

// Clone returns a deep copy of the record; no pointers are shared with the
// original.
func (p *CharacterProperties) Clone() *CharacterProperties {
	if p == nil {
		return nil
	}
	out := &CharacterProperties{}
	out.Size = cloneVal(p.Size)
	out.Spacing = cloneVal(p.Spacing)
	out.Bold = cloneVal(p.Bold)
	out.Italic = cloneVal(p.Italic)
	out.Underline = cloneVal(p.Underline)
	out.Strike = cloneVal(p.Strike)
	out.Baseline = cloneVal(p.Baseline)
	out.Caps = cloneVal(p.Caps)
	out.Latin = p.Latin.clone()
	out.EastAsian = p.EastAsian.clone()
	out.ComplexScript = p.ComplexScript.clone()
	out.Symbol = p.Symbol.clone()
	out.Fill = p.Fill.clone()
	if p.Link != nil {
		out.Link = &Hyperlink{RelID: p.Link.RelID}
		out.Link.CopyFrom(p.Link)
	}
	return out
}

func cloneVal[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func (f *TextFont) clone() *TextFont {
	if f == nil {
		return nil
	}
	c := *f
	c.Charset = cloneVal(f.Charset)
	c.PitchFamily = cloneVal(f.PitchFamily)
	return &c
}

func (s *SolidFill) clone() *SolidFill {
	if s == nil {
		return nil
	}
	c := *s
	c.SRGB = cloneVal(s.SRGB)
	c.Alpha = cloneVal(s.Alpha)
	if s.Scheme != nil {
		ref := *s.Scheme
		ref.LumMod = cloneVal(s.Scheme.LumMod)
		ref.LumOff = cloneVal(s.Scheme.LumOff)
		c.Scheme = &ref
	}
	return &c
}

// TextFont mirrors a:latin / a:ea / a:cs / a:sym.
type TextFont struct {
	Typeface    string
	Charset     *byte
	PitchFamily *byte
}

// RGBColor is a literal sRGB color.
type RGBColor struct {
	R, G, B uint8
}

func (c RGBColor) String() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// ParseRGBColor parses the six-hex-digit form used by a:srgbClr.
func ParseRGBColor(s string) (RGBColor, bool) {
	var c RGBColor
	if len(s) != 6 {
		return c, false
	}
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return RGBColor{}, false
	}
	return c, true
}

// SchemeColorRef is an indirect color reference resolved through the theme,
// with optional luminance transforms (values in thousandths of a percent).
type SchemeColorRef struct {
	Color  SchemeColor
	LumMod *int
	LumOff *int
}

// SolidFill is a solid-fill paint descriptor: either a literal color or a
// scheme color reference, never both.
type SolidFill struct {
	SRGB   *RGBColor
	Scheme *SchemeColorRef
	Alpha  *int // thousandths of a percent
}

// Hyperlink is a click action bound to one properties record. Links live on
// local run properties only and are never resolved through the cascade.
type Hyperlink struct {
	RelID   string // relationship id of the link target within the package
	Target  string // resolved target, when known without the package
	Tooltip string
	History *bool
}

// CopyFrom copies the link by content. The relationship id is not copied:
// ids are scoped to a package part and the destination keeps its own.
func (h *Hyperlink) CopyFrom(src *Hyperlink) {
	if src == nil {
		return
	}
	h.Target = src.Target
	h.Tooltip = src.Tooltip
	if src.History != nil {
		v := *src.History
		h.History = &v
	} else {
		h.History = nil
	}
}

// FontCollection is one half of the theme font scheme: concrete fonts for
// latin, east asian and complex script text plus supplemental typefaces
// keyed by script tag. The theme carries no symbol mapping.
type FontCollection struct {
	Latin         TextFont
	EastAsian     TextFont
	ComplexScript TextFont
	Supplemental  map[string]string // BCP-47 script tag -> typeface
}

// Font returns the sub-font for a group, or nil for the symbol group.
func (fc *FontCollection) Font(g fonts.Group) *TextFont {
	switch g {
	case fonts.GroupLatin:
		return &fc.Latin
	case fonts.GroupEastAsian:
		return &fc.EastAsian
	case fonts.GroupComplexScript:
		return &fc.ComplexScript
	}
	return nil
}

// FontScheme is the theme font scheme: the major collection for headings and
// the minor collection for body text.
type FontScheme struct {
	Name  string
	Major FontCollection
	Minor FontCollection
}
