package text

import (
	"strings"

	"dmltext/dml"
	"dmltext/fonts"
)

// Typeface resolution. The font record for a group cascades like any other
// attribute; on top of that, a resolved typeface may be a theme placeholder
// marker ("+mj-…" for the major collection, "+mn-…" for the minor one) that
// redirects to the theme font scheme. The symbol group is never redirected -
// the theme carries no symbol mapping.

const (
	majorFontMarker = "+mj-"
	minorFontMarker = "+mn-"
)

// redirectThemeFont substitutes a theme placeholder typeface with the
// concrete font from the theme's font scheme. Non-placeholder records pass
// through unchanged; when the theme cannot supply a collection the marker
// record is returned as is.
func (r *Run) redirectThemeFont(f *dml.TextFont, g fonts.Group) *dml.TextFont {
	var major bool
	switch {
	case strings.HasPrefix(f.Typeface, majorFontMarker):
		major = true
	case strings.HasPrefix(f.Typeface, minorFontMarker):
	default:
		return f
	}
	if g == fonts.GroupSymbol {
		return f
	}
	if r.par == nil {
		return f
	}
	shape := r.par.Shape()
	if shape == nil {
		return f
	}
	theme := shape.Theme()
	if theme == nil {
		return f
	}
	scheme := theme.FontScheme()
	if scheme == nil {
		return f
	}
	coll := &scheme.Minor
	if major {
		coll = &scheme.Major
	}
	sub, _ := fonts.ParseGroup(f.Typeface[len(majorFontMarker):])
	font := coll.Font(sub)
	if font == nil || font.Typeface == "" {
		font = &coll.Latin
	}
	return font
}

// resolvedFont cascade-resolves the font record for a group, applying theme
// indirection per scope. A scope whose record redirects to nothing is
// treated as not found and the walk continues.
func (r *Run) resolvedFont(g fonts.Group) *dml.TextFont {
	f, _ := fetchValue(r, func(props *dml.CharacterProperties) (*dml.TextFont, bool) {
		font := props.Font(g, false)
		if font == nil {
			return nil, false
		}
		font = r.redirectThemeFont(font, g)
		return font, font != nil
	})
	return f
}

// FontFamily returns the effective typeface for the font group inferred
// from the run's text. The second result is false when no scope supplies a
// typeface.
func (r *Run) FontFamily() (string, bool) {
	return r.FontFamilyOf(fonts.GroupFirst(r.RawText()))
}

// FontFamilyOf returns the effective typeface for an explicit font group.
func (r *Run) FontFamilyOf(g fonts.Group) (string, bool) {
	f := r.resolvedFont(g)
	if f == nil || f.Typeface == "" {
		return "", false
	}
	return f.Typeface, true
}

// SetFontFamily writes a local typeface for the font group inferred from
// the run's text.
func (r *Run) SetFontFamily(typeface string) {
	r.SetFontFamilyOf(typeface, fonts.GroupFirst(r.RawText()))
}

// SetFontFamilyOf writes a local typeface for an explicit font group,
// creating the font record if absent.
func (r *Run) SetFontFamilyOf(typeface string, g fonts.Group) {
	r.properties(true).Font(g, true).Typeface = typeface
}

// ClearFontFamily unsets the local font record for a group, leaving other
// groups and inherited scopes untouched.
func (r *Run) ClearFontFamily(g fonts.Group) {
	props := r.properties(false)
	if props == nil {
		return
	}
	props.ClearFont(g)
}

// runFontInfo exposes the resolved font record of one group as fonts.FontInfo.
type runFontInfo struct {
	run   *Run
	group fonts.Group
}

func (fi runFontInfo) Typeface() string {
	f := fi.run.resolvedFont(fi.group)
	if f == nil {
		return ""
	}
	return f.Typeface
}

func (fi runFontInfo) Charset() (fonts.Charset, bool) {
	f := fi.run.resolvedFont(fi.group)
	if f == nil || f.Charset == nil {
		return fonts.CharsetANSI, false
	}
	return fonts.Charset(*f.Charset), true
}

func (fi runFontInfo) Pitch() (fonts.Pitch, bool) {
	f := fi.run.resolvedFont(fi.group)
	if f == nil || f.PitchFamily == nil {
		return fonts.PitchDefault, false
	}
	return fonts.DecodePitch(*f.PitchFamily), true
}

func (fi runFontInfo) Family() (fonts.Family, bool) {
	f := fi.run.resolvedFont(fi.group)
	if f == nil || f.PitchFamily == nil {
		return fonts.FamilyUnknown, false
	}
	return fonts.DecodeFamily(*f.PitchFamily), true
}

// FontInfo returns the resolved font description for a group, or nil when
// no scope supplies a typeface for it.
func (r *Run) FontInfo(g fonts.Group) fonts.FontInfo {
	fi := runFontInfo{run: r, group: g}
	if fi.Typeface() == "" {
		return nil
	}
	return fi
}

// SetFontInfo copies typeface, charset and pitch/family from a font
// description onto the local record for a group, as one unit. When the
// source has neither pitch nor family the destination's packed byte is
// explicitly cleared rather than left stale.
func (r *Run) SetFontInfo(info fonts.FontInfo, g fonts.Group) {
	if info == nil {
		return
	}
	f := r.properties(true).Font(g, true)
	f.Typeface = info.Typeface()

	if cs, ok := info.Charset(); ok {
		b := byte(cs)
		f.Charset = &b
	} else {
		f.Charset = nil
	}

	pitch, pok := info.Pitch()
	family, fok := info.Family()
	if !pok && !fok {
		f.PitchFamily = nil
		return
	}
	if !pok {
		pitch = fonts.PitchVariable
	}
	if !fok {
		family = fonts.FamilySwiss
	}
	b := fonts.EncodePitchFamily(pitch, family)
	f.PitchFamily = &b
}

// PitchAndFamily is the legacy combined accessor: missing halves are
// substituted with variable pitch and swiss family before packing, so the
// result is never "unset".
func (r *Run) PitchAndFamily() byte {
	fi := runFontInfo{run: r, group: fonts.GroupFirst(r.RawText())}
	pitch, ok := fi.Pitch()
	if !ok {
		pitch = fonts.PitchVariable
	}
	family, ok := fi.Family()
	if !ok {
		family = fonts.FamilySwiss
	}
	return fonts.EncodePitchFamily(pitch, family)
}
