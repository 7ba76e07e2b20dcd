package text

import (
	"fmt"

	"dmltext/dml"
)

// Standard accessor fallbacks; FormattingDefaults can override them.
const (
	stdMinFontSize       = 1.0  // points
	stdSuperscriptOffset = 30.0 // percent
	stdSubscriptOffset   = -25.0
)

func (r *Run) minFontSize() float64 {
	if r.defaults != nil && r.defaults.MinFontSize > 0 {
		return r.defaults.MinFontSize
	}
	return stdMinFontSize
}

func (r *Run) superscriptOffset() float64 {
	if r.defaults != nil && r.defaults.SuperscriptOffset != 0 {
		return r.defaults.SuperscriptOffset
	}
	return stdSuperscriptOffset
}

func (r *Run) subscriptOffset() float64 {
	if r.defaults != nil && r.defaults.SubscriptOffset != 0 {
		return r.defaults.SubscriptOffset
	}
	return stdSubscriptOffset
}

// FontSize returns the displayed font size in points: the cascade-resolved
// nominal size multiplied by the shape's autofit font scale. The scale is
// applied strictly after resolution, never inside it. The second result is
// false when no scope supplies a size.
func (r *Run) FontSize() (float64, bool) {
	scale := 1.0
	if r.par != nil {
		if shape := r.par.Shape(); shape != nil {
			if s := shape.AutofitFontScale(); s > 0 {
				scale = s
			}
		}
	}
	v, ok := fetchValue(r, func(props *dml.CharacterProperties) (int, bool) {
		if props.Size == nil {
			return 0, false
		}
		return *props.Size, true
	})
	if !ok {
		return 0, false
	}
	return float64(v) / 100 * scale, true
}

// SetFontSize stores a local font size in points. Sizes below the minimum
// (1pt unless configured otherwise) fail with ErrInvalidFontSize and leave
// the prior value untouched.
func (r *Run) SetFontSize(points float64) error {
	if floor := r.minFontSize(); points < floor {
		return fmt.Errorf("%w: %gpt < %gpt", ErrInvalidFontSize, points, floor)
	}
	v := int(100 * points)
	r.properties(true).Size = &v
	return nil
}

// ClearFontSize removes the local size override, reverting to the cascade.
func (r *Run) ClearFontSize() {
	r.properties(true).Size = nil
}

// CharacterSpacing returns the spacing between characters in points.
// Positive values expand, negative condense; an omitted attribute means no
// adjustment, so the default is 0.
func (r *Run) CharacterSpacing() float64 {
	v, ok := fetchValue(r, func(props *dml.CharacterProperties) (int, bool) {
		if props.Spacing == nil {
			return 0, false
		}
		return *props.Spacing, true
	})
	if !ok {
		return 0
	}
	return float64(v) / 100
}

// SetCharacterSpacing stores the character spacing in points. Setting it to
// exactly 0 clears the local override instead of storing an explicit zero.
func (r *Run) SetCharacterSpacing(points float64) {
	props := r.properties(true)
	if points == 0 {
		props.Spacing = nil
		return
	}
	v := int(100 * points)
	props.Spacing = &v
}

// Bold reports the effective bold flag, false when no scope sets it.
func (r *Run) Bold() bool {
	v, ok := fetchValue(r, func(props *dml.CharacterProperties) (bool, bool) {
		if props.Bold == nil {
			return false, false
		}
		return *props.Bold, true
	})
	return ok && v
}

// SetBold stores a local bold override.
func (r *Run) SetBold(bold bool) {
	r.properties(true).Bold = &bold
}

// Italic reports the effective italic flag, false when no scope sets it.
func (r *Run) Italic() bool {
	v, ok := fetchValue(r, func(props *dml.CharacterProperties) (bool, bool) {
		if props.Italic == nil {
			return false, false
		}
		return *props.Italic, true
	})
	return ok && v
}

// SetItalic stores a local italic override.
func (r *Run) SetItalic(italic bool) {
	r.properties(true).Italic = &italic
}

// Underline returns the effective underline style, UnderlineNone when no
// scope sets one.
func (r *Run) Underline() dml.UnderlineStyle {
	v, ok := fetchValue(r, func(props *dml.CharacterProperties) (dml.UnderlineStyle, bool) {
		if props.Underline == nil {
			return dml.UnderlineNone, false
		}
		return *props.Underline, true
	})
	if !ok {
		return dml.UnderlineNone
	}
	return v
}

// Underlined reports whether the effective underline style draws anything.
func (r *Run) Underlined() bool {
	return r.Underline() != dml.UnderlineNone
}

// SetUnderlined stores a single underline, or removes underlining.
func (r *Run) SetUnderlined(underline bool) {
	style := dml.UnderlineNone
	if underline {
		style = dml.UnderlineSingle
	}
	r.properties(true).Underline = &style
}

// Strike returns the effective strike style, StrikeNone when unset.
func (r *Run) Strike() dml.StrikeStyle {
	v, ok := fetchValue(r, func(props *dml.CharacterProperties) (dml.StrikeStyle, bool) {
		if props.Strike == nil {
			return dml.StrikeNone, false
		}
		return *props.Strike, true
	})
	if !ok {
		return dml.StrikeNone
	}
	return v
}

// Strikethrough reports whether the effective strike style draws anything.
func (r *Run) Strikethrough() bool {
	return r.Strike() != dml.StrikeNone
}

// SetStrikethrough stores a single strike, or removes it.
func (r *Run) SetStrikethrough(strike bool) {
	style := dml.StrikeNone
	if strike {
		style = dml.StrikeSingle
	}
	r.properties(true).Strike = &style
}

func (r *Run) baseline() (int, bool) {
	return fetchValue(r, func(props *dml.CharacterProperties) (int, bool) {
		if props.Baseline == nil {
			return 0, false
		}
		return *props.Baseline, true
	})
}

// Superscript reports whether the effective baseline offset raises the run.
func (r *Run) Superscript() bool {
	v, ok := r.baseline()
	return ok && v > 0
}

// Subscript reports whether the effective baseline offset lowers the run.
func (r *Run) Subscript() bool {
	v, ok := r.baseline()
	return ok && v < 0
}

// BaselineOffset returns the effective baseline offset as a percentage,
// positive for superscript and negative for subscript; 0 when unset.
func (r *Run) BaselineOffset() float64 {
	v, ok := r.baseline()
	if !ok {
		return 0
	}
	return float64(v) / 1000
}

// SetBaselineOffset stores a local baseline offset as a percentage.
// The fraction is truncated to a whole percent before storing.
func (r *Run) SetBaselineOffset(percent float64) {
	v := int(percent) * 1000
	r.properties(true).Baseline = &v
}

// SetSuperscript raises the run by the default superscript offset, or
// resets the baseline when flag is false.
func (r *Run) SetSuperscript(flag bool) {
	if flag {
		r.SetBaselineOffset(r.superscriptOffset())
	} else {
		r.SetBaselineOffset(0)
	}
}

// SetSubscript lowers the run by the default subscript offset, or resets
// the baseline when flag is false.
func (r *Run) SetSubscript(flag bool) {
	if flag {
		r.SetBaselineOffset(r.subscriptOffset())
	} else {
		r.SetBaselineOffset(0)
	}
}

// TextCap returns the effective text case transform, CapsNone when unset.
func (r *Run) TextCap() dml.CapsMode {
	v, ok := fetchValue(r, func(props *dml.CharacterProperties) (dml.CapsMode, bool) {
		if props.Caps == nil {
			return dml.CapsNone, false
		}
		return *props.Caps, true
	})
	if !ok {
		return dml.CapsNone
	}
	return v
}
