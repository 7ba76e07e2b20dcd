package text

import (
	"go.uber.org/zap"

	"dmltext/dml"
)

// Color resolution. Only solid paint can be written to a run; reading
// resolves the fill descriptor through the cascade, taking the shape
// style's font reference scheme color along as the substitution for phClr,
// and delegates the final scheme-color to concrete-color step to the paint
// selector.

// Paint is an effective paint produced by color resolution.
type Paint interface {
	paintKind() string
}

// SolidPaint is a single concrete color.
type SolidPaint struct {
	Color dml.RGBColor
}

func (SolidPaint) paintKind() string { return "solid" }

// GradientStop is one stop of a gradient paint; Position is in thousandths
// of a percent.
type GradientStop struct {
	Position int
	Color    dml.RGBColor
}

// GradientPaint is a multi-stop gradient. The run model cannot store it -
// it exists so callers can hand any paint to SetFontColor and get the
// documented no-op for unsupported kinds.
type GradientPaint struct {
	Stops []GradientStop
}

func (GradientPaint) paintKind() string { return "gradient" }

// defaultPaintSelector resolves srgb and scheme colors against the theme,
// applying luminance transforms. The placeholder flag is ignored here; it is
// part of the contract for selectors that distinguish placeholder shapes.
type defaultPaintSelector struct{}

// DefaultPaintSelector returns the built-in theme-aware paint selector.
func DefaultPaintSelector() PaintSelector { return defaultPaintSelector{} }

func (defaultPaintSelector) SelectPaint(fill *dml.SolidFill, phClr *dml.SchemeColorRef, theme Theme, placeholder bool) (Paint, bool) {
	if fill == nil {
		return nil, false
	}
	if fill.SRGB != nil {
		return SolidPaint{Color: *fill.SRGB}, true
	}
	if fill.Scheme == nil {
		return nil, false
	}
	ref := fill.Scheme
	if ref.Color == dml.SchemePlaceholder {
		if phClr == nil {
			return nil, false
		}
		ref = phClr
	}
	if theme == nil {
		return nil, false
	}
	base, ok := theme.SchemeColor(ref.Color)
	if !ok {
		return nil, false
	}
	return SolidPaint{Color: applyLumTransforms(base, ref)}, true
}

// applyLumTransforms scales a color by lumMod and shifts it by lumOff, the
// way placeholder lighten/darken variants are produced.
func applyLumTransforms(c dml.RGBColor, ref *dml.SchemeColorRef) dml.RGBColor {
	mod, off := 100000, 0
	if ref.LumMod != nil {
		mod = *ref.LumMod
	}
	if ref.LumOff != nil {
		off = *ref.LumOff
	}
	if mod == 100000 && off == 0 {
		return c
	}
	scale := func(v uint8) uint8 {
		x := int(v)*mod/100000 + 255*off/100000
		if x < 0 {
			x = 0
		}
		if x > 255 {
			x = 255
		}
		return uint8(x)
	}
	return dml.RGBColor{R: scale(c.R), G: scale(c.G), B: scale(c.B)}
}

func (r *Run) paintSelector() PaintSelector {
	if r.paints != nil {
		return r.paints
	}
	return defaultPaintSelector{}
}

// FontColor resolves the effective font paint through the cascade. The
// second result is false when no scope supplies a resolvable fill.
func (r *Run) FontColor() (Paint, bool) {
	var (
		phClr       *dml.SchemeColorRef
		theme       Theme
		placeholder bool
	)
	if r.par != nil {
		if shape := r.par.Shape(); shape != nil {
			phClr = shape.StyleFontRefSchemeColor()
			theme = shape.Theme()
			placeholder = shape.IsPlaceholder()
		}
	}
	sel := r.paintSelector()

	var out Paint
	found := r.fetchProperty(func(props *dml.CharacterProperties) bool {
		if props == nil || props.Fill == nil {
			return false
		}
		paint, ok := sel.SelectPaint(props.Fill, phClr, theme, placeholder)
		if !ok {
			return false
		}
		out = paint
		return true
	})
	return out, found
}

// SetFontColor stores a local solid fill. Any other paint kind is logged
// and ignored - not an error.
func (r *Run) SetFontColor(paint Paint) {
	sp, ok := paint.(SolidPaint)
	if !ok {
		kind := "nil"
		if paint != nil {
			kind = paint.paintKind()
		}
		r.log.Warn("Currently only solid paint is supported, ignoring", zap.String("kind", kind))
		return
	}
	c := sp.Color
	r.properties(true).Fill = &dml.SolidFill{SRGB: &c}
}
