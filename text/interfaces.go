package text

import "dmltext/dml"

// Narrow contracts the resolver consumes from the surrounding document
// model. The cascade depends only on these capabilities, never on concrete
// shape or slide types: each scope is a uniform "try this probe" callback
// and the first one to report success ends the walk.

// Probe inspects one properties record and reports whether it supplied a
// value. A probe must treat a nil record as "not found".
type Probe func(props *dml.CharacterProperties) bool

// Shape is the text shape owning the paragraph of a run. Its fetch covers
// the shape's own inherited defaults and the list-style level matching the
// paragraph's indent level.
type Shape interface {
	FetchShapeProperty(probe Probe) bool

	// AutofitFontScale is the shrink factor from the text body autofit
	// settings, 1.0 when no autofit is active.
	AutofitFontScale() float64

	// StyleFontRefSchemeColor is the scheme color carried by the shape
	// style's font reference, nil when the shape has no style.
	StyleFontRefSchemeColor() *dml.SchemeColorRef

	Theme() Theme
	PackageContext() PackageContext
	IsPlaceholder() bool
}

// Paragraph is the paragraph containing a run.
type Paragraph interface {
	Shape() Shape
	IndentLevel() int
	FetchThemeProperty(probe Probe) bool
	FetchMasterProperty(probe Probe) bool
}

// Theme exposes the document theme parts the resolver needs.
type Theme interface {
	FontScheme() *dml.FontScheme
	SchemeColor(c dml.SchemeColor) (dml.RGBColor, bool)
}

// PackageContext allocates and resolves relationship ids for parts that
// live outside the text model, such as hyperlink targets.
type PackageContext interface {
	NextRelationshipID() string
	HyperlinkTarget(relID string) (string, bool)
}

// PaintSelector performs the final substitution from a fill descriptor and
// an optional placeholder scheme color to an effective paint.
type PaintSelector interface {
	SelectPaint(fill *dml.SolidFill, phClr *dml.SchemeColorRef, theme Theme, placeholder bool) (Paint, bool)
}
