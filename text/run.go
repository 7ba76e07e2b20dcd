package text

import (
	"fmt"

	"go.uber.org/zap"

	"dmltext/config"
	"dmltext/dml"
)

// Run is a run of text within the containing text body - the lowest level
// text separation mechanism. A run rarely carries all of its formatting
// itself; the accessors resolve effective values through the enclosing
// scopes (shape, paragraph list style, theme, master).

// Kind is the content kind of a run.
type Kind int

const (
	KindPlainText Kind = iota
	KindLineBreak
	KindField
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlainText:
		return "text"
	case KindLineBreak:
		return "break"
	case KindField:
		return "field"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

type Run struct {
	kind      Kind
	text      string
	fieldType string // raw field type attribute, field runs only

	props *dml.CharacterProperties
	par   Paragraph

	log      *zap.Logger
	defaults *config.FormattingDefaults
	paints   PaintSelector
}

// NewRun constructs a run of the given kind. A kind outside the three
// recognized values fails with ErrUnsupportedContentKind and produces no
// usable object. Line break text is fixed to a single newline regardless of
// the text argument.
func NewRun(par Paragraph, kind Kind, runText string, log *zap.Logger) (*Run, error) {
	if log == nil {
		log = zap.NewNop()
	}
	switch kind {
	case KindPlainText, KindField:
	case KindLineBreak:
		runText = "\n"
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedContentKind, kind)
	}
	return &Run{kind: kind, text: runText, par: par, log: log.Named("text-run")}, nil
}

// NewTextRun constructs a plain text run.
func NewTextRun(par Paragraph, runText string, log *zap.Logger) *Run {
	r, _ := NewRun(par, KindPlainText, runText, log)
	return r
}

// NewLineBreak constructs a line break run.
func NewLineBreak(par Paragraph, log *zap.Logger) *Run {
	r, _ := NewRun(par, KindLineBreak, "", log)
	return r
}

// NewFieldRun constructs a field run with the raw field type attribute and
// its last rendered text.
func NewFieldRun(par Paragraph, fieldType, runText string, log *zap.Logger) *Run {
	r, _ := NewRun(par, KindField, runText, log)
	r.fieldType = fieldType
	return r
}

// Kind returns the content kind of the run.
func (r *Run) Kind() Kind { return r.kind }

// Paragraph returns the paragraph containing this run.
func (r *Run) Paragraph() Paragraph { return r.par }

// RawText returns the stored text, or a newline for a line break.
func (r *Run) RawText() string { return r.text }

// SetText overwrites the stored text. It is a no-op for line breaks.
func (r *Run) SetText(runText string) {
	if r.kind == KindLineBreak {
		return
	}
	r.text = runText
}

// FieldType classifies a field run by its type attribute. The second result
// is false for non-field runs.
func (r *Run) FieldType() (dml.FieldType, bool) {
	if r.kind != KindField {
		return dml.FieldGeneric, false
	}
	return dml.ParseFieldType(r.fieldType), true
}

// SetFormattingDefaults overrides the documented accessor fallbacks. A nil
// value restores the standard constants.
func (r *Run) SetFormattingDefaults(d *config.FormattingDefaults) { r.defaults = d }

// SetPaintSelector overrides the paint selection collaborator used by the
// color accessors.
func (r *Run) SetPaintSelector(sel PaintSelector) { r.paints = sel }

// Properties returns the local character properties, nil when the run has
// none. Reading never creates the record.
func (r *Run) Properties() *dml.CharacterProperties { return r.props }

// SetProperties attaches a properties record, replacing any local one.
// Document loaders use this to bind parsed run properties to the run.
func (r *Run) SetProperties(props *dml.CharacterProperties) { r.props = props }

// properties is the single internal entry point to the local record: the
// read path never creates, the write path creates on first mutation. The
// record persists until the run itself is discarded.
func (r *Run) properties(create bool) *dml.CharacterProperties {
	if r.props == nil && create {
		r.props = &dml.CharacterProperties{}
	}
	return r.props
}

func (r *Run) String() string {
	return fmt.Sprintf("[%s]%s", r.kind, r.text)
}
