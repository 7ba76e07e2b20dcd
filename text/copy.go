package text

import "go.uber.org/multierr"

// Copy transfers observed formatting from another run onto this one: for
// each attribute the source's effective (cascade-resolved) value is
// compared with the destination's effective value and written locally on
// difference. This preserves visual fidelity regardless of which scope
// originally supplied the source's value. Each setter stays its own unit of
// mutation; failures are collected, not aborted on.
func (r *Run) Copy(src *Run) error {
	if src == nil {
		return nil
	}
	var errs error

	if face, ok := src.FontFamily(); ok {
		if cur, _ := r.FontFamily(); cur != face {
			r.SetFontFamily(face)
		}
	}

	if paint, ok := src.FontColor(); ok {
		cur, curOK := r.FontColor()
		if !curOK || !paintEqual(cur, paint) {
			r.SetFontColor(paint)
		}
	}

	if size, ok := src.FontSize(); ok {
		if cur, curOK := r.FontSize(); !curOK || cur != size {
			errs = multierr.Append(errs, r.SetFontSize(size))
		}
	} else if _, curOK := r.FontSize(); curOK {
		r.ClearFontSize()
	}

	if bold := src.Bold(); bold != r.Bold() {
		r.SetBold(bold)
	}
	if italic := src.Italic(); italic != r.Italic() {
		r.SetItalic(italic)
	}
	if underline := src.Underlined(); underline != r.Underlined() {
		r.SetUnderlined(underline)
	}
	if strike := src.Strikethrough(); strike != r.Strikethrough() {
		r.SetStrikethrough(strike)
	}

	if hlSrc := src.Hyperlink(); hlSrc != nil {
		r.CreateHyperlink().CopyFrom(hlSrc)
	}

	return errs
}

func paintEqual(a, b Paint) bool {
	sa, okA := a.(SolidPaint)
	sb, okB := b.(SolidPaint)
	if okA && okB {
		return sa.Color == sb.Color
	}
	return false
}

// CopyProperties clones the full local properties record of another run
// onto this one, replacing any local record. Unlike Copy this transfers the
// stored (not effective) state.
func (r *Run) CopyProperties(src *Run) {
	r.props = src.properties(false).Clone()
}
