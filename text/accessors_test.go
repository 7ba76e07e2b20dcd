package text

import (
	"errors"
	"testing"

	"dmltext/config"
	"dmltext/dml"
)

func TestFontSizeRoundTrip(t *testing.T) {
	r, _ := newTestRun("abc")
	if err := r.SetFontSize(12.5); err != nil {
		t.Fatalf("SetFontSize: %v", err)
	}
	got, ok := r.FontSize()
	if !ok || got != 12.5 {
		t.Fatalf("FontSize = %v, %v; want 12.5", got, ok)
	}
}

func TestFontSizeBelowMinimum(t *testing.T) {
	r, _ := newTestRun("abc")
	if err := r.SetFontSize(24); err != nil {
		t.Fatalf("SetFontSize: %v", err)
	}
	err := r.SetFontSize(0.5)
	if err == nil {
		t.Fatal("expected error for 0.5pt")
	}
	if !errors.Is(err, ErrInvalidFontSize) || !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("wrong error: %v", err)
	}
	if got, ok := r.FontSize(); !ok || got != 24 {
		t.Fatalf("failed setter mutated state: %v, %v", got, ok)
	}
}

func TestFontSizeUnresolved(t *testing.T) {
	r, _ := newTestRun("abc")
	if _, ok := r.FontSize(); ok {
		t.Fatal("size resolved with no scope supplying one")
	}
}

func TestFontSizeAutofitScale(t *testing.T) {
	r, par := newTestRun("abc")
	par.shape.scale = 0.5
	if err := r.SetFontSize(10); err != nil {
		t.Fatalf("SetFontSize: %v", err)
	}
	if got, _ := r.FontSize(); got != 5 {
		t.Fatalf("scaled size = %v, want 5", got)
	}
	// The stored nominal size is untouched by the scale.
	if props := r.Properties(); props.Size == nil || *props.Size != 1000 {
		t.Fatalf("stored size = %v", props.Size)
	}
}

func TestFontSizeInheritedFromShape(t *testing.T) {
	r, par := newTestRun("abc")
	par.shape.props = &dml.CharacterProperties{Size: intPtr(1800)}
	if got, ok := r.FontSize(); !ok || got != 18 {
		t.Fatalf("inherited size = %v, %v", got, ok)
	}
}

func TestClearFontSizeRevertsToCascade(t *testing.T) {
	r, par := newTestRun("abc")
	par.shape.props = &dml.CharacterProperties{Size: intPtr(1800)}
	if err := r.SetFontSize(30); err != nil {
		t.Fatalf("SetFontSize: %v", err)
	}
	r.ClearFontSize()
	if got, ok := r.FontSize(); !ok || got != 18 {
		t.Fatalf("size after clear = %v, %v; want inherited 18", got, ok)
	}
}

func TestFormattingDefaultsOverrideMinimum(t *testing.T) {
	r, _ := newTestRun("abc")
	r.SetFormattingDefaults(&config.FormattingDefaults{MinFontSize: 6})
	if err := r.SetFontSize(4); err == nil {
		t.Fatal("expected error below configured minimum")
	}
	if err := r.SetFontSize(6); err != nil {
		t.Fatalf("SetFontSize at configured minimum: %v", err)
	}
}

func TestCharacterSpacing(t *testing.T) {
	r, _ := newTestRun("abc")
	if got := r.CharacterSpacing(); got != 0 {
		t.Fatalf("default spacing = %v", got)
	}
	r.SetCharacterSpacing(-1.5)
	if got := r.CharacterSpacing(); got != -1.5 {
		t.Fatalf("spacing = %v", got)
	}
	// Exactly zero clears the local override instead of storing it.
	r.SetCharacterSpacing(0)
	if r.Properties().Spacing != nil {
		t.Fatal("zero spacing stored instead of cleared")
	}
}

func TestCharacterSpacingZeroRevertsToCascade(t *testing.T) {
	r, par := newTestRun("abc")
	par.shape.props = &dml.CharacterProperties{Spacing: intPtr(200)}
	r.SetCharacterSpacing(-1)
	r.SetCharacterSpacing(0)
	if got := r.CharacterSpacing(); got != 2 {
		t.Fatalf("spacing after clear = %v, want inherited 2", got)
	}
}

func TestBoldLocalOverrideStopsCascade(t *testing.T) {
	r, par := newTestRun("abc")
	r.SetBold(true)
	if !r.Bold() {
		t.Fatal("local bold not visible")
	}
	if par.shape.fetchCalls != 0 || par.themeCalls != 0 || par.masterCalls != 0 {
		t.Fatalf("ancestor scopes probed despite local value: shape=%d theme=%d master=%d",
			par.shape.fetchCalls, par.themeCalls, par.masterCalls)
	}
}

func TestBoldDefaultFalse(t *testing.T) {
	r, par := newTestRun("abc")
	if r.Bold() {
		t.Fatal("bold defaulted to true")
	}
	// Exhaustion walked every scope exactly once.
	if par.shape.fetchCalls != 1 || par.themeCalls != 1 || par.masterCalls != 1 {
		t.Fatalf("unexpected scope calls: shape=%d theme=%d master=%d",
			par.shape.fetchCalls, par.themeCalls, par.masterCalls)
	}
}

func TestBoldInheritedFromMaster(t *testing.T) {
	r, par := newTestRun("abc")
	par.masterProps = &dml.CharacterProperties{Bold: boolPtr(true)}
	if !r.Bold() {
		t.Fatal("master bold not inherited")
	}
}

func TestExplicitFalseBeatsInheritedTrue(t *testing.T) {
	r, par := newTestRun("abc")
	par.shape.props = &dml.CharacterProperties{Italic: boolPtr(true)}
	r.SetItalic(false)
	if r.Italic() {
		t.Fatal("local false did not shadow inherited true")
	}
}

func TestUnderlineAndStrike(t *testing.T) {
	r, _ := newTestRun("abc")
	if r.Underlined() || r.Strikethrough() {
		t.Fatal("decorations default to set")
	}
	r.SetUnderlined(true)
	if !r.Underlined() || r.Underline() != dml.UnderlineSingle {
		t.Fatalf("underline = %v", r.Underline())
	}
	r.SetUnderlined(false)
	if r.Underlined() {
		t.Fatal("underline not removed")
	}
	r.SetStrikethrough(true)
	if !r.Strikethrough() || r.Strike() != dml.StrikeSingle {
		t.Fatalf("strike = %v", r.Strike())
	}
}

func TestUnderlineStyleInherited(t *testing.T) {
	r, par := newTestRun("abc")
	style := dml.UnderlineWavy
	par.themeProps = &dml.CharacterProperties{Underline: &style}
	if r.Underline() != dml.UnderlineWavy || !r.Underlined() {
		t.Fatalf("inherited underline = %v", r.Underline())
	}
}

func TestBaselineAccessors(t *testing.T) {
	r, _ := newTestRun("abc")
	if r.Superscript() || r.Subscript() || r.BaselineOffset() != 0 {
		t.Fatal("baseline defaults wrong")
	}
	r.SetSuperscript(true)
	if !r.Superscript() || r.Subscript() {
		t.Fatal("superscript flags wrong")
	}
	if got := r.BaselineOffset(); got != 30 {
		t.Fatalf("superscript offset = %v", got)
	}
	r.SetSubscript(true)
	if r.Superscript() || !r.Subscript() {
		t.Fatal("subscript flags wrong")
	}
	if got := r.BaselineOffset(); got != -25 {
		t.Fatalf("subscript offset = %v", got)
	}
	r.SetSubscript(false)
	if r.Superscript() || r.Subscript() {
		t.Fatal("baseline reset failed")
	}
	// An explicit zero is a found value, not resolution exhaustion.
	if r.Properties().Baseline == nil || *r.Properties().Baseline != 0 {
		t.Fatalf("baseline = %v", r.Properties().Baseline)
	}
}

func TestSetBaselineOffsetTruncatesFraction(t *testing.T) {
	// Fractional percentages are truncated to a whole percent before the
	// permille conversion.
	r, _ := newTestRun("abc")
	r.SetBaselineOffset(30.7)
	if got := *r.Properties().Baseline; got != 30000 {
		t.Fatalf("stored baseline = %d, want 30000", got)
	}
	r.SetBaselineOffset(-25.9)
	if got := *r.Properties().Baseline; got != -25000 {
		t.Fatalf("stored baseline = %d, want -25000", got)
	}
}

func TestConfiguredBaselineOffsets(t *testing.T) {
	r, _ := newTestRun("abc")
	r.SetFormattingDefaults(&config.FormattingDefaults{SuperscriptOffset: 40, SubscriptOffset: -30})
	r.SetSuperscript(true)
	if got := r.BaselineOffset(); got != 40 {
		t.Fatalf("configured superscript offset = %v", got)
	}
	r.SetSubscript(true)
	if got := r.BaselineOffset(); got != -30 {
		t.Fatalf("configured subscript offset = %v", got)
	}
}

func TestTextCap(t *testing.T) {
	r, par := newTestRun("abc")
	if r.TextCap() != dml.CapsNone {
		t.Fatalf("default caps = %v", r.TextCap())
	}
	mode := dml.CapsAll
	par.shape.props = &dml.CharacterProperties{Caps: &mode}
	if r.TextCap() != dml.CapsAll {
		t.Fatalf("inherited caps = %v", r.TextCap())
	}
}

func TestFailedSetterLeavesOtherAttributesAlone(t *testing.T) {
	r, _ := newTestRun("abc")
	r.SetBold(true)
	r.SetItalic(true)
	if err := r.SetFontSize(0.2); err == nil {
		t.Fatal("expected size error")
	}
	if !r.Bold() || !r.Italic() {
		t.Fatal("failed size setter disturbed unrelated attributes")
	}
	if r.Properties().Size != nil {
		t.Fatal("failed size setter stored a size")
	}
}
