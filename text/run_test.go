package text

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"dmltext/dml"
)

func TestRunKinds(t *testing.T) {
	par := newTestParagraph()

	r := NewTextRun(par, "hello", nil)
	if r.Kind() != KindPlainText || r.RawText() != "hello" {
		t.Fatalf("text run: kind %v text %q", r.Kind(), r.RawText())
	}
	r.SetText("world")
	if r.RawText() != "world" {
		t.Fatalf("SetText: %q", r.RawText())
	}

	br := NewLineBreak(par, nil)
	if br.Kind() != KindLineBreak || br.RawText() != "\n" {
		t.Fatalf("line break: kind %v text %q", br.Kind(), br.RawText())
	}
	br.SetText("ignored")
	if br.RawText() != "\n" {
		t.Fatal("line break text must be immutable")
	}

	fr := NewFieldRun(par, "slidenum", "7", nil)
	if fr.Kind() != KindField || fr.RawText() != "7" {
		t.Fatalf("field run: kind %v text %q", fr.Kind(), fr.RawText())
	}
	ft, ok := fr.FieldType()
	if !ok || ft != dml.FieldSlideNumber {
		t.Fatalf("field type = %v, %v", ft, ok)
	}
	if _, ok := r.FieldType(); ok {
		t.Fatal("plain run reported a field type")
	}
}

func TestNewRunRejectsUnknownKind(t *testing.T) {
	par := newTestParagraph()
	r, err := NewRun(par, Kind(42), "x", zap.NewNop())
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if !errors.Is(err, ErrUnsupportedContentKind) {
		t.Fatalf("wrong error: %v", err)
	}
	if r != nil {
		t.Fatal("failed construction produced an object")
	}
}

func TestPropertiesLifecycle(t *testing.T) {
	r, _ := newTestRun("abc")

	// Reading never creates the record.
	_ = r.Bold()
	_, _ = r.FontSize()
	_ = r.Hyperlink()
	if r.Properties() != nil {
		t.Fatal("read access created local properties")
	}

	// First mutation creates it; it persists afterwards.
	r.SetBold(true)
	props := r.Properties()
	if props == nil {
		t.Fatal("mutation did not create local properties")
	}
	_ = r.Italic()
	if r.Properties() != props {
		t.Fatal("properties record was replaced by a read")
	}
}

func TestSetPropertiesAttachesParsedRecord(t *testing.T) {
	r, _ := newTestRun("abc")
	props := &dml.CharacterProperties{Bold: boolPtr(true)}
	r.SetProperties(props)
	if !r.Bold() {
		t.Fatal("attached properties not visible through accessors")
	}
}
