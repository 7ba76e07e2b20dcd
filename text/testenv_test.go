package text

import (
	"go.uber.org/zap"

	"dmltext/dml"
)

// Stub collaborators implementing the narrow scope interfaces. The fetch
// counters let tests assert that resolution short-circuits: a scope that
// must not be consulted has to stay at zero calls.

type stubTheme struct {
	scheme *dml.FontScheme
	colors map[dml.SchemeColor]dml.RGBColor
}

func (t *stubTheme) FontScheme() *dml.FontScheme { return t.scheme }

func (t *stubTheme) SchemeColor(c dml.SchemeColor) (dml.RGBColor, bool) {
	v, ok := t.colors[c]
	return v, ok
}

type stubPackage struct {
	nextID  int
	targets map[string]string
}

func (p *stubPackage) NextRelationshipID() string {
	p.nextID++
	return "rId" + string(rune('0'+p.nextID))
}

func (p *stubPackage) HyperlinkTarget(relID string) (string, bool) {
	v, ok := p.targets[relID]
	return v, ok
}

type stubShape struct {
	props       *dml.CharacterProperties
	scale       float64
	theme       *stubTheme
	fontRef     *dml.SchemeColorRef
	pkg         *stubPackage
	placeholder bool

	fetchCalls int
}

func (s *stubShape) FetchShapeProperty(probe Probe) bool {
	s.fetchCalls++
	return s.props != nil && probe(s.props)
}

func (s *stubShape) AutofitFontScale() float64 {
	if s.scale == 0 {
		return 1
	}
	return s.scale
}

func (s *stubShape) StyleFontRefSchemeColor() *dml.SchemeColorRef { return s.fontRef }

func (s *stubShape) Theme() Theme {
	if s.theme == nil {
		return nil
	}
	return s.theme
}

func (s *stubShape) PackageContext() PackageContext {
	if s.pkg == nil {
		return nil
	}
	return s.pkg
}

func (s *stubShape) IsPlaceholder() bool { return s.placeholder }

type stubParagraph struct {
	shape       *stubShape
	indent      int
	themeProps  *dml.CharacterProperties
	masterProps *dml.CharacterProperties

	themeCalls  int
	masterCalls int
}

func (p *stubParagraph) Shape() Shape {
	if p.shape == nil {
		return nil
	}
	return p.shape
}

func (p *stubParagraph) IndentLevel() int { return p.indent }

func (p *stubParagraph) FetchThemeProperty(probe Probe) bool {
	p.themeCalls++
	return p.themeProps != nil && probe(p.themeProps)
}

func (p *stubParagraph) FetchMasterProperty(probe Probe) bool {
	p.masterCalls++
	return p.masterProps != nil && probe(p.masterProps)
}

func newTestParagraph() *stubParagraph {
	return &stubParagraph{shape: &stubShape{}}
}

func newTestRun(runText string) (*Run, *stubParagraph) {
	par := newTestParagraph()
	return NewTextRun(par, runText, zap.NewNop()), par
}

func boolPtr(v bool) *bool  { return &v }
func intPtr(v int) *int     { return &v }
