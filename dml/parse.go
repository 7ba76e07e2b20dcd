package dml

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// XML parsing for the DrawingML subtrees this model covers: run properties
// (a:rPr, a:defRPr) and the theme font scheme (a:fontScheme). We walk the
// etree DOM exhaustively so the result is easy to extend and unexpected
// content is visible in debug output instead of silently dropped.

// attrValue returns an attribute by local name, ignoring the namespace
// prefix (serializations disagree on prefixes, the local names do not).
func attrValue(el *etree.Element, key string) (string, bool) {
	for _, a := range el.Attr {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

func intAttr(el *etree.Element, key string) (int, bool) {
	s, ok := attrValue(el, key)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

func boolAttr(el *etree.Element, key string) (bool, bool) {
	s, ok := attrValue(el, key)
	if !ok {
		return false, false
	}
	switch s {
	case "1", "true":
		return true, true
	case "0", "false":
		return false, true
	}
	return false, false
}

// percentAttr parses an ST_Percentage attribute. Modern serializations store
// thousandths of a percent as a plain integer; the transitional form carries
// a decimal number with a trailing percent sign.
func percentAttr(el *etree.Element, key string) (int, bool) {
	s, ok := attrValue(el, key)
	if !ok {
		return 0, false
	}
	if strings.HasSuffix(s, "%") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return 0, false
		}
		return int(f * 1000), true
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseCharacterProperties builds a properties record from an a:rPr or
// a:defRPr element. Unknown attributes and children are logged and ignored.
func ParseCharacterProperties(el *etree.Element, log *zap.Logger) *CharacterProperties {
	if log == nil {
		log = zap.NewNop()
	}
	props := &CharacterProperties{}

	if v, ok := intAttr(el, "sz"); ok {
		props.Size = &v
	}
	if v, ok := intAttr(el, "spc"); ok {
		props.Spacing = &v
	}
	if v, ok := boolAttr(el, "b"); ok {
		props.Bold = &v
	}
	if v, ok := boolAttr(el, "i"); ok {
		props.Italic = &v
	}
	if s, ok := attrValue(el, "u"); ok {
		if u, ok := ParseUnderlineStyle(s); ok {
			props.Underline = &u
		} else {
			log.Warn("Unknown underline style, ignoring", zap.String("value", s))
		}
	}
	if s, ok := attrValue(el, "strike"); ok {
		if st, ok := ParseStrikeStyle(s); ok {
			props.Strike = &st
		} else {
			log.Warn("Unknown strike style, ignoring", zap.String("value", s))
		}
	}
	if v, ok := percentAttr(el, "baseline"); ok {
		props.Baseline = &v
	}
	if s, ok := attrValue(el, "cap"); ok {
		if c, ok := ParseCapsMode(s); ok {
			props.Caps = &c
		} else {
			log.Warn("Unknown caps mode, ignoring", zap.String("value", s))
		}
	}

	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "latin":
			props.Latin = parseTextFont(child)
		case "ea":
			props.EastAsian = parseTextFont(child)
		case "cs":
			props.ComplexScript = parseTextFont(child)
		case "sym":
			props.Symbol = parseTextFont(child)
		case "solidFill":
			fill, err := parseSolidFill(child)
			if err != nil {
				log.Warn("Bad solid fill, ignoring", zap.Error(err))
				continue
			}
			props.Fill = fill
		case "hlinkClick":
			props.Link = parseHyperlink(child)
		default:
			log.Debug("Unhandled tag in run properties, ignoring", zap.String("tag", child.Tag))
		}
	}
	return props
}

func parseTextFont(el *etree.Element) *TextFont {
	tf := &TextFont{}
	tf.Typeface, _ = attrValue(el, "typeface")
	if v, ok := intAttr(el, "charset"); ok {
		b := byte(v)
		tf.Charset = &b
	}
	if v, ok := intAttr(el, "pitchFamily"); ok {
		b := byte(v)
		tf.PitchFamily = &b
	}
	return tf
}

func parseSolidFill(el *etree.Element) (*SolidFill, error) {
	fill := &SolidFill{}
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "srgbClr":
			val, _ := attrValue(child, "val")
			c, ok := ParseRGBColor(val)
			if !ok {
				return nil, fmt.Errorf("bad srgbClr value %q", val)
			}
			fill.SRGB = &c
			parseColorTransforms(child, fill, nil)
		case "schemeClr":
			val, _ := attrValue(child, "val")
			sc, ok := ParseSchemeColor(val)
			if !ok {
				return nil, fmt.Errorf("bad schemeClr value %q", val)
			}
			ref := &SchemeColorRef{Color: sc}
			fill.Scheme = ref
			parseColorTransforms(child, fill, ref)
		}
	}
	if fill.SRGB == nil && fill.Scheme == nil {
		return nil, fmt.Errorf("solid fill without a color child")
	}
	return fill, nil
}

func parseColorTransforms(el *etree.Element, fill *SolidFill, ref *SchemeColorRef) {
	for _, child := range el.ChildElements() {
		v, ok := percentAttr(child, "val")
		if !ok {
			continue
		}
		switch child.Tag {
		case "alpha":
			fill.Alpha = &v
		case "lumMod":
			if ref != nil {
				ref.LumMod = &v
			}
		case "lumOff":
			if ref != nil {
				ref.LumOff = &v
			}
		}
	}
}

func parseHyperlink(el *etree.Element) *Hyperlink {
	hl := &Hyperlink{}
	hl.RelID, _ = attrValue(el, "id")
	hl.Tooltip, _ = attrValue(el, "tooltip")
	if v, ok := boolAttr(el, "history"); ok {
		hl.History = &v
	}
	return hl
}

// ParseFontScheme builds the theme font scheme from an a:fontScheme element.
func ParseFontScheme(el *etree.Element, log *zap.Logger) (*FontScheme, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if el == nil {
		return nil, fmt.Errorf("nil font scheme element")
	}

	scheme := &FontScheme{}
	scheme.Name, _ = attrValue(el, "name")

	seen := 0
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "majorFont":
			scheme.Major = parseFontCollection(child, log)
			seen++
		case "minorFont":
			scheme.Minor = parseFontCollection(child, log)
			seen++
		default:
			log.Debug("Unhandled tag in font scheme, ignoring", zap.String("tag", child.Tag))
		}
	}
	if seen != 2 {
		return nil, fmt.Errorf("font scheme missing major or minor collection")
	}
	return scheme, nil
}

func parseFontCollection(el *etree.Element, log *zap.Logger) FontCollection {
	var fc FontCollection
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "latin":
			fc.Latin = *parseTextFont(child)
		case "ea":
			fc.EastAsian = *parseTextFont(child)
		case "cs":
			fc.ComplexScript = *parseTextFont(child)
		case "font":
			script, _ := attrValue(child, "script")
			typeface, _ := attrValue(child, "typeface")
			if script == "" || typeface == "" {
				continue
			}
			tag, err := language.ParseScript(script)
			if err != nil {
				log.Warn("Bad script tag on supplemental font, skipping",
					zap.String("script", script), zap.String("typeface", typeface))
				continue
			}
			if fc.Supplemental == nil {
				fc.Supplemental = make(map[string]string)
			}
			fc.Supplemental[tag.String()] = typeface
		default:
			log.Debug("Unhandled tag in font collection, ignoring", zap.String("tag", child.Tag))
		}
	}
	return fc
}

// SupplementalFont looks up a supplemental typeface by script tag, accepting
// any casing that canonicalizes to the stored tag.
func (fc *FontCollection) SupplementalFont(script string) (string, bool) {
	if len(fc.Supplemental) == 0 {
		return "", false
	}
	tag, err := language.ParseScript(script)
	if err != nil {
		return "", false
	}
	face, ok := fc.Supplemental[tag.String()]
	return face, ok
}
