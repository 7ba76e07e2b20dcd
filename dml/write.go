package dml

import (
	"strconv"

	"github.com/beevik/etree"
)

// Serialization back to DrawingML. Values representable at the stored fixed
// precision round-trip exactly through write followed by parse.

func boolToken(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// WriteCharacterProperties fills an a:rPr (or a:defRPr) element from a
// properties record. Only set fields are written.
func WriteCharacterProperties(props *CharacterProperties, el *etree.Element) {
	if props == nil || el == nil {
		return
	}
	if props.Size != nil {
		el.CreateAttr("sz", strconv.Itoa(*props.Size))
	}
	if props.Spacing != nil {
		el.CreateAttr("spc", strconv.Itoa(*props.Spacing))
	}
	if props.Bold != nil {
		el.CreateAttr("b", boolToken(*props.Bold))
	}
	if props.Italic != nil {
		el.CreateAttr("i", boolToken(*props.Italic))
	}
	if props.Underline != nil {
		el.CreateAttr("u", props.Underline.String())
	}
	if props.Strike != nil {
		el.CreateAttr("strike", props.Strike.String())
	}
	if props.Baseline != nil {
		el.CreateAttr("baseline", strconv.Itoa(*props.Baseline))
	}
	if props.Caps != nil {
		el.CreateAttr("cap", props.Caps.String())
	}

	// Child order follows the schema sequence: fill, then fonts, then link.
	if props.Fill != nil {
		writeSolidFill(props.Fill, el.CreateElement("a:solidFill"))
	}
	if props.Latin != nil {
		writeTextFont(props.Latin, el.CreateElement("a:latin"))
	}
	if props.EastAsian != nil {
		writeTextFont(props.EastAsian, el.CreateElement("a:ea"))
	}
	if props.ComplexScript != nil {
		writeTextFont(props.ComplexScript, el.CreateElement("a:cs"))
	}
	if props.Symbol != nil {
		writeTextFont(props.Symbol, el.CreateElement("a:sym"))
	}
	if props.Link != nil {
		writeHyperlink(props.Link, el.CreateElement("a:hlinkClick"))
	}
}

func writeTextFont(tf *TextFont, el *etree.Element) {
	if tf.Typeface != "" {
		el.CreateAttr("typeface", tf.Typeface)
	}
	if tf.Charset != nil {
		el.CreateAttr("charset", strconv.Itoa(int(*tf.Charset)))
	}
	if tf.PitchFamily != nil {
		el.CreateAttr("pitchFamily", strconv.Itoa(int(*tf.PitchFamily)))
	}
}

func writeSolidFill(fill *SolidFill, el *etree.Element) {
	var colorEl *etree.Element
	switch {
	case fill.SRGB != nil:
		colorEl = el.CreateElement("a:srgbClr")
		colorEl.CreateAttr("val", fill.SRGB.String())
	case fill.Scheme != nil:
		colorEl = el.CreateElement("a:schemeClr")
		colorEl.CreateAttr("val", fill.Scheme.Color.String())
		if fill.Scheme.LumMod != nil {
			colorEl.CreateElement("a:lumMod").CreateAttr("val", strconv.Itoa(*fill.Scheme.LumMod))
		}
		if fill.Scheme.LumOff != nil {
			colorEl.CreateElement("a:lumOff").CreateAttr("val", strconv.Itoa(*fill.Scheme.LumOff))
		}
	default:
		return
	}
	if fill.Alpha != nil {
		colorEl.CreateElement("a:alpha").CreateAttr("val", strconv.Itoa(*fill.Alpha))
	}
}

func writeHyperlink(hl *Hyperlink, el *etree.Element) {
	if hl.RelID != "" {
		el.CreateAttr("r:id", hl.RelID)
	}
	if hl.Tooltip != "" {
		el.CreateAttr("tooltip", hl.Tooltip)
	}
	if hl.History != nil {
		el.CreateAttr("history", boolToken(*hl.History))
	}
}
