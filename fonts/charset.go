package fonts

// Charset is the legacy byte-valued font charset identifier.
type Charset byte

const (
	CharsetANSI        Charset = 0x00
	CharsetDefault     Charset = 0x01
	CharsetSymbol      Charset = 0x02
	CharsetMac         Charset = 0x4D
	CharsetShiftJIS    Charset = 0x80
	CharsetHangul      Charset = 0x81
	CharsetJohab       Charset = 0x82
	CharsetGB2312      Charset = 0x86
	CharsetChineseBig5 Charset = 0x88
	CharsetGreek       Charset = 0xA1
	CharsetTurkish     Charset = 0xA2
	CharsetVietnamese  Charset = 0xA3
	CharsetHebrew      Charset = 0xB1
	CharsetArabic      Charset = 0xB2
	CharsetBaltic      Charset = 0xBA
	CharsetRussian     Charset = 0xCC
	CharsetThai        Charset = 0xDE
	CharsetEastEurope  Charset = 0xEE
	CharsetOEM         Charset = 0xFF
)

// String returns the charset name, or "unknown" for values outside the
// recognized set (the byte itself is still preserved by callers).
func (c Charset) String() string {
	switch c {
	case CharsetANSI:
		return "ansi"
	case CharsetDefault:
		return "default"
	case CharsetSymbol:
		return "symbol"
	case CharsetMac:
		return "mac"
	case CharsetShiftJIS:
		return "shift-jis"
	case CharsetHangul:
		return "hangul"
	case CharsetJohab:
		return "johab"
	case CharsetGB2312:
		return "gb2312"
	case CharsetChineseBig5:
		return "big5"
	case CharsetGreek:
		return "greek"
	case CharsetTurkish:
		return "turkish"
	case CharsetVietnamese:
		return "vietnamese"
	case CharsetHebrew:
		return "hebrew"
	case CharsetArabic:
		return "arabic"
	case CharsetBaltic:
		return "baltic"
	case CharsetRussian:
		return "russian"
	case CharsetThai:
		return "thai"
	case CharsetEastEurope:
		return "east-europe"
	case CharsetOEM:
		return "oem"
	}
	return "unknown"
}
