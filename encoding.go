package escpos

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// codecs maps normalized code page names to their encoders. GB18030 is
// the session default.
var codecs = map[string]encoding.Encoding{
	"GB18030":     simplifiedchinese.GB18030,
	"GBK":         simplifiedchinese.GBK,
	"BIG5":        traditionalchinese.Big5,
	"SHIFTJIS":    japanese.ShiftJIS,
	"EUCKR":       korean.EUCKR,
	"CP437":       charmap.CodePage437,
	"CP850":       charmap.CodePage850,
	"CP852":       charmap.CodePage852,
	"CP858":       charmap.CodePage858,
	"CP860":       charmap.CodePage860,
	"CP863":       charmap.CodePage863,
	"CP865":       charmap.CodePage865,
	"CP866":       charmap.CodePage866,
	"ISO88591":    charmap.ISO8859_1,
	"ISO885915":   charmap.ISO8859_15,
	"WINDOWS1252": charmap.Windows1252,
	"WINDOWS874":  charmap.Windows874,
}

// normalizeCodec strips separators so "Shift_JIS", "shift-jis" and
// "SHIFTJIS" name the same table.
func normalizeCodec(name string) string {
	r := strings.NewReplacer("-", "", "_", "", " ", "")
	return strings.ToUpper(r.Replace(name))
}

// encodeText converts s from UTF-8 to the named code page. UTF8 passes
// through unchanged. The encoder never inspects the produced bytes.
func encodeText(s, codec string) ([]byte, error) {
	name := normalizeCodec(codec)
	if name == "UTF8" {
		return []byte(s), nil
	}
	enc, ok := codecs[name]
	if !ok {
		return nil, fmt.Errorf("unsupported encoding %q", codec)
	}
	out, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("failed to encode text as %s: %w", codec, err)
	}
	return out, nil
}
