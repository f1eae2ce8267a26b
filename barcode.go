package escpos

import (
	"fmt"
	"strings"
)

// Barcode symbologies understood by the GS k command family.
const (
	BarcodeUPCA    = "UPC_A"
	BarcodeUPCE    = "UPC_E"
	BarcodeEAN13   = "EAN13"
	BarcodeEAN8    = "EAN8"
	BarcodeCode39  = "CODE39"
	BarcodeITF     = "ITF"
	BarcodeNW7     = "NW7"
	BarcodeCode93  = "CODE93"
	BarcodeCode128 = "CODE128"
)

// BarcodeOptions tunes the module geometry and the human readable text.
// The zero value selects the defaults: default module width and height,
// HRI font A printed below the code, check digit included.
type BarcodeOptions struct {
	Width         int    // module width class 1-5; anything else emits the default width
	Height        int    // module height in dots 1-255; anything else emits the default height
	Position      string // HRI position OFF, ABV, BLW (default) or BTH
	Font          string // HRI font A (default) or B
	WithoutParity bool   // omit the computed check digit
}

// Barcode validates code for the symbology and emits the framed
// payload. EAN13 takes exactly 12 digits and EAN8 exactly 7; the check
// digit is computed and appended unless WithoutParity is set. Hyphenated
// symbology spellings (UPC-A) normalize onto their underscore forms.
// Nothing is written when validation fails.
func (e *Escpos) Barcode(code, symbology string, opts *BarcodeOptions) (int, error) {
	var o BarcodeOptions
	if opts != nil {
		o = *opts
	}
	if symbology == "" {
		return 0, fmt.Errorf("barcode symbology is required")
	}
	if code == "" {
		return 0, fmt.Errorf("barcode code is required")
	}
	sym := strings.ReplaceAll(strings.ToUpper(symbology), "-", "_")
	sel, ok := barcodeSelect[sym]
	if !ok {
		return 0, fmt.Errorf("unsupported barcode symbology %q", symbology)
	}

	switch sym {
	case BarcodeEAN13:
		if len(code) != 12 {
			return 0, fmt.Errorf("EAN13 requires a 12 digit code, got %d", len(code))
		}
	case BarcodeEAN8:
		if len(code) != 7 {
			return 0, fmt.Errorf("EAN8 requires a 7 digit code, got %d", len(code))
		}
	case BarcodeITF:
		if len(code) < 2 || len(code)%2 != 0 {
			return 0, fmt.Errorf("ITF requires an even number of digits (at least 2)")
		}
	}
	// The length prefix is a single byte.
	if needsLengthPrefix(sym) && len(code) > 255 {
		return 0, fmt.Errorf("%s code cannot exceed 255 bytes, got %d", sym, len(code))
	}
	switch sym {
	case BarcodeUPCA, BarcodeUPCE, BarcodeEAN13, BarcodeEAN8, BarcodeITF:
		if !onlyDigits(code) {
			return 0, fmt.Errorf("%s code can only contain digits", sym)
		}
	}

	font := strings.ToUpper(o.Font)
	if font == "" {
		font = "A"
	}
	fontCmd, ok := barcodeFont[font]
	if !ok {
		return 0, fmt.Errorf("invalid barcode font %q (want A or B)", o.Font)
	}
	position := strings.ToUpper(o.Position)
	if position == "" {
		position = "BLW"
	}
	positionCmd, ok := barcodeTxtPosition[position]
	if !ok {
		return 0, fmt.Errorf("invalid barcode text position %q (want OFF, ABV, BLW or BTH)", o.Position)
	}

	var out []byte
	if e.model == ModelQSPrinter {
		out = append(out, qsBarcodeModeOn...)
	}

	// Module width. The qsprinter hardware has no width command.
	if e.model != ModelQSPrinter {
		if cmd, ok := barcodeWidth[o.Width]; ok {
			out = append(out, cmd...)
		} else {
			out = append(out, barcodeWidthDefault...)
		}
	}

	// Module height, with the model's default when out of range.
	if o.Height >= 1 && o.Height <= 255 {
		out = append(out, barcodeHeightCmd(o.Height)...)
	} else if e.model == ModelQSPrinter {
		out = append(out, qsBarcodeHeightDefault...)
	} else {
		out = append(out, barcodeHeightDefault...)
	}

	// HRI font, also absent on qsprinter.
	if e.model != ModelQSPrinter {
		out = append(out, fontCmd...)
	}
	out = append(out, positionCmd...)
	out = append(out, sel...)

	if needsLengthPrefix(sym) {
		out = append(out, byte(len(code)))
	}
	out = append(out, code...)
	if !o.WithoutParity && needsParity(sym) {
		out = append(out, parityDigit(code))
	}
	out = append(out, 0x00)

	if e.model == ModelQSPrinter {
		out = append(out, qsBarcodeModeOff...)
	}
	return e.WriteRaw(out)
}

// parityDigit computes the weighted mod-10 check digit: walking the
// digits right to left, every odd position (1-indexed) weighs three.
func parityDigit(code string) byte {
	sum := 0
	for i := 0; i < len(code); i++ {
		d := int(code[len(code)-1-i] - '0')
		if (i+1)%2 == 1 {
			d *= 3
		}
		sum += d
	}
	return byte('0' + (10-sum%10)%10)
}

// needsParity reports whether the symbology carries a computed check
// digit at the end of the payload.
func needsParity(sym string) bool {
	switch sym {
	case BarcodeEAN13, BarcodeEAN8, BarcodeUPCA, BarcodeUPCE:
		return true
	}
	return false
}

// needsLengthPrefix reports whether the symbology frames its payload
// with a one-byte length.
func needsLengthPrefix(sym string) bool {
	return sym == BarcodeCode93 || sym == BarcodeCode128
}
