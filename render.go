package escpos

import (
	"fmt"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/code39"
	"github.com/boombuler/barcode/ean"
	qrcode "github.com/skip2/go-qrcode"
)

// PrintQRImage renders content as a QR symbol on the host and sends it
// through the raster command. Useful for printers whose firmware lacks
// the native 2D commands. size is the output edge in pixels; zero or
// negative picks 256.
func (e *Escpos) PrintQRImage(content string, size int) (int, error) {
	if content == "" {
		return 0, fmt.Errorf("qrcode content is required")
	}
	if size <= 0 {
		size = 256
	}
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return 0, fmt.Errorf("failed to build qrcode: %w", err)
	}
	return e.Raster(NewImageDither(q.Image(size)), "")
}

// PrintBarcodeImage renders content as a barcode image on the host and
// sends it through the raster command. Supports CODE128, CODE39, EAN13
// and EAN8. width and height give the output size in pixels.
func (e *Escpos) PrintBarcodeImage(content, symbology string, width, height int) (int, error) {
	if content == "" {
		return 0, fmt.Errorf("barcode code is required")
	}
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("barcode image size must be positive")
	}

	var (
		bc  barcode.Barcode
		err error
	)
	switch strings.ReplaceAll(strings.ToUpper(symbology), "-", "_") {
	case BarcodeCode128:
		bc, err = code128.Encode(content)
	case BarcodeCode39:
		bc, err = code39.Encode(content, false, false)
	case BarcodeEAN13, BarcodeEAN8:
		bc, err = ean.Encode(content)
	default:
		return 0, fmt.Errorf("unsupported barcode symbology %q for image rendering", symbology)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to build barcode: %w", err)
	}
	scaled, err := barcode.Scale(bc, width, height)
	if err != nil {
		return 0, fmt.Errorf("failed to scale barcode: %w", err)
	}
	return e.Raster(NewImageDither(scaled), "")
}
