// This file is inspired by what is done in the python-escpos and escpos-php libraries.
package escpos

import (
	"fmt"
	"image"

	"github.com/kovidgoyal/imaging"
)

// Image is the monochrome ink mask fed to the bit-image and raster
// commands. The mask is stored row-major and is immutable after
// construction.
type Image struct {
	width, height int
	mask          []bool
}

// pixelInked reports whether a single RGBA pixel produces a printed dot.
// It intentionally flags opaque near-white pixels: sources that reach
// this path are expected to arrive pre-inverted. Kept in one named
// function so the rule is visible and swappable.
func pixelInked(r, g, b, a uint8) bool {
	return a != 0 && r > 200 && g > 200 && b > 200
}

// NewImage builds an ink mask from img, one mask entry per pixel,
// using pixelInked.
func NewImage(img image.Image) *Image {
	nrgba := imaging.Clone(img)
	w, h := nrgba.Rect.Dx(), nrgba.Rect.Dy()
	m := &Image{width: w, height: h, mask: make([]bool, w*h)}
	for y := 0; y < h; y++ {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < w; x++ {
			px := row[x*4 : x*4+4]
			m.mask[y*w+x] = pixelInked(px[0], px[1], px[2], px[3])
		}
	}
	return m
}

// NewImageDither builds an ink mask that marks dark source pixels,
// distributing the quantization error with Floyd-Steinberg diffusion.
// Use this for ordinary black-on-white sources such as rendered
// barcodes or QR symbols.
func NewImageDither(img image.Image) *Image {
	gray := imaging.Grayscale(imaging.Clone(img))
	w, h := gray.Rect.Dx(), gray.Rect.Dy()
	m := &Image{width: w, height: h, mask: make([]bool, w*h)}

	errs := make([][]float64, h)
	for i := range errs {
		errs[i] = make([]float64, w)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			old := float64(gray.Pix[y*gray.Stride+x*4]) + errs[y][x]
			quantized := 0.0
			if old >= 128 {
				quantized = 255.0
			} else {
				m.mask[y*w+x] = true
			}

			quantError := old - quantized
			if x+1 < w {
				errs[y][x+1] += quantError * 7.0 / 16.0
			}
			if y+1 < h {
				if x-1 >= 0 {
					errs[y+1][x-1] += quantError * 3.0 / 16.0
				}
				errs[y+1][x] += quantError * 5.0 / 16.0
				if x+1 < w {
					errs[y+1][x+1] += quantError * 1.0 / 16.0
				}
			}
		}
	}
	return m
}

// Width returns the mask width in dots.
func (m *Image) Width() int { return m.width }

// Height returns the mask height in dots.
func (m *Image) Height() int { return m.height }

// Bitmap is the column-major projection consumed by the ESC * bit-image
// command: one line block per density rows, each column packed most
// significant bit first.
type Bitmap struct {
	Density int
	Lines   [][]byte
}

// ToBitmap projects the mask into vertical strips of density dots.
// density must be 8, 16 or 24. Rows past the image height inside the
// last block stay zero.
func (m *Image) ToBitmap(density int) (*Bitmap, error) {
	switch density {
	case 8, 16, 24:
	default:
		return nil, fmt.Errorf("unsupported bitmap density %d (want 8, 16 or 24)", density)
	}

	bytesPerColumn := density / 8
	blocks := (m.height + density - 1) / density
	lines := make([][]byte, blocks)
	for y := 0; y < blocks; y++ {
		line := make([]byte, m.width*bytesPerColumn)
		for x := 0; x < m.width; x++ {
			for b := 0; b < density; b++ {
				row := y*density + b
				if row >= m.height || !m.mask[row*m.width+x] {
					continue
				}
				line[x*bytesPerColumn+b/8] |= 0x80 >> uint(b%8)
			}
		}
		lines[y] = line
	}
	return &Bitmap{Density: density, Lines: lines}, nil
}

// Raster is the row-major 1-bit projection consumed by GS v 0. Width is
// the packed byte width, ceil(pixel width / 8).
type Raster struct {
	Width  int
	Height int
	Data   []byte
}

// ToRaster packs the mask one bit per dot, rows top to bottom, most
// significant bit first within each byte.
func (m *Image) ToRaster() *Raster {
	n := (m.width + 7) / 8
	data := make([]byte, n*m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < n; x++ {
			for b := 0; b < 8; b++ {
				c := x*8 + b
				if c < m.width && m.mask[y*m.width+c] {
					data[y*n+x] |= 0x80 >> uint(b)
				}
			}
		}
	}
	return &Raster{Width: n, Height: m.height, Data: data}
}
