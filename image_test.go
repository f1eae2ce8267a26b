package escpos

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPixelInked(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a uint8
		want       bool
	}{
		{"opaque white", 255, 255, 255, 255, true},
		{"barely above threshold", 201, 201, 201, 255, true},
		{"at threshold", 200, 200, 200, 255, false},
		{"opaque black", 0, 0, 0, 255, false},
		{"transparent white", 255, 255, 255, 0, false},
		{"one low channel", 255, 100, 255, 255, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pixelInked(tt.r, tt.g, tt.b, tt.a))
		})
	}
}

// maskImage builds an image whose inked dots are given row-major.
func maskImage(w, h int, inked []bool) *Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{0, 0, 0, 255}
			if inked[y*w+x] {
				c = color.NRGBA{255, 255, 255, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return NewImage(img)
}

func TestNewImageDimensions(t *testing.T) {
	m := solidImage(5, 3)
	assert.Equal(t, 5, m.Width())
	assert.Equal(t, 3, m.Height())
}

func TestToRasterShape(t *testing.T) {
	for _, wh := range [][2]int{{1, 1}, {7, 2}, {8, 2}, {9, 4}, {17, 5}} {
		m := solidImage(wh[0], wh[1])
		r := m.ToRaster()

		wantWidth := (wh[0] + 7) / 8
		assert.Equal(t, wantWidth, r.Width)
		assert.Equal(t, wh[1], r.Height)
		assert.Len(t, r.Data, wantWidth*wh[1])
	}
}

func TestToRasterBits(t *testing.T) {
	// 9 wide: second byte per row carries only the top bit, the seven
	// padding bits stay clear.
	mask := make([]bool, 9*2)
	mask[0] = true      // row 0, col 0
	mask[9+8] = true    // row 1, col 8
	m := maskImage(9, 2, mask)

	r := m.ToRaster()
	assert.Equal(t, []byte{0x80, 0x00, 0x00, 0x80}, r.Data)
}

func TestToBitmapShape(t *testing.T) {
	for _, density := range []int{8, 16, 24} {
		m := solidImage(3, 50)
		b, err := m.ToBitmap(density)
		require.NoError(t, err)

		wantBlocks := (50 + density - 1) / density
		assert.Len(t, b.Lines, wantBlocks)
		for _, line := range b.Lines {
			assert.Len(t, line, 3*(density/8))
		}
	}
}

func TestToBitmapInvalidDensity(t *testing.T) {
	m := solidImage(1, 1)
	for _, density := range []int{0, 1, 7, 12, 32} {
		_, err := m.ToBitmap(density)
		assert.Error(t, err)
	}
}

func TestToBitmapBits(t *testing.T) {
	// Column-major: one inked dot at (x=1, y=9) lands in the second
	// block's first byte pair for that column.
	mask := make([]bool, 2*10)
	mask[9*2+1] = true
	m := maskImage(2, 10, mask)

	b, err := m.ToBitmap(8)
	require.NoError(t, err)
	require.Len(t, b.Lines, 2)
	assert.Equal(t, []byte{0x00, 0x00}, b.Lines[0])
	// Row 9 is bit 1 of the second block.
	assert.Equal(t, []byte{0x00, 0x40}, b.Lines[1])
}

func TestToBitmapZeroPadding(t *testing.T) {
	// Height 5 with density 8: rows 5..7 of the single block stay zero.
	m := solidImage(1, 5)
	b, err := m.ToBitmap(8)
	require.NoError(t, err)
	require.Len(t, b.Lines, 1)
	assert.Equal(t, []byte{0xF8}, b.Lines[0])
}

// reconstruct the mask from a raster projection.
func rasterMask(r *Raster, width int) []bool {
	mask := make([]bool, width*r.Height)
	for y := 0; y < r.Height; y++ {
		for c := 0; c < width; c++ {
			if r.Data[y*r.Width+c/8]&(0x80>>uint(c%8)) != 0 {
				mask[y*width+c] = true
			}
		}
	}
	return mask
}

// reconstruct the mask from a bitmap projection.
func bitmapMask(b *Bitmap, width, height int) []bool {
	bpc := b.Density / 8
	mask := make([]bool, width*height)
	for blk, line := range b.Lines {
		for x := 0; x < width; x++ {
			for bit := 0; bit < b.Density; bit++ {
				row := blk*b.Density + bit
				if row >= height {
					continue
				}
				if line[x*bpc+bit/8]&(0x80>>uint(bit%8)) != 0 {
					mask[row*width+x] = true
				}
			}
		}
	}
	return mask
}

func TestProjectionRoundTrip(t *testing.T) {
	const w, h = 11, 19
	mask := make([]bool, w*h)
	for i := range mask {
		// Arbitrary but deterministic pattern.
		mask[i] = (i*7)%3 == 0
	}
	m := maskImage(w, h, mask)

	assert.Equal(t, mask, rasterMask(m.ToRaster(), w))

	for _, density := range []int{8, 16, 24} {
		b, err := m.ToBitmap(density)
		require.NoError(t, err)
		assert.Equal(t, mask, bitmapMask(b, w, h), "density %d", density)
	}
}

func TestNewImageDitherMarksDark(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{0, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{255, 255, 255, 255})

	m := NewImageDither(img)
	assert.True(t, m.mask[0])
	assert.False(t, m.mask[1])
}
