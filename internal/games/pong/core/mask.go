package core

import (
	"image"
	"image/color"
	"math/bits"
)

// Mask is a bitset of opaque pixels, stored row by row.
type Mask struct {
	w, h   int
	stride int // Words per row
	words  []uint64
}

// NewMask creates an empty (fully transparent) mask.
func NewMask(w, h int) *Mask {
	w, h = max(w, 0), max(h, 0)
	stride := (w + 63) / 64
	return &Mask{w: w, h: h, stride: stride, words: make([]uint64, stride*h)}
}

// SolidMask creates a fully opaque mask.
func SolidMask(w, h int) *Mask {
	m := NewMask(w, h)
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			m.Set(x, y, true)
		}
	}
	return m
}

// MaskFromImage marks every pixel whose alpha exceeds threshold as opaque.
func MaskFromImage(img image.Image, threshold uint8) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if uint8(a>>8) > threshold {
				m.Set(x-b.Min.X, y-b.Min.Y, true)
			}
		}
	}
	return m
}

// MaskFromRows builds a mask from text art: any non-space rune is opaque.
func MaskFromRows(rows []string) *Mask {
	w := 0
	for _, r := range rows {
		w = max(w, len([]rune(r)))
	}
	m := NewMask(w, len(rows))
	for y, row := range rows {
		for x, r := range []rune(row) {
			if r != ' ' {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.w }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.h }

// Set marks a pixel opaque or transparent. Out-of-range pixels are ignored.
func (m *Mask) Set(x, y int, opaque bool) {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return
	}
	i := y*m.stride + x/64
	bit := uint64(1) << (x % 64)
	if opaque {
		m.words[i] |= bit
	} else {
		m.words[i] &^= bit
	}
}

// At reports whether a pixel is opaque. Out-of-range pixels are transparent.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}
	return m.words[y*m.stride+x/64]&(uint64(1)<<(x%64)) != 0
}

// Count returns the number of opaque pixels.
func (m *Mask) Count() int {
	n := 0
	for _, w := range m.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Overlap counts the pixels that are opaque in both m and other, with
// other's top-left corner placed at (dx, dy) in m's coordinates.
func (m *Mask) Overlap(other *Mask, dx, dy int) int {
	if m == nil || other == nil {
		return 0
	}
	x0, y0 := max(0, dx), max(0, dy)
	x1, y1 := min(m.w, dx+other.w), min(m.h, dy+other.h)
	n := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.At(x, y) && other.At(x-dx, y-dy) {
				n++
			}
		}
	}
	return n
}

// Overlaps reports whether Overlap would be non-zero.
func (m *Mask) Overlaps(other *Mask, dx, dy int) bool {
	if m == nil || other == nil {
		return false
	}
	x0, y0 := max(0, dx), max(0, dy)
	x1, y1 := min(m.w, dx+other.w), min(m.h, dy+other.h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.At(x, y) && other.At(x-dx, y-dy) {
				return true
			}
		}
	}
	return false
}

// PaddleSprite renders a paddle of w x h pixels whose corners are cut by
// radius r; pixels outside the rounded outline are fully transparent.
func PaddleSprite(w, h, r int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	r = min(r, w/2, h/2)
	opaque := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if insideRounded(x, y, w, h, r) {
				img.SetNRGBA(x, y, opaque)
			}
		}
	}
	return img
}

// insideRounded tests a pixel centre against a rounded rectangle outline.
func insideRounded(x, y, w, h, r int) bool {
	if r <= 0 {
		return true
	}
	var cx, cy int
	switch {
	case x < r:
		cx = r
	case x >= w-r:
		cx = w - r - 1
	default:
		return true
	}
	switch {
	case y < r:
		cy = r
	case y >= h-r:
		cy = h - r - 1
	default:
		return true
	}
	ddx, ddy := x-cx, y-cy
	return ddx*ddx+ddy*ddy <= r*r
}
