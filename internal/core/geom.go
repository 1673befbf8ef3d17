// Package core provides fundamental types and utilities for the pong platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned cell rectangle on the terminal screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Viewport maps continuous field coordinates onto a rectangle of screen cells.
type Viewport struct {
	Area   Rect    // Cells available for the field
	FieldW float64 // Field width in world units
	FieldH float64 // Field height in world units
}

// Col converts a field x coordinate to a screen column inside the area.
func (v Viewport) Col(x float64) int {
	if v.FieldW <= 0 {
		return v.Area.X
	}
	c := int(math.Floor(x * float64(v.Area.W) / v.FieldW))
	return v.Area.X + Clamp(c, 0, v.Area.W-1)
}

// Row converts a field y coordinate to a screen row inside the area.
func (v Viewport) Row(y float64) int {
	if v.FieldH <= 0 {
		return v.Area.Y
	}
	r := int(math.Floor(y * float64(v.Area.H) / v.FieldH))
	return v.Area.Y + Clamp(r, 0, v.Area.H-1)
}

// Span converts a field box into the covering cell rectangle.
// The result is always at least one cell wide and tall.
func (v Viewport) Span(x, y, w, h float64) Rect {
	x0, y0 := v.Col(x), v.Row(y)
	x1, y1 := v.Col(x+w-1e-9), v.Row(y+h-1e-9)
	return NewRect(x0, y0, max(1, x1-x0+1), max(1, y1-y0+1))
}
