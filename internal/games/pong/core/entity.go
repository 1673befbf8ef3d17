// Package core provides the Pong match engine: entities, pixel masks, the
// physics stepper, scoring, and the match state machine.
// This package is UI-agnostic and deterministic for a given seed and clock.
package core

// Side identifies one half of the field and the paddle that defends it.
type Side uint8

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns the string representation of a side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return "None"
	}
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideNone
	}
}

// Field is the rectangular play area in world units.
type Field struct {
	W, H float64
}

// Box is an axis-aligned rectangle in world units.
type Box struct {
	X, Y, W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Intersects reports whether two boxes overlap. Touching edges do not count.
func (b Box) Intersects(o Box) bool {
	if b.X >= o.Right() || o.X >= b.Right() {
		return false
	}
	if b.Y >= o.Bottom() || o.Y >= b.Bottom() {
		return false
	}
	return true
}

// Paddle is a vertical bat restricted to one side of the field.
type Paddle struct {
	Side  Side
	X, Y  float64
	W, H  float64
	Speed float64 // Displacement per tick while a direction is held
	Mask  *Mask   // Opaque footprint of the paddle sprite, may be nil
}

// NewPaddle places a paddle inset from its own edge and centred vertically.
func NewPaddle(side Side, field Field, w, h, inset, speed float64, mask *Mask) Paddle {
	x := inset
	if side == SideRight {
		x = field.W - inset - w
	}
	return Paddle{
		Side:  side,
		X:     x,
		Y:     field.H/2 - h/2,
		W:     w,
		H:     h,
		Speed: speed,
		Mask:  mask,
	}
}

// Box returns the paddle bounding box.
func (p Paddle) Box() Box {
	return Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// CenterY returns the vertical centre of the paddle.
func (p Paddle) CenterY() float64 {
	return p.Y + p.H/2
}

// Move displaces the paddle vertically and clamps it inside the field.
func (p *Paddle) Move(dy float64, field Field) {
	p.Y += dy
	if p.Y < 0 {
		p.Y = 0
	}
	if maxY := field.H - p.H; p.Y > maxY {
		p.Y = maxY
	}
}

// Tint is a cosmetic color tag carried by the ball.
type Tint uint8

const (
	TintWhite Tint = iota
	TintYellow
	TintCyan
	TintMagenta
	tintCount
)

// Ball is the moving square. It is replaced by value on every point.
type Ball struct {
	X, Y   float64
	Size   float64
	DX, DY float64
	Tint   Tint
}

// Box returns the ball bounding box.
func (b Ball) Box() Box {
	return Box{X: b.X, Y: b.Y, W: b.Size, H: b.Size}
}

// CenterY returns the vertical centre of the ball.
func (b Ball) CenterY() float64 {
	return b.Y + b.Size/2
}

// Score holds the two point counters.
type Score struct {
	Left  int
	Right int
}

// Add returns a copy of the score with one point awarded to side.
func (s Score) Add(side Side) Score {
	switch side {
	case SideLeft:
		s.Left++
	case SideRight:
		s.Right++
	}
	return s
}

// Of returns the points held by side.
func (s Score) Of(side Side) int {
	switch side {
	case SideLeft:
		return s.Left
	case SideRight:
		return s.Right
	default:
		return 0
	}
}
