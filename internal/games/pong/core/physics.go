package core

import (
	"fmt"
	"math"
	"math/rand"
)

// CollisionMode selects how ball/paddle contact is detected.
type CollisionMode uint8

const (
	// CollisionRect treats any bounding-box overlap as a hit.
	CollisionRect CollisionMode = iota
	// CollisionMask requires the sprite masks to share an opaque pixel.
	CollisionMask
)

// String returns the config name of the mode.
func (m CollisionMode) String() string {
	switch m {
	case CollisionRect:
		return "rect"
	case CollisionMask:
		return "mask"
	default:
		return "unknown"
	}
}

// ParseCollisionMode converts a config name to a CollisionMode.
func ParseCollisionMode(s string) (CollisionMode, error) {
	switch s {
	case "rect", "":
		return CollisionRect, nil
	case "mask":
		return CollisionMask, nil
	default:
		return CollisionRect, fmt.Errorf("unknown collision mode %q", s)
	}
}

// Perturbation randomizes the vertical velocity after a paddle hit.
type Perturbation struct {
	Enabled     bool
	MinFactor   float64 // Lower bound of the uniform dy scale factor
	MaxFactor   float64 // Upper bound of the uniform dy scale factor
	MaxVYFactor float64 // |dy| is clamped to MaxVYFactor * base speed
	FlipChance  float64 // Probability of inverting dy after scaling
}

// DefaultPerturbation returns the tuning used by the latest game variant.
func DefaultPerturbation() Perturbation {
	return Perturbation{
		Enabled:     true,
		MinFactor:   0.6,
		MaxFactor:   1.4,
		MaxVYFactor: 1.5,
		FlipChance:  0.3,
	}
}

// Hit describes what the ball touched during one step.
type Hit struct {
	Paddle Side // Struck paddle, SideNone if no paddle was hit
	Wall   bool // Top or bottom wall bounce
}

// Stepper advances the ball by one fixed timestep.
type Stepper struct {
	field     Field
	baseSpeed float64
	mode      CollisionMode
	perturb   Perturbation
	rng       *rand.Rand

	ballMask *Mask // Cached solid mask matching the last ball size
}

// NewStepper creates a physics stepper. rng drives the perturbation.
func NewStepper(field Field, baseSpeed float64, mode CollisionMode, perturb Perturbation, rng *rand.Rand) *Stepper {
	return &Stepper{
		field:     field,
		baseSpeed: baseSpeed,
		mode:      mode,
		perturb:   perturb,
		rng:       rng,
	}
}

// Mode returns the collision mode in use.
func (s *Stepper) Mode() CollisionMode {
	return s.mode
}

// Step moves the ball, bounces it off the walls, and resolves paddle contact.
// The input ball is not modified.
func (s *Stepper) Step(ball Ball, left, right Paddle) (Ball, Hit) {
	var hit Hit

	ball.X += ball.DX
	ball.Y += ball.DY

	ball, hit.Wall = s.bounceWalls(ball)

	for _, p := range [2]Paddle{left, right} {
		if !approaching(ball, p.Side) || !s.collides(ball, p) {
			continue
		}
		ball = s.rebound(ball, p.Side)
		hit.Paddle = p.Side
		break
	}

	return ball, hit
}

// bounceWalls reflects dy at the top and bottom walls.
// Only a ball moving outward bounces, so a ball resting on a wall cannot
// flip back and forth every tick.
func (s *Stepper) bounceWalls(b Ball) (Ball, bool) {
	switch {
	case b.Y <= 0 && b.DY < 0:
		b.Y = 0
		b.DY = -b.DY
		return b, true
	case b.Y+b.Size >= s.field.H && b.DY > 0:
		b.Y = s.field.H - b.Size
		b.DY = -b.DY
		return b, true
	}
	return b, false
}

// approaching reports whether the ball travels toward the given paddle side.
func approaching(b Ball, side Side) bool {
	switch side {
	case SideLeft:
		return b.DX < 0
	case SideRight:
		return b.DX > 0
	default:
		return false
	}
}

// collides runs the coarse box test and, in mask mode, the pixel test.
func (s *Stepper) collides(b Ball, p Paddle) bool {
	if !b.Box().Intersects(p.Box()) {
		return false
	}
	if s.mode != CollisionMask || p.Mask == nil {
		return true
	}
	dx := int(math.Round(b.X - p.X))
	dy := int(math.Round(b.Y - p.Y))
	return p.Mask.Overlaps(s.maskFor(b), dx, dy)
}

func (s *Stepper) maskFor(b Ball) *Mask {
	size := max(1, int(math.Round(b.Size)))
	if s.ballMask == nil || s.ballMask.Width() != size {
		s.ballMask = SolidMask(size, size)
	}
	return s.ballMask
}

// rebound sends the ball away from the struck paddle and perturbs dy.
func (s *Stepper) rebound(b Ball, side Side) Ball {
	speed := math.Abs(b.DX)
	if side == SideLeft {
		b.DX = speed
	} else {
		b.DX = -speed
	}
	if s.perturb.Enabled {
		b.DY = s.perturbDY(b.DY)
	}
	return b
}

// perturbDY scales dy by a uniform factor, clamps its magnitude, and
// occasionally flips its sign.
func (s *Stepper) perturbDY(dy float64) float64 {
	p := s.perturb
	factor := p.MinFactor + s.rng.Float64()*(p.MaxFactor-p.MinFactor)
	dy *= factor

	if limit := p.MaxVYFactor * s.baseSpeed; math.Abs(dy) > limit {
		dy = math.Copysign(limit, dy)
	}

	if s.rng.Float64() < p.FlipChance {
		dy = -dy
	}
	return dy
}
