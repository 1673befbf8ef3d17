package core

import (
	"fmt"
	"math/rand"
)

// ServePolicy decides which paddle a respawned ball starts next to.
type ServePolicy uint8

const (
	// ServeTowardScorer spawns the ball at the conceding side's paddle,
	// travelling toward the player who just scored.
	ServeTowardScorer ServePolicy = iota
	// ServeTowardConceder spawns the ball at the scorer's paddle,
	// travelling toward the player who just conceded.
	ServeTowardConceder
)

// String returns the config name of the policy.
func (p ServePolicy) String() string {
	switch p {
	case ServeTowardScorer:
		return "toward_scorer"
	case ServeTowardConceder:
		return "toward_conceder"
	default:
		return "unknown"
	}
}

// ParseServePolicy converts a config name to a ServePolicy.
func ParseServePolicy(s string) (ServePolicy, error) {
	switch s {
	case "toward_scorer", "":
		return ServeTowardScorer, nil
	case "toward_conceder":
		return ServeTowardConceder, nil
	default:
		return ServeTowardScorer, fmt.Errorf("unknown serve policy %q", s)
	}
}

// Spawner creates fresh balls.
type Spawner struct {
	Field Field
	Size  float64
	Speed float64
	Inset float64 // Distance between a field edge and a respawned ball
	rng   *rand.Rand
}

// NewSpawner creates a spawner drawing directions and tints from rng.
func NewSpawner(field Field, size, speed, inset float64, rng *rand.Rand) *Spawner {
	return &Spawner{Field: field, Size: size, Speed: speed, Inset: inset, rng: rng}
}

// Center returns a kickoff ball in the middle of the field with random
// horizontal and vertical directions.
func (s *Spawner) Center() Ball {
	return Ball{
		X:    s.Field.W/2 - s.Size/2,
		Y:    s.Field.H/2 - s.Size/2,
		Size: s.Size,
		DX:   s.Speed * s.sign(),
		DY:   s.Speed * s.sign(),
		Tint: s.tint(),
	}
}

// Spawn returns a ball next to the right paddle moving left when fromRight
// is set, otherwise next to the left paddle moving right. The vertical
// direction is random.
func (s *Spawner) Spawn(fromRight bool) Ball {
	b := Ball{
		X:    s.Inset,
		Y:    s.Field.H/2 - s.Size/2,
		Size: s.Size,
		DX:   s.Speed,
		DY:   s.Speed * s.sign(),
		Tint: s.tint(),
	}
	if fromRight {
		b.X = s.Field.W - s.Inset - s.Size
		b.DX = -s.Speed
	}
	return b
}

func (s *Spawner) sign() float64 {
	if s.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

func (s *Spawner) tint() Tint {
	return Tint(s.rng.Intn(int(tintCount)))
}

// Evaluator detects balls leaving the field through the left or right edge.
type Evaluator struct {
	field   Field
	policy  ServePolicy
	spawner *Spawner
}

// NewEvaluator creates a scoring evaluator.
func NewEvaluator(field Field, policy ServePolicy, spawner *Spawner) *Evaluator {
	return &Evaluator{field: field, policy: policy, spawner: spawner}
}

// Evaluate checks whether ball has left the field. When it has, it returns
// the updated score, a newly spawned ball, and the side that scored.
// Otherwise score and ball are returned unchanged with SideNone.
func (e *Evaluator) Evaluate(ball Ball, score Score) (Score, Ball, Side) {
	var scorer Side
	switch {
	case ball.X <= 0:
		scorer = SideRight
	case ball.X+ball.Size >= e.field.W:
		scorer = SideLeft
	default:
		return score, ball, SideNone
	}

	return score.Add(scorer), e.spawner.Spawn(e.fromRight(scorer)), scorer
}

// fromRight maps the scoring side to the respawn side under the policy.
func (e *Evaluator) fromRight(scorer Side) bool {
	towardScorer := scorer == SideLeft
	if e.policy == ServeTowardConceder {
		return !towardScorer
	}
	return towardScorer
}
