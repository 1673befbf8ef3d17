package core

import "math"

// Tracker is the stand-in opponent: it moves its paddle toward the ball's
// vertical centre at a fixed speed. No prediction, no learning.
type Tracker struct {
	Speed float64
}

// Decide returns the paddle displacement for this tick.
func (t Tracker) Decide(ball Ball, p Paddle) float64 {
	diff := ball.CenterY() - p.CenterY()
	step := math.Min(t.Speed, math.Abs(diff))
	if diff < 0 {
		return -step
	}
	return step
}
