package core

import "time"

// Event is a discrete notification produced by a tick, for the presentation
// layer to display as an overlay or record in a log.
type Event interface {
	Kind() string
	Attrs() []any
}

// MatchStarted is emitted when play begins or restarts.
type MatchStarted struct {
	At      time.Time
	Restart bool
}

// Kind returns "match_started".
func (MatchStarted) Kind() string { return "match_started" }

// Attrs returns the start time and restart flag as log key/value pairs.
func (e MatchStarted) Attrs() []any {
	return []any{"at", e.At, "restart", e.Restart}
}

// PointScored is emitted when the ball leaves the field.
type PointScored struct {
	Side  Side  // Side that scored
	Score Score // Score after the point
}

// Kind returns "point_scored".
func (PointScored) Kind() string { return "point_scored" }

// Attrs returns the scoring side and both counters as log key/value pairs.
func (e PointScored) Attrs() []any {
	return []any{"side", e.Side.String(), "left", e.Score.Left, "right", e.Score.Right}
}

// MatchEnded is emitted when play stops.
type MatchEnded struct {
	Score   Score
	Elapsed time.Duration
}

// Kind returns "match_ended".
func (MatchEnded) Kind() string { return "match_ended" }

// Attrs returns the final score and play time as log key/value pairs.
func (e MatchEnded) Attrs() []any {
	return []any{"left", e.Score.Left, "right", e.Score.Right, "elapsed_seconds", e.ElapsedSeconds()}
}

// ElapsedSeconds returns the play time in seconds.
func (e MatchEnded) ElapsedSeconds() float64 {
	return e.Elapsed.Seconds()
}
