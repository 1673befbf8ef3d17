package core

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Controls is the per-tick input sample.
type Controls struct {
	LeftUp    bool
	LeftDown  bool
	RightUp   bool
	RightDown bool
	Toggle    bool // Discrete press of the start/stop key
}

// Options configures a match session.
type Options struct {
	Field        Field
	PaddleWidth  float64
	PaddleHeight float64
	PaddleInset  float64 // Distance from a field edge to its paddle
	PaddleSpeed  float64
	CornerRadius int // Rounded sprite corners used by mask collision
	BallSize     float64
	BallSpeed    float64 // Base speed; also the |dy| clamp reference
	SpawnInset   float64 // Distance from a field edge to a respawned ball
	Collision    CollisionMode
	Perturb      Perturbation
	Serve        ServePolicy
	Policy       TerminalPolicy
	AI           Side // Paddle driven by the tracker, SideNone for two players
	AISpeed      float64
	Seed         int64
	Clock        Clock
}

// DefaultOptions returns the latest variant's settings on an 800x600 field.
func DefaultOptions() Options {
	return Options{
		Field:        Field{W: 800, H: 600},
		PaddleWidth:  15,
		PaddleHeight: 90,
		PaddleInset:  50,
		PaddleSpeed:  6,
		CornerRadius: 6,
		BallSize:     15,
		BallSpeed:    6,
		SpawnInset:   50,
		Collision:    CollisionMask,
		Perturb:      DefaultPerturbation(),
		Serve:        ServeTowardScorer,
		Policy:       PolicyRestart,
		AI:           SideNone,
		AISpeed:      3,
	}
}

// View is the read-only state handed to the presentation layer after a tick.
type View struct {
	ID      string
	Phase   Phase
	Field   Field
	Left    Paddle
	Right   Paddle
	Ball    Ball
	Score   Score
	Elapsed time.Duration
	Tick    uint64
	LastHit Side // Paddle that last struck the ball
}

// Session aggregates the state of one match and runs its ticks.
type Session struct {
	id      string
	opts    Options
	rng     *rand.Rand
	machine *Machine
	stepper *Stepper
	spawner *Spawner
	eval    *Evaluator
	tracker *Tracker

	left    Paddle
	right   Paddle
	ball    Ball
	score   Score
	lastHit Side

	tick      uint64
	playTicks uint64
}

// NewSession builds a session in PhaseNotStarted with a centred ball.
func NewSession(opts Options) *Session {
	rng := rand.New(rand.NewSource(opts.Seed))

	sprite := PaddleSprite(
		int(math.Round(opts.PaddleWidth)),
		int(math.Round(opts.PaddleHeight)),
		opts.CornerRadius,
	)
	mask := MaskFromImage(sprite, 0)

	spawner := NewSpawner(opts.Field, opts.BallSize, opts.BallSpeed, opts.SpawnInset, rng)

	s := &Session{
		id:      uuid.NewString(),
		opts:    opts,
		rng:     rng,
		machine: NewMachine(opts.Policy, opts.Clock),
		stepper: NewStepper(opts.Field, opts.BallSpeed, opts.Collision, opts.Perturb, rng),
		spawner: spawner,
		eval:    NewEvaluator(opts.Field, opts.Serve, spawner),
		left:    NewPaddle(SideLeft, opts.Field, opts.PaddleWidth, opts.PaddleHeight, opts.PaddleInset, opts.PaddleSpeed, mask),
		right:   NewPaddle(SideRight, opts.Field, opts.PaddleWidth, opts.PaddleHeight, opts.PaddleInset, opts.PaddleSpeed, mask),
	}
	if opts.AI != SideNone {
		s.tracker = &Tracker{Speed: opts.AISpeed}
	}
	s.ball = spawner.Center()
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Phase returns the current match phase.
func (s *Session) Phase() Phase { return s.machine.Phase() }

// Score returns the current score.
func (s *Session) Score() Score { return s.score }

// Ball returns the current ball.
func (s *Session) Ball() Ball { return s.ball }

// Paddles returns the left and right paddles.
func (s *Session) Paddles() (Paddle, Paddle) { return s.left, s.right }

// Options returns the options the session was built with.
func (s *Session) Options() Options { return s.opts }

// PlayTicks returns the number of ticks simulated while playing.
func (s *Session) PlayTicks() uint64 { return s.playTicks }

// Done reports whether the match has reached a final state.
func (s *Session) Done() bool { return s.machine.Terminal() }

// SetPaused stops or resumes the play clock.
func (s *Session) SetPaused(on bool) { s.machine.SetPaused(on) }

// SetAISpeed changes the tracker speed. No-op without an AI paddle.
func (s *Session) SetAISpeed(v float64) {
	if s.tracker != nil {
		s.tracker.Speed = v
	}
}

// View returns the state needed for rendering.
func (s *Session) View() View {
	return View{
		ID:      s.id,
		Phase:   s.machine.Phase(),
		Field:   s.opts.Field,
		Left:    s.left,
		Right:   s.right,
		Ball:    s.ball,
		Score:   s.score,
		Elapsed: s.machine.Elapsed(),
		Tick:    s.tick,
		LastHit: s.lastHit,
	}
}

// Tick runs one fixed step: toggle, paddle motion, physics, scoring.
// Physics only runs while playing.
func (s *Session) Tick(c Controls) []Event {
	s.tick++

	var events []Event
	if c.Toggle {
		if tr, ok := s.machine.Toggle(); ok {
			events = append(events, s.applyTransition(tr))
		}
	}

	if s.machine.Phase() != PhasePlaying {
		return events
	}
	s.playTicks++

	s.movePaddles(c)

	ball, hit := s.stepper.Step(s.ball, s.left, s.right)
	if hit.Paddle != SideNone {
		s.lastHit = hit.Paddle
	}

	score, ball, scorer := s.eval.Evaluate(ball, s.score)
	s.ball = ball
	if scorer != SideNone {
		s.score = score
		s.lastHit = SideNone
		events = append(events, PointScored{Side: scorer, Score: score})
	}

	return events
}

func (s *Session) applyTransition(tr Transition) Event {
	switch tr.To {
	case PhaseEnded:
		return MatchEnded{Score: s.score, Elapsed: tr.Elapsed}
	default:
		if tr.Restart {
			s.score = Score{}
			s.lastHit = SideNone
			s.ball = s.spawner.Center()
		}
		return MatchStarted{At: tr.At, Restart: tr.Restart}
	}
}

func (s *Session) movePaddles(c Controls) {
	s.left.Move(s.displacement(s.left, c.LeftUp, c.LeftDown), s.opts.Field)
	s.right.Move(s.displacement(s.right, c.RightUp, c.RightDown), s.opts.Field)
}

func (s *Session) displacement(p Paddle, up, down bool) float64 {
	if s.tracker != nil && p.Side == s.opts.AI {
		return s.tracker.Decide(s.ball, p)
	}
	var dy float64
	if up {
		dy -= p.Speed
	}
	if down {
		dy += p.Speed
	}
	return dy
}
