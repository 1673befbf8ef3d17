package core

import (
	"encoding/binary"
	"hash/fnv"
)

// Snapshot contains the simulation state of a session.
// Uses primitive types only; velocities and positions are scaled by 1000.
type Snapshot struct {
	Tick       uint64
	Phase      uint8
	BallX      int
	BallY      int
	BallVX     int
	BallVY     int
	LeftY      int
	RightY     int
	ScoreLeft  int
	ScoreRight int
}

// Snapshot returns the current state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:       s.tick,
		Phase:      uint8(s.machine.Phase()),
		BallX:      int(s.ball.X * 1000),
		BallY:      int(s.ball.Y * 1000),
		BallVX:     int(s.ball.DX * 1000),
		BallVY:     int(s.ball.DY * 1000),
		LeftY:      int(s.left.Y * 1000),
		RightY:     int(s.right.Y * 1000),
		ScoreLeft:  s.score.Left,
		ScoreRight: s.score.Right,
	}
}

// Hash returns an FNV-1a digest of the snapshot for determinism checks.
func (sn Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, v := range []uint64{
		sn.Tick,
		uint64(sn.Phase),
		uint64(sn.BallX),
		uint64(sn.BallY),
		uint64(sn.BallVX),
		uint64(sn.BallVY),
		uint64(sn.LeftY),
		uint64(sn.RightY),
		uint64(sn.ScoreLeft),
		uint64(sn.ScoreRight),
	} {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:]) //nolint:errcheck // hash.Hash never returns an error
	}
	return h.Sum64()
}
