package tui

import (
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// holdWindow is how long a paddle key counts as held after its last press.
// Terminals report repeats rather than releases, so a key stays down for as
// long as repeats keep arriving inside this window.
const holdWindow = 150 * time.Millisecond

// holdLatch turns discrete key presses into per-tick held state.
type holdLatch struct {
	ttl       int
	remaining map[core.Action]int
}

func newHoldLatch(tickRate int) *holdLatch {
	ttl := int(holdWindow * time.Duration(tickRate) / time.Second)
	return &holdLatch{
		ttl:       max(1, ttl),
		remaining: make(map[core.Action]int),
	}
}

// opposite pairs directions on the same paddle.
var opposite = map[core.Action]core.Action{
	core.ActionLeftUp:    core.ActionLeftDown,
	core.ActionLeftDown:  core.ActionLeftUp,
	core.ActionRightUp:   core.ActionRightDown,
	core.ActionRightDown: core.ActionRightUp,
}

// holdable reports whether the action is a held direction rather than a press.
func holdable(a core.Action) bool {
	_, ok := opposite[a]
	return ok
}

// Press marks a direction as held, releasing the opposite direction.
func (h *holdLatch) Press(a core.Action) {
	h.remaining[a] = h.ttl
	delete(h.remaining, opposite[a])
}

// Apply sets every held direction on the frame and ages the latch by a tick.
func (h *holdLatch) Apply(frame *core.InputFrame) {
	for a, n := range h.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
}

// Release drops all held directions.
func (h *holdLatch) Release() {
	clear(h.remaining)
}
