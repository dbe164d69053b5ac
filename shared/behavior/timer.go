// Package behavior holds the per-frame rules of the player and the melee
// enemies. It has no dependency on ebitengine so it can be tested headless;
// the systems package feeds it positions and input and applies the result.
package behavior

// Timer counts frames. Walk advances it by one frame and reports when the
// period has elapsed.
type Timer struct {
	Frames        int
	KeepIterating bool

	tick    int
	started bool
}

type TimerOption func(*Timer)

// WithAutoStart controls whether the timer starts on creation. Default true.
func WithAutoStart(v bool) TimerOption {
	return func(t *Timer) {
		t.started = v
	}
}

// WithKeepIterating controls whether the timer restarts after elapsing.
// Default true. A non-iterating timer stops and must be started again.
func WithKeepIterating(v bool) TimerOption {
	return func(t *Timer) {
		t.KeepIterating = v
	}
}

func NewTimer(frames int, opts ...TimerOption) *Timer {
	t := &Timer{Frames: frames, KeepIterating: true, started: true}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start (re)starts the timer from zero.
func (t *Timer) Start() {
	t.tick = 0
	t.started = true
}

func (t *Timer) Stop() {
	t.tick = 0
	t.started = false
}

func (t *Timer) Started() bool {
	return t.started
}

// Walk advances a started timer by one frame. It returns true on the frame
// the period elapses.
func (t *Timer) Walk() bool {
	if !t.started {
		return false
	}
	t.tick++
	if t.tick < t.Frames {
		return false
	}
	t.tick = 0
	if !t.KeepIterating {
		t.started = false
	}
	return true
}
