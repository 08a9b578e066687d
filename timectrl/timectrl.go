package timectrl

import (
	"sync"
	"time"
)

// DefaultFrameInterval is the viewer's frame cadence (~60 Hz).
const DefaultFrameInterval = 16 * time.Millisecond

// FrameClock is the read side of the controller: components that only need
// the current simulation time depend on this instead of the concrete type.
type FrameClock interface {
	// Now returns the current simulation time.
	Now() time.Time
}

// Mode describes how the TimeController advances simulation time.
type Mode int

const (
	// RealTime advances simulation time in lockstep with wall-clock time.
	RealTime Mode = iota
	// Accelerated advances simulation time faster than wall-clock time.
	// Used for headless replays.
	Accelerated
)

// TimeController drives the frame loop: every Tick it advances simulation
// time and invokes the registered listeners (the view engine's Step among
// them). It implements FrameClock.
type TimeController struct {
	mu        sync.RWMutex
	StartTime time.Time
	Tick      time.Duration
	Mode      Mode

	currentTime time.Time
	listeners   []func(time.Time)
	stop        chan struct{}
	stopOnce    sync.Once
}

// NewTimeController constructs a controller. A zero tick selects
// DefaultFrameInterval.
func NewTimeController(start time.Time, tick time.Duration, mode Mode) *TimeController {
	if tick <= 0 {
		tick = DefaultFrameInterval
	}
	return &TimeController{
		StartTime:   start,
		Tick:        tick,
		Mode:        mode,
		currentTime: start,
		stop:        make(chan struct{}),
	}
}

// Now returns the current simulation time. Implements FrameClock.
func (tc *TimeController) Now() time.Time {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return tc.currentTime
}

// SetTime jumps simulation time to t. Used by tests and by the daemon's
// time-warp control; listeners are not invoked for the jump itself.
func (tc *TimeController) SetTime(t time.Time) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.currentTime = t
}

// AddListener registers a callback invoked on every tick. Listeners must be
// registered before Start.
func (tc *TimeController) AddListener(fn func(time.Time)) {
	tc.listeners = append(tc.listeners, fn)
}

// Stop ends the frame loop. Safe to call more than once.
func (tc *TimeController) Stop() {
	tc.stopOnce.Do(func() { close(tc.stop) })
}

// Start runs the frame loop in a separate goroutine. With duration > 0 the
// loop ends after that much simulation time; with duration 0 it runs until
// Stop. The returned channel closes when the loop finishes.
func (tc *TimeController) Start(duration time.Duration) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)

		tc.mu.Lock()
		simTime := tc.currentTime
		tc.mu.Unlock()

		elapsed := time.Duration(0)

		// Both modes step through a ticker for determinism; Accelerated
		// shrinks the wall interval while keeping full Tick sim steps.
		interval := tc.Tick
		if tc.Mode == Accelerated {
			interval = tc.Tick / 10
			if interval <= 0 {
				interval = time.Millisecond
			}
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			if duration > 0 && elapsed >= duration {
				return
			}

			select {
			case <-tc.stop:
				return
			case <-ticker.C:
			}

			simTime = simTime.Add(tc.Tick)
			elapsed += tc.Tick

			tc.mu.Lock()
			tc.currentTime = simTime
			tc.mu.Unlock()

			for _, fn := range tc.listeners {
				fn(simTime)
			}
		}
	}()
	return done
}
