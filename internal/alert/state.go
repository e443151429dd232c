// Package alert implements an animated modal alert overlay for bubbletea
// programs. The overlay is bound to an observable boolean: while the flag is
// true the overlay is mounted above the host view, animated in, and made
// interactive; when the flag goes false it stops taking input, animates out
// and unmounts.
package alert

import (
	"fmt"
	"time"
)

// Default animation timings.
const (
	DefaultDelay         = 50 * time.Millisecond
	DefaultDuration      = 300 * time.Millisecond
	DefaultFrameInterval = time.Second / 60
)

// State is the presentation state of one overlay.
// Interactable implies AnimatedIn, which implies Mounted.
type State struct {
	Mounted      bool
	AnimatedIn   bool
	Interactable bool
}

// Valid reports whether the state respects the implication chain.
func (s State) Valid() bool {
	if s.Interactable && !s.AnimatedIn {
		return false
	}
	if s.AnimatedIn && !s.Mounted {
		return false
	}
	return true
}

func (s State) String() string {
	return fmt.Sprintf("mounted=%t animated_in=%t interactable=%t", s.Mounted, s.AnimatedIn, s.Interactable)
}

// Phase names where an overlay is in its lifecycle.
type Phase int

const (
	PhaseHidden Phase = iota
	PhaseAppearing
	PhaseVisible
	PhaseDisappearing
)

func (p Phase) String() string {
	switch p {
	case PhaseHidden:
		return "hidden"
	case PhaseAppearing:
		return "appearing"
	case PhaseVisible:
		return "visible"
	case PhaseDisappearing:
		return "disappearing"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Timings controls the show/hide choreography.
type Timings struct {
	// Delay between mounting and starting the entrance animation, so the
	// first frame is laid out before anything moves.
	Delay time.Duration
	// Duration of the entrance and exit animations.
	Duration time.Duration
	// FrameInterval is how often redraws are requested while animating.
	FrameInterval time.Duration
}

// DefaultTimings returns the stock 50ms delay and 300ms animation.
func DefaultTimings() Timings {
	return Timings{
		Delay:         DefaultDelay,
		Duration:      DefaultDuration,
		FrameInterval: DefaultFrameInterval,
	}
}

func (t Timings) withDefaults() Timings {
	if t.Delay < 0 {
		t.Delay = 0
	}
	if t.Duration <= 0 {
		t.Duration = DefaultDuration
	}
	if t.FrameInterval <= 0 {
		t.FrameInterval = DefaultFrameInterval
	}
	return t
}

// easeInOut is the cubic ease-in-out curve over [0,1].
func easeInOut(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.5:
		return 4 * t * t * t
	default:
		f := -2*t + 2
		return 1 - f*f*f/2
	}
}

// animation interpolates the visual progress between two values.
type animation struct {
	from    float64
	to      float64
	start   time.Time
	running bool
}

func (a animation) valueAt(now time.Time, d time.Duration) float64 {
	if !a.running {
		return a.to
	}
	elapsed := now.Sub(a.start)
	if elapsed >= d {
		return a.to
	}
	t := float64(elapsed) / float64(d)
	return a.from + (a.to-a.from)*easeInOut(t)
}

func (a animation) done(now time.Time, d time.Duration) bool {
	return !a.running || now.Sub(a.start) >= d
}
