package alert

import (
	"log/slog"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/alertkit/internal/logging"
	"github.com/javiermolinar/alertkit/internal/tui/binding"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

type phaseStep int

const (
	stepAnimateIn phaseStep = iota
	stepInteractable
	stepUnmount
)

func (s phaseStep) String() string {
	switch s {
	case stepAnimateIn:
		return "animate_in"
	case stepInteractable:
		return "interactable"
	case stepUnmount:
		return "unmount"
	default:
		return "unknown"
	}
}

// phaseMsg marks a phase boundary scheduled by generation gen.
type phaseMsg struct {
	id   int
	gen  uint64
	step phaseStep
}

// frameMsg requests a redraw while an animation runs.
type frameMsg struct {
	id  int
	gen uint64
}

// Presenter drives the overlay state machine for one flag.
//
// Every show or hide starts a new generation. Timer messages carry the
// generation that scheduled them and are ignored once it is superseded, so a
// late completion from an earlier toggle cannot touch the current one.
type Presenter struct {
	id         int
	flag       *binding.Bool
	content    ContentFunc
	background BackgroundFunc

	clock       Clock
	timings     Timings
	surface     Surface
	logger      *slog.Logger
	dismissable bool
	passthrough map[string]bool

	state    State
	entering bool
	gen      uint64
	anim     animation

	mounted Content
	scrim   Scrim
	width   int
	height  int

	unsubscribe func()
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithTimings overrides the animation timings.
func WithTimings(t Timings) Option {
	return func(p *Presenter) {
		p.timings = t.withDefaults()
	}
}

// WithClock replaces the wall clock, mostly for tests.
func WithClock(c Clock) Option {
	return func(p *Presenter) {
		if c != nil {
			p.clock = c
		}
	}
}

// WithSurface sets the overlay surface.
func WithSurface(s Surface) Option {
	return func(p *Presenter) {
		if s != nil {
			p.surface = s
		}
	}
}

// WithLogger sets the logger used for transition events.
func WithLogger(l *slog.Logger) Option {
	return func(p *Presenter) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithBackdropDismiss controls whether a click on the scrim or esc asks the
// host to clear the flag. Enabled by default.
func WithBackdropDismiss(enabled bool) Option {
	return func(p *Presenter) {
		p.dismissable = enabled
	}
}

// WithPassthroughKeys lists keys that still reach the host while the overlay
// is mounted. Defaults to ctrl+c.
func WithPassthroughKeys(keys ...string) Option {
	return func(p *Presenter) {
		p.passthrough = make(map[string]bool, len(keys))
		for _, k := range keys {
			p.passthrough[k] = true
		}
	}
}

// NewPresenter subscribes to flag. Call Close to drop the subscription.
func NewPresenter(flag *binding.Bool, content ContentFunc, background BackgroundFunc, opts ...Option) *Presenter {
	p := &Presenter{
		id:          nextID(),
		flag:        flag,
		content:     content,
		background:  background,
		clock:       realClock{},
		timings:     DefaultTimings(),
		surface:     NewLayerSurface(Backdrop{}),
		logger:      logging.ForComponent(logging.CompAlert),
		dismissable: true,
		passthrough: map[string]bool{"ctrl+c": true},
	}
	for _, opt := range opts {
		opt(p)
	}
	p.unsubscribe = flag.Subscribe(p.onFlagChange)
	return p
}

// Init starts a presentation when the flag is already set.
func (p *Presenter) Init() tea.Cmd {
	if p.flag.Get() {
		return p.show()
	}
	return nil
}

// Close unsubscribes from the flag.
func (p *Presenter) Close() {
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
}

// State returns the current presentation state.
func (p *Presenter) State() State {
	return p.state
}

// Phase reports the lifecycle phase.
func (p *Presenter) Phase() Phase {
	switch {
	case !p.state.Mounted:
		return PhaseHidden
	case p.state.Interactable:
		return PhaseVisible
	case p.entering:
		return PhaseAppearing
	default:
		return PhaseDisappearing
	}
}

// Progress returns the eased visual progress of the overlay, 0 at rest and
// 1 fully presented.
func (p *Presenter) Progress() float64 {
	return p.anim.valueAt(p.clock.Now(), p.timings.Duration)
}

// Content returns the mounted content, or nil when hidden.
func (p *Presenter) Content() Content {
	return p.mounted
}

// SetSize records the terminal size and forwards it to mounted content.
func (p *Presenter) SetSize(width, height int) {
	p.width = width
	p.height = height
	if s, ok := p.mounted.(Sizer); ok {
		s.SetSize(width, height)
	}
}

// Dismiss asks the host to hide the overlay by clearing the flag.
func (p *Presenter) Dismiss() tea.Cmd {
	return p.flag.Set(false)
}

func (p *Presenter) onFlagChange(presented bool) tea.Cmd {
	if presented {
		return p.show()
	}
	return p.hide()
}

func (p *Presenter) show() tea.Cmd {
	if p.state.Mounted && p.entering {
		return nil
	}

	p.gen++
	p.entering = true
	now := p.clock.Now()

	// Re-shown while leaving: hold the current frame until the delay ends.
	held := 0.0
	if p.state.Mounted {
		held = p.anim.valueAt(now, p.timings.Duration)
	}
	// Each presentation builds its own content and scrim.
	p.mount()
	p.anim = animation{from: held, to: held}

	p.logger.Debug("overlay mounted",
		slog.Int("overlay", p.id),
		slog.Uint64("gen", p.gen),
		slog.String("state", p.state.String()))

	return p.after(p.timings.Delay, stepAnimateIn)
}

func (p *Presenter) hide() tea.Cmd {
	if !p.state.Mounted {
		return nil
	}

	p.gen++
	p.entering = false
	now := p.clock.Now()
	current := p.anim.valueAt(now, p.timings.Duration)

	p.state.Interactable = false
	if f, ok := p.mounted.(Focuser); ok {
		f.Blur()
	}
	p.state.AnimatedIn = false
	p.anim = animation{from: current, to: 0, start: now, running: true}

	p.logger.Debug("overlay dismissing",
		slog.Int("overlay", p.id),
		slog.Uint64("gen", p.gen),
		slog.Float64("progress", current))

	return tea.Batch(p.after(p.timings.Duration, stepUnmount), p.frame())
}

func (p *Presenter) mount() {
	p.mounted = p.content()
	if p.background != nil {
		p.scrim = p.background()
	}
	if s, ok := p.mounted.(Sizer); ok && p.width > 0 {
		s.SetSize(p.width, p.height)
	}
	p.state = State{Mounted: true}
}

func (p *Presenter) unmount() {
	p.mounted = nil
	p.scrim = Scrim{}
	p.state = State{}
	p.anim = animation{}
	p.entering = false
}

func (p *Presenter) after(d time.Duration, step phaseStep) tea.Cmd {
	msg := phaseMsg{id: p.id, gen: p.gen, step: step}
	return p.clock.Tick(d, func(time.Time) tea.Msg { return msg })
}

func (p *Presenter) frame() tea.Cmd {
	msg := frameMsg{id: p.id, gen: p.gen}
	return p.clock.Tick(p.timings.FrameInterval, func(time.Time) tea.Msg { return msg })
}

// Update handles the presenter's own timer messages. It reports false for
// any other message.
func (p *Presenter) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case phaseMsg:
		if msg.id != p.id {
			return nil, false
		}
		if msg.gen != p.gen {
			p.logger.Debug("stale phase ignored",
				slog.Int("overlay", p.id),
				slog.String("step", msg.step.String()),
				slog.Uint64("gen", msg.gen),
				slog.Uint64("current_gen", p.gen))
			return nil, true
		}
		return p.advance(msg.step), true

	case frameMsg:
		if msg.id != p.id {
			return nil, false
		}
		if msg.gen != p.gen || p.anim.done(p.clock.Now(), p.timings.Duration) {
			return nil, true
		}
		return p.frame(), true
	}
	return nil, false
}

func (p *Presenter) advance(step phaseStep) tea.Cmd {
	switch step {
	case stepAnimateIn:
		if !p.state.Mounted || !p.entering {
			return nil
		}
		now := p.clock.Now()
		p.state.AnimatedIn = true
		p.anim = animation{from: p.anim.valueAt(now, p.timings.Duration), to: 1, start: now, running: true}
		p.logger.Debug("overlay animating in", slog.Int("overlay", p.id), slog.Uint64("gen", p.gen))
		return tea.Batch(p.after(p.timings.Duration, stepInteractable), p.frame())

	case stepInteractable:
		if !p.state.AnimatedIn {
			return nil
		}
		p.state.Interactable = true
		p.anim.running = false
		p.logger.Debug("overlay interactable", slog.Int("overlay", p.id), slog.Uint64("gen", p.gen))
		if f, ok := p.mounted.(Focuser); ok {
			return f.Focus()
		}
		return nil

	case stepUnmount:
		if p.entering {
			return nil
		}
		p.unmount()
		p.logger.Debug("overlay unmounted", slog.Int("overlay", p.id), slog.Uint64("gen", p.gen))
		return nil
	}
	return nil
}

// HandleInput routes key and mouse input while the overlay is mounted. It
// reports whether the message was consumed; consumed input must not reach
// the host.
func (p *Presenter) HandleInput(msg tea.Msg) (tea.Cmd, bool) {
	if !p.state.Mounted {
		return nil, false
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		if p.passthrough[key] {
			return nil, false
		}
		if !p.state.Interactable {
			return nil, true
		}
		if key == "esc" && p.dismissable {
			return p.Dismiss(), true
		}
		return p.mounted.Update(msg), true

	case tea.MouseMsg:
		if !p.state.Interactable {
			return nil, true
		}
		content := p.mounted.View()
		bounds := p.surface.ContentBounds(p.width, p.height, content, p.Progress())
		if !bounds.Contains(msg.X, msg.Y) {
			if p.dismissable && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
				p.logger.Debug("backdrop tapped", slog.Int("overlay", p.id))
				return p.Dismiss(), true
			}
			return nil, true
		}
		msg.X -= bounds.X
		msg.Y -= bounds.Y
		return p.mounted.Update(msg), true
	}

	return nil, false
}

// View draws the overlay over base, or returns base when hidden.
func (p *Presenter) View(base string) string {
	if !p.state.Mounted || p.mounted == nil {
		return base
	}
	return p.surface.Render(base, p.width, p.height, p.mounted.View(), p.scrim, p.Progress())
}
