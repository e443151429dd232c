package alert

import (
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/alertkit/internal/tui/binding"
)

type harness struct {
	t        *testing.T
	clock    *fakeClock
	flag     *binding.Bool
	p        *Presenter
	contents []*stubContent
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	h := &harness{
		t:     t,
		clock: newFakeClock(),
		flag:  binding.NewBool(false),
	}
	content := func() Content {
		c := &stubContent{view: "hello\nworld"}
		h.contents = append(h.contents, c)
		return c
	}
	opts = append([]Option{WithClock(h.clock)}, opts...)
	h.p = NewPresenter(h.flag, content, DefaultScrim("#000000"), opts...)
	t.Cleanup(h.p.Close)
	return h
}

func (h *harness) deliver(msg tea.Msg) {
	h.t.Helper()
	if _, handled := h.p.Update(msg); !handled {
		h.t.Fatalf("presenter did not handle %T", msg)
	}
	h.check()
}

func (h *harness) advance(d time.Duration) {
	h.t.Helper()
	h.clock.advance(d, h.deliver)
}

func (h *harness) set(v bool) {
	h.t.Helper()
	h.flag.Set(v)
	h.check()
}

func (h *harness) check() {
	h.t.Helper()
	s := h.p.State()
	if !s.Valid() {
		h.t.Fatalf("invalid state: %s", s)
	}
	if s.Interactable && !h.flag.Get() {
		h.t.Fatalf("overlay interactable while flag is false")
	}
	if s.Mounted != (h.p.Content() != nil) {
		h.t.Fatalf("mounted=%t but content present=%t", s.Mounted, h.p.Content() != nil)
	}
}

func (h *harness) current() *stubContent {
	h.t.Helper()
	if len(h.contents) == 0 {
		h.t.Fatalf("no content was built")
	}
	return h.contents[len(h.contents)-1]
}

// present shows the overlay and runs it to the interactable state.
func (h *harness) present() {
	h.t.Helper()
	h.set(true)
	h.advance(DefaultDelay + DefaultDuration)
	if !h.p.State().Interactable {
		h.t.Fatalf("expected interactable after full presentation, got %s", h.p.State())
	}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestPresenterShowSequence(t *testing.T) {
	h := newHarness(t)

	if h.p.Phase() != PhaseHidden {
		t.Fatalf("expected hidden, got %s", h.p.Phase())
	}

	h.set(true)
	if got := h.p.State(); got != (State{Mounted: true}) {
		t.Fatalf("expected mounted only after show, got %s", got)
	}
	if h.p.Phase() != PhaseAppearing {
		t.Fatalf("expected appearing, got %s", h.p.Phase())
	}
	if h.p.Progress() != 0 {
		t.Fatalf("expected progress 0 before the delay, got %v", h.p.Progress())
	}

	h.advance(DefaultDelay - time.Millisecond)
	if h.p.State().AnimatedIn {
		t.Fatalf("animation started before the delay elapsed")
	}

	h.advance(time.Millisecond)
	if got := h.p.State(); got != (State{Mounted: true, AnimatedIn: true}) {
		t.Fatalf("expected animated in after delay, got %s", got)
	}

	h.advance(DefaultDuration / 2)
	if got := h.p.Progress(); math.Abs(got-0.5) > 0.01 {
		t.Fatalf("expected progress near 0.5 halfway through, got %v", got)
	}
	if h.p.State().Interactable {
		t.Fatalf("interactable before the animation completed")
	}

	h.advance(DefaultDuration/2 - time.Millisecond)
	if h.p.State().Interactable {
		t.Fatalf("interactable before the animation completed")
	}

	h.advance(time.Millisecond)
	if got := h.p.State(); got != (State{Mounted: true, AnimatedIn: true, Interactable: true}) {
		t.Fatalf("expected fully presented, got %s", got)
	}
	if h.p.Phase() != PhaseVisible {
		t.Fatalf("expected visible, got %s", h.p.Phase())
	}
	if h.p.Progress() != 1 {
		t.Fatalf("expected progress 1, got %v", h.p.Progress())
	}
	if !h.current().focused {
		t.Fatalf("expected content focused once interactable")
	}

	h.advance(time.Second)
	if h.clock.pending() != 0 {
		t.Fatalf("expected no timers once settled, got %d", h.clock.pending())
	}
}

func TestPresenterHideSequence(t *testing.T) {
	h := newHarness(t)
	h.present()

	h.set(false)
	if got := h.p.State(); got != (State{Mounted: true}) {
		t.Fatalf("expected only mounted right after hide, got %s", got)
	}
	if h.p.Phase() != PhaseDisappearing {
		t.Fatalf("expected disappearing, got %s", h.p.Phase())
	}
	if h.current().focused || h.current().blurs != 1 {
		t.Fatalf("expected content blurred once, focused=%t blurs=%d", h.current().focused, h.current().blurs)
	}

	h.advance(DefaultDuration / 2)
	if got := h.p.Progress(); math.Abs(got-0.5) > 0.01 {
		t.Fatalf("expected progress near 0.5 halfway out, got %v", got)
	}
	if !h.p.State().Mounted {
		t.Fatalf("unmounted before the exit animation finished")
	}

	h.advance(DefaultDuration / 2)
	if got := h.p.State(); got != (State{}) {
		t.Fatalf("expected hidden after exit, got %s", got)
	}
	if h.p.Content() != nil {
		t.Fatalf("expected content dropped on unmount")
	}
	if h.p.Progress() != 0 {
		t.Fatalf("expected progress 0 when hidden, got %v", h.p.Progress())
	}
}

func TestPresenterHideDuringDelay(t *testing.T) {
	h := newHarness(t)
	h.set(true)
	h.advance(20 * time.Millisecond)

	h.set(false)
	h.advance(DefaultDelay)
	if h.p.State().AnimatedIn {
		t.Fatalf("entrance ran after the flag was cleared")
	}

	h.advance(DefaultDuration)
	if h.p.State().Mounted {
		t.Fatalf("expected unmount after exit duration")
	}
}

func TestPresenterReshowWhileDisappearing(t *testing.T) {
	h := newHarness(t)
	h.present()

	h.set(false)
	h.advance(100 * time.Millisecond)
	leaving := h.p.Progress()
	if leaving <= 0 || leaving >= 1 {
		t.Fatalf("expected partial progress while leaving, got %v", leaving)
	}

	h.set(true)
	if h.p.Phase() != PhaseAppearing {
		t.Fatalf("expected appearing after re-show, got %s", h.p.Phase())
	}
	if got := h.p.Progress(); math.Abs(got-leaving) > 1e-9 {
		t.Fatalf("expected progress held at %v, got %v", leaving, got)
	}

	// Past the original unmount deadline.
	h.advance(250 * time.Millisecond)
	if !h.p.State().Mounted {
		t.Fatalf("stale unmount removed a re-shown overlay")
	}
	if len(h.contents) != 2 {
		t.Fatalf("expected fresh content for the re-show, built %d", len(h.contents))
	}
	if h.p.Content() != Content(h.contents[1]) || h.contents[0] == h.contents[1] {
		t.Fatalf("re-shown overlay still holds the previous content")
	}

	h.advance(100 * time.Millisecond)
	if !h.p.State().Interactable {
		t.Fatalf("expected interactable after re-show settles, got %s", h.p.State())
	}
}

func TestPresenterStaleTimersIgnored(t *testing.T) {
	h := newHarness(t)

	h.set(true)
	h.set(false)
	h.set(true)

	h.advance(DefaultDuration)
	if got := h.p.State(); got != (State{Mounted: true, AnimatedIn: true}) {
		t.Fatalf("expected animating in past the stale unmount, got %s", got)
	}

	h.advance(DefaultDelay)
	if !h.p.State().Interactable {
		t.Fatalf("expected interactable, got %s", h.p.State())
	}
	if len(h.contents) != 2 {
		t.Fatalf("expected a content build per show, got %d", len(h.contents))
	}
	if h.p.Content() != Content(h.contents[1]) {
		t.Fatalf("expected the latest content to stay mounted")
	}
}

func TestPresenterSameValueIsNoop(t *testing.T) {
	h := newHarness(t)
	h.set(true)
	pending := h.clock.pending()

	h.set(true)
	if h.clock.pending() != pending {
		t.Fatalf("setting the same value scheduled timers")
	}

	h.set(false)
	h.advance(time.Second)
	pending = h.clock.pending()
	h.set(false)
	if h.clock.pending() != pending || h.p.State().Mounted {
		t.Fatalf("hiding a hidden overlay changed state")
	}
}

func TestPresenterRapidToggleSettles(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 20; round++ {
		h := newHarness(t)
		for step := 0; step < 40; step++ {
			h.set(rng.Intn(2) == 0)
			h.advance(time.Duration(rng.Intn(400)) * time.Millisecond)
		}

		h.advance(time.Second)
		want := State{}
		if h.flag.Get() {
			want = State{Mounted: true, AnimatedIn: true, Interactable: true}
		}
		if got := h.p.State(); got != want {
			t.Fatalf("round %d: flag=%t settled at %s", round, h.flag.Get(), got)
		}
	}
}

func TestPresenterBlocksInputUntilInteractable(t *testing.T) {
	h := newHarness(t)

	if _, consumed := h.p.HandleInput(runeKey('a')); consumed {
		t.Fatalf("hidden overlay consumed input")
	}

	h.set(true)
	h.advance(DefaultDelay)
	if _, consumed := h.p.HandleInput(runeKey('a')); !consumed {
		t.Fatalf("expected input swallowed while animating")
	}
	if _, consumed := h.p.HandleInput(leftClick(0, 0)); !consumed {
		t.Fatalf("expected click swallowed while animating")
	}
	if len(h.current().msgs) != 0 {
		t.Fatalf("content received input before interactable")
	}
	if !h.flag.Get() {
		t.Fatalf("click during animation dismissed the overlay")
	}

	h.advance(DefaultDuration)
	if _, consumed := h.p.HandleInput(runeKey('a')); !consumed {
		t.Fatalf("expected key consumed by interactable overlay")
	}
	if len(h.current().msgs) != 1 {
		t.Fatalf("expected key routed to content, got %d msgs", len(h.current().msgs))
	}

	h.set(false)
	if _, consumed := h.p.HandleInput(runeKey('b')); !consumed {
		t.Fatalf("expected input swallowed while disappearing")
	}
	if len(h.current().msgs) != 1 {
		t.Fatalf("content received input while disappearing")
	}
}

func TestPresenterPassthroughKeys(t *testing.T) {
	h := newHarness(t)
	h.present()

	if _, consumed := h.p.HandleInput(tea.KeyMsg{Type: tea.KeyCtrlC}); consumed {
		t.Fatalf("expected ctrl+c to pass through")
	}

	h2 := newHarness(t, WithPassthroughKeys("q"))
	h2.present()
	if _, consumed := h2.p.HandleInput(runeKey('q')); consumed {
		t.Fatalf("expected q to pass through")
	}
	if _, consumed := h2.p.HandleInput(tea.KeyMsg{Type: tea.KeyCtrlC}); !consumed {
		t.Fatalf("expected ctrl+c consumed once passthrough keys are replaced")
	}
}

func TestPresenterEscDismisses(t *testing.T) {
	h := newHarness(t)
	h.present()

	if _, consumed := h.p.HandleInput(tea.KeyMsg{Type: tea.KeyEsc}); !consumed {
		t.Fatalf("expected esc consumed")
	}
	if h.flag.Get() {
		t.Fatalf("expected esc to clear the flag")
	}
	if h.p.State().Interactable {
		t.Fatalf("expected interactable cleared by dismissal")
	}
}

func TestPresenterMouseRouting(t *testing.T) {
	h := newHarness(t)
	h.p.SetSize(80, 24)
	h.present()

	if c := h.current(); c.width != 80 || c.height != 24 {
		t.Fatalf("expected content sized on mount, got %dx%d", c.width, c.height)
	}

	// "hello\nworld" is 5x2, centered in 80x24.
	bounds := h.p.surface.ContentBounds(80, 24, "hello\nworld", 1)
	if bounds != (Rect{X: 37, Y: 11, Width: 5, Height: 2}) {
		t.Fatalf("unexpected bounds %+v", bounds)
	}

	if _, consumed := h.p.HandleInput(leftClick(38, 12)); !consumed {
		t.Fatalf("expected click on content consumed")
	}
	msgs := h.current().msgs
	if len(msgs) != 1 {
		t.Fatalf("expected click routed to content, got %d msgs", len(msgs))
	}
	click, ok := msgs[0].(tea.MouseMsg)
	if !ok || click.X != 1 || click.Y != 1 {
		t.Fatalf("expected content-relative click at 1,1, got %#v", msgs[0])
	}

	if _, consumed := h.p.HandleInput(leftClick(0, 0)); !consumed {
		t.Fatalf("expected backdrop click consumed")
	}
	if h.flag.Get() {
		t.Fatalf("expected backdrop click to clear the flag")
	}
}

func TestPresenterBackdropDismissDisabled(t *testing.T) {
	h := newHarness(t, WithBackdropDismiss(false))
	h.p.SetSize(80, 24)
	h.present()

	if _, consumed := h.p.HandleInput(leftClick(0, 0)); !consumed {
		t.Fatalf("expected backdrop click consumed")
	}
	if _, consumed := h.p.HandleInput(tea.KeyMsg{Type: tea.KeyEsc}); !consumed {
		t.Fatalf("expected esc consumed")
	}
	if !h.flag.Get() {
		t.Fatalf("expected flag kept when backdrop dismissal is off")
	}
	if len(h.current().msgs) != 1 {
		t.Fatalf("expected esc routed to content, got %d msgs", len(h.current().msgs))
	}
}

func TestPresenterInitWithFlagSet(t *testing.T) {
	clock := newFakeClock()
	flag := binding.NewBool(true)
	p := NewPresenter(flag, func() Content { return &stubContent{view: "x"} }, nil, WithClock(clock))
	defer p.Close()

	if p.State().Mounted {
		t.Fatalf("mounted before Init")
	}
	p.Init()
	if !p.State().Mounted {
		t.Fatalf("expected Init to mount when the flag is set")
	}
}

func TestPresenterContentRebuiltPerPresentation(t *testing.T) {
	h := newHarness(t)
	h.present()
	h.set(false)
	h.advance(time.Second)
	h.present()

	if len(h.contents) != 2 {
		t.Fatalf("expected content built per presentation, got %d", len(h.contents))
	}
	if h.contents[0] == h.contents[1] {
		t.Fatalf("expected a fresh content instance")
	}
}

func TestPresenterCloseUnsubscribes(t *testing.T) {
	flag := binding.NewBool(false)
	p := NewPresenter(flag, func() Content { return &stubContent{} }, nil, WithClock(newFakeClock()))
	if flag.Subscribers() != 1 {
		t.Fatalf("expected one subscriber, got %d", flag.Subscribers())
	}
	p.Close()
	p.Close()
	if flag.Subscribers() != 0 {
		t.Fatalf("expected no subscribers after Close, got %d", flag.Subscribers())
	}
}

func TestPresenterIgnoresForeignMessages(t *testing.T) {
	a := newHarness(t)
	b := newHarness(t)

	a.set(true)
	msg := phaseMsg{id: a.p.id, gen: a.p.gen, step: stepAnimateIn}
	if _, handled := b.p.Update(msg); handled {
		t.Fatalf("presenter handled another overlay's timer")
	}
	if _, handled := b.p.Update(runeKey('x')); handled {
		t.Fatalf("presenter handled a key in Update")
	}
}

func TestPresenterView(t *testing.T) {
	h := newHarness(t)
	h.p.SetSize(20, 6)

	row := strings.Repeat(".", 20)
	base := strings.Repeat(row+"\n", 5) + row
	if got := h.p.View(base); got != base {
		t.Fatalf("expected base unchanged while hidden")
	}

	h.present()
	got := ansi.Strip(h.p.View(base))
	lines := strings.Split(got, "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[2], "hello") || !strings.Contains(lines[3], "world") {
		t.Fatalf("expected content centered, got:\n%s", got)
	}
}
