package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/alertkit/internal/alert"
	"github.com/javiermolinar/alertkit/internal/config"
)

func TestNew_Defaults(t *testing.T) {
	m := New(nil)

	if m.theme.Name != "mocha" {
		t.Fatalf("theme = %q, want mocha", m.theme.Name)
	}
	if len(m.actions) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(m.actions))
	}
	if m.actions[0].flag != m.FolderAlert() || m.actions[1].flag != m.ClearAlert() {
		t.Fatalf("actions are not bound to the alert flags")
	}
	if m.FolderAlert().Get() || m.ClearAlert().Get() {
		t.Fatalf("alerts should start hidden")
	}
}

func TestNew_UnknownThemeFallsBack(t *testing.T) {
	cfg := config.Default()
	cfg.UI.Theme = "solarized"

	m := New(cfg)
	if m.theme == nil || m.theme.Name != "mocha" {
		t.Fatalf("expected fallback to mocha, got %+v", m.theme)
	}
}

func TestWithFolders_Copies(t *testing.T) {
	names := []string{"a", "b"}
	m := New(nil, WithFolders(names...))
	names[0] = "changed"
	if m.Folders()[0] != "a" {
		t.Fatalf("WithFolders should copy its input")
	}
}

func TestAlertOptions_UsesConfigTimings(t *testing.T) {
	cfg := config.Default()
	cfg.Animation.DelayMS = 10
	cfg.Animation.DurationMS = 100
	cfg.Overlay.DismissOnBackdrop = false

	clock := newStepClock()
	m := New(cfg)
	opts := append(m.AlertOptions(alert.NewContainerSurface()), alert.WithClock(clock))
	p := alert.NewPresenter(m.FolderAlert(), m.folderDialog, nil, opts...)
	t.Cleanup(p.Close)

	m.FolderAlert().Set(true)
	clock.advance(9*time.Millisecond, func(msg tea.Msg) { p.Update(msg) })
	if p.State().AnimatedIn {
		t.Fatalf("animation started before the configured delay")
	}
	clock.advance(time.Millisecond, func(msg tea.Msg) { p.Update(msg) })
	if !p.State().AnimatedIn {
		t.Fatalf("animation should start after 10ms")
	}
	clock.advance(100*time.Millisecond, func(msg tea.Msg) { p.Update(msg) })
	if !p.State().Interactable {
		t.Fatalf("alert should be interactable after 110ms")
	}
}

func TestSurface_HonorsStrategy(t *testing.T) {
	cfg := config.Default()
	cfg.Overlay.Strategy = "fallback"

	m := New(cfg)
	if got := m.Surface(); got != alert.NewContainerSurface() {
		t.Fatalf("surface = %T, want the container surface", got)
	}
}
