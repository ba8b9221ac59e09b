package welcome

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/clbp/clbp/internal/i18n"
	"github.com/clbp/clbp/internal/router"
	"github.com/clbp/clbp/internal/screen"
	"github.com/clbp/clbp/internal/store"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{ lang i18n.Language }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newTestWelcome(t *testing.T) (*WelcomeScreen, *i18n.Preference, *int) {
	t.Helper()
	prefs := i18n.NewPreference(context.Background(), store.NewMemoryKV(), i18n.English)
	t.Cleanup(func() { prefs.Close() })
	callCount := 0
	factory := func(l i18n.Language) screen.Screen {
		callCount++
		return &stubScreen{lang: l}
	}
	return New(prefs, factory), prefs, &callCount
}

func sendTicks(w *WelcomeScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		_, cmd = w.Update(tickMsg(time.Now()))
	}
	return cmd
}

func TestPhaseTransitions(t *testing.T) {
	w, _, _ := newTestWelcome(t)

	view := w.View(80, 30)
	if strings.Contains(view, "Choose your language") {
		t.Error("chooser should not be visible at start")
	}

	sendTicks(w, 5)
	if w.elapsed != phase1End {
		t.Errorf("expected elapsed %v, got %v", phase1End, w.elapsed)
	}
	if !strings.Contains(w.View(80, 30), "low back pain") {
		t.Error("tagline should be visible after phase 1")
	}

	sendTicks(w, 7)
	if !strings.Contains(w.View(80, 30), "Choose your language") {
		t.Error("chooser should be visible after phase 2")
	}
}

func TestTicksStopAtEnd(t *testing.T) {
	w, _, _ := newTestWelcome(t)
	if cmd := sendTicks(w, 40); cmd != nil {
		t.Error("expected ticking to stop once the intro has played")
	}
	if w.elapsed != totalDur {
		t.Errorf("expected elapsed capped at %v, got %v", totalDur, w.elapsed)
	}
}

func TestKeypressDuringIntroSkips(t *testing.T) {
	w, prefs, callCount := newTestWelcome(t)
	sendTicks(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("a key during the intro should only skip it")
	}
	if w.elapsed != totalDur {
		t.Errorf("expected intro skipped, elapsed %v", w.elapsed)
	}
	if *callCount != 0 || prefs.Stored() {
		t.Error("nothing should be chosen yet")
	}
}

func TestChooseLanguage(t *testing.T) {
	w, prefs, callCount := newTestWelcome(t)
	sendTicks(w, 40)

	w.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if w.Choice() != i18n.Persian {
		t.Fatalf("Choice = %q, want fa", w.Choice())
	}
	if !strings.Contains(w.View(80, 30), "زبان خود را انتخاب کنید") {
		t.Error("expected the chooser to preview the highlighted language")
	}

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command after choosing")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if next, ok := msg.Screen.(*stubScreen); !ok || next.lang != i18n.Persian {
		t.Errorf("expected next screen built for fa, got %#v", msg.Screen)
	}
	if prefs.Current() != i18n.Persian || !prefs.Stored() {
		t.Error("expected the choice persisted")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestFactoryCalledOnce(t *testing.T) {
	w, _, callCount := newTestWelcome(t)
	sendTicks(w, 40)

	w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("second enter should not produce a command")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called exactly once, got %d", *callCount)
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _, _ := newTestWelcome(t)
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}
