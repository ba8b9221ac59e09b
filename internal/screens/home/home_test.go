package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	assess "github.com/clbp/clbp/internal/assessment"
	"github.com/clbp/clbp/internal/fixtures"
	"github.com/clbp/clbp/internal/i18n"
	"github.com/clbp/clbp/internal/router"
	"github.com/clbp/clbp/internal/screen"
	assessscreen "github.com/clbp/clbp/internal/screens/assessment"
	"github.com/clbp/clbp/internal/screens/admin"
	"github.com/clbp/clbp/internal/store"
)

func testHome(t *testing.T) (*HomeScreen, *assess.ProgressStore, *i18n.Preference) {
	t.Helper()
	ctx := context.Background()
	kv := store.NewMemoryKV()
	ps := assess.NewProgressStore(store.NewRecord(kv, store.ProgressKey), assess.DefaultConfig())
	ps.Load(ctx)
	t.Cleanup(ps.Close)
	prefs := i18n.NewPreference(ctx, kv, i18n.English)
	t.Cleanup(func() { _ = prefs.Close() })
	return New(ps, prefs, fixtures.MustLoad(), i18n.English), ps, prefs
}

func TestHomeScreen_StartBecomesResume(t *testing.T) {
	h, ps, _ := testHome(t)
	if h.Selected() != "Start Assessment" {
		t.Fatalf("Selected = %q, want Start Assessment", h.Selected())
	}

	ps.RecordResponse("FABQ_q1", "3")
	h.Init()
	if h.Selected() != "Resume Assessment" {
		t.Errorf("Selected = %q, want Resume Assessment", h.Selected())
	}
}

func TestHomeScreen_EnterPushesAssessment(t *testing.T) {
	h, _, _ := testHome(t)
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := msg.Screen.(*assessscreen.AssessmentScreen); !ok {
		t.Errorf("expected assessment screen, got %T", msg.Screen)
	}
}

func TestHomeScreen_AdminItem(t *testing.T) {
	h, _, _ := testHome(t)
	for i := 0; i < 3; i++ {
		h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if h.Selected() != "Admin Dashboard" {
		t.Fatalf("Selected = %q, want Admin Dashboard", h.Selected())
	}
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := msg.Screen.(*admin.AdminScreen); !ok {
		t.Errorf("expected admin screen, got %T", msg.Screen)
	}
}

func TestHomeScreen_ToggleLanguage(t *testing.T) {
	h, _, prefs := testHome(t)
	for i := 0; i < 4; i++ {
		h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if !strings.HasPrefix(h.Selected(), "Language") {
		t.Fatalf("Selected = %q, want the language item", h.Selected())
	}

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg := cmd()
	if tm, ok := msg.(langToggledMsg); !ok || tm.Err != nil || tm.Lang != i18n.Persian {
		t.Fatalf("unexpected toggle result %#v", msg)
	}
	if prefs.Current() != i18n.Persian {
		t.Errorf("preference = %q, want fa", prefs.Current())
	}

	h.Update(screen.LanguageChangedMsg{Lang: i18n.Persian})
	if h.Title() != "خانه" {
		t.Errorf("Title = %q, want Persian", h.Title())
	}
	if !strings.HasPrefix(h.Selected(), "زبان") {
		t.Errorf("expected menu relabelled, got %q", h.Selected())
	}
}

func TestHomeScreen_View(t *testing.T) {
	h, _, _ := testHome(t)
	view := h.View(120, 40)
	if !strings.Contains(view, "No assessment in progress") {
		t.Error("expected empty progress summary")
	}
	if !strings.Contains(view, "Admin Dashboard") {
		t.Error("expected menu in view")
	}
}
