package profile

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/clbp/clbp/internal/fixtures"
	"github.com/clbp/clbp/internal/i18n"
)

func newScreen() *ProfileScreen {
	set := fixtures.MustLoad()
	return New(set.Profile, set.Questionnaires, i18n.English)
}

func TestTabsCycle(t *testing.T) {
	s := newScreen()
	if s.ActiveTab() != TabOverview {
		t.Fatalf("expected overview first, got %d", s.ActiveTab())
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if s.ActiveTab() != TabAssessments {
		t.Errorf("expected assessments, got %d", s.ActiveTab())
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if s.ActiveTab() != TabNotes {
		t.Errorf("expected wrap to notes, got %d", s.ActiveTab())
	}
}

func TestOverviewShowsPatient(t *testing.T) {
	s := newScreen()
	view := s.View(120, 60)
	if !strings.Contains(view, "Ali Ahmadi") {
		t.Error("expected patient name in view")
	}
	if !strings.Contains(view, "65%") {
		t.Error("expected chronic risk in view")
	}
}

func TestAssessmentsTabListsPhases(t *testing.T) {
	s := newScreen()
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	view := s.View(120, 80)
	for _, id := range []string{"T1", "T2", "T3", "FABQ"} {
		if !strings.Contains(view, id) {
			t.Errorf("expected %s in view", id)
		}
	}
}

func TestNilProfileRendersEmpty(t *testing.T) {
	s := New(nil, nil, i18n.English)
	if v := s.View(100, 30); v != "" {
		t.Errorf("expected empty view, got %q", v)
	}
}

func TestBodyMapTabShowsRegions(t *testing.T) {
	s := newScreen()
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if s.ActiveTab() != TabBodyMap {
		t.Fatalf("expected body map, got %d", s.ActiveTab())
	}
	view := s.View(120, 60)
	for _, want := range []string{"Lower back", "8/10", "Neck", "2/10"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}
}

func TestBodyMapWithoutRegions(t *testing.T) {
	p := &fixtures.Profile{Patient: fixtures.PatientDetail{ID: "P009"}}
	s := New(p, nil, i18n.English)
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if v := s.View(120, 40); !strings.Contains(v, "No pain areas recorded.") {
		t.Errorf("expected empty body map message, got %q", v)
	}
}
