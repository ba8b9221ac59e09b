package admin

import (
	"math"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/clbp/clbp/internal/fixtures"
	"github.com/clbp/clbp/internal/i18n"
	"github.com/clbp/clbp/internal/patients"
	"github.com/clbp/clbp/internal/router"
	"github.com/clbp/clbp/internal/screens/profile"
)

func keyPress(s string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: []rune(s)[0], Text: s}
}

func TestTabKeySwitchesSections(t *testing.T) {
	s := New(fixtures.MustLoad(), i18n.English)
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.ActiveTab() != TabPatients {
		t.Errorf("expected patients tab, got %d", s.ActiveTab())
	}
	s.Update(keyPress("3"))
	if s.ActiveTab() != TabMonitoring {
		t.Errorf("expected monitoring tab, got %d", s.ActiveTab())
	}
}

func TestRiskFilterCycles(t *testing.T) {
	s := New(fixtures.MustLoad(), i18n.English)
	s.Update(keyPress("2"))

	if n := len(s.Visible()); n != 5 {
		t.Fatalf("expected 5 patients unfiltered, got %d", n)
	}

	s.Update(keyPress("r"))
	s.Update(keyPress("r"))
	s.Update(keyPress("r"))
	if s.Filter().RiskLevel != patients.RiskHigh {
		t.Fatalf("expected high filter, got %q", s.Filter().RiskLevel)
	}
	rows := s.Visible()
	if len(rows) != 2 || rows[0].ID != "P001" || rows[1].ID != "P003" {
		t.Errorf("unexpected high-risk rows: %+v", rows)
	}

	s.Update(keyPress("t"))
	if got := s.Visible(); len(got) != 1 || got[0].ID != "P001" {
		t.Errorf("expected only active high-risk P001, got %+v", got)
	}

	s.Update(keyPress("c"))
	if !s.Filter().IsZero() {
		t.Error("expected filters cleared")
	}
}

func TestEnterOpensProfile(t *testing.T) {
	s := New(fixtures.MustLoad(), i18n.English)
	s.Update(keyPress("2"))
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	p, ok := s.Selected()
	if !ok || p.ID != "P002" {
		t.Fatalf("expected P002 selected, got %+v", p)
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*profile.ProfileScreen); !ok {
		t.Errorf("expected profile screen, got %T", push.Screen)
	}
}

func TestEnterOnEmptyRosterDoesNothing(t *testing.T) {
	s := New(fixtures.MustLoad(), i18n.English)
	s.Update(keyPress("2"))
	s.Update(keyPress("r")) // low
	s.Update(keyPress("t")) // active
	if n := len(s.Visible()); n != 0 {
		t.Fatalf("expected no low-risk active patients, got %d", n)
	}
	if _, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("expected no command")
	}
	if !strings.Contains(s.View(120, 40), "No patients match") {
		t.Error("expected empty-state message")
	}
}

func TestViewsRenderEveryTab(t *testing.T) {
	s := New(fixtures.MustLoad(), i18n.Persian)
	for tab := TabOverview; tab < tabCount; tab++ {
		s.setTab(tab)
		if v := s.View(120, 40); v == "" {
			t.Errorf("tab %d rendered empty", tab)
		}
	}
}

func TestROCAUC(t *testing.T) {
	pts := []fixtures.ROCPoint{{FPR: 0, TPR: 0}, {FPR: 1, TPR: 1}}
	if got := rocAUC(pts); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("expected 0.5 for the diagonal, got %f", got)
	}
}
