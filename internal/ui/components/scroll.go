package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Scroll is a vertical viewport over pre-rendered content taller than the
// screen. The zero value is ready to use. Content and height are taken from
// the last View call, so the offset never runs past the last page.
type Scroll struct {
	vp    viewport.Model
	ready bool
}

// scrollKeyMap leaves letters other than j/k to the screens, which use them
// for tabs and answers.
func scrollKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k")),
		Down:     key.NewBinding(key.WithKeys("down", "j")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "space")),
	}
}

func (s *Scroll) init() {
	if s.ready {
		return
	}
	s.vp = viewport.New()
	s.vp.KeyMap = scrollKeyMap()
	s.vp.SetHorizontalStep(0)
	s.ready = true
}

// Update moves the offset with the arrow, page and home/end keys.
func (s Scroll) Update(msg tea.Msg) Scroll {
	s.init()
	if k, ok := msg.(tea.KeyPressMsg); ok {
		switch k.String() {
		case "home", "g":
			s.vp.GotoTop()
			return s
		case "end", "G":
			s.vp.GotoBottom()
			return s
		}
	}
	s.vp, _ = s.vp.Update(msg)
	return s
}

// Offset is the index of the first visible line.
func (s *Scroll) Offset() int {
	return s.vp.YOffset()
}

// View returns the visible window of content and remembers its size for
// the next Update. Content that fits is returned as is.
func (s *Scroll) View(content string, height int) string {
	s.init()
	content = strings.TrimRight(content, "\n")
	s.vp.SetWidth(max(1, lipgloss.Width(content)))
	s.vp.SetHeight(max(0, height))
	s.vp.SetContent(content)
	if height <= 0 || s.vp.TotalLineCount() <= height {
		s.vp.GotoTop()
		return content
	}
	return s.vp.View()
}
