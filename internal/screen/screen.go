package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/clbp/clbp/internal/i18n"
	"github.com/clbp/clbp/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// LanguageChangedMsg is delivered to every screen on the stack when the
// display language changes.
type LanguageChangedMsg struct {
	Lang i18n.Language
}

// SaveFailedMsg is delivered to the active screen when a background
// progress save has failed after its retry.
type SaveFailedMsg struct {
	Err error
}

// InputCapturer is an optional interface for screens that temporarily need
// every key, Esc included (text entry, confirmation dialogs).
type InputCapturer interface {
	CapturingInput() bool
}
