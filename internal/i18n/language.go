// Package i18n holds the two display languages and the persisted language
// preference.
package i18n

import (
	"strings"

	"github.com/pkg/errors"
)

// Language is a display language code.
type Language string

const (
	English Language = "en"
	Persian Language = "fa"
)

// Default is used when no preference is stored.
const Default = English

// ErrInvalidLanguage is returned for codes other than "en" and "fa".
var ErrInvalidLanguage = errors.New("invalid language")

// ParseLanguage validates a language code.
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English, nil
	case Persian:
		return Persian, nil
	}
	return "", errors.Wrapf(ErrInvalidLanguage, "%q", s)
}

// Parse is ParseLanguage with a fallback to English.
func Parse(s string) Language {
	l, err := ParseLanguage(s)
	if err != nil {
		return Default
	}
	return l
}

// Dir returns the text direction, "rtl" for Persian and "ltr" otherwise.
func (l Language) Dir() string {
	if l == Persian {
		return "rtl"
	}
	return "ltr"
}

// RTL reports whether text in l reads right to left.
func (l Language) RTL() bool { return l.Dir() == "rtl" }

// Other returns the language a toggle switches to.
func (l Language) Other() Language {
	if l == Persian {
		return English
	}
	return Persian
}

// Label is the language's own name.
func (l Language) Label() string {
	if l == Persian {
		return "فارسی"
	}
	return "English"
}

func (l Language) String() string { return string(l) }

// Text is a string available in both languages.
type Text struct {
	EN string `yaml:"en" json:"en"`
	FA string `yaml:"fa" json:"fa"`
}

// In returns the text for l, falling back to English when the Persian
// translation is empty.
func (t Text) In(l Language) string {
	if l == Persian && t.FA != "" {
		return t.FA
	}
	return t.EN
}

// T builds a Text.
func T(en, fa string) Text { return Text{EN: en, FA: fa} }
