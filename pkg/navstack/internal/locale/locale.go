// Package locale localizes the strings navstack draws itself, which is only
// the back control label.
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed translations/*.toml
var translations embed.FS

var backMessage = &i18n.Message{
	ID:          "back",
	Description: "Label next to the back chevron in the navigation bar",
	Other:       "Back",
}

// Localizer resolves navstack strings for one language.
type Localizer struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
}

// New builds a localizer for lang, a BCP 47 tag or a POSIX locale such as
// "de_DE.UTF-8". An empty or unknown lang falls back to English.
func New(lang string) (*Localizer, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(translations, "translations/*.toml")
	if err != nil {
		return nil, fmt.Errorf("locale: list translations: %w", err)
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(translations, f); err != nil {
			return nil, fmt.Errorf("locale: load %s: %w", f, err)
		}
	}

	return &Localizer{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, Normalize(lang), "en"),
	}, nil
}

// BackLabel returns the back control label.
func (l *Localizer) BackLabel() string {
	s, _, err := l.localizer.LocalizeWithTag(&i18n.LocalizeConfig{DefaultMessage: backMessage})
	if err != nil || s == "" {
		return backMessage.Other
	}
	return s
}

// Language returns the language BackLabel resolves to.
func (l *Localizer) Language() language.Tag {
	_, tag, err := l.localizer.LocalizeWithTag(&i18n.LocalizeConfig{DefaultMessage: backMessage})
	if err != nil {
		return language.English
	}
	return tag
}

// Supported lists the languages with bundled translations.
func (l *Localizer) Supported() []language.Tag {
	return l.bundle.LanguageTags()
}

// Normalize turns a POSIX locale into a BCP 47 tag: "pt_BR.UTF-8" becomes
// "pt-BR". "C" and "POSIX" become "".
func Normalize(lang string) string {
	lang = strings.TrimSpace(lang)
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}
	switch lang {
	case "C", "POSIX":
		return ""
	}
	return strings.ReplaceAll(lang, "_", "-")
}
