package controller

import (
	"os"
	"strings"

	"golang.org/x/text/language"

	"github.com/mouse-blink/formtrack/pkg/tracker"
)

var promptTags = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
}

var prompts = []string{
	tracker.DefaultResetPrompt,
	"Möchten Sie das Formular wirklich zurücksetzen und ungespeicherte Änderungen verwerfen?",
	"Voulez-vous vraiment réinitialiser le formulaire et perdre les modifications non enregistrées ?",
	"¿Seguro que quiere restablecer el formulario y perder los cambios no guardados?",
}

var promptMatcher = language.NewMatcher(promptTags)

// ResetPrompt returns the reset confirmation question for lang, a BCP 47 tag
// or a POSIX locale such as "de_DE.UTF-8". An empty lang is taken from the
// environment. Unsupported languages get English.
func ResetPrompt(lang string) string {
	if lang == "" {
		lang = envLocale()
	}

	_, idx := language.MatchStrings(promptMatcher, posixToBCP47(lang))

	return prompts[idx]
}

func envLocale() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}

	return ""
}

func posixToBCP47(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}

	if locale == "C" || locale == "POSIX" {
		return "en"
	}

	return strings.ReplaceAll(locale, "_", "-")
}
