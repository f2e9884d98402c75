// Package i18n carries the ar|fr|en locale explicitly through formatting and
// advisory output. Nothing here reads ambient state.
package i18n

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Locale string

const (
	Arabic  Locale = "ar"
	French  Locale = "fr"
	English Locale = "en"

	// DefaultLocale is used whenever a lookup misses.
	DefaultLocale = Arabic
)

var ErrUnknownLocale = errors.New("unknown locale: must be ar, fr or en")

// ParseLocale accepts "ar", "FR", " en " and friends.
func ParseLocale(s string) (Locale, error) {
	switch l := Locale(strings.ToLower(strings.TrimSpace(s))); l {
	case Arabic, French, English:
		return l, nil
	default:
		return "", ErrUnknownLocale
	}
}

// OrDefault returns the parsed locale, or DefaultLocale when s is empty or unknown.
func OrDefault(s string) Locale {
	l, err := ParseLocale(s)
	if err != nil {
		return DefaultLocale
	}
	return l
}

// Direction is the text direction for the locale ("rtl" for Arabic).
func (l Locale) Direction() string {
	if l == Arabic {
		return "rtl"
	}
	return "ltr"
}

// tag maps the locale to the number-formatting region the app targets.
func (l Locale) tag() language.Tag {
	switch l {
	case French:
		return language.MustParse("fr-FR")
	case English:
		return language.MustParse("en-US")
	default:
		return language.MustParse("ar-MA")
	}
}

// Printer returns an x/text printer for locale-aware number output.
func (l Locale) Printer() *message.Printer {
	return message.NewPrinter(l.tag())
}

// FormatInt renders a rounded number with the locale's grouping.
func (l Locale) FormatInt(v float64) string {
	return l.Printer().Sprintf("%d", roundInt(v))
}

// FormatFixed renders v with the given number of decimals.
func (l Locale) FormatFixed(v float64, decimals int) string {
	return l.Printer().Sprintf("%.*f", decimals, v)
}

func roundInt(v float64) int64 {
	if v < 0 {
		return -int64(-v + 0.5)
	}
	return int64(v + 0.5)
}
