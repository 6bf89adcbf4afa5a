package ui

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	titleCaser = cases.Title(language.Spanish)
	printer    = message.NewPrinter(language.Spanish)
)

var months = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// TitleName capitalizes a person's name the Spanish way ("maría josé" -> "María José").
func TitleName(s string) string {
	return titleCaser.String(strings.TrimSpace(s))
}

// Initials for the avatar in the navigation bar.
func Initials(name, surname string) string {
	var b strings.Builder
	for _, s := range []string{name, surname} {
		for _, r := range strings.TrimSpace(s) {
			b.WriteString(strings.ToUpper(string(r)))
			break
		}
	}
	if b.Len() == 0 {
		return "?"
	}
	return b.String()
}

// FormatDate renders "15 de octubre de 2026". Nil renders an empty string.
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return strconv.Itoa(t.Day()) + " de " + months[t.Month()-1] + " de " + strconv.Itoa(t.Year())
}

func FormatDateTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return FormatDate(t) + ", " + t.Format("15:04")
}

// FormatNumber groups thousands with the Spanish separator. Fractions are rounded
// to one decimal.
func FormatNumber(v any) string {
	switch n := v.(type) {
	case int:
		return printer.Sprintf("%d", n)
	case float64:
		if n == float64(int64(n)) {
			return printer.Sprintf("%d", int64(n))
		}
		return printer.Sprintf("%.1f", n)
	default:
		return printer.Sprint(v)
	}
}

// Percent is n/total clamped to 0..100.
func Percent(n, total float64) int {
	if total <= 0 || n <= 0 {
		return 0
	}
	p := int(n * 100 / total)
	if p > 100 {
		return 100
	}
	return p
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		return n
	}
	return 0
}
