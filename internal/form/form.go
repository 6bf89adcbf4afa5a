// Package form holds the drafts behind the plan and notification forms.
// A draft keeps raw user input until it validates and maps to a request DTO.
package form

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/Dianagomez24/FrontFilLife/internal/validation"
)

var (
	// ErrLastRow is returned when removing the only row of a nested list.
	ErrLastRow     = errors.New("a plan needs at least one row")
	ErrRowNotFound = errors.New("row index out of range")
	ErrInvalid     = errors.New("draft has validation errors")
)

// Errors maps a field path (e.g. "ejercicios.0.nombre") to its message.
type Errors map[string]string

func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

func (e Errors) Get(field string) string {
	return e[field]
}

func (e Errors) required(field, value string) {
	if err := validation.Required(value); err != nil {
		e[field] = err.Error()
	}
}

func (e Errors) integer(field, value string) {
	if _, _, err := validation.ParseInt(value); err != nil {
		e[field] = err.Error()
	}
}

func (e Errors) decimal(field, value string) {
	if _, _, err := validation.ParseFloat(value); err != nil {
		e[field] = err.Error()
	}
}

func field(prefix string, i int, name string) string {
	return prefix + "." + strconv.Itoa(i) + "." + name
}

func removeAt[T any](rows []T, i int) ([]T, error) {
	if i < 0 || i >= len(rows) {
		return rows, ErrRowNotFound
	}
	if len(rows) <= 1 {
		return rows, ErrLastRow
	}
	out := make([]T, 0, len(rows)-1)
	out = append(out, rows[:i]...)
	return append(out, rows[i+1:]...), nil
}

func atInt(s string) int {
	n, _, _ := validation.ParseInt(s)
	return n
}

func atFloat(s string) float64 {
	f, _, _ := validation.ParseFloat(s)
	return f
}

func optFloat(s string) *float64 {
	f, ok, err := validation.ParseFloat(s)
	if !ok || err != nil {
		return nil
	}
	return &f
}

func optInt(s string) *int {
	n, ok, err := validation.ParseInt(s)
	if !ok || err != nil {
		return nil
	}
	return &n
}

func trim(s string) string {
	return strings.TrimSpace(s)
}

// column returns the i-th value of a repeated form field.
func column(v url.Values, key string, i int) string {
	values := v[key]
	if i < len(values) {
		return values[i]
	}
	return ""
}

func formatFloat(f float64) string {
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatInt(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
