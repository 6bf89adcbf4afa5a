package validation

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrRequired  = errors.New("Este campo es requerido")
	ErrNotNumber = errors.New("Debe ser un número válido")
	ErrNegative  = errors.New("Debe ser un número positivo")
)

// Required fails when s is blank after trimming.
func Required(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrRequired
	}
	return nil
}

// ParseInt parses a non-negative integer. Blank input yields 0, false.
func ParseInt(s string) (int, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, true, ErrNotNumber
	}
	if n < 0 {
		return 0, true, ErrNegative
	}
	return n, true, nil
}

// ParseFloat parses a non-negative decimal. A comma is accepted as the decimal separator.
func ParseFloat(s string) (float64, bool, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, true, ErrNotNumber
	}
	if f < 0 {
		return 0, true, ErrNegative
	}
	return f, true, nil
}
