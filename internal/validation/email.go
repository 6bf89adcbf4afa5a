package validation

import (
	"errors"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail validates email format and length
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)

	if email == "" {
		return errors.New("El email es requerido")
	}

	// RFC 5321 total length
	if len(email) > 254 {
		return errors.New("El email es demasiado largo")
	}

	if !emailPattern.MatchString(email) {
		return errors.New("Ingresa un email válido")
	}

	return nil
}
