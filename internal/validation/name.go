package validation

import (
	"errors"
	"strings"
)

// ValidateName validates a person's name or surname
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		return errors.New("Este campo es requerido")
	}

	if len(trimmed) > 100 {
		return errors.New("Máximo 100 caracteres")
	}

	return nil
}
