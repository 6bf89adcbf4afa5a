package validation

import (
	"errors"
)

const MinPasswordLength = 6

// ValidatePassword only enforces the minimum length; strength rules belong to the backend.
func ValidatePassword(password string) error {
	if password == "" {
		return errors.New("La contraseña es requerida")
	}

	if len(password) < MinPasswordLength {
		return errors.New("La contraseña debe tener al menos 6 caracteres")
	}

	// bcrypt on the backend truncates after 72 bytes
	if len(password) > 72 {
		return errors.New("La contraseña no puede superar 72 caracteres")
	}

	return nil
}

// ValidatePasswordConfirmation checks the repeated password.
func ValidatePasswordConfirmation(password, confirm string) error {
	if password != confirm {
		return errors.New("Las contraseñas no coinciden")
	}
	return nil
}

// MinPasswordStrength is the score registration requires.
const MinPasswordStrength = 2

// PasswordStrength scores 0..5: one point each for 6+ chars, 8+ chars, an uppercase
// letter, a digit and a symbol.
func PasswordStrength(password string) int {
	score := 0
	if len(password) >= 6 {
		score++
	}
	if len(password) >= 8 {
		score++
	}
	var upper, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case r >= 'a' && r <= 'z':
		default:
			symbol = true
		}
	}
	for _, ok := range []bool{upper, digit, symbol} {
		if ok {
			score++
		}
	}
	return score
}

// ValidatePasswordStrength rejects passwords scoring below MinPasswordStrength.
func ValidatePasswordStrength(password string) error {
	if PasswordStrength(password) < MinPasswordStrength {
		return errors.New("La contraseña es muy débil. Usa mayúsculas, números y caracteres especiales.")
	}
	return nil
}
