package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		ok    bool
	}{
		{"ana@fitlife.com", true},
		{"  ana@fitlife.com ", true},
		{"", false},
		{"ana@fitlife", false},
		{"ana fitlife@x.com", false},
		{"@fitlife.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("12345"))
	assert.NoError(t, ValidatePassword("123456"))
	assert.Error(t, ValidatePasswordConfirmation("123456", "123457"))
	assert.NoError(t, ValidatePasswordConfirmation("123456", "123456"))
}

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		password string
		want     int
	}{
		{"abc", 0},
		{"abcdef", 1},
		{"abcdefgh", 2},
		{"abcde1", 2},
		{"Abcdefg1!", 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PasswordStrength(tt.password), tt.password)
	}

	assert.Error(t, ValidatePasswordStrength("abcdef"))
	assert.NoError(t, ValidatePasswordStrength("abcdef1"))
}

func TestParseNumbers(t *testing.T) {
	n, present, err := ParseInt(" 45 ")
	assert.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, 45, n)

	_, present, err = ParseInt("")
	assert.NoError(t, err)
	assert.False(t, present)

	_, _, err = ParseInt("4x")
	assert.ErrorIs(t, err, ErrNotNumber)

	_, _, err = ParseInt("-3")
	assert.ErrorIs(t, err, ErrNegative)

	f, _, err := ParseFloat("72,5")
	assert.NoError(t, err)
	assert.Equal(t, 72.5, f)

	assert.ErrorIs(t, Required("   "), ErrRequired)
}
