package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kartavyango/sahaaya/internal/infrastructure/validator"
)

func TestValidateEmail(t *testing.T) {
	v := validator.NewValidator()

	assert.NoError(t, v.ValidateEmail("asha@example.com"))
	assert.Error(t, v.ValidateEmail("not-an-email"))
	assert.Error(t, v.ValidateEmail(""))
}

func TestValidatePhone(t *testing.T) {
	v := validator.NewValidator()

	valid := []string{
		"+911234567890",
		"1234567",
		"020-2612-3456",
		"+91 12345 67890",
	}
	for _, phone := range valid {
		assert.NoError(t, v.ValidatePhone(phone), phone)
	}

	invalid := []string{
		"",
		"12345",                // too short
		"12345678901234567890", // too long
		"12345abc67",           // letters
		"+",                    // no digits
	}
	for _, phone := range invalid {
		assert.Error(t, v.ValidatePhone(phone), phone)
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	v := validator.NewValidator()

	assert.NoError(t, v.ValidatePasswordStrength("Password123!"))

	cases := map[string]string{
		"short":           "Pa1!",
		"no uppercase":    "password123!",
		"no lowercase":    "PASSWORD123!",
		"no digit":        "Password!!!!",
		"no special char": "Password1234",
	}
	for name, password := range cases {
		assert.Error(t, v.ValidatePasswordStrength(password), name)
	}
}
