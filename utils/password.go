package utils

import (
	"fmt"
	"strings"

	"github.com/Lutkowo/lutkowo/models"
	"github.com/go-playground/validator/v10"
	"github.com/matthewhartstonge/argon2"
)

const MinPasswordLength = 6

// same rule the request binding tags use
var emailValidator = validator.New()

func HashPassword(password string) (string, error) {
	argon := argon2.DefaultConfig()
	encoded, err := argon.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func VerifyPassword(encodedHash, password string) (bool, error) {
	ok, err := argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
	if err != nil {
		return false, err
	}
	return ok, nil
}

func ValidatePasswordStrength(password string) error {
	if len(strings.TrimSpace(password)) < MinPasswordLength {
		return fmt.Errorf("%w: at least %d characters required", models.ErrWeakPassword, MinPasswordLength)
	}
	return nil
}

// NormalizeEmail lower-cases the address and rejects anything that is not a
// bare address.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := emailValidator.Var(email, "required,email"); err != nil {
		return "", models.ErrInvalidEmail
	}
	return email, nil
}
