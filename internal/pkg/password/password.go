// Package password hashes and checks the shared staff password.
package password

import (
	"strings"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

const (
	Cost      = bcrypt.DefaultCost
	MinLength = 8
)

var (
	ErrHashingFailed    = errs.New("password hashing failed")
	ErrComparisonFailed = errs.New("password comparison failed")
	ErrInvalidPassword  = errs.New("invalid password")
	ErrTooShort         = errs.Newf("password must be at least %d characters", MinLength)
	ErrMalformedHash    = errs.New("STAFF_PASSWORD_HASH is not a bcrypt hash")
)

// Validate applies the rules a new staff password must meet.
func Validate(plain string) error {
	if strings.TrimSpace(plain) == "" {
		return ErrInvalidPassword
	}
	if len(plain) < MinLength {
		return ErrTooShort
	}
	return nil
}

func HashPassword(plain string) (string, error) {
	if err := Validate(plain); err != nil {
		return "", err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", errs.Mark(err, ErrHashingFailed)
	}
	return string(hashed), nil
}

// ComparePassword returns ErrComparisonFailed on a wrong password and
// ErrMalformedHash when the stored hash cannot be read.
func ComparePassword(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrInvalidPassword
	}

	switch err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)); {
	case err == nil:
		return nil
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrComparisonFailed
	default:
		return errs.Mark(err, ErrMalformedHash)
	}
}
