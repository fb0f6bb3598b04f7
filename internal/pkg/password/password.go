package password

import (
	"errors"

	"service-marketplace/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmpty    = errors.New("password is empty")
	ErrTooLong  = errors.New("password exceeds 72 bytes")
	ErrMismatch = errors.New("password does not match")
)

// bcrypt silently ignores input past this length.
const maxBytes = 72

// Cost is a variable so tests can drop it to bcrypt.MinCost.
var Cost = bcrypt.DefaultCost

func Hash(plain string) (string, error) {
	if err := check(plain); err != nil {
		return "", err
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", errs.Wrap(err, "bcrypt hash")
	}
	return string(b), nil
}

// Verify returns ErrMismatch for a wrong password and a wrapped error when the
// stored hash itself is unusable.
func Verify(hash, plain string) error {
	if hash == "" {
		return errs.New("stored password hash is empty")
	}
	if err := check(plain); err != nil {
		return ErrMismatch
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return errs.Wrap(err, "bcrypt compare")
}

func check(plain string) error {
	switch {
	case plain == "":
		return ErrEmpty
	case len(plain) > maxBytes:
		return ErrTooLong
	}
	return nil
}
