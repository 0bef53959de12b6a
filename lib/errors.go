package lib

import (
	"errors"

	"github.com/uptrace/bun/driver/pgdriver"
)

// Database errors
var (
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")
)

// Auth errors
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("expired token")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// MapPgError converts driver-level SQLSTATE failures into the sentinel
// errors callers branch on. Anything unrecognized is passed through.
func MapPgError(err error) error {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Field('C') { // SQLSTATE
		case "23505": // unique_violation
			return ErrConflict
		case "P0002": // no_data_found
			return ErrNotFound
		}
	}
	return err
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
