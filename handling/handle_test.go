package handling

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"storebill_server/lib"
	"testing"

	"github.com/MonkyMars/gecho"
)

func testLogger() *gecho.Logger {
	return gecho.NewLogger(gecho.NewConfig(
		gecho.WithShowCaller(false),
		gecho.WithLogLevel(gecho.ParseLogLevel("error")),
	))
}

func TestHandleErrorStatusCodes(t *testing.T) {
	logger := testLogger()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", lib.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("product abc: %w", lib.ErrNotFound), http.StatusNotFound},
		{"conflict", lib.ErrConflict, http.StatusConflict},
		{"invalid credentials", lib.ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid token", lib.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", lib.ErrExpiredToken, http.StatusUnauthorized},
		{"unknown error", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			HandleError(tt.err, "test message", logger, w)

			if w.Code != tt.want {
				t.Errorf("HandleError(%v) status = %d, want %d", tt.err, w.Code, tt.want)
			}
		})
	}
}

func TestHandleErrorValidation(t *testing.T) {
	logger := testLogger()
	w := httptest.NewRecorder()

	err := &lib.ValidationError{Errors: []lib.FieldError{
		{Field: "phone", Message: "is required"},
	}}
	HandleError(err, "ignored", logger, w)

	if w.Code != http.StatusBadRequest {
		t.Errorf("validation error status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestHandleBodyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"malformed json", errors.New("unexpected EOF")},
		{"validation", &lib.ValidationError{Errors: []lib.FieldError{{Field: "name", Message: "is required"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			HandleBodyError(tt.err, w)

			if w.Code != http.StatusBadRequest {
				t.Errorf("HandleBodyError(%v) status = %d, want %d", tt.err, w.Code, http.StatusBadRequest)
			}
		})
	}
}
