package lib

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
)

type sampleBody struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
}

func TestExtractAndValidateBodyValid(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Asha","email":"asha@example.com"}`))

	body, err := ExtractAndValidateBody[sampleBody](r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body.Name != "Asha" || body.Email != "asha@example.com" {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestExtractAndValidateBodyMalformedJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":`))

	if _, err := ExtractAndValidateBody[sampleBody](r); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestExtractAndValidateBodyUnknownField(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Asha","email":"a@b.com","extra":true}`))

	if _, err := ExtractAndValidateBody[sampleBody](r); err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestExtractAndValidateBodyValidation(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"A","email":"not-an-email"}`))

	_, err := ExtractAndValidateBody[sampleBody](r)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(ve.Errors) != 2 {
		t.Errorf("expected 2 field errors, got %d: %+v", len(ve.Errors), ve.Errors)
	}
}
