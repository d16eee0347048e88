package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

type sample struct {
	Name  string `json:"name" validate:"required,min=2,max=5"`
	Email string `json:"email" validate:"omitempty,email"`
}

func TestFieldErrors_UsesJSONNames(t *testing.T) {
	v := validator.New()
	UseJSONNames(v)

	err := v.Struct(sample{Name: "x", Email: "not-an-email"})
	fields := FieldErrors(err)

	if got := fields["name"]; got != "name must be at least 2 characters" {
		t.Errorf("unexpected name message: %q", got)
	}
	if got := fields["email"]; got != "email must be a valid email address" {
		t.Errorf("unexpected email message: %q", got)
	}
	if len(fields) != 2 {
		t.Errorf("expected 2 fields, got %v", fields)
	}
}

func TestFieldErrors_Required(t *testing.T) {
	v := validator.New()
	UseJSONNames(v)

	fields := FieldErrors(v.Struct(sample{}))
	if fields["name"] != "name is required" {
		t.Errorf("unexpected message: %v", fields)
	}
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	if fields := FieldErrors(errors.New("boom")); fields != nil {
		t.Errorf("expected nil, got %v", fields)
	}
	if fields := FieldErrors(nil); fields != nil {
		t.Errorf("expected nil, got %v", fields)
	}
}
