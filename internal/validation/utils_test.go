package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

type addTaskPayload struct {
	Name string `validate:"required,min=1,max=200"`
}

func (p *addTaskPayload) Validate() error {
	return validate.Struct(p)
}

type profilePayload struct {
	DisplayName string `validate:"required"`
	Email       string `validate:"omitempty,email"`
}

func (p *profilePayload) Validate() error {
	return validate.Struct(p)
}

func TestValidateStructPasses(t *testing.T) {
	msg, fieldErrors := validateStruct(&addTaskPayload{Name: "Morning run"})
	if msg != "" || fieldErrors != nil {
		t.Errorf("validateStruct = (%q, %v), want no errors", msg, fieldErrors)
	}
}

func TestValidateStructRequired(t *testing.T) {
	msg, fieldErrors := validateStruct(&addTaskPayload{})
	if msg != "Validation failed" {
		t.Errorf("msg = %q, want %q", msg, "Validation failed")
	}
	if len(fieldErrors) != 1 {
		t.Fatalf("fieldErrors = %d, want 1", len(fieldErrors))
	}
	if fieldErrors[0].Field != "name" {
		t.Errorf("field = %q, want %q", fieldErrors[0].Field, "name")
	}
	if fieldErrors[0].Error != "is required" {
		t.Errorf("error = %q, want %q", fieldErrors[0].Error, "is required")
	}
}

func TestValidateStructMaxLength(t *testing.T) {
	long := make([]byte, 201)
	for i := range long {
		long[i] = 'a'
	}

	_, fieldErrors := validateStruct(&addTaskPayload{Name: string(long)})
	if len(fieldErrors) != 1 {
		t.Fatalf("fieldErrors = %d, want 1", len(fieldErrors))
	}
	if fieldErrors[0].Error != "must not exceed 200 characters" {
		t.Errorf("error = %q", fieldErrors[0].Error)
	}
}

func TestValidateStructEmail(t *testing.T) {
	_, fieldErrors := validateStruct(&profilePayload{DisplayName: "Alice", Email: "not-an-email"})
	if len(fieldErrors) != 1 {
		t.Fatalf("fieldErrors = %d, want 1", len(fieldErrors))
	}
	if fieldErrors[0].Field != "email" {
		t.Errorf("field = %q, want %q", fieldErrors[0].Field, "email")
	}
	if fieldErrors[0].Error != "must be a valid email address" {
		t.Errorf("error = %q", fieldErrors[0].Error)
	}

	// Empty email is allowed via omitempty.
	if _, fieldErrors := validateStruct(&profilePayload{DisplayName: "Alice"}); fieldErrors != nil {
		t.Errorf("empty email should pass, got %v", fieldErrors)
	}
}

func TestExtractCustomValidationErrors(t *testing.T) {
	custom := CustomValidationErrors{
		{Field: "schedule", Message: "is not a valid cron expression"},
	}

	msg, fieldErrors := extractValidationError(custom)
	if msg != "Validation failed" {
		t.Errorf("msg = %q", msg)
	}
	if len(fieldErrors) != 1 {
		t.Fatalf("fieldErrors = %d, want 1", len(fieldErrors))
	}
	if fieldErrors[0].Field != "schedule" || fieldErrors[0].Error != "is not a valid cron expression" {
		t.Errorf("fieldErrors[0] = %+v", fieldErrors[0])
	}
}

func TestIsValidUUID(t *testing.T) {
	if !IsValidUUID(uuid.NewString()) {
		t.Error("generated UUID should validate")
	}

	invalid := []string{
		"",
		"not-a-uuid",
		"123e4567e89b12d3a456426614174000",
		"123e4567-e89b-12d3-a456-42661417400",
	}
	for _, s := range invalid {
		if IsValidUUID(s) {
			t.Errorf("IsValidUUID(%q) = true, want false", s)
		}
	}
}
