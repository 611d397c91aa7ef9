package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/brianloooooh/accountability-app/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapCode(t *testing.T) {
	tests := []struct {
		sqlstate string
		want     Code
	}{
		{"23505", UniqueViolation},
		{"23503", ForeignKeyViolation},
		{"23502", NotNullViolation},
		{"23514", CheckViolation},
		{"08006", ConnectionFailure},
		{"08000", ConnectionFailure},
		{"42P01", Other},
		{"", Other},
	}

	for _, tt := range tests {
		if got := MapCode(tt.sqlstate); got != tt.want {
			t.Errorf("MapCode(%q) = %v, want %v", tt.sqlstate, got, tt.want)
		}
	}
}

func TestGenerateErrorCode(t *testing.T) {
	tests := []struct {
		table string
		code  Code
		want  string
	}{
		{"habits", UniqueViolation, "HABIT_ALREADY_EXISTS"},
		{"habits", ForeignKeyViolation, "HABIT_NOT_FOUND"},
		{"profiles", NotNullViolation, "PROFILE_REQUIRED"},
		{"group_members", CheckViolation, "GROUP_MEMBER_INVALID"},
		{"", Other, "RECORD_ERROR"},
	}

	for _, tt := range tests {
		if got := generateErrorCode(tt.table, tt.code); got != tt.want {
			t.Errorf("generateErrorCode(%q, %v) = %q, want %q", tt.table, tt.code, got, tt.want)
		}
	}
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	tests := []struct {
		constraint string
		want       string
	}{
		{"unique_profiles_email", "email"},
		{"profiles_email_key", "email"},
		{"profiles_user_id_ukey", "id"},
		{"habits_pkey", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := extractColumnForUniqueViolation(tt.constraint); got != tt.want {
			t.Errorf("extractColumnForUniqueViolation(%q) = %q, want %q", tt.constraint, got, tt.want)
		}
	}
}

func TestHandleErrorForeignKeyViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23503",
		TableName:      "habits",
		ColumnName:     "group_id",
		ConstraintName: "habits_group_id_fkey",
	})

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("err = %v, want *errs.HTTPError", err)
	}
	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", httpErr.Status, http.StatusBadRequest)
	}
	if httpErr.Code != "HABIT_NOT_FOUND" {
		t.Errorf("code = %q, want %q", httpErr.Code, "HABIT_NOT_FOUND")
	}
	if httpErr.Message != "The referenced Group does not exist" {
		t.Errorf("message = %q", httpErr.Message)
	}
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23505",
		TableName:      "profiles",
		ConstraintName: "profiles_email_key",
	})

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("err = %v, want *errs.HTTPError", err)
	}
	if httpErr.Code != "PROFILE_ALREADY_EXISTS" {
		t.Errorf("code = %q, want %q", httpErr.Code, "PROFILE_ALREADY_EXISTS")
	}
	if httpErr.Message != "A Profile with this Email already exists" {
		t.Errorf("message = %q", httpErr.Message)
	}
	if !httpErr.Override {
		t.Error("unique violation message should be override")
	}
}

func TestHandleErrorNoRowsWithTableHint(t *testing.T) {
	err := HandleError(fmt.Errorf("table:profiles: %w", pgx.ErrNoRows))

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("err = %v, want *errs.HTTPError", err)
	}
	if httpErr.Status != http.StatusNotFound {
		t.Errorf("status = %d, want %d", httpErr.Status, http.StatusNotFound)
	}
	if httpErr.Message != "Profile not found" {
		t.Errorf("message = %q, want %q", httpErr.Message, "Profile not found")
	}
}

func TestHandleErrorNoRowsWithoutHint(t *testing.T) {
	err := HandleError(pgx.ErrNoRows)

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("err = %v, want *errs.HTTPError", err)
	}
	if httpErr.Status != http.StatusNotFound {
		t.Errorf("status = %d, want %d", httpErr.Status, http.StatusNotFound)
	}
	if httpErr.Message != "Resource not found" {
		t.Errorf("message = %q, want %q", httpErr.Message, "Resource not found")
	}
}

func TestHandleErrorPassesHTTPErrorThrough(t *testing.T) {
	original := errs.NewNotFoundError("Profile not found", true, nil)

	if got := HandleError(original); got != error(original) {
		t.Errorf("HandleError should return typed errors unchanged, got %v", got)
	}
}

func TestHandleErrorUnknownIs500(t *testing.T) {
	err := HandleError(errors.New("connection reset"))

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("err = %v, want *errs.HTTPError", err)
	}
	if httpErr.Status != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", httpErr.Status, http.StatusInternalServerError)
	}
}

func TestErrCode(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", ConvertPgError(&pgconn.PgError{Code: "23505"}))

	if got := ErrCode(wrapped); got != UniqueViolation {
		t.Errorf("ErrCode = %v, want UniqueViolation", got)
	}
	if got := ErrCode(errors.New("plain")); got != Other {
		t.Errorf("ErrCode = %v, want Other", got)
	}
}
