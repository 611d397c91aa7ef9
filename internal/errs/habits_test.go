package errs

import (
	"net/http"
	"testing"
)

func TestNewTaskErrorStatusMapping(t *testing.T) {
	tests := []struct {
		code   TaskCode
		status int
	}{
		{TaskAuthError, http.StatusUnauthorized},
		{TaskInsertError, http.StatusInternalServerError},
		{TaskDeleteError, http.StatusInternalServerError},
		{TaskUpdateError, http.StatusInternalServerError},
		{TaskFetchError, http.StatusInternalServerError},
		{TaskUnknown, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		err := NewTaskError(tt.code, "msg")
		if err.Status != tt.status {
			t.Errorf("NewTaskError(%q).Status = %d, want %d", tt.code, err.Status, tt.status)
		}
		if err.Code != string(tt.code) {
			t.Errorf("NewTaskError(%q).Code = %q", tt.code, err.Code)
		}
	}
}

func TestNewGroupErrorStatusMapping(t *testing.T) {
	tests := []struct {
		code   GroupCode
		status int
	}{
		{GroupNoGroup, http.StatusNotFound},
		{GroupMembersFetchError, http.StatusInternalServerError},
		{GroupFetchError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		err := NewGroupError(tt.code, "msg")
		if err.Status != tt.status {
			t.Errorf("NewGroupError(%q).Status = %d, want %d", tt.code, err.Status, tt.status)
		}
		if err.Code != string(tt.code) {
			t.Errorf("NewGroupError(%q).Code = %q", tt.code, err.Code)
		}
	}
}

func TestHTTPErrorIsMatchesByType(t *testing.T) {
	a := NewTaskError(TaskInsertError, "first")
	b := NewGroupError(GroupNoGroup, "second")

	if !a.Is(b) {
		t.Error("any two *HTTPError values should match by type")
	}
	if a.Is(errTest) {
		t.Error("non-HTTPError targets should not match")
	}
}

var errTest = errorString("plain")

type errorString string

func (e errorString) Error() string { return string(e) }

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Not Found", "NOT_FOUND"},
		{"Internal Server Error", "INTERNAL_SERVER_ERROR"},
		{"Bad Request", "BAD_REQUEST"},
	}

	for _, tt := range tests {
		if got := MakeUpperCaseWithUnderscores(tt.in); got != tt.want {
			t.Errorf("MakeUpperCaseWithUnderscores(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
