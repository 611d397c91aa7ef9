package errs

import "net/http"

// The habit gateway distinguishes two error kinds by which sub-domain
// raised them: task operations (insert/delete/update/fetch on habit rows)
// and group operations (membership resolution and member fetches).
//
// Each kind is a closed string enumeration so call sites can switch over
// the codes exhaustively instead of matching on free-form strings.

// TaskCode enumerates error codes raised by habit task operations.
type TaskCode string

const (
	// TaskAuthError means the caller is not authenticated.
	TaskAuthError TaskCode = "AUTH_ERROR"

	// TaskInsertError means the habit insert failed or returned no row.
	TaskInsertError TaskCode = "TASK_INSERT_ERROR"

	// TaskDeleteError means the habit delete failed. A delete that matches
	// zero rows is NOT an error; deletes are idempotent for the caller.
	TaskDeleteError TaskCode = "TASK_DELETE_ERROR"

	// TaskUpdateError means the completion update failed.
	TaskUpdateError TaskCode = "TASK_UPDATE_ERROR"

	// TaskFetchError means the group habit listing failed.
	TaskFetchError TaskCode = "TASK_FETCH_ERROR"

	// TaskUnknown is the normalized code for any unclassified failure.
	// Unexpected errors are logged and resurfaced under this code so
	// nothing ever escapes an operation boundary untyped.
	TaskUnknown TaskCode = "UNKNOWN"
)

// GroupCode enumerates error codes raised by group operations.
type GroupCode string

const (
	// GroupNoGroup means the authenticated user has no group membership.
	GroupNoGroup GroupCode = "NO_GROUP"

	// GroupMembersFetchError means the member+profile fetch failed.
	GroupMembersFetchError GroupCode = "MEMBERS_FETCH_ERROR"

	// GroupFetchError means the membership lookup itself failed.
	GroupFetchError GroupCode = "GROUP_FETCH_ERROR"
)

// NewTaskError builds the HTTPError for a task-operation code.
//
// Status mapping: AUTH_ERROR is the caller's fault (401); everything else
// in this kind is a backend failure (500).
func NewTaskError(code TaskCode, message string) *HTTPError {
	status := http.StatusInternalServerError
	if code == TaskAuthError {
		status = http.StatusUnauthorized
	}

	return &HTTPError{
		Code:    string(code),
		Message: message,
		Status:  status,
	}
}

// NewGroupError builds the HTTPError for a group-operation code.
//
// Status mapping: NO_GROUP is a resolvable precondition failure (404);
// the fetch errors are backend failures (500).
func NewGroupError(code GroupCode, message string) *HTTPError {
	status := http.StatusInternalServerError
	if code == GroupNoGroup {
		status = http.StatusNotFound
	}

	return &HTTPError{
		Code:    string(code),
		Message: message,
		Status:  status,
	}
}
