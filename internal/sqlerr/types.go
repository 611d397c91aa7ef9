package sqlerr

import "github.com/jackc/pgx/v5/pgconn"

// Code classifies Postgres SQLSTATE values into the handful of categories
// the application actually reacts to. Everything else is Other.
type Code int

const (
	// Other covers every SQLSTATE the app has no special handling for.
	Other Code = iota

	// UniqueViolation: SQLSTATE 23505, duplicate key.
	UniqueViolation

	// ForeignKeyViolation: SQLSTATE 23503, referenced row missing.
	ForeignKeyViolation

	// NotNullViolation: SQLSTATE 23502, required column was null.
	NotNullViolation

	// CheckViolation: SQLSTATE 23514, CHECK constraint failed.
	CheckViolation

	// ConnectionFailure: class 08, the database went away mid-request.
	ConnectionFailure
)

// Severity mirrors the Postgres error severity field as an enum.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityError
	SeverityFatal
	SeverityPanic
)

// MapCode maps a raw SQLSTATE string onto the Code enum.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23505":
		return UniqueViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	}

	// Class 08 covers connection exceptions.
	if len(sqlstate) >= 2 && sqlstate[:2] == "08" {
		return ConnectionFailure
	}

	return Other
}

// MapSeverity maps the Postgres severity string onto the Severity enum.
func MapSeverity(severity string) Severity {
	switch severity {
	case "ERROR":
		return SeverityError
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	default:
		return SeverityUnknown
	}
}

// Error is the normalized database error the rest of the app works with.
//
// It keeps the interesting metadata from pgconn.PgError (table, column,
// constraint) alongside the mapped enums, and retains the driver error
// for Unwrap so errors.As chains still reach the original.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string // original SQLSTATE
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr *pgconn.PgError
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying driver error to errors.Is/As.
func (e *Error) Unwrap() error {
	if e.driverErr == nil {
		return nil
	}
	return e.driverErr
}
