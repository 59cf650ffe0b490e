package core

// errors.go defines the error taxonomy for the query/mutation engine
// and the mapping from technical errors to user-facing messages.
//
// The taxonomy:
//
//	ValidationError - bad input, generated before the store is touched
//	ConflictError   - uniqueness violation with an actionable message
//	StoreError      - connectivity/syntax/unexpected store failure
//
// Sentinel outcomes (ErrCountryUnknown, zero affected rows) are normal
// negative results, not failures; they never reach MapError.

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrCountryUnknown reports that a mutation named a country with no
// reference row. This is a user-facing negative result, not a store
// failure.
var ErrCountryUnknown = errors.New("country not found")

// ValidationError reports missing or malformed input. It is produced
// before any statement is issued.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// ConflictError reports a uniqueness violation, with a message that
// tells the user how to proceed instead.
type ConflictError struct {
	Message string
	Action  string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// StoreError wraps an unexpected failure from the data layer. The
// wrapped error carries the technical detail for server-side logs;
// callers show users only the MapError message.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// storeErr wraps err as a StoreError for the named operation.
func storeErr(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// UserMessage provides user-friendly error information with actionable
// guidance. Code is quoted to support for faster diagnosis.
type UserMessage struct {
	Message string
	Action  string
	Code    string
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns maps technical error text (case-insensitive substring
// match) to user messages. First match wins, so specific patterns come
// before general ones.
var errorPatterns = []errorPattern{
	{
		pattern: "duplicate key",
		msg: UserMessage{
			Message: "A record for that country and year already exists",
			Action:  "Use the update operation to change its value",
			Code:    "DB001",
		},
	},
	{
		pattern: "unique constraint",
		msg: UserMessage{
			Message: "A record for that country and year already exists",
			Action:  "Use the update operation to change its value",
			Code:    "DB001",
		},
	},
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "Unable to connect to the database",
			Action:  "Please try again in a few moments",
			Code:    "DB002",
		},
	},
	{
		pattern: "connection reset",
		msg: UserMessage{
			Message: "The database connection was interrupted",
			Action:  "Please try again",
			Code:    "DB002",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "The query took too long and was cancelled",
			Action:  "Please try again later",
			Code:    "DB003",
		},
	},
	{
		pattern: "timeout",
		msg: UserMessage{
			Message: "The query took too long and was cancelled",
			Action:  "Please try again later",
			Code:    "DB003",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "The request was cancelled",
			Action:  "Please try again",
			Code:    "DB004",
		},
	},
}

// MapError converts a technical error into a user-friendly message.
// ValidationError and ConflictError carry their own text; everything
// else is matched against errorPatterns with a generic fallback.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return UserMessage{
			Message: ve.Error(),
			Action:  "Correct the input and try again",
			Code:    "VAL001",
		}
	}

	var ce *ConflictError
	if errors.As(err, &ce) {
		return UserMessage{
			Message: ce.Message,
			Action:  ce.Action,
			Code:    "DB001",
		}
	}

	lower := strings.ToLower(err.Error())
	for _, p := range errorPatterns {
		if strings.Contains(lower, p.pattern) {
			return p.msg
		}
	}

	return UserMessage{
		Message: "An unexpected error occurred",
		Action:  "Please try again or contact support",
		Code:    "ERR000",
	}
}
