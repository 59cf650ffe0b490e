package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapError_ValidationError(t *testing.T) {
	err := &ValidationError{Field: "country", Message: "country is required"}

	msg := MapError(err)
	if msg.Code != "VAL001" {
		t.Errorf("Code = %q, want VAL001", msg.Code)
	}
	if msg.Message != "country: country is required" {
		t.Errorf("Message = %q", msg.Message)
	}
}

func TestMapError_WrappedValidationError(t *testing.T) {
	err := fmt.Errorf("handler: %w", &ValidationError{Message: "keyword is required"})

	if msg := MapError(err); msg.Code != "VAL001" {
		t.Errorf("Code = %q, want VAL001", msg.Code)
	}
}

func TestMapError_ConflictError(t *testing.T) {
	err := &ConflictError{
		Message: "An observation for Japan in that year already exists",
		Action:  "Use the update operation to change its value",
	}

	msg := MapError(err)
	if msg.Code != "DB001" {
		t.Errorf("Code = %q, want DB001", msg.Code)
	}
	if msg.Message != err.Message || msg.Action != err.Action {
		t.Errorf("conflict text not preserved: %+v", msg)
	}
}

func TestMapError_Patterns(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"duplicate key", errors.New(`ERROR: duplicate key value violates unique constraint "observations_pkey"`), "DB001"},
		{"connection refused", errors.New("dial tcp 127.0.0.1:5432: connection refused"), "DB002"},
		{"deadline", errors.New("context deadline exceeded"), "DB003"},
		{"canceled", errors.New("context canceled"), "DB004"},
		{"unknown", errors.New("something else entirely"), "ERR000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if msg := MapError(tt.err); msg.Code != tt.code {
				t.Errorf("MapError(%v).Code = %q, want %q", tt.err, msg.Code, tt.code)
			}
		})
	}
}

func TestMapError_StoreErrorUnwraps(t *testing.T) {
	err := storeErr("insert observation", errors.New("connection refused"))

	if msg := MapError(err); msg.Code != "DB002" {
		t.Errorf("Code = %q, want DB002", msg.Code)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505"}
	if !IsUniqueViolation(dup) {
		t.Error("expected 23505 to be a unique violation")
	}
	if !IsUniqueViolation(fmt.Errorf("insert: %w", dup)) {
		t.Error("expected wrapped 23505 to be detected")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("foreign key violation is not a unique violation")
	}
	if IsUniqueViolation(errors.New("duplicate key")) {
		t.Error("plain errors carry no SQLSTATE and must not match")
	}
}

func TestStoreError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := storeErr("op", inner)

	if !errors.Is(err, inner) {
		t.Error("StoreError should unwrap to the inner error")
	}

	var se *StoreError
	if !errors.As(err, &se) {
		t.Fatal("expected a *StoreError")
	}
	if se.Op != "op" {
		t.Errorf("Op = %q, want %q", se.Op, "op")
	}
}

func TestValidationError_Error(t *testing.T) {
	withField := &ValidationError{Field: "year", Message: "must be an integer"}
	if withField.Error() != "year: must be an integer" {
		t.Errorf("Error() = %q", withField.Error())
	}

	bare := &ValidationError{Message: "bad input"}
	if bare.Error() != "bad input" {
		t.Errorf("Error() = %q", bare.Error())
	}
}
