package testutil

import (
	"errors"
	"fmt"
	"testing"

	apperrors "armory/internal/errors"
	"armory/internal/models"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertLedgerEntry checks the type and the from/to bases of a ledger entry.
// A nil base means the side must be empty.
func AssertLedgerEntry(t *testing.T, entry models.Transaction, txType models.TransactionType, from, to *uint) {
	t.Helper()

	if entry.Type != txType {
		t.Errorf("ledger entry %d: expected type %s, got %s", entry.ID, txType, entry.Type)
	}
	if !sameBase(entry.FromBaseID, from) || !sameBase(entry.ToBaseID, to) {
		t.Errorf("ledger entry %d: expected %s -> %s, got %s -> %s",
			entry.ID, baseLabel(from), baseLabel(to), baseLabel(entry.FromBaseID), baseLabel(entry.ToBaseID))
	}
}

func sameBase(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func baseLabel(id *uint) string {
	if id == nil {
		return "none"
	}
	return fmt.Sprintf("base %d", *id)
}
