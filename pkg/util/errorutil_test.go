package util

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewValidationError("bad input", map[string]any{"field": "required"})
	wrapped := fmt.Errorf("handling request: %w", original)

	converted := ToDomainError(wrapped)
	if converted.Code != "VALIDATION_FAILED" {
		t.Errorf("code = %s, want VALIDATION_FAILED", converted.Code)
	}
	if converted.HTTPStatus != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", converted.HTTPStatus)
	}
}

func TestToDomainErrorWrapsUnknown(t *testing.T) {
	converted := ToDomainError(errors.New("boom"))
	if converted.Code != "INTERNAL_ERROR" {
		t.Errorf("code = %s, want INTERNAL_ERROR", converted.Code)
	}
	if converted.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", converted.HTTPStatus)
	}
}

func TestToDomainErrorMapsNoRows(t *testing.T) {
	converted := ToDomainError(sql.ErrNoRows)
	if converted.Code != "NOT_FOUND" {
		t.Errorf("code = %s, want NOT_FOUND", converted.Code)
	}
}

func TestCapacityExceededShape(t *testing.T) {
	converted := ToDomainError(NewCapacityExceeded("2026-09-14"))
	if converted.Code != "CAPACITY_EXCEEDED" {
		t.Errorf("code = %s, want CAPACITY_EXCEEDED", converted.Code)
	}
	if converted.HTTPStatus != http.StatusConflict {
		t.Errorf("status = %d, want 409", converted.HTTPStatus)
	}
	if converted.Details["date"] != "2026-09-14" {
		t.Errorf("details = %v, want date set", converted.Details)
	}
}

func TestInvalidTransitionShape(t *testing.T) {
	converted := ToDomainError(NewInvalidTransition("Checked-Out", "Checked-In"))
	if converted.Code != "INVALID_TRANSITION" {
		t.Errorf("code = %s, want INVALID_TRANSITION", converted.Code)
	}
	if converted.HTTPStatus != http.StatusConflict {
		t.Errorf("status = %d, want 409", converted.HTTPStatus)
	}
	if converted.Details["from"] != "Checked-Out" || converted.Details["to"] != "Checked-In" {
		t.Errorf("details = %v, want from/to set", converted.Details)
	}
}
