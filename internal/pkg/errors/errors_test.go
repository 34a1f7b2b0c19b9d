package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without wrapped error",
			err:  New("CONFIG_NOT_FOUND", "config not found", http.StatusNotFound),
			want: "CONFIG_NOT_FOUND: config not found",
		},
		{
			name: "with wrapped error",
			err:  Wrap(fmt.Errorf("db error"), "DB_ERROR", "database failure", http.StatusInternalServerError),
			want: "DB_ERROR: database failure: db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap(inner, "CODE", "msg", 500)

	if !errors.Is(appErr, inner) {
		t.Error("errors.Is should match inner error")
	}
}

func TestIsAppError(t *testing.T) {
	appErr := NotFound("NOT_FOUND", "resource not found")
	wrapped := fmt.Errorf("wrapped: %w", appErr)

	got, ok := IsAppError(wrapped)
	if !ok {
		t.Fatal("IsAppError should return true for wrapped AppError")
	}
	if got.Code != "NOT_FOUND" {
		t.Errorf("Code = %q, want NOT_FOUND", got.Code)
	}
}

func TestIsCode(t *testing.T) {
	err := ErrConfigVersionMismatch(4, 3)
	wrapped := fmt.Errorf("update config: %w", err)

	if !IsCode(wrapped, CodeConfigVersionMismatch) {
		t.Error("IsCode should match through wrapping")
	}
	if IsCode(wrapped, CodeApprovalRequired) {
		t.Error("IsCode should not match a different code")
	}
	if IsCode(nil, CodeApprovalRequired) {
		t.Error("IsCode(nil) should be false")
	}
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantStatus int
	}{
		{"NotFound", NotFound("NF", "not found"), http.StatusNotFound},
		{"BadRequest", BadRequest("BR", "bad request"), http.StatusBadRequest},
		{"Unauthorized", Unauthorized("UA", "unauthorized"), http.StatusUnauthorized},
		{"Forbidden", Forbidden("FB", "forbidden"), http.StatusForbidden},
		{"Conflict", Conflict("CF", "conflict"), http.StatusConflict},
		{"TooManyRequests", TooManyRequests("TM", "slow down"), http.StatusTooManyRequests},
		{"Internal", Internal("IE", "internal"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.HTTPStatus != tt.wantStatus {
				t.Errorf("HTTPStatus = %d, want %d", tt.err.HTTPStatus, tt.wantStatus)
			}
		})
	}
}

func TestErrForbidden(t *testing.T) {
	err := ErrForbidden("workspace admin role required")

	if err.Code != CodeForbidden {
		t.Fatalf("Code = %q, want %q", err.Code, CodeForbidden)
	}
	if err.HTTPStatus != http.StatusForbidden {
		t.Errorf("HTTPStatus = %d, want %d", err.HTTPStatus, http.StatusForbidden)
	}
	if !IsCode(err, CodeForbidden) {
		t.Error("IsCode should match FORBIDDEN")
	}
}

func TestErrConfigVersionMismatch_Params(t *testing.T) {
	err := ErrConfigVersionMismatch(7, 5)

	if err.Code != CodeConfigVersionMismatch {
		t.Fatalf("Code = %q, want %q", err.Code, CodeConfigVersionMismatch)
	}
	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("HTTPStatus = %d, want %d", err.HTTPStatus, http.StatusBadRequest)
	}
	if got := err.Params["currentVersion"]; got != 7 {
		t.Errorf("Params[currentVersion] = %v, want 7", got)
	}
	if got := err.Params["submittedVersion"]; got != 5 {
		t.Errorf("Params[submittedVersion] = %v, want 5", got)
	}
}
