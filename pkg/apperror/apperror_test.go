package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestGetAppError(t *testing.T) {
	upstream := errors.New("connection refused")

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{"bad request", NewBadRequestError("bad"), http.StatusBadRequest},
		{"not found", NewNotFoundError("Invoice"), http.StatusNotFound},
		{"wrapped", fmt.Errorf("submit: %w", NewBadGatewayError("FIRA failed", nil, upstream)), http.StatusBadGateway},
		{"plain error", upstream, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetAppError(tt.err).Code; got != tt.expectedCode {
				t.Errorf("Expected code %d, got %d", tt.expectedCode, got)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	upstream := errors.New("connection refused")
	err := NewBadGatewayError("FIRA failed", nil, upstream)

	if !errors.Is(err, upstream) {
		t.Error("Expected AppError to wrap the upstream error")
	}
	if !IsAppError(err) {
		t.Error("Expected IsAppError to be true")
	}
	if err.Error() != "FIRA failed: connection refused" {
		t.Errorf("Unexpected message %q", err.Error())
	}
}
