// internal/api/response/response_test.go
package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dwhitmore/finlens/internal/core"
)

func TestJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"hello": "world"}

	JSON(w, http.StatusOK, data)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("Content-Type") != "application/json" {
		t.Errorf("expected application/json content type")
	}

	var resp SuccessResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Data == nil {
		t.Error("expected data in response")
	}
	if resp.Meta.Timestamp.IsZero() {
		t.Error("expected timestamp in meta")
	}
}

func TestError_WithCoreError(t *testing.T) {
	w := httptest.NewRecorder()
	err := core.ErrEmptyTicker

	Error(w, http.StatusBadRequest, err)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}

	var resp ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Error.Code != "EMPTY_TICKER" {
		t.Errorf("expected EMPTY_TICKER, got %s", resp.Error.Code)
	}
}

func TestError_WithCause(t *testing.T) {
	w := httptest.NewRecorder()
	err := core.WrapError(core.ErrGatewayFailed, errors.New("upstream timeout"))

	Error(w, http.StatusBadGateway, err)

	var resp ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Error.Code != "GATEWAY_FAILED" {
		t.Errorf("expected GATEWAY_FAILED, got %s", resp.Error.Code)
	}
	if resp.Error.Cause != "upstream timeout" {
		t.Errorf("expected cause to carry through, got %q", resp.Error.Cause)
	}
}

func TestError_Unclassified(t *testing.T) {
	w := httptest.NewRecorder()

	Error(w, http.StatusInternalServerError, errors.New("boom"))

	var resp ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Error.Code != "INTERNAL_ERROR" {
		t.Errorf("expected INTERNAL_ERROR, got %s", resp.Error.Code)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"empty ticker", core.ErrEmptyTicker, http.StatusBadRequest},
		{"unauthorized", core.ErrUnauthorized, http.StatusUnauthorized},
		{"llm timeout", core.ErrLLMTimeout, http.StatusGatewayTimeout},
		{"gateway failed", core.WrapError(core.ErrGatewayFailed, errors.New("x")), http.StatusBadGateway},
		{"llm failed", core.ErrLLMFailed, http.StatusBadGateway},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusFor(tt.err); got != tt.expected {
				t.Errorf("StatusFor(%v) = %d, want %d", tt.err, got, tt.expected)
			}
		})
	}
}
