// internal/core/errors.go
package core

import "fmt"

// Error represents a structured error with code and optional cause.
type Error struct {
	Code    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is matching by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// WrapError creates a new error with the same code but with a cause.
func WrapError(base *Error, cause error) *Error {
	return &Error{
		Code:    base.Code,
		Message: base.Message,
		Cause:   cause,
	}
}

// Predefined errors. Fetch failures are classified per stage so the pipeline
// can surface distinct degraded states instead of a single catch-all.
var (
	// Input errors
	ErrEmptyTicker = &Error{Code: "EMPTY_TICKER", Message: "ticker symbol is empty"}

	// Gateway errors
	ErrGatewayFailed           = &Error{Code: "GATEWAY_FAILED", Message: "market data request failed"}
	ErrFundamentalsUnavailable = &Error{Code: "FUNDAMENTALS_UNAVAILABLE", Message: "fundamentals not available"}
	ErrNewsUnavailable         = &Error{Code: "NEWS_UNAVAILABLE", Message: "news not available"}
	ErrNoPriceData             = &Error{Code: "NO_PRICE_DATA", Message: "no price history available"}
	ErrMalformedData           = &Error{Code: "MALFORMED_DATA", Message: "provider returned malformed data"}

	// Indicator errors
	ErrInsufficientHistory = &Error{Code: "INSUFFICIENT_HISTORY", Message: "insufficient history for long-window indicators"}

	// LLM errors
	ErrLLMFailed  = &Error{Code: "LLM_FAILED", Message: "narrative generation failed"}
	ErrLLMTimeout = &Error{Code: "LLM_TIMEOUT", Message: "narrative generation timeout"}

	// API errors
	ErrUnauthorized = &Error{Code: "UNAUTHORIZED", Message: "missing or invalid API key"}

	// Config errors
	ErrConfigInvalid = &Error{Code: "CONFIG_INVALID", Message: "configuration invalid"}
	ErrConfigMissing = &Error{Code: "CONFIG_MISSING", Message: "required configuration missing"}
)
