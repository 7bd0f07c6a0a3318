package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotAuthenticated    = errors.New("session not authenticated")
	ErrSourceUnavailable   = errors.New("source unavailable")
	ErrDecode              = errors.New("decode provider response")
	ErrInvalidRequest      = errors.New("invalid request")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrHotelInfoNotFound   = errors.New("hotel info not found")
	ErrSessionNotFound     = errors.New("session not found")
)

const (
	CodeUnknown          = "500"
	TextUnknown          = "Unknown error"
	CodeNotAuthenticated = "401"
	CodeInvalidRequest   = "400"
)

// ProviderError is the single failure shape returned by the gateway. Code and
// Text come from the provider envelope (coderr/txterr) or from the generic
// 500 / "Unknown error" pair; Err carries the local cause when there is one.
type ProviderError struct {
	Code string `json:"code"`
	Text string `json:"text"`
	Err  error  `json:"-"`
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider error %s: %s: %v", e.Code, e.Text, e.Err)
	}
	return fmt.Sprintf("provider error %s: %s", e.Code, e.Text)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Reported reports whether the error was sent by the provider itself rather
// than produced locally.
func (e *ProviderError) Reported() bool {
	return e.Err == nil
}

func Provider(code, text string) *ProviderError {
	return &ProviderError{Code: code, Text: text}
}

func Unknown(err error) *ProviderError {
	return &ProviderError{Code: CodeUnknown, Text: TextUnknown, Err: err}
}

func NotAuthenticated() *ProviderError {
	return &ProviderError{Code: CodeNotAuthenticated, Text: "Session not authenticated", Err: ErrNotAuthenticated}
}

func InvalidRequest(format string, args ...any) *ProviderError {
	return &ProviderError{
		Code: CodeInvalidRequest,
		Text: "Invalid request",
		Err:  fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...)),
	}
}

// AsProvider extracts the ProviderError from err, if any.
func AsProvider(err error) (*ProviderError, bool) {
	var perr *ProviderError
	if errors.As(err, &perr) {
		return perr, true
	}
	return nil, false
}
