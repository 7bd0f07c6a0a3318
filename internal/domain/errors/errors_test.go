package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestUnknown_WrapsCause(t *testing.T) {
	cause := fmt.Errorf("%w: unexpected status: 503", ErrSourceUnavailable)
	err := Unknown(cause)

	if err.Code != "500" || err.Text != "Unknown error" {
		t.Fatalf("unexpected code/text: %s/%s", err.Code, err.Text)
	}
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable in chain, got %v", err)
	}
	if err.Reported() {
		t.Fatal("locally produced error must not be reported by provider")
	}
}

func TestAsProvider_ThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("service.Availability: %w", Provider("99", "Invalid"))

	perr, ok := AsProvider(wrapped)
	if !ok {
		t.Fatal("expected provider error")
	}
	if perr.Code != "99" || perr.Text != "Invalid" {
		t.Fatalf("unexpected provider error: %+v", perr)
	}
	if !perr.Reported() {
		t.Fatal("expected provider reported error")
	}
}

func TestInvalidRequest_IsSentinel(t *testing.T) {
	err := InvalidRequest("unknown customer type %q", "pets")
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
	if err.Code != CodeInvalidRequest {
		t.Fatalf("unexpected code: %s", err.Code)
	}
}

func TestNotAuthenticated(t *testing.T) {
	err := NotAuthenticated()
	if !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}
