package tracing

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestInitTracer_ExportsSpans(t *testing.T) {
	var buf bytes.Buffer
	tp, err := InitTracer("hotetec-gateway-test", Options{Enabled: true, Writer: &buf})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	_, span := tp.Tracer("test").Start(context.Background(), "booking.Availability")
	span.End()

	if err := tp.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if !strings.Contains(buf.String(), "booking.Availability") {
		t.Fatalf("expected exported span, got %q", buf.String())
	}
}

func TestInitTracer_Disabled(t *testing.T) {
	tp, err := InitTracer("hotetec-gateway-test", Options{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := tp.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
