package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	derr "github.com/ozzus/hotetec-gateway/internal/domain/errors"
	"github.com/ozzus/hotetec-gateway/internal/infrastructures/hotetec/dto"
)

type recorderMock struct {
	outcomes       []string
	providerErrors []string
}

func (m *recorderMock) ObserveRequest(_ string, outcome string, _ time.Duration) {
	m.outcomes = append(m.outcomes, outcome)
}

func (m *recorderMock) ObserveProviderError(_ string, code string) {
	m.providerErrors = append(m.providerErrors, code)
}

func newTestClient(url string, retries int, opts ...Option) *Client {
	return NewClient(Config{
		Endpoint:     url,
		Timeout:      time.Second,
		Retries:      retries,
		RetryBackoff: time.Millisecond,
	}, opts...)
}

func TestOpenSession_PostsXMLEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/xml" {
			t.Fatalf("unexpected content type: %s", ct)
		}
		body, _ := io.ReadAll(r.Body)
		if strings.HasPrefix(string(body), "<?xml") {
			t.Fatalf("expected no xml declaration, got %s", body)
		}
		if !strings.Contains(string(body), "<idtusu>user</idtusu>") {
			t.Fatalf("unexpected body: %s", body)
		}
		_, _ = w.Write([]byte(`<SesionAbrirRespuesta><ideses>TOKEN</ideses></SesionAbrirRespuesta>`))
	}))
	defer srv.Close()

	rec := &recorderMock{}
	c := newTestClient(srv.URL, 0, WithRecorder(rec))
	resp, err := c.OpenSession(context.Background(), dto.SessionOpenRequest{Username: "user"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.SessionID != "TOKEN" {
		t.Fatalf("unexpected session id %q", resp.SessionID)
	}
	if len(rec.outcomes) != 1 || rec.outcomes[0] != OutcomeOK {
		t.Fatalf("unexpected outcomes: %v", rec.outcomes)
	}
}

func TestCall_RetriesIdempotentOperationOn5xx(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`<DisponibilidadHotelRespuesta></DisponibilidadHotelRespuesta>`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 2)
	if _, err := c.Availability(context.Background(), dto.AvailabilityRequest{}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
}

func TestCall_DoesNotRetryReserve(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	rec := &recorderMock{}
	c := newTestClient(srv.URL, 3, WithRecorder(rec))
	_, err := c.CloseReservation(context.Background(), dto.ReserveRequest{})
	if !errors.Is(err, derr.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected 1 call, got %d", got)
	}
	if len(rec.outcomes) != 1 || rec.outcomes[0] != OutcomeHTTPError {
		t.Fatalf("unexpected outcomes: %v", rec.outcomes)
	}
}

func TestCall_DoesNotRetryClientError(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 3)
	_, err := c.Availability(context.Background(), dto.AvailabilityRequest{})
	if !errors.Is(err, derr.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected 1 call, got %d", got)
	}
}

func TestCall_MalformedBodyIsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<DisponibilidadHotelRespuesta><infhot>`))
	}))
	defer srv.Close()

	rec := &recorderMock{}
	c := newTestClient(srv.URL, 0, WithRecorder(rec))
	_, err := c.Availability(context.Background(), dto.AvailabilityRequest{})
	if !errors.Is(err, derr.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
	if len(rec.outcomes) != 1 || rec.outcomes[0] != OutcomeDecodeError {
		t.Fatalf("unexpected outcomes: %v", rec.outcomes)
	}
}

func TestCall_EmptyBodyIsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	defer srv.Close()

	c := newTestClient(srv.URL, 0)
	_, err := c.OpenSession(context.Background(), dto.SessionOpenRequest{})
	if !errors.Is(err, derr.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestCall_RecordsProviderErrorCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<ReservaAbrirRespuesta><coderr>41</coderr><txterr>Not found</txterr></ReservaAbrirRespuesta>`))
	}))
	defer srv.Close()

	rec := &recorderMock{}
	c := newTestClient(srv.URL, 0, WithRecorder(rec))
	resp, err := c.OpenReservation(context.Background(), dto.ReservationOpenRequest{Locator: "X"})
	if err != nil {
		t.Fatalf("expected no transport error, got %v", err)
	}
	if resp.Code != "41" {
		t.Fatalf("unexpected error code %q", resp.Code)
	}
	if len(rec.providerErrors) != 1 || rec.providerErrors[0] != "41" {
		t.Fatalf("unexpected provider errors: %v", rec.providerErrors)
	}
	if rec.outcomes[0] != OutcomeProviderError {
		t.Fatalf("unexpected outcome: %v", rec.outcomes)
	}
}

func TestDecodeEnvelope_Latin1(t *testing.T) {
	body := []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><InformacionServicioRespuesta><servic><nomser>Hotel Espa\xf1a</nomser></servic></InformacionServicioRespuesta>")

	var resp dto.HotelInfoResponse
	if err := DecodeEnvelope(body, &resp); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(resp.Hotels) != 1 || resp.Hotels[0].Name != "Hotel España" {
		t.Fatalf("unexpected hotels: %+v", resp.Hotels)
	}
}

func TestCall_UnreachableEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := newTestClient(url, 1)
	_, err := c.ServiceInfo(context.Background(), dto.HotelInfoRequest{})
	if !errors.Is(err, derr.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}
