package hotetec

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
	"github.com/ozzus/hotetec-gateway/internal/domain/models"
	"github.com/ozzus/hotetec-gateway/internal/infrastructures/hotetec/http/client"
)

var testSession = models.SessionConfig{
	AgencyCode: "AG1",
	Username:   "user",
	Password:   "secret",
	SystemCode: "XML",
	Language:   "es",
}

func newTestGateway(t *testing.T, handler http.HandlerFunc, opts ...Option) (*Gateway, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	c := client.NewClient(client.Config{Endpoint: srv.URL, Timeout: time.Second, RetryBackoff: time.Millisecond})
	return NewGateway(nil, c, testSession, opts...), &calls
}

func availabilityQuery() models.AvailabilityQuery {
	return models.AvailabilityQuery{
		StartDate:     time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC),
		ZoneCode:      "ABC",
		Distributions: []models.Distribution{{Adults: 1}},
	}
}

func TestAuthenticate_StoresToken(t *testing.T) {
	g, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		for _, want := range []string{"<codsys>XML</codsys>", "<codage>AG1</codage>", "<pasusu>secret</pasusu>", "<codidi>ES</codidi>"} {
			if !strings.Contains(string(body), want) {
				t.Fatalf("expected %s in request, got %s", want, body)
			}
		}
		_, _ = w.Write([]byte(`<SesionAbrirRespuesta><ideses>ABC123</ideses></SesionAbrirRespuesta>`))
	})

	token, err := g.Authenticate(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if token != "ABC123" || g.Token() != "ABC123" || !g.Authenticated() {
		t.Fatalf("unexpected token state: %q / %q", token, g.Token())
	}
}

func TestAuthenticate_MissingTokenLeavesSessionUnset(t *testing.T) {
	g, _ := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<SesionAbrirRespuesta></SesionAbrirRespuesta>`))
	})

	token, err := g.Authenticate(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if token != "" || g.Authenticated() {
		t.Fatalf("expected no token, got %q", token)
	}
}

func TestAuthenticate_ProviderError(t *testing.T) {
	g, _ := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<SesionAbrirRespuesta><coderr>10</coderr><txterr>Bad credentials</txterr></SesionAbrirRespuesta>`))
	})

	_, err := g.Authenticate(context.Background())
	perr, ok := derr.AsProvider(err)
	if !ok || perr.Code != "10" || perr.Text != "Bad credentials" {
		t.Fatalf("expected provider error 10, got %v", err)
	}
	if g.Authenticated() {
		t.Fatal("expected gateway to stay unauthenticated")
	}
}

func TestOperations_RequireSession(t *testing.T) {
	g, calls := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	ctx := context.Background()

	checks := map[string]func() error{
		"availability": func() error { _, err := g.Availability(ctx, availabilityQuery()); return err },
		"block":        func() error { _, err := g.Block(ctx, models.BlockRequest{}); return err },
		"reserve":      func() error { _, err := g.Reserve(ctx, models.ReserveRequest{}); return err },
		"list":         func() error { _, err := g.ListReservations(ctx, models.ReservationFilter{}); return err },
		"get":          func() error { _, err := g.GetReservation(ctx, "LOC"); return err },
		"cancel":       func() error { _, err := g.CancelReservation(ctx, "LOC"); return err },
		"hotel info":   func() error { _, err := g.HotelInfo(ctx, models.HotelInfoQuery{ZoneCode: "ABC"}); return err },
	}

	for name, call := range checks {
		err := call()
		if !errors.Is(err, derr.ErrNotAuthenticated) {
			t.Fatalf("%s: expected ErrNotAuthenticated, got %v", name, err)
		}
		perr, ok := derr.AsProvider(err)
		if !ok || perr.Code != derr.CodeNotAuthenticated {
			t.Fatalf("%s: expected code 401, got %v", name, err)
		}
	}
	if got := atomic.LoadInt32(calls); got != 0 {
		t.Fatalf("expected no provider calls, got %d", got)
	}
}

func TestAvailability_EmbedsTokenAndMapsRooms(t *testing.T) {
	g, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		for _, want := range []string{"<ideses>ABC123</ideses>", "<fecini>01/06/2024</fecini>", "<fecfin>05/06/2024</fecfin>", "<codzge>ABC</codzge>"} {
			if !strings.Contains(string(body), want) {
				t.Fatalf("expected %s in request, got %s", want, body)
			}
		}
		_, _ = w.Write([]byte(`<DisponibilidadHotelRespuesta>
  <infhot id="REF"><codser>H1</codser><nomser>Hotel Uno</nomser>
    <infhab id="R1" refdis="1"><cupest>DS</cupest><capmax>2</capmax><impbas>100.50</impbas></infhab>
  </infhot>
</DisponibilidadHotelRespuesta>`))
	}, WithToken("ABC123"))

	result, err := g.Availability(context.Background(), availabilityQuery())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.SessionID != "ABC123" || len(result.Hotels) != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
	room := result.Hotels[0].Availability["1"][0]
	if room.MaxPeople != 2 || room.BaseAmount != 100.5 {
		t.Fatalf("unexpected room: %+v", room)
	}
}

func TestAvailability_PrettyPrintedResponse(t *testing.T) {
	g, _ := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<DisponibilidadHotelRespuesta>
  <infhot id="REF">
    <codser>
      H1
    </codser>
    <infhab id="R1" refdis="1">
      <cupest>
        DS
      </cupest>
      <capmax>2</capmax>
    </infhab>
  </infhot>
</DisponibilidadHotelRespuesta>`))
	}, WithToken("ABC123"))

	result, err := g.Availability(context.Background(), availabilityQuery())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result.Hotels) != 1 || result.Hotels[0].Code != "H1" {
		t.Fatalf("unexpected hotels: %+v", result.Hotels)
	}
	if rooms := result.Hotels[0].Availability["1"]; len(rooms) != 1 || rooms[0].ID != "R1" {
		t.Fatalf("expected the available room to be kept, got %+v", rooms)
	}
}

func TestAvailability_MalformedResponseIsUnknownError(t *testing.T) {
	g, _ := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not xml at all`))
	}, WithToken("T"))

	_, err := g.Availability(context.Background(), availabilityQuery())
	perr, ok := derr.AsProvider(err)
	if !ok || perr.Code != derr.CodeUnknown || perr.Text != derr.TextUnknown {
		t.Fatalf("expected 500 Unknown error, got %v", err)
	}
	if !errors.Is(err, derr.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestAvailability_BadNumberIsUnknownError(t *testing.T) {
	g, _ := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<DisponibilidadHotelRespuesta><infhot id="A"><infhab id="R" refdis="1"><cupest>DS</cupest><capmax>two</capmax></infhab></infhot></DisponibilidadHotelRespuesta>`))
	}, WithToken("T"))

	_, err := g.Availability(context.Background(), availabilityQuery())
	if !errors.Is(err, derr.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestAvailability_InvalidQueryNeverReachesProvider(t *testing.T) {
	g, calls := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {}, WithToken("T"))

	query := availabilityQuery()
	query.Distributions = nil
	_, err := g.Availability(context.Background(), query)
	if !errors.Is(err, derr.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
	if atomic.LoadInt32(calls) != 0 {
		t.Fatal("expected no provider call")
	}
}

func TestGetReservation_TransportFailure(t *testing.T) {
	g, _ := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}, WithToken("T"))

	_, err := g.GetReservation(context.Background(), "LOC")
	perr, ok := derr.AsProvider(err)
	if !ok || perr.Code != derr.CodeUnknown {
		t.Fatalf("expected 500 provider error, got %v", err)
	}
	if !errors.Is(err, derr.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestCancelReservation(t *testing.T) {
	g, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), "<locata>LOC9</locata>") {
			t.Fatalf("unexpected request: %s", body)
		}
		_, _ = w.Write([]byte(`<ReservaCancelarRespuesta><coddiv>EUR</coddiv><impcan>12.5</impcan></ReservaCancelarRespuesta>`))
	}, WithToken("T"))

	cancellation, err := g.CancelReservation(context.Background(), "LOC9")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cancellation.Locator != "LOC9" || cancellation.Amount != 12.5 {
		t.Fatalf("unexpected cancellation: %+v", cancellation)
	}
}

func TestResume(t *testing.T) {
	g := NewGateway(nil, client.NewClient(client.Config{}), testSession)
	if g.Authenticated() {
		t.Fatal("expected new gateway to be unauthenticated")
	}
	g.Resume(" TOKEN ")
	if g.Token() != "TOKEN" {
		t.Fatalf("unexpected token %q", g.Token())
	}
}
