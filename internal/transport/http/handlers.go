package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	derr "github.com/ozzus/hotetec-gateway/internal/domain/errors"
	"github.com/ozzus/hotetec-gateway/internal/domain/models"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// BookingService is the application surface the HTTP API exposes.
type BookingService interface {
	Authenticate(ctx context.Context) (string, error)
	Availability(ctx context.Context, query models.AvailabilityQuery) (models.AvailabilityResult, error)
	Block(ctx context.Context, req models.BlockRequest) (models.BlockResult, error)
	Reserve(ctx context.Context, req models.ReserveRequest) (models.Reservation, error)
	ListReservations(ctx context.Context, filter models.ReservationFilter) (models.ReservationList, error)
	GetReservation(ctx context.Context, locator string) (models.Reservation, error)
	CancelReservation(ctx context.Context, locator string) (models.Cancellation, error)
	HotelInfo(ctx context.Context, query models.HotelInfoQuery) ([]models.HotelInfo, error)
	StoredReservation(ctx context.Context, locator string) (models.Reservation, error)
}

type handler struct {
	log     *zap.Logger
	service BookingService
}

func (h *handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) openSession(w http.ResponseWriter, r *http.Request) {
	token, err := h.service.Authenticate(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if token == "" {
		writeError(w, derr.NotAuthenticated())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"session_id": token})
}

func (h *handler) availability(w http.ResponseWriter, r *http.Request) {
	var body availabilityRequest
	if !decodeBody(w, r, &body) {
		return
	}

	query, err := body.toQuery()
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.service.Availability(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *handler) block(w http.ResponseWriter, r *http.Request) {
	var body blockRequest
	if !decodeBody(w, r, &body) {
		return
	}

	req, err := body.toModel()
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.service.Block(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *handler) reserve(w http.ResponseWriter, r *http.Request) {
	var body reserveRequest
	if !decodeBody(w, r, &body) {
		return
	}

	req, err := body.toModel()
	if err != nil {
		writeError(w, err)
		return
	}

	reservation, err := h.service.Reserve(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, reservation)
}

func (h *handler) listReservations(w http.ResponseWriter, r *http.Request) {
	filter, err := reservationFilterFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	list, err := h.service.ListReservations(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *handler) getReservation(w http.ResponseWriter, r *http.Request) {
	reservation, err := h.service.GetReservation(r.Context(), strings.TrimSpace(chi.URLParam(r, "locator")))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}

func (h *handler) cancelReservation(w http.ResponseWriter, r *http.Request) {
	cancellation, err := h.service.CancelReservation(r.Context(), strings.TrimSpace(chi.URLParam(r, "locator")))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cancellation)
}

func (h *handler) storedReservation(w http.ResponseWriter, r *http.Request) {
	reservation, err := h.service.StoredReservation(r.Context(), strings.TrimSpace(chi.URLParam(r, "locator")))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}

func (h *handler) hotels(w http.ResponseWriter, r *http.Request) {
	query := models.HotelInfoQuery{
		ZoneCode:  strings.TrimSpace(r.URL.Query().Get("zone")),
		HotelCode: strings.TrimSpace(r.URL.Query().Get("code")),
	}

	hotels, err := h.service.HotelInfo(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"hotels": hotels})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, derr.InvalidRequest("malformed json body: %v", err))
		return false
	}
	return true
}
