package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NewRouter builds the public API. metrics may be nil.
func NewRouter(log *zap.Logger, service BookingService, metrics http.Handler) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	h := &handler{log: log, service: service}

	router := chi.NewRouter()
	router.Use(requestID)
	router.Use(recoverer(log))
	router.Use(accessLog(log))

	router.Get("/healthz", h.healthz)
	if metrics != nil {
		router.Method(http.MethodGet, "/metrics", metrics)
	}

	router.Route("/v1", func(r chi.Router) {
		r.Post("/session", h.openSession)
		r.Post("/availability", h.availability)
		r.Post("/blocks", h.block)
		r.Route("/reservations", func(r chi.Router) {
			r.Post("/", h.reserve)
			r.Get("/", h.listReservations)
			r.Get("/{locator}", h.getReservation)
			r.Delete("/{locator}", h.cancelReservation)
		})
		r.Get("/ledger/reservations/{locator}", h.storedReservation)
		r.Get("/hotels", h.hotels)
	})

	return router
}
