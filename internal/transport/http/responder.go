package http

import (
	"encoding/json"
	"errors"
	"net/http"

	derr "github.com/ozzus/hotetec-gateway/internal/domain/errors"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeErrorBody(w http.ResponseWriter, status int, code, text string) {
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Text: text}})
}

// writeError maps service errors onto HTTP statuses. Provider-side failures
// are reported as 502 with the provider's code and text.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, derr.ErrInvalidRequest):
		writeErrorBody(w, http.StatusBadRequest, derr.CodeInvalidRequest, invalidText(err))
		return
	case errors.Is(err, derr.ErrNotAuthenticated):
		writeErrorBody(w, http.StatusUnauthorized, derr.CodeNotAuthenticated, "Session not authenticated")
		return
	case errors.Is(err, derr.ErrReservationNotFound):
		writeErrorBody(w, http.StatusNotFound, "404", "Reservation not found")
		return
	}

	if perr, ok := derr.AsProvider(err); ok {
		writeErrorBody(w, http.StatusBadGateway, perr.Code, perr.Text)
		return
	}

	writeErrorBody(w, http.StatusInternalServerError, derr.CodeUnknown, derr.TextUnknown)
}

func invalidText(err error) string {
	if perr, ok := derr.AsProvider(err); ok && perr.Err != nil {
		return perr.Err.Error()
	}
	return err.Error()
}
