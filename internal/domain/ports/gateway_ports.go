package ports

import (
	"context"

	"github.com/ozzus/hotetec-gateway/internal/domain/models"
)

type ProviderGateway interface {
	Authenticate(ctx context.Context) (string, error)
	Token() string
	Availability(ctx context.Context, query models.AvailabilityQuery) (models.AvailabilityResult, error)
	Block(ctx context.Context, req models.BlockRequest) (models.BlockResult, error)
	Reserve(ctx context.Context, req models.ReserveRequest) (models.Reservation, error)
	ListReservations(ctx context.Context, filter models.ReservationFilter) (models.ReservationList, error)
	GetReservation(ctx context.Context, locator string) (models.Reservation, error)
	CancelReservation(ctx context.Context, locator string) (models.Cancellation, error)
	HotelInfo(ctx context.Context, query models.HotelInfoQuery) ([]models.HotelInfo, error)
}

// SessionResumer is implemented by gateways that accept a token obtained
// outside of Authenticate.
type SessionResumer interface {
	Resume(token string)
}
