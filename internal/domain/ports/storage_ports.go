package ports

import (
	"context"
	"time"

	"github.com/ozzus/hotetec-gateway/internal/domain/models"
)

type SessionStore interface {
	GetToken(ctx context.Context, key string) (string, error)
	SaveToken(ctx context.Context, key, token string, ttl time.Duration) error
	DeleteToken(ctx context.Context, key string) error
}

type HotelInfoCache interface {
	Get(ctx context.Context, query models.HotelInfoQuery) ([]models.HotelInfo, error)
	Set(ctx context.Context, query models.HotelInfoQuery, hotels []models.HotelInfo, ttl time.Duration) error
}

type ReservationRepository interface {
	Upsert(ctx context.Context, reservation models.Reservation) error
	MarkCancelled(ctx context.Context, cancellation models.Cancellation) error
	GetByLocator(ctx context.Context, locator string) (models.Reservation, error)
}
