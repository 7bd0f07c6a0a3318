package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	derr "github.com/ozzus/hotetec-gateway/internal/domain/errors"
	"github.com/ozzus/hotetec-gateway/internal/domain/models"
	"github.com/ozzus/hotetec-gateway/internal/domain/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "hotetec-gateway/service"

type Options struct {
	// SessionKey identifies the stored token, usually SessionConfig.SessionKey().
	SessionKey        string
	SessionTTL        time.Duration
	HotelInfoCacheTTL time.Duration
	// SessionErrorCodes are provider coderr values meaning the session expired.
	SessionErrorCodes []string
}

type BookingService struct {
	log       *zap.Logger
	gateway   ports.ProviderGateway
	sessions  ports.SessionStore
	hotelInfo ports.HotelInfoCache
	ledger    ports.ReservationRepository

	sessionKey        string
	sessionTTL        time.Duration
	hotelInfoTTL      time.Duration
	sessionErrorCodes map[string]struct{}

	authMu sync.Mutex
}

// NewBookingService wires the gateway with its optional collaborators; any of
// sessions, hotelInfo and ledger may be nil.
func NewBookingService(
	log *zap.Logger,
	gateway ports.ProviderGateway,
	sessions ports.SessionStore,
	hotelInfo ports.HotelInfoCache,
	ledger ports.ReservationRepository,
	opts Options,
) *BookingService {
	if log == nil {
		log = zap.NewNop()
	}

	codes := make(map[string]struct{}, len(opts.SessionErrorCodes))
	for _, code := range opts.SessionErrorCodes {
		if code = strings.TrimSpace(code); code != "" {
			codes[code] = struct{}{}
		}
	}

	return &BookingService{
		log:               log,
		gateway:           gateway,
		sessions:          sessions,
		hotelInfo:         hotelInfo,
		ledger:            ledger,
		sessionKey:        opts.SessionKey,
		sessionTTL:        opts.SessionTTL,
		hotelInfoTTL:      opts.HotelInfoCacheTTL,
		sessionErrorCodes: codes,
	}
}

// Authenticate always opens a new provider session and persists its token.
func (s *BookingService) Authenticate(ctx context.Context) (string, error) {
	const op = "service.Authenticate"
	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()

	s.authMu.Lock()
	defer s.authMu.Unlock()

	token, err := s.authenticate(ctx)
	if err != nil {
		fail(span, err)
		return "", err
	}
	return token, nil
}

func (s *BookingService) Availability(ctx context.Context, query models.AvailabilityQuery) (models.AvailabilityResult, error) {
	const op = "service.Availability"
	ctx, span := otel.Tracer(tracerName).Start(ctx, op, trace.WithAttributes(
		attribute.String("hotetec.zone", query.ZoneCode),
		attribute.Int("hotetec.distributions", len(query.Distributions)),
	))
	defer span.End()

	logger := s.log.With(zap.String("op", op), zap.String("zone", query.ZoneCode))

	result, err := withSession(ctx, s, logger, func(ctx context.Context) (models.AvailabilityResult, error) {
		return s.gateway.Availability(ctx, query)
	})
	if err != nil {
		logger.Warn("availability failed", zap.Error(err))
		fail(span, err)
		return models.AvailabilityResult{}, err
	}

	span.SetAttributes(attribute.Int("hotetec.hotels", len(result.Hotels)))
	logger.Info("availability loaded", zap.Int("hotels", len(result.Hotels)))
	return result, nil
}

func (s *BookingService) Block(ctx context.Context, req models.BlockRequest) (models.BlockResult, error) {
	const op = "service.Block"
	ctx, span := otel.Tracer(tracerName).Start(ctx, op, trace.WithAttributes(
		attribute.String("hotetec.hotel_id", req.HotelID),
		attribute.Int("hotetec.rooms", len(req.Rooms)),
	))
	defer span.End()

	logger := s.log.With(zap.String("op", op), zap.String("hotel_id", req.HotelID))

	result, err := withSession(ctx, s, logger, func(ctx context.Context) (models.BlockResult, error) {
		return s.gateway.Block(ctx, req)
	})
	if err != nil {
		logger.Warn("block failed", zap.Error(err))
		fail(span, err)
		return models.BlockResult{}, err
	}

	logger.Info("rooms blocked", zap.Int("rooms", len(result.Rooms)))
	return result, nil
}

func (s *BookingService) Reserve(ctx context.Context, req models.ReserveRequest) (models.Reservation, error) {
	const op = "service.Reserve"
	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()

	logger := s.log.With(zap.String("op", op), zap.Int("passengers", len(req.Passengers)))

	reservation, err := withSession(ctx, s, logger, func(ctx context.Context) (models.Reservation, error) {
		return s.gateway.Reserve(ctx, req)
	})
	if err != nil {
		logger.Warn("reserve failed", zap.Error(err))
		fail(span, err)
		return models.Reservation{}, err
	}

	span.SetAttributes(attribute.String("hotetec.locator", reservation.Locator))
	logger.Info("reservation closed", zap.String("locator", reservation.Locator), zap.String("status", reservation.Status))
	s.record(ctx, logger, reservation)
	return reservation, nil
}

func (s *BookingService) ListReservations(ctx context.Context, filter models.ReservationFilter) (models.ReservationList, error) {
	const op = "service.ListReservations"
	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()

	logger := s.log.With(zap.String("op", op))

	list, err := withSession(ctx, s, logger, func(ctx context.Context) (models.ReservationList, error) {
		return s.gateway.ListReservations(ctx, filter)
	})
	if err != nil {
		logger.Warn("list reservations failed", zap.Error(err))
		fail(span, err)
		return models.ReservationList{}, err
	}

	return list, nil
}

func (s *BookingService) GetReservation(ctx context.Context, locator string) (models.Reservation, error) {
	const op = "service.GetReservation"
	ctx, span := otel.Tracer(tracerName).Start(ctx, op, trace.WithAttributes(attribute.String("hotetec.locator", locator)))
	defer span.End()

	logger := s.log.With(zap.String("op", op), zap.String("locator", locator))

	reservation, err := withSession(ctx, s, logger, func(ctx context.Context) (models.Reservation, error) {
		return s.gateway.GetReservation(ctx, locator)
	})
	if err != nil {
		logger.Warn("get reservation failed", zap.Error(err))
		fail(span, err)
		return models.Reservation{}, err
	}

	s.record(ctx, logger, reservation)
	return reservation, nil
}

func (s *BookingService) CancelReservation(ctx context.Context, locator string) (models.Cancellation, error) {
	const op = "service.CancelReservation"
	ctx, span := otel.Tracer(tracerName).Start(ctx, op, trace.WithAttributes(attribute.String("hotetec.locator", locator)))
	defer span.End()

	logger := s.log.With(zap.String("op", op), zap.String("locator", locator))

	cancellation, err := withSession(ctx, s, logger, func(ctx context.Context) (models.Cancellation, error) {
		return s.gateway.CancelReservation(ctx, locator)
	})
	if err != nil {
		logger.Warn("cancel reservation failed", zap.Error(err))
		fail(span, err)
		return models.Cancellation{}, err
	}

	logger.Info("reservation cancelled", zap.Float64("amount", cancellation.Amount))
	if s.ledger != nil {
		if err := s.ledger.MarkCancelled(ctx, cancellation); err != nil {
			logger.Warn("ledger cancel write failed", zap.Error(err))
			span.RecordError(err)
		}
	}
	return cancellation, nil
}

func (s *BookingService) HotelInfo(ctx context.Context, query models.HotelInfoQuery) ([]models.HotelInfo, error) {
	const op = "service.HotelInfo"
	ctx, span := otel.Tracer(tracerName).Start(ctx, op, trace.WithAttributes(
		attribute.String("hotetec.zone", query.ZoneCode),
		attribute.String("hotetec.hotel_code", query.HotelCode),
	))
	defer span.End()

	logger := s.log.With(zap.String("op", op), zap.String("key", query.CacheKey()))

	if s.hotelInfo != nil {
		cached, err := s.hotelInfo.Get(ctx, query)
		if err == nil {
			logger.Debug("hotel info cache hit")
			span.AddEvent("hotel_info.cache.hit")
			return cached, nil
		}
		if errors.Is(err, derr.ErrHotelInfoNotFound) {
			span.AddEvent("hotel_info.cache.miss")
		} else {
			logger.Warn("hotel info cache read failed", zap.Error(err))
			span.RecordError(err)
		}
	}

	hotels, err := withSession(ctx, s, logger, func(ctx context.Context) ([]models.HotelInfo, error) {
		return s.gateway.HotelInfo(ctx, query)
	})
	if err != nil {
		logger.Warn("hotel info failed", zap.Error(err))
		fail(span, err)
		return nil, err
	}

	if s.hotelInfo != nil {
		if err := s.hotelInfo.Set(ctx, query, hotels, s.hotelInfoTTL); err != nil {
			logger.Warn("hotel info cache write failed", zap.Error(err))
		}
	}
	return hotels, nil
}

// StoredReservation returns the ledger copy of a reservation without calling
// the provider.
func (s *BookingService) StoredReservation(ctx context.Context, locator string) (models.Reservation, error) {
	const op = "service.StoredReservation"

	if s.ledger == nil {
		return models.Reservation{}, derr.ErrReservationNotFound
	}

	reservation, err := s.ledger.GetByLocator(ctx, strings.TrimSpace(locator))
	if err != nil {
		if errors.Is(err, derr.ErrReservationNotFound) {
			return models.Reservation{}, err
		}
		return models.Reservation{}, fmt.Errorf("%s: %w", op, err)
	}
	return reservation, nil
}

func (s *BookingService) record(ctx context.Context, logger *zap.Logger, reservation models.Reservation) {
	if s.ledger == nil || reservation.Locator == "" {
		return
	}
	if err := s.ledger.Upsert(ctx, reservation); err != nil {
		logger.Warn("ledger write failed", zap.Error(err))
	}
}

// withSession runs call with a live session and retries it once after
// re-authenticating when the provider reports an expired session.
func withSession[T any](ctx context.Context, s *BookingService, logger *zap.Logger, call func(context.Context) (T, error)) (T, error) {
	var zero T

	if err := s.ensureSession(ctx, logger); err != nil {
		return zero, err
	}

	result, err := call(ctx)
	if err == nil || !s.isSessionError(err) {
		return result, err
	}

	logger.Info("provider session expired, re-authenticating", zap.Error(err))
	stale := s.gateway.Token()

	s.authMu.Lock()
	if s.gateway.Token() == stale {
		if _, authErr := s.authenticate(ctx); authErr != nil {
			s.authMu.Unlock()
			return zero, authErr
		}
	}
	s.authMu.Unlock()

	return call(ctx)
}

func (s *BookingService) ensureSession(ctx context.Context, logger *zap.Logger) error {
	if s.gateway.Token() != "" {
		return nil
	}

	s.authMu.Lock()
	defer s.authMu.Unlock()

	if s.gateway.Token() != "" {
		return nil
	}

	if resumer, ok := s.gateway.(ports.SessionResumer); ok && s.sessions != nil {
		token, err := s.sessions.GetToken(ctx, s.sessionKey)
		switch {
		case err == nil:
			resumer.Resume(token)
			logger.Debug("session resumed from store")
			return nil
		case !errors.Is(err, derr.ErrSessionNotFound):
			logger.Warn("session store read failed", zap.Error(err))
		}
	}

	_, err := s.authenticate(ctx)
	return err
}

// authenticate must be called with authMu held.
func (s *BookingService) authenticate(ctx context.Context) (string, error) {
	logger := s.log.With(zap.String("op", "service.authenticate"))

	if s.sessions != nil {
		if err := s.sessions.DeleteToken(ctx, s.sessionKey); err != nil {
			logger.Warn("session store delete failed", zap.Error(err))
		}
	}

	token, err := s.gateway.Authenticate(ctx)
	if err != nil {
		logger.Warn("authenticate failed", zap.Error(err))
		return "", err
	}
	if token == "" {
		logger.Warn("provider returned no session token")
		return "", nil
	}

	if s.sessions != nil {
		if err := s.sessions.SaveToken(ctx, s.sessionKey, token, s.sessionTTL); err != nil {
			logger.Warn("session store write failed", zap.Error(err))
		}
	}

	logger.Info("provider session opened")
	return token, nil
}

func (s *BookingService) isSessionError(err error) bool {
	if len(s.sessionErrorCodes) == 0 {
		return false
	}
	perr, ok := derr.AsProvider(err)
	if !ok || !perr.Reported() {
		return false
	}
	_, match := s.sessionErrorCodes[perr.Code]
	return match
}

func fail(span trace.Span, err error) {
	span.RecordError(err)
	if perr, ok := derr.AsProvider(err); ok {
		span.SetAttributes(attribute.String("hotetec.error_code", perr.Code))
	}
	span.SetStatus(otelcodes.Error, err.Error())
}
