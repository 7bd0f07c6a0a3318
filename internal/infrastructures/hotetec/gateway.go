package hotetec

import (
	"context"
	"fmt"
	"strings"
	"sync"

	derr "github.com/ozzus/hotetec-gateway/internal/domain/errors"
	"github.com/ozzus/hotetec-gateway/internal/domain/models"
	"github.com/ozzus/hotetec-gateway/internal/infrastructures/hotetec/http/client"
	"github.com/ozzus/hotetec-gateway/internal/infrastructures/hotetec/mappers"
	"go.uber.org/zap"
)

// Gateway is one provider session. It owns its credentials and token, and is
// safe for concurrent use.
type Gateway struct {
	log      *zap.Logger
	client   *client.Client
	cfg      models.SessionConfig
	currency string

	mu    sync.RWMutex
	token string
}

type Option func(*Gateway)

// WithToken starts the gateway with a token obtained earlier.
func WithToken(token string) Option {
	return func(g *Gateway) {
		g.token = strings.TrimSpace(token)
	}
}

func NewGateway(log *zap.Logger, client *client.Client, cfg models.SessionConfig, opts ...Option) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}

	g := &Gateway{
		log:      log,
		client:   client,
		cfg:      cfg,
		currency: strings.ToUpper(strings.TrimSpace(cfg.Currency)),
	}
	if g.currency == "" {
		g.currency = mappers.DefaultCurrency
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

func (g *Gateway) Token() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.token
}

func (g *Gateway) Authenticated() bool {
	return g.Token() != ""
}

// Resume replaces the current token without contacting the provider.
func (g *Gateway) Resume(token string) {
	g.mu.Lock()
	g.token = strings.TrimSpace(token)
	g.mu.Unlock()
}

func (g *Gateway) Authenticate(ctx context.Context) (string, error) {
	const op = "hotetec.Authenticate"

	resp, err := g.client.OpenSession(ctx, mappers.ToSessionOpenRequest(g.cfg))
	if err != nil {
		return "", transportFailure(op, err)
	}

	token, err := mappers.ToSessionToken(resp)
	if err != nil {
		return "", decodeFailure(op, err)
	}
	if token == "" {
		g.log.Warn("session response without token",
			zap.String("agency", g.cfg.AgencyCode),
			zap.String("user", g.cfg.Username),
		)
		return "", nil
	}

	g.Resume(token)
	g.log.Debug("session opened", zap.String("agency", g.cfg.AgencyCode), zap.String("user", g.cfg.Username))

	return token, nil
}

func (g *Gateway) Availability(ctx context.Context, query models.AvailabilityQuery) (models.AvailabilityResult, error) {
	const op = "hotetec.Availability"

	token, err := g.session()
	if err != nil {
		return models.AvailabilityResult{}, err
	}

	req, err := mappers.ToAvailabilityRequest(token, query, g.currency)
	if err != nil {
		return models.AvailabilityResult{}, err
	}

	resp, err := g.client.Availability(ctx, req)
	if err != nil {
		return models.AvailabilityResult{}, transportFailure(op, err)
	}

	hotels, err := mappers.ToHotels(resp)
	if err != nil {
		return models.AvailabilityResult{}, decodeFailure(op, err)
	}

	return models.AvailabilityResult{SessionID: token, Hotels: hotels}, nil
}

func (g *Gateway) Block(ctx context.Context, req models.BlockRequest) (models.BlockResult, error) {
	const op = "hotetec.Block"

	token, err := g.session()
	if err != nil {
		return models.BlockResult{}, err
	}

	envelope, err := mappers.ToBlockRequest(token, req)
	if err != nil {
		return models.BlockResult{}, err
	}

	resp, err := g.client.Block(ctx, envelope)
	if err != nil {
		return models.BlockResult{}, transportFailure(op, err)
	}

	result, err := mappers.ToBlockResult(resp)
	if err != nil {
		return models.BlockResult{}, decodeFailure(op, err)
	}
	result.SessionID = token

	return result, nil
}

func (g *Gateway) Reserve(ctx context.Context, req models.ReserveRequest) (models.Reservation, error) {
	const op = "hotetec.Reserve"

	token, err := g.session()
	if err != nil {
		return models.Reservation{}, err
	}

	envelope, err := mappers.ToReserveRequest(token, req)
	if err != nil {
		return models.Reservation{}, err
	}

	resp, err := g.client.CloseReservation(ctx, envelope)
	if err != nil {
		return models.Reservation{}, transportFailure(op, err)
	}

	reservation, err := mappers.ToReservation(resp.ReservationPayload)
	if err != nil {
		return models.Reservation{}, decodeFailure(op, err)
	}

	return reservation, nil
}

func (g *Gateway) ListReservations(ctx context.Context, filter models.ReservationFilter) (models.ReservationList, error) {
	const op = "hotetec.ListReservations"

	token, err := g.session()
	if err != nil {
		return models.ReservationList{}, err
	}

	resp, err := g.client.ListReservations(ctx, mappers.ToReservationListRequest(token, filter))
	if err != nil {
		return models.ReservationList{}, transportFailure(op, err)
	}

	list, err := mappers.ToReservationList(resp)
	if err != nil {
		return models.ReservationList{}, decodeFailure(op, err)
	}

	return list, nil
}

func (g *Gateway) GetReservation(ctx context.Context, locator string) (models.Reservation, error) {
	const op = "hotetec.GetReservation"

	token, err := g.session()
	if err != nil {
		return models.Reservation{}, err
	}

	envelope, err := mappers.ToReservationOpenRequest(token, locator)
	if err != nil {
		return models.Reservation{}, err
	}

	resp, err := g.client.OpenReservation(ctx, envelope)
	if err != nil {
		return models.Reservation{}, transportFailure(op, err)
	}

	reservation, err := mappers.ToReservation(resp.ReservationPayload)
	if err != nil {
		return models.Reservation{}, decodeFailure(op, err)
	}

	return reservation, nil
}

func (g *Gateway) CancelReservation(ctx context.Context, locator string) (models.Cancellation, error) {
	const op = "hotetec.CancelReservation"

	token, err := g.session()
	if err != nil {
		return models.Cancellation{}, err
	}

	envelope, err := mappers.ToReservationCancelRequest(token, locator)
	if err != nil {
		return models.Cancellation{}, err
	}

	resp, err := g.client.CancelReservation(ctx, envelope)
	if err != nil {
		return models.Cancellation{}, transportFailure(op, err)
	}

	cancellation, err := mappers.ToCancellation(resp)
	if err != nil {
		return models.Cancellation{}, decodeFailure(op, err)
	}
	if cancellation.Locator == "" {
		cancellation.Locator = envelope.Locator
	}

	return cancellation, nil
}

func (g *Gateway) HotelInfo(ctx context.Context, query models.HotelInfoQuery) ([]models.HotelInfo, error) {
	const op = "hotetec.HotelInfo"

	token, err := g.session()
	if err != nil {
		return nil, err
	}

	envelope, err := mappers.ToHotelInfoRequest(token, query)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.ServiceInfo(ctx, envelope)
	if err != nil {
		return nil, transportFailure(op, err)
	}

	hotels, err := mappers.ToHotelInfo(resp)
	if err != nil {
		return nil, decodeFailure(op, err)
	}

	return hotels, nil
}

func (g *Gateway) session() (string, error) {
	token := g.Token()
	if token == "" {
		return "", derr.NotAuthenticated()
	}
	return token, nil
}

func transportFailure(op string, err error) error {
	if _, ok := derr.AsProvider(err); ok {
		return err
	}
	return derr.Unknown(fmt.Errorf("%s: %w", op, err))
}

// decodeFailure passes provider-reported errors through and turns anything
// else coming out of the mappers into a decode error.
func decodeFailure(op string, err error) error {
	if _, ok := derr.AsProvider(err); ok {
		return err
	}
	return derr.Unknown(fmt.Errorf("%s: %w: %v", op, derr.ErrDecode, err))
}
