package client

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	derr "github.com/ozzus/hotetec-gateway/internal/domain/errors"
	"github.com/ozzus/hotetec-gateway/internal/infrastructures/hotetec/dto"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
	"golang.org/x/time/rate"
)

const (
	DefaultEndpoint = "https://hotel.hotetec.com/publisher/xmlservice.srv"

	maxResponseBytes = 32 << 20
)

// Operation names a provider call. Only idempotent operations are retried.
type Operation struct {
	Name       string
	Idempotent bool
}

var (
	OpAuthenticate      = Operation{Name: "authenticate", Idempotent: true}
	OpAvailability      = Operation{Name: "availability", Idempotent: true}
	OpBlock             = Operation{Name: "block"}
	OpReserve           = Operation{Name: "reserve"}
	OpListReservations  = Operation{Name: "list_reservations", Idempotent: true}
	OpGetReservation    = Operation{Name: "get_reservation", Idempotent: true}
	OpCancelReservation = Operation{Name: "cancel_reservation"}
	OpHotelInfo         = Operation{Name: "hotel_info", Idempotent: true}
)

const (
	OutcomeOK             = "ok"
	OutcomeTransportError = "transport_error"
	OutcomeHTTPError      = "http_error"
	OutcomeDecodeError    = "decode_error"
	OutcomeProviderError  = "provider_error"
)

type Recorder interface {
	ObserveRequest(operation, outcome string, duration time.Duration)
	ObserveProviderError(operation, code string)
}

type Config struct {
	Endpoint     string
	Timeout      time.Duration
	Retries      int
	RetryBackoff time.Duration
	RateLimit    float64
	Burst        int
}

type Client struct {
	endpoint   string
	httpClient *http.Client
	retries    int
	backoff    time.Duration
	limiter    *rate.Limiter
	log        *zap.Logger
	recorder   Recorder
}

type Option func(*Client)

func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

func WithRecorder(recorder Recorder) Option {
	return func(c *Client) {
		c.recorder = recorder
	}
}

// WithHTTPClient replaces the default client. The configured timeout is not
// applied to a client supplied this way.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

func NewClient(cfg Config, opts ...Option) *Client {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = 500 * time.Millisecond
	}

	c := &Client{
		endpoint:   strings.TrimSpace(cfg.Endpoint),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		retries:    cfg.Retries,
		backoff:    cfg.RetryBackoff,
		log:        zap.NewNop(),
	}
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) OpenSession(ctx context.Context, req dto.SessionOpenRequest) (dto.SessionOpenResponse, error) {
	var resp dto.SessionOpenResponse
	err := c.Call(ctx, OpAuthenticate, req, &resp)
	return resp, err
}

func (c *Client) Availability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error) {
	var resp dto.AvailabilityResponse
	err := c.Call(ctx, OpAvailability, req, &resp)
	return resp, err
}

func (c *Client) Block(ctx context.Context, req dto.BlockRequest) (dto.BlockResponse, error) {
	var resp dto.BlockResponse
	err := c.Call(ctx, OpBlock, req, &resp)
	return resp, err
}

func (c *Client) CloseReservation(ctx context.Context, req dto.ReserveRequest) (dto.ReserveResponse, error) {
	var resp dto.ReserveResponse
	err := c.Call(ctx, OpReserve, req, &resp)
	return resp, err
}

func (c *Client) ListReservations(ctx context.Context, req dto.ReservationListRequest) (dto.ReservationListResponse, error) {
	var resp dto.ReservationListResponse
	err := c.Call(ctx, OpListReservations, req, &resp)
	return resp, err
}

func (c *Client) OpenReservation(ctx context.Context, req dto.ReservationOpenRequest) (dto.ReservationOpenResponse, error) {
	var resp dto.ReservationOpenResponse
	err := c.Call(ctx, OpGetReservation, req, &resp)
	return resp, err
}

func (c *Client) CancelReservation(ctx context.Context, req dto.ReservationCancelRequest) (dto.ReservationCancelResponse, error) {
	var resp dto.ReservationCancelResponse
	err := c.Call(ctx, OpCancelReservation, req, &resp)
	return resp, err
}

func (c *Client) ServiceInfo(ctx context.Context, req dto.HotelInfoRequest) (dto.HotelInfoResponse, error) {
	var resp dto.HotelInfoResponse
	err := c.Call(ctx, OpHotelInfo, req, &resp)
	return resp, err
}

// Call posts one request envelope and decodes the response envelope into out.
// Transport failures wrap derr.ErrSourceUnavailable, decode failures wrap
// derr.ErrDecode.
func (c *Client) Call(ctx context.Context, op Operation, request, out any) error {
	payload, err := EncodeEnvelope(request)
	if err != nil {
		return fmt.Errorf("%s: %w", op.Name, err)
	}

	start := time.Now()
	body, err := c.post(ctx, op, payload)
	if err != nil {
		outcome := OutcomeTransportError
		if errors.Is(err, errUnexpectedStatus) {
			outcome = OutcomeHTTPError
		}
		c.observe(op, outcome, time.Since(start))
		return err
	}

	if err := DecodeEnvelope(body, out); err != nil {
		c.observe(op, OutcomeDecodeError, time.Since(start))
		c.log.Warn("hotetec response decode failed",
			zap.String("operation", op.Name),
			zap.Int("body_bytes", len(body)),
			zap.Error(err),
		)
		return fmt.Errorf("%s: %w", op.Name, err)
	}

	if failure, ok := out.(interface{ ErrorCode() string }); ok && failure.ErrorCode() != "" {
		c.observe(op, OutcomeProviderError, time.Since(start))
		if c.recorder != nil {
			c.recorder.ObserveProviderError(op.Name, failure.ErrorCode())
		}
		return nil
	}

	c.observe(op, OutcomeOK, time.Since(start))
	return nil
}

var errUnexpectedStatus = errors.New("unexpected status")

func (c *Client) post(ctx context.Context, op Operation, payload []byte) ([]byte, error) {
	attempts := 1
	if op.Idempotent {
		attempts += c.retries
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			wait := time.Duration(attempt-1) * c.backoff
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}

		body, retryable, err := c.do(ctx, op, payload)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable {
			break
		}
		c.log.Warn("hotetec request failed, retrying",
			zap.String("operation", op.Name),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", attempts),
			zap.Error(err),
		)
	}

	return nil, lastErr
}

func (c *Client) do(ctx context.Context, op Operation, payload []byte) ([]byte, bool, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, false, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/xml")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, false, err
		}
		return nil, true, fmt.Errorf("%w: do request: %v", derr.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	c.log.Debug("hotetec response",
		zap.String("operation", op.Name),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		retryable := resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests
		return nil, retryable, fmt.Errorf("%w: %w: %s", derr.ErrSourceUnavailable, errUnexpectedStatus, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, true, fmt.Errorf("%w: read body: %v", derr.ErrSourceUnavailable, err)
	}

	return body, false, nil
}

func (c *Client) observe(op Operation, outcome string, duration time.Duration) {
	if c.recorder != nil {
		c.recorder.ObserveRequest(op.Name, outcome, duration)
	}
}

// EncodeEnvelope renders one request root element, indented and without an
// XML declaration.
func EncodeEnvelope(request any) ([]byte, error) {
	payload, err := xml.MarshalIndent(request, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	return payload, nil
}

// DecodeEnvelope parses a response document into out. The provider declares
// ISO-8859-1 on some deployments, hence the charset reader.
func DecodeEnvelope(body []byte, out any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return fmt.Errorf("%w: empty body", derr.ErrDecode)
	}

	decoder := xml.NewDecoder(bytes.NewReader(body))
	decoder.CharsetReader = charset.NewReaderLabel
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("%w: %v", derr.ErrDecode, err)
	}
	dto.TrimText(out)
	return nil
}
