package receipt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// ErrScannerUnavailable is returned when the scanning service cannot be reached,
// answers with an error, or is short-circuited by the breaker.
var ErrScannerUnavailable = errors.New("receipt scanner unavailable")

// Scanner extracts a fee breakdown and item list from a receipt image.
//
//go:generate mockgen -destination=mocks/mock_scanner.go -source=scanner.go Scanner
type Scanner interface {
	Scan(ctx context.Context, image []byte, mimeType string) (*ScanResult, error)
}

const (
	defaultMaxFailures = 5
	defaultOpenTimeout = 30 * time.Second
	maxErrorBody       = 512
)

// HTTPScanner posts receipt images to an external scanning endpoint and decodes the
// JSON it answers with. Calls go through a circuit breaker so a failing scanner is
// not hammered while it recovers.
type HTTPScanner struct {
	endpoint string
	client   *http.Client
	breaker  *gobreaker.CircuitBreaker
}

// HTTPScannerOption tweaks an HTTPScanner.
type HTTPScannerOption func(*gobreaker.Settings)

// WithBreaker overrides how many consecutive failures open the breaker and how long
// it stays open.
func WithBreaker(maxFailures uint32, openTimeout time.Duration) HTTPScannerOption {
	return func(st *gobreaker.Settings) {
		st.ReadyToTrip = func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		}
		st.Timeout = openTimeout
	}
}

// NewHTTPScanner creates a scanner that calls endpoint with the given request timeout.
func NewHTTPScanner(endpoint string, timeout time.Duration, opts ...HTTPScannerOption) *HTTPScanner {
	settings := gobreaker.Settings{
		Name:    "receipt-scanner",
		Timeout: defaultOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= defaultMaxFailures
		},
		// A malformed scan is the scanner's answer, not an outage
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrInvalidScan)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("Circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	}
	for _, opt := range opts {
		opt(&settings)
	}

	return &HTTPScanner{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		breaker:  gobreaker.NewCircuitBreaker(settings),
	}
}

// Scan sends the image to the scanning endpoint.
func (s *HTTPScanner) Scan(ctx context.Context, image []byte, mimeType string) (*ScanResult, error) {
	result, err := s.breaker.Execute(func() (interface{}, error) {
		return s.post(ctx, image, mimeType)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %w", ErrScannerUnavailable, err)
		}
		return nil, err
	}
	return result.(*ScanResult), nil
}

func (s *HTTPScanner) post(ctx context.Context, image []byte, mimeType string) (*ScanResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(image))
	if err != nil {
		return nil, fmt.Errorf("failed to build scan request: %w", err)
	}
	req.Header.Set("Content-Type", mimeType)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScannerUnavailable, err)
	}
	defer resp.Body.Close()

	slog.Debug("Receipt scanner responded",
		"status", resp.StatusCode,
		"image_bytes", len(image),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: status %d: %s", ErrScannerUnavailable, resp.StatusCode, bytes.TrimSpace(body))
	}

	return Decode(resp.Body)
}
