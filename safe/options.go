package safe

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	defaultTimeout      = 30 * time.Second
	defaultMaxBodyBytes = 10 << 20
)

type settings struct {
	logger       *zap.Logger
	metrics      *Metrics
	client       *http.Client
	header       http.Header
	maxBodyBytes int64
}

func newSettings(opts []Option) settings {
	s := settings{
		logger:       zap.L(),
		header:       http.Header{},
		maxBodyBytes: defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.client == nil {
		s.client = &http.Client{Timeout: defaultTimeout}
	}
	return s
}

// Option configures a Fetcher or a Store. Settings that do not apply to the
// adapter being built are ignored.
type Option func(*settings)

// WithLogger replaces the global zap logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics records call outcomes in m.
func WithMetrics(m *Metrics) Option {
	return func(s *settings) {
		s.metrics = m
	}
}

// WithHTTPClient sets the client used by a Fetcher.
func WithHTTPClient(c *http.Client) Option {
	return func(s *settings) {
		s.client = c
	}
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) Option {
	return func(s *settings) {
		s.header.Add(key, value)
	}
}

// WithMaxBodyBytes bounds the size of a response body. A larger body fails
// with ErrBodyTooLarge.
func WithMaxBodyBytes(n int64) Option {
	return func(s *settings) {
		if n > 0 {
			s.maxBodyBytes = n
		}
	}
}
