package safe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/charmingruby/optres/result"
	"github.com/charmingruby/optres/task"
)

// Fetcher performs GET requests and resolves them into Results. A request is
// attempted once.
type Fetcher struct {
	settings
}

// NewFetcher builds a Fetcher. Without WithHTTPClient it uses a client with a
// 30 second timeout.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{settings: newSettings(opts)}
	f.logger = f.logger.Named("safe.fetch")
	return f
}

// Text retrieves target and resolves to the response body. Transport errors,
// non-2xx statuses, bodies over the size limit and an invalid target all
// resolve to Err. A target that is
// empty or not an absolute http(s) URL resolves immediately.
func (f *Fetcher) Text(ctx context.Context, target string) *task.Future[result.Result[string, error]] {
	if err := validateTarget(target); err != nil {
		f.metrics.observe("fetch_text", outcomeErr, time.Now())
		return task.Ready(result.Err[string](err))
	}
	return task.WrapAsync(ctx, func(ctx context.Context) (string, error) {
		body, err := f.get(ctx, "fetch_text", target)
		return string(body), err
	})
}

// FetchJSON retrieves target and decodes the body as JSON into a T.
func FetchJSON[T any](ctx context.Context, f *Fetcher, target string) *task.Future[result.Result[T, error]] {
	if err := validateTarget(target); err != nil {
		f.metrics.observe("fetch_json", outcomeErr, time.Now())
		return task.Ready(result.Err[T](err))
	}
	return task.WrapAsync(ctx, func(ctx context.Context) (T, error) {
		body, err := f.get(ctx, "fetch_json", target)
		if err != nil {
			var zero T
			return zero, err
		}
		return result.Tuple(decodeJSON[T](body))
	})
}

func (f *Fetcher) get(ctx context.Context, adapter, target string) (body []byte, err error) {
	started := time.Now()
	defer func() {
		f.metrics.observe(adapter, outcomeOf(err), started)
		if err != nil {
			f.logger.Warn("fetch failed", zap.String("url", target), zap.Error(err))
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("safe: building request: %w", err)
	}
	for key, values := range f.header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	f.logger.Debug("fetching", zap.String("url", target))
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("safe: GET %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, f.maxBodyBytes))
		return nil, &StatusError{URL: target, Code: resp.StatusCode, Status: resp.Status}
	}

	body, err = io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("safe: reading body of %s: %w", target, err)
	}
	if int64(len(body)) > f.maxBodyBytes {
		return nil, fmt.Errorf("%w: %s is larger than %d bytes", ErrBodyTooLarge, target, f.maxBodyBytes)
	}
	return body, nil
}

func validateTarget(target string) error {
	if target == "" {
		return ErrEmptyURL
	}
	u, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidURL, target)
	}
	return nil
}
