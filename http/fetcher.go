// Package http provides a Figma REST API implementation of nftmeta.Fetcher.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dexter-zone/nftmeta"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the Figma REST API root.
const DefaultBaseURL = "https://api.figma.com"

// DefaultFetchTimeout is the default timeout for a single request.
// Large design files take a while to serialize on Figma's side.
const DefaultFetchTimeout = 60 * time.Second

// DefaultRateLimit is the default number of requests per second.
const DefaultRateLimit = 1.0

// TokenHeader is the header carrying the personal access token.
const TokenHeader = "X-Figma-Token"

// maxErrorBody caps how much of an error response is kept in FetchError.
const maxErrorBody = 64 << 10

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Ensure Fetcher implements nftmeta.Fetcher at compile time.
var _ nftmeta.Fetcher = (*Fetcher)(nil)

// Fetcher downloads Figma files using a personal access token.
type Fetcher struct {
	client      *http.Client
	token       string
	baseURL     string
	timeout     time.Duration
	limiter     *rate.Limiter
	retryDelays []time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithBaseURL points the fetcher at a different API root.
func WithBaseURL(baseURL string) Option {
	return func(f *Fetcher) {
		f.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithRateLimit sets the maximum number of requests per second.
// A non-positive value disables rate limiting.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps <= 0 {
			f.limiter = nil
			return
		}
		f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithRetryDelays sets the delays between retry attempts.
// An empty slice disables retries.
func WithRetryDelays(delays []time.Duration) Option {
	return func(f *Fetcher) {
		f.retryDelays = delays
	}
}

// NewFetcher creates a new Fetcher authenticating with token.
func NewFetcher(token string, opts ...Option) *Fetcher {
	f := &Fetcher{
		token:       token,
		baseURL:     DefaultBaseURL,
		timeout:     DefaultFetchTimeout,
		limiter:     rate.NewLimiter(rate.Limit(DefaultRateLimit), 1),
		retryDelays: DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// FetchFile retrieves the document tree of a Figma file.
// Rate-limited (429) and server-side (5xx) failures are retried with
// backoff; other non-200 responses fail immediately with *nftmeta.FetchError.
func (f *Fetcher) FetchFile(ctx context.Context, fileKey string) (*nftmeta.File, error) {
	if fileKey == "" {
		return nil, nftmeta.Errorf(nftmeta.EINVALID, "figma file key required")
	}
	if f.token == "" {
		return nil, nftmeta.Errorf(nftmeta.EUNAUTHORIZED, "figma access token required")
	}

	endpoint := f.baseURL + "/v1/files/" + url.PathEscape(fileKey)

	maxAttempts := len(f.retryDelays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		file, err := f.fetch(ctx, endpoint)
		if err == nil {
			return file, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 || !retryable(err) {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.retryDelays[attempt]):
		}
	}

	return nil, lastErr
}

func (f *Fetcher) fetch(ctx context.Context, endpoint string) (*nftmeta.File, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(TokenHeader, f.token)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &nftmeta.FetchError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var file nftmeta.File
	if err := json.NewDecoder(resp.Body).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode figma file: %w", err)
	}

	return &file, nil
}

// retryable reports whether a failed attempt is worth repeating.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var fe *nftmeta.FetchError
	if errors.As(err, &fe) {
		return fe.StatusCode == http.StatusTooManyRequests || fe.StatusCode >= http.StatusInternalServerError
	}

	// Decoding failures mean Figma answered; asking again will not help.
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return false
	}

	return true
}
