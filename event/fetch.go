package event

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/tartampluch/go-jalalipick/internal/config"
)

// Fetcher retrieves a holiday feed over the network. The interface exists so
// tests and callers can swap the transport.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (io.ReadCloser, error)
}

// HTTPFetcher implements Fetcher using net/http.
type HTTPFetcher struct {
	Client *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher with the configured timeout.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		Client: &http.Client{
			Timeout: config.HTTPTimeout,
		},
	}
}

// Fetch downloads a holiday feed. It enforces http/https, identifies itself
// with the application User-Agent and caps the response size.
func (f *HTTPFetcher) Fetch(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	u, err := url.Parse(targetURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrInvalidURL, err)
	}

	if u.Scheme != config.SchemeHTTP && u.Scheme != config.SchemeHTTPS {
		return nil, fmt.Errorf("%s: %s", config.ErrProtocol, u.Scheme)
	}

	// Query strings may carry access tokens, keep them out of the logs.
	safeURL := u.Scheme + "://" + u.Host + u.Path
	log := slog.With(
		slog.String(config.LogKeyComponent, config.CompFetcher),
		slog.String(config.LogKeyURL, safeURL),
	)

	log.Debug(config.MsgFeedFetching)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(config.HeaderUserAgent, config.UserAgent)

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error during fetch: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		log.Warn("Server returned error status",
			slog.Int(config.LogKeyStatus, resp.StatusCode),
		)
		return nil, fmt.Errorf("server returned unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	log.Info("Holiday feed downloading",
		slog.Int64(config.LogKeySizeBytes, resp.ContentLength),
	)

	return &limitedReadCloser{
		Reader: io.LimitReader(resp.Body, config.MaxFeedSize),
		Closer: resp.Body,
	}, nil
}

// limitedReadCloser wraps a size-limited reader and the original closer so
// the connection still closes properly.
type limitedReadCloser struct {
	io.Reader
	io.Closer
}

func (l *limitedReadCloser) Read(p []byte) (n int, err error) {
	return l.Reader.Read(p)
}

func (l *limitedReadCloser) Close() error {
	return l.Closer.Close()
}

// Open resolves a holiday source string: http and https URLs go through the
// fetcher, anything else is treated as a local file path. A nil fetcher
// falls back to NewHTTPFetcher.
func Open(ctx context.Context, source string, f Fetcher) (io.ReadCloser, error) {
	if strings.HasPrefix(source, config.SchemeHTTP+"://") || strings.HasPrefix(source, config.SchemeHTTPS+"://") {
		if f == nil {
			f = NewHTTPFetcher()
		}
		return f.Fetch(ctx, source)
	}
	return os.Open(source)
}
