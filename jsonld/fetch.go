package jsonld

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/Eyas/schema-dts/errors"
	"github.com/Eyas/schema-dts/ontology"
	"github.com/Eyas/schema-dts/pkg/retry"
)

// Fetcher retrieves an ontology document over HTTP with exponential backoff
// on transient failures. The fetch is the only suspension point in the
// system; the core pipeline consumes the fully materialized result.
type Fetcher struct {
	client *http.Client
	logger *slog.Logger
	retry  retry.Config
}

// NewFetcher creates a fetcher with the default retry policy.
func NewFetcher(logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Fetcher{
		client: &http.Client{Timeout: 2 * time.Minute},
		logger: logger,
		retry:  retry.DefaultConfig(),
	}
}

// Fetch downloads and decodes the ontology at url. Server-side and network
// failures retry with backoff; client errors (4xx) fail immediately.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]ontology.GraphMember, error) {
	members, err := retry.DoWithResult(ctx, f.retry, func() ([]ontology.GraphMember, error) {
		return f.fetchOnce(ctx, url)
	})
	if err != nil {
		return nil, errors.WrapTransient(err, "jsonld", "Fetch", "fetch ontology")
	}
	return members, nil
}

func (f *Fetcher) fetchOnce(ctx context.Context, url string) ([]ontology.GraphMember, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, retry.NonRetryable(err)
	}
	req.Header.Set("Accept", "application/ld+json")

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Warn("Ontology fetch attempt failed", "url", url, "error", err)
		return nil, fmt.Errorf("%w: %v", errors.ErrFetchFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Decode below.
	case resp.StatusCode >= 500:
		f.logger.Warn("Ontology fetch attempt failed", "url", url, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", errors.ErrFetchFailed, resp.StatusCode)
	default:
		return nil, retry.NonRetryable(fmt.Errorf("%w: status %d", errors.ErrFetchRejected, resp.StatusCode))
	}

	members, err := Decode(resp.Body)
	if err != nil {
		// A malformed document will not improve on retry.
		return nil, retry.NonRetryable(err)
	}
	return members, nil
}

// Load reads and decodes an ontology document from a local file.
func Load(path string) ([]ontology.GraphMember, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapInvalid(err, "jsonld", "Load", "open ontology file")
	}
	defer func() { _ = f.Close() }()
	return Decode(f)
}
