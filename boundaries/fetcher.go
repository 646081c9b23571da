package boundaries

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"
)

// mirrorFetcher downloads the boundary dataset from an ordered list of
// mirrors. A mirror counts as failed on network error, non-2xx status, or a
// body that does not parse as a feature collection; the next mirror is then
// tried. No retry or backoff beyond moving down the list.
type mirrorFetcher struct {
	logger     *logrus.Logger
	urls       []string
	httpClient *http.Client
}

func newMirrorFetcher(logger *logrus.Logger, urls []string, timeout time.Duration) *mirrorFetcher {
	return &mirrorFetcher{
		logger: logger,
		urls:   urls,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (f *mirrorFetcher) fetchOne(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error forming http request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error doing http request: %w", err)
	}

	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("received status code %d %s", resp.StatusCode, resp.Status)
	}

	return body, nil
}

// Fetch returns the first mirror body that both downloads and parses, along
// with the parsed collection. The raw bytes are what gets persisted; parsing
// up front keeps a junk response from ever reaching the cache file.
func (f *mirrorFetcher) Fetch(ctx context.Context) ([]byte, *geojson.FeatureCollection, error) {
	var lastErr error

	for _, url := range f.urls {
		raw, err := f.fetchOne(ctx, url)
		if err != nil {
			lastErr = err
			f.logger.Warnf("BOUNDARIES: mirror '%s' failed: %v", url, err)
			continue
		}

		fc, err := geojson.UnmarshalFeatureCollection(raw)
		if err != nil {
			lastErr = fmt.Errorf("mirror body is not a feature collection: %w", err)
			f.logger.Warnf("BOUNDARIES: mirror '%s' returned unusable geojson: %v", url, err)
			continue
		}

		f.logger.Infof("BOUNDARIES: downloaded %d feature(s) (%d bytes) from '%s'", len(fc.Features), len(raw), url)
		return raw, fc, nil
	}

	return nil, nil, &FetchError{Attempts: len(f.urls), Err: lastErr}
}
