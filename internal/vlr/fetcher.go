// Package vlr talks to the source site: one paced HTTP fetcher, URL helpers,
// and the paginated match-list resolver. Parsing of fetched pages lives in
// the extract subpackage.
package vlr

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/eprasetya/vlrscout/internal/platform/logging"
	"github.com/eprasetya/vlrscout/internal/platform/ratelimit"
)

const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

type FetcherConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	UserAgent  string
	MinGap     time.Duration
	Logger     *logging.Logger
}

// Fetcher retrieves pages as parsed documents. All fetches share one pacer,
// so no two requests start within MinGap of the previous one finishing,
// and a failed fetch is never retried.
type Fetcher struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *ratelimit.Interval
	logger     *logging.Logger
}

func NewFetcher(cfg FetcherConfig) *Fetcher {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	gap := cfg.MinGap
	if gap <= 0 {
		gap = time.Second
	}

	return &Fetcher{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		limiter:    ratelimit.NewInterval(gap),
		logger:     logger,
	}
}

// FetchDocument fetches one page, blocking on the shared pacer first. Any
// failure comes back as a *FetchError; the pacer is marked whether the
// fetch succeeded or not, so failures still consume budget.
func (f *Fetcher) FetchDocument(ctx context.Context, path string) (*goquery.Document, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	defer f.limiter.Mark()

	fullURL := f.baseURL + path
	started := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, &FetchError{Kind: FetchNetwork, URL: fullURL, cause: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		kind := FetchNetwork
		if isTimeout(ctx, err) {
			kind = FetchTimeout
		}
		f.logger.WarnContext(ctx, "page fetch failed", "url", fullURL, "kind", string(kind), "error", err)
		return nil, &FetchError{Kind: kind, URL: fullURL, cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		f.logger.WarnContext(ctx, "page fetch returned bad status", "url", fullURL, "status", resp.StatusCode)
		return nil, &FetchError{Kind: FetchStatus, URL: fullURL, StatusCode: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &FetchError{Kind: FetchNetwork, URL: fullURL, cause: err}
	}

	f.logger.DebugContext(ctx, "page fetched", "url", fullURL, "elapsed", time.Since(started))
	return doc, nil
}

func isTimeout(ctx context.Context, err error) bool {
	if ctx.Err() == context.DeadlineExceeded {
		return true
	}
	if os.IsTimeout(err) {
		return true
	}
	return strings.Contains(err.Error(), "Client.Timeout")
}
