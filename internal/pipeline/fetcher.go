package pipeline

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/creatorlens/creatorlens/internal/cache"
	"github.com/creatorlens/creatorlens/internal/model"
	"github.com/creatorlens/creatorlens/internal/util"
)

// Fetcher retrieves raw analytics payloads from URLs or local files.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	cache      cache.Cache          // nil when caching is disabled
	robots     *util.RobotsChecker  // nil when robots checks are disabled
	cacheTTL   time.Duration
}

// NewFetcher creates a fetcher from the HTTP and cache configuration.
func NewFetcher(cfg *model.Config) *Fetcher {
	transport := &http.Transport{
		Proxy: util.NewProxyFunc(cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy),
	}
	if cfg.HTTP.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	f := &Fetcher{
		httpClient: &http.Client{
			Timeout:   cfg.HTTP.Timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.HTTP.UserAgent,
		maxBytes:  cfg.HTTP.MaxBodyBytes,
	}

	if cfg.Cache.Enabled {
		dir := cfg.Cache.Dir
		if dir == "" {
			dir = defaultCacheDir()
		}
		f.cache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, dir, cfg.Cache.DiskTTL)
		f.cacheTTL = cfg.Cache.DiskTTL
	}

	if cfg.HTTP.RespectRobots {
		f.robots = util.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
	}

	return f
}

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".creatorlens-cache"
	}
	return home + "/.creatorlens/cache"
}

// FetchResult contains the raw payload body and its provenance.
type FetchResult struct {
	Body     []byte
	Meta     model.FetchMeta
	FinalURL string
}

// Fetch retrieves a payload from a URL or local file path. Remote bodies go
// through the cache when one is configured.
func (f *Fetcher) Fetch(ctx context.Context, source string) (*FetchResult, error) {
	if isLocalSource(source) {
		return f.fetchFile(source)
	}
	return f.fetchURL(ctx, source)
}

func isLocalSource(source string) bool {
	if strings.HasPrefix(source, "file://") {
		return true
	}
	parsed, err := url.Parse(source)
	if err != nil {
		return true
	}
	return parsed.Scheme != "http" && parsed.Scheme != "https"
}

func (f *Fetcher) fetchFile(source string) (*FetchResult, error) {
	path := strings.TrimPrefix(source, "file://")

	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read payload file: %w", err)
	}
	if f.maxBytes > 0 && int64(len(body)) > f.maxBytes {
		return nil, fmt.Errorf("payload file exceeds %d bytes", f.maxBytes)
	}

	return &FetchResult{
		Body:     body,
		Meta:     model.FetchMeta{ContentType: "application/json"},
		FinalURL: source,
	}, nil
}

func (f *Fetcher) fetchURL(ctx context.Context, rawURL string) (*FetchResult, error) {
	if f.cache != nil {
		if body, found := f.cache.Get(cache.Key(rawURL)); found {
			return &FetchResult{
				Body:     body,
				Meta:     model.FetchMeta{FromCache: true},
				FinalURL: rawURL,
			}, nil
		}
	}

	// Endpoints serving raw JSON are API calls, not crawled pages, and skip
	// the robots check.
	if f.robots != nil && !looksLikeAPIEndpoint(rawURL) {
		if !f.robots.IsAllowed(ctx, rawURL) {
			return nil, fmt.Errorf("robots.txt disallows fetching %s", rawURL)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/json,text/html;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	meta := model.FetchMeta{
		StatusCode:   resp.StatusCode,
		ContentType:  resp.Header.Get("Content-Type"),
		LastModified: resp.Header.Get("Last-Modified"),
		ETag:         resp.Header.Get("ETag"),
		Headers:      make(map[string]string),
	}
	for _, key := range []string{"Content-Length", "Server", "Cache-Control"} {
		if val := resp.Header.Get(key); val != "" {
			meta.Headers[key] = val
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	// Share pages embed the payload in a script tag; unwrap before caching
	// so cache hits skip the HTML pass too.
	if isHTMLContent(meta.ContentType, body) {
		extracted, ok := SniffJSON(body)
		if !ok {
			return nil, fmt.Errorf("no embedded JSON payload found in HTML page")
		}
		body = extracted
	}

	if f.cache != nil {
		_ = f.cache.Set(cache.Key(rawURL), body, f.cacheTTL)
	}

	return &FetchResult{
		Body:     body,
		Meta:     meta,
		FinalURL: resp.Request.URL.String(),
	}, nil
}

func looksLikeAPIEndpoint(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	path := strings.ToLower(parsed.Path)
	return strings.HasSuffix(path, ".json") ||
		strings.Contains(path, "/api/") ||
		strings.HasPrefix(parsed.Host, "api.")
}

func isHTMLContent(contentType string, body []byte) bool {
	if strings.Contains(contentType, "text/html") {
		return true
	}
	trimmed := strings.TrimSpace(string(body[:min(len(body), 64)]))
	return strings.HasPrefix(trimmed, "<!DOCTYPE") || strings.HasPrefix(trimmed, "<html")
}
