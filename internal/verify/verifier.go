// Package verify checks discovered contact links for accessibility. Results
// attach to the report only; the canonical profile is never modified based on
// whether a link resolves.
package verify

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/creatorlens/creatorlens/internal/model"
	"github.com/creatorlens/creatorlens/internal/util"
)

const maxRetries = 3

// sleepFunc is the sleep between retries, injectable for tests.
var sleepFunc = time.Sleep

// Verifier checks links concurrently with HEAD requests.
type Verifier struct {
	httpClient *http.Client
	maxWorkers int
	userAgent  string
}

// NewVerifier creates a link verifier.
func NewVerifier(timeout time.Duration, maxWorkers int, userAgent, httpProxy, httpsProxy, noProxy string) *Verifier {
	if maxWorkers <= 0 {
		maxWorkers = 10
	}

	return &Verifier{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(httpProxy, httpsProxy, noProxy),
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		maxWorkers: maxWorkers,
		userAgent:  userAgent,
	}
}

// Links collects the checkable links from a profile: discovered websites and
// social profile URLs.
func Links(p *model.ExtractedProfile) []model.LinkCheck {
	if p == nil {
		return []model.LinkCheck{}
	}

	var links []model.LinkCheck
	seen := make(map[string]bool)

	add := func(url, kind string) {
		if url == "" || !strings.HasPrefix(url, "http") || seen[url] {
			return
		}
		seen[url] = true
		links = append(links, model.LinkCheck{URL: url, Kind: kind})
	}

	for _, w := range p.Professional.Websites {
		add(w.Value, "website")
	}
	for _, s := range p.Professional.SocialProfiles {
		add(s.URL, "social")
	}

	if links == nil {
		return []model.LinkCheck{}
	}
	return links
}

// Verify checks all links concurrently and returns one result per link, in
// input order.
func (v *Verifier) Verify(ctx context.Context, links []model.LinkCheck) []model.LinkCheck {
	if len(links) == 0 {
		return []model.LinkCheck{}
	}

	results := make([]model.LinkCheck, len(links))
	var wg sync.WaitGroup

	semaphore := make(chan struct{}, v.maxWorkers)

	for i, link := range links {
		wg.Add(1)
		go func(idx int, l model.LinkCheck) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				l.Error = "context cancelled"
				results[idx] = l
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			results[idx] = v.checkWithRetry(ctx, l)
		}(i, link)
	}

	wg.Wait()
	return results
}

func (v *Verifier) check(ctx context.Context, link model.LinkCheck) model.LinkCheck {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, link.URL, nil)
	if err != nil {
		link.Error = fmt.Sprintf("create request: %v", err)
		link.IsDead = true
		return link
	}
	req.Header.Set("User-Agent", v.userAgent)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		link.Error = fmt.Sprintf("request failed: %v", err)
		link.IsDead = true
		return link
	}
	defer func() { _ = resp.Body.Close() }()

	link.StatusCode = resp.StatusCode

	if resp.StatusCode >= 200 && resp.StatusCode < 400 {
		link.IsAccessible = true
	} else if resp.StatusCode == 404 || resp.StatusCode == 410 {
		link.IsDead = true
	}

	if resp.Request.URL.String() != link.URL {
		link.RedirectURL = resp.Request.URL.String()
	}

	return link
}

// checkWithRetry retries transient failures with exponential backoff.
func (v *Verifier) checkWithRetry(ctx context.Context, link model.LinkCheck) model.LinkCheck {
	var result model.LinkCheck
	for attempt := 0; attempt < maxRetries; attempt++ {
		result = v.check(ctx, link)
		if !isRetryable(result) {
			return result
		}
		if attempt < maxRetries-1 {
			backoff := time.Duration(1<<uint(attempt)) * time.Second
			sleepFunc(backoff)
		}
	}
	return result
}

func isRetryable(result model.LinkCheck) bool {
	if result.StatusCode >= 500 && result.StatusCode < 600 {
		return true
	}
	if result.StatusCode == 429 {
		return true
	}
	if result.Error != "" {
		s := strings.ToLower(result.Error)
		return strings.Contains(s, "timeout") ||
			strings.Contains(s, "connection refused") ||
			strings.Contains(s, "connection reset")
	}
	return false
}
