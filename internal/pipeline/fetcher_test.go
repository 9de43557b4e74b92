package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/creatorlens/creatorlens/internal/model"
)

func testConfig(t *testing.T) *model.Config {
	t.Helper()
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	cfg.HTTP.RespectRobots = false
	return cfg
}

func TestFetcher_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	if err := os.WriteFile(path, []byte(`{"profile": {"username": "nova"}}`), 0644); err != nil {
		t.Fatal(err)
	}

	f := NewFetcher(testConfig(t))
	res, err := f.Fetch(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if string(res.Body) != `{"profile": {"username": "nova"}}` {
		t.Errorf("body = %q", res.Body)
	}
	if res.Meta.FromCache {
		t.Error("local reads never come from cache")
	}
}

func TestFetcher_LocalFileTooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.json")
	if err := os.WriteFile(path, []byte(`{"padding": "xxxxxxxxxxxxxxxx"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig(t)
	cfg.HTTP.MaxBodyBytes = 10
	if _, err := NewFetcher(cfg).Fetch(context.Background(), path); err == nil {
		t.Fatal("want size error")
	}
}

func TestFetcher_URL(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pk": 42}`))
	}))
	defer srv.Close()

	f := NewFetcher(testConfig(t))
	res, err := f.Fetch(context.Background(), srv.URL+"/api/profile")
	if err != nil {
		t.Fatal(err)
	}
	if string(res.Body) != `{"pk": 42}` {
		t.Errorf("body = %q", res.Body)
	}
	if res.Meta.StatusCode != http.StatusOK || res.Meta.ContentType != "application/json" {
		t.Errorf("meta = %+v", res.Meta)
	}
	if gotUA == "" {
		t.Error("user agent must be set")
	}
}

func TestFetcher_URLErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	if _, err := NewFetcher(testConfig(t)).Fetch(context.Background(), srv.URL+"/api/p"); err == nil {
		t.Fatal("want status error")
	}
}

func TestFetcher_CacheHit(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pk": 1}`))
	}))
	defer srv.Close()

	cfg := testConfig(t)
	cfg.Cache.Enabled = true
	cfg.Cache.Dir = t.TempDir()
	f := NewFetcher(cfg)

	url := srv.URL + "/api/profile"
	if _, err := f.Fetch(context.Background(), url); err != nil {
		t.Fatal(err)
	}
	res, err := f.Fetch(context.Background(), url)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Meta.FromCache {
		t.Error("second fetch must come from cache")
	}
	if hits != 1 {
		t.Errorf("server hits = %d, want 1", hits)
	}
}

func TestFetcher_UnwrapsSharePage(t *testing.T) {
	page := `<!DOCTYPE html><html><head>
<script id="__NEXT_DATA__" type="application/json">{"profile": {"username": "nova"}}</script>
</head><body></body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	res, err := NewFetcher(testConfig(t)).Fetch(context.Background(), srv.URL+"/share/nova")
	if err != nil {
		t.Fatal(err)
	}
	if string(res.Body) != `{"profile": {"username": "nova"}}` {
		t.Errorf("body = %q, want the embedded payload", res.Body)
	}
}

func TestFetcher_SharePageWithoutPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><p>no data here</p></body></html>`))
	}))
	defer srv.Close()

	if _, err := NewFetcher(testConfig(t)).Fetch(context.Background(), srv.URL+"/share/x"); err == nil {
		t.Fatal("want error when the page embeds no payload")
	}
}

func TestLooksLikeAPIEndpoint(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://api.example.com/v1/profiles/1", true},
		{"https://example.com/api/profiles/1", true},
		{"https://example.com/exports/profile.json", true},
		{"https://example.com/share/nova", false},
	}
	for _, tt := range tests {
		if got := looksLikeAPIEndpoint(tt.url); got != tt.want {
			t.Errorf("looksLikeAPIEndpoint(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}
