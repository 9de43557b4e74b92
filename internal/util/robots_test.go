package util

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestRobotsChecker_Disallow(t *testing.T) {
	var robotsHits atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		robotsHits.Add(1)
		_, _ = w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewRobotsChecker("creatorlens-test", 5*time.Second)
	ctx := context.Background()

	if !c.IsAllowed(ctx, srv.URL+"/share/nova") {
		t.Error("public path must be allowed")
	}
	if c.IsAllowed(ctx, srv.URL+"/private/nova") {
		t.Error("disallowed path must be blocked")
	}
	if robotsHits.Load() != 1 {
		t.Errorf("robots.txt fetched %d times, want 1 (cached per host)", robotsHits.Load())
	}
}

func TestRobotsChecker_MissingRobotsAllows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewRobotsChecker("creatorlens-test", 5*time.Second)
	if !c.IsAllowed(context.Background(), srv.URL+"/anything") {
		t.Error("missing robots.txt must allow everything")
	}
}

func TestRobotsChecker_UnreachableHostAllows(t *testing.T) {
	c := NewRobotsChecker("creatorlens-test", 200*time.Millisecond)
	if !c.IsAllowed(context.Background(), "http://127.0.0.1:1/share/x") {
		t.Error("unreachable robots.txt must allow by default")
	}
}

func TestRobotsChecker_Clear(t *testing.T) {
	var robotsHits atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		robotsHits.Add(1)
		_, _ = w.Write([]byte("User-agent: *\nAllow: /\n"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewRobotsChecker("creatorlens-test", 5*time.Second)
	ctx := context.Background()

	c.IsAllowed(ctx, srv.URL+"/a")
	c.Clear()
	c.IsAllowed(ctx, srv.URL+"/b")

	if robotsHits.Load() != 2 {
		t.Errorf("robots.txt fetched %d times, want 2 after clear", robotsHits.Load())
	}
}
