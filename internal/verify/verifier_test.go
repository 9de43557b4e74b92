package verify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/creatorlens/creatorlens/internal/model"
)

func TestLinks(t *testing.T) {
	p := &model.ExtractedProfile{
		Professional: model.ProfessionalProfile{
			Websites: []model.ContactEntry{
				{Value: "https://nova.example"},
				{Value: "https://nova.example"}, // duplicate
				{Value: "nova.example"},         // no scheme, skipped
			},
			SocialProfiles: []model.SocialProfile{
				{Platform: "twitter", URL: "https://twitter.com/nova"},
				{Platform: "tiktok", URL: ""},
			},
		},
	}

	links := Links(p)

	if len(links) != 2 {
		t.Fatalf("links = %v, want 2", links)
	}
	if links[0].URL != "https://nova.example" || links[0].Kind != "website" {
		t.Errorf("links[0] = %+v", links[0])
	}
	if links[1].URL != "https://twitter.com/nova" || links[1].Kind != "social" {
		t.Errorf("links[1] = %+v", links[1])
	}
}

func TestLinks_NilProfile(t *testing.T) {
	if got := Links(nil); got == nil || len(got) != 0 {
		t.Errorf("links = %v, want empty non-nil", got)
	}
}

func TestVerify(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {})
	mux.HandleFunc("/gone", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/moved", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/ok", http.StatusMovedPermanently)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	v := NewVerifier(5*time.Second, 4, "creatorlens-test", "", "", "")
	links := []model.LinkCheck{
		{URL: srv.URL + "/ok", Kind: "website"},
		{URL: srv.URL + "/gone", Kind: "website"},
		{URL: srv.URL + "/moved", Kind: "social"},
	}

	results := v.Verify(context.Background(), links)

	if len(results) != 3 {
		t.Fatalf("got %d results", len(results))
	}
	if !results[0].IsAccessible || results[0].StatusCode != http.StatusOK {
		t.Errorf("ok link = %+v", results[0])
	}
	if !results[1].IsDead || results[1].IsAccessible {
		t.Errorf("gone link = %+v", results[1])
	}
	if !results[2].IsAccessible || results[2].RedirectURL != srv.URL+"/ok" {
		t.Errorf("moved link = %+v", results[2])
	}
	// Results come back in input order.
	for i, l := range links {
		if results[i].URL != l.URL {
			t.Errorf("results[%d].URL = %q, want %q", i, results[i].URL, l.URL)
		}
	}
}

func TestVerify_Empty(t *testing.T) {
	v := NewVerifier(time.Second, 1, "ua", "", "", "")
	if got := v.Verify(context.Background(), nil); got == nil || len(got) != 0 {
		t.Errorf("verify(nil) = %v, want empty non-nil", got)
	}
}

func TestVerify_RetriesTransientFailures(t *testing.T) {
	origSleep := sleepFunc
	sleepFunc = func(time.Duration) {}
	defer func() { sleepFunc = origSleep }()

	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}))
	defer srv.Close()

	v := NewVerifier(5*time.Second, 1, "ua", "", "", "")
	results := v.Verify(context.Background(), []model.LinkCheck{{URL: srv.URL}})

	if calls.Load() != 3 {
		t.Errorf("calls = %d, want 3", calls.Load())
	}
	if !results[0].IsAccessible {
		t.Errorf("result = %+v, want accessible after retry", results[0])
	}
}

func TestVerify_PermanentFailureNotRetried(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	v := NewVerifier(5*time.Second, 1, "ua", "", "", "")
	v.Verify(context.Background(), []model.LinkCheck{{URL: srv.URL}})

	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", calls.Load())
	}
}
