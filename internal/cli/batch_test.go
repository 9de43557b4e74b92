package cli

import (
	"strings"
	"testing"

	"github.com/creatorlens/creatorlens/internal/model"
	"github.com/creatorlens/creatorlens/internal/worker"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"nova", "nova"},
		{"https://api.example/profiles/1.json", "https_api.example_profiles_1.json"},
		{"two words", "two-words"},
		{"...", "report"},
		{"a<b>c", "a_b_c"},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeFilename_Caps(t *testing.T) {
	long := strings.Repeat("x", 300)
	if got := sanitizeFilename(long); len(got) != 100 {
		t.Errorf("len = %d, want 100", len(got))
	}
}

func TestReportSlug(t *testing.T) {
	username := "nova"

	withUsername := &worker.ExtractResult{
		Source: "payload.json",
		Report: &model.Report{Profile: &model.ExtractedProfile{Username: &username}},
	}
	if got := reportSlug(withUsername); got != "nova" {
		t.Errorf("slug = %q, want username", got)
	}

	withID := &worker.ExtractResult{
		Source: "payload.json",
		Report: &model.Report{Profile: &model.ExtractedProfile{ProfileID: "17021991"}},
	}
	if got := reportSlug(withID); got != "17021991" {
		t.Errorf("slug = %q, want profile id", got)
	}

	bare := &worker.ExtractResult{
		Source: "payloads/x.json",
		Report: &model.Report{Profile: &model.ExtractedProfile{}},
	}
	if got := reportSlug(bare); got != "payloads_x.json" {
		t.Errorf("slug = %q, want sanitized source", got)
	}
}
