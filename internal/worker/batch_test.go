package worker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/creatorlens/creatorlens/internal/model"
)

type fakeExtractor struct {
	failOn map[string]bool
}

func (f *fakeExtractor) ExtractSource(ctx context.Context, source string) (*model.Report, error) {
	if f.failOn[source] {
		return nil, fmt.Errorf("extract %s: upstream error", source)
	}
	return &model.Report{Source: source}, nil
}

func TestBatchProcessor_ProcessSources(t *testing.T) {
	b := NewBatchProcessor(&fakeExtractor{}, 3, 100, 10)

	sources := []string{"a.json", "b.json", "c.json", "d.json"}
	results := b.ProcessSources(context.Background(), sources)

	if len(results) != len(sources) {
		t.Fatalf("got %d results, want %d", len(results), len(sources))
	}
	seen := make(map[string]bool)
	for _, r := range results {
		if r.Err() != nil {
			t.Errorf("%s: %v", r.Source, r.Err())
		}
		if r.Report == nil || r.Report.Source != r.Source {
			t.Errorf("%s: report source mismatch", r.Source)
		}
		seen[r.Source] = true
	}
	if len(seen) != len(sources) {
		t.Errorf("saw %d distinct sources, want %d", len(seen), len(sources))
	}
}

func TestBatchProcessor_PartialFailure(t *testing.T) {
	b := NewBatchProcessor(&fakeExtractor{failOn: map[string]bool{"bad.json": true}}, 2, 100, 10)

	results := b.ProcessSources(context.Background(), []string{"ok.json", "bad.json"})

	var failed, succeeded int
	for _, r := range results {
		if r.Err() != nil {
			failed++
		} else {
			succeeded++
		}
	}
	if failed != 1 || succeeded != 1 {
		t.Errorf("failed = %d, succeeded = %d, want 1 and 1", failed, succeeded)
	}
}

func TestBatchProcessor_EmptyInput(t *testing.T) {
	b := NewBatchProcessor(&fakeExtractor{}, 2, 100, 10)
	if got := b.ProcessSources(context.Background(), nil); len(got) != 0 {
		t.Errorf("got %d results, want 0", len(got))
	}
}

func TestReadSourcesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.txt")
	content := `# creator payloads
https://api.example/profiles/1.json

payloads/local.json
https://api.example/profiles/1.json
  payloads/spaced.json
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	sources, err := ReadSourcesFromFile(path)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"https://api.example/profiles/1.json",
		"payloads/local.json",
		"payloads/spaced.json",
	}
	if len(sources) != len(want) {
		t.Fatalf("sources = %v, want %v", sources, want)
	}
	for i := range want {
		if sources[i] != want[i] {
			t.Errorf("sources[%d] = %q, want %q", i, sources[i], want[i])
		}
	}
}

func TestReadSourcesFromFile_Missing(t *testing.T) {
	_, err := ReadSourcesFromFile(filepath.Join(t.TempDir(), "absent.txt"))
	if err == nil {
		t.Fatal("want error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want wrapped not-exist", err)
	}
}
