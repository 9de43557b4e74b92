// Package engine assembles the canonical ExtractedProfile from the raw
// payload. The engine is synchronous and side-effect-free: no I/O, no shared
// mutable state, no failure mode beyond defensive defaults.
package engine

import (
	"strconv"
	"sync"

	"github.com/creatorlens/creatorlens/internal/model"
	"github.com/creatorlens/creatorlens/internal/payload"
	"github.com/creatorlens/creatorlens/internal/resolve"
)

// Engine runs the ten domain resolvers and assembles the result.
type Engine struct {
	includeExtended bool
}

// Option configures the engine.
type Option func(*Engine)

// WithExtendedDiagnostics enables the best-effort extended analytics blocks.
func WithExtendedDiagnostics() Option {
	return func(e *Engine) { e.includeExtended = true }
}

// New creates an engine. The zero configuration produces only the guaranteed
// canonical schema.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract builds a fresh ExtractedProfile from the raw payload. The resolvers
// are independent pure functions writing disjoint slices, so they run
// concurrently; the assembled record is deterministic regardless of
// completion order. Extraction never fails: an empty payload yields a fully
// shaped, fully defaulted profile.
func (e *Engine) Extract(n payload.Node) *model.ExtractedProfile {
	if n == nil {
		n = payload.Node{}
	}

	p := &model.ExtractedProfile{}
	p.ProfileID = profileID(n)
	if s, ok := n.FirstString("platform", "profile.platform", "work_platform.name"); ok {
		platform := s
		p.Platform = &platform
	}
	if s, ok := n.FirstString("profile.username", "username", "handle"); ok {
		username := s
		p.Username = &username
	}

	var wg sync.WaitGroup
	for _, fill := range []func(){
		func() { p.Trust = resolve.Trust(n) },
		func() { p.Professional = resolve.Professional(n) },
		func() { p.Performance = resolve.Performance(n) },
		func() { p.Content = resolve.Content(n) },
		func() { p.Audience = resolve.Audience(n) },
		func() { p.Brand = resolve.Brand(n) },
		func() { p.Pricing = resolve.Pricing(n) },
		func() { p.Creator = resolve.Creator(n) },
		func() { p.Advanced = resolve.Advanced(n) },
		func() { p.Livestream = resolve.Livestream(n) },
	} {
		wg.Add(1)
		go func(f func()) {
			defer wg.Done()
			f()
		}(fill)
	}
	wg.Wait()

	if e.includeExtended {
		if ext := extendedDiagnostics(n, p); !ext.IsEmpty() {
			p.Extended = ext
		}
	}

	return p
}

// profileID passes the provider's own identifier through unchanged, for
// correlation and logging. The engine assigns no identity of its own.
func profileID(n payload.Node) string {
	for _, path := range []string{"profile.id", "user_id", "id", "profile.external_id", "pk"} {
		if s, ok := n.String(path); ok {
			return s
		}
		// Some provider versions serialize identifiers numerically.
		if i, ok := n.Int(path); ok {
			return strconv.FormatInt(i, 10)
		}
	}
	if s, ok := n.FirstString("profile.username", "username"); ok {
		return s
	}
	return ""
}
