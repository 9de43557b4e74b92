package model

// ExtendedDiagnostics holds the seven best-effort analytics blocks the
// aggregator attaches for diagnostic richness. These are assembled by the
// same fallback-chain technique as the domain slices but carry no shape
// guarantee beyond "JSON-serializable map"; consumers must treat them as
// advisory. Keeping them out of the typed schema keeps the core guarantees
// intact.
type ExtendedDiagnostics struct {
	Business         map[string]any `json:"business,omitempty"`
	ContentDepth     map[string]any `json:"content_depth,omitempty"`
	AudienceBehavior map[string]any `json:"audience_behavior,omitempty"`
	Competitive      map[string]any `json:"competitive,omitempty"`
	Monetization     map[string]any `json:"monetization,omitempty"`
	Risk             map[string]any `json:"risk,omitempty"`
	Predictive       map[string]any `json:"predictive,omitempty"`
}

// IsEmpty reports whether no block was populated.
func (d *ExtendedDiagnostics) IsEmpty() bool {
	if d == nil {
		return true
	}
	return len(d.Business) == 0 && len(d.ContentDepth) == 0 &&
		len(d.AudienceBehavior) == 0 && len(d.Competitive) == 0 &&
		len(d.Monetization) == 0 && len(d.Risk) == 0 && len(d.Predictive) == 0
}

// Utilization reports, per domain, how many canonical fields carry data.
// It is observability output only and never feeds back into extraction.
type Utilization struct {
	Trust        int `json:"trust"`
	Professional int `json:"professional"`
	Performance  int `json:"performance"`
	Content      int `json:"content"`
	Audience     int `json:"audience"`
	Brand        int `json:"brand"`
	Pricing      int `json:"pricing"`
	Creator      int `json:"creator"`
	Advanced     int `json:"advanced"`
	Livestream   int `json:"livestream"`
}

// Total sums the per-domain populated-field counts.
func (u Utilization) Total() int {
	return u.Trust + u.Professional + u.Performance + u.Content +
		u.Audience + u.Brand + u.Pricing + u.Creator + u.Advanced +
		u.Livestream
}
