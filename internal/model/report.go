package model

import "time"

// Report wraps one extraction result with its provenance. The engine itself
// produces only the ExtractedProfile; everything else here is added by the
// pipeline.
type Report struct {
	Source    string    `json:"source"` // URL or file path the payload came from
	FetchedAt time.Time `json:"fetched_at"`
	FetchMeta FetchMeta `json:"fetch_meta"`

	Profile     *ExtractedProfile `json:"profile"`
	Utilization Utilization       `json:"utilization"`

	LLM *LLMSummary `json:"llm,omitempty"` // Optional, never affects the profile

	// LinkChecks holds optional accessibility results for discovered contact
	// links. Populated only when link verification is requested.
	LinkChecks []LinkCheck `json:"link_checks,omitempty"`
}

// LinkCheck is the accessibility result for one discovered link.
type LinkCheck struct {
	URL          string `json:"url"`
	Kind         string `json:"kind"` // website or social
	StatusCode   int    `json:"status_code,omitempty"`
	IsAccessible bool   `json:"is_accessible"`
	IsDead       bool   `json:"is_dead,omitempty"`
	RedirectURL  string `json:"redirect_url,omitempty"`
	Error        string `json:"error,omitempty"`
}

// FetchMeta contains HTTP metadata from fetching the raw payload.
type FetchMeta struct {
	StatusCode   int               `json:"status_code,omitempty"`
	ContentType  string            `json:"content_type,omitempty"`
	LastModified string            `json:"last_modified,omitempty"`
	ETag         string            `json:"etag,omitempty"`
	FromCache    bool              `json:"from_cache"`
	Headers      map[string]string `json:"headers,omitempty"`
}

// LLMSummary contains an optional LLM-generated narrative of the extracted
// profile. It is generated after extraction and never feeds back into it.
type LLMSummary struct {
	Enabled   bool     `json:"enabled"`
	Provider  string   `json:"provider,omitempty"`
	Model     string   `json:"model,omitempty"`
	SummaryMD string   `json:"summary_md,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}
