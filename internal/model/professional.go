package model

// ProfessionalProfile covers discovered contact information. All four lists
// are deduplicated by value across every source location probed.
type ProfessionalProfile struct {
	Emails         []ContactEntry  `json:"emails"`
	Phones         []ContactEntry  `json:"phones"`
	Websites       []ContactEntry  `json:"websites"`
	SocialProfiles []SocialProfile `json:"social_profiles"`

	Location Location `json:"location"`

	// ProfileCompleteness is 0-100, derived from presence across the five
	// contact categories (email, phone, website, social profile, location).
	ProfileCompleteness int `json:"profile_completeness"`
}

// ContactEntry is one discovered contact value, tagged with the source
// location it came from.
type ContactEntry struct {
	Value     string `json:"value"`
	Source    string `json:"source,omitempty"` // e.g. "profile", "contact_details", "business"
	Verified  bool   `json:"verified"`
	IsPrimary bool   `json:"is_primary"`
}

// Location is the profile's declared location, if any.
type Location struct {
	City    *string `json:"city,omitempty"`
	Country *string `json:"country,omitempty"` // Full country name, not the code
}

// HasAny reports whether any location component is present.
func (l Location) HasAny() bool {
	return l.City != nil || l.Country != nil
}
