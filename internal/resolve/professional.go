package resolve

import (
	"strings"

	"github.com/creatorlens/creatorlens/internal/model"
	"github.com/creatorlens/creatorlens/internal/normalize"
	"github.com/creatorlens/creatorlens/internal/payload"
)

// Professional resolves discovered contact information. Each list probes
// five to six source locations in a fixed order and deduplicates by value,
// so the same email surfacing under profile.email and contact_details[] is
// reported once.
func Professional(n payload.Node) model.ProfessionalProfile {
	p := model.ProfessionalProfile{
		Emails:         []model.ContactEntry{},
		Phones:         []model.ContactEntry{},
		Websites:       []model.ContactEntry{},
		SocialProfiles: []model.SocialProfile{},
	}

	emails := newContactSet()
	phones := newContactSet()
	websites := newContactSet()

	// 1. Dedicated arrays on the profile object.
	collectContactArray(n.FirstSlice("profile.emails", "emails"), "profile", emails)
	collectContactArray(n.FirstSlice("profile.phones", "phones", "phone_numbers"), "profile", phones)
	collectContactArray(n.FirstSlice("profile.websites", "websites", "external_links"), "profile", websites)

	// 2. Flat scalar fields, old payload versions.
	if s, ok := n.FirstString("profile.email", "email"); ok {
		emails.add(s, "profile", false, false)
	}
	if s, ok := n.FirstString("profile.phone", "phone", "phone_number"); ok {
		phones.add(s, "profile", false, false)
	}
	if s, ok := n.FirstString("profile.website", "website", "profile.external_url"); ok {
		websites.add(s, "profile", false, false)
	}

	// 3. The generic tagged contact_details array.
	for _, v := range n.FirstSlice("contact_details", "profile.contact_details", "contacts") {
		item := payload.AsNode(v)
		if item == nil {
			continue
		}
		value := itemString(item, "value", "contact", "formatted_value")
		if value == "" {
			continue
		}
		verified, _ := item.Bool("verified")
		primary, _ := item.Bool("is_primary")
		switch normalize.Contact(itemString(item, "type", "kind", "category")) {
		case normalize.ContactEmail:
			emails.add(value, "contact_details", verified, primary)
		case normalize.ContactPhone:
			phones.add(value, "contact_details", verified, primary)
		case normalize.ContactWebsite:
			websites.add(value, "contact_details", verified, primary)
		case normalize.ContactSocial:
			if sp, ok := socialFromURL(value); ok {
				p.SocialProfiles = appendSocial(p.SocialProfiles, sp)
			}
		}
	}

	// 4. The business sub-object.
	if s, ok := n.FirstString("business.email", "business.contact_email"); ok {
		emails.add(s, "business", false, false)
	}
	if s, ok := n.FirstString("business.phone", "business.phone_number"); ok {
		phones.add(s, "business", false, false)
	}
	if s, ok := n.FirstString("business.website"); ok {
		websites.add(s, "business", false, false)
	}

	p.Emails = emails.entries
	p.Phones = phones.entries
	p.Websites = websites.entries

	// Social profiles: dedicated array first, then URL detection above.
	for _, v := range n.FirstSlice("profile.social_profiles", "social_profiles", "socials", "other_platforms") {
		item := payload.AsNode(v)
		if item == nil {
			continue
		}
		platform := strings.ToLower(itemString(item, "platform", "network", "type"))
		username := itemString(item, "username", "handle", "screen_name")
		url := itemString(item, "url", "link")
		if url == "" {
			url = normalize.SocialURL(platform, username)
		}
		if platform == "" {
			if det, user, ok := normalize.ParseSocialURL(url); ok {
				platform = det
				if username == "" {
					username = user
				}
			}
		}
		if platform == "" || url == "" {
			continue
		}
		verified, _ := item.Bool("verified")
		p.SocialProfiles = appendSocial(p.SocialProfiles, model.SocialProfile{
			Platform: platform,
			Username: strings.TrimPrefix(username, "@"),
			URL:      url,
			Verified: verified,
		})
	}

	p.Location = location(n)

	p.ProfileCompleteness = normalize.Completeness(
		len(p.Emails), len(p.Phones), len(p.Websites), len(p.SocialProfiles),
		p.Location.HasAny(),
	)

	return p
}

// contactSet accumulates contact entries with value-level dedup. The first
// entry added becomes primary unless a later duplicate of it was flagged
// primary by its source.
type contactSet struct {
	entries []model.ContactEntry
	seen    map[string]bool
}

func newContactSet() *contactSet {
	return &contactSet{entries: []model.ContactEntry{}, seen: map[string]bool{}}
}

func (c *contactSet) add(value, source string, verified, primary bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	key := strings.ToLower(value)
	if c.seen[key] {
		return
	}
	c.seen[key] = true
	c.entries = append(c.entries, model.ContactEntry{
		Value:     value,
		Source:    source,
		Verified:  verified,
		IsPrimary: primary || len(c.entries) == 0,
	})
}

// collectContactArray handles arrays whose elements are either plain strings
// or objects with a value-like key.
func collectContactArray(raw []any, source string, set *contactSet) {
	for _, v := range raw {
		if s, ok := v.(string); ok {
			set.add(s, source, false, false)
			continue
		}
		item := payload.AsNode(v)
		if item == nil {
			continue
		}
		value := itemString(item, "value", "email", "phone", "url", "address")
		verified, _ := item.Bool("verified")
		primary, _ := item.Bool("is_primary")
		set.add(value, source, verified, primary)
	}
}

func socialFromURL(value string) (model.SocialProfile, bool) {
	platform, username, ok := normalize.ParseSocialURL(value)
	if !ok {
		return model.SocialProfile{}, false
	}
	return model.SocialProfile{
		Platform: platform,
		Username: username,
		URL:      value,
	}, true
}

// appendSocial deduplicates social profiles by platform+username (falling
// back to URL when the username is unknown).
func appendSocial(list []model.SocialProfile, sp model.SocialProfile) []model.SocialProfile {
	key := strings.ToLower(sp.Platform + "/" + sp.Username)
	if sp.Username == "" {
		key = strings.ToLower(sp.URL)
	}
	for _, existing := range list {
		existingKey := strings.ToLower(existing.Platform + "/" + existing.Username)
		if existing.Username == "" {
			existingKey = strings.ToLower(existing.URL)
		}
		if existingKey == key {
			return list
		}
	}
	return append(list, sp)
}

func location(n payload.Node) model.Location {
	loc := model.Location{}
	if s, ok := n.FirstString("profile.city", "city", "location.city", "geo.city"); ok {
		loc.City = strPtr(s)
	}
	if s, ok := n.FirstString("profile.country_code", "country_code", "profile.country", "country", "location.country"); ok {
		loc.Country = strPtr(countryDisplay(s))
	}
	return loc
}
