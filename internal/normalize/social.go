package normalize

import (
	"fmt"
	"net/url"
	"strings"
)

// platformURLs maps platform names to profile URL templates. %s is the
// username.
var platformURLs = map[string]string{
	"instagram": "https://instagram.com/%s",
	"tiktok":    "https://tiktok.com/@%s",
	"youtube":   "https://youtube.com/@%s",
	"twitter":   "https://twitter.com/%s",
	"x":         "https://twitter.com/%s",
	"twitch":    "https://twitch.tv/%s",
	"facebook":  "https://facebook.com/%s",
	"linkedin":  "https://linkedin.com/in/%s",
	"pinterest": "https://pinterest.com/%s",
	"snapchat":  "https://snapchat.com/add/%s",
	"telegram":  "https://t.me/%s",
	"threads":   "https://threads.net/@%s",
}

// platformHosts maps hostnames back to platform names for URL parsing.
var platformHosts = map[string]string{
	"instagram.com": "instagram",
	"tiktok.com":    "tiktok",
	"youtube.com":   "youtube",
	"youtu.be":      "youtube",
	"twitter.com":   "twitter",
	"x.com":         "twitter",
	"twitch.tv":     "twitch",
	"facebook.com":  "facebook",
	"fb.com":        "facebook",
	"linkedin.com":  "linkedin",
	"pinterest.com": "pinterest",
	"snapchat.com":  "snapchat",
	"t.me":          "telegram",
	"threads.net":   "threads",
}

// SocialURL builds a profile URL for a platform and username. Unknown
// platforms return an empty string; a username that already is a URL passes
// through unchanged.
func SocialURL(platform, username string) string {
	username = strings.TrimSpace(username)
	if username == "" {
		return ""
	}
	if strings.HasPrefix(username, "http://") || strings.HasPrefix(username, "https://") {
		return username
	}
	username = strings.TrimPrefix(username, "@")

	tmpl, ok := platformURLs[strings.ToLower(strings.TrimSpace(platform))]
	if !ok {
		return ""
	}
	return fmt.Sprintf(tmpl, username)
}

// ParseSocialURL detects the platform and username from a profile URL.
// Returns ("", "", false) when the host is not a known platform.
func ParseSocialURL(rawURL string) (platform, username string, ok bool) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || parsed.Host == "" {
		return "", "", false
	}

	host := strings.TrimPrefix(strings.ToLower(parsed.Host), "www.")
	platform, ok = platformHosts[host]
	if !ok {
		return "", "", false
	}

	path := strings.Trim(parsed.Path, "/")
	if path == "" {
		return platform, "", true
	}

	segments := strings.Split(path, "/")
	username = segments[0]
	// LinkedIn profiles live under /in/<username>
	if platform == "linkedin" && len(segments) > 1 && segments[0] == "in" {
		username = segments[1]
	}
	username = strings.TrimPrefix(username, "@")

	return platform, username, true
}
