package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/creatorlens/creatorlens/internal/model"
)

// Renderer writes extraction reports as JSON, Markdown, and a console
// summary.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the full report as indented JSON. A path of "-" writes
// to stdout.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if path == "-" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable profile digest.
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	md := r.buildMarkdown(report)

	if path == "-" {
		fmt.Println(md)
		return nil
	}

	if err := os.WriteFile(path, []byte(md), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

func (r *Renderer) buildMarkdown(report *model.Report) string {
	var b strings.Builder
	p := report.Profile

	title := report.Source
	if p != nil && p.Username != nil {
		title = *p.Username
	}
	fmt.Fprintf(&b, "# Profile: %s\n\n", title)
	fmt.Fprintf(&b, "- **Source:** %s\n", report.Source)
	fmt.Fprintf(&b, "- **Fetched:** %s\n", report.FetchedAt.Format("2006-01-02 15:04 UTC"))
	if p != nil && p.Platform != nil {
		fmt.Fprintf(&b, "- **Platform:** %s\n", *p.Platform)
	}
	b.WriteString("\n")

	if p == nil {
		b.WriteString("_No profile data._\n")
		return b.String()
	}

	b.WriteString("## Trust\n\n")
	fmt.Fprintf(&b, "- Credibility score: %d/100\n", p.Trust.CredibilityScore)
	fmt.Fprintf(&b, "- Risk level: %s\n", p.Trust.RiskLevel)
	if p.Trust.RealFollowersPercentage > 0 {
		fmt.Fprintf(&b, "- Real followers: %d%%\n", p.Trust.RealFollowersPercentage)
	}
	if p.Trust.SuspiciousFollowersPercentage > 0 {
		fmt.Fprintf(&b, "- Suspicious followers: %d%%\n", p.Trust.SuspiciousFollowersPercentage)
	}
	for _, ind := range p.Trust.SuspiciousActivityIndicators {
		fmt.Fprintf(&b, "- Indicator: %s\n", ind)
	}
	b.WriteString("\n")

	b.WriteString("## Performance\n\n")
	if rate := p.Performance.Engagement.Rate; rate != nil {
		fmt.Fprintf(&b, "- Engagement rate: %.2f%%\n", *rate*100)
	}
	if f := p.Performance.Reputation.Followers; f != nil {
		fmt.Fprintf(&b, "- Followers: %d\n", *f)
	}
	if trend := p.Performance.Engagement.Trend; trend != "" {
		fmt.Fprintf(&b, "- Trend: %s\n", trend)
	}
	b.WriteString("\n")

	if len(p.Professional.Emails)+len(p.Professional.SocialProfiles) > 0 {
		b.WriteString("## Contacts\n\n")
		for _, e := range p.Professional.Emails {
			fmt.Fprintf(&b, "- Email: %s\n", e.Value)
		}
		for _, s := range p.Professional.SocialProfiles {
			fmt.Fprintf(&b, "- %s: @%s\n", s.Platform, s.Username)
		}
		b.WriteString("\n")
	}

	if len(p.Audience.Countries) > 0 {
		b.WriteString("## Audience\n\n")
		for _, c := range p.Audience.Countries {
			fmt.Fprintf(&b, "- %s: %.1f%%\n", c.Name, c.Value*100)
		}
		b.WriteString("\n")
	}

	if p.Pricing.HasPricingData {
		b.WriteString("## Pricing\n\n")
		for _, pt := range p.Pricing.PostTypes {
			line := fmt.Sprintf("- %s", pt.Type)
			if pt.Min != nil && pt.Max != nil {
				line += fmt.Sprintf(": %.0f-%.0f", *pt.Min, *pt.Max)
			} else if pt.Average != nil {
				line += fmt.Sprintf(": avg %.0f", *pt.Average)
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}

	if report.LLM != nil && report.LLM.SummaryMD != "" {
		b.WriteString("## Summary\n\n")
		b.WriteString(report.LLM.SummaryMD)
		b.WriteString("\n\n")
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "---\n_Generated by creatorlens. %d canonical fields populated._\n",
			report.Utilization.Total())
	}

	return b.String()
}

// RenderSummary prints a short console digest of the extraction.
func (r *Renderer) RenderSummary(report *model.Report) {
	p := report.Profile
	if p == nil {
		fmt.Println("No profile data extracted.")
		return
	}

	name := report.Source
	if p.Username != nil {
		name = *p.Username
	}

	fmt.Printf("\nProfile: %s\n", name)
	if p.Platform != nil {
		fmt.Printf("Platform: %s\n", *p.Platform)
	}
	fmt.Printf("Credibility: %d/100 (risk: %s)\n", p.Trust.CredibilityScore, p.Trust.RiskLevel)
	if rate := p.Performance.Engagement.Rate; rate != nil {
		fmt.Printf("Engagement: %.2f%%\n", *rate*100)
	}
	fmt.Printf("Populated fields: %d\n", report.Utilization.Total())

	if len(report.LinkChecks) > 0 {
		accessible := 0
		for _, lc := range report.LinkChecks {
			if lc.IsAccessible {
				accessible++
			}
		}
		fmt.Printf("Links: %d/%d accessible\n", accessible, len(report.LinkChecks))
	}
}
