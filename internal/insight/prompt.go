package insight

import (
	"fmt"
	"strings"
)

// Prompt thresholds for calling a module a strength or a growth area. These
// are deliberately distinct from the scorer's tier bounds; see DESIGN.md.
const (
	promptStrengthMin   = 80
	promptGrowthBelow   = 70
	promptDateStyle     = "Jan 2, 2006"
	promptMaxRecentDays = 5
)

// RenderPrompt turns a coach context into the deterministic text block fed to
// the coaching model. Sections with no backing data are omitted entirely — no
// dangling labels. Two calls on the same context produce identical bytes.
func RenderPrompt(ctx *CoachContext) string {
	var b strings.Builder

	name := ctx.User.Name
	if name == "" {
		name = "the user"
	}
	fmt.Fprintf(&b, "You are coaching %s on their relationship.\n", name)

	writePersona(&b, "About "+displayName(ctx.User.Name, "them"), &ctx.User)
	if ctx.Partner != nil {
		writePersona(&b, "About their partner "+displayName(ctx.Partner.Name, ""), ctx.Partner)
	}

	if rel := ctx.Relationship; rel != nil {
		if rel.HealthScore != nil {
			fmt.Fprintf(&b, "\nRelationship health score: %d/100.\n", *rel.HealthScore)
		}
		if rel.Alignment != nil {
			fmt.Fprintf(&b, "Daily check-in alignment: %d%%.\n", *rel.Alignment)
		}
	}

	writeAssessment(&b, "Their assessment", ctx.Assessment)
	writeAssessment(&b, "Their partner's assessment", ctx.PartnerAssessment)
	writeCheckIns(&b, "Their recent check-ins", ctx.CheckIns)
	writeCheckIns(&b, "Their partner's recent check-ins", ctx.PartnerCheckIns)

	if d := ctx.Dates; d != nil {
		if d.Upcoming != nil {
			fmt.Fprintf(&b, "\nUpcoming date: %s", d.Upcoming.Title)
			if d.Upcoming.Location != "" {
				fmt.Fprintf(&b, " at %s", d.Upcoming.Location)
			}
			fmt.Fprintf(&b, " on %s.\n", d.Upcoming.ScheduledAt.Format(promptDateStyle))
		}
		if len(d.Recent) > 0 {
			b.WriteString("Recent dates:\n")
			for _, r := range d.Recent {
				fmt.Fprintf(&b, "- %s (%s)\n", r.Title, r.ScheduledAt.Format(promptDateStyle))
			}
		}
	}

	if len(ctx.Flirts) > 0 {
		b.WriteString("\nRecent flirts between them:\n")
		for _, f := range ctx.Flirts {
			fmt.Fprintf(&b, "- %s: %q\n", f.From, f.Message)
		}
	}

	if ctx.TimelineCount > 0 {
		fmt.Fprintf(&b, "\nTheir shared timeline holds %d memories.\n", ctx.TimelineCount)
	}

	return b.String()
}

func displayName(name, fallback string) string {
	if name != "" {
		return name
	}
	return fallback
}

func writePersona(b *strings.Builder, heading string, p *PersonContext) {
	lines := make([]string, 0, 4)
	if len(p.LoveLanguages) > 0 {
		lines = append(lines, "Love languages, most important first: "+strings.Join(p.LoveLanguages, ", ")+".")
	}
	if p.Values != "" {
		lines = append(lines, "Values: "+p.Values+".")
	}
	if p.StressResponse != "" {
		lines = append(lines, "Under stress they tend to: "+p.StressResponse+".")
	}
	if p.Hobbies != "" {
		lines = append(lines, "Hobbies: "+p.Hobbies+".")
	}
	if len(lines) == 0 {
		return
	}

	fmt.Fprintf(b, "\n%s:\n", strings.TrimSpace(heading))
	for _, l := range lines {
		fmt.Fprintf(b, "- %s\n", l)
	}
}

func writeAssessment(b *strings.Builder, heading string, a *AssessmentContext) {
	if a == nil || len(a.ModuleScores) == 0 {
		return
	}

	var strengths, growth []string
	for _, ms := range a.ModuleScores {
		switch {
		case ms.Percentage >= promptStrengthMin:
			strengths = append(strengths, fmt.Sprintf("%s (%d%%)", ms.Title, ms.Percentage))
		case ms.Percentage < promptGrowthBelow:
			growth = append(growth, fmt.Sprintf("%s (%d%%)", ms.Title, ms.Percentage))
		}
	}
	if len(strengths) == 0 && len(growth) == 0 {
		return
	}

	fmt.Fprintf(b, "\n%s:\n", heading)
	if len(strengths) > 0 {
		b.WriteString("- Strengths: " + strings.Join(strengths, ", ") + "\n")
	}
	if len(growth) > 0 {
		b.WriteString("- Growth areas: " + strings.Join(growth, ", ") + "\n")
	}
}

func writeCheckIns(b *strings.Builder, heading string, c *CheckInContext) {
	if c == nil || c.Report.SampleCount == 0 {
		return
	}

	fmt.Fprintf(b, "\n%s:\n", heading)
	fmt.Fprintf(b, "- Average mood %.1f/5, average connection %.1f/5 over %d check-ins.\n",
		c.Report.AvgMood, c.Report.AvgConnection, c.Report.SampleCount)
	fmt.Fprintf(b, "- Mood trend %s, connection trend %s.\n", c.Report.MoodTrend, c.Report.ConnectionTrend)
	if c.Streak > 0 {
		fmt.Fprintf(b, "- Current check-in streak: %d days.\n", c.Streak)
	}
	for _, concern := range c.Report.Concerns {
		fmt.Fprintf(b, "- Concern (%s): %s.\n", concern.Severity, concern.Description)
	}
	for _, pos := range c.Report.PositivePatterns {
		fmt.Fprintf(b, "- Positive: %s.\n", pos.Description)
	}

	recent := c.Recent
	if len(recent) > promptMaxRecentDays {
		recent = recent[len(recent)-promptMaxRecentDays:]
	}
	for _, s := range recent {
		fmt.Fprintf(b, "- %s: mood %s, connection %d/5", s.Date.Format(promptDateStyle), s.Mood, s.ConnectionScore)
		if s.Answer != "" {
			fmt.Fprintf(b, ", answered %q to %q", s.Answer, s.Question)
		}
		b.WriteString("\n")
	}
}
