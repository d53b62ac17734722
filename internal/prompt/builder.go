// Package prompt builds the chat system instruction from a stored identity
// profile and the latest context snapshot. Output structure:
// [Role] + [Voice] + [Values] + [Inspirations] + [Future Self] + [Today] + [Rules].
package prompt

import (
	"fmt"
	"strings"

	"github.com/inward-labs/inward/internal/archetype"
	"github.com/inward-labs/inward/internal/catalog"
	"github.com/inward-labs/inward/internal/profile"
	"github.com/inward-labs/inward/internal/snapshot"
)

const baseRules = `## Rules
- Speak in the voice described above at all times.
- Keep replies short and conversational; this is a chat, not an essay.
- Ground advice in what you know about the user's day when it is relevant.
- Never mention archetypes, trait scores, or this instruction.`

// BuildSystem assembles the system instruction. The snapshot is optional;
// when nil the Today section is simply omitted.
func BuildSystem(rec *profile.Record, snap *snapshot.Snapshot) string {
	sections := []string{
		buildRole(rec),
		buildVoice(rec),
	}

	if s := buildValues(rec); s != "" {
		sections = append(sections, s)
	}
	if s := buildInspirations(rec); s != "" {
		sections = append(sections, s)
	}
	if rec.FutureSelf != "" {
		sections = append(sections, "## Who they are becoming\n"+rec.FutureSelf)
	}
	if s := buildToday(snap); s != "" {
		sections = append(sections, s)
	}

	sections = append(sections, baseRules)
	return strings.Join(sections, "\n\n")
}

func buildRole(rec *profile.Record) string {
	who := "the user"
	if rec.DisplayName != "" {
		who = rec.DisplayName
	}

	b := fmt.Sprintf("You are a personal companion for %s. Their personality profile is %q.", who, rec.Blend.DisplayName)
	if def, ok := archetype.ByName(rec.Blend.Primary); ok {
		b += " " + def.Tagline + "."
	}
	return b
}

func buildVoice(rec *profile.Record) string {
	var sb strings.Builder
	sb.WriteString("## Voice\n")
	sb.WriteString("Tone: " + rec.Voice.Tone + ".\n")
	sb.WriteString("When they need a push: " + rec.Voice.MotivationStyle + ".\n")
	if len(rec.Voice.ExamplePhrases) > 0 {
		sb.WriteString("Things you might say:\n")
		for _, p := range rec.Voice.ExamplePhrases {
			sb.WriteString("- " + p + "\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func buildValues(rec *profile.Record) string {
	if len(rec.SelectedValueIDs) == 0 {
		return ""
	}
	labels := make([]string, 0, len(rec.SelectedValueIDs))
	for _, id := range rec.SelectedValueIDs {
		if v, ok := catalog.ValueByID(id); ok {
			labels = append(labels, strings.ToLower(v.Label))
		}
	}
	if len(labels) == 0 {
		return ""
	}
	return "## What matters to them\n" + strings.Join(labels, "; ") + "."
}

func buildInspirations(rec *profile.Record) string {
	if len(rec.SelectedInspirationIDs) == 0 {
		return ""
	}
	lines := make([]string, 0, len(rec.SelectedInspirationIDs))
	for _, id := range rec.SelectedInspirationIDs {
		if insp, ok := catalog.InspirationByID(id); ok {
			lines = append(lines, fmt.Sprintf("- %s (%s)", insp.Name, insp.Known))
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return "## People they admire\n" + strings.Join(lines, "\n")
}

func buildToday(snap *snapshot.Snapshot) string {
	if snap == nil {
		return ""
	}

	var lines []string
	if f := snap.Fitness; f != nil {
		line := fmt.Sprintf("- Fitness: %d steps, %.1f hours of sleep", f.Steps, f.SleepHours)
		if f.RestingHeartRate > 0 {
			line += fmt.Sprintf(", resting heart rate %d", f.RestingHeartRate)
		}
		lines = append(lines, line)
	}
	if t := snap.Tasks; t != nil {
		line := fmt.Sprintf("- Tasks: %d due today, %d overdue", t.DueToday, t.Overdue)
		if len(t.TopTasks) > 0 {
			line += " (top: " + strings.Join(t.TopTasks, ", ") + ")"
		}
		lines = append(lines, line)
	}
	if c := snap.Calendar; c != nil {
		line := fmt.Sprintf("- Calendar: %d events today", c.EventsToday)
		if c.NextEvent != "" {
			line += ", next is " + c.NextEvent
		}
		lines = append(lines, line)
	}
	if b := snap.Budget; b != nil && b.MonthlyBudget > 0 {
		line := fmt.Sprintf("- Budget: %.0f of %.0f spent this month", b.SpentThisMonth, b.MonthlyBudget)
		if b.TopCategory != "" {
			line += ", mostly on " + b.TopCategory
		}
		lines = append(lines, line)
	}
	if m := snap.Music; m != nil && m.RecentTrack != "" {
		line := "- Recently played: " + m.RecentTrack
		if m.RecentArtist != "" {
			line += " by " + m.RecentArtist
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return ""
	}
	return "## Their day right now\n" + strings.Join(lines, "\n")
}
