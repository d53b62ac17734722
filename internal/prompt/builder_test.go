package prompt

import (
	"strings"
	"testing"
	"time"

	"github.com/inward-labs/inward/internal/archetype"
	"github.com/inward-labs/inward/internal/profile"
	"github.com/inward-labs/inward/internal/snapshot"
	"github.com/inward-labs/inward/internal/voice"
)

func testProfile() *profile.Record {
	return &profile.Record{
		UserID:      "u-1",
		DisplayName: "Jordan",
		Blend: archetype.Blend{
			Primary:     archetype.Sage,
			Secondary:   archetype.Explorer,
			DisplayName: "The Curious Scholar",
		},
		Voice: voice.Profile{
			Tone:            "calm and reflective",
			MotivationStyle: "appeals to understanding and long-term growth",
			ExamplePhrases:  []string{"Worth thinking through.", "What does the evidence say?"},
		},
		SelectedValueIDs:       []string{"curiosity", "learning"},
		SelectedInspirationIDs: []string{"marie_curie", "jane_goodall"},
		FutureSelf:             "Someone who reads more than they scroll.",
	}
}

func TestBuildSystemIncludesProfileSections(t *testing.T) {
	got := BuildSystem(testProfile(), nil)

	for _, want := range []string{
		"Jordan",
		"The Curious Scholar",
		"calm and reflective",
		"appeals to understanding",
		"Worth thinking through.",
		"curiosity",
		"Marie Curie",
		"Jane Goodall",
		"reads more than they scroll",
		"## Rules",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("system prompt missing %q\n%s", want, got)
		}
	}
}

func TestBuildSystemOmitsEmptySections(t *testing.T) {
	rec := testProfile()
	rec.FutureSelf = ""
	rec.SelectedInspirationIDs = nil

	got := BuildSystem(rec, nil)

	if strings.Contains(got, "## Who they are becoming") {
		t.Error("expected future-self section omitted")
	}
	if strings.Contains(got, "## People they admire") {
		t.Error("expected inspirations section omitted")
	}
	if strings.Contains(got, "## Their day right now") {
		t.Error("expected snapshot section omitted without a snapshot")
	}
}

func TestBuildSystemWithSnapshot(t *testing.T) {
	snap := &snapshot.Snapshot{
		UserID:     "u-1",
		CapturedAt: time.Now(),
		Fitness:    &snapshot.FitnessSummary{Steps: 8200, SleepHours: 6.5},
		Tasks:      &snapshot.TaskSummary{DueToday: 3, Overdue: 1, TopTasks: []string{"File taxes"}},
		Calendar:   &snapshot.CalendarSummary{EventsToday: 2, NextEvent: "Standup"},
		Music:      &snapshot.MusicSummary{RecentTrack: "Clair de Lune", RecentArtist: "Debussy"},
	}

	got := BuildSystem(testProfile(), snap)

	for _, want := range []string{
		"8200 steps",
		"6.5 hours of sleep",
		"3 due today, 1 overdue",
		"File taxes",
		"next is Standup",
		"Clair de Lune by Debussy",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("system prompt missing %q\n%s", want, got)
		}
	}
}

func TestBuildSystemEmptySnapshotSections(t *testing.T) {
	// A snapshot with no populated sections contributes nothing.
	got := BuildSystem(testProfile(), &snapshot.Snapshot{UserID: "u-1"})
	if strings.Contains(got, "## Their day right now") {
		t.Error("expected empty snapshot to be omitted")
	}
}

func TestBuildSystemAnonymousUser(t *testing.T) {
	rec := testProfile()
	rec.DisplayName = ""
	got := BuildSystem(rec, nil)
	if !strings.Contains(got, "companion for the user") {
		t.Errorf("expected generic addressee, got:\n%s", got)
	}
}
