// Package snapshot holds the per-user context aggregate assembled by the
// provider-sync services (fitness tracker, task manager, calendar, budget
// sheet, music streaming). The identity service consumes it read-only for
// prompt construction.
package snapshot

import "time"

// Snapshot is the latest known external-service context for one user.
// Sections are pointers: a provider the user never connected stays nil and
// is simply omitted downstream.
type Snapshot struct {
	UserID     string    `json:"user_id"`
	CapturedAt time.Time `json:"captured_at"`

	Fitness  *FitnessSummary  `json:"fitness,omitempty"`
	Tasks    *TaskSummary     `json:"tasks,omitempty"`
	Calendar *CalendarSummary `json:"calendar,omitempty"`
	Budget   *BudgetSummary   `json:"budget,omitempty"`
	Music    *MusicSummary    `json:"music,omitempty"`
}

type FitnessSummary struct {
	Steps            int     `json:"steps"`
	SleepHours       float64 `json:"sleep_hours"`
	RestingHeartRate int     `json:"resting_heart_rate,omitempty"`
}

type TaskSummary struct {
	DueToday int      `json:"due_today"`
	Overdue  int      `json:"overdue"`
	TopTasks []string `json:"top_tasks,omitempty"`
}

type CalendarSummary struct {
	EventsToday int       `json:"events_today"`
	NextEvent   string    `json:"next_event,omitempty"`
	NextEventAt time.Time `json:"next_event_at,omitempty"`
}

type BudgetSummary struct {
	SpentThisMonth float64 `json:"spent_this_month"`
	MonthlyBudget  float64 `json:"monthly_budget"`
	TopCategory    string  `json:"top_category,omitempty"`
}

type MusicSummary struct {
	RecentTrack  string `json:"recent_track,omitempty"`
	RecentArtist string `json:"recent_artist,omitempty"`
	TopGenre     string `json:"top_genre,omitempty"`
}
