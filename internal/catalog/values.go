package catalog

// CoreValue is a selectable value. Users pick exactly five during onboarding.
type CoreValue struct {
	ID       string
	Label    string
	Category string
}

// ValueCategories, in display order.
var ValueCategories = []string{
	"growth", "connection", "freedom", "stability",
	"impact", "creativity", "health", "integrity",
}

// Values is the full catalog: 40 values, 5 per category.
var Values = []CoreValue{
	{ID: "learning", Label: "Always learning", Category: "growth"},
	{ID: "mastery", Label: "Mastery of a craft", Category: "growth"},
	{ID: "challenge", Label: "Seeking challenge", Category: "growth"},
	{ID: "curiosity", Label: "Curiosity", Category: "growth"},
	{ID: "self_improvement", Label: "Becoming better every year", Category: "growth"},

	{ID: "family", Label: "Family first", Category: "connection"},
	{ID: "friendship", Label: "Deep friendship", Category: "connection"},
	{ID: "community", Label: "Belonging to a community", Category: "connection"},
	{ID: "loyalty", Label: "Loyalty", Category: "connection"},
	{ID: "love", Label: "Love", Category: "connection"},

	{ID: "independence", Label: "Independence", Category: "freedom"},
	{ID: "adventure", Label: "Adventure", Category: "freedom"},
	{ID: "spontaneity", Label: "Room for spontaneity", Category: "freedom"},
	{ID: "travel", Label: "Seeing the world", Category: "freedom"},
	{ID: "autonomy", Label: "Owning my time", Category: "freedom"},

	{ID: "security", Label: "Financial security", Category: "stability"},
	{ID: "routine", Label: "A rhythm that works", Category: "stability"},
	{ID: "home", Label: "A home base", Category: "stability"},
	{ID: "reliability", Label: "Being someone people can count on", Category: "stability"},
	{ID: "peace", Label: "Peace of mind", Category: "stability"},

	{ID: "service", Label: "Service to others", Category: "impact"},
	{ID: "leadership", Label: "Leading people somewhere better", Category: "impact"},
	{ID: "legacy", Label: "Leaving something behind", Category: "impact"},
	{ID: "justice", Label: "Fairness and justice", Category: "impact"},
	{ID: "mentorship", Label: "Bringing others up", Category: "impact"},

	{ID: "making", Label: "Making things", Category: "creativity"},
	{ID: "expression", Label: "Self-expression", Category: "creativity"},
	{ID: "beauty", Label: "Beauty in everyday life", Category: "creativity"},
	{ID: "originality", Label: "Doing it my own way", Category: "creativity"},
	{ID: "play", Label: "Play and humor", Category: "creativity"},

	{ID: "fitness", Label: "Physical strength", Category: "health"},
	{ID: "vitality", Label: "Energy and vitality", Category: "health"},
	{ID: "mindfulness", Label: "A quiet mind", Category: "health"},
	{ID: "nature", Label: "Time in nature", Category: "health"},
	{ID: "longevity", Label: "A long healthy life", Category: "health"},

	{ID: "honesty", Label: "Radical honesty", Category: "integrity"},
	{ID: "courage", Label: "Courage under pressure", Category: "integrity"},
	{ID: "humility", Label: "Humility", Category: "integrity"},
	{ID: "discipline", Label: "Discipline", Category: "integrity"},
	{ID: "authenticity", Label: "Being the same person everywhere", Category: "integrity"},
}

// ValueByID returns the value for an ID, or false when unknown.
func ValueByID(id string) (CoreValue, bool) {
	v, ok := valueIndex[id]
	return v, ok
}

// ValuesByCategory returns the values in a category, in definition order.
func ValuesByCategory(category string) []CoreValue {
	var out []CoreValue
	for _, v := range Values {
		if v.Category == category {
			out = append(out, v)
		}
	}
	return out
}

var valueIndex = func() map[string]CoreValue {
	idx := make(map[string]CoreValue, len(Values))
	for _, v := range Values {
		if _, dup := idx[v.ID]; dup {
			panic("catalog: duplicate value id " + v.ID)
		}
		idx[v.ID] = v
	}
	return idx
}()
