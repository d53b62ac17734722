// Package catalog holds the static assessment data: trait dimensions,
// statement pairs, presentation groups, core values, and inspirations.
// Everything here is defined at process start and never mutated.
package catalog

// TraitKey identifies one bipolar trait dimension. The set is closed:
// a key outside this list is a construction-time error, not a runtime lookup miss.
type TraitKey string

const (
	TraitIntrovertExtrovert       TraitKey = "introvert_extrovert"
	TraitSteadySprinter           TraitKey = "steady_sprinter"
	TraitLowKeyHighEnergy         TraitKey = "low_key_high_energy"
	TraitHeadHeart                TraitKey = "head_heart"
	TraitCautiousBold             TraitKey = "cautious_bold"
	TraitDataGut                  TraitKey = "data_gut"
	TraitPlannerImproviser        TraitKey = "planner_improviser"
	TraitFocusedMultitasker       TraitKey = "focused_multitasker"
	TraitFinisherStarter          TraitKey = "finisher_starter"
	TraitListenerTalker           TraitKey = "listener_talker"
	TraitSmallCircleBigCircle     TraitKey = "small_circle_big_circle"
	TraitPrivateOpen              TraitKey = "private_open"
	TraitRealistDreamer           TraitKey = "realist_dreamer"
	TraitTraditionalExperimental  TraitKey = "traditional_experimental"
	TraitCollaborativeCompetitive TraitKey = "collaborative_competitive"
)

// Category tags group traits for presentation and archetype weighting.
type Category string

const (
	CategoryEnergy   Category = "energy"
	CategoryDecision Category = "decision"
	CategoryWork     Category = "work"
	CategorySocial   Category = "social"
	CategoryApproach Category = "approach"
)

// TraitDimension is one bipolar personality axis. Score semantics downstream:
// 0 = fully left pole, 100 = fully right pole, 50 = center.
type TraitDimension struct {
	Key       TraitKey
	LeftPole  string
	RightPole string
	LeftDesc  string
	RightDesc string
	Category  Category
}

// Traits is the full fixed set of 15 dimensions, in definition order.
var Traits = []TraitDimension{
	{
		Key:       TraitIntrovertExtrovert,
		LeftPole:  "Introvert",
		RightPole: "Extrovert",
		LeftDesc:  "Recharges alone; depth over breadth in company.",
		RightDesc: "Recharges around people; energized by the room.",
		Category:  CategoryEnergy,
	},
	{
		Key:       TraitSteadySprinter,
		LeftPole:  "Steady",
		RightPole: "Sprinter",
		LeftDesc:  "Keeps an even pace day after day.",
		RightDesc: "Works in intense bursts with recovery between.",
		Category:  CategoryEnergy,
	},
	{
		Key:       TraitLowKeyHighEnergy,
		LeftPole:  "Low-key",
		RightPole: "High-energy",
		LeftDesc:  "Calm baseline; hard to rattle.",
		RightDesc: "Runs hot; brings intensity to whatever is in front of them.",
		Category:  CategoryEnergy,
	},
	{
		Key:       TraitHeadHeart,
		LeftPole:  "Head",
		RightPole: "Heart",
		LeftDesc:  "Weighs decisions on logic and consequences.",
		RightDesc: "Weighs decisions on people and feel.",
		Category:  CategoryDecision,
	},
	{
		Key:       TraitCautiousBold,
		LeftPole:  "Cautious",
		RightPole: "Bold",
		LeftDesc:  "Protects the downside first.",
		RightDesc: "Takes the swing when the upside is there.",
		Category:  CategoryDecision,
	},
	{
		Key:       TraitDataGut,
		LeftPole:  "Data",
		RightPole: "Gut",
		LeftDesc:  "Wants the numbers before committing.",
		RightDesc: "Trusts instinct built from experience.",
		Category:  CategoryDecision,
	},
	{
		Key:       TraitPlannerImproviser,
		LeftPole:  "Planner",
		RightPole: "Improviser",
		LeftDesc:  "Maps the week before living it.",
		RightDesc: "Leaves room and adapts as things come.",
		Category:  CategoryWork,
	},
	{
		Key:       TraitFocusedMultitasker,
		LeftPole:  "Single-thread",
		RightPole: "Multitasker",
		LeftDesc:  "One thing at a time, finished properly.",
		RightDesc: "Several threads running, switching freely.",
		Category:  CategoryWork,
	},
	{
		Key:       TraitFinisherStarter,
		LeftPole:  "Finisher",
		RightPole: "Starter",
		LeftDesc:  "Satisfaction comes from shipping and closing loops.",
		RightDesc: "Satisfaction comes from new ground and first drafts.",
		Category:  CategoryWork,
	},
	{
		Key:       TraitListenerTalker,
		LeftPole:  "Listener",
		RightPole: "Talker",
		LeftDesc:  "Draws people out; speaks when it counts.",
		RightDesc: "Thinks out loud; fills the space comfortably.",
		Category:  CategorySocial,
	},
	{
		Key:       TraitSmallCircleBigCircle,
		LeftPole:  "Small circle",
		RightPole: "Big circle",
		LeftDesc:  "A few close people known deeply.",
		RightDesc: "A wide network kept warm.",
		Category:  CategorySocial,
	},
	{
		Key:       TraitPrivateOpen,
		LeftPole:  "Private",
		RightPole: "Open book",
		LeftDesc:  "Shares selectively, once trust is earned.",
		RightDesc: "Shares readily; what you see is what you get.",
		Category:  CategorySocial,
	},
	{
		Key:       TraitRealistDreamer,
		LeftPole:  "Realist",
		RightPole: "Dreamer",
		LeftDesc:  "Starts from what is true today.",
		RightDesc: "Starts from what could be true someday.",
		Category:  CategoryApproach,
	},
	{
		Key:       TraitTraditionalExperimental,
		LeftPole:  "Traditional",
		RightPole: "Experimental",
		LeftDesc:  "Prefers the proven way done well.",
		RightDesc: "Prefers to try the new way and learn.",
		Category:  CategoryApproach,
	},
	{
		Key:       TraitCollaborativeCompetitive,
		LeftPole:  "Collaborative",
		RightPole: "Competitive",
		LeftDesc:  "Wins as a group or it doesn't count.",
		RightDesc: "A scoreboard sharpens everything.",
		Category:  CategoryApproach,
	},
}

// TraitByKey returns the dimension for a key, or false when unknown.
func TraitByKey(key TraitKey) (TraitDimension, bool) {
	t, ok := traitIndex[key]
	return t, ok
}

// TraitsByCategory returns the dimensions in a category, in definition order.
func TraitsByCategory(cat Category) []TraitDimension {
	var out []TraitDimension
	for _, t := range Traits {
		if t.Category == cat {
			out = append(out, t)
		}
	}
	return out
}

// TraitKeys returns all trait keys in definition order.
func TraitKeys() []TraitKey {
	keys := make([]TraitKey, len(Traits))
	for i, t := range Traits {
		keys[i] = t.Key
	}
	return keys
}

var traitIndex = func() map[TraitKey]TraitDimension {
	idx := make(map[TraitKey]TraitDimension, len(Traits))
	for _, t := range Traits {
		if _, dup := idx[t.Key]; dup {
			panic("catalog: duplicate trait key " + string(t.Key))
		}
		idx[t.Key] = t
	}
	return idx
}()
