package catalog

// StatementPair holds the two independently-worded statements for one trait.
// Left is phrased to elicit agreement from someone leaning toward the left
// pole, Right toward the right pole. Each is rated 1-5 on its own.
type StatementPair struct {
	Trait    TraitKey
	Left     string
	Right    string
	Category Category
}

// Statements maps every trait to its statement pair. Exactly one pair per trait.
var Statements = []StatementPair{
	{
		Trait:    TraitIntrovertExtrovert,
		Left:     "A full day around people leaves me needing time alone to recover.",
		Right:    "Being around people gives me energy, even after a long day.",
		Category: CategoryEnergy,
	},
	{
		Trait:    TraitSteadySprinter,
		Left:     "I do my best work at a consistent, sustainable pace.",
		Right:    "I do my best work in intense pushes, then I need to recover.",
		Category: CategoryEnergy,
	},
	{
		Trait:    TraitLowKeyHighEnergy,
		Left:     "People would describe me as calm and even-keeled.",
		Right:    "People would describe me as intense and animated.",
		Category: CategoryEnergy,
	},
	{
		Trait:    TraitHeadHeart,
		Left:     "When a decision is hard, I list the pros and cons and follow the logic.",
		Right:    "When a decision is hard, I go with what feels right for the people involved.",
		Category: CategoryDecision,
	},
	{
		Trait:    TraitCautiousBold,
		Left:     "I'd rather miss an opportunity than take a risk that could set me back.",
		Right:    "I'd rather take the risk than wonder what would have happened.",
		Category: CategoryDecision,
	},
	{
		Trait:    TraitDataGut,
		Left:     "I don't commit to something important without looking at the numbers.",
		Right:    "My first instinct about something is usually the one I should trust.",
		Category: CategoryDecision,
	},
	{
		Trait:    TraitPlannerImproviser,
		Left:     "My week goes better when I've planned it out in advance.",
		Right:    "Too much planning drains the life out of my week.",
		Category: CategoryWork,
	},
	{
		Trait:    TraitFocusedMultitasker,
		Left:     "I'm at my best with one clear priority and no distractions.",
		Right:    "I'm at my best juggling several things and switching between them.",
		Category: CategoryWork,
	},
	{
		Trait:    TraitFinisherStarter,
		Left:     "Nothing beats the feeling of finally shipping something and closing it out.",
		Right:    "Nothing beats the feeling of starting something brand new.",
		Category: CategoryWork,
	},
	{
		Trait:    TraitListenerTalker,
		Left:     "In a group conversation, I mostly listen and speak up when it matters.",
		Right:    "In a group conversation, I do a lot of the talking.",
		Category: CategorySocial,
	},
	{
		Trait:    TraitSmallCircleBigCircle,
		Left:     "I'd rather have three close friends than thirty acquaintances.",
		Right:    "I love having a wide circle and staying in touch with lots of people.",
		Category: CategorySocial,
	},
	{
		Trait:    TraitPrivateOpen,
		Left:     "It takes me a while to open up about personal things.",
		Right:    "I'll tell almost anyone almost anything about myself.",
		Category: CategorySocial,
	},
	{
		Trait:    TraitRealistDreamer,
		Left:     "I focus on what's realistic before I let myself imagine what's possible.",
		Right:    "I start from the big dream and work backward to reality.",
		Category: CategoryApproach,
	},
	{
		Trait:    TraitTraditionalExperimental,
		Left:     "If the established way works, I see no reason to change it.",
		Right:    "I'll try the unproven way just to see what happens.",
		Category: CategoryApproach,
	},
	{
		Trait:    TraitCollaborativeCompetitive,
		Left:     "I care more about the team winning than about my own score.",
		Right:    "A little competition brings out my best.",
		Category: CategoryApproach,
	},
}

// StatementGroup is one screen of the assessment: an ordered set of traits
// presented together, with display copy.
type StatementGroup struct {
	Title       string
	Description string
	Traits      []TraitKey
}

// Groups is the ordered walk through the assessment. Every trait key appears
// in exactly one group; the union equals the full trait set.
var Groups = []StatementGroup{
	{
		Title:       "Energy",
		Description: "How you recharge and the pace you naturally keep.",
		Traits:      []TraitKey{TraitIntrovertExtrovert, TraitSteadySprinter, TraitLowKeyHighEnergy},
	},
	{
		Title:       "Decisions",
		Description: "What you reach for when the call is hard.",
		Traits:      []TraitKey{TraitHeadHeart, TraitCautiousBold, TraitDataGut},
	},
	{
		Title:       "Work",
		Description: "How you structure your days and what finishing means to you.",
		Traits:      []TraitKey{TraitPlannerImproviser, TraitFocusedMultitasker, TraitFinisherStarter},
	},
	{
		Title:       "People",
		Description: "How you show up in a room and who you keep close.",
		Traits:      []TraitKey{TraitListenerTalker, TraitSmallCircleBigCircle, TraitPrivateOpen},
	},
	{
		Title:       "Approach",
		Description: "How you meet the world: what is, or what could be.",
		Traits:      []TraitKey{TraitRealistDreamer, TraitTraditionalExperimental, TraitCollaborativeCompetitive},
	},
}

// StatementByTrait returns the statement pair for a trait, or false when unknown.
func StatementByTrait(key TraitKey) (StatementPair, bool) {
	p, ok := statementIndex[key]
	return p, ok
}

var statementIndex = func() map[TraitKey]StatementPair {
	idx := make(map[TraitKey]StatementPair, len(Statements))
	for _, p := range Statements {
		if _, known := traitIndex[p.Trait]; !known {
			panic("catalog: statement for unknown trait " + string(p.Trait))
		}
		if _, dup := idx[p.Trait]; dup {
			panic("catalog: duplicate statement pair for " + string(p.Trait))
		}
		idx[p.Trait] = p
	}
	if len(idx) != len(Traits) {
		panic("catalog: statement pairs do not cover all traits")
	}
	return idx
}()

// Group membership check runs at init so a trait missing from (or repeated
// across) the groups fails at startup, not mid-assessment.
var _ = func() bool {
	seen := make(map[TraitKey]bool, len(Traits))
	for _, g := range Groups {
		for _, k := range g.Traits {
			if _, known := traitIndex[k]; !known {
				panic("catalog: group references unknown trait " + string(k))
			}
			if seen[k] {
				panic("catalog: trait in more than one group: " + string(k))
			}
			seen[k] = true
		}
	}
	if len(seen) != len(Traits) {
		panic("catalog: groups do not cover all traits")
	}
	return true
}()
