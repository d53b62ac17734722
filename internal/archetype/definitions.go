// Package archetype maps a finished trait vector onto the fixed archetype
// set and produces the ranked blend.
package archetype

import (
	"github.com/inward-labs/inward/internal/catalog"
)

// Name identifies one archetype. The set is closed and definition order is
// the deterministic tie-break for blend ranking.
type Name string

const (
	Sage      Name = "Sage"
	Explorer  Name = "Explorer"
	Architect Name = "Architect"
	Anchor    Name = "Anchor"
	Visionary Name = "Visionary"
	Captain   Name = "Captain"
)

// VoiceTemplate is the raw material the voice generator works from.
// Phrases may contain {name}, {value}, and {inspiration} tokens.
type VoiceTemplate struct {
	Tone            string
	MotivationStyle string
	Phrases         []string
}

// Definition is one reference personality: a target score over every trait
// dimension plus the voice template associated with it.
type Definition struct {
	Name    Name
	Tagline string
	Targets map[catalog.TraitKey]float64
	Voice   VoiceTemplate
}

// Definitions is the fixed archetype set, in tie-break order.
var Definitions = []Definition{
	{
		Name:    Sage,
		Tagline: "Depth, patience, and a long view.",
		Targets: map[catalog.TraitKey]float64{
			catalog.TraitIntrovertExtrovert:       20,
			catalog.TraitSteadySprinter:           35,
			catalog.TraitLowKeyHighEnergy:         25,
			catalog.TraitHeadHeart:                25,
			catalog.TraitCautiousBold:             35,
			catalog.TraitDataGut:                  25,
			catalog.TraitPlannerImproviser:        30,
			catalog.TraitFocusedMultitasker:       20,
			catalog.TraitFinisherStarter:          40,
			catalog.TraitListenerTalker:           20,
			catalog.TraitSmallCircleBigCircle:     20,
			catalog.TraitPrivateOpen:              25,
			catalog.TraitRealistDreamer:           40,
			catalog.TraitTraditionalExperimental:  40,
			catalog.TraitCollaborativeCompetitive: 40,
		},
		Voice: VoiceTemplate{
			Tone:            "measured and thoughtful",
			MotivationStyle: "quiet reflection and steady progress",
			Phrases: []string{
				"Take a breath, {name}. What does the evidence actually say?",
				"You chose {value} as a core value — today is a good day to practice it deliberately.",
				"{inspiration} got there with patience, not noise. Same road is open to you.",
				"One well-made decision beats ten rushed ones.",
			},
		},
	},
	{
		Name:    Explorer,
		Tagline: "New ground, light pack, open ending.",
		Targets: map[catalog.TraitKey]float64{
			catalog.TraitIntrovertExtrovert:       65,
			catalog.TraitSteadySprinter:           70,
			catalog.TraitLowKeyHighEnergy:         70,
			catalog.TraitHeadHeart:                55,
			catalog.TraitCautiousBold:             80,
			catalog.TraitDataGut:                  70,
			catalog.TraitPlannerImproviser:        80,
			catalog.TraitFocusedMultitasker:       65,
			catalog.TraitFinisherStarter:          75,
			catalog.TraitListenerTalker:           60,
			catalog.TraitSmallCircleBigCircle:     65,
			catalog.TraitPrivateOpen:              65,
			catalog.TraitRealistDreamer:           65,
			catalog.TraitTraditionalExperimental:  85,
			catalog.TraitCollaborativeCompetitive: 50,
		},
		Voice: VoiceTemplate{
			Tone:            "upbeat and curious",
			MotivationStyle: "novelty and forward motion",
			Phrases: []string{
				"What's one thing you've never tried that you could try today, {name}?",
				"{value} isn't something you have, it's something you do. Go do it.",
				"{inspiration} didn't wait for perfect conditions. Neither should you.",
				"The detour usually has the best view.",
				"Done is a direction, not a destination.",
			},
		},
	},
	{
		Name:    Architect,
		Tagline: "A plan, a system, a finished thing.",
		Targets: map[catalog.TraitKey]float64{
			catalog.TraitIntrovertExtrovert:       35,
			catalog.TraitSteadySprinter:           25,
			catalog.TraitLowKeyHighEnergy:         35,
			catalog.TraitHeadHeart:                15,
			catalog.TraitCautiousBold:             45,
			catalog.TraitDataGut:                  15,
			catalog.TraitPlannerImproviser:        10,
			catalog.TraitFocusedMultitasker:       25,
			catalog.TraitFinisherStarter:          15,
			catalog.TraitListenerTalker:           35,
			catalog.TraitSmallCircleBigCircle:     35,
			catalog.TraitPrivateOpen:              35,
			catalog.TraitRealistDreamer:           25,
			catalog.TraitTraditionalExperimental:  45,
			catalog.TraitCollaborativeCompetitive: 55,
		},
		Voice: VoiceTemplate{
			Tone:            "clear and structured",
			MotivationStyle: "plans turned into finished work",
			Phrases: []string{
				"What's the next concrete step, {name}? Name it and schedule it.",
				"Systems beat willpower. Build the system that makes {value} automatic.",
				"{inspiration} shipped. That's the whole secret.",
				"If it's not on the calendar, it's a wish.",
			},
		},
	},
	{
		Name:    Anchor,
		Tagline: "Steady hands, warm table, people first.",
		Targets: map[catalog.TraitKey]float64{
			catalog.TraitIntrovertExtrovert:       35,
			catalog.TraitSteadySprinter:           25,
			catalog.TraitLowKeyHighEnergy:         30,
			catalog.TraitHeadHeart:                80,
			catalog.TraitCautiousBold:             35,
			catalog.TraitDataGut:                  55,
			catalog.TraitPlannerImproviser:        40,
			catalog.TraitFocusedMultitasker:       40,
			catalog.TraitFinisherStarter:          45,
			catalog.TraitListenerTalker:           15,
			catalog.TraitSmallCircleBigCircle:     20,
			catalog.TraitPrivateOpen:              55,
			catalog.TraitRealistDreamer:           45,
			catalog.TraitTraditionalExperimental:  35,
			catalog.TraitCollaborativeCompetitive: 15,
		},
		Voice: VoiceTemplate{
			Tone:            "warm and encouraging",
			MotivationStyle: "care for the people around you",
			Phrases: []string{
				"Who matters most to you this week, {name}? Start there.",
				"Living {value} quietly counts double.",
				"{inspiration} showed up for people, year after year. That's the kind of strength you have.",
				"Small kindnesses compound.",
			},
		},
	},
	{
		Name:    Visionary,
		Tagline: "Starts from someday, works backward.",
		Targets: map[catalog.TraitKey]float64{
			catalog.TraitIntrovertExtrovert:       45,
			catalog.TraitSteadySprinter:           65,
			catalog.TraitLowKeyHighEnergy:         60,
			catalog.TraitHeadHeart:                60,
			catalog.TraitCautiousBold:             70,
			catalog.TraitDataGut:                  75,
			catalog.TraitPlannerImproviser:        60,
			catalog.TraitFocusedMultitasker:       60,
			catalog.TraitFinisherStarter:          85,
			catalog.TraitListenerTalker:           55,
			catalog.TraitSmallCircleBigCircle:     55,
			catalog.TraitPrivateOpen:              60,
			catalog.TraitRealistDreamer:           90,
			catalog.TraitTraditionalExperimental:  75,
			catalog.TraitCollaborativeCompetitive: 45,
		},
		Voice: VoiceTemplate{
			Tone:            "expansive and imaginative",
			MotivationStyle: "the pull of what could be",
			Phrases: []string{
				"Picture the version of you five years out, {name}. What would they start today?",
				"{value} is the thread — follow where it wants to lead.",
				"{inspiration} saw it before anyone else did. You're allowed to do the same.",
				"Big pictures are built one strange little sketch at a time.",
			},
		},
	},
	{
		Name:    Captain,
		Tagline: "Sets the pace, keeps the score.",
		Targets: map[catalog.TraitKey]float64{
			catalog.TraitIntrovertExtrovert:       80,
			catalog.TraitSteadySprinter:           55,
			catalog.TraitLowKeyHighEnergy:         75,
			catalog.TraitHeadHeart:                40,
			catalog.TraitCautiousBold:             75,
			catalog.TraitDataGut:                  55,
			catalog.TraitPlannerImproviser:        35,
			catalog.TraitFocusedMultitasker:       55,
			catalog.TraitFinisherStarter:          30,
			catalog.TraitListenerTalker:           80,
			catalog.TraitSmallCircleBigCircle:     75,
			catalog.TraitPrivateOpen:              55,
			catalog.TraitRealistDreamer:           40,
			catalog.TraitTraditionalExperimental:  55,
			catalog.TraitCollaborativeCompetitive: 85,
		},
		Voice: VoiceTemplate{
			Tone:            "direct and energizing",
			MotivationStyle: "goals with a scoreboard",
			Phrases: []string{
				"What's the win condition today, {name}?",
				"{value} is your standard. Hold the line on it.",
				"{inspiration} played to win. So do you — pick the game.",
				"Momentum loves a deadline.",
			},
		},
	},
}

// ByName returns the definition for a name, or false when unknown.
func ByName(name Name) (Definition, bool) {
	d, ok := defIndex[name]
	return d, ok
}

var defIndex = func() map[Name]Definition {
	idx := make(map[Name]Definition, len(Definitions))
	for _, d := range Definitions {
		if _, dup := idx[d.Name]; dup {
			panic("archetype: duplicate definition " + string(d.Name))
		}
		if len(d.Targets) != len(catalog.Traits) {
			panic("archetype: " + string(d.Name) + " target vector does not cover all traits")
		}
		for key := range d.Targets {
			if _, ok := catalog.TraitByKey(key); !ok {
				panic("archetype: " + string(d.Name) + " targets unknown trait " + string(key))
			}
		}
		if len(d.Voice.Phrases) < 3 {
			panic("archetype: " + string(d.Name) + " needs at least 3 phrase templates")
		}
		idx[d.Name] = d
	}
	return idx
}()
