package archetype

// pairKey identifies an ordered (primary, secondary) combination.
type pairKey struct {
	primary   Name
	secondary Name
}

// curatedNames holds the hand-written display names for common pairs.
// Any pair without an entry falls back to the generic blend string.
var curatedNames = map[pairKey]string{
	{Sage, Architect}:      "The Quiet Strategist",
	{Architect, Sage}:      "The Master Builder",
	{Sage, Anchor}:         "The Keeper",
	{Anchor, Sage}:         "The Still Harbor",
	{Sage, Visionary}:      "The Seer",
	{Visionary, Sage}:      "The Deep Dreamer",
	{Explorer, Visionary}:  "The Pathfinder",
	{Visionary, Explorer}:  "The Horizon Chaser",
	{Explorer, Captain}:    "The Trailblazer",
	{Captain, Explorer}:    "The Vanguard",
	{Architect, Captain}:   "The Operator",
	{Captain, Architect}:   "The Field General",
	{Anchor, Explorer}:     "The Warm Compass",
	{Explorer, Anchor}:     "The Wandering Hearth",
	{Anchor, Captain}:      "The Shepherd",
	{Captain, Anchor}:      "The Rallying Point",
	{Visionary, Architect}: "The Blueprint Dreamer",
	{Architect, Visionary}: "The Grand Designer",
}

// displayName returns the curated name for a pair, or the generic fallback.
func displayName(primary, secondary Name) string {
	if name, ok := curatedNames[pairKey{primary, secondary}]; ok {
		return name
	}
	return string(primary) + " blended with " + string(secondary)
}
