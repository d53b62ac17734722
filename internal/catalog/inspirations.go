package catalog

// Inspiration is an admired figure users can select during onboarding.
// Users pick between five and ten.
type Inspiration struct {
	ID       string
	Name     string
	Category string
	Known    string // one-line "known for"
}

// Inspirations is the curated list, grouped by category in definition order.
var Inspirations = []Inspiration{
	{ID: "marie_curie", Name: "Marie Curie", Category: "thinkers", Known: "Two Nobel prizes, one relentless mind"},
	{ID: "richard_feynman", Name: "Richard Feynman", Category: "thinkers", Known: "Physics explained with joy"},
	{ID: "carl_sagan", Name: "Carl Sagan", Category: "thinkers", Known: "Made the cosmos feel personal"},
	{ID: "hannah_arendt", Name: "Hannah Arendt", Category: "thinkers", Known: "Thought clearly when it was hardest"},

	{ID: "maya_angelou", Name: "Maya Angelou", Category: "artists", Known: "Turned a life into poetry"},
	{ID: "hayao_miyazaki", Name: "Hayao Miyazaki", Category: "artists", Known: "Craft and wonder, frame by frame"},
	{ID: "georgia_okeeffe", Name: "Georgia O'Keeffe", Category: "artists", Known: "Saw what everyone else walked past"},
	{ID: "lin_manuel_miranda", Name: "Lin-Manuel Miranda", Category: "artists", Known: "History retold at full speed"},

	{ID: "serena_williams", Name: "Serena Williams", Category: "athletes", Known: "Two decades at the top"},
	{ID: "eliud_kipchoge", Name: "Eliud Kipchoge", Category: "athletes", Known: "No human is limited"},
	{ID: "simone_biles", Name: "Simone Biles", Category: "athletes", Known: "Redefined what the sport allows"},

	{ID: "nelson_mandela", Name: "Nelson Mandela", Category: "leaders", Known: "Patience, then reconciliation"},
	{ID: "jacinda_ardern", Name: "Jacinda Ardern", Category: "leaders", Known: "Led with steadiness and heart"},
	{ID: "abraham_lincoln", Name: "Abraham Lincoln", Category: "leaders", Known: "Held a country together"},

	{ID: "ada_lovelace", Name: "Ada Lovelace", Category: "builders", Known: "Saw software a century early"},
	{ID: "yvon_chouinard", Name: "Yvon Chouinard", Category: "builders", Known: "Built a company worth believing in"},
	{ID: "grace_hopper", Name: "Grace Hopper", Category: "builders", Known: "Ask forgiveness, not permission"},

	{ID: "ernest_shackleton", Name: "Ernest Shackleton", Category: "explorers", Known: "Brought every man home"},
	{ID: "jane_goodall", Name: "Jane Goodall", Category: "explorers", Known: "Decades of patient observation"},
	{ID: "amelia_earhart", Name: "Amelia Earhart", Category: "explorers", Known: "Flew where no one had"},
}

// InspirationByID returns the inspiration for an ID, or false when unknown.
func InspirationByID(id string) (Inspiration, bool) {
	i, ok := inspirationIndex[id]
	return i, ok
}

// InspirationsByCategory returns the inspirations in a category, in definition order.
func InspirationsByCategory(category string) []Inspiration {
	var out []Inspiration
	for _, i := range Inspirations {
		if i.Category == category {
			out = append(out, i)
		}
	}
	return out
}

var inspirationIndex = func() map[string]Inspiration {
	idx := make(map[string]Inspiration, len(Inspirations))
	for _, i := range Inspirations {
		if _, dup := idx[i.ID]; dup {
			panic("catalog: duplicate inspiration id " + i.ID)
		}
		idx[i.ID] = i
	}
	return idx
}()
