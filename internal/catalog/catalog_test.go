package catalog

import (
	"testing"
)

func TestTraitByKey(t *testing.T) {
	tr, ok := TraitByKey(TraitIntrovertExtrovert)
	if !ok {
		t.Fatal("expected introvert_extrovert to exist")
	}
	if tr.LeftPole != "Introvert" || tr.RightPole != "Extrovert" {
		t.Errorf("unexpected poles: %q / %q", tr.LeftPole, tr.RightPole)
	}
	if tr.Category != CategoryEnergy {
		t.Errorf("expected energy category, got %q", tr.Category)
	}

	if _, ok := TraitByKey("no_such_trait"); ok {
		t.Error("expected unknown key to return false")
	}
}

func TestTraitSetIsComplete(t *testing.T) {
	if len(Traits) != 15 {
		t.Fatalf("expected 15 trait dimensions, got %d", len(Traits))
	}

	perCategory := map[Category]int{}
	for _, tr := range Traits {
		perCategory[tr.Category]++
	}
	for _, cat := range []Category{CategoryEnergy, CategoryDecision, CategoryWork, CategorySocial, CategoryApproach} {
		if perCategory[cat] != 3 {
			t.Errorf("expected 3 traits in %q, got %d", cat, perCategory[cat])
		}
	}
}

func TestTraitsByCategory_Order(t *testing.T) {
	work := TraitsByCategory(CategoryWork)
	if len(work) != 3 {
		t.Fatalf("expected 3 work traits, got %d", len(work))
	}
	if work[0].Key != TraitPlannerImproviser {
		t.Errorf("expected definition order preserved, got %q first", work[0].Key)
	}
}

func TestStatementByTrait(t *testing.T) {
	for _, tr := range Traits {
		p, ok := StatementByTrait(tr.Key)
		if !ok {
			t.Fatalf("missing statement pair for %q", tr.Key)
		}
		if p.Left == "" || p.Right == "" {
			t.Errorf("empty statement text for %q", tr.Key)
		}
		if p.Category != tr.Category {
			t.Errorf("statement category %q does not match trait category %q for %q", p.Category, tr.Category, tr.Key)
		}
	}

	if _, ok := StatementByTrait("no_such_trait"); ok {
		t.Error("expected unknown key to return false")
	}
}

func TestGroupsCoverAllTraits(t *testing.T) {
	seen := map[TraitKey]int{}
	for _, g := range Groups {
		if g.Title == "" {
			t.Error("group with empty title")
		}
		for _, k := range g.Traits {
			seen[k]++
		}
	}
	for _, tr := range Traits {
		if seen[tr.Key] != 1 {
			t.Errorf("trait %q appears in %d groups, want exactly 1", tr.Key, seen[tr.Key])
		}
	}
}

func TestValuesCatalog(t *testing.T) {
	if len(Values) != 40 {
		t.Fatalf("expected 40 values, got %d", len(Values))
	}
	for _, cat := range ValueCategories {
		if got := len(ValuesByCategory(cat)); got != 5 {
			t.Errorf("expected 5 values in %q, got %d", cat, got)
		}
	}

	v, ok := ValueByID("discipline")
	if !ok || v.Category != "integrity" {
		t.Errorf("expected discipline in integrity, got %+v ok=%v", v, ok)
	}
	if _, ok := ValueByID("nope"); ok {
		t.Error("expected unknown value id to return false")
	}
}

func TestInspirationsCatalog(t *testing.T) {
	if len(Inspirations) < 15 {
		t.Fatalf("expected a usable inspiration catalog, got %d entries", len(Inspirations))
	}
	i, ok := InspirationByID("ada_lovelace")
	if !ok || i.Category != "builders" {
		t.Errorf("expected ada_lovelace in builders, got %+v ok=%v", i, ok)
	}
	if _, ok := InspirationByID("nope"); ok {
		t.Error("expected unknown inspiration id to return false")
	}
}
