package menu

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func sectionsWithIDs(ids ...string) []Section {
	out := make([]Section, len(ids))
	for i, id := range ids {
		out[i] = Section{ID: id, Title: id}
	}
	return out
}

func TestBuildRegistryInterleavesAdditions(t *testing.T) {
	cat := &Catalog{
		Sections:       sectionsWithIDs("s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8"),
		PizzaAdditions: &Section{ID: "pizza-add", Title: "Pizza additions"},
		CrepeAdditions: &Section{ID: "crepe-add", Title: "Crepe additions"},
	}
	reg, err := BuildRegistry(cat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"s1", "s2", "s3", "s4", "pizza-add", "s5", "s6", "s7", "s8", "crepe-add"}
	got := reg.IDs()
	if len(got) != len(want) {
		t.Fatalf("expected %d ids, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %q, got %q (all %v)", i, want[i], got[i], got)
		}
	}
	add, ok := reg.Find("pizza-add")
	if !ok || !add.Addition {
		t.Fatalf("expected pizza additions to be flagged as addition, got %#v", add)
	}
	if add.Glyph() != DefaultEmoji {
		t.Fatalf("expected default glyph for addition, got %q", add.Glyph())
	}
}

func TestBuildRegistryShortCatalog(t *testing.T) {
	cat := &Catalog{
		Sections:       sectionsWithIDs("a", "b"),
		PizzaAdditions: &Section{ID: "extras"},
	}
	reg, err := BuildRegistry(cat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := reg.IDs()
	if len(got) != 3 || got[2] != "extras" {
		t.Fatalf("expected additions after the available sections, got %v", got)
	}
}

func TestNewRegistryRejectsInvalidInput(t *testing.T) {
	if _, err := NewRegistry(nil); !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
	if _, err := NewRegistry(sectionsWithIDs("a", "a")); !errors.Is(err, ErrDuplicateSection) {
		t.Fatalf("expected ErrDuplicateSection, got %v", err)
	}
	if _, err := NewRegistry([]Section{{ID: "  ", Title: "blank"}}); !errors.Is(err, ErrMissingSectionID) {
		t.Fatalf("expected ErrMissingSectionID, got %v", err)
	}
}

func TestRegistryLookups(t *testing.T) {
	reg, err := NewRegistry(sectionsWithIDs("a", "b", "c"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg.Len() != 3 || !reg.Contains("b") || reg.Contains("z") {
		t.Fatalf("unexpected lookup results")
	}
	if reg.IndexOf("c") != 2 || reg.IndexOf("missing") != -1 {
		t.Fatalf("unexpected IndexOf results")
	}
	if next, ok := reg.Next("a"); !ok || next.ID != "b" {
		t.Fatalf("expected b after a, got %#v", next)
	}
	if _, ok := reg.Next("c"); ok {
		t.Fatalf("expected no section after the last one")
	}
	if first, ok := reg.Next(""); !ok || first.ID != "a" {
		t.Fatalf("expected first section for empty id, got %#v", first)
	}
	if prev, ok := reg.Prev(""); !ok || prev.ID != "c" {
		t.Fatalf("expected last section for empty id, got %#v", prev)
	}
	if _, ok := reg.Prev("a"); ok {
		t.Fatalf("expected no section before the first one")
	}
	secs := reg.Sections()
	secs[0].ID = "mutated"
	if reg.IDs()[0] != "a" {
		t.Fatalf("expected Sections to return a copy")
	}
}

func TestDefaultCatalogBuildsTenSections(t *testing.T) {
	cat, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	reg, err := BuildRegistry(cat)
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	if reg.Len() != 10 {
		t.Fatalf("expected 10 navigable sections, got %d", reg.Len())
	}
	if sec, _ := reg.At(4); !sec.Addition {
		t.Fatalf("expected the fifth section to be an addition card, got %#v", sec)
	}
	if sec, _ := reg.At(9); !sec.Addition {
		t.Fatalf("expected the last section to be an addition card, got %#v", sec)
	}
}

func TestLoadCatalogFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.yaml")
	doc := []byte("name: Test\nsections:\n  - id: one\n    title: One\n    items:\n      - name: Tea\n        prices: [\"5\"]\n")
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cat, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cat.Name != "Test" || len(cat.Sections) != 1 || cat.Sections[0].Dishes[0].Prices[0] != "5" {
		t.Fatalf("unexpected catalog %#v", cat)
	}
	if _, err := LoadCatalog(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := ParseCatalog([]byte("name: empty\n")); !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestShortLabelTruncatesByDisplayWidth(t *testing.T) {
	sec := Section{ID: "x", Title: "A very long section title", Emoji: "🍕"}
	got := sec.ShortLabel(10)
	if got == sec.Label() {
		t.Fatalf("expected truncation, got %q", got)
	}
	if sec.ShortLabel(0) != sec.Label() {
		t.Fatalf("expected no truncation for width 0")
	}
}
