package store

import (
	"testing"

	"tableflip.dev/tapedeck/pkg/catalog"
)

type pathConfig string

func (p pathConfig) BasePath() string { return string(p) }

func testPersistence(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(pathConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

func TestTapesRoundTrip(t *testing.T) {
	p := testPersistence(t)

	tapes, err := p.LoadTapes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tapes) != 0 {
		t.Fatalf("fresh store must hold no tapes")
	}

	tapes = catalog.Collection{
		{
			Name:     "Video 2",
			Duration: "02:26:47",
			Format:   "8mm",
			Events: []*catalog.Event{
				{Date: "20/07/1999", Content: "Clinica", Start: "00:00:00", End: "00:09:54", Duration: "00:09:54", TagCodes: []string{"1", "2"}},
			},
		},
	}
	if err := p.SaveTapes(tapes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := p.LoadTapes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Name != "Video 2" {
		t.Fatalf("unexpected tapes: %+v", loaded)
	}
	if got := loaded[0].Events[0].TagCodes; len(got) != 2 || got[0] != "1" {
		t.Fatalf("unexpected tag codes: %v", got)
	}
}

func TestLoadTagsSeedsDefaults(t *testing.T) {
	p := testPersistence(t)

	r, err := p.LoadTags()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Tags) != 5 || r.NextID != 6 {
		t.Fatalf("expected seeded registry, got %d tags next id %d", len(r.Tags), r.NextID)
	}

	// The seed is persisted, not regenerated on every load.
	if _, err := r.Create("Nuevo", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.SaveTags(r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := p.LoadTags()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(again.Tags) != 6 || again.NextID != 7 {
		t.Fatalf("expected stored registry, got %d tags next id %d", len(again.Tags), again.NextID)
	}
}

func TestClear(t *testing.T) {
	p := testPersistence(t)
	if err := p.SaveTapes(catalog.Collection{{Name: "Video 9"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.LoadTags(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Clear(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tapes, err := p.LoadTapes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tapes) != 0 {
		t.Fatalf("expected cleared store")
	}
}
