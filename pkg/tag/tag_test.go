package tag

import (
	"strconv"
	"testing"

	"tableflip.dev/tapedeck/pkg/catalog"
)

func TestCreateAllocatesSequentialCodes(t *testing.T) {
	r := NewRegistry()
	for i := 1; i <= 5; i++ {
		tg, err := r.Create("Tag "+strconv.Itoa(i), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tg.Code != strconv.Itoa(i) {
			t.Fatalf("expected code %d, got %s", i, tg.Code)
		}
		if tg.ID != i {
			t.Fatalf("expected id %d, got %d", i, tg.ID)
		}
	}
}

func TestCreateRejectsBlankName(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Create("   ", ""); err != ErrNameRequired {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if len(r.Tags) != 0 || r.NextID != 1 {
		t.Fatalf("failed create must leave no partial state")
	}
}

func TestCreateRejectsInvalidColor(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Create("Familia", "not-a-color"); err == nil {
		t.Fatalf("expected error for invalid color")
	}
	if len(r.Tags) != 0 {
		t.Fatalf("failed create must leave no partial state")
	}
}

func TestAllocateReusesFreedCode(t *testing.T) {
	r := NewRegistry()
	a, _ := r.Create("A", "")
	b, _ := r.Create("B", "")
	if _, err := r.Delete(a.ID, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, _ := r.Create("C", "")
	if c.Code != a.Code {
		t.Fatalf("expected freed code %s to be reissued, got %s", a.Code, c.Code)
	}
	if c.Code == b.Code {
		t.Fatalf("live code %s must not be reissued", b.Code)
	}
}

func TestAllocateFallsBackPastPool(t *testing.T) {
	r := NewRegistry()
	for i := 1; i <= 100; i++ {
		if _, err := r.Create("Tag "+strconv.Itoa(i), ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	tg, err := r.Create("Overflow", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := strconv.Atoi(tg.Code); err == nil {
		t.Fatalf("expected non-numeric fallback code, got %s", tg.Code)
	}
	seen := make(map[string]bool, len(r.Tags))
	for _, existing := range r.Tags {
		if seen[existing.Code] {
			t.Fatalf("duplicate code %s", existing.Code)
		}
		seen[existing.Code] = true
	}
}

func TestRenameKeepsIdentity(t *testing.T) {
	r := NewRegistry()
	tg, _ := r.Create("Familia", "#667eea")
	renamed, err := r.Rename(tg.ID, "Parientes", "#48bb78")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if renamed.ID != tg.ID || renamed.Code != tg.Code {
		t.Fatalf("rename must not change id or code")
	}
	if renamed.Name != "Parientes" || renamed.Color != "#48bb78" {
		t.Fatalf("rename did not apply: %+v", renamed)
	}
}

func TestDeleteCascadesAcrossTapes(t *testing.T) {
	r := NewRegistry()
	a, _ := r.Create("A", "")
	b, _ := r.Create("B", "")

	tapes := catalog.Collection{
		{Name: "Video 2", Events: []*catalog.Event{
			{Content: "clinica", TagCodes: []string{a.Code, b.Code}},
		}},
		{Name: "Video 9", Events: []*catalog.Event{
			{Content: "navidad", TagCodes: []string{a.Code}},
			{Content: "pascua", TagCodes: []string{b.Code}},
		}},
	}

	if _, err := r.Delete(a.ID, tapes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := tapes[0].Events[0].TagCodes; len(got) != 1 || got[0] != b.Code {
		t.Fatalf("cascade left %v on first event", got)
	}
	if got := tapes[1].Events[0].TagCodes; len(got) != 0 {
		t.Fatalf("cascade left %v on second tape", got)
	}
	if got := tapes[1].Events[1].TagCodes; len(got) != 1 || got[0] != b.Code {
		t.Fatalf("cascade removed an unrelated code: %v", got)
	}
	if _, ok := r.Resolve(a.Code); ok {
		t.Fatalf("deleted tag still resolves")
	}
}

func TestResolveMissIsAbsent(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Resolve("99"); ok {
		t.Fatalf("expected resolve miss")
	}
}

func TestSortedOrdersNumericThenName(t *testing.T) {
	r := &Registry{
		Tags: []*Tag{
			{ID: 1, Name: "Zeta", Code: "TAGX1"},
			{ID: 2, Name: "Diez", Code: "10"},
			{ID: 3, Name: "Dos", Code: "2"},
			{ID: 4, Name: "Alfa", Code: "TAGA9"},
		},
		NextID: 5,
	}
	got := r.Sorted()
	want := []string{"2", "10", "TAGA9", "TAGX1"}
	for i, code := range want {
		if got[i].Code != code {
			t.Fatalf("position %d: expected %s, got %s", i, code, got[i].Code)
		}
	}
}

func TestSeedDefaults(t *testing.T) {
	r := Seed()
	if len(r.Tags) != 5 {
		t.Fatalf("expected 5 default tags, got %d", len(r.Tags))
	}
	if r.NextID != 6 {
		t.Fatalf("expected next id 6, got %d", r.NextID)
	}
	if r.Tags[0].Name != "Familia" || r.Tags[0].Code != "1" {
		t.Fatalf("unexpected first default: %+v", r.Tags[0])
	}
}
