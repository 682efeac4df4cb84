package search

import (
	"reflect"
	"testing"

	"tableflip.dev/tapedeck/pkg/catalog"
)

func sampleCollection() catalog.Collection {
	return catalog.Collection{
		{
			Name: "Video 2",
			Events: []*catalog.Event{
				{Date: "20/07/1999", Content: "Mi Mama en la Clinica", Duration: "00:09:54", TagCodes: []string{"1", "2"}},
				{Date: "25/07/1999", Content: "Visita de la Ita", Duration: "00:06:54", TagCodes: []string{"3"}},
			},
		},
		{
			Name: "Video 9",
			Events: []*catalog.Event{
				{Date: "24/12/1999", Content: "Navidad 1999", Duration: "00:37:52", TagCodes: []string{"6", "8"}},
			},
		},
	}
}

func TestFilterIdentity(t *testing.T) {
	tapes := sampleCollection()
	r := Filter(tapes, "", nil)
	if r.Filtered {
		t.Fatalf("empty criteria must not mark the result filtered")
	}
	if !reflect.DeepEqual(r.Tapes, tapes) {
		t.Fatalf("identity result must be the original collection")
	}
	if &r.Tapes[0] != &tapes[0] {
		t.Fatalf("identity result must not be a projection copy")
	}
}

func TestFilterByText(t *testing.T) {
	r := Filter(sampleCollection(), "navidad", nil)
	if len(r.Tapes) != 1 || r.Tapes[0].Name != "Video 9" {
		t.Fatalf("unexpected result: %+v", r.Tapes)
	}
	if len(r.Tapes[0].Events) != 1 {
		t.Fatalf("expected single matching event")
	}
}

func TestFilterMatchesTapeName(t *testing.T) {
	r := Filter(sampleCollection(), "video 2", nil)
	if len(r.Tapes) != 1 || r.Tapes[0].Name != "Video 2" {
		t.Fatalf("unexpected result: %+v", r.Tapes)
	}
	if len(r.Tapes[0].Events) != 2 {
		t.Fatalf("a tape-name match keeps all its events, got %d", len(r.Tapes[0].Events))
	}
}

func TestFilterByTag(t *testing.T) {
	r := Filter(sampleCollection(), "", []string{"3"})
	if len(r.Tapes) != 1 || len(r.Tapes[0].Events) != 1 {
		t.Fatalf("unexpected result: %+v", r.Tapes)
	}
	if r.Tapes[0].Events[0].Content != "Visita de la Ita" {
		t.Fatalf("wrong event kept: %s", r.Tapes[0].Events[0].Content)
	}
}

func TestFilterCombinesTextAndTags(t *testing.T) {
	// The text matches both tapes; the tag narrows it to one event.
	r := Filter(sampleCollection(), "video", []string{"8"})
	if len(r.Tapes) != 1 || r.Tapes[0].Name != "Video 9" {
		t.Fatalf("unexpected result: %+v", r.Tapes)
	}
}

func TestFilterEmptyResult(t *testing.T) {
	r := Filter(sampleCollection(), "no existe", nil)
	if !r.Filtered {
		t.Fatalf("an empty filtered result is still a filtered result")
	}
	if len(r.Tapes) != 0 {
		t.Fatalf("expected no tapes, got %d", len(r.Tapes))
	}
}

func TestFilterIdempotent(t *testing.T) {
	tapes := sampleCollection()
	first := Filter(tapes, "la", []string{"1", "3"})
	second := Filter(tapes, "la", []string{"1", "3"})
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("applying the same filter twice must yield identical results")
	}
}

func TestFilterDoesNotMutateSource(t *testing.T) {
	tapes := sampleCollection()
	_ = Filter(tapes, "navidad", nil)
	if len(tapes[0].Events) != 2 || len(tapes[1].Events) != 1 {
		t.Fatalf("filtering must leave the source collection untouched")
	}
}

func TestAggregate(t *testing.T) {
	r := Result{
		Tapes: catalog.Collection{
			{Name: "A", Events: []*catalog.Event{
				{Content: "x", Duration: "00:01:00"},
				{Content: "y", Duration: "00:00:30"},
			}},
		},
		Filtered: true,
	}
	s := Aggregate(r)
	if s.TapeCount != 1 || s.EventCount != 2 {
		t.Fatalf("unexpected counts: %+v", s)
	}
	if got := s.TotalDuration(); got != "1m 30s" {
		t.Fatalf("expected 1m 30s, got %s", got)
	}
}

func TestAggregateSkipsBlankDurations(t *testing.T) {
	r := Result{
		Tapes: catalog.Collection{
			{Name: "A", Events: []*catalog.Event{
				{Content: "x", Duration: "N/A"},
				{Content: "y", Duration: ""},
				{Content: "z", Duration: "00:02:00"},
			}},
		},
		Filtered: true,
	}
	s := Aggregate(r)
	if s.EventCount != 3 {
		t.Fatalf("blank durations still count as events")
	}
	if got := s.TotalDuration(); got != "2m 0s" {
		t.Fatalf("expected 2m 0s, got %s", got)
	}
}
