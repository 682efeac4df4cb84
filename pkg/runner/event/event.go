// Package event implements the per-tape timeline operations, including the
// cascade that keeps adjacent event times consistent.
package event

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/tapedeck/pkg/catalog"
	"tableflip.dev/tapedeck/pkg/printers"
	"tableflip.dev/tapedeck/pkg/search"
	"tableflip.dev/tapedeck/pkg/store"
	"tableflip.dev/tapedeck/pkg/timeline"
)

// Add appends an event to the end of a tape's timeline.
type Add struct {
	Tape     string
	Date     string
	Content  string
	Start    string
	End      string
	TagCodes []string

	Persistence store.Persistence
}

func (a *Add) Do(ctx context.Context) error {
	if a.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	tapes, err := a.Persistence.LoadTapes()
	if err != nil {
		return err
	}
	t, found := tapes.Find(a.Tape)
	if !found {
		return fmt.Errorf("tape %q not found", a.Tape)
	}

	timeline.Append(t, &catalog.Event{
		Date:     a.Date,
		Content:  a.Content,
		Start:    a.Start,
		End:      a.End,
		TagCodes: a.TagCodes,
	})

	if err := a.Persistence.SaveTapes(tapes); err != nil {
		return err
	}
	return printTape(a.Persistence, t)
}

// Edit replaces the event at Index. When Query or FilterTags are set, Index
// addresses the position within that filtered view, the way the user last saw
// it, and the edit is redirected to the owning tape's original event. When no
// original can be matched the edit proceeds against the detached copy and a
// warning is printed; the action is never blocked.
type Edit struct {
	Tape     string
	Index    int
	Date     string
	Content  string
	Start    string
	End      string
	TagCodes []string

	Query      string
	FilterTags []string

	Persistence store.Persistence
}

func (e *Edit) Do(ctx context.Context) error {
	if e.Persistence == nil {
		return errors.New("can not edit, no persistence")
	}

	tapes, err := e.Persistence.LoadTapes()
	if err != nil {
		return err
	}

	t, index, err := e.target(tapes)
	if err != nil {
		return err
	}

	update := &catalog.Event{
		Date:     e.Date,
		Content:  e.Content,
		Start:    e.Start,
		End:      e.End,
		TagCodes: e.TagCodes,
	}
	if err := timeline.Update(t, index, update); err != nil {
		return err
	}

	if err := e.Persistence.SaveTapes(tapes); err != nil {
		return err
	}
	return printTape(e.Persistence, t)
}

// target resolves which tape and index the edit applies to.
func (e *Edit) target(tapes catalog.Collection) (*catalog.Tape, int, error) {
	if e.Query == "" && len(e.FilterTags) == 0 {
		t, found := tapes.Find(e.Tape)
		if !found {
			return nil, 0, fmt.Errorf("tape %q not found", e.Tape)
		}
		if e.Index < 0 || e.Index >= len(t.Events) {
			return nil, 0, fmt.Errorf("event %d out of range for %q", e.Index, e.Tape)
		}
		return t, e.Index, nil
	}

	result := search.Filter(tapes, e.Query, e.FilterTags)
	projected, found := result.Tapes.Find(e.Tape)
	if !found {
		return nil, 0, fmt.Errorf("tape %q not in the filtered view", e.Tape)
	}
	if e.Index < 0 || e.Index >= len(projected.Events) {
		return nil, 0, fmt.Errorf("event %d out of range in the filtered view of %q", e.Index, e.Tape)
	}

	t, index, ok := timeline.ResolveOriginal(tapes, projected, e.Index)
	if !ok {
		fmt.Fprintf(os.Stderr, "warning: event not found on the original tape, editing a detached copy\n")
	}
	return t, index, nil
}

// Remove deletes the event at Index. Removal does not cascade.
type Remove struct {
	Tape  string
	Index int

	Persistence store.Persistence
}

func (r *Remove) Do(ctx context.Context) error {
	if r.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}

	tapes, err := r.Persistence.LoadTapes()
	if err != nil {
		return err
	}
	t, found := tapes.Find(r.Tape)
	if !found {
		return fmt.Errorf("tape %q not found", r.Tape)
	}
	if err := timeline.Remove(t, r.Index); err != nil {
		return err
	}

	if err := r.Persistence.SaveTapes(tapes); err != nil {
		return err
	}
	return printTape(r.Persistence, t)
}

func printTape(p store.Persistence, t *catalog.Tape) error {
	registry, err := p.LoadTags()
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Tape(t, registry)
	return nil
}
