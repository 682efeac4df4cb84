// Package tape implements the tape-level catalog operations.
package tape

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/tapedeck/pkg/catalog"
	"tableflip.dev/tapedeck/pkg/printers"
	"tableflip.dev/tapedeck/pkg/store"
)

// Add registers a new tape, or rewrites an existing tape's metadata when
// Overwrite is set. Events already recorded on the tape survive an overwrite.
type Add struct {
	Name      string
	Duration  string
	Format    string
	Speed     string
	StartDate string
	EndDate   string
	VideoLink string
	Overwrite bool

	Persistence store.Persistence
}

func (a *Add) Do(ctx context.Context) error {
	if a.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	if a.Name == "" {
		return errors.New("tape name required")
	}

	tapes, err := a.Persistence.LoadTapes()
	if err != nil {
		return err
	}

	t := catalog.NewTape(a.Name, a.Duration, a.Format, a.Speed, a.StartDate, a.EndDate, a.VideoLink)

	if existing, found := tapes.Find(t.Name); found {
		if !a.Overwrite {
			return fmt.Errorf("tape %q already exists", t.Name)
		}
		t.Events = existing.Events
		for i := range tapes {
			if tapes[i] == existing {
				tapes[i] = t
			}
		}
	} else {
		if a.Overwrite {
			return fmt.Errorf("tape %q not found", t.Name)
		}
		tapes = append(tapes, t)
	}

	if err := a.Persistence.SaveTapes(tapes); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Tapes(tapes)
	return nil
}

// List prints the collection, or one tape's full timeline when Name is set.
type List struct {
	Name      string
	ShowLinks bool

	Persistence store.Persistence
}

func (l *List) Do(ctx context.Context) error {
	if l.Persistence == nil {
		return errors.New("can not list, no persistence")
	}

	tapes, err := l.Persistence.LoadTapes()
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowLinks: l.ShowLinks}

	if l.Name != "" {
		t, found := tapes.Find(l.Name)
		if !found {
			return fmt.Errorf("tape %q not found", l.Name)
		}
		registry, err := l.Persistence.LoadTags()
		if err != nil {
			return err
		}
		pp.Tape(t, registry)
		return nil
	}

	pp.Tapes(tapes)
	return nil
}

// Remove deletes a tape and every event it owns.
type Remove struct {
	Name string

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
	if !tapes.Remove(r.Name) {
		return fmt.Errorf("tape %q not found", r.Name)
	}
	if err := r.Persistence.SaveTapes(tapes); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Tapes(tapes)
	return nil
}
