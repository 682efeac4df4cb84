// Package tags implements the tag registry operations, including the
// collection-wide cascade on delete.
package tags

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/tapedeck/pkg/printers"
	"tableflip.dev/tapedeck/pkg/store"
	"tableflip.dev/tapedeck/pkg/transfer"
)

// Add creates a tag with an allocated code.
type Add struct {
	Name  string
	Color string

	Persistence store.Persistence
}

func (a *Add) Do(ctx context.Context) error {
	if a.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	registry, err := a.Persistence.LoadTags()
	if err != nil {
		return err
	}
	if _, err := registry.Create(a.Name, a.Color); err != nil {
		return err
	}
	if err := a.Persistence.SaveTags(registry); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Tags(registry)
	return nil
}

// Rename updates a tag's display name and color; id and code never change.
type Rename struct {
	ID    int
	Name  string
	Color string

	Persistence store.Persistence
}

func (r *Rename) Do(ctx context.Context) error {
	if r.Persistence == nil {
		return errors.New("can not rename, no persistence")
	}

	registry, err := r.Persistence.LoadTags()
	if err != nil {
		return err
	}
	if _, err := registry.Rename(r.ID, r.Name, r.Color); err != nil {
		return err
	}
	if err := r.Persistence.SaveTags(registry); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Tags(registry)
	return nil
}

// Remove deletes a tag and strips its code from every event on every tape.
// Both domains are rewritten; the registry is saved only after the cascade
// has been applied to the catalog.
type Remove struct {
	ID int

	Persistence store.Persistence
}

func (r *Remove) Do(ctx context.Context) error {
	if r.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}

	registry, err := r.Persistence.LoadTags()
	if err != nil {
		return err
	}
	tapes, err := r.Persistence.LoadTapes()
	if err != nil {
		return err
	}

	deleted, err := registry.Delete(r.ID, tapes)
	if err != nil {
		return err
	}

	if err := r.Persistence.SaveTapes(tapes); err != nil {
		return err
	}
	if err := r.Persistence.SaveTags(registry); err != nil {
		return err
	}

	fmt.Printf("deleted tag %s (%s)\n", deleted.Name, deleted.Code)
	pp := printers.PrettyPrint{}
	pp.Tags(registry)
	return nil
}

// List prints the registry in its canonical order.
type List struct {
	Persistence store.Persistence
}

func (l *List) Do(ctx context.Context) error {
	if l.Persistence == nil {
		return errors.New("can not list, no persistence")
	}

	registry, err := l.Persistence.LoadTags()
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Tags(registry)
	return nil
}

// Export writes the registry backup as JSON to Path, or stdout when empty.
type Export struct {
	Path string

	Persistence store.Persistence
}

func (e *Export) Do(ctx context.Context) error {
	if e.Persistence == nil {
		return errors.New("can not export, no persistence")
	}

	registry, err := e.Persistence.LoadTags()
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if e.Path != "" {
		f, err := os.Create(e.Path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return transfer.ExportTags(w, registry)
}

// Import replaces the registry from a JSON backup.
type Import struct {
	Path string

	Persistence store.Persistence
}

func (i *Import) Do(ctx context.Context) error {
	if i.Persistence == nil {
		return errors.New("can not import, no persistence")
	}

	f, err := os.Open(i.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	registry, err := transfer.ImportTags(f)
	if err != nil {
		return err
	}
	if err := i.Persistence.SaveTags(registry); err != nil {
		return err
	}

	fmt.Printf("imported %d tags\n", len(registry.Tags))
	pp := printers.PrettyPrint{}
	pp.Tags(registry)
	return nil
}
