// Package backup implements CSV export and import of the whole catalog.
package backup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/tapedeck/pkg/catalog"
	"tableflip.dev/tapedeck/pkg/printers"
	"tableflip.dev/tapedeck/pkg/store"
	"tableflip.dev/tapedeck/pkg/tag"
	"tableflip.dev/tapedeck/pkg/transfer"
)

// Export writes the row-per-event CSV backup to Path, or stdout when empty.
type Export struct {
	Path string

	Persistence store.Persistence
}

func (e *Export) Do(ctx context.Context) error {
	if e.Persistence == nil {
		return errors.New("can not export, no persistence")
	}

	tapes, err := e.Persistence.LoadTapes()
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
	return transfer.Export(w, tapes)
}

// Import replaces the catalog from a CSV backup, or from the built-in sample
// dataset when Sample is set.
type Import struct {
	Path   string
	Sample bool

	Persistence store.Persistence
}

func (i *Import) Do(ctx context.Context) error {
	if i.Persistence == nil {
		return errors.New("can not import, no persistence")
	}

	registry, err := i.Persistence.LoadTags()
	if err != nil {
		return err
	}

	tapes, err := i.load(registry)
	if err != nil {
		return err
	}
	if err := i.Persistence.SaveTapes(tapes); err != nil {
		return err
	}

	fmt.Printf("imported %d tapes, %d events\n", len(tapes), tapes.EventCount())
	pp := printers.PrettyPrint{}
	pp.Tapes(tapes)
	return nil
}

func (i *Import) load(registry *tag.Registry) (catalog.Collection, error) {
	if i.Sample {
		return transfer.Sample(registry)
	}
	f, err := os.Open(i.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return transfer.Import(f, registry)
}
