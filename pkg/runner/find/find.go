// Package find implements the combined text and tag filter over the catalog.
package find

import (
	"context"
	"errors"
	"strings"

	"tableflip.dev/tapedeck/pkg/printers"
	"tableflip.dev/tapedeck/pkg/search"
	"tableflip.dev/tapedeck/pkg/store"
)

type Find struct {
	Query     string
	TagCodes  []string
	ShowLinks bool

	Persistence store.Persistence
}

func (f *Find) Do(ctx context.Context) error {
	if f.Persistence == nil {
		return errors.New("can not find, no persistence")
	}

	tapes, err := f.Persistence.LoadTapes()
	if err != nil {
		return err
	}
	registry, err := f.Persistence.LoadTags()
	if err != nil {
		return err
	}

	result := search.Filter(tapes, f.Query, f.TagCodes)
	pp := printers.PrettyPrint{ShowLinks: f.ShowLinks}

	if !result.Filtered {
		pp.Title("All tapes")
		pp.Tapes(result.Tapes)
		return nil
	}

	if len(result.Tapes) == 0 {
		pp.NoResults(f.Query, f.TagCodes)
		return nil
	}

	pp.Title(description(f.Query, f.TagCodes))
	pp.Stats(search.Aggregate(result))
	for _, t := range result.Tapes {
		pp.Tape(t, registry)
	}
	return nil
}

func description(query string, codes []string) string {
	parts := []string{}
	if strings.TrimSpace(query) != "" {
		parts = append(parts, "\""+query+"\"")
	}
	if len(codes) > 0 {
		parts = append(parts, "tags "+strings.Join(codes, ", "))
	}
	return "Results for " + strings.Join(parts, " + ")
}
