package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/tapedeck/pkg/catalog"
	"tableflip.dev/tapedeck/pkg/tag"
)

// The catalog and the tag registry live under independent keys so that either
// domain can be rewritten without touching the other.
const (
	tapesKey = "tapes"
	tagsKey  = "tags"
)

// Persistence defines the persistence contract for the tape catalog and the
// tag registry. Only this boundary can fail; when a write fails the in-memory
// state stays authoritative and the caller may retry.
type Persistence interface {
	LoadTapes() (catalog.Collection, error)
	SaveTapes(tapes catalog.Collection) error
	LoadTags() (*tag.Registry, error)
	SaveTags(r *tag.Registry) error
	Clear() error
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

type persistence struct {
	d *diskv.Diskv
}

func (p *persistence) LoadTapes() (catalog.Collection, error) {
	if !p.d.Has(tapesKey) {
		return catalog.Collection{}, nil
	}
	val, err := p.d.Read(tapesKey)
	if err != nil {
		return nil, fmt.Errorf("store: read tapes: %w", err)
	}
	var tapes catalog.Collection
	if err := json.Unmarshal(val, &tapes); err != nil {
		return nil, fmt.Errorf("store: decode tapes: %w", err)
	}
	return tapes, nil
}

func (p *persistence) SaveTapes(tapes catalog.Collection) error {
	if tapes == nil {
		tapes = catalog.Collection{}
	}
	data, err := json.Marshal(tapes)
	if err != nil {
		return err
	}
	if err := p.d.Write(tapesKey, data); err != nil {
		return fmt.Errorf("store: write tapes: %w", err)
	}
	return nil
}

// LoadTags returns the stored registry, seeding the default tag set when the
// store holds none.
func (p *persistence) LoadTags() (*tag.Registry, error) {
	if !p.d.Has(tagsKey) {
		r := tag.Seed()
		if err := p.SaveTags(r); err != nil {
			return nil, err
		}
		return r, nil
	}
	val, err := p.d.Read(tagsKey)
	if err != nil {
		return nil, fmt.Errorf("store: read tags: %w", err)
	}
	r := &tag.Registry{}
	if err := json.Unmarshal(val, r); err != nil {
		return nil, fmt.Errorf("store: decode tags: %w", err)
	}
	if r.Tags == nil {
		r.Tags = []*tag.Tag{}
	}
	if r.NextID < 1 {
		r.NextID = nextIDAfter(r)
	}
	return r, nil
}

func (p *persistence) SaveTags(r *tag.Registry) error {
	if r == nil {
		return errors.New("store: registry required")
	}
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	if err := p.d.Write(tagsKey, data); err != nil {
		return fmt.Errorf("store: write tags: %w", err)
	}
	return nil
}

func (p *persistence) Clear() error {
	for _, key := range []string{tapesKey, tagsKey} {
		if !p.d.Has(key) {
			continue
		}
		if err := p.d.Erase(key); err != nil {
			return fmt.Errorf("store: erase %s: %w", key, err)
		}
	}
	return nil
}

func nextIDAfter(r *tag.Registry) int {
	next := 1
	for _, t := range r.Tags {
		if t.ID >= next {
			next = t.ID + 1
		}
	}
	return next
}
