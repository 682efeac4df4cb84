package tag

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/tapedeck/pkg/catalog"
)

// DefaultColor is assigned when a tag is created without a color.
const DefaultColor = "#667eea"

// codePoolSize bounds the integer code pool; past it codes are generated.
const codePoolSize = 100

var (
	// ErrNameRequired is returned when a tag is created or renamed with an
	// empty or whitespace-only name. The operation leaves no partial state.
	ErrNameRequired = errors.New("tag: name required")

	// ErrNotFound is returned when an id does not match a live tag.
	ErrNotFound = errors.New("tag: not found")
)

// Tag is a user-defined label. ID identifies the tag for editing; Code is the
// durable key events and exports reference. Both are immutable for the tag's
// lifetime; only Name and Color may change.
type Tag struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Code  string `json:"code"`
}

// Registry owns the live tag set and the monotonic id counter. It is the
// single authority for code allocation and the delete cascade.
type Registry struct {
	Tags   []*Tag `json:"tags"`
	NextID int    `json:"nextTagId"`
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{Tags: []*Tag{}, NextID: 1}
}

// Seed installs the default label set used when the registry loads empty.
func Seed() *Registry {
	r := NewRegistry()
	defaults := []struct {
		name  string
		color string
	}{
		{"Familia", "#667eea"},
		{"Evento", "#48bb78"},
		{"Persona", "#ed8936"},
		{"Lugar", "#9f7aea"},
		{"Fecha", "#f56565"},
	}
	for _, d := range defaults {
		_, _ = r.Create(d.name, d.color)
	}
	return r
}

// AllocateCode returns the first integer code in 1..100 not used by a live
// tag, as text. A freed code may be handed to a later tag; while a tag lives,
// its code is never reissued. When the pool is exhausted a generated
// alphanumeric code guarantees uniqueness without bound.
func (r *Registry) AllocateCode() string {
	used := make(map[int]bool, len(r.Tags))
	for _, t := range r.Tags {
		if n, err := strconv.Atoi(t.Code); err == nil {
			used[n] = true
		}
	}
	for code := 1; code <= codePoolSize; code++ {
		if !used[code] {
			return strconv.Itoa(code)
		}
	}
	return generatedCode()
}

func generatedCode() string {
	stamp := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if len(stamp) > 6 {
		stamp = stamp[len(stamp)-6:]
	}
	return fmt.Sprintf("TAG%s%03d", stamp, rand.Intn(1000))
}

// Create allocates an id and code and appends a new tag. An empty name is a
// validation failure and changes nothing. An empty color falls back to the
// default; a non-empty color must be a parseable hex value.
func (r *Registry) Create(name, color string) (*Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	color, err := normalizeColor(color)
	if err != nil {
		return nil, err
	}

	t := &Tag{
		ID:    r.NextID,
		Name:  name,
		Color: color,
		Code:  r.AllocateCode(),
	}
	r.NextID++
	r.Tags = append(r.Tags, t)
	return t, nil
}

// Rename updates a tag's display name and color in place. ID and code are
// immutable.
func (r *Registry) Rename(id int, name, color string) (*Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	color, err := normalizeColor(color)
	if err != nil {
		return nil, err
	}

	for _, t := range r.Tags {
		if t.ID == id {
			t.Name = name
			t.Color = color
			return t, nil
		}
	}
	return nil, ErrNotFound
}

// Delete removes the tag and strips its code from every event in every tape.
// The cascade is applied in memory in a single pass, so the caller observes
// it as atomic; the events themselves survive.
func (r *Registry) Delete(id int, tapes catalog.Collection) (*Tag, error) {
	var deleted *Tag
	for i, t := range r.Tags {
		if t.ID == id {
			deleted = t
			r.Tags = append(r.Tags[:i], r.Tags[i+1:]...)
			break
		}
	}
	if deleted == nil {
		return nil, ErrNotFound
	}

	for _, tape := range tapes {
		for _, e := range tape.Events {
			e.TagCodes = remove(e.TagCodes, deleted.Code)
		}
	}
	return deleted, nil
}

// Resolve looks a tag up by its durable code. A miss is an expected outcome:
// events keep codes of tags that were deleted later.
func (r *Registry) Resolve(code string) (*Tag, bool) {
	for _, t := range r.Tags {
		if t.Code == code {
			return t, true
		}
	}
	return nil, false
}

// Sorted returns the live tags ordered by the numeric value of their code,
// with non-numeric codes after all numeric ones, alphabetically by name.
func (r *Registry) Sorted() []*Tag {
	out := append([]*Tag(nil), r.Tags...)
	sort.SliceStable(out, func(i, j int) bool {
		a, aErr := strconv.Atoi(out[i].Code)
		b, bErr := strconv.Atoi(out[j].Code)
		switch {
		case aErr == nil && bErr == nil:
			return a < b
		case aErr == nil:
			return true
		case bErr == nil:
			return false
		default:
			return out[i].Name < out[j].Name
		}
	})
	return out
}

func normalizeColor(color string) (string, error) {
	color = strings.TrimSpace(color)
	if color == "" {
		return DefaultColor, nil
	}
	c, err := colorful.Hex(color)
	if err != nil {
		return "", fmt.Errorf("tag: invalid color %q: %w", color, err)
	}
	return c.Hex(), nil
}

func remove(codes []string, code string) []string {
	out := codes[:0]
	for _, c := range codes {
		if c != code {
			out = append(out, c)
		}
	}
	return out
}
