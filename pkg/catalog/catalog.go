package catalog

import (
	"strings"

	"tableflip.dev/tapedeck/pkg/timecode"
)

// Tape is a cataloged physical recording. Its name is the unique key within
// the collection; the event list is ordered by position on the physical tape,
// not by calendar date.
type Tape struct {
	Name      string   `json:"name"`
	Duration  string   `json:"duration,omitempty"`
	Format    string   `json:"format,omitempty"`
	Speed     string   `json:"speed,omitempty"`
	StartDate string   `json:"startDate,omitempty"`
	EndDate   string   `json:"endDate,omitempty"`
	VideoLink string   `json:"videoLink,omitempty"`
	Events    []*Event `json:"events"`
}

// Event is a timestamped content segment within a tape's recorded timeline.
// Start and End are offsets from the beginning of the tape; Duration is
// derived from them and overwritten on every edit. TagCodes are weak
// references into the tag registry: a code may outlive its tag.
type Event struct {
	Date     string   `json:"date,omitempty"`
	Content  string   `json:"content"`
	Start    string   `json:"start,omitempty"`
	End      string   `json:"end,omitempty"`
	Duration string   `json:"duration,omitempty"`
	TagCodes []string `json:"tags,omitempty"`
}

// NewTape creates an empty tape with its dates normalized to the catalog's
// canonical DD/MM/YYYY form.
func NewTape(name, duration, format, speed, startDate, endDate, videoLink string) *Tape {
	return &Tape{
		Name:      strings.TrimSpace(name),
		Duration:  strings.TrimSpace(duration),
		Format:    strings.TrimSpace(format),
		Speed:     strings.TrimSpace(speed),
		StartDate: timecode.CanonicalDate(startDate),
		EndDate:   timecode.CanonicalDate(endDate),
		VideoLink: strings.TrimSpace(videoLink),
		Events:    []*Event{},
	}
}

// HasTag reports whether the event references any of the given tag codes.
func (e *Event) HasTag(codes []string) bool {
	for _, want := range codes {
		for _, code := range e.TagCodes {
			if code == want {
				return true
			}
		}
	}
	return false
}

// Clone returns a deep copy of the event.
func (e *Event) Clone() *Event {
	c := *e
	c.TagCodes = append([]string(nil), e.TagCodes...)
	return &c
}

// Collection is the full set of cataloged tapes, in user order.
type Collection []*Tape

// Find locates a tape by its name key.
func (c Collection) Find(name string) (*Tape, bool) {
	for _, t := range c {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// Remove deletes the named tape and all events it owns. It reports whether a
// tape was removed.
func (c *Collection) Remove(name string) bool {
	for i, t := range *c {
		if t.Name == name {
			*c = append((*c)[:i], (*c)[i+1:]...)
			return true
		}
	}
	return false
}

// EventCount totals the events across every tape.
func (c Collection) EventCount() int {
	n := 0
	for _, t := range c {
		n += len(t.Events)
	}
	return n
}
