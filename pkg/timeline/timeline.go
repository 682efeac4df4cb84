// Package timeline keeps a tape's ordered event list temporally consistent
// as events are added, edited, and removed. Editing an event's end time
// cascades it into the next event's start time; durations are always derived
// from start and end, never trusted from the caller.
package timeline

import (
	"fmt"
	"strings"

	"tableflip.dev/tapedeck/pkg/catalog"
	"tableflip.dev/tapedeck/pkg/timecode"
)

// Append pushes the event onto the end of the tape's timeline. The event's
// duration is recomputed from its own start and end, then the cascade runs
// from the new index.
func Append(tape *catalog.Tape, e *catalog.Event) {
	e.Date = timecode.CanonicalDate(e.Date)
	e.Duration = timecode.ComputeDuration(e.Start, e.End)
	tape.Events = append(tape.Events, e)
	cascade(tape.Events, len(tape.Events)-1)
}

// Update replaces the event at index. A blank incoming date preserves the
// prior date at that position; no other field is defaulted from the prior
// value. Duration is recomputed and the cascade runs from index.
func Update(tape *catalog.Tape, index int, e *catalog.Event) error {
	if index < 0 || index >= len(tape.Events) {
		return fmt.Errorf("timeline: event %d out of range for %q", index, tape.Name)
	}

	e.Date = timecode.CanonicalDate(e.Date)
	if strings.TrimSpace(e.Date) == "" {
		e.Date = tape.Events[index].Date
	}
	e.Duration = timecode.ComputeDuration(e.Start, e.End)
	tape.Events[index] = e
	cascade(tape.Events, index)
	return nil
}

// Remove deletes the event at index. Removal never cascades: there is no new
// end time to propagate, so downstream start times are left untouched.
func Remove(tape *catalog.Tape, index int) error {
	if index < 0 || index >= len(tape.Events) {
		return fmt.Errorf("timeline: event %d out of range for %q", index, tape.Name)
	}
	tape.Events = append(tape.Events[:index], tape.Events[index+1:]...)
	return nil
}

// cascade pushes the event's end time into the next event's start time,
// unconditionally, then recomputes the next event's duration when it has a
// usable end. The cascade never reaches past one position.
func cascade(events []*catalog.Event, index int) {
	next := index + 1
	if next >= len(events) {
		return
	}

	events[next].Start = events[index].End
	if !timecode.IsBlank(events[next].End) {
		events[next].Duration = timecode.ComputeDuration(events[next].Start, events[next].End)
	}
}

// ResolveOriginal maps an event position inside a filtered projection back to
// the owning tape's unfiltered event list. The projection carries no stable
// index into the source, so the event is matched by its (date, content) pair.
// When no original can be located the projected tape and index are returned
// with ok false; the caller may still edit the detached copy, a known
// degradation that must not block the user action.
func ResolveOriginal(tapes catalog.Collection, projected *catalog.Tape, index int) (*catalog.Tape, int, bool) {
	if index < 0 || index >= len(projected.Events) {
		return projected, index, false
	}

	original, found := tapes.Find(projected.Name)
	if !found {
		return projected, index, false
	}

	target := projected.Events[index]
	for i, e := range original.Events {
		if e.Date == target.Date && e.Content == target.Content {
			return original, i, true
		}
	}
	return projected, index, false
}
