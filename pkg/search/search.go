// Package search filters the tape collection by free text and tag codes and
// computes aggregate statistics over the result.
package search

import (
	"strings"

	"tableflip.dev/tapedeck/pkg/catalog"
	"tableflip.dev/tapedeck/pkg/timecode"
)

// Result is a transient projection of the collection: each included tape
// carries only the events that matched. It must never be written back to the
// persisted store; edits made while viewing a projection are redirected to
// the original tape via timeline.ResolveOriginal.
type Result struct {
	Tapes catalog.Collection

	// Filtered distinguishes an empty result from "no filter applied".
	Filtered bool
}

// Stats are the aggregates over a result set, recomputed fresh on every
// filter invocation.
type Stats struct {
	TapeCount    int
	EventCount   int
	TotalMinutes float64
}

// TotalDuration renders the aggregate duration in the compact human form.
func (s Stats) TotalDuration() string {
	return timecode.FormatMinutes(s.TotalMinutes)
}

// Filter keeps each event that satisfies both predicates: the query is empty
// or appears case-insensitively in the event content or the tape name, AND
// the tag selection is empty or intersects the event's tag codes. A tape is
// included when at least one of its events survives, with event order
// preserved. Both criteria empty is the identity: the original collection is
// returned as-is, not copied into a projection.
func Filter(tapes catalog.Collection, query string, codes []string) Result {
	query = strings.TrimSpace(query)
	if query == "" && len(codes) == 0 {
		return Result{Tapes: tapes}
	}

	needle := strings.ToLower(query)
	out := make(catalog.Collection, 0, len(tapes))
	for _, tape := range tapes {
		nameMatch := strings.Contains(strings.ToLower(tape.Name), needle)

		var kept []*catalog.Event
		for _, e := range tape.Events {
			textMatch := needle == "" || nameMatch ||
				strings.Contains(strings.ToLower(e.Content), needle)
			tagMatch := len(codes) == 0 || e.HasTag(codes)
			if textMatch && tagMatch {
				kept = append(kept, e)
			}
		}
		if len(kept) == 0 {
			continue
		}

		projected := *tape
		projected.Events = kept
		out = append(out, &projected)
	}
	return Result{Tapes: out, Filtered: true}
}

// Aggregate computes the statistics over a result set. Events whose duration
// is blank or the N/A sentinel contribute nothing.
func Aggregate(r Result) Stats {
	s := Stats{TapeCount: len(r.Tapes)}
	for _, tape := range r.Tapes {
		s.EventCount += len(tape.Events)
		for _, e := range tape.Events {
			if timecode.IsBlank(e.Duration) {
				continue
			}
			s.TotalMinutes += timecode.ToMinutes(e.Duration)
		}
	}
	return s
}
