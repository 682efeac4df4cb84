package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/tapedeck/pkg/catalog"
	"tableflip.dev/tapedeck/pkg/link"
	"tableflip.dev/tapedeck/pkg/search"
	"tableflip.dev/tapedeck/pkg/tag"
	"tableflip.dev/tapedeck/pkg/timecode"
)

type PrettyPrint struct {
	ShowLinks bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// TitleWithCount prints a tape heading with its event count.
func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" event")
	default:
		_, _ = c.Println(" events")
	}
}

// Tapes prints the collection overview table.
func (pp *PrettyPrint) Tapes(tapes catalog.Collection) {
	if len(tapes) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no tapes\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("Tape"), bold("Duration"), bold("Format"), bold("Speed"), bold("Recorded"), bold("Events"))
	for _, t := range tapes {
		period := fmt.Sprintf("%s - %s", timecode.DisplayDate(t.StartDate), timecode.DisplayDate(t.EndDate))
		tbl.AddRow(t.Name, timecode.DisplayTime(t.Duration), t.Format, t.Speed, period, len(t.Events))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Tape prints one tape with its full timeline.
func (pp *PrettyPrint) Tape(t *catalog.Tape, registry *tag.Registry) {
	pp.TitleWithCount(t.Name, len(t.Events))
	pp.Events(t, registry)
}

// Events prints a tape's event timeline. Tag codes resolve to colored
// swatches; codes whose tag was deleted render as nothing.
func (pp *PrettyPrint) Events(t *catalog.Tape, registry *tag.Registry) {
	if len(t.Events) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no events\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60

	header := []interface{}{bold("#"), bold("Date"), bold("Start"), bold("End"), bold("Duration"), bold("Content"), bold("Tags")}
	if pp.ShowLinks && t.VideoLink != "" {
		header = append(header, bold("Link"))
	}
	tbl.AddRow(header...)

	for i, e := range t.Events {
		row := []interface{}{
			i,
			timecode.DisplayDate(e.Date),
			timecode.DisplayTime(e.Start),
			timecode.DisplayTime(e.End),
			timecode.DisplayTime(e.Duration),
			e.Content,
			tagSwatches(e.TagCodes, registry),
		}
		if pp.ShowLinks && t.VideoLink != "" {
			row = append(row, link.Timestamped(t.VideoLink, e.Start))
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Tags prints the registry in its canonical order.
func (pp *PrettyPrint) Tags(registry *tag.Registry) {
	if len(registry.Tags) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no tags\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("Code"), bold("Name"), bold("Color"), bold("ID"))
	for _, t := range registry.Sorted() {
		tbl.AddRow(t.Code, t.Name, swatch(t.Color)+" "+t.Color, t.ID)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Stats prints the aggregates beneath a filtered result.
func (pp *PrettyPrint) Stats(s search.Stats) {
	f := color.New(color.Faint)
	_, _ = f.Printf("tapes: %d  events: %d  total duration: %s\n\n", s.TapeCount, s.EventCount, s.TotalDuration())
}

// NoResults prints the empty-result notice, which is distinct from an
// unfiltered view.
func (pp *PrettyPrint) NoResults(query string, codes []string) {
	f := color.New(color.Faint, color.Italic)
	parts := []string{}
	if strings.TrimSpace(query) != "" {
		parts = append(parts, fmt.Sprintf("query %q", query))
	}
	if len(codes) > 0 {
		parts = append(parts, fmt.Sprintf("tags %s", strings.Join(codes, ", ")))
	}
	_, _ = f.Printf(" no events match %s\n\n", strings.Join(parts, " and "))
}

func bold(s string) string {
	return color.New(color.Bold).Sprint(s)
}

// tagSwatches joins one swatch per resolvable code. A resolution miss is an
// absent decoration, not an error.
func tagSwatches(codes []string, registry *tag.Registry) string {
	if registry == nil {
		return strings.Join(codes, " ")
	}
	parts := make([]string, 0, len(codes))
	for _, code := range codes {
		t, ok := registry.Resolve(code)
		if !ok {
			continue
		}
		parts = append(parts, swatch(t.Color)+" "+t.Name)
	}
	return strings.Join(parts, "  ")
}

// swatch renders a hex color as a true-color terminal block.
func swatch(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "●"
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm●\x1b[0m", r, g, b)
}
