// Package transfer moves the catalog in and out of the row-per-event CSV
// backup format, and the tag registry in and out of its JSON form.
package transfer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"tableflip.dev/tapedeck/pkg/catalog"
	"tableflip.dev/tapedeck/pkg/tag"
)

// Header is the canonical column set. Rows repeat the tape metadata per
// event; an eventless tape exports a single metadata-only row.
var Header = []string{
	"Nombre_de_la_cinta",
	"Fecha_inicio_grabacion",
	"Fecha_termino_grabacion",
	"Duracion_total_cinta",
	"Formato_cinta",
	"Velocidad_cinta",
	"YouTube_Link",
	"Fecha_contenido",
	"Contenido",
	"Inicio",
	"Termino",
	"Duracion_segmento",
	"Tags",
}

// tagSeparator joins multiple tag values inside the single Tags column.
const tagSeparator = "|"

// Import reads the CSV backup format into a collection, grouping rows by tape
// name in first-seen order. A row contributes an event only when its content
// column is non-blank. Tag values resolve against the registry by exact code,
// then by exact name, then by literal numeric code; unresolved values pass
// through unchanged as literal codes.
func Import(r io.Reader, registry *tag.Registry) (catalog.Collection, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("transfer: read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	if _, ok := col["Nombre_de_la_cinta"]; !ok {
		return nil, fmt.Errorf("transfer: missing Nombre_de_la_cinta column")
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	tapes := catalog.Collection{}
	byName := make(map[string]*catalog.Tape)

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("transfer: read row: %w", err)
		}

		name := field(row, "Nombre_de_la_cinta")
		t, ok := byName[name]
		if !ok {
			t = &catalog.Tape{
				Name:      name,
				Duration:  field(row, "Duracion_total_cinta"),
				StartDate: field(row, "Fecha_inicio_grabacion"),
				EndDate:   field(row, "Fecha_termino_grabacion"),
				Format:    field(row, "Formato_cinta"),
				Speed:     field(row, "Velocidad_cinta"),
				VideoLink: field(row, "YouTube_Link"),
				Events:    []*catalog.Event{},
			}
			byName[name] = t
			tapes = append(tapes, t)
		}

		content := field(row, "Contenido")
		if content == "" {
			continue
		}

		t.Events = append(t.Events, &catalog.Event{
			Date:     field(row, "Fecha_contenido"),
			Content:  content,
			Start:    field(row, "Inicio"),
			End:      field(row, "Termino"),
			Duration: field(row, "Duracion_segmento"),
			TagCodes: resolveTagValues(field(row, "Tags"), registry),
		})
	}

	return tapes, nil
}

// resolveTagValues maps the pipe-joined Tags column to durable tag codes.
func resolveTagValues(raw string, registry *tag.Registry) []string {
	codes := []string{}
	for _, value := range strings.Split(raw, tagSeparator) {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		codes = append(codes, resolveTagValue(value, registry))
	}
	return codes
}

func resolveTagValue(value string, registry *tag.Registry) string {
	if registry == nil {
		return value
	}
	if t, ok := registry.Resolve(value); ok {
		return t.Code
	}
	for _, t := range registry.Tags {
		if t.Name == value {
			return t.Code
		}
	}
	// A numeric-looking value that matches no live tag stays a literal code;
	// the reference may resolve again if the tag is recreated.
	return value
}

// Export writes the collection in the backup format. Tag codes are exported
// as-is, blanks dropped.
func Export(w io.Writer, tapes catalog.Collection) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("transfer: write header: %w", err)
	}

	for _, t := range tapes {
		if len(t.Events) == 0 {
			if err := cw.Write(tapeRow(t, nil)); err != nil {
				return fmt.Errorf("transfer: write row: %w", err)
			}
			continue
		}
		for _, e := range t.Events {
			if err := cw.Write(tapeRow(t, e)); err != nil {
				return fmt.Errorf("transfer: write row: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func tapeRow(t *catalog.Tape, e *catalog.Event) []string {
	row := []string{t.Name, t.StartDate, t.EndDate, t.Duration, t.Format, t.Speed, t.VideoLink, "", "", "", "", "", ""}
	if e == nil {
		return row
	}
	codes := make([]string, 0, len(e.TagCodes))
	for _, c := range e.TagCodes {
		if strings.TrimSpace(c) != "" {
			codes = append(codes, c)
		}
	}
	row[7] = e.Date
	row[8] = e.Content
	row[9] = e.Start
	row[10] = e.End
	row[11] = e.Duration
	row[12] = strings.Join(codes, tagSeparator)
	return row
}

// registryFile is the JSON shape of a tag backup.
type registryFile struct {
	Tags       []*tag.Tag `json:"tags"`
	NextTagID  int        `json:"nextTagId"`
	ExportDate string     `json:"exportDate,omitempty"`
}

// ExportTags writes the registry as JSON alongside its next-id counter.
func ExportTags(w io.Writer, r *tag.Registry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(registryFile{
		Tags:       r.Tags,
		NextTagID:  r.NextID,
		ExportDate: time.Now().UTC().Format(time.RFC3339),
	})
}

// ImportTags reads a tag backup. A missing next-id counter is recovered from
// the highest imported id.
func ImportTags(r io.Reader) (*tag.Registry, error) {
	var file registryFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("transfer: decode tags: %w", err)
	}
	if file.Tags == nil {
		return nil, fmt.Errorf("transfer: tag backup holds no tags field")
	}
	reg := &tag.Registry{Tags: file.Tags, NextID: file.NextTagID}
	if reg.NextID < 1 {
		for _, t := range reg.Tags {
			if t.ID >= reg.NextID {
				reg.NextID = t.ID + 1
			}
		}
		if reg.NextID < 1 {
			reg.NextID = 1
		}
	}
	return reg, nil
}
