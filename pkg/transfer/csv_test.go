package transfer

import (
	"bytes"
	"strings"
	"testing"

	"tableflip.dev/tapedeck/pkg/catalog"
	"tableflip.dev/tapedeck/pkg/tag"
)

const importFixture = `Nombre_de_la_cinta,Fecha_inicio_grabacion,Fecha_termino_grabacion,Duracion_total_cinta,Formato_cinta,Velocidad_cinta,YouTube_Link,Fecha_contenido,Contenido,Inicio,Termino,Duracion_segmento,Tags
Video 2,20/07/1999,27/10/1999,02:26:47,8mm,SP,https://youtu.be/abc,20/07/1999,Clinica Las Lilas,00:00:00,00:09:54,00:09:54,1|Evento
Video 2,20/07/1999,27/10/1999,02:26:47,8mm,SP,https://youtu.be/abc,25/07/1999,Padre Hurtado,00:09:54,00:16:48,00:06:54,desconocido
Video 5,01/01/2000,,02:00:00,VHS,LP,,,,,,,
`

func testRegistry(t *testing.T) *tag.Registry {
	t.Helper()
	r := tag.NewRegistry()
	if _, err := r.Create("Familia", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.Create("Evento", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return r
}

func TestImportGroupsRowsByTape(t *testing.T) {
	tapes, err := Import(strings.NewReader(importFixture), testRegistry(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tapes) != 2 {
		t.Fatalf("expected 2 tapes, got %d", len(tapes))
	}
	if tapes[0].Name != "Video 2" || len(tapes[0].Events) != 2 {
		t.Fatalf("unexpected first tape: %+v", tapes[0])
	}
	if tapes[1].Name != "Video 5" || len(tapes[1].Events) != 0 {
		t.Fatalf("metadata-only rows must not create events: %+v", tapes[1])
	}
	if tapes[0].Format != "8mm" || tapes[1].Speed != "LP" {
		t.Fatalf("tape metadata not captured")
	}
}

func TestImportResolvesTagValues(t *testing.T) {
	tapes, err := Import(strings.NewReader(importFixture), testRegistry(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// "1" resolves by exact code, "Evento" by name.
	first := tapes[0].Events[0].TagCodes
	if len(first) != 2 || first[0] != "1" || first[1] != "2" {
		t.Fatalf("unexpected tag codes: %v", first)
	}

	// An unresolved value passes through as a literal code.
	second := tapes[0].Events[1].TagCodes
	if len(second) != 1 || second[0] != "desconocido" {
		t.Fatalf("unexpected tag codes: %v", second)
	}
}

func TestExportRoundTrip(t *testing.T) {
	registry := testRegistry(t)
	tapes := catalog.Collection{
		{
			Name: "Video 9", Duration: "02:01:37", Format: "8mm", Speed: "SP",
			StartDate: "29/11/1999", EndDate: "31/12/1999",
			Events: []*catalog.Event{
				{Date: "24/12/1999", Content: "Navidad 1999", Start: "00:02:07", End: "00:39:59", Duration: "00:37:52", TagCodes: []string{"1", "2"}},
			},
		},
		{Name: "Video 5", Duration: "02:00:00", Format: "VHS", Events: []*catalog.Event{}},
	}

	var buf bytes.Buffer
	if err := Export(&buf, tapes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], "1|2") {
		t.Fatalf("expected pipe-joined tag codes in %q", lines[1])
	}

	back, err := Import(&buf, registry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(back) != 2 || len(back[0].Events) != 1 {
		t.Fatalf("round trip lost data: %+v", back)
	}
	if got := back[0].Events[0].TagCodes; len(got) != 2 || got[0] != "1" || got[1] != "2" {
		t.Fatalf("round trip changed tag codes: %v", got)
	}
}

func TestTagBackupRoundTrip(t *testing.T) {
	registry := testRegistry(t)

	var buf bytes.Buffer
	if err := ExportTags(&buf, registry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	back, err := ImportTags(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(back.Tags) != 2 || back.NextID != registry.NextID {
		t.Fatalf("unexpected registry: %+v", back)
	}
}

func TestImportTagsRecoversCounter(t *testing.T) {
	in := `{"tags":[{"id":4,"name":"Lugar","color":"#9f7aea","code":"4"}]}`
	back, err := ImportTags(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.NextID != 5 {
		t.Fatalf("expected recovered next id 5, got %d", back.NextID)
	}
}

func TestSample(t *testing.T) {
	tapes, err := Sample(tag.Seed())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tapes) != 3 {
		t.Fatalf("expected 3 sample tapes, got %d", len(tapes))
	}
	if tapes.EventCount() != 7 {
		t.Fatalf("expected 7 sample events, got %d", tapes.EventCount())
	}
}
