package transfer

import (
	"strings"

	"tableflip.dev/tapedeck/pkg/catalog"
	"tableflip.dev/tapedeck/pkg/tag"
)

// sampleCSV is the starter dataset offered when a catalog is brand new.
const sampleCSV = `Nombre_de_la_cinta,Fecha_inicio_grabacion,Fecha_termino_grabacion,Duracion_total_cinta,Formato_cinta,Velocidad_cinta,YouTube_Link,Fecha_contenido,Contenido,Inicio,Termino,Duracion_segmento,Tags
Video 2,20/07/1999,27/10/1999,02:26:47,8mm,SP,https://www.youtube.com/watch?v=ejemplo1,20/07/1999,Mi Mama en la Clinica Las Lilas,00:00:00,00:09:54,00:09:54,1|2
Video 2,20/07/1999,27/10/1999,02:26:47,8mm,SP,https://www.youtube.com/watch?v=ejemplo1,25/07/1999,Visita de la Ita y Juegos en Padre Hurtado,00:09:54,00:16:48,00:06:54,3
Video 2,20/07/1999,27/10/1999,02:26:47,8mm,SP,https://www.youtube.com/watch?v=ejemplo1,02/08/1999,Primer uso del Tripode mi Primera Grabacion,00:16:48,00:19:10,00:02:22,1
Video 3,25/09/1999,18/11/1999,02:00:00,8mm,SP,https://www.youtube.com/watch?v=ejemplo2,25/09/1999,Bautizo de la Kiara,00:00:00,00:24:04,00:24:04,4
Video 3,25/09/1999,18/11/1999,02:00:00,8mm,SP,https://www.youtube.com/watch?v=ejemplo2,25/09/1999,Fiesta en la casa de la Tia Maiga,00:24:04,01:43:41,01:19:37,4|5
Video 9,29/11/1999,31/12/1999,02:01:37,8mm,SP,,29/11/1999,EL Arbol de Pascua,00:00:00,00:02:07,00:02:07,1
Video 9,29/11/1999,31/12/1999,02:01:37,8mm,SP,,24/12/1999,Navidad 1999,00:02:07,00:39:59,00:37:52,1|2
`

// Sample parses the built-in starter dataset against the given registry.
func Sample(registry *tag.Registry) (catalog.Collection, error) {
	return Import(strings.NewReader(sampleCSV), registry)
}
