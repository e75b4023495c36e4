// Package report writes stored bills out as CSV or JSON.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"bills_fetcher/internal/domain"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatCSV, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown report format %q (want csv or json)", s)
}

var header = []string{
	"tipo",
	"numero",
	"numero_camara",
	"legislatura",
	"titulo",
	"estado",
	"estado_anotacion",
	"comision",
	"fecha_radicado",
	"origen",
	"tipo_ley",
	"fecha_aprobacion_primer_debate",
	"fecha_aprobacion_segundo_debate",
	"autores",
	"url",
}

func Write(w io.Writer, format Format, rows []domain.BillRow) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, rows)
	case FormatCSV:
		return writeCSV(w, rows)
	}
	return fmt.Errorf("unknown report format %q", format)
}

func writeJSON(w io.Writer, rows []domain.BillRow) error {
	if rows == nil {
		rows = []domain.BillRow{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func writeCSV(w io.Writer, rows []domain.BillRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			string(r.Kind),
			r.Numero,
			deref(r.NumeroCamara),
			r.Legislatura,
			r.Titulo,
			r.Estado,
			deref(r.EstadoAnotacion),
			r.Comision,
			r.FechaRadicado.Format(time.DateOnly),
			deref(r.Origen),
			deref(r.TipoLey),
			date(r.FechaPrimerDeb),
			date(r.FechaSegundoDeb),
			r.Autores,
			r.URL,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %s: %w", r.Numero, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Summary counts bills per legislatura and state.
func Summary(rows []domain.BillRow) map[string]map[string]int {
	out := make(map[string]map[string]int)
	for _, r := range rows {
		byState, ok := out[r.Legislatura]
		if !ok {
			byState = make(map[string]int)
			out[r.Legislatura] = byState
		}
		byState[r.Estado]++
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func date(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.DateOnly)
}
