package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bills_fetcher/internal/domain"
)

func ptr[T any](v T) *T {
	return &v
}

func sampleRows() []domain.BillRow {
	return []domain.BillRow{
		{
			Kind:           domain.KindLey,
			Numero:         "12/2020",
			NumeroCamara:   ptr("350/2020"),
			Legislatura:    "2020-2021",
			Titulo:         "Por medio de la cual se dictan normas, sobre el agua",
			Estado:         "Pendiente discutir ponencia",
			Comision:       "PRIMERA",
			FechaRadicado:  time.Date(2020, time.July, 20, 0, 0, 0, 0, time.UTC),
			Origen:         ptr("Senado"),
			FechaPrimerDeb: ptr(time.Date(2021, time.March, 15, 0, 0, 0, 0, time.UTC)),
			Autores:        "H.S. Maria Fernanda Cabal; H.S. Paloma Valencia",
			URL:            "http://leyes.senado.gov.co/proyectos/1",
		},
		{
			Kind:          domain.KindActoLegislativo,
			Numero:        "98/2020",
			Legislatura:   "2020-2021",
			Titulo:        "Por medio de la cual se modifica el codigo",
			Estado:        "Archivado",
			Comision:      domain.UnassignedCommittee,
			FechaRadicado: time.Date(2020, time.August, 3, 0, 0, 0, 0, time.UTC),
			URL:           "http://leyes.senado.gov.co/proyectos/2",
		},
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("csv")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = ParseFormat("xlsx")
	assert.Error(t, err)
}

func TestWrite_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, sampleRows()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, header, records[0])
	want := []string{
		"ley", "12/2020", "350/2020", "2020-2021",
		"Por medio de la cual se dictan normas, sobre el agua",
		"Pendiente discutir ponencia", "", "PRIMERA", "2020-07-20", "Senado", "",
		"2021-03-15", "", "H.S. Maria Fernanda Cabal; H.S. Paloma Valencia",
		"http://leyes.senado.gov.co/proyectos/1",
	}
	if diff := cmp.Diff(want, records[1]); diff != "" {
		t.Errorf("first row mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "acto-legislativo", records[2][0])
	assert.Equal(t, "NO ASIGNADA", records[2][7])
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, sampleRows()))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "12/2020", decoded[0]["numero"])
	assert.Equal(t, "acto-legislativo", decoded[1]["kind"])
	assert.Nil(t, decoded[1]["numero_camara"])
}

func TestWrite_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, nil))
	assert.JSONEq(t, "[]", buf.String())
}

func TestSummary(t *testing.T) {
	got := Summary(sampleRows())
	assert.Equal(t, map[string]map[string]int{
		"2020-2021": {"Pendiente discutir ponencia": 1, "Archivado": 1},
	}, got)
}
