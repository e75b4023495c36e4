package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summaryFixture() *SummaryRecord {
	return &SummaryRecord{
		Committee:   "PRIMERA",
		Status:      Status{State: "Pendiente", Annotation: "Discutir ponencia"},
		Title:       "Por medio de la cual se dictan normas",
		Sponsors:    []string{"Maria Fernanda Cabal", "Paloma Valencia"},
		Numero:      Identifier{Number: 12, Year: 2020},
		Accumulated: []Identifier{{Number: 45, Year: 2020}, {Number: 67, Year: 2020}},
		FiledAt:     time.Date(2020, time.July, 20, 0, 0, 0, 0, time.UTC),
		URL:         "http://leyes.senado.gov.co/proyectos/index.php/12-2020",
	}
}

func TestSummaryFingerprint_IgnoresOrder(t *testing.T) {
	a := summaryFixture()
	b := summaryFixture()
	b.Sponsors = []string{"Paloma Valencia", "Maria Fernanda Cabal"}
	b.Accumulated = []Identifier{{Number: 67, Year: 2020}, {Number: 45, Year: 2020}}

	ha, err := a.Fingerprint()
	require.NoError(t, err)
	hb, err := b.Fingerprint()
	require.NoError(t, err)

	assert.Equal(t, ha, hb)
	assert.Len(t, ha, 64)
}

func TestSummaryFingerprint_ChangesWithTitle(t *testing.T) {
	a := summaryFixture()
	b := summaryFixture()
	b.Title = "Otro titulo"

	ha, err := a.Fingerprint()
	require.NoError(t, err)
	hb, err := b.Fingerprint()
	require.NoError(t, err)

	assert.NotEqual(t, ha, hb)
}

func TestDetailFingerprint_OptionalFields(t *testing.T) {
	filed := time.Date(2021, time.March, 15, 0, 0, 0, 0, time.UTC)
	a := &DetailRecord{Numero: Identifier{Number: 1, Year: 2021}, FiledAt: filed}
	b := &DetailRecord{Numero: Identifier{Number: 1, Year: 2021}, FiledAt: filed}

	ha, err := a.Fingerprint()
	require.NoError(t, err)
	hb, err := b.Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, ha, hb)

	link := "/documentos/ponencia.pdf"
	b.Publications.PrimeraPonencia = &link
	hb, err = b.Fingerprint()
	require.NoError(t, err)
	assert.NotEqual(t, ha, hb)
}

func TestSameNames(t *testing.T) {
	assert.True(t, SameNames([]string{"Alvaro Uribe", "Gustavo Petro"}, []string{"Gustavo Petro", "Alvaro Uribe"}))
	assert.False(t, SameNames([]string{"Alvaro Uribe"}, []string{"Alvaro Uribe", "Gustavo Petro"}))
	assert.True(t, SameNames(nil, []string{}))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("full")
	require.NoError(t, err)
	assert.True(t, m.IncludesList())
	assert.True(t, m.IncludesDetail())

	m, err = ParseMode("detail-only")
	require.NoError(t, err)
	assert.False(t, m.IncludesList())

	_, err = ParseMode("everything")
	assert.Error(t, err)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("acto-legislativo")
	require.NoError(t, err)
	assert.Equal(t, KindActoLegislativo, k)

	_, err = ParseKind("decreto")
	assert.Error(t, err)
}

func TestIdentifierString(t *testing.T) {
	assert.Equal(t, "12/2020", Identifier{Number: 12, Year: 2020}.String())
}
