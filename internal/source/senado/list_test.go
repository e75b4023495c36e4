package senado

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"

	"bills_fetcher/internal/domain"
)

//go:embed testdata/list.html
var listHTML string

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type ListParserSuite struct {
	suite.Suite
	site *Site
}

func (s *ListParserSuite) SetupTest() {
	s.site = New(DefaultConfig(), discardLogger())
}

func TestListParserSuite(t *testing.T) {
	suite.Run(t, new(ListParserSuite))
}

func (s *ListParserSuite) TestParseListPage_ReturnsRowsInDocumentOrder() {
	records, skipped, err := s.site.ParseListPage(listHTML)
	s.Require().NoError(err)
	s.Zero(skipped)
	s.Require().Len(records, 3)

	s.Equal(12, records[0].Numero.Number)
	s.Equal(98, records[1].Numero.Number)
	s.Equal(101, records[2].Numero.Number)
}

func (s *ListParserSuite) TestParseListPage_FullRow() {
	records, skipped, err := s.site.ParseListPage(listHTML)
	s.Require().NoError(err)
	s.Zero(skipped)
	s.Require().NotEmpty(records)

	want := domain.SummaryRecord{
		Committee: "PRIMERA",
		Status: domain.Status{
			State:      "Pendiente discutir ponencia para primer debate",
			Annotation: "Publicada ponencia",
		},
		Title:        "Por medio de la cual se dictan normas sobre el agua",
		Sponsors:     []string{"H.S. Maria Fernanda Cabal", "H.S. Paloma Valencia"},
		Numero:       domain.Identifier{Number: 12, Year: 2020},
		Accumulated:  []domain.Identifier{{Number: 45, Year: 2020}, {Number: 67, Year: 2020}},
		NumeroCamara: &domain.Identifier{Number: 350, Year: 2020},
		FiledAt:      time.Date(2020, time.July, 20, 0, 0, 0, 0, time.UTC),
		URL:          "http://leyes.senado.gov.co/proyectos/index.php/proyectos-ley/cuatrenio-2018-2022/2020-2021/article/12-por-medio-de-la-cual",
	}

	if diff := cmp.Diff(want, records[0]); diff != "" {
		s.Failf("unexpected record", "(-want +got):\n%s", diff)
	}
}

func (s *ListParserSuite) TestParseListPage_UnassignedCommitteeAndOptionalFields() {
	records, skipped, err := s.site.ParseListPage(listHTML)
	s.Require().NoError(err)
	s.Zero(skipped)
	s.Require().Len(records, 3)

	s.Equal(domain.UnassignedCommittee, records[1].Committee)
	s.Equal("Archivado", records[1].Status.State)
	s.Empty(records[1].Status.Annotation)
	s.Nil(records[1].NumeroCamara)
	s.Empty(records[1].Accumulated)
	s.Equal([]string{"Ministerio de Hacienda"}, records[1].Sponsors)

	s.Nil(records[2].NumeroCamara)
	s.Equal("Por la cual se promueve la conectividad rural", records[2].Title)
}

func (s *ListParserSuite) TestParseListPage_SkipsBrokenRow() {
	page := `<html><body>
<table><tr class="odd"><td>PRIMERA</td><td>Radicado</td><td>
  <h3><a href="/proyectos/1-ley">Ley uno</a></h3>
  <div><b>fecha pendiente</b><b>1/2021</b></div>
</td></tr></table>
<table><tr class="even"><td>SEGUNDA</td><td>Radicado</td><td>
  <h3><a href="/proyectos/2-ley">Ley dos</a></h3>
  <div><b>2 febrero 2021</b><b>2/2021</b></div>
</td></tr></table>
</body></html>`

	records, skipped, err := s.site.ParseListPage(page)
	s.Require().NoError(err)
	s.Equal(1, skipped)
	s.Require().Len(records, 1)
	s.Equal(domain.Identifier{Number: 2, Year: 2021}, records[0].Numero)
	s.Equal("SEGUNDA", records[0].Committee)
	s.Empty(records[0].Sponsors)
}

func (s *ListParserSuite) TestParseListPage_LogsSkippedRowIdentity() {
	var buf bytes.Buffer
	site := New(DefaultConfig(), slog.New(slog.NewJSONHandler(&buf, nil)))
	page := `<html><body>
<table><tr class="odd"><td>PRIMERA</td><td>Radicado</td><td>
  <h3><a href="/proyectos/7-ley">Ley siete</a></h3>
  <div><b>0 0000</b><b>7/2021</b></div>
</td></tr></table>
</body></html>`

	records, skipped, err := site.ParseListPage(page)
	s.Require().NoError(err)
	s.Empty(records)
	s.Equal(1, skipped)

	var entry map[string]any
	s.Require().NoError(json.Unmarshal(buf.Bytes(), &entry))
	s.Equal("skipping listing row", entry["msg"])
	s.Equal("7/2021", entry["numero"])
	s.Equal("http://leyes.senado.gov.co/proyectos/7-ley", entry["url"])
}

func (s *ListParserSuite) TestParseListPage_NoRows() {
	records, skipped, err := s.site.ParseListPage("<html><body><p>Sin resultados</p></body></html>")
	s.NoError(err)
	s.Empty(records)
	s.Zero(skipped)
}

type fixedClassifier bool

func (c fixedClassifier) IsRow(*goquery.Selection) bool { return bool(c) }

func (s *ListParserSuite) TestParseListPage_UsesConfiguredClassifier() {
	cfg := DefaultConfig()
	cfg.Classifier = fixedClassifier(false)
	site := New(cfg, discardLogger())

	records, skipped, err := site.ParseListPage(listHTML)
	s.NoError(err)
	s.Empty(records)
	s.Zero(skipped)
}

func (s *ListParserSuite) TestListURL() {
	url := s.site.ListURL(domain.Legislatura{Title: "2020-2021", Cuatrenio: "2018-2022", PageID: 96})
	s.Equal("http://leyes.senado.gov.co/proyectos/index.php/proyectos-ley/cuatrenio-2018-2022/2020-2021"+
		"?option=com_joodb&view=catalog&format=html&reset=false&task=&search=&searchfield=&limit=0", url)
	s.Equal(domain.KindLey, s.site.Kind())
}
