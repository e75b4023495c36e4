package senado

import (
	_ "embed"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"

	"bills_fetcher/internal/domain"
)

//go:embed testdata/detail.html
var detailHTML string

const filingDateRow = `<tr><td>Fecha de Presentación:</td><td>20 julio 2020</td></tr>`

func ptr[T any](v T) *T {
	return &v
}

type DetailParserSuite struct {
	suite.Suite
	site *Site
}

func (s *DetailParserSuite) SetupTest() {
	s.site = New(DefaultConfig(), discardLogger())
}

func TestDetailParserSuite(t *testing.T) {
	suite.Run(t, new(DetailParserSuite))
}

func (s *DetailParserSuite) TestParseDetailPage() {
	got, err := s.site.ParseDetailPage(detailHTML)
	s.Require().NoError(err)

	want := &domain.DetailRecord{
		Numero:       domain.Identifier{Number: 12, Year: 2020},
		NumeroCamara: &domain.Identifier{Number: 350, Year: 2020},
		Title:        "Por medio de la cual se dictan normas sobre el agua",
		Status: domain.Status{
			State:      "Pendiente discutir ponencia",
			Annotation: "Publicada ponencia",
		},
		Committee:         "PRIMERA",
		Origin:            "Senado",
		LawType:           "Ordinaria",
		FiledAt:           time.Date(2020, time.July, 20, 0, 0, 0, 0, time.UTC),
		SentToCommitteeAt: ptr(time.Date(2020, time.July, 28, 0, 0, 0, 0, time.UTC)),
		FirstDebateAt:     ptr(time.Date(2021, time.March, 15, 0, 0, 0, 0, time.UTC)),
		Sponsors:          []string{"H.S. Maria Fernanda Cabal", "H.S. Paloma Valencia"},
		Rapporteurs: []domain.Rapporteur{
			{Name: "H.S. Santiago Valencia", Debate: domain.DebateFirst},
			{Name: "H.S. Santiago Valencia", Debate: domain.DebateSecond},
			{Name: "H.S. German Varon", Debate: domain.DebateSecond},
		},
		Publications: domain.Publications{
			ExposicionMotivos: ptr("/proyectos/images/documentos/12-2020.pdf"),
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		s.Failf("unexpected record", "(-want +got):\n%s", diff)
	}
}

func (s *DetailParserSuite) TestParseDetailPage_MissingFilingDate() {
	s.Require().Contains(detailHTML, filingDateRow)
	page := strings.Replace(detailHTML, filingDateRow, "", 1)

	_, err := s.site.ParseDetailPage(page)
	s.Require().Error(err)
	s.ErrorIs(err, ErrRequiredFieldMissing)

	var parseErr *ParseError
	s.Require().ErrorAs(err, &parseErr)
	s.Equal("fecha de presentacion", parseErr.Field)
}

func (s *DetailParserSuite) TestParseDetailPage_MissingNumero() {
	page := strings.Replace(detailHTML, "Senado: 12/2020 Cámara: 350/2020C", "Cámara: 350/2020C", 1)

	_, err := s.site.ParseDetailPage(page)
	s.ErrorIs(err, ErrRequiredFieldMissing)
}

func (s *DetailParserSuite) TestParseDetailPage_MissingCamaraIsNotAnError() {
	page := strings.Replace(detailHTML, "Senado: 12/2020 Cámara: 350/2020C", "Senado: 12/2020", 1)

	got, err := s.site.ParseDetailPage(page)
	s.Require().NoError(err)
	s.Nil(got.NumeroCamara)
	s.Equal(domain.Identifier{Number: 12, Year: 2020}, got.Numero)
}

func (s *DetailParserSuite) TestParseDetailPage_TooFewTables() {
	end := strings.Index(detailHTML, `<table class="publicaciones">`)
	s.Require().Positive(end)

	_, err := s.site.ParseDetailPage(detailHTML[:end] + "</body></html>")
	s.ErrorIs(err, ErrStructuralMismatch)
}

func (s *DetailParserSuite) TestParseDetailPage_MissingPublicationCell() {
	lastRow := `<tr><td><a href="/proyectos/">-</a></td><td></td><td><a href="/proyectos/">-</a></td></tr>`
	s.Require().Contains(detailHTML, lastRow)
	page := strings.Replace(detailHTML, lastRow, `<tr><td><a href="/proyectos/">-</a></td></tr>`, 1)

	_, err := s.site.ParseDetailPage(page)
	s.ErrorIs(err, ErrStructuralMismatch)
}

func (s *DetailParserSuite) TestParseDetailPage_UnassignedCommittee() {
	page := strings.Replace(detailHTML, "<td>PRIMERA</td>", "<td>-</td>", 1)

	got, err := s.site.ParseDetailPage(page)
	s.Require().NoError(err)
	s.Equal(domain.UnassignedCommittee, got.Committee)
}
