package senado

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"bills_fetcher/internal/domain"
)

const (
	labelEstado         = "Estado:"
	labelComision       = "Repartido a Comisión:"
	labelPresentacion   = "Fecha de Presentación:"
	labelOrigen         = "Origen:"
	labelTipoLey        = "Tipo de Ley:"
	labelEnvioComision  = "Fecha de Envio a Comisión:"
	labelPrimerDebate   = "Fecha de Aprobación Primer Debate:"
	labelSegundoDebate  = "Fecha de Aprobación Segundo Debate:"
	labelConciliacion   = "Fecha de Conciliación:"
	labelAutor          = "Autor:"
	labelPonentePrimer  = "Ponente Primer Debate:"
	labelPonenteSegundo = "Ponente Segundo Debate:"
	labelConciliador    = "Conciliador senado:"
)

const publicationCells = 3

var (
	camaraTail = regexp.MustCompile(`(?s)C[aá]mara:.*`)
	senadoTail = regexp.MustCompile(`(?s)Senado:.*`)

	sponsorPrefixes = []string{"Autores:", "Autor:"}

	publicationRows = []int{1, 3, 5}

	rapporteurLabels = []struct {
		label string
		stage domain.DebateStage
	}{
		{labelPonentePrimer, domain.DebateFirst},
		{labelPonenteSegundo, domain.DebateSecond},
		{labelConciliador, domain.DebateConciliation},
	}
)

// ParseDetailPage reads a bill detail page. Leyes are laid out as three
// tables: title and numbers, trámite, publications.
func (s *Site) ParseDetailPage(body string) (*domain.DetailRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, structuralMismatch("document", err)
	}
	if s.cfg.Kind == domain.KindActoLegislativo {
		return s.parseActoDetail(doc)
	}

	tables := doc.Find("table")
	if tables.Length() < 3 {
		return nil, structuralMismatch("tables", fmt.Errorf("expected 3 tables, found %d", tables.Length()))
	}
	header, tramite, publications := tables.Eq(0), tables.Eq(1), tables.Eq(2)

	numero, err := ParseIdentifier(senadoNumberText(header))
	if err != nil {
		return nil, requiredFieldMissing("numero", err)
	}

	filedAt, err := s.cfg.Months.ParseDate(rowCell(tramite, labelPresentacion, 1))
	if err != nil {
		return nil, requiredFieldMissing("fecha de presentacion", err)
	}

	pubs, err := s.parsePublications(publications)
	if err != nil {
		return nil, err
	}

	record := &domain.DetailRecord{
		Numero: numero,
		Title:  CleanupTitle(header.Find("big").Text()),
		Status: domain.Status{
			State:      rowCell(tramite, labelEstado, 1),
			Annotation: rowCell(tramite, labelEstado, 2),
		},
		Committee:         s.committee(rowCell(tramite, labelComision, 1)),
		Origin:            rowCell(tramite, labelOrigen, 1),
		LawType:           rowCell(tramite, labelTipoLey, 1),
		FiledAt:           filedAt,
		SentToCommitteeAt: s.optionalDate(tramite, labelEnvioComision),
		FirstDebateAt:     s.optionalDate(tramite, labelPrimerDebate),
		SecondDebateAt:    s.optionalDate(tramite, labelSegundoDebate),
		ConciliationAt:    s.optionalDate(tramite, labelConciliacion),
		Sponsors:          ParseNameList(stripPrefixes(rowCell(tramite, labelAutor, 1), sponsorPrefixes)),
		Publications:      *pubs,
	}

	if camara, err := ParseIdentifier(camaraNumberText(header)); err == nil {
		record.NumeroCamara = &camara
	}

	for _, rl := range rapporteurLabels {
		for _, name := range ParseNameList(rowCell(tramite, rl.label, 1)) {
			record.Rapporteurs = append(record.Rapporteurs, domain.Rapporteur{Name: name, Debate: rl.stage})
		}
	}

	return record, nil
}

func (s *Site) optionalDate(table *goquery.Selection, label string) *time.Time {
	date, err := s.cfg.Months.ParseDate(rowCell(table, label, 1))
	if err != nil {
		return nil
	}
	return &date
}

func (s *Site) parsePublications(table *goquery.Selection) (*domain.Publications, error) {
	rows := table.Find("tr")

	var links []*string
	for _, idx := range publicationRows {
		cells := rows.Eq(idx).Find("td")
		if cells.Length() < publicationCells {
			return nil, structuralMismatch("publicaciones",
				fmt.Errorf("row %d has %d cells, expected %d", idx, cells.Length(), publicationCells))
		}
		cells.Slice(0, publicationCells).Each(func(_ int, cell *goquery.Selection) {
			links = append(links, s.publicationLink(cell))
		})
	}

	return &domain.Publications{
		ExposicionMotivos: links[0],
		PrimeraPonencia:   links[1],
		SegundaPonencia:   links[2],
		TextoPlenaria:     links[3],
		Conciliacion:      links[4],
		Objeciones:        links[5],
		Concepto:          links[6],
		TextoRehecho:      links[7],
		SentenciaCorte:    links[8],
	}, nil
}

func (s *Site) publicationLink(cell *goquery.Selection) *string {
	href := strings.TrimSpace(cell.Find("a").First().AttrOr("href", ""))
	if href == "" || href == s.cfg.EmptyPublicationHref {
		return nil
	}
	return &href
}

// rowCell returns the text of cell idx in the innermost row of table whose
// text contains label.
func rowCell(table *goquery.Selection, label string, idx int) string {
	row := table.Find("tr").FilterFunction(func(_ int, tr *goquery.Selection) bool {
		return tr.Find("tr").Length() == 0 && strings.Contains(tr.Text(), label)
	}).First()
	return collapseSpaces(row.Find("td").Eq(idx).Text())
}

func paragraphsContaining(table *goquery.Selection, markers ...string) string {
	var parts []string
	table.Find("p").Each(func(_ int, p *goquery.Selection) {
		text := p.Text()
		for _, m := range markers {
			if strings.Contains(text, m) {
				parts = append(parts, text)
				return
			}
		}
	})
	return strings.Join(parts, " ")
}

func senadoNumberText(header *goquery.Selection) string {
	text := paragraphsContaining(header, "Senado:")
	if _, after, ok := strings.Cut(text, "Senado:"); ok {
		text = after
	}
	return camaraTail.ReplaceAllString(text, "")
}

func camaraNumberText(header *goquery.Selection) string {
	text := paragraphsContaining(header, "Camara:", "Cámara:")
	for _, marker := range []string{"Cámara:", "Camara:"} {
		if _, after, ok := strings.Cut(text, marker); ok {
			return senadoTail.ReplaceAllString(after, "")
		}
	}
	return ""
}

func stripPrefixes(text string, prefixes []string) string {
	text = strings.TrimSpace(text)
	for _, p := range prefixes {
		if rest, ok := strings.CutPrefix(text, p); ok {
			return strings.TrimSpace(rest)
		}
	}
	return text
}
