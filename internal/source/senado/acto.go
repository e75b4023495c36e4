package senado

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"bills_fetcher/internal/domain"
)

const (
	actoStatusMarker     = "Estado del Proyecto:"
	actoFirstRoundMarker = "TRAMITE EN SENADO DE LA REPUBLICA 1° VUELTA"
)

// Rows of the acto legislativo status table, in page order.
const (
	actoRowEstado = iota
	actoRowAutores
	actoRowOrigen
	actoRowPresentacion
)

// parseActoDetail reads an acto legislativo page: title and numbers in the
// first <dd>, a status table with one field per row and one table per round
// of Senate debates. The page names no committee, so the record leaves it
// empty and the listing's stays.
func (s *Site) parseActoDetail(doc *goquery.Document) (*domain.DetailRecord, error) {
	header := doc.Find("dd").First()
	if header.Length() == 0 {
		return nil, structuralMismatch("dd", ErrNotFound)
	}

	status := innermostTable(doc, actoStatusMarker)
	if status.Length() == 0 {
		return nil, structuralMismatch("estado del proyecto", ErrNotFound)
	}

	numero, err := ParseIdentifier(senadoNumberText(header))
	if err != nil {
		return nil, requiredFieldMissing("numero", err)
	}

	filedAt, err := s.cfg.Months.ParseDate(positionalCell(status, actoRowPresentacion))
	if err != nil {
		return nil, requiredFieldMissing("fecha de presentacion", err)
	}

	record := &domain.DetailRecord{
		Numero:   numero,
		Title:    CleanupTitle(header.Find("big").Text()),
		Status:   domain.Status{State: positionalCell(status, actoRowEstado)},
		Origin:   positionalCell(status, actoRowOrigen),
		FiledAt:  filedAt,
		Sponsors: ParseNameList(stripPrefixes(positionalCell(status, actoRowAutores), sponsorPrefixes)),
	}

	if camara, err := ParseIdentifier(camaraNumberText(header)); err == nil {
		record.NumeroCamara = &camara
	}

	if round := innermostTable(doc, actoFirstRoundMarker); round.Length() > 0 {
		for _, name := range ParseNameList(positionalCell(round, 1)) {
			record.Rapporteurs = append(record.Rapporteurs, domain.Rapporteur{Name: name, Debate: domain.DebateFirst})
		}
	}

	return record, nil
}

// innermostTable returns the deepest table whose text contains marker.
func innermostTable(doc *goquery.Document, marker string) *goquery.Selection {
	return doc.Find("table").FilterFunction(func(_ int, t *goquery.Selection) bool {
		if !strings.Contains(t.Text(), marker) {
			return false
		}
		return t.Find("table").FilterFunction(func(_ int, inner *goquery.Selection) bool {
			return strings.Contains(inner.Text(), marker)
		}).Length() == 0
	}).First()
}

// positionalCell returns the value cell of row idx of a two-column table.
func positionalCell(table *goquery.Selection, idx int) string {
	return collapseSpaces(table.Find("tr").Eq(idx).Find("td").Eq(1).Text())
}
