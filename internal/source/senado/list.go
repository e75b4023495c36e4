package senado

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"bills_fetcher/internal/domain"
)

// ParseListPage returns the bills of a listing page in document order and
// the number of rows that were recognized but could not be read. Those rows
// are logged and left out.
func (s *Site) ParseListPage(body string) ([]domain.SummaryRecord, int, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("read listing document: %w", err)
	}

	var records []domain.SummaryRecord
	candidates, skipped := 0, 0
	doc.Find("table").Each(func(i int, block *goquery.Selection) {
		if !s.cfg.Classifier.IsRow(block) {
			return
		}
		candidates++

		record, err := s.parseRow(block)
		if err != nil {
			skipped++
			numero, href := rowIdentity(block)
			markup, _ := goquery.OuterHtml(block)
			s.logger.Warn("skipping listing row",
				"block", i,
				"numero", numero,
				"url", s.cfg.absoluteURL(href),
				"error", err,
				"html", markup,
			)
			return
		}
		records = append(records, *record)
	})

	s.logger.Debug("parsed listing page",
		"kind", s.cfg.Kind,
		"candidates", candidates,
		"records", len(records),
		"skipped", skipped,
	)

	return records, skipped, nil
}

// rowIdentity reads whatever of the numero and detail link a broken row
// still shows.
func rowIdentity(block *goquery.Selection) (numero, href string) {
	info := block.Find("td").Eq(2)
	numero = collapseSpaces(info.Find("div > b").Eq(1).Text())
	href = strings.TrimSpace(info.Find("h3 > a").First().AttrOr("href", ""))
	return numero, href
}

func (s *Site) parseRow(block *goquery.Selection) (*domain.SummaryRecord, error) {
	cells := block.Find("td")
	info := cells.Eq(2)

	link := info.Find("h3 > a").First()
	href, ok := link.Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return nil, fmt.Errorf("detail url: %w", ErrNotFound)
	}

	bolds := info.Find("div > b")
	filedAt, err := s.cfg.Months.ParseDate(bolds.Eq(0).Text())
	if err != nil {
		return nil, fmt.Errorf("filing date: %w", err)
	}

	numero, accumulated, err := parseNumero(bolds.Eq(1).Text())
	if err != nil {
		return nil, fmt.Errorf("numero: %w", err)
	}

	record := &domain.SummaryRecord{
		Committee:   s.committee(cells.Eq(0).Text()),
		Status:      parseStatusCell(cells.Eq(1)),
		Title:       CleanupTitle(link.Text()),
		Sponsors:    ParseNameList(info.Find("p > b").First().Text()),
		Numero:      numero,
		Accumulated: accumulated,
		FiledAt:     filedAt,
		URL:         s.cfg.absoluteURL(strings.TrimSpace(href)),
	}

	if camara, err := ParseIdentifier(bolds.Eq(2).Text()); err == nil {
		record.NumeroCamara = &camara
	}

	return record, nil
}

// The state is the cell's own text; the annotation sits in a nested <p>.
func parseStatusCell(cell *goquery.Selection) domain.Status {
	own := cell.Clone().Children().Remove().End().Text()
	return domain.Status{
		State:      collapseSpaces(own),
		Annotation: collapseSpaces(cell.Find("p").Text()),
	}
}
