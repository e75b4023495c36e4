package senado

import "github.com/PuerkitoBio/goquery"

// RowClassifier decides whether a block of a listing page is a bill row.
type RowClassifier interface {
	IsRow(block *goquery.Selection) bool
}

// ShapeClassifier accepts blocks with an exact number of cells and of
// styling markers.
type ShapeClassifier struct {
	CellSelector   string
	Cells          int
	MarkerSelector string
	Markers        int
}

func DefaultClassifier() ShapeClassifier {
	return ShapeClassifier{
		CellSelector:   "td",
		Cells:          3,
		MarkerSelector: ".even, .odd",
		Markers:        1,
	}
}

func (c ShapeClassifier) IsRow(block *goquery.Selection) bool {
	return block.Find(c.CellSelector).Length() == c.Cells &&
		block.Find(c.MarkerSelector).Length() == c.Markers
}
