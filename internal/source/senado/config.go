package senado

import (
	"net/url"
	"strconv"
	"strings"

	"bills_fetcher/internal/domain"
)

// Config holds the fixed layout knowledge of the Senate bill pages. Kind
// selects which listing is read and how detail pages are laid out.
type Config struct {
	BaseURL string
	Kind    domain.Kind
	// ListPath and ActoLegislativoListPath may reference {cuatrenio},
	// {legislatura} and {page_id}.
	ListPath                string
	ActoLegislativoListPath string
	ListQuery               string
	EmptyPublicationHref string
	UnassignedCommittee  string
	Months               MonthTable
	Classifier           RowClassifier
}

func DefaultConfig() Config {
	return Config{
		BaseURL:                 "http://leyes.senado.gov.co",
		Kind:                    domain.KindLey,
		ListPath:                "/proyectos/index.php/proyectos-ley/cuatrenio-{cuatrenio}/{legislatura}",
		ActoLegislativoListPath: "/proyectos/index.php/proyectos-de-acto-legislativo/cuatrenio-{cuatrenio}/{legislatura}",
		ListQuery:               "?option=com_joodb&view=catalog&format=html&reset=false&task=&search=&searchfield=&limit=0",
		EmptyPublicationHref:    "/proyectos/",
		UnassignedCommittee:     domain.UnassignedCommittee,
		Months:                  SpanishMonths(),
		Classifier:              DefaultClassifier(),
	}
}

func (c *Config) setDefaults() {
	d := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = d.BaseURL
	}
	if c.Kind == "" {
		c.Kind = d.Kind
	}
	if c.ListPath == "" {
		c.ListPath = d.ListPath
	}
	if c.ActoLegislativoListPath == "" {
		c.ActoLegislativoListPath = d.ActoLegislativoListPath
	}
	if c.ListQuery == "" {
		c.ListQuery = d.ListQuery
	}
	if c.EmptyPublicationHref == "" {
		c.EmptyPublicationHref = d.EmptyPublicationHref
	}
	if c.UnassignedCommittee == "" {
		c.UnassignedCommittee = d.UnassignedCommittee
	}
	if c.Months == nil {
		c.Months = d.Months
	}
	if c.Classifier == nil {
		c.Classifier = d.Classifier
	}
}

// ListURL builds the listing page URL of a legislatura for the configured kind.
func (c Config) ListURL(l domain.Legislatura) string {
	pattern := c.ListPath
	if c.Kind == domain.KindActoLegislativo {
		pattern = c.ActoLegislativoListPath
	}
	path := strings.NewReplacer(
		"{cuatrenio}", l.Cuatrenio,
		"{legislatura}", l.Title,
		"{page_id}", strconv.Itoa(l.PageID),
	).Replace(pattern)
	return strings.TrimRight(c.BaseURL, "/") + path + c.ListQuery
}

func (c Config) absoluteURL(href string) string {
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return c.BaseURL + href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return c.BaseURL + href
	}
	return base.ResolveReference(ref).String()
}
