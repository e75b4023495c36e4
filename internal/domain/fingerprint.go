package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"slices"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

type summaryFields struct {
	Committee    string   `json:"committee"`
	Status       Status   `json:"status"`
	Title        string   `json:"title"`
	Sponsors     []string `json:"sponsors"`
	Numero       string   `json:"numero"`
	Accumulated  []string `json:"accumulated"`
	NumeroCamara string   `json:"numero_camara"`
	FiledAt      string   `json:"filed_at"`
	URL          string   `json:"url"`
}

type detailFields struct {
	Numero            string       `json:"numero"`
	NumeroCamara      string       `json:"numero_camara"`
	Title             string       `json:"title"`
	Status            Status       `json:"status"`
	Committee         string       `json:"committee"`
	Origin            string       `json:"origin"`
	LawType           string       `json:"law_type"`
	FiledAt           string       `json:"filed_at"`
	SentToCommitteeAt string       `json:"sent_to_committee_at"`
	FirstDebateAt     string       `json:"first_debate_at"`
	SecondDebateAt    string       `json:"second_debate_at"`
	ConciliationAt    string       `json:"conciliation_at"`
	Sponsors          []string     `json:"sponsors"`
	Rapporteurs       []string     `json:"rapporteurs"`
	Publications      Publications `json:"publications"`
}

// Fingerprint returns the hex sha256 of the record's normalized fields.
// Sponsor and identifier order does not affect the result.
func (r *SummaryRecord) Fingerprint() (string, error) {
	accumulated := make([]string, 0, len(r.Accumulated))
	for _, id := range r.Accumulated {
		accumulated = append(accumulated, id.String())
	}
	slices.Sort(accumulated)

	return digest(summaryFields{
		Committee:    r.Committee,
		Status:       r.Status,
		Title:        r.Title,
		Sponsors:     sortedCopy(r.Sponsors),
		Numero:       r.Numero.String(),
		Accumulated:  accumulated,
		NumeroCamara: optionalIdentifier(r.NumeroCamara),
		FiledAt:      r.FiledAt.Format(dateLayout),
		URL:          r.URL,
	})
}

func (r *DetailRecord) Fingerprint() (string, error) {
	rapporteurs := make([]string, 0, len(r.Rapporteurs))
	for _, rp := range r.Rapporteurs {
		rapporteurs = append(rapporteurs, string(rp.Debate)+":"+rp.Name)
	}
	slices.Sort(rapporteurs)

	return digest(detailFields{
		Numero:            r.Numero.String(),
		NumeroCamara:      optionalIdentifier(r.NumeroCamara),
		Title:             r.Title,
		Status:            r.Status,
		Committee:         r.Committee,
		Origin:            r.Origin,
		LawType:           r.LawType,
		FiledAt:           r.FiledAt.Format(dateLayout),
		SentToCommitteeAt: optionalDate(r.SentToCommitteeAt),
		FirstDebateAt:     optionalDate(r.FirstDebateAt),
		SecondDebateAt:    optionalDate(r.SecondDebateAt),
		ConciliationAt:    optionalDate(r.ConciliationAt),
		Sponsors:          sortedCopy(r.Sponsors),
		Rapporteurs:       rapporteurs,
		Publications:      r.Publications,
	})
}

// SameNames reports whether a and b hold the same names, ignoring order.
func SameNames(a, b []string) bool {
	return slices.Equal(sortedCopy(a), sortedCopy(b))
}

func digest(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func sortedCopy(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.TrimSpace(v))
	}
	slices.Sort(out)
	return out
}

func optionalIdentifier(id *Identifier) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func optionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
