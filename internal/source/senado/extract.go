package senado

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"bills_fetcher/internal/domain"
)

const (
	accumulationMarker = "acum"
	minYear            = 1900
	sentinelYear       = "0000"
	titleQuotes        = `'"“”‘’`
)

var (
	identifierPattern = regexp.MustCompile(`(\d+)/(\d+)?`)
	nameSeparator     = regexp.MustCompile(`[,;\n]`)
	nameWordRun       = regexp.MustCompile(`\w{5,}`)
	nameNoise         = strings.NewReplacer("\t", " ", `"`, "", "'", "")
)

func ParseIdentifier(text string) (domain.Identifier, error) {
	return ParseIdentifierWithDefault(text, 0)
}

// ParseIdentifierWithDefault reads the first "N/Y" in text. When the year is
// elided, defaultYear is used; zero means no default.
func ParseIdentifierWithDefault(text string, defaultYear int) (domain.Identifier, error) {
	match := identifierPattern.FindStringSubmatch(text)
	if match == nil {
		return domain.Identifier{}, fmt.Errorf("identifier in %q: %w", text, ErrNotFound)
	}
	return identifierFromMatch(match, defaultYear)
}

func identifierFromMatch(match []string, defaultYear int) (domain.Identifier, error) {
	number, err := strconv.Atoi(match[1])
	if err != nil {
		return domain.Identifier{}, fmt.Errorf("identifier number %q: %w", match[1], err)
	}

	year := defaultYear
	if match[2] != "" {
		year, err = strconv.Atoi(match[2])
		if err != nil {
			return domain.Identifier{}, fmt.Errorf("identifier year %q: %w", match[2], err)
		}
	}
	if year == 0 {
		return domain.Identifier{}, fmt.Errorf("identifier year in %q: %w", match[0], ErrNotFound)
	}

	return domain.Identifier{Number: number, Year: year}, nil
}

// ParseAccumulatedIdentifiers returns the identifiers that follow the first
// one in text, but only when text carries the accumulation marker. The
// result records co-occurrence; it says nothing about which bill absorbed
// which.
func ParseAccumulatedIdentifiers(text string, base domain.Identifier) ([]domain.Identifier, error) {
	lower := strings.ToLower(text)
	if !strings.Contains(lower, accumulationMarker) {
		return nil, nil
	}

	first := identifierPattern.FindStringIndex(lower)
	if first == nil {
		return nil, nil
	}

	var ids []domain.Identifier
	for _, match := range identifierPattern.FindAllStringSubmatch(lower[first[1]:], -1) {
		id, err := identifierFromMatch(match, base.Year)
		if err != nil {
			return nil, fmt.Errorf("accumulated identifier %q: %w", match[0], err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseNumero(text string) (domain.Identifier, []domain.Identifier, error) {
	numero, err := ParseIdentifier(text)
	if err != nil {
		return domain.Identifier{}, nil, err
	}
	accumulated, err := ParseAccumulatedIdentifiers(text, numero)
	if err != nil {
		return domain.Identifier{}, nil, err
	}
	return numero, accumulated, nil
}

// MonthTable maps lowercase month names to calendar months.
type MonthTable map[string]time.Month

func SpanishMonths() MonthTable {
	return MonthTable{
		"enero":      time.January,
		"febrero":    time.February,
		"marzo":      time.March,
		"abril":      time.April,
		"mayo":       time.May,
		"junio":      time.June,
		"julio":      time.July,
		"agosto":     time.August,
		"septiembre": time.September,
		"octubre":    time.October,
		"noviembre":  time.November,
		"diciembre":  time.December,
	}
}

// ParseDate reads "<day> <month> <year>". Year 0000 and years before 1900
// are placeholders on the source pages and are rejected.
func (t MonthTable) ParseDate(text string) (time.Time, error) {
	fields := strings.Fields(text)
	if len(fields) < 3 {
		return time.Time{}, fmt.Errorf("date in %q: %w", text, ErrNotFound)
	}
	rawDay, rawMonth, rawYear := fields[0], fields[1], fields[2]

	if rawYear == sentinelYear {
		return time.Time{}, fmt.Errorf("date %q has placeholder year: %w", text, ErrNotFound)
	}
	day, err := strconv.Atoi(rawDay)
	if err != nil {
		return time.Time{}, fmt.Errorf("date day %q: %w", rawDay, ErrNotFound)
	}
	year, err := strconv.Atoi(rawYear)
	if err != nil {
		return time.Time{}, fmt.Errorf("date year %q: %w", rawYear, ErrNotFound)
	}
	if year < minYear {
		return time.Time{}, fmt.Errorf("date year %d before %d: %w", year, minYear, ErrNotFound)
	}
	month, ok := t[strings.ToLower(rawMonth)]
	if !ok {
		return time.Time{}, fmt.Errorf("date month %q: %w", rawMonth, ErrNotFound)
	}

	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day || date.Month() != month {
		return time.Time{}, fmt.Errorf("date %q is not a calendar day: %w", text, ErrNotFound)
	}
	return date, nil
}

func ParseTextualDate(text string) (time.Time, error) {
	return SpanishMonths().ParseDate(text)
}

// ParseNameList splits a sponsor or rapporteur cell into names. Tokens
// without a run of five word characters (initials, titles) are dropped.
func ParseNameList(text string) []string {
	cleaned := nameNoise.Replace(text)

	seen := make(map[string]struct{})
	var names []string
	for _, token := range nameSeparator.Split(cleaned, -1) {
		name := strings.TrimSpace(token)
		if !nameWordRun.MatchString(name) {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

func CleanupTitle(text string) string {
	title := collapseSpaces(text)
	trimmed := strings.TrimSuffix(title, ".")
	periodStripped := trimmed != title

	title = strings.TrimSpace(strings.Trim(trimmed, titleQuotes))
	if !periodStripped {
		title = strings.TrimSpace(strings.TrimSuffix(title, "."))
	}
	return title
}

func collapseSpaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
