package domain

import "fmt"

type Cuatrenio struct {
	ID    int64  `db:"id"`
	Title string `db:"title"`
	Start int    `db:"inicio"`
	End   int    `db:"fin"`
}

// Legislatura is a one-year sub-period of a cuatrenio. PageID is the
// chamber-specific page identifier some listing URLs are built from.
type Legislatura struct {
	ID        int64  `db:"id"`
	Title     string `db:"title"`
	Cuatrenio string `db:"cuatrenio"`
	Start     int    `db:"inicio"`
	End       int    `db:"fin"`
	PageID    int    `db:"camara_id"`
}

type Mode string

const (
	ModeListOnly   Mode = "list-only"
	ModeDetailOnly Mode = "detail-only"
	ModeFull       Mode = "full"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeListOnly, ModeDetailOnly, ModeFull:
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q (want %s, %s or %s)", s, ModeListOnly, ModeDetailOnly, ModeFull)
}

func (m Mode) IncludesList() bool {
	return m == ModeListOnly || m == ModeFull
}

func (m Mode) IncludesDetail() bool {
	return m == ModeDetailOnly || m == ModeFull
}

// Kind is the family of bills a listing belongs to. Numbers are assigned per
// kind, so a ley and an acto legislativo may share one.
type Kind string

const (
	KindLey             Kind = "ley"
	KindActoLegislativo Kind = "acto-legislativo"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindLey, KindActoLegislativo:
		return k, nil
	}
	return "", fmt.Errorf("unknown bill kind %q (want %s or %s)", s, KindLey, KindActoLegislativo)
}
