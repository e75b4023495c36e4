package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"bills_fetcher/internal/domain"
	"bills_fetcher/internal/fetch"
)

type Fetcher interface {
	Fetch(ctx context.Context, url string) (*fetch.Response, error)
}

// Site knows the URLs and page layouts of one kind of bill on a chamber
// website. ParseListPage reports how many rows it had to drop.
type Site interface {
	Kind() domain.Kind
	ListURL(l domain.Legislatura) string
	ParseListPage(body string) (records []domain.SummaryRecord, skipped int, err error)
	ParseDetailPage(body string) (*domain.DetailRecord, error)
}

type PeriodStore interface {
	GetLegislaturas(ctx context.Context, cuatrenio string) ([]domain.Legislatura, error)
	GetLegislatura(ctx context.Context, cuatrenio, legislatura string) (*domain.Legislatura, error)
}

type BillStore interface {
	FindByKey(ctx context.Context, kind domain.Kind, numero string, legislaturaID int64) (*domain.BillState, error)
	InsertSummary(ctx context.Context, kind domain.Kind, legislaturaID, committeeID int64, record *domain.SummaryRecord, hash string) (int64, error)
	UpdateSummary(ctx context.Context, billID, committeeID int64, record *domain.SummaryRecord, hash string) error
	UpdateDetail(ctx context.Context, billID, committeeID int64, record *domain.DetailRecord, hash string) error
	ListPendingDetail(ctx context.Context, kind domain.Kind, legislaturaID int64, excludedStates []string) ([]domain.DetailTask, error)
	RelatedNumbers(ctx context.Context, billID int64) ([]string, error)
	ReplaceRelated(ctx context.Context, billID int64, numbers []string) error
}

type PersonStore interface {
	SponsorsOf(ctx context.Context, billID int64) ([]string, error)
	ReplaceSponsors(ctx context.Context, billID int64, names []string) error
	RapporteursOf(ctx context.Context, billID int64) ([]domain.Rapporteur, error)
	ReplaceRapporteurs(ctx context.Context, billID int64, rapporteurs []domain.Rapporteur) error
}

type CommitteeStore interface {
	Resolve(ctx context.Context, name string) (int64, error)
}

type SyncStateStore interface {
	Get(ctx context.Context, legislaturaID int64) (*domain.SyncState, error)
	Update(ctx context.Context, state *domain.SyncState) error
}

// Stores are bound to the executor of the transaction they were handed out by.
type Stores struct {
	Bills      BillStore
	People     PersonStore
	Committees CommitteeStore
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context, stores Stores) error) error
}

type Publisher interface {
	Publish(ctx context.Context, change *domain.BillChange) error
	Close() error
}
