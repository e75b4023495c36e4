package postgres

import (
	"context"
	"database/sql"
	"errors"

	"bills_fetcher/internal/domain"
)

type PeriodStore struct {
	db QueryExecutor
}

func NewPeriodStore(db QueryExecutor) *PeriodStore {
	return &PeriodStore{db: db}
}

const legislaturaColumns = `
	SELECT l.id, l.title, c.title AS cuatrenio, l.inicio, l.fin, l.camara_id
	FROM legislaturas l
	INNER JOIN cuatrenios c ON c.id = l.cuatrenio_id`

// GetLegislaturas returns the legislaturas of a cuatrenio in chronological
// order, or none when the cuatrenio is unknown.
func (s *PeriodStore) GetLegislaturas(ctx context.Context, cuatrenio string) ([]domain.Legislatura, error) {
	query := legislaturaColumns + `
	WHERE c.title = $1
	ORDER BY l.inicio`

	var legislaturas []domain.Legislatura
	err := s.db.SelectContext(ctx, &legislaturas, query, cuatrenio)
	return legislaturas, err
}

func (s *PeriodStore) GetLegislatura(ctx context.Context, cuatrenio, legislatura string) (*domain.Legislatura, error) {
	query := legislaturaColumns + `
	WHERE c.title = $1 AND l.title = $2`

	var l domain.Legislatura
	err := s.db.GetContext(ctx, &l, query, cuatrenio, legislatura)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *PeriodStore) ListCuatrenios(ctx context.Context) ([]domain.Cuatrenio, error) {
	var cuatrenios []domain.Cuatrenio
	err := s.db.SelectContext(ctx, &cuatrenios, "SELECT id, title, inicio, fin FROM cuatrenios ORDER BY inicio")
	return cuatrenios, err
}
