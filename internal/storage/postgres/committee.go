package postgres

import (
	"context"
	"database/sql"
	"errors"
)

type CommitteeStore struct {
	db QueryExecutor
}

func NewCommitteeStore(db QueryExecutor) *CommitteeStore {
	return &CommitteeStore{db: db}
}

// Resolve returns the id of the named committee, creating it on first sight.
func (s *CommitteeStore) Resolve(ctx context.Context, name string) (int64, error) {
	var id int64
	err := s.db.GetContext(ctx, &id, "SELECT id FROM comisiones WHERE nombre = $1", name)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	err = s.db.QueryRowxContext(ctx,
		"INSERT INTO comisiones (nombre) VALUES ($1) ON CONFLICT (nombre) DO UPDATE SET nombre = EXCLUDED.nombre RETURNING id",
		name,
	).Scan(&id)
	return id, err
}
