package postgres

import (
	"context"
	"database/sql"
	"errors"

	"bills_fetcher/internal/domain"
)

type SyncStateStore struct {
	db QueryExecutor
}

func NewSyncStateStore(db QueryExecutor) *SyncStateStore {
	return &SyncStateStore{db: db}
}

func (s *SyncStateStore) Get(ctx context.Context, legislaturaID int64) (*domain.SyncState, error) {
	var state domain.SyncState
	query := `
		SELECT id, legislatura_id, COALESCE(last_synced_at, 'epoch'::timestamptz) AS last_synced_at, last_mode, total_synced
		FROM sync_state
		WHERE legislatura_id = $1`

	err := s.db.GetContext(ctx, &state, query, legislaturaID)
	if errors.Is(err, sql.ErrNoRows) {
		// never synced
		return &domain.SyncState{LegislaturaID: legislaturaID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *SyncStateStore) Update(ctx context.Context, state *domain.SyncState) error {
	query := `
		INSERT INTO sync_state (legislatura_id, last_synced_at, last_mode, total_synced)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (legislatura_id) DO UPDATE SET
			last_synced_at = EXCLUDED.last_synced_at,
			last_mode = EXCLUDED.last_mode,
			total_synced = EXCLUDED.total_synced`

	_, err := s.db.ExecContext(ctx, query,
		state.LegislaturaID,
		state.LastSyncedAt,
		state.LastMode,
		state.TotalSynced,
	)
	return err
}
