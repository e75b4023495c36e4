package domain

import "time"

// SyncStats holds statistics about one legislatura refresh.
type SyncStats struct {
	Cuatrenio       string
	Legislatura     string
	Kind            Kind
	Mode            Mode
	Listed          int
	New             int
	Updated         int
	Unchanged       int
	DetailQueued    int
	DetailUpdated   int
	DetailUnchanged int
	Skipped         int
	Published       int
	Duration        time.Duration
}

// Processed counts records that reached the store, written or not.
func (s *SyncStats) Processed() int {
	return s.New + s.Updated + s.Unchanged + s.DetailUpdated + s.DetailUnchanged
}

type SyncState struct {
	ID            int64     `db:"id"`
	LegislaturaID int64     `db:"legislatura_id"`
	LastSyncedAt  time.Time `db:"last_synced_at"`
	LastMode      string    `db:"last_mode"`
	TotalSynced   int64     `db:"total_synced"`
}
