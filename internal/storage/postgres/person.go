package postgres

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/lib/pq"

	"bills_fetcher/internal/domain"
)

// PersonStore keeps the people named on bills and their sponsor and
// rapporteur links.
type PersonStore struct {
	db QueryExecutor
}

func NewPersonStore(db QueryExecutor) *PersonStore {
	return &PersonStore{db: db}
}

func (s *PersonStore) SponsorsOf(ctx context.Context, billID int64) ([]string, error) {
	query := `
		SELECT p.nombre
		FROM personas p
		INNER JOIN bill_autores ba ON ba.persona_id = p.id
		WHERE ba.bill_id = $1
		ORDER BY p.nombre`

	var names []string
	err := s.db.SelectContext(ctx, &names, query, billID)
	return names, err
}

func (s *PersonStore) ReplaceSponsors(ctx context.Context, billID int64, names []string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM bill_autores WHERE bill_id = $1",
		billID,
	)
	if err != nil {
		return err
	}

	ids, err := s.upsertBatch(ctx, names)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	ordered := lockOrder(names)

	var sb strings.Builder
	sb.WriteString("INSERT INTO bill_autores (bill_id, persona_id) VALUES ")
	valueArgs := make([]interface{}, 0, len(ordered)+1)
	valueArgs = append(valueArgs, billID)

	for i, name := range ordered {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($1, $")
		sb.WriteString(itoa(i + 2))
		sb.WriteString(")")
		valueArgs = append(valueArgs, ids[name])
	}
	sb.WriteString(" ON CONFLICT DO NOTHING")

	_, err = s.db.ExecContext(ctx, sb.String(), valueArgs...)
	return err
}

func (s *PersonStore) RapporteursOf(ctx context.Context, billID int64) ([]domain.Rapporteur, error) {
	query := `
		SELECT p.nombre, bp.debate
		FROM personas p
		INNER JOIN bill_ponentes bp ON bp.persona_id = p.id
		WHERE bp.bill_id = $1
		ORDER BY bp.debate, p.nombre`

	var rapporteurs []domain.Rapporteur
	err := s.db.SelectContext(ctx, &rapporteurs, query, billID)
	return rapporteurs, err
}

func (s *PersonStore) ReplaceRapporteurs(ctx context.Context, billID int64, rapporteurs []domain.Rapporteur) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM bill_ponentes WHERE bill_id = $1",
		billID,
	)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(rapporteurs))
	for _, r := range rapporteurs {
		names = append(names, r.Name)
	}
	ids, err := s.upsertBatch(ctx, names)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO bill_ponentes (bill_id, persona_id, debate) VALUES ")
	valueArgs := make([]interface{}, 0, len(rapporteurs)*2+1)
	valueArgs = append(valueArgs, billID)

	for i, r := range rapporteurs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($1, $")
		sb.WriteString(itoa(i*2 + 2))
		sb.WriteString(", $")
		sb.WriteString(itoa(i*2 + 3))
		sb.WriteString(")")
		valueArgs = append(valueArgs, ids[r.Name], string(r.Debate))
	}
	sb.WriteString(" ON CONFLICT DO NOTHING")

	_, err = s.db.ExecContext(ctx, sb.String(), valueArgs...)
	return err
}

// upsertBatch makes sure every name has a personas row and returns the ids
// keyed by name. Rows are inserted in lockOrder so that concurrent
// transactions naming the same people wait on each other instead of
// deadlocking.
func (s *PersonStore) upsertBatch(ctx context.Context, names []string) (map[string]int64, error) {
	if len(names) == 0 {
		return nil, nil
	}
	names = lockOrder(names)

	var sb strings.Builder
	sb.WriteString("INSERT INTO personas (nombre) VALUES ")
	valueArgs := make([]interface{}, 0, len(names))

	for i, name := range names {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($")
		sb.WriteString(itoa(i + 1))
		sb.WriteString(")")
		valueArgs = append(valueArgs, name)
	}
	sb.WriteString(" ON CONFLICT (nombre) DO NOTHING")

	if _, err := s.db.ExecContext(ctx, sb.String(), valueArgs...); err != nil {
		return nil, err
	}

	var rows []struct {
		ID     int64  `db:"id"`
		Nombre string `db:"nombre"`
	}
	query := `SELECT id, nombre FROM personas WHERE nombre = ANY($1)`
	if err := s.db.SelectContext(ctx, &rows, query, pq.Array(names)); err != nil {
		return nil, err
	}

	ids := make(map[string]int64, len(rows))
	for _, row := range rows {
		ids[row.Nombre] = row.ID
	}
	for _, name := range names {
		if _, ok := ids[name]; !ok {
			return nil, fmt.Errorf("persona %q was not stored", name)
		}
	}
	return ids, nil
}

// lockOrder returns the distinct names sorted, leaving names untouched.
func lockOrder(names []string) []string {
	return slices.Compact(slices.Sorted(slices.Values(names)))
}

func itoa(i int) string {
	if i < 10 {
		return string(rune('0' + i))
	}
	return itoa(i/10) + string(rune('0'+i%10))
}
