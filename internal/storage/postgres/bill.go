package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"

	"bills_fetcher/internal/domain"
)

type BillStore struct {
	db QueryExecutor
}

func NewBillStore(db QueryExecutor) *BillStore {
	return &BillStore{db: db}
}

// FindByKey returns nil when no bill of that kind and numero exists in the
// legislatura.
func (s *BillStore) FindByKey(ctx context.Context, kind domain.Kind, numero string, legislaturaID int64) (*domain.BillState, error) {
	var state domain.BillState
	query := `
		SELECT id, numero, list_hash, detail_hash
		FROM bills
		WHERE kind = $1 AND numero = $2 AND legislatura_id = $3`

	err := s.db.GetContext(ctx, &state, query, kind, numero, legislaturaID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *BillStore) InsertSummary(ctx context.Context, kind domain.Kind, legislaturaID, committeeID int64, record *domain.SummaryRecord, hash string) (int64, error) {
	query := `
		INSERT INTO bills (
			kind, numero, legislatura_id, numero_camara, titulo, estado, estado_anotacion,
			comision_id, fecha_radicado, url, list_hash
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
		RETURNING id`

	var id int64
	err := s.db.QueryRowxContext(ctx, query,
		kind,
		record.Numero.String(),
		legislaturaID,
		identifierOrNil(record.NumeroCamara),
		record.Title,
		record.Status.State,
		stringOrNil(record.Status.Annotation),
		committeeID,
		record.FiledAt,
		record.URL,
		hash,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *BillStore) UpdateSummary(ctx context.Context, billID, committeeID int64, record *domain.SummaryRecord, hash string) error {
	query := `
		UPDATE bills SET
			numero_camara = $2,
			titulo = $3,
			estado = $4,
			estado_anotacion = $5,
			comision_id = $6,
			fecha_radicado = $7,
			url = $8,
			list_hash = $9,
			updated_at = NOW()
		WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query,
		billID,
		identifierOrNil(record.NumeroCamara),
		record.Title,
		record.Status.State,
		stringOrNil(record.Status.Annotation),
		committeeID,
		record.FiledAt,
		record.URL,
		hash,
	)
	return err
}

// UpdateDetail writes the detail page columns. The listing URL and filing
// date stay as the listing reported them, and a zero committeeID keeps the
// stored committee.
func (s *BillStore) UpdateDetail(ctx context.Context, billID, committeeID int64, record *domain.DetailRecord, hash string) error {
	query := `
		UPDATE bills SET
			numero_camara = $2,
			titulo = $3,
			estado = $4,
			estado_anotacion = $5,
			comision_id = COALESCE(NULLIF($6::integer, 0), comision_id),
			origen = $7,
			tipo_ley = $8,
			fecha_presentacion = $9,
			fecha_envio_comision = $10,
			fecha_aprobacion_primer_debate = $11,
			fecha_aprobacion_segundo_debate = $12,
			fecha_conciliacion = $13,
			exposicion_motivos = $14,
			primera_ponencia = $15,
			segunda_ponencia = $16,
			texto_plenaria = $17,
			conciliacion = $18,
			objeciones = $19,
			concepto = $20,
			texto_rehecho = $21,
			sentencia_corte = $22,
			detail_hash = $23,
			updated_at = NOW()
		WHERE id = $1`

	p := record.Publications
	_, err := s.db.ExecContext(ctx, query,
		billID,
		identifierOrNil(record.NumeroCamara),
		record.Title,
		record.Status.State,
		stringOrNil(record.Status.Annotation),
		committeeID,
		stringOrNil(record.Origin),
		stringOrNil(record.LawType),
		record.FiledAt,
		record.SentToCommitteeAt,
		record.FirstDebateAt,
		record.SecondDebateAt,
		record.ConciliationAt,
		p.ExposicionMotivos,
		p.PrimeraPonencia,
		p.SegundaPonencia,
		p.TextoPlenaria,
		p.Conciliacion,
		p.Objeciones,
		p.Concepto,
		p.TextoRehecho,
		p.SentenciaCorte,
		hash,
	)
	return err
}

// ListPendingDetail returns the bills whose detail page was never captured or
// whose state is not final.
func (s *BillStore) ListPendingDetail(ctx context.Context, kind domain.Kind, legislaturaID int64, excludedStates []string) ([]domain.DetailTask, error) {
	query := `
		SELECT id, numero, url, estado
		FROM bills
		WHERE kind = $1
			AND legislatura_id = $2
			AND (detail_hash IS NULL OR NOT (estado = ANY($3)))
		ORDER BY id`

	if excludedStates == nil {
		excludedStates = []string{}
	}

	var tasks []domain.DetailTask
	err := s.db.SelectContext(ctx, &tasks, query, kind, legislaturaID, pq.Array(excludedStates))
	return tasks, err
}

func (s *BillStore) RelatedNumbers(ctx context.Context, billID int64) ([]string, error) {
	query := `
		SELECT relacionado_numero
		FROM bill_relacionados
		WHERE bill_id = $1
		ORDER BY relacionado_numero`

	var numbers []string
	err := s.db.SelectContext(ctx, &numbers, query, billID)
	return numbers, err
}

func (s *BillStore) ReplaceRelated(ctx context.Context, billID int64, numbers []string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM bill_relacionados WHERE bill_id = $1",
		billID,
	)
	if err != nil {
		return err
	}

	if len(numbers) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO bill_relacionados (bill_id, relacionado_numero) VALUES ")
	valueArgs := make([]interface{}, 0, len(numbers)+1)
	valueArgs = append(valueArgs, billID)

	for i, numero := range numbers {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($1, $")
		sb.WriteString(itoa(i + 2))
		sb.WriteString(")")
		valueArgs = append(valueArgs, numero)
	}
	sb.WriteString(" ON CONFLICT DO NOTHING")

	_, err = s.db.ExecContext(ctx, sb.String(), valueArgs...)
	return err
}

// ListForExport flattens the bills of a cuatrenio for reports, sponsors
// joined with "; ".
func (s *BillStore) ListForExport(ctx context.Context, cuatrenio string) ([]domain.BillRow, error) {
	query := `
		SELECT
			b.kind,
			b.numero,
			b.numero_camara,
			l.title AS legislatura,
			b.titulo,
			b.estado,
			b.estado_anotacion,
			cm.nombre AS comision,
			b.fecha_radicado,
			b.origen,
			b.tipo_ley,
			b.fecha_aprobacion_primer_debate,
			b.fecha_aprobacion_segundo_debate,
			COALESCE((
				SELECT string_agg(p.nombre, '; ' ORDER BY p.nombre)
				FROM bill_autores ba
				INNER JOIN personas p ON p.id = ba.persona_id
				WHERE ba.bill_id = b.id
			), '') AS autores,
			b.url
		FROM bills b
		INNER JOIN legislaturas l ON l.id = b.legislatura_id
		INNER JOIN cuatrenios c ON c.id = l.cuatrenio_id
		INNER JOIN comisiones cm ON cm.id = b.comision_id
		WHERE c.title = $1
		ORDER BY l.inicio, b.kind, b.id`

	var rows []domain.BillRow
	err := s.db.SelectContext(ctx, &rows, query, cuatrenio)
	return rows, err
}

func identifierOrNil(id *domain.Identifier) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func stringOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
