package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"bills_fetcher/internal/domain"
)

var (
	ErrBillNotFound       = errors.New("bill not found")
	ErrIdentifierMismatch = errors.New("identifier mismatch")
)

type Outcome string

const (
	OutcomeInserted  Outcome = "inserted"
	OutcomeUpdated   Outcome = "updated"
	OutcomeUnchanged Outcome = "unchanged"
)

// ReconcileResult carries the change to announce when something was written.
type ReconcileResult struct {
	Outcome Outcome
	Change  *domain.BillChange
}

// Reconciler writes parsed records to the store, one transaction per bill,
// skipping records whose fingerprint matches the stored one.
type Reconciler struct {
	txManager TransactionManager
	logger    *slog.Logger
}

func NewReconciler(txManager TransactionManager, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		txManager: txManager,
		logger:    logger,
	}
}

func (r *Reconciler) ReconcileSummary(ctx context.Context, leg domain.Legislatura, kind domain.Kind, record *domain.SummaryRecord) (*ReconcileResult, error) {
	hash, err := record.Fingerprint()
	if err != nil {
		return nil, fmt.Errorf("fingerprint summary: %w", err)
	}
	numero := record.Numero.String()

	var result *ReconcileResult
	err = r.txManager.WithTransaction(ctx, func(ctx context.Context, st Stores) error {
		existing, err := st.Bills.FindByKey(ctx, kind, numero, leg.ID)
		if err != nil {
			return fmt.Errorf("find bill: %w", err)
		}

		if existing != nil && existing.ListHash != nil && *existing.ListHash == hash {
			r.logger.Debug("list data unchanged, skipping", "numero", numero, "legislatura", leg.Title)
			result = &ReconcileResult{Outcome: OutcomeUnchanged}
			return nil
		}

		committeeID, err := st.Committees.Resolve(ctx, record.Committee)
		if err != nil {
			return fmt.Errorf("resolve committee %q: %w", record.Committee, err)
		}

		related := identifierStrings(record.Accumulated)

		if existing == nil {
			billID, err := st.Bills.InsertSummary(ctx, kind, leg.ID, committeeID, record, hash)
			if err != nil {
				return fmt.Errorf("insert bill: %w", err)
			}
			if len(record.Sponsors) > 0 {
				if err := st.People.ReplaceSponsors(ctx, billID, record.Sponsors); err != nil {
					return fmt.Errorf("replace sponsors: %w", err)
				}
			}
			if len(related) > 0 {
				if err := st.Bills.ReplaceRelated(ctx, billID, related); err != nil {
					return fmt.Errorf("replace related: %w", err)
				}
			}
			result = newResult(OutcomeInserted, billID, kind, numero, leg, domain.StageList, hash)
			return nil
		}

		if err := st.Bills.UpdateSummary(ctx, existing.ID, committeeID, record, hash); err != nil {
			return fmt.Errorf("update bill: %w", err)
		}
		if err := syncSponsors(ctx, st, existing.ID, record.Sponsors); err != nil {
			return err
		}
		if err := syncRelated(ctx, st, existing.ID, related); err != nil {
			return err
		}
		result = newResult(OutcomeUpdated, existing.ID, kind, numero, leg, domain.StageList, hash)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ReconcileDetail merges a detail record into the bill the task was created
// for. A record without a committee keeps the one the listing reported.
func (r *Reconciler) ReconcileDetail(ctx context.Context, leg domain.Legislatura, kind domain.Kind, task domain.DetailTask, record *domain.DetailRecord) (*ReconcileResult, error) {
	if got := record.Numero.String(); got != task.Numero {
		return nil, fmt.Errorf("detail page shows %s, expected %s: %w", got, task.Numero, ErrIdentifierMismatch)
	}

	hash, err := record.Fingerprint()
	if err != nil {
		return nil, fmt.Errorf("fingerprint detail: %w", err)
	}

	var result *ReconcileResult
	err = r.txManager.WithTransaction(ctx, func(ctx context.Context, st Stores) error {
		existing, err := st.Bills.FindByKey(ctx, kind, task.Numero, leg.ID)
		if err != nil {
			return fmt.Errorf("find bill: %w", err)
		}
		if existing == nil {
			return fmt.Errorf("%s in %s: %w", task.Numero, leg.Title, ErrBillNotFound)
		}

		if existing.DetailHash != nil && *existing.DetailHash == hash {
			r.logger.Debug("detail data unchanged, skipping", "numero", task.Numero, "legislatura", leg.Title)
			result = &ReconcileResult{Outcome: OutcomeUnchanged}
			return nil
		}

		var committeeID int64
		if record.Committee != "" {
			committeeID, err = st.Committees.Resolve(ctx, record.Committee)
			if err != nil {
				return fmt.Errorf("resolve committee %q: %w", record.Committee, err)
			}
		}
		if err := st.Bills.UpdateDetail(ctx, existing.ID, committeeID, record, hash); err != nil {
			return fmt.Errorf("update bill detail: %w", err)
		}
		if err := syncSponsors(ctx, st, existing.ID, record.Sponsors); err != nil {
			return err
		}
		if err := syncRapporteurs(ctx, st, existing.ID, record.Rapporteurs); err != nil {
			return err
		}

		result = newResult(OutcomeUpdated, existing.ID, kind, task.Numero, leg, domain.StageDetail, hash)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func newResult(outcome Outcome, billID int64, kind domain.Kind, numero string, leg domain.Legislatura, stage domain.Stage, hash string) *ReconcileResult {
	return &ReconcileResult{
		Outcome: outcome,
		Change: &domain.BillChange{
			BillID:      billID,
			Kind:        kind,
			Numero:      numero,
			Legislatura: leg.Title,
			Stage:       stage,
			Created:     outcome == OutcomeInserted,
			Hash:        hash,
		},
	}
}

// Relationship sets are replaced as a whole, and only when they differ from
// what is stored.

func syncSponsors(ctx context.Context, st Stores, billID int64, names []string) error {
	current, err := st.People.SponsorsOf(ctx, billID)
	if err != nil {
		return fmt.Errorf("load sponsors: %w", err)
	}
	if domain.SameNames(current, names) {
		return nil
	}
	if err := st.People.ReplaceSponsors(ctx, billID, names); err != nil {
		return fmt.Errorf("replace sponsors: %w", err)
	}
	return nil
}

func syncRelated(ctx context.Context, st Stores, billID int64, numbers []string) error {
	current, err := st.Bills.RelatedNumbers(ctx, billID)
	if err != nil {
		return fmt.Errorf("load related: %w", err)
	}
	if domain.SameNames(current, numbers) {
		return nil
	}
	if err := st.Bills.ReplaceRelated(ctx, billID, numbers); err != nil {
		return fmt.Errorf("replace related: %w", err)
	}
	return nil
}

func syncRapporteurs(ctx context.Context, st Stores, billID int64, rapporteurs []domain.Rapporteur) error {
	current, err := st.People.RapporteursOf(ctx, billID)
	if err != nil {
		return fmt.Errorf("load rapporteurs: %w", err)
	}
	if domain.SameNames(rapporteurKeys(current), rapporteurKeys(rapporteurs)) {
		return nil
	}
	if err := st.People.ReplaceRapporteurs(ctx, billID, rapporteurs); err != nil {
		return fmt.Errorf("replace rapporteurs: %w", err)
	}
	return nil
}

func rapporteurKeys(rapporteurs []domain.Rapporteur) []string {
	keys := make([]string, 0, len(rapporteurs))
	for _, r := range rapporteurs {
		keys = append(keys, string(r.Debate)+"|"+r.Name)
	}
	return keys
}

func identifierStrings(ids []domain.Identifier) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	slices.Sort(out)
	return slices.Compact(out)
}
