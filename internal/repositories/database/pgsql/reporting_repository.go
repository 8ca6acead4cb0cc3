package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/galeria-sm/stands_backend/internal/apperrors"
	"github.com/galeria-sm/stands_backend/internal/core/domain"
	portsrepo "github.com/galeria-sm/stands_backend/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for report aggregates.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetConceptCollection aggregates billed/collected/outstanding per concept for
// active debt lines dated within [from, to].
func (r *PgxReportingRepository) GetConceptCollection(ctx context.Context, from, to time.Time) ([]domain.ConceptCollectionRow, error) {
	query := `
		SELECT c.concept_id, c.description,
		       COALESCE(SUM(d.amount + d.late_fee), 0) AS billed,
		       COALESCE(SUM(d.total_paid), 0) AS collected,
		       COALESCE(SUM(GREATEST(d.amount + d.late_fee - d.total_paid, 0)), 0) AS outstanding
		FROM debt_lines d
		JOIN concepts c ON c.concept_id = d.concept_id
		WHERE d.active AND d.debt_date >= $1 AND d.debt_date <= $2
		GROUP BY c.concept_id, c.description
		ORDER BY c.description;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query concept collection report", err)
	}
	defer rows.Close()

	report := []domain.ConceptCollectionRow{}
	for rows.Next() {
		var row domain.ConceptCollectionRow
		if err := rows.Scan(&row.ConceptID, &row.Description, &row.Billed, &row.Collected, &row.Outstanding); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan concept collection row", err)
		}
		report = append(report, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating concept collection rows", err)
	}
	return report, nil
}

// GetDebtors lists stands carrying outstanding balances, largest debt first, with
// the current tenant joined when one exists.
func (r *PgxReportingRepository) GetDebtors(ctx context.Context) ([]domain.DebtorRow, error) {
	query := `
		SELECT s.stand_id, s.description, t.name,
		       SUM(GREATEST(d.amount + d.late_fee - d.total_paid, 0)) AS outstanding,
		       MIN(d.debt_date) AS oldest_debt_date
		FROM debt_lines d
		JOIN stands s ON s.stand_id = d.stand_id
		LEFT JOIN tenant_assignments a ON a.stand_id = s.stand_id AND a.current
		LEFT JOIN tenants t ON t.tenant_id = a.tenant_id
		WHERE d.active AND NOT d.settled
		GROUP BY s.stand_id, s.description, t.name
		HAVING SUM(GREATEST(d.amount + d.late_fee - d.total_paid, 0)) > 0
		ORDER BY outstanding DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query debtors report", err)
	}
	defer rows.Close()

	report := []domain.DebtorRow{}
	for rows.Next() {
		var row domain.DebtorRow
		if err := rows.Scan(&row.StandID, &row.StandDescription, &row.TenantName, &row.Outstanding, &row.OldestDebtDate); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan debtor row", err)
		}
		report = append(report, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating debtor rows", err)
	}
	return report, nil
}

// GetIncomeExpenseSummary totals receipts created within [from, to].
func (r *PgxReportingRepository) GetIncomeExpenseSummary(ctx context.Context, from, to time.Time) (*domain.IncomeExpenseSummary, error) {
	query := `
		SELECT COALESCE(SUM(total) FILTER (WHERE type = 'INCOME'), 0) AS income_total,
		       COALESCE(SUM(total) FILTER (WHERE type = 'EXPENSE'), 0) AS expense_total
		FROM receipts
		WHERE created_at >= $1 AND created_at <= $2;
	`
	var incomeTotal, expenseTotal decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, from, to).Scan(&incomeTotal, &expenseTotal); err != nil {
		return nil, apperrors.NewAppError(500, "failed to query income/expense summary", err)
	}

	return &domain.IncomeExpenseSummary{
		From:         from,
		To:           to,
		IncomeTotal:  incomeTotal,
		ExpenseTotal: expenseTotal,
		Net:          incomeTotal.Sub(expenseTotal),
	}, nil
}
