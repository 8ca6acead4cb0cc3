package pgsql

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/galeria-sm/stands_backend/internal/apperrors"
	"github.com/galeria-sm/stands_backend/internal/core/domain"
	portsrepo "github.com/galeria-sm/stands_backend/internal/core/ports/repositories"
	"github.com/galeria-sm/stands_backend/internal/models"
	"github.com/galeria-sm/stands_backend/internal/utils/mapping"
	"github.com/galeria-sm/stands_backend/internal/utils/pagination"
)

type PgxReceiptRepository struct {
	BaseRepository
}

// newPgxReceiptRepository creates a new repository for receipt and allocation data.
func newPgxReceiptRepository(pool *pgxpool.Pool) portsrepo.ReceiptRepositoryFacade {
	return &PgxReceiptRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReceiptRepositoryFacade = (*PgxReceiptRepository)(nil)

// lockedDebtLine is the slice of a debt line the allocation transaction needs.
type lockedDebtLine struct {
	DebtID    string
	Amount    decimal.Decimal
	LateFee   decimal.Decimal
	TotalPaid decimal.Decimal
	Settled   bool
	Active    bool
}

// lockDebtLines locks the given lines FOR UPDATE and returns their fresh state.
// IDs are locked in sorted order so two concurrent receipts touching overlapping
// lines cannot deadlock. Returns ErrNotFound if any line is missing.
func lockDebtLines(ctx context.Context, tx pgx.Tx, debtIDs []string) (map[string]*lockedDebtLine, error) {
	ids := make([]string, len(debtIDs))
	copy(ids, debtIDs)
	sort.Strings(ids)

	query := `
		SELECT debt_id, amount, late_fee, total_paid, settled, active
		FROM debt_lines
		WHERE debt_id = ANY($1)
		ORDER BY debt_id
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, ids)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock debt lines", err)
	}
	defer rows.Close()

	locked := make(map[string]*lockedDebtLine, len(ids))
	for rows.Next() {
		var l lockedDebtLine
		if err := rows.Scan(&l.DebtID, &l.Amount, &l.LateFee, &l.TotalPaid, &l.Settled, &l.Active); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan locked debt line", err)
		}
		locked[l.DebtID] = &l
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating locked debt lines", err)
	}

	for _, id := range ids {
		if _, ok := locked[id]; !ok {
			return nil, apperrors.NewNotFoundError("debt line " + id + " not found")
		}
	}
	return locked, nil
}

// asDomain returns the locked slice as a domain line so the balance and
// allocation arithmetic lives in one place.
func (l *lockedDebtLine) asDomain() domain.DebtLine {
	return domain.DebtLine{
		DebtID:    l.DebtID,
		Amount:    l.Amount,
		LateFee:   l.LateFee,
		TotalPaid: l.TotalPaid,
		Settled:   l.Settled,
		Active:    l.Active,
	}
}

// drawNumber locks the counter row for the document type, returns the assigned
// number and advances the counter. Numbers are never reused; a rolled-back
// transaction releases the lock without consuming one.
func drawNumber(ctx context.Context, tx pgx.Tx, docType domain.DocumentType) (int64, error) {
	var number int64
	err := tx.QueryRow(ctx, `
		SELECT next_number FROM document_numberings
		WHERE document_type = $1
		FOR UPDATE;
	`, string(docType)).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.NewNotFoundError("document counter " + string(docType) + " not found")
		}
		return 0, apperrors.NewAppError(500, "failed to lock document counter "+string(docType), err)
	}

	if _, err := tx.Exec(ctx, `
		UPDATE document_numberings SET next_number = next_number + 1
		WHERE document_type = $1;
	`, string(docType)); err != nil {
		return 0, apperrors.NewAppError(500, "failed to advance document counter "+string(docType), err)
	}
	return number, nil
}

const receiptInsertQuery = `
	INSERT INTO receipts (
		receipt_id, number, type, stand_id, payment_method_id, collecting_entity_id,
		operation_number, total, created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
`

const allocateQuery = `
	UPDATE debt_lines
	SET total_paid = $2, settled = $3,
	    last_updated_at = $4, last_updated_by = $5
	WHERE debt_id = $1;
`

const detailInsertQuery = `
	INSERT INTO receipt_details (
		detail_id, receipt_id, debt_id, concept_id, concept_description, tenant_name,
		description, amount, created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
`

func queueDetailInserts(batch *pgx.Batch, receiptID string, details []domain.ReceiptDetail) {
	for _, d := range details {
		m := mapping.ToModelReceiptDetail(d)
		m.ReceiptID = receiptID
		batch.Queue(detailInsertQuery,
			m.DetailID, m.ReceiptID, m.DebtID, m.ConceptID, m.ConceptDescription, m.TenantName,
			m.Description, m.Amount, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}
}

// SaveIncomeReceipt persists an income receipt and applies its allocations in one
// transaction: lock the referenced lines, revalidate every amount against the
// fresh balance, draw the number, insert the receipt with details, and increment
// totalPagado settling lines that reach zero. On any failure nothing is written.
func (r *PgxReceiptRepository) SaveIncomeReceipt(ctx context.Context, receipt domain.Receipt) (*domain.Receipt, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	debtIDs := make([]string, 0, len(receipt.Details))
	for _, d := range receipt.Details {
		if d.DebtID != nil {
			debtIDs = append(debtIDs, *d.DebtID)
		}
	}

	locked, err := lockDebtLines(ctx, tx, debtIDs)
	if err != nil {
		return nil, err
	}

	// Revalidate against the locked state. The service already checked the draft,
	// but balances may have moved between read and lock; this check is the one
	// that counts. Every violation is reported.
	validation := apperrors.NewValidationError()
	for _, d := range receipt.Details {
		line := locked[*d.DebtID]
		if !line.Active {
			validation.Add("debt line %s is inactive", line.DebtID)
			continue
		}
		if line.Settled {
			validation.Add("debt line %s is already settled", line.DebtID)
			continue
		}
		if balance := line.asDomain().Balance(); d.Amount.GreaterThan(balance) {
			validation.Add("amount %s exceeds the outstanding balance %s of debt line %s",
				d.Amount.String(), balance.String(), line.DebtID)
		}
	}
	if validation.HasViolations() {
		return nil, validation
	}

	number, err := drawNumber(ctx, tx, domain.DocumentTypeFor(receipt.Type))
	if err != nil {
		return nil, err
	}
	receipt.Number = number

	m := mapping.ToModelReceipt(receipt)
	if _, err := tx.Exec(ctx, receiptInsertQuery,
		m.ReceiptID, m.Number, m.Type, m.StandID, m.PaymentMethodID, m.CollectingEntityID,
		m.OperationNumber, m.Total, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	); err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert receipt "+m.ReceiptID, err)
	}

	batch := &pgx.Batch{}
	queueDetailInserts(batch, receipt.ReceiptID, receipt.Details)

	// The rows are locked, so the new paid total and settled state are computed
	// here, in domain.DebtLine.AfterAllocation, and only persisted by the SQL.
	for _, d := range receipt.Details {
		line := locked[*d.DebtID]
		newPaid, settled := line.asDomain().AfterAllocation(d.Amount)
		batch.Queue(allocateQuery, *d.DebtID, newPaid, settled, receipt.LastUpdatedAt, receipt.LastUpdatedBy)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to execute allocation batch for receipt "+m.ReceiptID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// SaveExpenseReceipt persists an expense receipt with its details. No debt line is
// touched; only the counter and the receipt tables change.
func (r *PgxReceiptRepository) SaveExpenseReceipt(ctx context.Context, receipt domain.Receipt) (*domain.Receipt, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	number, err := drawNumber(ctx, tx, domain.DocumentTypeFor(receipt.Type))
	if err != nil {
		return nil, err
	}
	receipt.Number = number

	m := mapping.ToModelReceipt(receipt)
	if _, err := tx.Exec(ctx, receiptInsertQuery,
		m.ReceiptID, m.Number, m.Type, m.StandID, m.PaymentMethodID, m.CollectingEntityID,
		m.OperationNumber, m.Total, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	); err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert receipt "+m.ReceiptID, err)
	}

	batch := &pgx.Batch{}
	queueDetailInserts(batch, receipt.ReceiptID, receipt.Details)
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to execute detail batch for receipt "+m.ReceiptID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// UpdateIncomeReceipt replaces an income receipt's header and detail set. The old
// allocations are backed out and the new ones validated against the resulting
// effective balances, all under the same locks. The number is kept.
func (r *PgxReceiptRepository) UpdateIncomeReceipt(ctx context.Context, receipt domain.Receipt) (*domain.Receipt, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	// Read the old allocations under the lock of their receipt row.
	var receiptType string
	err = tx.QueryRow(ctx, `SELECT type FROM receipts WHERE receipt_id = $1 FOR UPDATE;`, receipt.ReceiptID).Scan(&receiptType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock receipt "+receipt.ReceiptID, err)
	}
	if domain.ReceiptType(receiptType) != domain.Income {
		return nil, apperrors.NewAppError(400, "receipt "+receipt.ReceiptID+" is not an income receipt", apperrors.ErrValidation)
	}

	oldAllocations := map[string]decimal.Decimal{}
	rows, err := tx.Query(ctx, `
		SELECT debt_id, amount FROM receipt_details
		WHERE receipt_id = $1 AND debt_id IS NOT NULL;
	`, receipt.ReceiptID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to read previous allocations of receipt "+receipt.ReceiptID, err)
	}
	for rows.Next() {
		var debtID string
		var amount decimal.Decimal
		if err := rows.Scan(&debtID, &amount); err != nil {
			rows.Close()
			return nil, apperrors.NewAppError(500, "failed to scan previous allocation", err)
		}
		oldAllocations[debtID] = oldAllocations[debtID].Add(amount)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating previous allocations", err)
	}

	// Lock the union of previously and newly referenced lines.
	idSet := map[string]bool{}
	for debtID := range oldAllocations {
		idSet[debtID] = true
	}
	newAllocations := map[string]decimal.Decimal{}
	for _, d := range receipt.Details {
		idSet[*d.DebtID] = true
		newAllocations[*d.DebtID] = newAllocations[*d.DebtID].Add(d.Amount)
	}
	debtIDs := make([]string, 0, len(idSet))
	for debtID := range idSet {
		debtIDs = append(debtIDs, debtID)
	}

	locked, err := lockDebtLines(ctx, tx, debtIDs)
	if err != nil {
		return nil, err
	}

	// Validate the new amounts against effective balances with this receipt's old
	// allocations backed out.
	validation := apperrors.NewValidationError()
	for debtID, amount := range newAllocations {
		line := locked[debtID]
		if !line.Active {
			validation.Add("debt line %s is inactive", debtID)
			continue
		}
		effective := line.asDomain()
		effective.TotalPaid = effective.TotalPaid.Sub(oldAllocations[debtID])
		if balance := effective.Balance(); amount.GreaterThan(balance) {
			validation.Add("amount %s exceeds the outstanding balance %s of debt line %s",
				amount.String(), balance.String(), debtID)
		}
	}
	if validation.HasViolations() {
		return nil, validation
	}

	// Back out the old allocation per line, apply the new one and recompute
	// settled from the result, all through domain.DebtLine.AfterAllocation.
	batch := &pgx.Batch{}
	for debtID := range idSet {
		effective := locked[debtID].asDomain()
		effective.TotalPaid = effective.TotalPaid.Sub(oldAllocations[debtID])
		newPaid, settled := effective.AfterAllocation(newAllocations[debtID])
		batch.Queue(allocateQuery, debtID, newPaid, settled,
			receipt.LastUpdatedAt, receipt.LastUpdatedBy)
	}

	batch.Queue(`DELETE FROM receipt_details WHERE receipt_id = $1;`, receipt.ReceiptID)

	m := mapping.ToModelReceipt(receipt)
	batch.Queue(`
		UPDATE receipts
		SET stand_id = $2, payment_method_id = $3, collecting_entity_id = $4,
		    operation_number = $5, total = $6, last_updated_at = $7, last_updated_by = $8
		WHERE receipt_id = $1;
	`, m.ReceiptID, m.StandID, m.PaymentMethodID, m.CollectingEntityID,
		m.OperationNumber, m.Total, m.LastUpdatedAt, m.LastUpdatedBy)

	queueDetailInserts(batch, receipt.ReceiptID, receipt.Details)

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to execute reallocation batch for receipt "+m.ReceiptID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &receipt, nil
}

const receiptColumns = `receipt_id, number, type, stand_id, payment_method_id, collecting_entity_id,
	       operation_number, total, created_at, created_by, last_updated_at, last_updated_by`

func scanReceipt(row pgx.Row) (*models.Receipt, error) {
	var m models.Receipt
	err := row.Scan(
		&m.ReceiptID, &m.Number, &m.Type, &m.StandID, &m.PaymentMethodID, &m.CollectingEntityID,
		&m.OperationNumber, &m.Total, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindReceiptByID retrieves a receipt with its details.
func (r *PgxReceiptRepository) FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE receipt_id = $1;`
	m, err := scanReceipt(r.Pool.QueryRow(ctx, query, receiptID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find receipt by ID "+receiptID, err)
	}

	details, err := r.findDetails(ctx, receiptID)
	if err != nil {
		return nil, err
	}

	receipt := mapping.ToDomainReceipt(*m)
	receipt.Details = details
	return &receipt, nil
}

func (r *PgxReceiptRepository) findDetails(ctx context.Context, receiptID string) ([]domain.ReceiptDetail, error) {
	query := `
		SELECT detail_id, receipt_id, debt_id, concept_id, concept_description, tenant_name,
		       description, amount, created_at, created_by, last_updated_at, last_updated_by
		FROM receipt_details
		WHERE receipt_id = $1
		ORDER BY created_at, detail_id;
	`
	rows, err := r.Pool.Query(ctx, query, receiptID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query details for receipt "+receiptID, err)
	}
	defer rows.Close()

	details := []models.ReceiptDetail{}
	for rows.Next() {
		var d models.ReceiptDetail
		if err := rows.Scan(
			&d.DetailID, &d.ReceiptID, &d.DebtID, &d.ConceptID, &d.ConceptDescription, &d.TenantName,
			&d.Description, &d.Amount, &d.CreatedAt, &d.CreatedBy, &d.LastUpdatedAt, &d.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan detail row for receipt "+receiptID, err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating detail rows for receipt "+receiptID, err)
	}
	return mapping.ToDomainReceiptDetailSlice(details), nil
}

// ListReceipts retrieves a page of receipts of one type, newest first, using
// created_at token pagination. Details are loaded per receipt of the page.
func (r *PgxReceiptRepository) ListReceipts(ctx context.Context, receiptType domain.ReceiptType, limit int, nextToken *string) ([]domain.Receipt, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE type = $1`
	args := []interface{}{string(receiptType)}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, decodeErr := pagination.DecodeDateBasedToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastCreatedAt)
		query += ` AND created_at < $2`
	}

	args = append(args, fetchLimit)
	query += ` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query receipts", err)
	}
	defer rows.Close()

	receipts := []domain.Receipt{}
	for rows.Next() {
		m, err := scanReceipt(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan receipt row", err)
		}
		receipts = append(receipts, mapping.ToDomainReceipt(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating receipt rows", err)
	}

	var newNextToken *string
	if len(receipts) > limit {
		receipts = receipts[:limit]
		token := pagination.EncodeDateBasedToken(receipts[len(receipts)-1].CreatedAt)
		newNextToken = &token
	}

	for i := range receipts {
		details, err := r.findDetails(ctx, receipts[i].ReceiptID)
		if err != nil {
			return nil, nil, err
		}
		receipts[i].Details = details
	}
	return receipts, newNextToken, nil
}
