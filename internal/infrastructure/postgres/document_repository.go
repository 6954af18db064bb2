package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cobranzas-api/internal/domain"
	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
	"github.com/jhoicas/cobranzas-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo lectura de documentos de cuentas por cobrar sobre PostgreSQL.
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador de documentos.
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

// documentRow fila tipada de la consulta; se valida antes de convertirse en entity.Document.
type documentRow struct {
	ID              string
	ClientID        string
	SellerCode      *string
	CompanyID       *string
	DocType         string
	DocNumber       string
	Amount          decimal.Decimal
	Balance         decimal.Decimal
	IssueDate       time.Time
	DueDate         *time.Time
	Voided          bool
	PaymentTermCode *string
}

// toEntity valida las invariantes del documento en el borde del adaptador.
func (r documentRow) toEntity() (entity.Document, error) {
	dt := entity.DocType(r.DocType)
	switch {
	case !dt.Valid():
		return entity.Document{}, fmt.Errorf("%w: %s tipo %q desconocido", domain.ErrInvalidDocument, r.ID, r.DocType)
	case r.Balance.IsNegative() && !dt.AllowsNegativeBalance():
		return entity.Document{}, fmt.Errorf("%w: %s (%s) con saldo negativo", domain.ErrInvalidDocument, r.ID, r.DocType)
	case r.DueDate == nil && dt.RequiresDueDate():
		return entity.Document{}, fmt.Errorf("%w: %s (%s) sin fecha de vencimiento", domain.ErrInvalidDocument, r.ID, r.DocType)
	}
	return entity.Document{
		ID:              r.ID,
		ClientID:        r.ClientID,
		SellerID:        r.SellerCode,
		CompanyID:       r.CompanyID,
		DocType:         dt,
		DocNumber:       r.DocNumber,
		Amount:          r.Amount,
		Balance:         r.Balance,
		IssueDate:       r.IssueDate,
		DueDate:         r.DueDate,
		Voided:          r.Voided,
		PaymentTermCode: r.PaymentTermCode,
	}, nil
}

// FindDocuments documentos del cliente y/o vendedores indicados, con el saldo vigente.
func (r *DocumentRepo) FindDocuments(ctx context.Context, f entity.DocumentFilter) ([]entity.Document, error) {
	if f.Sellers.Empty() {
		return nil, nil
	}
	const query = `
	SELECT id, client_id, seller_code, company_id, doc_type, doc_number,
	       amount, balance, issue_date, due_date, voided, payment_term_code
	FROM documents
	WHERE ($1::VARCHAR   IS NULL OR client_id   = $1)
	  AND ($2::VARCHAR[] IS NULL OR seller_code = ANY($2))
	  AND ($3::DATE      IS NULL OR due_date   <= $3)
	  AND ($4::DATE      IS NULL OR due_date   >= $4)
	  AND (NOT $5 OR NOT voided)
	  AND (NOT $6 OR balance <> 0)
	ORDER BY due_date NULLS LAST, doc_number`

	var dueBefore, dueAfter *time.Time
	if f.DueBefore != nil {
		d := dateOnly(*f.DueBefore)
		dueBefore = &d
	}
	if f.DueAfter != nil {
		d := dateOnly(*f.DueAfter)
		dueAfter = &d
	}

	rows, err := r.q.Query(ctx, query,
		nullIfEmpty(f.ClientID), sellerCodes(f.Sellers), dueBefore, dueAfter, f.ExcludeVoided, f.OpenOnly,
	)
	if err != nil {
		return nil, fmt.Errorf("documents.FindDocuments: %w", err)
	}
	defer rows.Close()

	var out []entity.Document
	for rows.Next() {
		row, err := scanDocumentRow(rows)
		if err != nil {
			return nil, fmt.Errorf("documents.FindDocuments scan: %w", err)
		}
		doc, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("documents.FindDocuments rows: %w", err)
	}
	return out, nil
}

// GetDocument documento por ID, anulado o no. Retorna domain.ErrNotFound si no existe.
func (r *DocumentRepo) GetDocument(ctx context.Context, id string) (*entity.Document, error) {
	const query = `
	SELECT id, client_id, seller_code, company_id, doc_type, doc_number,
	       amount, balance, issue_date, due_date, voided, payment_term_code
	FROM documents
	WHERE id = $1`

	row, err := scanDocumentRow(r.q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("documents.GetDocument: %w", err)
	}
	doc, err := row.toEntity()
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func scanDocumentRow(s pgx.Row) (documentRow, error) {
	var row documentRow
	err := s.Scan(
		&row.ID,
		&row.ClientID,
		&row.SellerCode,
		&row.CompanyID,
		&row.DocType,
		&row.DocNumber,
		&row.Amount,
		&row.Balance,
		&row.IssueDate,
		&row.DueDate,
		&row.Voided,
		&row.PaymentTermCode,
	)
	return row, err
}

// metricDocTypes documentos que alimentan cada métrica mensual.
var metricDocTypes = map[entity.Metric][]string{
	entity.MetricSales:       {string(entity.DocTypeInvoice)},
	entity.MetricCollections: {string(entity.DocTypeCollection)},
}

// FindMonthlyAmounts suma mensual de la métrica en [from, to), ordenada ascendente.
// Los cobros se guardan con signo negativo; se reporta su magnitud.
func (r *DocumentRepo) FindMonthlyAmounts(
	ctx context.Context,
	metric entity.Metric,
	sellers entity.SellerScope,
	from, to time.Time,
) ([]entity.MonthlyAmount, error) {
	types, ok := metricDocTypes[metric]
	if !ok {
		return nil, fmt.Errorf("%w: métrica %q", domain.ErrInvalidInput, metric)
	}
	if sellers.Empty() {
		return nil, nil
	}
	const query = `
	SELECT DATE_TRUNC('month', issue_date)::DATE AS period,
	       COALESCE(SUM(ABS(amount)), 0)        AS total
	FROM documents
	WHERE NOT voided
	  AND doc_type = ANY($1)
	  AND issue_date >= $2
	  AND issue_date <  $3
	  AND ($4::VARCHAR[] IS NULL OR seller_code = ANY($4))
	GROUP BY period
	ORDER BY period`

	rows, err := r.q.Query(ctx, query, types, dateOnly(from), dateOnly(to), sellerCodes(sellers))
	if err != nil {
		return nil, fmt.Errorf("documents.FindMonthlyAmounts: %w", err)
	}
	defer rows.Close()

	var out []entity.MonthlyAmount
	for rows.Next() {
		var m entity.MonthlyAmount
		if err := rows.Scan(&m.Period, &m.Amount); err != nil {
			return nil, fmt.Errorf("documents.FindMonthlyAmounts scan: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("documents.FindMonthlyAmounts rows: %w", err)
	}
	return out, nil
}
