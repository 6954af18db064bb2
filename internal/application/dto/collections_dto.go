package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CollectionsSummaryDTO respuesta de GET /api/collections/summary.
type CollectionsSummaryDTO struct {
	Version              int             `json:"version"`
	ReferenceDate        string          `json:"reference_date"` // YYYY-MM-DD
	OverdueTotal         decimal.Decimal `json:"overdue_total"`
	NotYetDueTotal       decimal.Decimal `json:"not_yet_due_total"`
	CreditTotal          decimal.Decimal `json:"credit_total"`
	UndatedCreditTotal   decimal.Decimal `json:"undated_credit_total"`
	NetTotal             decimal.Decimal `json:"net_total"` // vencido + por vencer − créditos
	OverduePercent       decimal.Decimal `json:"overdue_percent"`
	OverdueCount         int             `json:"overdue_count"`
	TotalCount           int             `json:"total_count"`
	AvgDaysOverdue       int             `json:"avg_days_overdue"`
	AvgDaysAll           int             `json:"avg_days_all"`
	DaysElapsedInMonth   int             `json:"days_elapsed_in_month"`
	DaysRemainingInMonth int             `json:"days_remaining_in_month"`
}

// ScopeQuery parámetros de alcance de cartera.
type ScopeQuery struct {
	Sellers  string `query:"sellers" validate:"omitempty,max=500"`
	ClientID string `query:"client_id" validate:"omitempty,max=50"`
}

// DocumentsQuery parámetros de GET /api/collections/documents.
type DocumentsQuery struct {
	Sellers   string `query:"sellers" validate:"omitempty,max=500"`
	ClientID  string `query:"client_id" validate:"omitempty,max=50"`
	DueBefore string `query:"due_before" validate:"omitempty,datetime=2006-01-02"`
	DueAfter  string `query:"due_after" validate:"omitempty,datetime=2006-01-02"`
	Bucket    string `query:"bucket" validate:"omitempty,oneof=OVERDUE NOT_YET_DUE CREDIT UNDATED_CREDIT"`
}

// OpenDocumentDTO documento pendiente con su antigüedad.
type OpenDocumentDTO struct {
	ID          string          `json:"id"`
	ClientID    string          `json:"client_id"`
	SellerID    string          `json:"seller_id,omitempty"`
	DocType     string          `json:"doc_type"`
	DocTypeName string          `json:"doc_type_name"`
	DocNumber   string          `json:"doc_number"`
	Amount      decimal.Decimal `json:"amount"`
	Balance     decimal.Decimal `json:"balance"`
	IssueDate   time.Time       `json:"issue_date"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
	Bucket      string          `json:"bucket,omitempty"`
	DaysOverdue int             `json:"days_overdue"`
}

// OpenDocumentsResponse listado de documentos pendientes.
type OpenDocumentsResponse struct {
	ReferenceDate string            `json:"reference_date"`
	Items         []OpenDocumentDTO `json:"items"`
}

// DocumentDetailDTO respuesta de GET /api/collections/documents/:id.
type DocumentDetailDTO struct {
	OpenDocumentDTO
	Collected       decimal.Decimal `json:"collected"` // monto - saldo
	Voided          bool            `json:"voided"`
	PaymentTermCode string          `json:"payment_term_code,omitempty"`
}
