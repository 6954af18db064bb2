package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementQuery parámetros de los endpoints de estado de cuenta.
type StatementQuery struct {
	Format  string `query:"format" validate:"omitempty,oneof=json pdf xlsx"`
	Sellers string `query:"sellers" validate:"omitempty,max=500"`
}

// StatementResponse estado de cuenta en JSON.
type StatementResponse struct {
	Label       string               `json:"label"`
	GeneratedAt string               `json:"generated_at"` // YYYY-MM-DD
	Lines       []StatementLineDTO   `json:"lines"`
	Footer      []StatementFooterDTO `json:"footer"`
}

// StatementLineDTO línea del estado de cuenta.
type StatementLineDTO struct {
	DocType     string          `json:"doc_type"`
	DocNumber   string          `json:"doc_number"`
	IssueDate   time.Time       `json:"issue_date"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
	NetTotal    decimal.Decimal `json:"net_total"`
	Collected   decimal.Decimal `json:"collected"`
	Balance     decimal.Decimal `json:"balance"`
	Flag        *int            `json:"flag,omitempty"`
	ClientName  string          `json:"client_name,omitempty"`
	ClientTaxID string          `json:"client_tax_id,omitempty"`
	DaysOverdue *int            `json:"days_overdue,omitempty"`
}

// StatementFooterDTO par etiqueta/monto del pie.
type StatementFooterDTO struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// StatementFile estado de cuenta renderizado.
type StatementFile struct {
	Content     []byte
	ContentType string
	Filename    string
}
