package dto

import "github.com/shopspring/decimal"

// ClientSearchQuery parámetros de GET /api/clients.
type ClientSearchQuery struct {
	Search               string `query:"search" validate:"omitempty,max=100"`
	Sellers              string `query:"sellers" validate:"omitempty,max=500"`
	LastYearSales        string `query:"lastYearSales"`
	OverdueDebt          string `query:"overdueDebt"`
	TotalOverdue         string `query:"totalOverdue"`
	DaysPastDue          string `query:"daysPastDue"`
	DaysSinceLastInvoice string `query:"daysSinceLastInvoice"`
	OrderBy              string `query:"orderBy" validate:"omitempty,max=40"`
	OrderDesc            bool   `query:"orderDesc"`
	WithBalance          bool   `query:"withBalance"`
}

// ClientResponse salida de un cliente con sus agregados.
type ClientResponse struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	TaxID                string          `json:"tax_id"`
	Phone                string          `json:"phone,omitempty"`
	Email                string          `json:"email,omitempty"`
	Address              string          `json:"address,omitempty"`
	SellerID             string          `json:"seller_id"`
	SellerName           string          `json:"seller_name,omitempty"`
	PaymentTermDays      *int            `json:"payment_term_days,omitempty"`
	DaysSinceLastInvoice *int            `json:"days_since_last_invoice"`
	Overdue              decimal.Decimal `json:"overdue"`
	Total                decimal.Decimal `json:"total"`
	QuarterlySales       decimal.Decimal `json:"quarterly_sales"`
}

// ClientListResponse listado de clientes segmentados.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Total int              `json:"total"`
}

// ClientSummaryResponse cliente más el resumen de su cartera.
type ClientSummaryResponse struct {
	Client  ClientResponse        `json:"client"`
	Summary CollectionsSummaryDTO `json:"summary"`
}
