package entity

import "github.com/shopspring/decimal"

// Client agregado de cliente. Los campos de saldo y ventas vienen precalculados por el almacén.
type Client struct {
	ID                   string
	Name                 string
	TaxID                string
	Phone                string
	Email                string
	Address              string
	SellerID             string
	SellerName           string
	PaymentTermDays      *int
	DaysSinceLastInvoice *int
	Overdue              decimal.Decimal
	Total                decimal.Decimal
	QuarterlySales       decimal.Decimal
}

// ClientFilterCriteria selectores de rango por nombre. "" o "all" no restringen.
type ClientFilterCriteria struct {
	LastYearSales        string
	OverdueDebt          string
	TotalOverdue         string
	DaysPastDue          string
	DaysSinceLastInvoice string
	OrderField           string
	OrderDesc            bool
	// WithBalanceOnly oculta clientes sin saldo cuando no hay término de búsqueda efectivo.
	WithBalanceOnly bool
}
