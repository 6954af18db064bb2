package entity

import "github.com/shopspring/decimal"

// SummaryShapeVersion versión de la forma de CollectionsSummary expuesta a reportes.
const SummaryShapeVersion = 2

// CollectionsSummary resumen de cobranzas calculado por petición; no se muta tras construirse.
// CreditTotal y UndatedCreditTotal son magnitudes (nunca negativas).
type CollectionsSummary struct {
	OverdueTotal         decimal.Decimal
	NotYetDueTotal       decimal.Decimal
	CreditTotal          decimal.Decimal
	UndatedCreditTotal   decimal.Decimal
	OverdueCount         int
	TotalCount           int
	AvgDaysOverdue       int
	AvgDaysAll           int
	DaysElapsedInMonth   int
	DaysRemainingInMonth int
}

// NetTotal saldo neto: vencido + por vencer − créditos − créditos sin vencimiento.
func (s CollectionsSummary) NetTotal() decimal.Decimal {
	return s.OverdueTotal.Add(s.NotYetDueTotal).Sub(s.CreditTotal).Sub(s.UndatedCreditTotal)
}

// OverduePercent porcentaje vencido sobre el total por cobrar (vencido + por vencer).
func (s CollectionsSummary) OverduePercent() decimal.Decimal {
	gross := s.OverdueTotal.Add(s.NotYetDueTotal)
	if !gross.IsPositive() {
		return decimal.Zero
	}
	return s.OverdueTotal.Div(gross).Mul(decimal.NewFromInt(100)).Round(2)
}
