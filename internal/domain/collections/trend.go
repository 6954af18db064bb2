package collections

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// ComputeTrend toma el último punto de la serie como actual y el penúltimo como anterior.
// La serie debe venir ordenada cronológicamente de forma ascendente.
func ComputeTrend(series []entity.MonthlyAmount, metric entity.Metric) entity.TrendIndicator {
	ind := entity.TrendIndicator{
		Metric:              metric,
		Current:             decimal.Zero,
		Previous:            decimal.Zero,
		PercentageVariation: decimal.Zero,
	}
	n := len(series)
	if n == 0 {
		return ind
	}
	ind.Current = series[n-1].Amount
	if n >= 2 {
		ind.Previous = series[n-2].Amount
	}
	if !ind.Previous.IsZero() {
		ind.PercentageVariation = ind.Current.Sub(ind.Previous).
			Div(ind.Previous).
			Mul(hundred).
			Round(2)
	}
	return ind
}
