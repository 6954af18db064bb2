package dto

import "github.com/shopspring/decimal"

// DashboardTrendDTO respuesta de GET /api/dashboard/trend.
// Situación de la cartera más las series mensuales de ventas y cobros y sus indicadores.
type DashboardTrendDTO struct {
	Summary       CollectionsSummaryDTO `json:"summary"`
	MonthlySeries MonthlySeriesDTO      `json:"monthly_series"`
	Indicators    IndicatorsDTO         `json:"indicators"`
}

// MonthlySeriesDTO series ordenadas cronológicamente.
type MonthlySeriesDTO struct {
	Sales       []MonthlyAmountDTO `json:"sales"`
	Collections []MonthlyAmountDTO `json:"collections"`
}

// MonthlyAmountDTO punto de una serie mensual.
type MonthlyAmountDTO struct {
	Period string          `json:"period"` // YYYY-MM
	Label  string          `json:"label"`  // ej: "mar 2025"
	Amount decimal.Decimal `json:"amount"`
}

// IndicatorsDTO indicadores de tendencia del dashboard.
type IndicatorsDTO struct {
	Sales       TrendIndicatorDTO `json:"sales"`
	Collections TrendIndicatorDTO `json:"collections"`
}

// TrendIndicatorDTO mes actual contra mes anterior.
type TrendIndicatorDTO struct {
	Metric              string          `json:"metric"`
	Current             decimal.Decimal `json:"current"`
	Previous            decimal.Decimal `json:"previous"`
	PercentageVariation decimal.Decimal `json:"percentage_variation"`
}
