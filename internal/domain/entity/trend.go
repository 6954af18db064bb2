package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Metric métrica mensual del dashboard.
type Metric string

const (
	MetricSales       Metric = "SALES"
	MetricCollections Metric = "COLLECTIONS"
)

// Valid indica si la métrica es conocida.
func (m Metric) Valid() bool { return m == MetricSales || m == MetricCollections }

// MonthlyAmount monto agregado de un mes. Period es el primer día del mes.
type MonthlyAmount struct {
	Period time.Time
	Label  string
	Amount decimal.Decimal
}

// TrendIndicator valor actual, anterior y variación porcentual de una métrica.
type TrendIndicator struct {
	Metric              Metric
	Current             decimal.Decimal
	Previous            decimal.Decimal
	PercentageVariation decimal.Decimal
}
