package collections

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
)

// Summarize agrupa los documentos abiertos del alcance en buckets y calcula totales, conteos y
// promedios de días. Un conjunto vacío produce un resumen en cero.
func Summarize(docs []entity.Document, ref time.Time, scope entity.ScopeFilter) entity.CollectionsSummary {
	var (
		overdue, notYetDue, credit, undated decimal.Decimal
		overdueCount, notYetDueCount        int
		undatedCount                        int
		overdueDays, allDays                int
	)

	for _, doc := range docs {
		if !scope.Matches(doc) || !IsOpen(doc) {
			continue
		}
		bucket, ok := Classify(doc, ref)
		if !ok {
			continue
		}
		switch bucket {
		case entity.BucketOverdue:
			overdue = overdue.Add(doc.Balance)
			overdueCount++
			days := max(DaysOverdue(doc, ref), 0)
			overdueDays += days
			allDays += days
		case entity.BucketNotYetDue:
			notYetDue = notYetDue.Add(doc.Balance)
			notYetDueCount++
		case entity.BucketCredit:
			credit = credit.Add(doc.Balance)
		case entity.BucketUndatedCredit:
			undated = undated.Add(doc.Balance)
			undatedCount++
		}
	}

	totalCount := overdueCount + notYetDueCount + undatedCount
	elapsed, remaining := MonthProgress(ref)

	return entity.CollectionsSummary{
		OverdueTotal:         overdue.Round(2),
		NotYetDueTotal:       notYetDue.Round(2),
		CreditTotal:          credit.Abs().Round(2),
		UndatedCreditTotal:   undated.Abs().Round(2),
		OverdueCount:         overdueCount,
		TotalCount:           totalCount,
		AvgDaysOverdue:       roundedAverage(overdueDays, overdueCount),
		AvgDaysAll:           roundedAverage(allDays, totalCount),
		DaysElapsedInMonth:   elapsed,
		DaysRemainingInMonth: remaining,
	}
}

// MonthProgress día del mes de ref y días que faltan para terminar el mes.
func MonthProgress(ref time.Time) (elapsed, remaining int) {
	y, m, d := ref.Date()
	last := time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return d, last - d
}

// roundedAverage promedio entero con redondeo half-up; 0 si n es 0.
func roundedAverage(sum, n int) int {
	if n == 0 {
		return 0
	}
	if sum < 0 {
		return -roundedAverage(-sum, n)
	}
	return (2*sum + n) / (2 * n)
}
