package collections

import (
	"fmt"
	"time"

	"github.com/jhoicas/cobranzas-api/internal/application/dto"
	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// ToSummaryDTO convierte el resumen de dominio en la respuesta HTTP.
func ToSummaryDTO(s entity.CollectionsSummary, ref time.Time) dto.CollectionsSummaryDTO {
	return dto.CollectionsSummaryDTO{
		Version:              entity.SummaryShapeVersion,
		ReferenceDate:        ref.Format(dateLayout),
		OverdueTotal:         s.OverdueTotal,
		NotYetDueTotal:       s.NotYetDueTotal,
		CreditTotal:          s.CreditTotal,
		UndatedCreditTotal:   s.UndatedCreditTotal,
		NetTotal:             s.NetTotal(),
		OverduePercent:       s.OverduePercent(),
		OverdueCount:         s.OverdueCount,
		TotalCount:           s.TotalCount,
		AvgDaysOverdue:       s.AvgDaysOverdue,
		AvgDaysAll:           s.AvgDaysAll,
		DaysElapsedInMonth:   s.DaysElapsedInMonth,
		DaysRemainingInMonth: s.DaysRemainingInMonth,
	}
}

func toStatementResponse(st *entity.Statement) *dto.StatementResponse {
	lines := st.Lines()
	out := &dto.StatementResponse{
		Label:       st.Label(),
		GeneratedAt: st.GeneratedAt().Format(dateLayout),
		Lines:       make([]dto.StatementLineDTO, 0, len(lines)),
		Footer:      make([]dto.StatementFooterDTO, 0, len(st.Footer())),
	}
	for _, l := range lines {
		out.Lines = append(out.Lines, dto.StatementLineDTO{
			DocType:     l.DocType,
			DocNumber:   l.DocNumber,
			IssueDate:   l.IssueDate,
			DueDate:     l.DueDate,
			NetTotal:    l.NetTotal,
			Collected:   l.Collected,
			Balance:     l.Balance,
			Flag:        l.Flag,
			ClientName:  l.ClientName,
			ClientTaxID: l.ClientTaxID,
			DaysOverdue: l.DaysOverdue,
		})
	}
	for _, f := range st.Footer() {
		out.Footer = append(out.Footer, dto.StatementFooterDTO{Label: f.Label, Amount: f.Amount})
	}
	return out
}

func toMonthlyDTO(series []entity.MonthlyAmount) []dto.MonthlyAmountDTO {
	out := make([]dto.MonthlyAmountDTO, 0, len(series))
	for _, m := range series {
		out = append(out, dto.MonthlyAmountDTO{
			Period: m.Period.Format("2006-01"),
			Label:  m.Label,
			Amount: m.Amount.Round(2),
		})
	}
	return out
}

func toIndicatorDTO(ind entity.TrendIndicator) dto.TrendIndicatorDTO {
	return dto.TrendIndicatorDTO{
		Metric:              string(ind.Metric),
		Current:             ind.Current.Round(2),
		Previous:            ind.Previous.Round(2),
		PercentageVariation: ind.PercentageVariation,
	}
}

// monthLabel etiqueta corta del mes, ej: "mar 2025".
func monthLabel(t time.Time) string {
	months := [...]string{
		"ene", "feb", "mar", "abr", "may", "jun",
		"jul", "ago", "sep", "oct", "nov", "dic",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
