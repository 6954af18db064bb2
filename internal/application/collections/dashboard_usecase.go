package collections

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/cobranzas-api/internal/application/dto"
	"github.com/jhoicas/cobranzas-api/internal/application/ports"
	"github.com/jhoicas/cobranzas-api/internal/domain/collections"
	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
	"github.com/jhoicas/cobranzas-api/internal/domain/repository"
)

const defaultTrendMonths = 12

// DashboardUseCase situación de la cartera más ventas y cobros por mes con sus indicadores.
//
// Fuente de datos: DocumentRepository (consultas read-only).
type DashboardUseCase struct {
	docRepo repository.DocumentRepository
	clock   ports.Clock
	months  int
}

// NewDashboardUseCase construye el caso de uso. months es la ventana de la serie (incluye el mes en curso).
func NewDashboardUseCase(docRepo repository.DocumentRepository, clock ports.Clock, months int) *DashboardUseCase {
	if months < 2 {
		months = defaultTrendMonths
	}
	return &DashboardUseCase{docRepo: docRepo, clock: clock, months: months}
}

// GetDashboardTrend construye el DashboardTrendDTO para el alcance de vendedores.
//
// Tres consultas en paralelo:
//  1. FindDocuments                   → resumen de cartera
//  2. FindMonthlyAmounts(SALES)       → serie de ventas
//  3. FindMonthlyAmounts(COLLECTIONS) → serie de cobros
func (uc *DashboardUseCase) GetDashboardTrend(ctx context.Context, sellers entity.SellerScope) (*dto.DashboardTrendDTO, error) {
	ref := uc.clock.Today()

	// ── Ventana de meses ──────────────────────────────────────────────────────
	// Desde el día 1 de hace (months-1) meses hasta el día 1 del mes siguiente (exclusivo)
	currentMonth := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	from := currentMonth.AddDate(0, 1-uc.months, 0)
	to := currentMonth.AddDate(0, 1, 0)

	scope := entity.ScopeFilter{Sellers: sellers}

	var (
		summary         entity.CollectionsSummary
		sales, receipts []entity.MonthlyAmount
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s, err := SummarizeScope(gctx, uc.docRepo, scope, ref)
		if err != nil {
			return fmt.Errorf("resumen: %w", err)
		}
		summary = s
		return nil
	})

	g.Go(func() error {
		points, err := uc.docRepo.FindMonthlyAmounts(gctx, entity.MetricSales, sellers, from, to)
		if err != nil {
			return fmt.Errorf("ventas por mes: %w", err)
		}
		sales = points
		return nil
	})

	g.Go(func() error {
		points, err := uc.docRepo.FindMonthlyAmounts(gctx, entity.MetricCollections, sellers, from, to)
		if err != nil {
			return fmt.Errorf("cobros por mes: %w", err)
		}
		receipts = points
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("collections.GetDashboardTrend: %w", err)
	}

	sales = fillMonths(sales, from, uc.months)
	receipts = fillMonths(receipts, from, uc.months)

	return &dto.DashboardTrendDTO{
		Summary: ToSummaryDTO(summary, ref),
		MonthlySeries: dto.MonthlySeriesDTO{
			Sales:       toMonthlyDTO(sales),
			Collections: toMonthlyDTO(receipts),
		},
		Indicators: dto.IndicatorsDTO{
			Sales:       toIndicatorDTO(collections.ComputeTrend(sales, entity.MetricSales)),
			Collections: toIndicatorDTO(collections.ComputeTrend(receipts, entity.MetricCollections)),
		},
	}, nil
}

// fillMonths devuelve exactamente n meses desde from en orden ascendente; los meses
// sin movimiento valen 0 para que el mes anterior sea siempre el calendario anterior.
func fillMonths(points []entity.MonthlyAmount, from time.Time, n int) []entity.MonthlyAmount {
	byMonth := make(map[string]decimal.Decimal, len(points))
	for _, p := range points {
		key := p.Period.Format("2006-01")
		byMonth[key] = byMonth[key].Add(p.Amount)
	}
	out := make([]entity.MonthlyAmount, 0, n)
	for i := 0; i < n; i++ {
		period := from.AddDate(0, i, 0)
		out = append(out, entity.MonthlyAmount{
			Period: period,
			Label:  monthLabel(period),
			Amount: byMonth[period.Format("2006-01")],
		})
	}
	return out
}
