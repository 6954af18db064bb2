package repository

import (
	"context"
	"time"

	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
)

// DocumentRepository puerto de lectura de documentos de cuentas por cobrar.
// Las implementaciones son read-only y consultan el saldo vigente en cada llamada.
type DocumentRepository interface {
	// FindDocuments devuelve los documentos que cumplen el filtro. Un filtro sin resultados no es error.
	FindDocuments(ctx context.Context, filter entity.DocumentFilter) ([]entity.Document, error)
	// GetDocument devuelve el documento por ID o domain.ErrNotFound.
	GetDocument(ctx context.Context, id string) (*entity.Document, error)
	// FindMonthlyAmounts devuelve la serie mensual de la métrica entre from y to, ordenada ascendente.
	FindMonthlyAmounts(ctx context.Context, metric entity.Metric, sellers entity.SellerScope, from, to time.Time) ([]entity.MonthlyAmount, error)
}
