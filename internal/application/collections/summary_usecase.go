// Package collections contiene los casos de uso de cobranzas: resumen de cartera,
// documentos pendientes, tendencia del dashboard y estado de cuenta.
package collections

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/cobranzas-api/internal/application/dto"
	"github.com/jhoicas/cobranzas-api/internal/application/ports"
	"github.com/jhoicas/cobranzas-api/internal/domain"
	"github.com/jhoicas/cobranzas-api/internal/domain/collections"
	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
	"github.com/jhoicas/cobranzas-api/internal/domain/repository"
)

// SummaryUseCase resumen de cobranzas y listado de documentos pendientes por alcance.
//
// La fecha de referencia se toma una sola vez por llamada y se usa para clasificar
// todos los documentos de esa llamada.
type SummaryUseCase struct {
	docRepo repository.DocumentRepository
	clock   ports.Clock
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(docRepo repository.DocumentRepository, clock ports.Clock) *SummaryUseCase {
	return &SummaryUseCase{docRepo: docRepo, clock: clock}
}

// GetCollectionsSummary resumen de la cartera para un cliente, un conjunto de vendedores o toda la cartera.
// Un alcance sin documentos devuelve un resumen en cero, no ErrNotFound.
func (uc *SummaryUseCase) GetCollectionsSummary(ctx context.Context, scope entity.ScopeFilter) (*dto.CollectionsSummaryDTO, error) {
	ref := uc.clock.Today()
	summary, err := SummarizeScope(ctx, uc.docRepo, scope, ref)
	if err != nil {
		return nil, fmt.Errorf("collections.GetCollectionsSummary: %w", err)
	}
	out := ToSummaryDTO(summary, ref)
	return &out, nil
}

// DocumentQuery filtros opcionales del listado de pendientes. Las fechas acotan el vencimiento
// (ambos extremos inclusivos); Bucket vacío no restringe.
type DocumentQuery struct {
	DueBefore *time.Time
	DueAfter  *time.Time
	Bucket    entity.AgingBucket
}

func (q DocumentQuery) validate() error {
	if q.DueBefore != nil && q.DueAfter != nil && q.DueAfter.After(*q.DueBefore) {
		return fmt.Errorf("%w: due_after posterior a due_before", domain.ErrInvalidInput)
	}
	switch q.Bucket {
	case "", entity.BucketOverdue, entity.BucketNotYetDue, entity.BucketCredit, entity.BucketUndatedCredit:
		return nil
	}
	return fmt.Errorf("%w: bucket %q", domain.ErrInvalidInput, q.Bucket)
}

// ListOpenDocuments documentos abiertos (no anulados, con saldo) del alcance con bucket y días de atraso.
func (uc *SummaryUseCase) ListOpenDocuments(ctx context.Context, scope entity.ScopeFilter, q DocumentQuery) (*dto.OpenDocumentsResponse, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	ref := uc.clock.Today()
	f := documentFilter(scope)
	f.DueBefore, f.DueAfter = q.DueBefore, q.DueAfter
	docs, err := uc.docRepo.FindDocuments(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("collections.ListOpenDocuments: %w", err)
	}
	aged := collections.AgeDocuments(docs, ref, scope)

	out := &dto.OpenDocumentsResponse{
		ReferenceDate: ref.Format(dateLayout),
		Items:         make([]dto.OpenDocumentDTO, 0, len(aged)),
	}
	for _, a := range aged {
		if q.Bucket != "" && a.Bucket != q.Bucket {
			continue
		}
		out.Items = append(out.Items, toOpenDocumentDTO(a.Document, a.Bucket, a.DaysOverdue))
	}
	return out, nil
}

// GetDocument detalle de un documento del alcance. Un documento de otro vendedor se reporta
// como no encontrado. Los anulados y saldados se devuelven sin bucket.
func (uc *SummaryUseCase) GetDocument(ctx context.Context, id string, sellers entity.SellerScope) (*dto.DocumentDetailDTO, error) {
	doc, err := uc.docRepo.GetDocument(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("collections.GetDocument: %w", err)
	}
	if !sellers.Contains(doc.SellerCode()) {
		return nil, domain.ErrNotFound
	}

	var (
		bucket entity.AgingBucket
		days   int
	)
	if collections.IsOpen(*doc) {
		ref := uc.clock.Today()
		bucket, _ = collections.Classify(*doc, ref)
		days = collections.DaysOverdue(*doc, ref)
	}
	return &dto.DocumentDetailDTO{
		OpenDocumentDTO: toOpenDocumentDTO(*doc, bucket, days),
		Collected:       doc.Amount.Sub(doc.Balance).Round(2),
		Voided:          doc.Voided,
		PaymentTermCode: derefString(doc.PaymentTermCode),
	}, nil
}

func toOpenDocumentDTO(d entity.Document, bucket entity.AgingBucket, days int) dto.OpenDocumentDTO {
	return dto.OpenDocumentDTO{
		ID:          d.ID,
		ClientID:    d.ClientID,
		SellerID:    d.SellerCode(),
		DocType:     string(d.DocType),
		DocTypeName: d.DocType.Description(),
		DocNumber:   d.DocNumber,
		Amount:      d.Amount.Round(2),
		Balance:     d.Balance.Round(2),
		IssueDate:   d.IssueDate,
		DueDate:     d.DueDate,
		Bucket:      string(bucket),
		DaysOverdue: days,
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// SummarizeScope consulta los documentos del alcance y calcula el resumen con la fecha dada.
func SummarizeScope(ctx context.Context, repo repository.DocumentRepository, scope entity.ScopeFilter, ref time.Time) (entity.CollectionsSummary, error) {
	docs, err := repo.FindDocuments(ctx, documentFilter(scope))
	if err != nil {
		return entity.CollectionsSummary{}, err
	}
	return collections.Summarize(docs, ref, scope), nil
}

func documentFilter(scope entity.ScopeFilter) entity.DocumentFilter {
	return entity.DocumentFilter{
		ClientID:      scope.ClientID,
		Sellers:       scope.Sellers,
		ExcludeVoided: true,
		OpenOnly:      true,
	}
}
