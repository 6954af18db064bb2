package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cobranzas-api/internal/application/collections"
	"github.com/jhoicas/cobranzas-api/internal/application/dto"
	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
)

// CollectionsHandler resumen de cartera y documentos pendientes.
type CollectionsHandler struct {
	uc *collections.SummaryUseCase
}

// NewCollectionsHandler construye el handler.
func NewCollectionsHandler(uc *collections.SummaryUseCase) *CollectionsHandler {
	return &CollectionsHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen de cobranzas
// @Description  Totales por antigüedad, conteos y promedios de días de la cartera del usuario.
// @Tags         collections
// @Produce      json
// @Security     BearerAuth
// @Param        sellers    query  string  false  "códigos de vendedor (A,B) o -1"
// @Param        client_id  query  string  false  "limitar a un cliente"
// @Success      200  {object}  dto.CollectionsSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/collections/summary [get]
func (h *CollectionsHandler) Summary(c *fiber.Ctx) error {
	var q dto.ScopeQuery
	if ok, err := bindQuery(c, &q); !ok {
		return err
	}
	out, err := h.uc.GetCollectionsSummary(c.UserContext(), entity.ScopeFilter{ClientID: q.ClientID, Sellers: GetSellerScope(c)})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Documents godoc
// @Summary      Documentos pendientes
// @Description  Documentos abiertos con su bucket de antigüedad y días vencidos.
// @Tags         collections
// @Produce      json
// @Security     BearerAuth
// @Param        sellers     query  string  false  "códigos de vendedor (A,B) o -1"
// @Param        client_id   query  string  false  "limitar a un cliente"
// @Param        due_after   query  string  false  "vencimiento desde (AAAA-MM-DD)"
// @Param        due_before  query  string  false  "vencimiento hasta (AAAA-MM-DD)"
// @Param        bucket      query  string  false  "OVERDUE | NOT_YET_DUE | CREDIT | UNDATED_CREDIT"
// @Success      200  {object}  dto.OpenDocumentsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/collections/documents [get]
func (h *CollectionsHandler) Documents(c *fiber.Ctx) error {
	var q dto.DocumentsQuery
	if ok, err := bindQuery(c, &q); !ok {
		return err
	}
	return h.listDocuments(c, q)
}

// Overdue godoc
// @Summary      Documentos vencidos
// @Description  Atajo de /api/collections/documents?bucket=OVERDUE.
// @Tags         collections
// @Produce      json
// @Security     BearerAuth
// @Param        sellers    query  string  false  "códigos de vendedor (A,B) o -1"
// @Param        client_id  query  string  false  "limitar a un cliente"
// @Success      200  {object}  dto.OpenDocumentsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/collections/documents/overdue [get]
func (h *CollectionsHandler) Overdue(c *fiber.Ctx) error {
	var q dto.DocumentsQuery
	if ok, err := bindQuery(c, &q); !ok {
		return err
	}
	q.Bucket = string(entity.BucketOverdue)
	return h.listDocuments(c, q)
}

// Document godoc
// @Summary      Detalle de documento
// @Tags         collections
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del documento"
// @Success      200  {object}  dto.DocumentDetailDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/collections/documents/{id} [get]
func (h *CollectionsHandler) Document(c *fiber.Ctx) error {
	out, err := h.uc.GetDocument(c.UserContext(), c.Params("id"), GetSellerScope(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CollectionsHandler) listDocuments(c *fiber.Ctx, q dto.DocumentsQuery) error {
	query := collections.DocumentQuery{Bucket: entity.AgingBucket(q.Bucket)}
	// el validador ya garantizó el formato
	if q.DueBefore != "" {
		t, _ := time.Parse(time.DateOnly, q.DueBefore)
		query.DueBefore = &t
	}
	if q.DueAfter != "" {
		t, _ := time.Parse(time.DateOnly, q.DueAfter)
		query.DueAfter = &t
	}
	scope := entity.ScopeFilter{ClientID: q.ClientID, Sellers: GetSellerScope(c)}
	out, err := h.uc.ListOpenDocuments(c.UserContext(), scope, query)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
