package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cobranzas-api/internal/application/clients"
	"github.com/jhoicas/cobranzas-api/internal/application/dto"
	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
)

// ClientHandler búsqueda segmentada y ficha de clientes.
type ClientHandler struct {
	uc *clients.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *clients.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Search godoc
// @Summary      Buscar clientes
// @Description  Filtra por nombre (mín. 3 caracteres), vendedores y rangos; ordena por el campo pedido.
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        search                query  string  false  "término de nombre"
// @Param        sellers               query  string  false  "códigos de vendedor (A,B) o -1"
// @Param        lastYearSales         query  string  false  "under-10 | 11-100 | 101-1000 | 1001-10000 | over-10000 | all"
// @Param        overdueDebt           query  string  false  "rango monetario"
// @Param        totalOverdue          query  string  false  "rango monetario"
// @Param        daysPastDue           query  string  false  "0-7 | 8-14 | 15-30 | 31-60 | 61-90 | all"
// @Param        daysSinceLastInvoice  query  string  false  "rango de días"
// @Param        orderBy               query  string  false  "name | total | overdue | quarterly_sales | days_since_last_invoice"
// @Param        orderDesc             query  bool    false  "orden descendente"
// @Param        withBalance           query  bool    false  "ocultar clientes sin saldo"
// @Success      200  {object}  dto.ClientListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/clients [get]
func (h *ClientHandler) Search(c *fiber.Ctx) error {
	var q dto.ClientSearchQuery
	if ok, err := bindQuery(c, &q); !ok {
		return err
	}
	out, err := h.uc.SearchClients(c.UserContext(), q.Search, GetSellerScope(c), entity.ClientFilterCriteria{
		LastYearSales:        q.LastYearSales,
		OverdueDebt:          q.OverdueDebt,
		TotalOverdue:         q.TotalOverdue,
		DaysPastDue:          q.DaysPastDue,
		DaysSinceLastInvoice: q.DaysSinceLastInvoice,
		OrderField:           q.OrderBy,
		OrderDesc:            q.OrderDesc,
		WithBalanceOnly:      q.WithBalance,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Ficha de cliente
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.ClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [get]
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetClient(c.UserContext(), c.Params("id"), GetSellerScope(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen de cartera del cliente
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.ClientSummaryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id}/summary [get]
func (h *ClientHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetClientSummary(c.UserContext(), c.Params("id"), GetSellerScope(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
