package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cobranzas-api/internal/application/collections"
	"github.com/jhoicas/cobranzas-api/internal/application/dto"
)

// StatementHandler estados de cuenta en JSON, PDF o XLSX.
type StatementHandler struct {
	uc *collections.StatementUseCase
}

// NewStatementHandler construye el handler.
func NewStatementHandler(uc *collections.StatementUseCase) *StatementHandler {
	return &StatementHandler{uc: uc}
}

// ClientStatement godoc
// @Summary      Estado de cuenta del cliente
// @Tags         statements
// @Produce      json
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        id      path   string  true   "ID del cliente"
// @Param        format  query  string  false  "json | pdf | xlsx"
// @Success      200  {object}  dto.StatementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/clients/{id}/statement [get]
func (h *StatementHandler) ClientStatement(c *fiber.Ctx) error {
	return h.serve(c, collections.StatementKey{ClientID: c.Params("id"), Sellers: GetSellerScope(c)})
}

// SellerStatement godoc
// @Summary      Estado de cuenta por vendedores
// @Description  Documentos abiertos de la cartera del usuario, acotable con ?sellers=.
// @Tags         statements
// @Produce      json
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        sellers  query  string  false  "códigos de vendedor (A,B) o -1"
// @Param        format   query  string  false  "json | pdf | xlsx"
// @Success      200  {object}  dto.StatementResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/sellers/statement [get]
func (h *StatementHandler) SellerStatement(c *fiber.Ctx) error {
	return h.serve(c, collections.StatementKey{Sellers: GetSellerScope(c)})
}

func (h *StatementHandler) serve(c *fiber.Ctx, key collections.StatementKey) error {
	var q dto.StatementQuery
	if ok, err := bindQuery(c, &q); !ok {
		return err
	}
	if q.Format == "" || q.Format == "json" {
		out, err := h.uc.GetStatementDTO(c.UserContext(), key)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}

	file, err := h.uc.RenderStatement(c.UserContext(), key, q.Format)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Filename))
	return c.Send(file.Content)
}
