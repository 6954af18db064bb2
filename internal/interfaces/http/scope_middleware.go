package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cobranzas-api/internal/application/dto"
	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
)

// SellersQueryParam parámetro con el que se acota la cartera ("A,B" o "-1").
const SellersQueryParam = "sellers"

// ScopeMiddleware resuelve el alcance efectivo de cartera de la petición y lo deja en
// LocalSellerScope. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 403 NO_SCOPE si el token no otorga ningún vendedor.
//   - ?sellers= solo puede acotar el alcance del token, nunca ampliarlo.
func ScopeMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		scope := GetTokenScope(c)
		if scope.Empty() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "NO_SCOPE",
				Message: "el usuario no tiene vendedores asignados",
			})
		}
		if raw := c.Query(SellersQueryParam); raw != "" {
			scope = scope.Narrow(entity.ParseSellerScope(raw))
		}
		c.Locals(LocalSellerScope, scope)
		return c.Next()
	}
}

// GetSellerScope alcance efectivo de la petición (después de ScopeMiddleware).
func GetSellerScope(c *fiber.Ctx) entity.SellerScope {
	if s, ok := c.Locals(LocalSellerScope).(entity.SellerScope); ok {
		return s
	}
	return GetTokenScope(c)
}
