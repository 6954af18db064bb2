package repository

import (
	"context"

	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
)

// StatementRepository obtiene las filas y el pie del estado de cuenta desde el procedimiento almacenado.
// Devuelve domain.ErrNotFound si la clave no existe.
type StatementRepository interface {
	FindClientStatement(ctx context.Context, clientID string) (*entity.StatementSource, error)
	FindSellerStatement(ctx context.Context, sellers entity.SellerScope) (*entity.StatementSource, error)
}
