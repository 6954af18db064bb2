package repository

import (
	"context"

	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
)

// ClientFilter filtro grueso que el almacén aplica antes de la segmentación en memoria.
type ClientFilter struct {
	NameTerm string
	Sellers  entity.SellerScope
}

// ClientRepository puerto de lectura del agregado de clientes.
type ClientRepository interface {
	FindClients(ctx context.Context, filter ClientFilter) ([]entity.Client, error)
	// GetByID devuelve domain.ErrNotFound si el cliente no existe.
	GetByID(ctx context.Context, id string) (*entity.Client, error)
}
