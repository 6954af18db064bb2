// Package clients contiene los casos de uso de consulta y segmentación de clientes.
package clients

import (
	"context"
	"fmt"

	appcollections "github.com/jhoicas/cobranzas-api/internal/application/collections"
	"github.com/jhoicas/cobranzas-api/internal/application/dto"
	"github.com/jhoicas/cobranzas-api/internal/application/ports"
	"github.com/jhoicas/cobranzas-api/internal/domain"
	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
	"github.com/jhoicas/cobranzas-api/internal/domain/repository"
	"github.com/jhoicas/cobranzas-api/internal/domain/segmentation"
)

// ClientUseCase búsqueda segmentada, ficha y resumen de cartera por cliente.
type ClientUseCase struct {
	clientRepo repository.ClientRepository
	docRepo    repository.DocumentRepository
	clock      ports.Clock
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clientRepo repository.ClientRepository, docRepo repository.DocumentRepository, clock ports.Clock) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo, docRepo: docRepo, clock: clock}
}

// SearchClients lista los clientes del alcance que cumplen los criterios, en el orden pedido.
// Los criterios se validan antes de consultar el almacén.
func (uc *ClientUseCase) SearchClients(
	ctx context.Context,
	nameTerm string,
	sellers entity.SellerScope,
	criteria entity.ClientFilterCriteria,
) (*dto.ClientListResponse, error) {
	if err := segmentation.ValidateCriteria(criteria); err != nil {
		return nil, err
	}
	if sellers.Empty() {
		return &dto.ClientListResponse{Items: []dto.ClientResponse{}}, nil
	}

	candidates, err := uc.clientRepo.FindClients(ctx, repository.ClientFilter{
		NameTerm: segmentation.EffectiveNameTerm(nameTerm),
		Sellers:  sellers,
	})
	if err != nil {
		return nil, fmt.Errorf("clients.SearchClients: %w", err)
	}

	list, err := segmentation.FilterClients(candidates, nameTerm, sellers, criteria)
	if err != nil {
		return nil, err
	}

	out := &dto.ClientListResponse{Items: make([]dto.ClientResponse, 0, len(list)), Total: len(list)}
	for _, c := range list {
		out.Items = append(out.Items, toClientResponse(c))
	}
	return out, nil
}

// GetClient ficha del cliente. Un cliente fuera del alcance se reporta como no encontrado.
func (uc *ClientUseCase) GetClient(ctx context.Context, id string, sellers entity.SellerScope) (*dto.ClientResponse, error) {
	c, err := uc.load(ctx, id, sellers)
	if err != nil {
		return nil, err
	}
	out := toClientResponse(*c)
	return &out, nil
}

// GetClientSummary ficha del cliente más el resumen de su cartera.
func (uc *ClientUseCase) GetClientSummary(ctx context.Context, id string, sellers entity.SellerScope) (*dto.ClientSummaryResponse, error) {
	c, err := uc.load(ctx, id, sellers)
	if err != nil {
		return nil, err
	}
	ref := uc.clock.Today()
	summary, err := appcollections.SummarizeScope(ctx, uc.docRepo, entity.ScopeFilter{ClientID: c.ID}, ref)
	if err != nil {
		return nil, fmt.Errorf("clients.GetClientSummary: %w", err)
	}
	return &dto.ClientSummaryResponse{
		Client:  toClientResponse(*c),
		Summary: appcollections.ToSummaryDTO(summary, ref),
	}, nil
}

func (uc *ClientUseCase) load(ctx context.Context, id string, sellers entity.SellerScope) (*entity.Client, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("clients.GetClient: %w", err)
	}
	if !sellers.Contains(c.SellerID) {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func toClientResponse(c entity.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:                   c.ID,
		Name:                 c.Name,
		TaxID:                c.TaxID,
		Phone:                c.Phone,
		Email:                c.Email,
		Address:              c.Address,
		SellerID:             c.SellerID,
		SellerName:           c.SellerName,
		PaymentTermDays:      c.PaymentTermDays,
		DaysSinceLastInvoice: c.DaysSinceLastInvoice,
		Overdue:              c.Overdue.Round(2),
		Total:                c.Total.Round(2),
		QuarterlySales:       c.QuarterlySales.Round(2),
	}
}
