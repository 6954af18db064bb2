package collections

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/cobranzas-api/internal/application/dto"
	"github.com/jhoicas/cobranzas-api/internal/application/ports"
	"github.com/jhoicas/cobranzas-api/internal/domain"
	"github.com/jhoicas/cobranzas-api/internal/domain/collections"
	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
	"github.com/jhoicas/cobranzas-api/internal/domain/repository"
)

// StatementKey identifica el estado de cuenta: un cliente, o un conjunto de vendedores si ClientID es "".
// Sellers es además el alcance autorizado del usuario para el caso de cliente.
type StatementKey struct {
	ClientID string
	Sellers  entity.SellerScope
}

// StatementUseCase arma el estado de cuenta y lo entrega como datos o renderizado.
type StatementUseCase struct {
	stmtRepo   repository.StatementRepository
	clientRepo repository.ClientRepository
	clock      ports.Clock
	renderers  map[string]ports.StatementRenderer
}

// NewStatementUseCase construye el caso de uso. Los renderizadores se indexan por su extensión.
func NewStatementUseCase(
	stmtRepo repository.StatementRepository,
	clientRepo repository.ClientRepository,
	clock ports.Clock,
	renderers ...ports.StatementRenderer,
) *StatementUseCase {
	byExt := make(map[string]ports.StatementRenderer, len(renderers))
	for _, r := range renderers {
		byExt[r.Extension()] = r
	}
	return &StatementUseCase{stmtRepo: stmtRepo, clientRepo: clientRepo, clock: clock, renderers: byExt}
}

// GetStatement arma el estado de cuenta de la clave.
//
// Retorna:
//   - domain.ErrNotFound    si el cliente no existe o está fuera del alcance del usuario.
//   - domain.ErrNoOpenItems si el almacén no devuelve filas.
func (uc *StatementUseCase) GetStatement(ctx context.Context, key StatementKey) (*entity.Statement, error) {
	ref := uc.clock.Today()

	var (
		src    *entity.StatementSource
		client *entity.Client
		err    error
	)
	if key.ClientID != "" {
		client, err = uc.clientRepo.GetByID(ctx, key.ClientID)
		if err != nil {
			return nil, fmt.Errorf("collections.GetStatement: cliente: %w", err)
		}
		if !key.Sellers.Contains(client.SellerID) {
			return nil, domain.ErrNotFound
		}
		src, err = uc.stmtRepo.FindClientStatement(ctx, key.ClientID)
		if err != nil {
			return nil, fmt.Errorf("collections.GetStatement: %w", err)
		}
	} else {
		if key.Sellers.Empty() {
			return nil, domain.ErrNoOpenItems
		}
		src, err = uc.stmtRepo.FindSellerStatement(ctx, key.Sellers)
		if err != nil {
			return nil, fmt.Errorf("collections.GetStatement: %w", err)
		}
	}

	return collections.AssembleStatement(src.Label, src.Rows, src.Footer, ref)
}

// GetStatementDTO estado de cuenta en su forma JSON.
func (uc *StatementUseCase) GetStatementDTO(ctx context.Context, key StatementKey) (*dto.StatementResponse, error) {
	st, err := uc.GetStatement(ctx, key)
	if err != nil {
		return nil, err
	}
	return toStatementResponse(st), nil
}

// RenderStatement estado de cuenta renderizado en el formato pedido ("pdf", "xlsx").
// Un formato sin renderizador registrado es domain.ErrInvalidInput.
func (uc *StatementUseCase) RenderStatement(ctx context.Context, key StatementKey, format string) (*dto.StatementFile, error) {
	renderer, ok := uc.renderers[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("%w: formato %q no soportado", domain.ErrInvalidInput, format)
	}
	st, err := uc.GetStatement(ctx, key)
	if err != nil {
		return nil, err
	}
	content, err := renderer.Render(st)
	if err != nil {
		return nil, fmt.Errorf("collections.RenderStatement: %w", err)
	}
	return &dto.StatementFile{
		Content:     content,
		ContentType: renderer.ContentType(),
		Filename:    statementFilename(key, st, renderer.Extension()),
	}, nil
}

func statementFilename(key StatementKey, st *entity.Statement, ext string) string {
	subject := key.ClientID
	if subject == "" {
		subject = "vendedores-" + strings.ReplaceAll(key.Sellers.String(), ",", "-")
	}
	return fmt.Sprintf("estado-cuenta-%s-%s.%s", subject, st.GeneratedAt().Format("20060102"), ext)
}
