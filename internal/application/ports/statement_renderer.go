package ports

import "github.com/jhoicas/cobranzas-api/internal/domain/entity"

// StatementRenderer puerto de salida para representar un estado de cuenta ya armado
// (PDF, hoja de cálculo). El renderizador no recalcula montos.
type StatementRenderer interface {
	Render(st *entity.Statement) ([]byte, error)
	// ContentType tipo MIME del resultado.
	ContentType() string
	// Extension extensión de archivo sin punto ("pdf", "xlsx").
	Extension() string
}
