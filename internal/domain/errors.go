package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists  = errors.New("el email ya está registrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInvalidCriteria     = errors.New("criterio de filtro inválido")
	ErrNoOpenItems         = errors.New("no hay documentos para el estado de cuenta")
	ErrInvalidDocument     = errors.New("documento inválido")
	ErrInvalidStatementRow = errors.New("fila de estado de cuenta inválida")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
)

// CriteriaError identifica el campo del filtro de clientes con un bucket desconocido.
type CriteriaError struct {
	Field string
	Value string
}

func (e *CriteriaError) Error() string {
	return fmt.Sprintf("%s: %q no es un rango válido para %s", ErrInvalidCriteria.Error(), e.Value, e.Field)
}

// Unwrap permite errors.Is(err, ErrInvalidCriteria).
func (e *CriteriaError) Unwrap() error { return ErrInvalidCriteria }
