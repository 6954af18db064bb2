package entity

import "time"

// DocumentFilter criterios de búsqueda de documentos en el almacén.
type DocumentFilter struct {
	ClientID      string
	Sellers       SellerScope
	DueBefore     *time.Time
	DueAfter      *time.Time
	ExcludeVoided bool
	// OpenOnly descarta documentos con saldo cero (pagados por completo).
	OpenOnly bool
}

// ScopeFilter restringe el resumen a un cliente y/o un conjunto de vendedores.
type ScopeFilter struct {
	ClientID string
	Sellers  SellerScope
}

// Matches indica si el documento cae dentro del alcance.
func (f ScopeFilter) Matches(d Document) bool {
	if f.ClientID != "" && d.ClientID != f.ClientID {
		return false
	}
	return f.Sellers.Contains(d.SellerCode())
}
