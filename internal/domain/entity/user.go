package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleVendedor   = "vendedor"
)

// User usuario del sistema de cobranzas. SellerCodes define qué cartera puede consultar.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, supervisor, vendedor
	SellerCodes  string // "A,B"; ignorado para admin
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Scope alcance de cartera del usuario; el admin ve la cartera completa.
func (u *User) Scope() SellerScope {
	return ScopeForRole(u.Role, u.SellerCodes)
}

// ScopeForRole alcance efectivo de un rol. Un rol distinto de admin sin códigos
// no ve ninguna cartera (nunca se interpreta como "-1").
func ScopeForRole(role, codes string) SellerScope {
	if role == RoleAdmin {
		return SellerScope{}
	}
	s := ParseSellerScope(codes)
	if s.Unrestricted() {
		return SellerScope{codes: map[string]struct{}{}}
	}
	return s
}
