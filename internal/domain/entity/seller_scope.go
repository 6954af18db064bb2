package entity

import (
	"sort"
	"strings"
)

// AllSellers valor que representa la cartera completa (sin restricción de vendedor).
const AllSellers = "-1"

// SellerScope conjunto de códigos de vendedor. Vacío significa sin restricción.
type SellerScope struct {
	codes map[string]struct{}
}

// ParseSellerScope interpreta "A,B, C". "-1", "" o una lista sin códigos no restringen.
func ParseSellerScope(raw string) SellerScope {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == AllSellers {
		return SellerScope{}
	}
	codes := make(map[string]struct{})
	for _, part := range strings.Split(raw, ",") {
		code := strings.TrimSpace(part)
		if code == "" || code == AllSellers {
			continue
		}
		codes[code] = struct{}{}
	}
	if len(codes) == 0 {
		return SellerScope{}
	}
	return SellerScope{codes: codes}
}

// NewSellerScope construye el alcance a partir de códigos ya separados.
func NewSellerScope(codes ...string) SellerScope {
	return ParseSellerScope(strings.Join(codes, ","))
}

// Unrestricted indica que el alcance es la cartera completa.
func (s SellerScope) Unrestricted() bool { return s.codes == nil }

// Contains pertenencia de un vendedor al alcance.
func (s SellerScope) Contains(code string) bool {
	if s.Unrestricted() {
		return true
	}
	_, ok := s.codes[strings.TrimSpace(code)]
	return ok
}

// Codes códigos ordenados; nil si no hay restricción.
func (s SellerScope) Codes() []string {
	if s.Unrestricted() {
		return nil
	}
	out := make([]string, 0, len(s.codes))
	for c := range s.codes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Narrow intersecta el alcance con otro. Un alcance restringido nunca se amplía.
func (s SellerScope) Narrow(other SellerScope) SellerScope {
	if s.Unrestricted() {
		return other
	}
	if other.Unrestricted() {
		return s
	}
	codes := make(map[string]struct{})
	for c := range other.codes {
		if _, ok := s.codes[c]; ok {
			codes[c] = struct{}{}
		}
	}
	return SellerScope{codes: codes}
}

// Empty alcance restringido sin ningún vendedor (intersección vacía).
func (s SellerScope) Empty() bool { return s.codes != nil && len(s.codes) == 0 }

// String representación "A,B" o "-1".
func (s SellerScope) String() string {
	if s.Unrestricted() {
		return AllSellers
	}
	return strings.Join(s.Codes(), ",")
}
