package postgres

import (
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// sellerCodes arreglo para "= ANY($n)"; nil (NULL) si el alcance no restringe.
func sellerCodes(s entity.SellerScope) []string {
	if s.Unrestricted() {
		return nil
	}
	codes := s.Codes()
	if codes == nil {
		codes = []string{}
	}
	return codes
}

// dateOnly fecha calendario sin hora, para parámetros DATE.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapa los comodines de LIKE para usar el término como texto literal (ESCAPE '\').
func EscapeLike(term string) string {
	return likeEscaper.Replace(term)
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
