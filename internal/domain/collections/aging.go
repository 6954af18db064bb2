// Package collections contiene las reglas puras de antigüedad de saldos, resumen de cobranzas,
// indicadores de tendencia y armado del estado de cuenta. No depende de infraestructura.
package collections

import (
	"time"

	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
)

// Classify asigna el bucket de antigüedad del documento respecto a ref.
// ok es false para documentos anulados, que no pertenecen a ningún bucket.
func Classify(doc entity.Document, ref time.Time) (bucket entity.AgingBucket, ok bool) {
	if doc.Voided {
		return "", false
	}
	if doc.DocType == entity.DocTypeCreditNote && doc.DueDate == nil {
		return entity.BucketUndatedCredit, true
	}
	if doc.DocType.AllowsNegativeBalance() && doc.Balance.IsNegative() {
		return entity.BucketCredit, true
	}
	if doc.DueDate == nil {
		// sin vencimiento contractual: nunca está vencido
		return entity.BucketNotYetDue, true
	}
	if !DateOf(*doc.DueDate).After(DateOf(ref)) {
		return entity.BucketOverdue, true
	}
	return entity.BucketNotYetDue, true
}

// IsOpen el documento no está anulado y conserva saldo. Solo los documentos abiertos
// entran en el resumen y en el listado de pendientes.
func IsOpen(doc entity.Document) bool {
	return !doc.Voided && !doc.Balance.IsZero()
}

// DaysOverdue días calendario entre el vencimiento y ref (negativo si aún no vence).
// Los adelantos y documentos sin vencimiento aportan 0.
func DaysOverdue(doc entity.Document, ref time.Time) int {
	if doc.DocType == entity.DocTypeAdvance || doc.DueDate == nil {
		return 0
	}
	return DaysBetween(*doc.DueDate, ref)
}

// DateOf trunca t a la fecha calendario en su propia zona horaria.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween días calendario de from a to.
func DaysBetween(from, to time.Time) int {
	return int(DateOf(to).Sub(DateOf(from)).Hours() / 24)
}
