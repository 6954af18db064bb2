package collections

import (
	"sort"
	"time"

	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
)

// AgedDocument documento pendiente con su bucket y días de atraso calculados.
type AgedDocument struct {
	entity.Document
	Bucket      entity.AgingBucket
	DaysOverdue int
}

// AgeDocuments clasifica los documentos del alcance, descarta anulados y saldados y los ordena por
// vencimiento (sin vencimiento al final) y número de documento.
func AgeDocuments(docs []entity.Document, ref time.Time, scope entity.ScopeFilter) []AgedDocument {
	out := make([]AgedDocument, 0, len(docs))
	for _, doc := range docs {
		if !scope.Matches(doc) || !IsOpen(doc) {
			continue
		}
		bucket, ok := Classify(doc, ref)
		if !ok {
			continue
		}
		out = append(out, AgedDocument{Document: doc, Bucket: bucket, DaysOverdue: DaysOverdue(doc, ref)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].DueDate, out[j].DueDate
		switch {
		case a == nil && b == nil:
			return out[i].DocNumber < out[j].DocNumber
		case a == nil:
			return false
		case b == nil:
			return true
		case !a.Equal(*b):
			return a.Before(*b)
		}
		return out[i].DocNumber < out[j].DocNumber
	})
	return out
}
