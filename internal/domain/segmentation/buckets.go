// Package segmentation filtra y ordena el agregado de clientes por nombre, vendedor y
// rangos con nombre sobre montos y días.
package segmentation

import (
	"strings"

	"github.com/shopspring/decimal"
)

// BucketAll selector que no restringe el campo.
const BucketAll = "all"

// Bucket rango con nombre: un valor pertenece si lower < v <= upper.
// Un límite nil es abierto.
type Bucket struct {
	Name  string
	lower *decimal.Decimal
	upper *decimal.Decimal
}

// Contains pertenencia del valor al rango; el límite superior es inclusivo.
func (b Bucket) Contains(v decimal.Decimal) bool {
	if b.lower != nil && !v.GreaterThan(*b.lower) {
		return false
	}
	if b.upper != nil && v.GreaterThan(*b.upper) {
		return false
	}
	return true
}

func bound(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// MoneyBuckets rangos para campos monetarios.
var MoneyBuckets = []Bucket{
	{Name: "under-10", upper: bound(10)},
	{Name: "11-100", lower: bound(10), upper: bound(100)},
	{Name: "101-1000", lower: bound(100), upper: bound(1000)},
	{Name: "1001-10000", lower: bound(1000), upper: bound(10000)},
	{Name: "over-10000", lower: bound(10000)},
}

// DayBuckets rangos para campos de días.
var DayBuckets = []Bucket{
	{Name: "0-7", lower: bound(-1), upper: bound(7)},
	{Name: "8-14", lower: bound(7), upper: bound(14)},
	{Name: "15-30", lower: bound(14), upper: bound(30)},
	{Name: "31-60", lower: bound(30), upper: bound(60)},
	{Name: "61-90", lower: bound(60), upper: bound(90)},
}

// lookup resuelve el nombre del bucket. ok es false si el nombre no existe;
// restrict es false para "" o "all".
func lookup(set []Bucket, name string) (b Bucket, restrict bool, ok bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == BucketAll {
		return Bucket{}, false, true
	}
	for _, candidate := range set {
		if candidate.Name == name {
			return candidate, true, true
		}
	}
	return Bucket{}, false, false
}
