package segmentation

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/jhoicas/cobranzas-api/internal/domain"
	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
)

// NameTermMinLength longitud mínima (en caracteres) para que el término de búsqueda filtre.
const NameTermMinLength = 3

// Nombres de campo del criterio, tal como se reciben en la API.
const (
	FieldLastYearSales        = "lastYearSales"
	FieldOverdueDebt          = "overdueDebt"
	FieldTotalOverdue         = "totalOverdue"
	FieldDaysPastDue          = "daysPastDue"
	FieldDaysSinceLastInvoice = "daysSinceLastInvoice"
)

// Campos de ordenamiento soportados.
const (
	OrderName                 = "name"
	OrderTotal                = "total"
	OrderOverdue              = "overdue"
	OrderQuarterlySales       = "quarterly_sales"
	OrderDaysSinceLastInvoice = "days_since_last_invoice"
)

type predicate func(entity.Client) bool

// EffectiveNameTerm devuelve el término si alcanza la longitud mínima; si no, "".
func EffectiveNameTerm(term string) string {
	term = strings.TrimSpace(term)
	if utf8.RuneCountInString(term) < NameTermMinLength {
		return ""
	}
	return term
}

// ValidateCriteria verifica que todos los buckets nombrados existan.
func ValidateCriteria(c entity.ClientFilterCriteria) error {
	_, err := compile(c)
	return err
}

// FilterClients aplica término de nombre, alcance de vendedores y buckets, y ordena el resultado.
// Un bucket desconocido devuelve *domain.CriteriaError.
func FilterClients(clients []entity.Client, nameTerm string, sellers entity.SellerScope, c entity.ClientFilterCriteria) ([]entity.Client, error) {
	preds, err := compile(c)
	if err != nil {
		return nil, err
	}

	term := EffectiveNameTerm(nameTerm)
	caser := cases.Fold()
	folded := caser.String(term)

	out := make([]entity.Client, 0, len(clients))
	for _, cl := range clients {
		if term != "" && !strings.Contains(caser.String(cl.Name), folded) {
			continue
		}
		if !sellers.Contains(cl.SellerID) {
			continue
		}
		if term == "" && c.WithBalanceOnly && !cl.Total.IsPositive() {
			continue
		}
		if !matchAll(preds, cl) {
			continue
		}
		out = append(out, cl)
	}

	sortClients(out, c.OrderField, c.OrderDesc)
	return out, nil
}

func matchAll(preds []predicate, cl entity.Client) bool {
	for _, p := range preds {
		if !p(cl) {
			return false
		}
	}
	return true
}

func compile(c entity.ClientFilterCriteria) ([]predicate, error) {
	var preds []predicate

	money := []struct {
		field, value string
		get          func(entity.Client) decimal.Decimal
	}{
		{FieldLastYearSales, c.LastYearSales, func(cl entity.Client) decimal.Decimal { return cl.QuarterlySales }},
		{FieldOverdueDebt, c.OverdueDebt, func(cl entity.Client) decimal.Decimal { return cl.Overdue }},
		{FieldTotalOverdue, c.TotalOverdue, func(cl entity.Client) decimal.Decimal { return cl.Total }},
	}
	for _, m := range money {
		b, restrict, ok := lookup(MoneyBuckets, m.value)
		if !ok {
			return nil, &domain.CriteriaError{Field: m.field, Value: m.value}
		}
		if restrict {
			get := m.get
			preds = append(preds, func(cl entity.Client) bool { return b.Contains(get(cl)) })
		}
	}

	// días vencidos depende de agregados por documento: se valida pero no filtra aquí
	if _, _, ok := lookup(DayBuckets, c.DaysPastDue); !ok {
		return nil, &domain.CriteriaError{Field: FieldDaysPastDue, Value: c.DaysPastDue}
	}

	b, restrict, ok := lookup(DayBuckets, c.DaysSinceLastInvoice)
	if !ok {
		return nil, &domain.CriteriaError{Field: FieldDaysSinceLastInvoice, Value: c.DaysSinceLastInvoice}
	}
	if restrict {
		preds = append(preds, func(cl entity.Client) bool {
			if cl.DaysSinceLastInvoice == nil {
				return false
			}
			return b.Contains(decimal.NewFromInt(int64(*cl.DaysSinceLastInvoice)))
		})
	}
	return preds, nil
}

// ── Ordenamiento ──────────────────────────────────────────────────────────────

func sortClients(list []entity.Client, field string, desc bool) {
	cmp, ok := comparators[strings.ToLower(strings.TrimSpace(field))]
	if !ok {
		cmp, desc = compareDaysSinceLastInvoice, false
	}
	sort.SliceStable(list, func(i, j int) bool {
		if r := cmp(list[i], list[j]); r != 0 {
			if desc {
				return r > 0
			}
			return r < 0
		}
		return list[i].Name < list[j].Name
	})
}

var comparators = map[string]func(a, b entity.Client) int{
	OrderName:                 func(a, b entity.Client) int { return strings.Compare(a.Name, b.Name) },
	OrderTotal:                func(a, b entity.Client) int { return a.Total.Cmp(b.Total) },
	OrderOverdue:              func(a, b entity.Client) int { return a.Overdue.Cmp(b.Overdue) },
	OrderQuarterlySales:       func(a, b entity.Client) int { return a.QuarterlySales.Cmp(b.QuarterlySales) },
	OrderDaysSinceLastInvoice: compareDaysSinceLastInvoice,
}

// compareDaysSinceLastInvoice los clientes sin facturas van al final.
func compareDaysSinceLastInvoice(a, b entity.Client) int {
	switch {
	case a.DaysSinceLastInvoice == nil && b.DaysSinceLastInvoice == nil:
		return 0
	case a.DaysSinceLastInvoice == nil:
		return 1
	case b.DaysSinceLastInvoice == nil:
		return -1
	}
	return *a.DaysSinceLastInvoice - *b.DaysSinceLastInvoice
}
