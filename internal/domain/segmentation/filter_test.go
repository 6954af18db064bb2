package segmentation_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cobranzas-api/internal/domain"
	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
	"github.com/jhoicas/cobranzas-api/internal/domain/segmentation"
)

func intp(v int) *int { return &v }

func client(name, seller string, days *int, total, overdue, sales string) entity.Client {
	return entity.Client{
		ID:                   name,
		Name:                 name,
		SellerID:             seller,
		DaysSinceLastInvoice: days,
		Total:                decimal.RequireFromString(total),
		Overdue:              decimal.RequireFromString(overdue),
		QuarterlySales:       decimal.RequireFromString(sales),
	}
}

func fixture() []entity.Client {
	return []entity.Client{
		client("Zapatería Alba", "A", intp(30), "10000", "500", "12000"),
		client("Ferretería Central", "B", intp(3), "0", "0", "5"),
		client("Almacén Álamo", "C", nil, "250.50", "10", "100"),
		client("Bodega Norte", "A", intp(3), "10000.01", "0", "1001"),
		client("Distribuidora Sol", "B", intp(75), "11", "11", "0"),
	}
}

func names(list []entity.Client) []string {
	out := make([]string, len(list))
	for i, c := range list {
		out[i] = c.Name
	}
	return out
}

func TestFilterClients_TerminoCortoNoFiltra(t *testing.T) {
	all := entity.ParseSellerScope("-1")
	short, err := segmentation.FilterClients(fixture(), "al", all, entity.ClientFilterCriteria{})
	require.NoError(t, err)
	none, err := segmentation.FilterClients(fixture(), "", all, entity.ClientFilterCriteria{})
	require.NoError(t, err)

	assert.Equal(t, names(none), names(short))
	// orden por defecto: días desde la última factura ascendente, luego nombre; nil al final
	assert.Equal(t, []string{
		"Bodega Norte", "Ferretería Central", "Zapatería Alba", "Distribuidora Sol", "Almacén Álamo",
	}, names(short))
}

func TestFilterClients_TerminoSinMayusculas(t *testing.T) {
	got, err := segmentation.FilterClients(fixture(), "ALB", entity.SellerScope{}, entity.ClientFilterCriteria{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Zapatería Alba"}, names(got))

	got, err = segmentation.FilterClients(fixture(), "álamo", entity.SellerScope{}, entity.ClientFilterCriteria{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Almacén Álamo"}, names(got))
}

func TestFilterClients_AlcanceVendedores(t *testing.T) {
	got, err := segmentation.FilterClients(fixture(), "", entity.ParseSellerScope(" A ,C"), entity.ClientFilterCriteria{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Zapatería Alba", "Almacén Álamo", "Bodega Norte"}, names(got))

	got, err = segmentation.FilterClients(fixture(), "", entity.ParseSellerScope(" , "), entity.ClientFilterCriteria{})
	require.NoError(t, err)
	assert.Len(t, got, 5, "una lista sin códigos no restringe")
}

func TestFilterClients_BucketLimiteSuperiorInclusivo(t *testing.T) {
	got, err := segmentation.FilterClients(fixture(), "", entity.SellerScope{}, entity.ClientFilterCriteria{TotalOverdue: "1001-10000"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Zapatería Alba"}, names(got), "10000 cae en 1001-10000")

	got, err = segmentation.FilterClients(fixture(), "", entity.SellerScope{}, entity.ClientFilterCriteria{TotalOverdue: "over-10000"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Bodega Norte"}, names(got))
}

func TestFilterClients_CriteriosCombinados(t *testing.T) {
	c := entity.ClientFilterCriteria{OverdueDebt: "under-10", DaysSinceLastInvoice: "0-7"}
	got, err := segmentation.FilterClients(fixture(), "", entity.SellerScope{}, c)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bodega Norte", "Ferretería Central"}, names(got))

	c = entity.ClientFilterCriteria{LastYearSales: "101-1000"}
	got, err = segmentation.FilterClients(fixture(), "", entity.SellerScope{}, c)
	require.NoError(t, err)
	assert.Empty(t, got, "100 cae en 11-100 y 1001 en 1001-10000")
}

func TestFilterClients_SinFechaNoEntraEnRangoDeDias(t *testing.T) {
	got, err := segmentation.FilterClients(fixture(), "", entity.SellerScope{}, entity.ClientFilterCriteria{DaysSinceLastInvoice: "61-90"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Distribuidora Sol"}, names(got))
}

func TestFilterClients_BucketDesconocido(t *testing.T) {
	_, err := segmentation.FilterClients(fixture(), "", entity.SellerScope{}, entity.ClientFilterCriteria{OverdueDebt: "mucho"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidCriteria))
	var ce *domain.CriteriaError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, segmentation.FieldOverdueDebt, ce.Field)
}

func TestFilterClients_DiasVencidosEsNoOp(t *testing.T) {
	got, err := segmentation.FilterClients(fixture(), "", entity.SellerScope{}, entity.ClientFilterCriteria{DaysPastDue: "8-14"})
	require.NoError(t, err)
	assert.Len(t, got, 5)

	_, err = segmentation.FilterClients(fixture(), "", entity.SellerScope{}, entity.ClientFilterCriteria{DaysPastDue: "100-200"})
	var ce *domain.CriteriaError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, segmentation.FieldDaysPastDue, ce.Field)
}

func TestFilterClients_Orden(t *testing.T) {
	got, err := segmentation.FilterClients(fixture(), "", entity.SellerScope{}, entity.ClientFilterCriteria{OrderField: "total", OrderDesc: true})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Bodega Norte", "Zapatería Alba", "Almacén Álamo", "Distribuidora Sol", "Ferretería Central",
	}, names(got))

	got, err = segmentation.FilterClients(fixture(), "", entity.SellerScope{}, entity.ClientFilterCriteria{OrderField: "overdue"})
	require.NoError(t, err)
	// empate en 0: desempata por nombre
	assert.Equal(t, []string{"Bodega Norte", "Ferretería Central"}, names(got)[:2])

	got, err = segmentation.FilterClients(fixture(), "", entity.SellerScope{}, entity.ClientFilterCriteria{OrderField: "desconocido", OrderDesc: true})
	require.NoError(t, err)
	assert.Equal(t, "Bodega Norte", got[0].Name, "campo desconocido usa el orden por defecto")
}

func TestFilterClients_SoloConSaldo(t *testing.T) {
	c := entity.ClientFilterCriteria{WithBalanceOnly: true}
	got, err := segmentation.FilterClients(fixture(), "", entity.SellerScope{}, c)
	require.NoError(t, err)
	assert.NotContains(t, names(got), "Ferretería Central")

	got, err = segmentation.FilterClients(fixture(), "ferre", entity.SellerScope{}, c)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ferretería Central"}, names(got), "con término efectivo se muestran todos")
}

func TestValidateCriteria_AllYVacio(t *testing.T) {
	assert.NoError(t, segmentation.ValidateCriteria(entity.ClientFilterCriteria{
		LastYearSales: "all", OverdueDebt: "", TotalOverdue: "ALL", DaysSinceLastInvoice: " 8-14 ",
	}))
}

func TestEffectiveNameTerm(t *testing.T) {
	assert.Equal(t, "", segmentation.EffectiveNameTerm("ñá"))
	assert.Equal(t, "ñáé", segmentation.EffectiveNameTerm(" ñáé "))
}
