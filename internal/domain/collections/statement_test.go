package collections_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cobranzas-api/internal/domain"
	"github.com/jhoicas/cobranzas-api/internal/domain/collections"
	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
)

func row(number, net, balance string) entity.StatementRow {
	return entity.StatementRow{
		DocType:   string(entity.DocTypeInvoice),
		DocNumber: number,
		IssueDate: day(-20),
		DueDate:   day(-5),
		NetTotal:  decimal.NewNullDecimal(dec(net)),
		Balance:   decimal.NewNullDecimal(dec(balance)),
	}
}

func TestAssembleStatement_SinFilas(t *testing.T) {
	st, err := collections.AssembleStatement("Cliente", nil, []entity.FooterRow{{Label: "Total", Amount: dec("0")}}, ref)
	assert.Nil(t, st)
	assert.True(t, errors.Is(err, domain.ErrNoOpenItems))
	assert.False(t, errors.Is(err, domain.ErrNotFound), "sin documentos no es lo mismo que no encontrado")
}

func TestAssembleStatement_ConservaOrdenYPie(t *testing.T) {
	rows := []entity.StatementRow{row("003", "10", "10"), row("001", "20", "5"), row("002", "30", "0")}
	rows[1].Collected = decimal.NewNullDecimal(dec("15"))
	footer := []entity.FooterRow{{Label: "Vencido", Amount: dec("15")}, {Label: "Total", Amount: dec("999")}}

	st, err := collections.AssembleStatement("Comercial Alfa", rows, footer, ref)
	require.NoError(t, err)

	assert.Equal(t, "Comercial Alfa", st.Label())
	assert.Equal(t, ref, st.GeneratedAt())
	lines := st.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "003", lines[0].DocNumber)
	assert.Equal(t, "001", lines[1].DocNumber)
	assert.Equal(t, "002", lines[2].DocNumber)
	assert.True(t, dec("15").Equal(lines[1].Collected))
	assert.True(t, lines[0].Collected.IsZero(), "cobrado nulo se toma como cero")
	assert.Equal(t, footer, st.Footer(), "el pie no se recalcula")
}

func TestAssembleStatement_Inmutable(t *testing.T) {
	rows := []entity.StatementRow{row("001", "10", "10")}
	footer := []entity.FooterRow{{Label: "Total", Amount: dec("10")}}
	st, err := collections.AssembleStatement("X", rows, footer, ref)
	require.NoError(t, err)

	footer[0].Label = "mutado"
	lines := st.Lines()
	lines[0].DocNumber = "mutado"

	assert.Equal(t, "Total", st.Footer()[0].Label)
	assert.Equal(t, "001", st.Lines()[0].DocNumber)
}

func TestAssembleStatement_FilaIncompleta(t *testing.T) {
	cases := map[string]func(r *entity.StatementRow){
		"sin fecha de emisión": func(r *entity.StatementRow) { r.IssueDate = nil },
		"sin total neto":       func(r *entity.StatementRow) { r.NetTotal = decimal.NullDecimal{} },
		"sin saldo":            func(r *entity.StatementRow) { r.Balance = decimal.NullDecimal{} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			bad := row("002", "10", "10")
			mutate(&bad)
			_, err := collections.AssembleStatement("X", []entity.StatementRow{row("001", "1", "1"), bad}, nil, ref)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidStatementRow))
			assert.Contains(t, err.Error(), "fila 1")
		})
	}
}

func TestAssembleStatement_VencimientoOpcional(t *testing.T) {
	r := row("001", "10", "-10")
	r.DueDate = nil
	st, err := collections.AssembleStatement("X", []entity.StatementRow{r}, nil, ref)
	require.NoError(t, err)
	assert.Nil(t, st.Lines()[0].DueDate)
}
