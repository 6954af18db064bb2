package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
)

func sampleStatement() *entity.Statement {
	due := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	days, flag := 10, 1
	lines := []entity.StatementLine{
		{
			DocType: "FACT", DocNumber: "0001",
			IssueDate: time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC), DueDate: &due,
			NetTotal: decimal.NewFromInt(500), Collected: decimal.Zero, Balance: decimal.NewFromInt(500),
			Flag: &flag, ClientName: "Zapatería Alba", ClientTaxID: "J-1", DaysOverdue: &days,
		},
		{
			DocType: "N/CR", DocNumber: "0003",
			IssueDate: time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC),
			NetTotal:  decimal.NewFromInt(-200), Collected: decimal.Zero, Balance: decimal.NewFromInt(-200),
			ClientName: "Zapatería Alba", ClientTaxID: "J-1",
		},
	}
	footer := []entity.FooterRow{
		{Label: "Total vencido", Amount: decimal.NewFromInt(500)},
		{Label: "Saldo total", Amount: decimal.NewFromInt(300)},
	}
	return entity.NewStatement("Zapatería Alba", time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), lines, footer)
}

func TestStatementRenderer_Render(t *testing.T) {
	r := NewStatementRenderer("Distribuidora Ejemplo C.A.")
	out, err := r.Render(sampleStatement())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida debe ser un PDF")
	assert.Equal(t, "application/pdf", r.ContentType())
	assert.Equal(t, "pdf", r.Extension())
}

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":          "0,00",
		"25":         "25,00",
		"1000":       "1.000,00",
		"1234567.5":  "1.234.567,50",
		"-200":       "-200,00",
		"-1234.567":  "-1.234,57",
		"-0.001":     "0,00",
		"999999.999": "1.000.000,00",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}
