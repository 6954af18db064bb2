package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementRow fila cruda del procedimiento de estado de cuenta; los campos nulos se validan al ensamblar.
type StatementRow struct {
	DocType     string
	DocNumber   string
	IssueDate   *time.Time
	DueDate     *time.Time
	NetTotal    decimal.NullDecimal
	Collected   decimal.NullDecimal
	Balance     decimal.NullDecimal
	Flag        *int
	ClientName  string
	ClientTaxID string
	DaysOverdue *int
}

// StatementLine línea validada del estado de cuenta.
type StatementLine struct {
	DocType     string
	DocNumber   string
	IssueDate   time.Time
	DueDate     *time.Time
	NetTotal    decimal.Decimal
	Collected   decimal.Decimal
	Balance     decimal.Decimal
	Flag        *int
	ClientName  string
	ClientTaxID string
	DaysOverdue *int
}

// FooterRow par (etiqueta, monto) del pie del estado de cuenta.
type FooterRow struct {
	Label  string
	Amount decimal.Decimal
}

// StatementSource datos que entrega el almacén para un cliente o conjunto de vendedores.
type StatementSource struct {
	Label  string
	Rows   []StatementRow
	Footer []FooterRow
}

// Statement estado de cuenta inmutable; los accesores devuelven copias.
type Statement struct {
	label       string
	generatedAt time.Time
	lines       []StatementLine
	footer      []FooterRow
}

// NewStatement construye el snapshot copiando las secuencias recibidas.
func NewStatement(label string, generatedAt time.Time, lines []StatementLine, footer []FooterRow) *Statement {
	return &Statement{
		label:       label,
		generatedAt: generatedAt,
		lines:       append([]StatementLine(nil), lines...),
		footer:      append([]FooterRow(nil), footer...),
	}
}

func (s *Statement) Label() string          { return s.label }
func (s *Statement) GeneratedAt() time.Time { return s.generatedAt }

// Lines copia de las líneas en el orden original.
func (s *Statement) Lines() []StatementLine {
	return append([]StatementLine(nil), s.lines...)
}

// Footer copia del pie tal como lo entregó el almacén.
func (s *Statement) Footer() []FooterRow {
	return append([]FooterRow(nil), s.footer...)
}
