// Package pdf implementa la representación impresa del estado de cuenta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + título     │  Sujeto + fecha de corte     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Tipo | Número | Emisión | Vence | Neto | Cobrado |   │
//	│         Saldo | Días   (agrupada por cliente)                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: pares etiqueta / monto tal como los entrega la base    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cobranzas-api/internal/application/ports"
	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
)

var _ ports.StatementRenderer = (*StatementRenderer)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorOverdue = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

// StatementRenderer genera el estado de cuenta en PDF con Maroto v2.
type StatementRenderer struct {
	companyName string
}

// NewStatementRenderer construye el renderizador; companyName encabeza cada página.
func NewStatementRenderer(companyName string) *StatementRenderer {
	return &StatementRenderer{companyName: companyName}
}

func (g *StatementRenderer) ContentType() string { return "application/pdf" }
func (g *StatementRenderer) Extension() string   { return "pdf" }

// Render genera el PDF y devuelve sus bytes.
func (g *StatementRenderer) Render(st *entity.Statement) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Estado de cuenta - "+st.Label(), true).
		WithAuthor(g.companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(st))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())

	client := ""
	for _, l := range st.Lines() {
		if l.ClientName != client {
			client = l.ClientName
			m.AddRows(clientRow(l))
		}
		m.AddRows(lineRow(l))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRows(st.Footer())...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar estado de cuenta: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *StatementRenderer) headerRow(st *entity.Statement) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("ESTADO DE CUENTA", props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(st.Label(), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New("Corte: "+st.GeneratedAt().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Tipo", 1, align.Left),
		h("Número", 2, align.Left),
		h("Emisión", 1, align.Center),
		h("Vence", 1, align.Center),
		h("Neto", 2, align.Right),
		h("Cobrado", 2, align.Right),
		h("Saldo", 2, align.Right),
		h("Días", 1, align.Right),
	)
}

// clientRow separador con nombre y RIF del cliente (estados por vendedor).
func clientRow(l entity.StatementLine) core.Row {
	label := l.ClientName
	if l.ClientTaxID != "" {
		label += "  (" + l.ClientTaxID + ")"
	}
	return row.New(6).Add(col.New(12).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Top: 1.5, Left: 1}),
	))
}

func lineRow(l entity.StatementLine) core.Row {
	cell := func(a align.Type) props.Text {
		return props.Text{Size: 7.5, Align: a, Top: 1, Left: 1, Right: 1}
	}
	balance := cell(align.Right)
	if l.Flag != nil && *l.Flag == 1 {
		balance.Color = colorOverdue
		balance.Style = fontstyle.Bold
	}
	return row.New(5).Add(
		col.New(1).Add(text.New(l.DocType, cell(align.Left))),
		col.New(2).Add(text.New(l.DocNumber, cell(align.Left))),
		col.New(1).Add(text.New(l.IssueDate.Format("02/01/06"), cell(align.Center))),
		col.New(1).Add(text.New(formatDate(l), cell(align.Center))),
		col.New(2).Add(text.New(formatMoney(l.NetTotal), cell(align.Right))),
		col.New(2).Add(text.New(formatMoney(l.Collected), cell(align.Right))),
		col.New(2).Add(text.New(formatMoney(l.Balance), balance)),
		col.New(1).Add(text.New(formatDays(l.DaysOverdue), cell(align.Right))),
	)
}

func footerRows(footer []entity.FooterRow) []core.Row {
	rows := make([]core.Row, 0, len(footer))
	for _, f := range footer {
		rows = append(rows, row.New(6).Add(
			col.New(6),
			col.New(3).Add(text.New(f.Label+":", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 1,
			})),
			col.New(3).Add(text.New(formatMoney(f.Amount), props.Text{
				Size: 9, Align: align.Right, Right: 1, Top: 1,
			})),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func formatDate(l entity.StatementLine) string {
	if l.DueDate == nil {
		return "—"
	}
	return l.DueDate.Format("02/01/06")
}

func formatDays(d *int) string {
	if d == nil {
		return ""
	}
	return strconv.Itoa(*d)
}

// formatMoney monto con separador de miles "." y decimales ",".
// Ej: 1234567.5 → "1.234.567,50", -200 → "-200,00"
func formatMoney(d decimal.Decimal) string {
	d = d.Round(2)
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3+4)
	if d.IsNegative() {
		buf = append(buf, '-')
	}
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	buf = append(buf, ',')
	buf = append(buf, frac...)
	return string(buf)
}
