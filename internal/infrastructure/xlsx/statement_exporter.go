// Package xlsx exporta el estado de cuenta como hoja de cálculo.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/cobranzas-api/internal/application/ports"
	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
)

var _ ports.StatementRenderer = (*StatementExporter)(nil)

// SheetName nombre de la única hoja del libro.
const SheetName = "Estado de cuenta"

// HeaderRow fila de encabezados de la tabla; las líneas empiezan en la siguiente.
const HeaderRow = 4

var headers = []any{
	"Cliente", "RIF", "Tipo", "Número", "Emisión", "Vence", "Neto", "Cobrado", "Saldo", "Días", "Vencido",
}

// StatementExporter genera el estado de cuenta en formato .xlsx con excelize.
type StatementExporter struct {
	companyName string
}

// NewStatementExporter construye el exportador.
func NewStatementExporter(companyName string) *StatementExporter {
	return &StatementExporter{companyName: companyName}
}

func (e *StatementExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *StatementExporter) Extension() string { return "xlsx" }

type styles struct {
	bold, date, money int
}

// Render arma el libro en memoria y devuelve sus bytes.
func (e *StatementExporter) Render(st *entity.Statement) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: hoja: %w", err)
	}
	s, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	title := "Estado de cuenta - " + st.Label()
	if e.companyName != "" {
		title = e.companyName + " - " + title
	}
	if err := f.SetCellValue(SheetName, "A1", title); err != nil {
		return nil, fmt.Errorf("xlsx: título: %w", err)
	}
	if err := f.SetCellValue(SheetName, "A2", "Corte: "+st.GeneratedAt().Format("02/01/2006")); err != nil {
		return nil, fmt.Errorf("xlsx: corte: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", "A1", s.bold); err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	if err := setRow(f, HeaderRow, headers); err != nil {
		return nil, err
	}
	if err := styleRange(f, "A", "K", HeaderRow, HeaderRow, s.bold); err != nil {
		return nil, err
	}

	r := HeaderRow
	for _, l := range st.Lines() {
		r++
		if err := setRow(f, r, lineValues(l)); err != nil {
			return nil, err
		}
	}
	if r > HeaderRow {
		if err := styleRange(f, "E", "F", HeaderRow+1, r, s.date); err != nil {
			return nil, err
		}
		if err := styleRange(f, "G", "I", HeaderRow+1, r, s.money); err != nil {
			return nil, err
		}
	}

	r++
	for _, ft := range st.Footer() {
		r++
		if err := setCell(f, "H", r, ft.Label); err != nil {
			return nil, err
		}
		if err := setCell(f, "I", r, ft.Amount.InexactFloat64()); err != nil {
			return nil, err
		}
		if err := styleRange(f, "H", "H", r, r, s.bold); err != nil {
			return nil, err
		}
		if err := styleRange(f, "I", "I", r, r, s.money); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(SheetName, "A", "A", 32); err != nil {
		return nil, fmt.Errorf("xlsx: ancho: %w", err)
	}
	if err := f.SetColWidth(SheetName, "B", "K", 14); err != nil {
		return nil, fmt.Errorf("xlsx: ancho: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

// lineValues celdas de una línea en el orden de headers. Las celdas nulas quedan vacías.
func lineValues(l entity.StatementLine) []any {
	var due, days, overdue any
	if l.DueDate != nil {
		due = *l.DueDate
	}
	if l.DaysOverdue != nil {
		days = *l.DaysOverdue
	}
	if l.Flag != nil && *l.Flag == 1 {
		overdue = "Sí"
	}
	return []any{
		l.ClientName,
		l.ClientTaxID,
		l.DocType,
		l.DocNumber,
		l.IssueDate,
		due,
		l.NetTotal.InexactFloat64(),
		l.Collected.InexactFloat64(),
		l.Balance.InexactFloat64(),
		days,
		overdue,
	}
}

func newStyles(f *excelize.File) (styles, error) {
	var s styles
	var err error
	if s.bold, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err != nil {
		return s, fmt.Errorf("xlsx: estilo: %w", err)
	}
	dateFmt := "dd/mm/yyyy"
	if s.date, err = f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt}); err != nil {
		return s, fmt.Errorf("xlsx: estilo: %w", err)
	}
	// #,##0.00
	if s.money, err = f.NewStyle(&excelize.Style{NumFmt: 4}); err != nil {
		return s, fmt.Errorf("xlsx: estilo: %w", err)
	}
	return s, nil
}

func setRow(f *excelize.File, r int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, r)
	if err != nil {
		return fmt.Errorf("xlsx: celda: %w", err)
	}
	if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("xlsx: fila %d: %w", r, err)
	}
	return nil
}

func setCell(f *excelize.File, colName string, r int, v any) error {
	if err := f.SetCellValue(SheetName, fmt.Sprintf("%s%d", colName, r), v); err != nil {
		return fmt.Errorf("xlsx: celda %s%d: %w", colName, r, err)
	}
	return nil
}

func styleRange(f *excelize.File, fromCol, toCol string, fromRow, toRow, style int) error {
	h := fmt.Sprintf("%s%d", fromCol, fromRow)
	v := fmt.Sprintf("%s%d", toCol, toRow)
	if err := f.SetCellStyle(SheetName, h, v, style); err != nil {
		return fmt.Errorf("xlsx: estilo %s:%s: %w", h, v, err)
	}
	return nil
}
