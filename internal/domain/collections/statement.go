package collections

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cobranzas-api/internal/domain"
	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
)

// AssembleStatement valida las filas del almacén y arma el estado de cuenta sin recalcular montos.
// El orden de las filas y el pie se conservan tal como llegan.
func AssembleStatement(label string, rows []entity.StatementRow, footer []entity.FooterRow, ref time.Time) (*entity.Statement, error) {
	if len(rows) == 0 {
		return nil, domain.ErrNoOpenItems
	}
	lines := make([]entity.StatementLine, 0, len(rows))
	for i, r := range rows {
		line, err := toLine(r)
		if err != nil {
			return nil, fmt.Errorf("collections.AssembleStatement: fila %d: %w", i, err)
		}
		lines = append(lines, line)
	}
	return entity.NewStatement(label, ref, lines, footer), nil
}

func toLine(r entity.StatementRow) (entity.StatementLine, error) {
	switch {
	case r.IssueDate == nil:
		return entity.StatementLine{}, fmt.Errorf("%w: fecha de emisión requerida", domain.ErrInvalidStatementRow)
	case !r.NetTotal.Valid:
		return entity.StatementLine{}, fmt.Errorf("%w: total neto requerido", domain.ErrInvalidStatementRow)
	case !r.Balance.Valid:
		return entity.StatementLine{}, fmt.Errorf("%w: saldo requerido", domain.ErrInvalidStatementRow)
	}
	collected := decimal.Zero
	if r.Collected.Valid {
		collected = r.Collected.Decimal
	}
	return entity.StatementLine{
		DocType:     r.DocType,
		DocNumber:   r.DocNumber,
		IssueDate:   *r.IssueDate,
		DueDate:     r.DueDate,
		NetTotal:    r.NetTotal.Decimal,
		Collected:   collected,
		Balance:     r.Balance.Decimal,
		Flag:        r.Flag,
		ClientName:  r.ClientName,
		ClientTaxID: r.ClientTaxID,
		DaysOverdue: r.DaysOverdue,
	}, nil
}
