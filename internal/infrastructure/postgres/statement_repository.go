package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cobranzas-api/internal/application/ports"
	"github.com/jhoicas/cobranzas-api/internal/domain"
	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
	"github.com/jhoicas/cobranzas-api/internal/domain/repository"
)

var _ repository.StatementRepository = (*StatementRepo)(nil)

// StatementRepo estado de cuenta vía las funciones statement_rows y statement_footer.
// Filas y pie se leen en la misma transacción para que cuadren entre sí.
type StatementRepo struct {
	tx    *TxRunner
	clock ports.Clock
}

// NewStatementRepository construye el adaptador.
func NewStatementRepository(tx *TxRunner, clock ports.Clock) *StatementRepo {
	return &StatementRepo{tx: tx, clock: clock}
}

// FindClientStatement filas abiertas de un cliente. domain.ErrNotFound si el cliente no existe.
func (r *StatementRepo) FindClientStatement(ctx context.Context, clientID string) (*entity.StatementSource, error) {
	var src *entity.StatementSource
	err := r.tx.ReadSnapshot(ctx, func(q Querier) error {
		var name string
		err := q.QueryRow(ctx, `SELECT name FROM clients WHERE id = $1`, clientID).Scan(&name)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("client name: %w", err)
		}
		src, err = r.load(ctx, q, name, &clientID, nil)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("statements.FindClientStatement: %w", err)
	}
	return src, nil
}

// FindSellerStatement filas abiertas de la cartera de los vendedores indicados.
// La etiqueta lista los nombres de los vendedores, o "Toda la cartera" sin restricción.
func (r *StatementRepo) FindSellerStatement(ctx context.Context, sellers entity.SellerScope) (*entity.StatementSource, error) {
	var src *entity.StatementSource
	err := r.tx.ReadSnapshot(ctx, func(q Querier) error {
		label := "Toda la cartera"
		codes := sellerCodes(sellers)
		if codes != nil {
			names, err := sellerNames(ctx, q, codes)
			if err != nil {
				return err
			}
			if len(names) == 0 {
				return domain.ErrNotFound
			}
			label = strings.Join(names, ", ")
		}
		var err error
		src, err = r.load(ctx, q, label, nil, codes)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("statements.FindSellerStatement: %w", err)
	}
	return src, nil
}

func sellerNames(ctx context.Context, q Querier, codes []string) ([]string, error) {
	rows, err := q.Query(ctx, `SELECT name FROM sellers WHERE code = ANY($1) ORDER BY name`, codes)
	if err != nil {
		return nil, fmt.Errorf("seller names: %w", err)
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan seller name: %w", err)
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

func (r *StatementRepo) load(ctx context.Context, q Querier, label string, clientID *string, sellers []string) (*entity.StatementSource, error) {
	ref := dateOnly(r.clock.Today())
	src := &entity.StatementSource{Label: label}

	rows, err := q.Query(ctx, `
		SELECT doc_type, doc_number, issue_date, due_date, net_total, collected, balance,
		       flag, client_name, client_tax_id, days_overdue
		FROM statement_rows($1, $2, $3)`, clientID, sellers, ref)
	if err != nil {
		return nil, fmt.Errorf("statement_rows: %w", err)
	}
	for rows.Next() {
		var sr entity.StatementRow
		if err := rows.Scan(
			&sr.DocType, &sr.DocNumber, &sr.IssueDate, &sr.DueDate,
			&sr.NetTotal, &sr.Collected, &sr.Balance,
			&sr.Flag, &sr.ClientName, &sr.ClientTaxID, &sr.DaysOverdue,
		); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan statement row: %w", err)
		}
		src.Rows = append(src.Rows, sr)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("statement_rows: %w", err)
	}

	frows, err := q.Query(ctx, `SELECT label, amount FROM statement_footer($1, $2, $3)`, clientID, sellers, ref)
	if err != nil {
		return nil, fmt.Errorf("statement_footer: %w", err)
	}
	defer frows.Close()
	for frows.Next() {
		var f entity.FooterRow
		if err := frows.Scan(&f.Label, &f.Amount); err != nil {
			return nil, fmt.Errorf("scan statement footer: %w", err)
		}
		src.Footer = append(src.Footer, f)
	}
	if err := frows.Err(); err != nil {
		return nil, fmt.Errorf("statement_footer: %w", err)
	}
	return src, nil
}
