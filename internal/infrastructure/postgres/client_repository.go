package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cobranzas-api/internal/application/ports"
	"github.com/jhoicas/cobranzas-api/internal/domain"
	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
	"github.com/jhoicas/cobranzas-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo agregado de clientes sobre PostgreSQL (usable con pool o tx).
// Los agregados de saldo se calculan con la fecha del reloj de la aplicación.
type ClientRepo struct {
	q     Querier
	clock ports.Clock
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier, clock ports.Clock) *ClientRepo {
	return &ClientRepo{q: q, clock: clock}
}

// clientSelect $1 es la fecha de referencia. Vencido suma saldos deudores con vencimiento
// cumplido; ventas trimestrales suma facturas de los últimos tres meses.
const clientSelect = `
	WITH agg AS (
		SELECT d.client_id,
		       COALESCE(SUM(d.balance), 0) AS total,
		       COALESCE(SUM(d.balance) FILTER (
		           WHERE d.balance > 0 AND d.due_date IS NOT NULL AND d.due_date <= $1
		             AND d.doc_type NOT IN ('N/CR', 'ADEL')), 0) AS overdue,
		       COALESCE(SUM(d.amount) FILTER (
		           WHERE d.doc_type = 'FACT' AND d.issue_date > ($1::DATE - INTERVAL '3 months')), 0) AS quarterly_sales,
		       MAX(d.issue_date) FILTER (WHERE d.doc_type = 'FACT') AS last_invoice
		FROM documents d
		WHERE NOT d.voided
		GROUP BY d.client_id
	)
	SELECT c.id, c.name, c.tax_id, c.phone, c.email, c.address,
	       COALESCE(c.seller_code, ''), COALESCE(s.name, ''),
	       c.payment_term_days,
	       ($1::DATE - agg.last_invoice)::INT,
	       COALESCE(agg.overdue, 0), COALESCE(agg.total, 0), COALESCE(agg.quarterly_sales, 0)
	FROM clients c
	LEFT JOIN sellers s ON s.code = c.seller_code
	LEFT JOIN agg ON agg.client_id = c.id`

func scanClient(row pgx.Row) (entity.Client, error) {
	var c entity.Client
	err := row.Scan(
		&c.ID, &c.Name, &c.TaxID, &c.Phone, &c.Email, &c.Address,
		&c.SellerID, &c.SellerName,
		&c.PaymentTermDays,
		&c.DaysSinceLastInvoice,
		&c.Overdue, &c.Total, &c.QuarterlySales,
	)
	return c, err
}

// FindClients filtro grueso por nombre (ILIKE) y vendedores; la segmentación fina se aplica en dominio.
func (r *ClientRepo) FindClients(ctx context.Context, f repository.ClientFilter) ([]entity.Client, error) {
	if f.Sellers.Empty() {
		return nil, nil
	}
	query := clientSelect + `
	WHERE ($2::VARCHAR   IS NULL OR c.name ILIKE '%' || $2 || '%' ESCAPE '\')
	  AND ($3::VARCHAR[] IS NULL OR c.seller_code = ANY($3))
	ORDER BY c.name`

	rows, err := r.q.Query(ctx, query, dateOnly(r.clock.Today()), nullIfEmpty(EscapeLike(f.NameTerm)), sellerCodes(f.Sellers))
	if err != nil {
		return nil, fmt.Errorf("clients.FindClients: %w", err)
	}
	defer rows.Close()

	var list []entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("clients.FindClients scan: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("clients.FindClients rows: %w", err)
	}
	return list, nil
}

// GetByID obtiene un cliente con sus agregados. domain.ErrNotFound si no existe.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	query := clientSelect + ` WHERE c.id = $2`
	c, err := scanClient(r.q.QueryRow(ctx, query, dateOnly(r.clock.Today()), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("clients.GetByID: %w", err)
	}
	return &c, nil
}
