package collections_test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cobranzas-api/internal/domain"
	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
	"github.com/jhoicas/cobranzas-api/internal/domain/repository"
)

var today = time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func strp(s string) *string { return &s }

func dayOffset(n int) *time.Time {
	t := today.AddDate(0, 0, n)
	return &t
}

// ── Repositorio de documentos en memoria ─────────────────────────────────────

type fakeDocRepo struct {
	mu      sync.Mutex
	docs    []entity.Document
	monthly map[entity.Metric][]entity.MonthlyAmount
	err     error
	filters []entity.DocumentFilter
	ranges  [][2]time.Time
}

var _ repository.DocumentRepository = (*fakeDocRepo)(nil)

func (r *fakeDocRepo) FindDocuments(_ context.Context, f entity.DocumentFilter) ([]entity.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filters = append(r.filters, f)
	if r.err != nil {
		return nil, r.err
	}
	var out []entity.Document
	for _, d := range r.docs {
		if f.ExcludeVoided && d.Voided {
			continue
		}
		if f.ClientID != "" && d.ClientID != f.ClientID {
			continue
		}
		if !f.Sellers.Contains(d.SellerCode()) {
			continue
		}
		if f.OpenOnly && d.Balance.IsZero() {
			continue
		}
		if f.DueBefore != nil && (d.DueDate == nil || d.DueDate.After(*f.DueBefore)) {
			continue
		}
		if f.DueAfter != nil && (d.DueDate == nil || d.DueDate.Before(*f.DueAfter)) {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeDocRepo) GetDocument(_ context.Context, id string) (*entity.Document, error) {
	for _, d := range r.docs {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeDocRepo) FindMonthlyAmounts(_ context.Context, m entity.Metric, _ entity.SellerScope, from, to time.Time) ([]entity.MonthlyAmount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ranges = append(r.ranges, [2]time.Time{from, to})
	if r.err != nil {
		return nil, r.err
	}
	return r.monthly[m], nil
}

// ── Repositorio de clientes en memoria ───────────────────────────────────────

type fakeClientRepo struct {
	clients map[string]entity.Client
}

var _ repository.ClientRepository = (*fakeClientRepo)(nil)

func (r *fakeClientRepo) FindClients(_ context.Context, _ repository.ClientFilter) ([]entity.Client, error) {
	out := make([]entity.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

// ── Repositorio de estados de cuenta en memoria ──────────────────────────────

type fakeStatementRepo struct {
	byClient map[string]*entity.StatementSource
	bySeller *entity.StatementSource
	sellers  []entity.SellerScope
}

var _ repository.StatementRepository = (*fakeStatementRepo)(nil)

func (r *fakeStatementRepo) FindClientStatement(_ context.Context, id string) (*entity.StatementSource, error) {
	src, ok := r.byClient[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return src, nil
}

func (r *fakeStatementRepo) FindSellerStatement(_ context.Context, s entity.SellerScope) (*entity.StatementSource, error) {
	r.sellers = append(r.sellers, s)
	if r.bySeller == nil {
		return &entity.StatementSource{Label: s.String()}, nil
	}
	return r.bySeller, nil
}

// ── Renderizador de prueba ───────────────────────────────────────────────────

type stubRenderer struct{ ext string }

func (s stubRenderer) Render(st *entity.Statement) ([]byte, error) {
	return []byte(s.ext + ":" + st.Label()), nil
}
func (s stubRenderer) ContentType() string { return "application/" + s.ext }
func (s stubRenderer) Extension() string   { return s.ext }
