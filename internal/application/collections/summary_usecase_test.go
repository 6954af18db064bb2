package collections_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcollections "github.com/jhoicas/cobranzas-api/internal/application/collections"
	"github.com/jhoicas/cobranzas-api/internal/application/ports"
	"github.com/jhoicas/cobranzas-api/internal/domain"
	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
)

func scenarioDocs() []entity.Document {
	return []entity.Document{
		{ID: "1", ClientID: "C", SellerID: strp("A"), DocType: entity.DocTypeInvoice, DocNumber: "F-1",
			Amount: dec("500"), Balance: dec("500"), IssueDate: today.AddDate(0, -1, 0), DueDate: dayOffset(-10)},
		{ID: "2", ClientID: "C", SellerID: strp("A"), DocType: entity.DocTypeInvoice, DocNumber: "F-2",
			Amount: dec("300"), Balance: dec("300"), IssueDate: today.AddDate(0, 0, -5), DueDate: dayOffset(5)},
		{ID: "3", ClientID: "C", SellerID: strp("A"), DocType: entity.DocTypeCreditNote, DocNumber: "NC-1",
			Amount: dec("-200"), Balance: dec("-200"), IssueDate: today.AddDate(0, 0, -2)},
		{ID: "4", ClientID: "D", SellerID: strp("B"), DocType: entity.DocTypeInvoice, DocNumber: "F-3",
			Amount: dec("1000"), Balance: dec("1000"), IssueDate: today.AddDate(0, -2, 0), DueDate: dayOffset(-40)},
		{ID: "5", ClientID: "D", SellerID: strp("B"), DocType: entity.DocTypeInvoice, DocNumber: "F-4",
			Amount: dec("70"), Balance: dec("70"), IssueDate: today, DueDate: dayOffset(-1), Voided: true},
		{ID: "6", ClientID: "C", SellerID: strp("A"), DocType: entity.DocTypeInvoice, DocNumber: "F-5",
			Amount: dec("800"), Balance: dec("0"), IssueDate: today.AddDate(0, -6, 0), DueDate: dayOffset(-150)},
	}
}

func TestGetCollectionsSummary_Cliente(t *testing.T) {
	repo := &fakeDocRepo{docs: scenarioDocs()}
	uc := appcollections.NewSummaryUseCase(repo, ports.FixedClock(today))

	out, err := uc.GetCollectionsSummary(context.Background(), entity.ScopeFilter{ClientID: "C"})
	require.NoError(t, err)

	assert.Equal(t, "2025-06-20", out.ReferenceDate)
	assert.True(t, dec("500").Equal(out.OverdueTotal))
	assert.True(t, dec("300").Equal(out.NotYetDueTotal))
	assert.True(t, dec("200").Equal(out.UndatedCreditTotal))
	assert.True(t, dec("600").Equal(out.NetTotal))
	assert.Equal(t, 1, out.OverdueCount)
	assert.Equal(t, 3, out.TotalCount)
	assert.Equal(t, 10, out.AvgDaysOverdue)
	assert.Equal(t, 20, out.DaysElapsedInMonth)
	assert.Equal(t, 10, out.DaysRemainingInMonth)

	require.Len(t, repo.filters, 1)
	assert.True(t, repo.filters[0].ExcludeVoided, "los anulados se excluyen en la consulta")
	assert.True(t, repo.filters[0].OpenOnly, "la factura saldada F-5 no cuenta")
}

func TestGetCollectionsSummary_CarteraCompleta(t *testing.T) {
	repo := &fakeDocRepo{docs: scenarioDocs()}
	uc := appcollections.NewSummaryUseCase(repo, ports.FixedClock(today))

	out, err := uc.GetCollectionsSummary(context.Background(), entity.ScopeFilter{Sellers: entity.ParseSellerScope("-1")})
	require.NoError(t, err)
	assert.True(t, dec("1500").Equal(out.OverdueTotal))
	assert.Equal(t, 2, out.OverdueCount)
	assert.Equal(t, 25, out.AvgDaysOverdue, "(10 + 40) / 2")
}

func TestGetCollectionsSummary_AlcanceSinDocumentos(t *testing.T) {
	repo := &fakeDocRepo{docs: scenarioDocs()}
	uc := appcollections.NewSummaryUseCase(repo, ports.FixedClock(today))

	out, err := uc.GetCollectionsSummary(context.Background(), entity.ScopeFilter{Sellers: entity.ParseSellerScope("Z")})
	require.NoError(t, err)
	assert.Zero(t, out.TotalCount)
	assert.True(t, out.NetTotal.IsZero())
}

func TestGetCollectionsSummary_ErrorDelAlmacen(t *testing.T) {
	boom := errors.New("conexión perdida")
	uc := appcollections.NewSummaryUseCase(&fakeDocRepo{err: boom}, ports.FixedClock(today))

	_, err := uc.GetCollectionsSummary(context.Background(), entity.ScopeFilter{})
	assert.ErrorIs(t, err, boom)
}

func TestListOpenDocuments(t *testing.T) {
	uc := appcollections.NewSummaryUseCase(&fakeDocRepo{docs: scenarioDocs()}, ports.FixedClock(today))

	out, err := uc.ListOpenDocuments(context.Background(), entity.ScopeFilter{Sellers: entity.ParseSellerScope("A,B")}, appcollections.DocumentQuery{})
	require.NoError(t, err)
	require.Len(t, out.Items, 4)
	assert.Equal(t, "F-3", out.Items[0].DocNumber)
	assert.Equal(t, 40, out.Items[0].DaysOverdue)
	assert.Equal(t, "Factura", out.Items[0].DocTypeName)
	assert.Equal(t, "NC-1", out.Items[3].DocNumber)
	assert.Equal(t, string(entity.BucketUndatedCredit), out.Items[3].Bucket)
}

func TestListOpenDocuments_FiltrosDeVencimientoYBucket(t *testing.T) {
	repo := &fakeDocRepo{docs: scenarioDocs()}
	uc := appcollections.NewSummaryUseCase(repo, ports.FixedClock(today))
	all := entity.ScopeFilter{Sellers: entity.ParseSellerScope("-1")}

	out, err := uc.ListOpenDocuments(context.Background(), all, appcollections.DocumentQuery{
		DueAfter: dayOffset(-20), DueBefore: dayOffset(10),
	})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "F-1", out.Items[0].DocNumber)
	assert.Equal(t, "F-2", out.Items[1].DocNumber)
	last := repo.filters[len(repo.filters)-1]
	require.NotNil(t, last.DueBefore)
	assert.True(t, last.DueBefore.Equal(*dayOffset(10)))

	out, err = uc.ListOpenDocuments(context.Background(), all, appcollections.DocumentQuery{Bucket: entity.BucketOverdue})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	for _, it := range out.Items {
		assert.Equal(t, string(entity.BucketOverdue), it.Bucket)
		assert.NotEqual(t, "F-5", it.DocNumber)
	}
}

func TestListOpenDocuments_ParametrosInvalidos(t *testing.T) {
	uc := appcollections.NewSummaryUseCase(&fakeDocRepo{docs: scenarioDocs()}, ports.FixedClock(today))

	_, err := uc.ListOpenDocuments(context.Background(), entity.ScopeFilter{}, appcollections.DocumentQuery{
		DueAfter: dayOffset(5), DueBefore: dayOffset(-5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.ListOpenDocuments(context.Background(), entity.ScopeFilter{}, appcollections.DocumentQuery{Bucket: "PAGADO"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetDocument(t *testing.T) {
	uc := appcollections.NewSummaryUseCase(&fakeDocRepo{docs: scenarioDocs()}, ports.FixedClock(today))
	ctx := context.Background()

	d, err := uc.GetDocument(ctx, "1", entity.ParseSellerScope("A"))
	require.NoError(t, err)
	assert.Equal(t, string(entity.BucketOverdue), d.Bucket)
	assert.Equal(t, 10, d.DaysOverdue)
	assert.True(t, d.Collected.IsZero())

	d, err = uc.GetDocument(ctx, "6", entity.ParseSellerScope("A"))
	require.NoError(t, err)
	assert.Empty(t, d.Bucket, "saldado: sin bucket")
	assert.Zero(t, d.DaysOverdue)
	assert.True(t, dec("800").Equal(d.Collected))

	d, err = uc.GetDocument(ctx, "5", entity.ParseSellerScope("-1"))
	require.NoError(t, err)
	assert.True(t, d.Voided)
	assert.Empty(t, d.Bucket)

	_, err = uc.GetDocument(ctx, "4", entity.ParseSellerScope("A"))
	assert.ErrorIs(t, err, domain.ErrNotFound, "fuera del alcance")

	_, err = uc.GetDocument(ctx, "99", entity.ParseSellerScope("-1"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
