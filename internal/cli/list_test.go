package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paygate/internal/api"
	"paygate/internal/invoices"
	"paygate/internal/models"
	"paygate/internal/repositories/credentials"
	"paygate/internal/session"
)

func sampleInvoice(id string) models.Invoice {
	return models.Invoice{
		ID:          id,
		AccountID:   "acc-1",
		Amount:      500,
		Status:      models.StatusPending,
		PaymentType: models.PaymentTypePix,
		Description: "test invoice",
		CreatedAt:   time.Date(2026, 8, 13, 2, 38, 48, 0, time.UTC),
	}
}

func TestListWithoutCredentialRoutesToLogin(t *testing.T) {
	client := &fakeClient{}
	a, out := newTestApp(t, client, nil, newFakeRepo())

	err := a.List(context.Background(), models.InvoiceFilters{})

	require.ErrorIs(t, err, session.ErrNoCredential)
	assert.Contains(t, out.String(), msgNoCredential)
	assert.Empty(t, client.listCalls, "must not call the backend")
}

func TestListInitialLoad(t *testing.T) {
	client := &fakeClient{listRet: [][]models.Invoice{{sampleInvoice("inv-1")}}}
	repo := newFakeRepo()
	repo.values[credentials.KeyAPIKey] = "stored-key"
	a, out := newTestApp(t, client, nil, repo)

	require.NoError(t, a.List(context.Background(), models.InvoiceFilters{}))

	assert.Equal(t, "stored-key", client.credential)
	require.Len(t, client.listCalls, 1, "seeded view needs exactly one fetch")
	assert.Contains(t, out.String(), "inv-1")
	assert.Contains(t, out.String(), "pending")
	assert.Contains(t, out.String(), "Página 1 de 1")
}

func TestListFilterChangeResetsPage(t *testing.T) {
	client := &fakeClient{listRet: [][]models.Invoice{{sampleInvoice("inv-1")}, {sampleInvoice("inv-2")}}}
	repo := newFakeRepo()
	repo.values[credentials.KeyAPIKey] = "stored-key"
	a, _ := newTestApp(t, client, nil, repo)

	require.NoError(t, a.List(context.Background(), models.InvoiceFilters{Status: "approved"}))

	require.Len(t, client.listCalls, 2)
	assert.Equal(t, "approved", client.listCalls[1].Status)
	assert.Equal(t, 1, client.listCalls[1].Page)
}

func TestListPageOnlyKeepsFilters(t *testing.T) {
	client := &fakeClient{listRet: [][]models.Invoice{nil, nil, nil}}
	repo := newFakeRepo()
	repo.values[credentials.KeyAPIKey] = "stored-key"
	a, _ := newTestApp(t, client, nil, repo)

	require.NoError(t, a.List(context.Background(), models.InvoiceFilters{Status: "pending"}))
	require.NoError(t, a.List(context.Background(), models.InvoiceFilters{Page: 2}))

	last := client.listCalls[len(client.listCalls)-1]
	assert.Equal(t, "pending", last.Status)
	assert.Equal(t, 2, last.Page)
}

func TestListBackendFailureShowsFixedMessage(t *testing.T) {
	client := &fakeClient{listErr: &api.Error{Status: 500, StatusText: "Internal Server Error"}}
	repo := newFakeRepo()
	repo.values[credentials.KeyAPIKey] = "stored-key"
	a, out := newTestApp(t, client, nil, repo)

	require.NoError(t, a.List(context.Background(), models.InvoiceFilters{}))

	assert.Contains(t, out.String(), invoices.LoadErrorMessage)
	assert.NotContains(t, out.String(), "inv-")
}

func TestRefresh(t *testing.T) {
	client := &fakeClient{listRet: [][]models.Invoice{{sampleInvoice("inv-1")}, {sampleInvoice("inv-1"), sampleInvoice("inv-2")}}}
	repo := newFakeRepo()
	repo.values[credentials.KeyAPIKey] = "stored-key"
	a, out := newTestApp(t, client, nil, repo)

	require.NoError(t, a.List(context.Background(), models.InvoiceFilters{}))
	require.NoError(t, a.Refresh(context.Background()))

	require.Len(t, client.listCalls, 2)
	assert.Contains(t, out.String(), "inv-2")
}

func TestListEmptyResult(t *testing.T) {
	client := &fakeClient{}
	repo := newFakeRepo()
	repo.values[credentials.KeyAPIKey] = "stored-key"
	a, out := newTestApp(t, client, nil, repo)

	require.NoError(t, a.List(context.Background(), models.InvoiceFilters{}))
	assert.Contains(t, out.String(), "Nenhuma fatura encontrada")
}
