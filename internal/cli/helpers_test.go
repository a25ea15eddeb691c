package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"paygate/internal/api"
	"paygate/internal/config"
	"paygate/internal/logging"
	"paygate/internal/models"
)

// ---- fake gateway client ----

type fakeClient struct {
	mu         sync.Mutex
	credential string

	listCalls []models.InvoiceFilters
	listRet   [][]models.Invoice
	listErr   error

	getAccountRet *models.Account
	getAccountErr error

	createAccountIn  models.CreateAccountInput
	createAccountRet *models.Account
	createAccountErr error

	createInvoiceIn  models.CreateInvoiceInput
	createInvoiceN   int
	createInvoiceRet *models.Invoice
	createInvoiceErr error

	getInvoiceID  string
	getInvoiceRet *models.Invoice
	getInvoiceErr error
}

func (f *fakeClient) SetCredential(key string) {
	f.mu.Lock()
	f.credential = key
	f.mu.Unlock()
}

func (f *fakeClient) GetAccount(context.Context, string) (*models.Account, error) {
	return f.getAccountRet, f.getAccountErr
}

func (f *fakeClient) CreateAccount(_ context.Context, in models.CreateAccountInput) (*models.Account, error) {
	f.createAccountIn = in
	return f.createAccountRet, f.createAccountErr
}

func (f *fakeClient) CreateInvoice(_ context.Context, in models.CreateInvoiceInput) (*models.Invoice, error) {
	f.createInvoiceN++
	f.createInvoiceIn = in
	return f.createInvoiceRet, f.createInvoiceErr
}

func (f *fakeClient) ListInvoices(_ context.Context, filters models.InvoiceFilters) ([]models.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := len(f.listCalls)
	f.listCalls = append(f.listCalls, filters)
	if f.listErr != nil {
		return nil, f.listErr
	}
	if n < len(f.listRet) {
		return f.listRet[n], nil
	}
	return nil, nil
}

func (f *fakeClient) GetInvoice(_ context.Context, id string) (*models.Invoice, error) {
	f.getInvoiceID = id
	return f.getInvoiceRet, f.getInvoiceErr
}

var _ api.Client = (*fakeClient)(nil)

// ---- fake session ----

type fakeSession struct {
	authenticated bool
	credential    string
	account       *models.Account

	loginOK     bool
	loginKey    string
	logoutN     int
	logoutErr   error
	initialized bool
}

func (f *fakeSession) Init(context.Context) error {
	f.initialized = true
	return nil
}
func (f *fakeSession) Login(_ context.Context, candidate string) bool {
	f.loginKey = candidate
	if f.loginOK {
		f.authenticated = true
		f.credential = candidate
	}
	return f.loginOK
}
func (f *fakeSession) Logout(context.Context) error {
	f.logoutN++
	if f.logoutErr == nil {
		f.authenticated = false
		f.credential = ""
		f.account = nil
	}
	return f.logoutErr
}
func (f *fakeSession) IsAuthenticated() bool    { return f.authenticated }
func (f *fakeSession) Account() *models.Account { return f.account }
func (f *fakeSession) Credential() string       { return f.credential }

// ---- fake credential repo ----

type fakeRepo struct {
	values map[string]string
}

func newFakeRepo() *fakeRepo { return &fakeRepo{values: map[string]string{}} }

func (f *fakeRepo) Get(_ context.Context, key string) (string, error) { return f.values[key], nil }
func (f *fakeRepo) Set(_ context.Context, key, value string) error {
	f.values[key] = value
	return nil
}
func (f *fakeRepo) Delete(_ context.Context, key string) error {
	delete(f.values, key)
	return nil
}
func (f *fakeRepo) Clear(context.Context) error {
	f.values = map[string]string{}
	return nil
}

// newTestApp builds an App with fakes and a captured output buffer.
func newTestApp(t *testing.T, client *fakeClient, sess *fakeSession, repo *fakeRepo) (*App, *bytes.Buffer) {
	t.Helper()
	if client == nil {
		client = &fakeClient{}
	}
	if sess == nil {
		sess = &fakeSession{}
	}
	if repo == nil {
		repo = newFakeRepo()
	}
	out := &bytes.Buffer{}
	cfg := &config.Config{}
	cfg.LoadDefaults()
	a := &App{
		cfg:     cfg,
		log:     logging.NewNopLogger(),
		client:  client,
		session: sess,
		repo:    repo,
		reader:  bufio.NewReader(strings.NewReader("")),
		out:     out,
	}
	return a, out
}

func withInput(a *App, input string) {
	a.reader = bufio.NewReader(strings.NewReader(input))
}

func stubAPIKey(t *testing.T, key string, err error) {
	t.Helper()
	orig := getAPIKey
	getAPIKey = func(io.Writer) (string, error) { return key, err }
	t.Cleanup(func() { getAPIKey = orig })
}
