package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/reserva-dashboard/apiclient"
	"github.com/yeremiapane/reserva-dashboard/resources"
	"github.com/yeremiapane/reserva-dashboard/utils"
)

func init() {
	utils.SilenceLoggers()
}

func loginServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		var body apiclient.Credentials
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Senha != "certa" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"erro":"Credenciais inválidas"}`))
			return
		}
		w.Write([]byte(`{"token":"abc","funcionario":{"nome":"Ana"}}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestLoginStoresSession(t *testing.T) {
	server := loginServer(t)
	flow := NewLoginFlow(apiclient.NewWithHTTPClient(server.URL, server.Client()))
	store := MemoryStorage{}

	user, err := flow.Submit(context.Background(), store, "ana@x.com", "certa")
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Nome)

	token, ok := store.Get(TokenKey)
	assert.True(t, ok)
	assert.Equal(t, "abc", token)
	assert.True(t, Authenticated(store))

	current, ok := CurrentUser(store)
	require.True(t, ok)
	assert.Equal(t, "Ana", current.Nome)

	n := LoginNotice(user, nil)
	assert.Equal(t, "Login realizado com sucesso!", n.Title)
	assert.Equal(t, "Bem-vindo, Ana", n.Description)
}

func TestLoginRejectedLeavesStorageUntouched(t *testing.T) {
	server := loginServer(t)
	flow := NewLoginFlow(apiclient.NewWithHTTPClient(server.URL, server.Client()))
	store := MemoryStorage{}

	user, err := flow.Submit(context.Background(), store, "ana@x.com", "errada")
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Empty(t, store)

	n := LoginNotice(nil, err)
	assert.Equal(t, resources.VariantDestructive, n.Variant)
	assert.Equal(t, "Credenciais inválidas", n.Description)
}

func TestLoginConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	flow := NewLoginFlow(apiclient.NewWithHTTPClient(server.URL, http.DefaultClient))

	_, err := flow.Submit(context.Background(), MemoryStorage{}, "ana@x.com", "certa")
	assert.ErrorIs(t, err, apiclient.ErrConnection)

	n := LoginNotice(nil, err)
	assert.Equal(t, "Erro de conexão", n.Title)
	assert.Equal(t, "Não foi possível conectar ao servidor", n.Description)
}

func TestLoginRequiresBothFields(t *testing.T) {
	flow := NewLoginFlow(nil)
	_, err := flow.Submit(context.Background(), MemoryStorage{}, " ", "x")
	assert.ErrorIs(t, err, ErrMissingFields)
}

type blockingAuth struct {
	entered chan struct{}
	release chan struct{}
	calls   int
	mu      sync.Mutex
}

func (b *blockingAuth) Login(ctx context.Context, creds apiclient.Credentials) (*apiclient.LoginResponse, error) {
	b.mu.Lock()
	b.calls++
	b.mu.Unlock()
	b.entered <- struct{}{}
	<-b.release
	return &apiclient.LoginResponse{Token: "t"}, nil
}

func TestLoginSingleAttemptInFlight(t *testing.T) {
	auth := &blockingAuth{entered: make(chan struct{}), release: make(chan struct{})}
	flow := NewLoginFlow(auth)

	done := make(chan error)
	go func() {
		_, err := flow.Submit(context.Background(), MemoryStorage{}, "ana@x.com", "certa")
		done <- err
	}()
	<-auth.entered

	_, err := flow.Submit(context.Background(), MemoryStorage{}, "ANA@x.com", "certa")
	assert.ErrorIs(t, err, ErrLoginInProgress)

	close(auth.release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, auth.calls)

	// Once the first attempt finished, a new one is accepted.
	auth.entered = make(chan struct{}, 1)
	_, err = flow.Submit(context.Background(), MemoryStorage{}, "ana@x.com", "certa")
	assert.NoError(t, err)
}

func TestLogoutClearsSession(t *testing.T) {
	store := MemoryStorage{TokenKey: "abc", UserKey: `{"nome":"Ana"}`}
	Logout(store)
	assert.False(t, Authenticated(store))
	_, ok := CurrentUser(store)
	assert.False(t, ok)
	assert.Empty(t, store)
}
