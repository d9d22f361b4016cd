package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/reserva-dashboard/models"
)

func TestResourceRoutes(t *testing.T) {
	var seen []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.Path)
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		if r.Method == http.MethodGet {
			w.Write([]byte(`[{"id":1,"numero":4,"capacidade":2,"disponivel":true}]`))
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := NewWithHTTPClient(server.URL, server.Client()).WithToken("abc")
	ctx := context.Background()

	mesas, err := c.Mesas().List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Mesa{{ID: 1, Numero: 4, Capacidade: 2, Disponivel: true}}, mesas)

	require.NoError(t, c.Mesas().Create(ctx, map[string]int{"numero": 5}))
	require.NoError(t, c.Mesas().Update(ctx, 9, map[string]int{"numero": 6}))
	require.NoError(t, c.Mesas().Delete(ctx, 9))

	assert.Equal(t, []string{
		"GET /api/mesas/",
		"POST /api/mesas/",
		"PUT /api/mesas/9",
		"DELETE /api/mesas/9",
	}, seen)
}

func TestAPIErrorCarriesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"erro":"Mesa não está disponível"}`))
	}))
	defer server.Close()

	err := NewWithHTTPClient(server.URL, server.Client()).Reservas().Create(context.Background(), struct{}{})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	msg, ok := ServerMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "Mesa não está disponível", msg)
}

func TestAPIErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>boom</html>"))
	}))
	defer server.Close()

	err := NewWithHTTPClient(server.URL, server.Client()).Clientes().Delete(context.Background(), 1)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	_, ok := ServerMessage(err)
	assert.False(t, ok)
}

func TestConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := New(url, time.Second).Clientes().List(context.Background())
	assert.ErrorIs(t, err, ErrConnection)
}

func TestInvalidResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"a list"}`))
	}))
	defer server.Close()

	_, err := NewWithHTTPClient(server.URL, server.Client()).Clientes().List(context.Background())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/funcionarios/login", r.URL.Path)
		var creds Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds.Senha != "certa" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"erro":"Credenciais inválidas"}`))
			return
		}
		w.Write([]byte(`{"token":"abc","funcionario":{"id":1,"nome":"Ana"}}`))
	}))
	defer server.Close()

	c := NewWithHTTPClient(server.URL, server.Client())

	resp, err := c.Login(context.Background(), Credentials{Email: "ana@x.com", Senha: "certa"})
	require.NoError(t, err)
	assert.Equal(t, "abc", resp.Token)
	assert.Equal(t, "Ana", resp.Funcionario.Nome)

	_, err = c.Login(context.Background(), Credentials{Email: "ana@x.com", Senha: "errada"})
	msg, _ := ServerMessage(err)
	assert.Equal(t, "Credenciais inválidas", msg)
}

func TestSubmitLegacyReserva(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reservas", r.URL.Path)
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(4), body["numero_pessoas"])
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"mensagem":"Reserva salva"}`))
	}))
	defer server.Close()

	resp, err := NewWithHTTPClient(server.URL, server.Client()).SubmitLegacyReserva(context.Background(), models.LegacyReserva{
		NomeCliente: "Ana", Data: "2030-01-01", Hora: "20:00", NumeroPessoas: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, "Reserva salva", resp.Mensagem)
}
