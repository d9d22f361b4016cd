package Controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/reserva-dashboard/apiclient"
	"github.com/yeremiapane/reserva-dashboard/config"
	"github.com/yeremiapane/reserva-dashboard/models"
	"github.com/yeremiapane/reserva-dashboard/router"
	"github.com/yeremiapane/reserva-dashboard/utils"
)

// mockAPI is a scripted REST API. failDelete makes DELETE answer 400 with
// the given erro. bodies keeps the last body sent per "METHOD path".
type mockAPI struct {
	mu           sync.Mutex
	clientes     []models.Cliente
	mesas        []models.Mesa
	funcionarios []models.Funcionario
	reservas     []models.Reserva
	requests     []string
	auth         []string
	bodies       map[string]string
	failDelete   string
}

func (m *mockAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, r.Method+" "+r.URL.Path)
	m.auth = append(m.auth, r.Header.Get("Authorization"))
	if r.Body != nil {
		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			if m.bodies == nil {
				m.bodies = make(map[string]string)
			}
			m.bodies[r.Method+" "+r.URL.Path] = string(raw)
		}
		r.Body = io.NopCloser(bytes.NewReader(raw))
	}
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.URL.Path == "/api/funcionarios/login":
		var creds apiclient.Credentials
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Senha != "certa" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"erro":"Credenciais inválidas"}`))
			return
		}
		w.Write([]byte(`{"token":"abc","funcionario":{"id":1,"nome":"Ana"}}`))
	case r.Method == http.MethodGet && r.URL.Path == "/api/clientes/":
		json.NewEncoder(w).Encode(m.clientes)
	case r.Method == http.MethodGet && r.URL.Path == "/api/mesas/":
		json.NewEncoder(w).Encode(m.mesas)
	case r.Method == http.MethodGet && r.URL.Path == "/api/reservas/":
		json.NewEncoder(w).Encode(m.reservas)
	case r.Method == http.MethodGet && r.URL.Path == "/api/funcionarios/":
		json.NewEncoder(w).Encode(m.funcionarios)
	case r.Method == http.MethodPut:
		w.Write([]byte(`{"mensagem":"ok"}`))
	case r.Method == http.MethodPost && r.URL.Path == "/api/clientes/":
		var c models.Cliente
		_ = json.NewDecoder(r.Body).Decode(&c)
		c.ID = len(m.clientes) + 1
		m.clientes = append(m.clientes, c)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(c)
	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/api/clientes/"):
		if m.failDelete != "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(utils.ErrorResponse{Erro: m.failDelete})
			return
		}
		id, _ := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/api/clientes/"))
		for i, c := range m.clientes {
			if c.ID == id {
				m.clientes = append(m.clientes[:i], m.clientes[i+1:]...)
				break
			}
		}
		w.Write([]byte(`{"mensagem":"ok"}`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (m *mockAPI) body(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bodies[key]
}

func (m *mockAPI) seen() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.requests))
	copy(out, m.requests)
	return out
}

func setupDashboard(t *testing.T, mock *mockAPI) *gin.Engine {
	return setupDashboardWith(t, mock, config.Dashboard{})
}

func setupDashboardWith(t *testing.T, mock *mockAPI, cfg config.Dashboard) *gin.Engine {
	t.Helper()
	server := httptest.NewServer(mock)
	t.Cleanup(server.Close)
	return setupDashboardConfig(server.URL, cfg)
}

func setupDashboardAt(baseURL string) *gin.Engine {
	return setupDashboardConfig(baseURL, config.Dashboard{})
}

func setupDashboardConfig(baseURL string, cfg config.Dashboard) *gin.Engine {
	gin.SetMode(gin.TestMode)
	utils.SilenceLoggers()
	api := apiclient.New(baseURL, 5*time.Second)
	return router.SetupRouter(cfg, api)
}
