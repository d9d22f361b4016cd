package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/yeremiapane/reserva-dashboard/apiclient"
	"github.com/yeremiapane/reserva-dashboard/models"
	"github.com/yeremiapane/reserva-dashboard/resources"
	"github.com/yeremiapane/reserva-dashboard/utils"
)

const (
	TokenKey = "token"
	UserKey  = "user"
)

var (
	ErrLoginInProgress = errors.New("login em andamento")
	ErrMissingFields   = errors.New("email e senha são obrigatórios")
)

// Storage is the client-side key/value store that holds the session.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}

type MemoryStorage map[string]string

func (m MemoryStorage) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MemoryStorage) Set(key, value string) { m[key] = value }

func (m MemoryStorage) Remove(key string) { delete(m, key) }

type Authenticator interface {
	Login(ctx context.Context, creds apiclient.Credentials) (*apiclient.LoginResponse, error)
}

// LoginFlow submits credentials and persists the session on success.
// Only one attempt per e-mail may be in flight.
type LoginFlow struct {
	auth Authenticator

	mu   sync.Mutex
	busy map[string]struct{}
}

func NewLoginFlow(auth Authenticator) *LoginFlow {
	return &LoginFlow{auth: auth, busy: make(map[string]struct{})}
}

func (lf *LoginFlow) acquire(email string) bool {
	lf.mu.Lock()
	defer lf.mu.Unlock()
	if _, ok := lf.busy[email]; ok {
		return false
	}
	lf.busy[email] = struct{}{}
	return true
}

func (lf *LoginFlow) release(email string) {
	lf.mu.Lock()
	delete(lf.busy, email)
	lf.mu.Unlock()
}

// Submit logs in and stores the token and the user profile. Nothing is
// stored when the attempt fails.
func (lf *LoginFlow) Submit(ctx context.Context, store Storage, email, senha string) (*models.Funcionario, error) {
	email = strings.TrimSpace(email)
	if email == "" || senha == "" {
		return nil, ErrMissingFields
	}

	key := strings.ToLower(email)
	if !lf.acquire(key) {
		return nil, ErrLoginInProgress
	}
	defer lf.release(key)

	resp, err := lf.auth.Login(ctx, apiclient.Credentials{Email: email, Senha: senha})
	if err != nil {
		utils.InfoLogger.Printf("Login failed for %s: %v", email, err)
		return nil, err
	}

	user, err := json.Marshal(resp.Funcionario)
	if err != nil {
		return nil, err
	}
	store.Set(TokenKey, resp.Token)
	store.Set(UserKey, string(user))

	utils.InfoLogger.Printf("Funcionario %d logged in", resp.Funcionario.ID)
	return &resp.Funcionario, nil
}

// LoginNotice is the toast shown after a login attempt.
func LoginNotice(user *models.Funcionario, err error) resources.Notice {
	if err == nil {
		return resources.Success("Login realizado com sucesso!", "Bem-vindo, "+user.Nome)
	}
	switch {
	case errors.Is(err, apiclient.ErrConnection):
		return resources.Failure("Erro de conexão", err)
	case errors.Is(err, ErrMissingFields), errors.Is(err, ErrLoginInProgress):
		return resources.Notice{Variant: resources.VariantDestructive, Title: "Erro", Description: err.Error()}
	}
	if msg, ok := apiclient.ServerMessage(err); ok {
		return resources.Notice{Variant: resources.VariantDestructive, Title: "Erro", Description: msg}
	}
	return resources.Notice{Variant: resources.VariantDestructive, Title: "Erro", Description: "Credenciais inválidas"}
}

func Logout(store Storage) {
	store.Remove(TokenKey)
	store.Remove(UserKey)
}

// Authenticated reports whether a token is stored. The token itself is
// not inspected.
func Authenticated(store Storage) bool {
	token, ok := store.Get(TokenKey)
	return ok && token != ""
}

// CurrentUser decodes the stored profile. A missing or corrupt value
// yields false.
func CurrentUser(store Storage) (*models.Funcionario, bool) {
	raw, ok := store.Get(UserKey)
	if !ok || raw == "" {
		return nil, false
	}
	var f models.Funcionario
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		return nil, false
	}
	return &f, true
}
