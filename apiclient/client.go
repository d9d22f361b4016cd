// Package apiclient talks to the restaurant REST API.
//
// Every call is a single attempt. Failures come back as ErrConnection when
// the server could not be reached, or as *APIError for non-2xx answers.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yeremiapane/reserva-dashboard/models"
)

var (
	ErrConnection      = errors.New("não foi possível conectar ao servidor")
	ErrInvalidResponse = errors.New("resposta inválida do servidor")
)

// APIError is a non-2xx answer. Message carries the server's "erro" field
// and is empty when the body had none.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.StatusCode)
}

// ServerMessage returns the server-provided error text of err, if any.
func ServerMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewWithHTTPClient is used by tests to point the client at an httptest server.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: hc}
}

// WithToken returns a copy that sends token as a bearer credential.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

func (c *Client) Clientes() *Resource[models.Cliente] {
	return &Resource[models.Cliente]{client: c, path: "/api/clientes/"}
}

func (c *Client) Mesas() *Resource[models.Mesa] {
	return &Resource[models.Mesa]{client: c, path: "/api/mesas/"}
}

func (c *Client) Funcionarios() *Resource[models.Funcionario] {
	return &Resource[models.Funcionario]{client: c, path: "/api/funcionarios/"}
}

func (c *Client) Reservas() *Resource[models.Reserva] {
	return &Resource[models.Reserva]{client: c, path: "/api/reservas/"}
}

// do sends body as JSON and decodes a 2xx answer into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Erro string `json:"erro"`
		}
		_ = json.Unmarshal(data, &errBody)
		return &APIError{StatusCode: resp.StatusCode, Message: errBody.Erro}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}
