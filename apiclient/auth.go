package apiclient

import (
	"context"
	"net/http"

	"github.com/yeremiapane/reserva-dashboard/models"
)

type Credentials struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type LoginResponse struct {
	Mensagem    string             `json:"mensagem,omitempty"`
	Token       string             `json:"token"`
	Funcionario models.Funcionario `json:"funcionario"`
}

// Login exchanges employee credentials for an access token.
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/funcionarios/login", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
