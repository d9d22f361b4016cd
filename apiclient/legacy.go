package apiclient

import (
	"context"
	"net/http"

	"github.com/yeremiapane/reserva-dashboard/models"
)

// SubmitLegacyReserva posts one record to the legacy endpoint, which lives
// outside the /api tree and answers with a human-readable message.
func (c *Client) SubmitLegacyReserva(ctx context.Context, r models.LegacyReserva) (*models.LegacyResponse, error) {
	var resp models.LegacyResponse
	if err := c.do(ctx, http.MethodPost, "/reservas", r, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
