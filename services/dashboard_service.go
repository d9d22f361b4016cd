package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/yeremiapane/reserva-dashboard/apiclient"
	"github.com/yeremiapane/reserva-dashboard/models"
)

// Stats are the dashboard tiles.
type Stats struct {
	TotalClientes    int `json:"totalClientes"`
	TotalMesas       int `json:"totalMesas"`
	MesasDisponiveis int `json:"mesasDisponiveis"`
	TotalReservas    int `json:"totalReservas"`
}

type Lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

type DashboardService struct {
	Clientes Lister[models.Cliente]
	Mesas    Lister[models.Mesa]
	Reservas Lister[models.Reserva]
}

func NewDashboardService(api *apiclient.Client) *DashboardService {
	return &DashboardService{
		Clientes: api.Clientes(),
		Mesas:    api.Mesas(),
		Reservas: api.Reservas(),
	}
}

// Stats fetches the three collections concurrently and waits for all of
// them. Any failure means no stats at all.
func (s *DashboardService) Stats(ctx context.Context) (*Stats, error) {
	var (
		g        errgroup.Group
		clientes []models.Cliente
		mesas    []models.Mesa
		reservas []models.Reserva
	)

	g.Go(func() (err error) {
		clientes, err = s.Clientes.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		mesas, err = s.Mesas.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		reservas, err = s.Reservas.List(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalClientes: len(clientes),
		TotalMesas:    len(mesas),
		TotalReservas: len(reservas),
	}
	for _, m := range mesas {
		if m.Disponivel {
			stats.MesasDisponiveis++
		}
	}
	return stats, nil
}
