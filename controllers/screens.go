package controllers

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/yeremiapane/reserva-dashboard/apiclient"
	"github.com/yeremiapane/reserva-dashboard/models"
	"github.com/yeremiapane/reserva-dashboard/resources"
)

func ClientesScreen() Screen[models.Cliente, resources.ClienteForm] {
	return Screen[models.Cliente, resources.ClienteForm]{
		Kind:     resources.ClienteKind,
		Path:     "/clientes",
		Title:    "Clientes",
		Active:   "clientes",
		Template: "clientes.html",
		Backend: func(api *apiclient.Client) resources.Backend[models.Cliente] {
			return api.Clientes()
		},
	}
}

func MesasScreen() Screen[models.Mesa, resources.MesaForm] {
	return Screen[models.Mesa, resources.MesaForm]{
		Kind:     resources.MesaKind,
		Path:     "/mesas",
		Title:    "Mesas",
		Active:   "mesas",
		Template: "mesas.html",
		Backend: func(api *apiclient.Client) resources.Backend[models.Mesa] {
			return api.Mesas()
		},
	}
}

func FuncionariosScreen() Screen[models.Funcionario, resources.FuncionarioForm] {
	return Screen[models.Funcionario, resources.FuncionarioForm]{
		Kind:     resources.FuncionarioKind,
		Path:     "/funcionarios",
		Title:    "Funcionários",
		Active:   "funcionarios",
		Template: "funcionarios.html",
		Backend: func(api *apiclient.Client) resources.Backend[models.Funcionario] {
			return api.Funcionarios()
		},
	}
}

func ReservasScreen() Screen[models.Reserva, resources.ReservaForm] {
	return Screen[models.Reserva, resources.ReservaForm]{
		Kind:     resources.ReservaKind,
		Path:     "/reservas",
		Title:    "Reservas",
		Active:   "reservas",
		Template: "reservas.html",
		Backend: func(api *apiclient.Client) resources.Backend[models.Reserva] {
			return api.Reservas()
		},
		Prepare: loadReservaOptions,
	}
}

// loadReservaOptions fills the customer and table pickers. Only tables
// available right now are offered, plus the table of the reservation
// being edited.
func loadReservaOptions(ctx context.Context, api *apiclient.Client, s *resources.Session[models.Reserva, resources.ReservaForm], page *Page) {
	var (
		g        errgroup.Group
		clientes []models.Cliente
		mesas    []models.Mesa
	)
	g.Go(func() (err error) {
		clientes, err = api.Clientes().List(ctx)
		return err
	})
	g.Go(func() (err error) {
		mesas, err = api.Mesas().List(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		page.Notices.Notify(resources.Failure("Erro ao carregar dados", err))
		return
	}

	page.Clientes = clientes
	page.Mesas = resources.AvailableMesas(mesas)
	if record, ok := s.Target.Record(); ok {
		for _, m := range mesas {
			if m.ID == record.MesaID && !m.Disponivel {
				page.Mesas = append(page.Mesas, m)
			}
		}
	}
}
