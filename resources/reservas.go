package resources

import (
	"strconv"

	"github.com/yeremiapane/reserva-dashboard/models"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type ReservaForm struct {
	ClienteID   string `form:"cliente_id"`
	MesaID      string `form:"mesa_id"`
	DataReserva string `form:"data_reserva"`
	Horario     string `form:"horario"`
	Status      string `form:"status"`
}

type ReservaPayload struct {
	ClienteID   int    `json:"cliente_id"`
	MesaID      int    `json:"mesa_id"`
	DataReserva string `json:"data_reserva"`
	Horario     string `json:"horario"`
	Status      string `json:"status"`
}

var ReservaKind = Kind[models.Reserva, ReservaForm]{
	Name: "reserva",
	Messages: Messages{
		LoadFailed:    "Erro ao carregar dados",
		Created:       "Reserva criada",
		Updated:       "Reserva atualizada",
		Deleted:       "Reserva excluída com sucesso",
		ConfirmDelete: "Deseja realmente excluir esta reserva?",
	},
	ID:    func(r models.Reserva) int { return r.ID },
	Empty: func() ReservaForm { return ReservaForm{Status: string(models.StatusConfirmada)} },
	FromRecord: func(r models.Reserva) ReservaForm {
		f := ReservaForm{DataReserva: r.DataReserva, Horario: r.Horario, Status: r.Status}
		// The status select only knows the lower-case values.
		if st, ok := models.ParseReservaStatus(r.Status); ok {
			f.Status = string(st)
		}
		if r.ClienteID != 0 {
			f.ClienteID = strconv.Itoa(r.ClienteID)
		}
		if r.MesaID != 0 {
			f.MesaID = strconv.Itoa(r.MesaID)
		}
		return f
	},
	Parse: func(f ReservaForm, _ Target[models.Reserva]) (interface{}, error) {
		clienteID, err := parseInt("cliente_id", "Cliente", f.ClienteID)
		if err != nil {
			return nil, err
		}
		mesaID, err := parseInt("mesa_id", "Mesa", f.MesaID)
		if err != nil {
			return nil, err
		}
		data, err := parseLayout("data_reserva", "Data", dateLayout, f.DataReserva)
		if err != nil {
			return nil, err
		}
		horario, err := parseLayout("horario", "Horário", timeLayout, f.Horario)
		if err != nil {
			return nil, err
		}
		status, ok := models.ParseReservaStatus(f.Status)
		if !ok {
			return nil, &ValidationError{Field: "status", Message: "Status inválido"}
		}
		return ReservaPayload{
			ClienteID:   clienteID,
			MesaID:      mesaID,
			DataReserva: data,
			Horario:     horario,
			Status:      string(status),
		}, nil
	},
}

// StatusVariant picks the badge style of a reservation status.
// Unknown statuses get the neutral style.
func StatusVariant(status string) Variant {
	st, _ := models.ParseReservaStatus(status)
	switch st {
	case models.StatusConfirmada:
		return VariantDefault
	case models.StatusCancelada:
		return VariantDestructive
	default:
		return VariantSecondary
	}
}
