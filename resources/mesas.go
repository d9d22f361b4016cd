package resources

import (
	"strconv"

	"github.com/yeremiapane/reserva-dashboard/models"
)

// MesaForm keeps the numeric inputs as typed text until Parse.
type MesaForm struct {
	Numero     string `form:"numero"`
	Capacidade string `form:"capacidade"`
	Disponivel bool   `form:"disponivel"`
}

type MesaPayload struct {
	Numero     int  `json:"numero"`
	Capacidade int  `json:"capacidade"`
	Disponivel bool `json:"disponivel"`
}

var MesaKind = Kind[models.Mesa, MesaForm]{
	Name: "mesa",
	Messages: Messages{
		LoadFailed:    "Erro ao carregar mesas",
		Created:       "Mesa criada",
		Updated:       "Mesa atualizada",
		Deleted:       "Mesa excluída com sucesso",
		ConfirmDelete: "Deseja realmente excluir esta mesa?",
	},
	ID:    func(m models.Mesa) int { return m.ID },
	Empty: func() MesaForm { return MesaForm{Disponivel: true} },
	FromRecord: func(m models.Mesa) MesaForm {
		return MesaForm{
			Numero:     strconv.Itoa(m.Numero),
			Capacidade: strconv.Itoa(m.Capacidade),
			Disponivel: m.Disponivel,
		}
	},
	Parse: func(f MesaForm, _ Target[models.Mesa]) (interface{}, error) {
		numero, err := parseInt("numero", "Número", f.Numero)
		if err != nil {
			return nil, err
		}
		capacidade, err := parseInt("capacidade", "Capacidade", f.Capacidade)
		if err != nil {
			return nil, err
		}
		return MesaPayload{Numero: numero, Capacidade: capacidade, Disponivel: f.Disponivel}, nil
	},
}

// AvailableMesas is the table picker offered when a reservation dialog opens.
func AvailableMesas(mesas []models.Mesa) []models.Mesa {
	out := make([]models.Mesa, 0, len(mesas))
	for _, m := range mesas {
		if m.Disponivel {
			out = append(out, m)
		}
	}
	return out
}
