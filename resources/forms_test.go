package resources

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/reserva-dashboard/models"
)

func TestMesaParse(t *testing.T) {
	payload, err := MesaKind.Parse(MesaForm{Numero: " 12 ", Capacidade: "4", Disponivel: true}, CreateTarget[models.Mesa]())
	require.NoError(t, err)
	assert.Equal(t, MesaPayload{Numero: 12, Capacidade: 4, Disponivel: true}, payload)

	_, err = MesaKind.Parse(MesaForm{Numero: "doze", Capacidade: "4"}, CreateTarget[models.Mesa]())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "numero", verr.Field)
}

func TestMesaFormFromRecord(t *testing.T) {
	f := MesaKind.FromRecord(models.Mesa{ID: 2, Numero: 7, Capacidade: 6, Disponivel: false})
	assert.Equal(t, MesaForm{Numero: "7", Capacidade: "6", Disponivel: false}, f)
}

func TestFuncionarioPasswordNeverRoundTrips(t *testing.T) {
	rec := models.Funcionario{ID: 5, Nome: "Caio", Email: "caio@x.com", Cargo: "garcom", SenhaHash: "$2a$hash"}
	form := FuncionarioKind.FromRecord(rec)
	assert.Empty(t, form.Senha)

	payload, err := FuncionarioKind.Parse(form, EditTarget(rec))
	require.NoError(t, err)

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "senha")
}

func TestFuncionarioCreateRequiresPassword(t *testing.T) {
	form := FuncionarioForm{Nome: "Caio", Email: "caio@x.com", Cargo: "garcom"}
	_, err := FuncionarioKind.Parse(form, CreateTarget[models.Funcionario]())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "senha", verr.Field)

	form.Senha = "segredo"
	payload, err := FuncionarioKind.Parse(form, CreateTarget[models.Funcionario]())
	require.NoError(t, err)
	assert.Equal(t, "segredo", payload.(FuncionarioPayload).Senha)
}

func TestReservaParse(t *testing.T) {
	form := ReservaForm{ClienteID: "3", MesaID: "7", DataReserva: "2030-05-01", Horario: "20:30", Status: "Pendente"}
	payload, err := ReservaKind.Parse(form, CreateTarget[models.Reserva]())
	require.NoError(t, err)
	assert.Equal(t, ReservaPayload{ClienteID: 3, MesaID: 7, DataReserva: "2030-05-01", Horario: "20:30", Status: "pendente"}, payload)

	tests := []struct {
		name  string
		form  ReservaForm
		field string
	}{
		{"missing cliente", ReservaForm{MesaID: "7", DataReserva: "2030-05-01", Horario: "20:30", Status: "confirmada"}, "cliente_id"},
		{"bad date", ReservaForm{ClienteID: "3", MesaID: "7", DataReserva: "01/05/2030", Horario: "20:30", Status: "confirmada"}, "data_reserva"},
		{"bad time", ReservaForm{ClienteID: "3", MesaID: "7", DataReserva: "2030-05-01", Horario: "8pm", Status: "confirmada"}, "horario"},
		{"bad status", ReservaForm{ClienteID: "3", MesaID: "7", DataReserva: "2030-05-01", Horario: "20:30", Status: "adiada"}, "status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReservaKind.Parse(tt.form, CreateTarget[models.Reserva]())
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestReservaFormFromRecordNormalizesStatus(t *testing.T) {
	f := ReservaKind.FromRecord(models.Reserva{ID: 5, ClienteID: 1, MesaID: 2, Status: "Pendente"})
	assert.Equal(t, "pendente", f.Status)
	assert.Equal(t, "1", f.ClienteID)
	assert.Equal(t, "2", f.MesaID)

	assert.Equal(t, "cancelada", ReservaKind.FromRecord(models.Reserva{Status: " CANCELADA"}).Status)
	assert.Equal(t, "adiada", ReservaKind.FromRecord(models.Reserva{Status: "adiada"}).Status)
}

func TestReservaEmptyFormDefaultsToConfirmada(t *testing.T) {
	assert.Equal(t, "confirmada", ReservaKind.Empty().Status)
}

func TestAvailableMesas(t *testing.T) {
	mesas := []models.Mesa{{ID: 1, Disponivel: true}, {ID: 2}, {ID: 3, Disponivel: true}}
	got := AvailableMesas(mesas)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}

func TestStatusVariant(t *testing.T) {
	assert.Equal(t, VariantDefault, StatusVariant("CONFIRMADA"))
	assert.Equal(t, VariantSecondary, StatusVariant("pendente"))
	assert.Equal(t, VariantDestructive, StatusVariant("Cancelada"))
	assert.Equal(t, VariantSecondary, StatusVariant("adiada"))
}
