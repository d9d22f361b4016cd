package models

import "strings"

type ReservaStatus string

const (
	StatusConfirmada ReservaStatus = "confirmada"
	StatusPendente   ReservaStatus = "pendente"
	StatusCancelada  ReservaStatus = "cancelada"
)

// ReservaStatuses lists the statuses in the order the dashboard offers them.
var ReservaStatuses = []ReservaStatus{StatusConfirmada, StatusPendente, StatusCancelada}

// ParseReservaStatus matches s case-insensitively against the known statuses.
func ParseReservaStatus(s string) (ReservaStatus, bool) {
	for _, st := range ReservaStatuses {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, true
		}
	}
	return "", false
}

// Reserva is a table booking. ClienteNome and MesaNumero are denormalized
// by the API for display and are not stored.
type Reserva struct {
	ID          int     `gorm:"primaryKey" json:"id"`
	ClienteID   int     `gorm:"not null;index" json:"cliente_id,omitempty"`
	Cliente     Cliente `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	MesaID      int     `gorm:"not null;index" json:"mesa_id,omitempty"`
	Mesa        Mesa    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	DataReserva string  `gorm:"type:varchar(10);not null" json:"data_reserva"`
	Horario     string  `gorm:"type:varchar(10);not null" json:"horario"`
	Status      string  `gorm:"type:varchar(20);not null;default:'pendente'" json:"status"`

	ClienteNome string `gorm:"-" json:"cliente_nome"`
	MesaNumero  int    `gorm:"-" json:"mesa_numero"`
}

// Denormalize copies the associated display fields onto the record.
func (r *Reserva) Denormalize() {
	if r.Cliente.ID != 0 {
		r.ClienteNome = r.Cliente.Nome
	}
	if r.Mesa.ID != 0 {
		r.MesaNumero = r.Mesa.Numero
	}
}
