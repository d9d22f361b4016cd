package models

// LegacyReserva is the flat record posted by the standalone reservation form.
type LegacyReserva struct {
	ID              int    `gorm:"primaryKey" json:"id,omitempty"`
	NomeCliente     string `gorm:"type:varchar(100);not null" json:"nome_cliente"`
	TelefoneCliente string `gorm:"type:varchar(20)" json:"telefone_cliente"`
	Data            string `gorm:"type:varchar(10);not null" json:"data"`
	Hora            string `gorm:"type:varchar(5);not null" json:"hora"`
	NumeroPessoas   int    `gorm:"not null" json:"numero_pessoas"`
	Status          string `gorm:"type:varchar(20);default:'confirmada'" json:"status,omitempty"`
}

func (LegacyReserva) TableName() string { return "reservas_avulsas" }

type LegacyResponse struct {
	Mensagem string `json:"mensagem"`
}
