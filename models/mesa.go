package models

// Mesa is a dining table. Disponivel is owned by the API server;
// the dashboard only displays it.
type Mesa struct {
	ID         int  `gorm:"primaryKey" json:"id"`
	Numero     int  `gorm:"not null;uniqueIndex" json:"numero"`
	Capacidade int  `gorm:"not null" json:"capacidade"`
	Disponivel bool `gorm:"not null;default:true" json:"disponivel"`
}
