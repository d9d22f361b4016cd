package models

// Cliente is a restaurant customer.
type Cliente struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Nome     string `gorm:"type:varchar(100);not null" json:"nome"`
	Email    string `gorm:"type:varchar(120);not null" json:"email"`
	Telefone string `gorm:"type:varchar(20)" json:"telefone"`
}
