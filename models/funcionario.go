package models

// Funcionario is a staff member able to log into the dashboard.
// The password hash never leaves the API.
type Funcionario struct {
	ID        int    `gorm:"primaryKey" json:"id"`
	Nome      string `gorm:"type:varchar(100);not null" json:"nome"`
	Email     string `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	Cargo     string `gorm:"type:varchar(50);not null" json:"cargo"`
	SenhaHash string `gorm:"type:varchar(255);not null" json:"-"`
}
