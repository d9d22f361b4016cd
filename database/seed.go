package database

import (
	"errors"

	"github.com/yeremiapane/reserva-dashboard/models"
	"github.com/yeremiapane/reserva-dashboard/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the principal administrator when no employee with
// that e-mail exists yet.
func SeedAdmin(db *gorm.DB, email, senha string) error {
	var existing models.Funcionario
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.Funcionario{
		Nome:      "Administrador",
		Email:     email,
		Cargo:     "admin",
		SenhaHash: string(hashed),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	utils.InfoLogger.Printf("Seeded administrator %s", email)
	return nil
}
