package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yeremiapane/reserva-dashboard/models"
	"github.com/yeremiapane/reserva-dashboard/utils"
)

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open("postgres", "x")
	assert.Error(t, err)
}

func TestMigrateAndSeedAdmin(t *testing.T) {
	utils.SilenceLoggers()
	db, err := Open("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	require.NoError(t, SeedAdmin(db, "admin@restaurante.com", "admin123"))
	require.NoError(t, SeedAdmin(db, "admin@restaurante.com", "outra"))

	var admins []models.Funcionario
	require.NoError(t, db.Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admins[0].SenhaHash), []byte("admin123")))
}
