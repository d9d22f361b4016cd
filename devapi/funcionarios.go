package devapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reserva-dashboard/apiclient"
	"github.com/yeremiapane/reserva-dashboard/models"
	"github.com/yeremiapane/reserva-dashboard/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type FuncionarioController struct {
	DB         *gorm.DB
	Tokens     *utils.TokenIssuer
	AdminEmail string
}

func NewFuncionarioController(db *gorm.DB, tokens *utils.TokenIssuer, adminEmail string) *FuncionarioController {
	return &FuncionarioController{DB: db, Tokens: tokens, AdminEmail: adminEmail}
}

func (fc *FuncionarioController) emailTaken(email string, exceptID int) (bool, error) {
	var count int64
	err := fc.DB.Model(&models.Funcionario{}).Where("email = ? AND id <> ?", email, exceptID).Count(&count).Error
	return count > 0, err
}

func (fc *FuncionarioController) List(c *gin.Context) {
	funcionarios := []models.Funcionario{}
	if err := fc.DB.Order("id").Find(&funcionarios).Error; err != nil {
		internalError(c, "list funcionarios", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, funcionarios)
}

func (fc *FuncionarioController) Create(c *gin.Context) {
	var req struct {
		Nome  string `json:"nome" binding:"required"`
		Email string `json:"email" binding:"required,email"`
		Cargo string `json:"cargo" binding:"required"`
		Senha string `json:"senha" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, msgDadosInvalidos)
		return
	}

	taken, err := fc.emailTaken(req.Email, 0)
	if err != nil {
		internalError(c, "check funcionario email", err)
		return
	}
	if taken {
		utils.RespondError(c, http.StatusBadRequest, "Email já cadastrado")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		internalError(c, "hash senha", err)
		return
	}

	funcionario := models.Funcionario{
		Nome:      req.Nome,
		Email:     req.Email,
		Cargo:     req.Cargo,
		SenhaHash: string(hashed),
	}
	if err := fc.DB.Create(&funcionario).Error; err != nil {
		internalError(c, "create funcionario", err)
		return
	}

	utils.InfoLogger.Printf("Funcionario %d created (cargo=%s)", funcionario.ID, funcionario.Cargo)
	utils.RespondJSON(c, http.StatusCreated, funcionario)
}

// Login answers {mensagem, token, funcionario} or 401 with a fixed message,
// never revealing which of e-mail or password was wrong.
func (fc *FuncionarioController) Login(c *gin.Context) {
	var creds apiclient.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil || creds.Email == "" || creds.Senha == "" {
		utils.RespondError(c, http.StatusBadRequest, msgDadosInvalidos)
		return
	}

	var funcionario models.Funcionario
	if err := fc.DB.Where("email = ?", strings.TrimSpace(creds.Email)).First(&funcionario).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Credenciais inválidas")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(funcionario.SenhaHash), []byte(creds.Senha)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Credenciais inválidas")
		return
	}

	token, err := fc.Tokens.GenerateToken(funcionario.ID, funcionario.Cargo)
	if err != nil {
		internalError(c, "generate token", err)
		return
	}

	utils.InfoLogger.Printf("Login successful for funcionario %d", funcionario.ID)
	utils.RespondJSON(c, http.StatusOK, apiclient.LoginResponse{
		Mensagem:    "Login realizado com sucesso",
		Token:       token,
		Funcionario: funcionario,
	})
}

// Update changes the password only when a non-empty senha is sent.
func (fc *FuncionarioController) Update(c *gin.Context) {
	id, ok := paramID(c, "Funcionário não encontrado")
	if !ok {
		return
	}

	var funcionario models.Funcionario
	if err := fc.DB.First(&funcionario, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Funcionário não encontrado")
			return
		}
		internalError(c, "find funcionario", err)
		return
	}

	var req struct {
		Nome  *string `json:"nome"`
		Email *string `json:"email"`
		Cargo *string `json:"cargo"`
		Senha string  `json:"senha"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, msgDadosInvalidos)
		return
	}

	if req.Email != nil && *req.Email != funcionario.Email {
		taken, err := fc.emailTaken(*req.Email, funcionario.ID)
		if err != nil {
			internalError(c, "check funcionario email", err)
			return
		}
		if taken {
			utils.RespondError(c, http.StatusBadRequest, "Email já cadastrado")
			return
		}
		funcionario.Email = *req.Email
	}
	if req.Nome != nil {
		funcionario.Nome = *req.Nome
	}
	if req.Cargo != nil {
		funcionario.Cargo = *req.Cargo
	}
	if req.Senha != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
		if err != nil {
			internalError(c, "hash senha", err)
			return
		}
		funcionario.SenhaHash = string(hashed)
	}

	if err := fc.DB.Save(&funcionario).Error; err != nil {
		internalError(c, "update funcionario", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, funcionario)
}

// Delete refuses to remove the principal administrator.
func (fc *FuncionarioController) Delete(c *gin.Context) {
	id, ok := paramID(c, "Funcionário não encontrado")
	if !ok {
		return
	}

	var funcionario models.Funcionario
	if err := fc.DB.First(&funcionario, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Funcionário não encontrado")
			return
		}
		internalError(c, "find funcionario", err)
		return
	}

	if strings.EqualFold(funcionario.Email, fc.AdminEmail) {
		utils.RespondError(c, http.StatusForbidden, "Não é possível excluir o administrador principal.")
		return
	}

	if err := fc.DB.Delete(&funcionario).Error; err != nil {
		internalError(c, "delete funcionario", err)
		return
	}
	utils.RespondMessage(c, http.StatusOK, "Funcionário "+strconv.Itoa(id)+" excluído com sucesso")
}
