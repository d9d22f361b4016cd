package utils

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error body every API endpoint answers with.
// Clients show Erro verbatim.
type ErrorResponse struct {
	Erro string `json:"erro"`
}

type MessageResponse struct {
	Mensagem string `json:"mensagem"`
}

func RespondJSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

func RespondMessage(c *gin.Context, code int, message string) {
	c.JSON(code, MessageResponse{Mensagem: message})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Erro: message})
}
