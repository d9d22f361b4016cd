package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reserva-dashboard/services"
	"github.com/yeremiapane/reserva-dashboard/utils"
)

// SessionGuard lets a dashboard page render only when a session token is
// stored. The token is not validated here; the API rejects bad ones.
func SessionGuard(cookieSecure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !services.Authenticated(services.NewCookieStorage(c, cookieSecure)) {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// BearerAuth verifies the API's access tokens and stores the caller's
// identity on the context.
func BearerAuth(issuer *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Token não fornecido")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := issuer.ParseToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Token inválido ou expirado")
			c.Abort()
			return
		}

		c.Set("funcionarioID", claims.FuncionarioID)
		c.Set("cargo", claims.Cargo)
		c.Next()
	}
}
