package utils

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "reserva-dashboard"

var (
	ErrInvalidToken  = errors.New("token inválido ou expirado")
	ErrMissingSecret = errors.New("JWT secret não configurado")
)

type CustomClaims struct {
	FuncionarioID int    `json:"funcionario_id"`
	Cargo         string `json:"cargo"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies the API's access tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

func (ti *TokenIssuer) GenerateToken(funcionarioID int, cargo string) (string, error) {
	if len(ti.secret) == 0 {
		return "", ErrMissingSecret
	}

	now := time.Now()
	claims := &CustomClaims{
		FuncionarioID: funcionarioID,
		Cargo:         cargo,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(funcionarioID),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ti.secret)
}

func (ti *TokenIssuer) ParseToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return ti.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(tokenIssuer))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || claims.FuncionarioID == 0 {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
