package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tipos de token emitidos por la aplicación.
const (
	TokenAccess  = "access"
	TokenRefresh = "refresh"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Role permite que el middleware RBAC decida sin consultar la DB; TokenType
// distingue access de refresh para que uno no sirva en lugar del otro.
type Claims struct {
	jwt.RegisteredClaims
	UserID    int64  `json:"user_id"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"` // "access" | "refresh"
}

// Generate genera un token JWT firmado con userID, role y tipo de token.
func Generate(secret string, userID int64, role, tokenType, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:    userID,
		Role:      role,
		TokenType: tokenType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve sus claims.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}

// ParseAccess valida el token y exige que sea de tipo access.
func ParseAccess(secret, tokenString string) (*Claims, error) {
	claims, err := Parse(secret, tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenAccess {
		return nil, fmt.Errorf("se requiere un access token")
	}
	return claims, nil
}

// ParseRefresh valida el token y exige que sea de tipo refresh.
func ParseRefresh(secret, tokenString string) (*Claims, error) {
	claims, err := Parse(secret, tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenRefresh {
		return nil, fmt.Errorf("se requiere un refresh token")
	}
	return claims, nil
}
