package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/abababa124444-cmd/arab-chat1/internal/model"
)

const tokenTTL = 24 * time.Hour

type Generator struct {
	secret []byte
}

func New(secret string) *Generator {
	return &Generator{
		secret: []byte(secret),
	}
}

// GenerateIdentityToken issues a token for user. Production tokens come from the identity
// service; this is used by tooling and tests sharing the same secret.
func (g *Generator) GenerateIdentityToken(user model.User) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(tokenTTL)

	claims := model.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID:   user.ID,
		Username: user.Username,
		Name:     user.DisplayName,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(g.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign identity JWT token: %w", err)
	}

	return tokenString, expiresAt.Unix(), nil
}

func (g *Generator) ValidateIdentityToken(tokenString string) (*model.IdentityClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.IdentityClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return g.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse identity JWT token: %w", err)
	}

	claims, ok := token.Claims.(*model.IdentityClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid identity JWT token")
	}

	if claims.UserID <= 0 || claims.Username == "" {
		return nil, fmt.Errorf("identity JWT token lacks uid or username")
	}

	return claims, nil
}
