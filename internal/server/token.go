package server

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/config"
	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/server/middleware"
)

// Claims represents service-token claims. The registered Subject carries the
// operator identity decisions are attributed to.
type Claims struct {
	jwt.RegisteredClaims
}

// GetOperator returns the operator identity from the claims. This implements
// the middleware.OperatorGetter interface.
func (c *Claims) GetOperator() string {
	return c.Subject
}

// TokenService provides service-token generation and validation.
type TokenService struct {
	config *config.TokenConfig
}

// NewTokenService creates a new token service with the given configuration.
func NewTokenService(cfg *config.TokenConfig) *TokenService {
	return &TokenService{config: cfg}
}

// AsTokenValidator returns a TokenValidator adapter for this TokenService,
// so it can be used with the middleware package without import cycles.
func (s *TokenService) AsTokenValidator() middleware.TokenValidator {
	return &tokenServiceValidator{service: s}
}

type tokenServiceValidator struct {
	service *TokenService
}

func (v *tokenServiceValidator) ValidateToken(tokenString string) (middleware.OperatorGetter, error) {
	claims, err := v.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// GenerateToken generates a service token for the given operator identity.
func (s *TokenService) GenerateToken(operator string) (string, error) {
	if operator == "" {
		return "", fmt.Errorf("operator is empty")
	}

	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   operator,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.config.ExpirationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken validates a service token and returns its claims.
func (s *TokenService) ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token string is empty")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token carries no operator subject")
	}

	return claims, nil
}
