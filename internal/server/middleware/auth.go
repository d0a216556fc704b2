// Package middleware provides HTTP middleware for service-token
// authentication. Tokens attribute operator decisions; end-user
// authentication belongs to the surrounding application.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// operatorKey is the context key for storing the verified operator identity.
const operatorKey ContextKey = "operator"

// TokenValidator is an interface for validating service tokens. This allows
// the middleware to work with any token service implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (OperatorGetter, error)
}

// OperatorGetter is an interface for extracting the operator identity from
// token claims.
type OperatorGetter interface {
	GetOperator() string
}

// Auth creates middleware that validates a Bearer service token and adds the
// operator identity to the request context.
func Auth(tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			// "Bearer" prefix, case-insensitive
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimSpace(parts[1])
			if tokenString == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), operatorKey, claims.GetOperator())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetOperator extracts the verified operator identity from the request
// context.
func GetOperator(r *http.Request) (string, error) {
	operator, ok := r.Context().Value(operatorKey).(string)
	if !ok || operator == "" {
		return "", fmt.Errorf("operator not found in request context")
	}
	return operator, nil
}

// OperatorKey returns the context key for the operator identity (for testing
// purposes).
func OperatorKey() ContextKey {
	return operatorKey
}
