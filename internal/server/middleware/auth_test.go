package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClaims struct {
	operator string
}

func (c *stubClaims) GetOperator() string { return c.operator }

type stubValidator struct {
	operator string
	err      error
}

func (v *stubValidator) ValidateToken(token string) (OperatorGetter, error) {
	if v.err != nil {
		return nil, v.err
	}
	return &stubClaims{operator: v.operator}, nil
}

func callAuth(t *testing.T, validator TokenValidator, authHeader string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var gotOperator string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotOperator, _ = GetOperator(r)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/validations/x/decision", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	Auth(validator)(next).ServeHTTP(rec, req)
	return rec, gotOperator
}

func TestAuth_ValidToken(t *testing.T) {
	rec, operator := callAuth(t, &stubValidator{operator: "recruiter-7"}, "Bearer good-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "recruiter-7", operator)
}

func TestAuth_CaseInsensitiveBearer(t *testing.T) {
	rec, operator := callAuth(t, &stubValidator{operator: "recruiter-7"}, "bearer good-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "recruiter-7", operator)
}

func TestAuth_MissingHeader(t *testing.T) {
	rec, _ := callAuth(t, &stubValidator{operator: "recruiter-7"}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	for _, header := range []string{"good-token", "Basic abc", "Bearer a b"} {
		rec, _ := callAuth(t, &stubValidator{operator: "recruiter-7"}, header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	rec, _ := callAuth(t, &stubValidator{err: fmt.Errorf("expired")}, "Bearer stale")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetOperator_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := GetOperator(req)
	require.Error(t, err)
}
