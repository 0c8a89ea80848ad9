package handlers

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"

	"tractus/internal/adapter/http/middleware"
	"tractus/internal/domain/entities"
	"tractus/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

type staticParser struct{ claims auth.Claims }

func (p staticParser) Parse(string) (auth.Claims, error) { return p.claims, nil }

// authenticated puts userID/role in the context the way the Auth middleware does.
func authenticated(userID string, role entities.Role) gin.HandlerFunc {
	return middleware.Auth(staticParser{claims: auth.Claims{
		Role:             role,
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID},
	}})
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer test")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
