package handlers

import (
	"errors"
	"net/http"

	"tractus/internal/adapter/http/dto/request"
	"tractus/internal/adapter/http/dto/response"
	"tractus/internal/adapter/http/middleware"
	"tractus/internal/usecase"
	"tractus/pkg"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login godoc
// @Summary Exchanges e-mail and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body request.LoginRequest true "credentials"
// @Success 200 {object} response.LoginResponse
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "auth", invalidRequest(err))
		return
	}

	res, err := h.usecase.Login(c.Request.Context(), req.Email, req.Senha)
	if err != nil {
		respondError(c, "auth", mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLogin(res))
}

// Me godoc
// @Summary Returns the authenticated user
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 200 {object} response.UserResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.usecase.Me(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, "auth", mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(u))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid e-mail or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUserNotFound), errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	default:
		return mapCommonError(err)
	}
}
