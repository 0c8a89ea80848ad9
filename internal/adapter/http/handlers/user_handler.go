package handlers

import (
	"errors"
	"net/http"

	"tractus/internal/adapter/http/dto/request"
	"tractus/internal/adapter/http/dto/response"
	"tractus/internal/domain/entities"
	"tractus/internal/usecase"
	"tractus/pkg"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the ADMIN-only user management routes.
type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req request.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "user", invalidRequest(err))
		return
	}
	u, err := h.usecase.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		respondError(c, "user", mapUserError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromUser(u))
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, "user", mapUserError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(users))
}

func (h *UserHandler) GetByID(c *gin.Context) {
	u, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "user", mapUserError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(u))
}

func (h *UserHandler) Update(c *gin.Context) {
	var req request.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "user", invalidRequest(err))
		return
	}
	u, err := h.usecase.Update(c.Request.Context(), c.Param("id"), req.ToCommand())
	if err != nil {
		respondError(c, "user", mapUserError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(u))
}

// Delete deactivates the user; rows are kept for authorship history.
func (h *UserHandler) Delete(c *gin.Context) {
	u, err := h.usecase.Deactivate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "user", mapUserError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(u))
}

type VendedorHandler struct {
	usecase usecase.IVendedorUseCase
}

func NewVendedorHandler(uc usecase.IVendedorUseCase) *VendedorHandler {
	return &VendedorHandler{usecase: uc}
}

func (h *VendedorHandler) List(c *gin.Context) {
	vendedores, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, "vendedor", mapUserError(err))
		return
	}
	if vendedores == nil {
		vendedores = []entities.Vendedor{}
	}
	c.JSON(http.StatusOK, vendedores)
}

func (h *VendedorHandler) GetByID(c *gin.Context) {
	v, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "vendedor", mapUserError(err))
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *VendedorHandler) Update(c *gin.Context) {
	var req request.UpdateVendedorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "vendedor", invalidRequest(err))
		return
	}
	v, err := h.usecase.Update(c.Request.Context(), c.Param("id"), req.ToCommand())
	if err != nil {
		respondError(c, "vendedor", mapUserError(err))
		return
	}
	c.JSON(http.StatusOK, v)
}

func mapUserError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserEmailTaken):
		return pkg.NewDomainErrorSimple("EMAIL_TAKEN", "E-mail already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidUserNome),
		errors.Is(err, usecase.ErrInvalidUserEmail),
		errors.Is(err, usecase.ErrInvalidUserSenha),
		errors.Is(err, usecase.ErrInvalidUserRole),
		errors.Is(err, usecase.ErrInvalidVendedorMeta):
		return pkg.NewDomainError("INVALID_USER_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRoleChangeNotAllowed):
		return pkg.NewDomainErrorSimple("ROLE_CHANGE_NOT_ALLOWED", "Role change to or from VENDEDOR is not allowed", http.StatusBadRequest)
	default:
		return mapCommonError(err)
	}
}
