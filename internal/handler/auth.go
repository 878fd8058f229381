package handler

import (
	"errors"
	"net/http"

	"github.com/JavierVixer/OCCHIAPP/internal/apierror"
	"github.com/JavierVixer/OCCHIAPP/internal/dto"
	"github.com/JavierVixer/OCCHIAPP/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrCorreoRegistrado) {
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al registrar usuario"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrCredencialesInvalidas) {
			c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al iniciar sesion"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.svc.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al cerrar sesion"))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Sesion(c *gin.Context) {
	ses, err := h.svc.Sesion(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrSinSesion) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al consultar sesion"))
		return
	}
	c.JSON(http.StatusOK, ses)
}
