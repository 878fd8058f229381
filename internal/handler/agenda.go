package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/JavierVixer/OCCHIAPP/internal/apierror"
	"github.com/JavierVixer/OCCHIAPP/internal/dto"
	"github.com/JavierVixer/OCCHIAPP/internal/service"

	"github.com/gin-gonic/gin"
)

type AgendaHandler struct{ svc service.AgendaService }

func NewAgendaHandler(svc service.AgendaService) *AgendaHandler {
	return &AgendaHandler{svc: svc}
}

func (h *AgendaHandler) Crear(c *gin.Context) {
	var req dto.CrearCitaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cita, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, cita)
}

func (h *AgendaHandler) Listar(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Listar(c.Request.Context()))
}

func (h *AgendaHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarCitaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cita, err := h.svc.Actualizar(c.Request.Context(), c.Param("idCita"), req)
	if err != nil {
		if errors.Is(err, service.ErrCitaNoEncontrada) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al actualizar cita"))
		return
	}
	c.JSON(http.StatusOK, cita)
}

func (h *AgendaHandler) Eliminar(c *gin.Context) {
	if err := h.svc.Eliminar(c.Request.Context(), c.Param("idCita")); err != nil {
		if errors.Is(err, service.ErrCitaNoEncontrada) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al eliminar cita"))
		return
	}
	c.Status(http.StatusNoContent)
}

// Proximas lists the next upcoming appointments, default 5.
func (h *AgendaHandler) Proximas(c *gin.Context) {
	n := 5
	if raw := c.Query("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, apierror.New("Parametro n invalido"))
			return
		}
		n = parsed
	}
	c.JSON(http.StatusOK, h.svc.ProximasN(c.Request.Context(), n))
}

// DelDia lists appointments on one local date (YYYY-MM-DD).
func (h *AgendaHandler) DelDia(c *gin.Context) {
	citas, err := h.svc.DelDia(c.Request.Context(), c.Param("fecha"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Fecha invalida, use YYYY-MM-DD"))
		return
	}
	c.JSON(http.StatusOK, citas)
}

// ConteoMes returns per-day appointment counts for the calendar view.
func (h *AgendaHandler) ConteoMes(c *gin.Context) {
	anio, errA := strconv.Atoi(c.Param("anio"))
	mes, errM := strconv.Atoi(c.Param("mes"))
	if errA != nil || errM != nil || mes < 1 || mes > 12 {
		c.JSON(http.StatusBadRequest, apierror.New("Anio o mes invalido"))
		return
	}
	c.JSON(http.StatusOK, h.svc.ConteoPorDia(c.Request.Context(), anio, mes))
}
