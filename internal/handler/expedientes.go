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

// ExpedientesHandler exposes the patient-record endpoints: CRUD over the
// record itself, the positional consulta sub-resource, financial
// movements, and the composed display view.
type ExpedientesHandler struct {
	svc    service.ExpedienteService
	vistas service.VistaService
	agenda service.AgendaService
}

func NewExpedientesHandler(svc service.ExpedienteService, vistas service.VistaService, agenda service.AgendaService) *ExpedientesHandler {
	return &ExpedientesHandler{svc: svc, vistas: vistas, agenda: agenda}
}

func (h *ExpedientesHandler) Crear(c *gin.Context) {
	var req dto.PacienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al crear expediente"))
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ExpedientesHandler) Listar(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Listar(c.Request.Context()))
}

func (h *ExpedientesHandler) Obtener(c *gin.Context) {
	p, err := h.svc.Obtener(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ExpedientesHandler) Actualizar(c *gin.Context) {
	var req dto.PacienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ExpedientesHandler) Eliminar(c *gin.Context) {
	if err := h.svc.Eliminar(c.Request.Context(), c.Param("id")); err != nil {
		h.responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Vista returns the composed record sheet, ready for display.
func (h *ExpedientesHandler) Vista(c *gin.Context) {
	v, err := h.vistas.Componer(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// ProximaCita resolves the next appointment for one patient, agenda
// first, embedded legacy citas as fallback. 204 when there is none.
func (h *ExpedientesHandler) ProximaCita(c *gin.Context) {
	p, err := h.svc.Obtener(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.responderError(c, err)
		return
	}
	pc := h.agenda.ProximaCita(c.Request.Context(), p)
	if pc == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, pc)
}

func (h *ExpedientesHandler) AgregarConsulta(c *gin.Context) {
	var req dto.ConsultaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	idx, err := h.svc.AgregarConsulta(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"indice": idx})
}

func (h *ExpedientesHandler) ActualizarConsulta(c *gin.Context) {
	idx, ok := h.indiceConsulta(c)
	if !ok {
		return
	}
	var req dto.ConsultaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.ActualizarConsulta(c.Request.Context(), c.Param("id"), idx, req); err != nil {
		h.responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ExpedientesHandler) EliminarConsulta(c *gin.Context) {
	idx, ok := h.indiceConsulta(c)
	if !ok {
		return
	}
	if err := h.svc.EliminarConsulta(c.Request.Context(), c.Param("id"), idx); err != nil {
		h.responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ExpedientesHandler) AgregarMovimiento(c *gin.Context) {
	var req dto.MovimientoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.AgregarMovimiento(c.Request.Context(), c.Param("id"), req); err != nil {
		h.responderError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h *ExpedientesHandler) indiceConsulta(c *gin.Context) (int, bool) {
	idx, err := strconv.Atoi(c.Param("idx"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Indice de consulta invalido"))
		return 0, false
	}
	return idx, true
}

func (h *ExpedientesHandler) responderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPacienteNoEncontrado), errors.Is(err, service.ErrConsultaNoEncontrada):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno"))
	}
}
