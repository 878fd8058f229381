package handler

import (
	"errors"
	"net/http"

	"github.com/JavierVixer/OCCHIAPP/internal/apierror"
	"github.com/JavierVixer/OCCHIAPP/internal/dto"
	"github.com/JavierVixer/OCCHIAPP/internal/service"

	"github.com/gin-gonic/gin"
)

type InventarioHandler struct{ svc service.InventarioService }

func NewInventarioHandler(svc service.InventarioService) *InventarioHandler {
	return &InventarioHandler{svc: svc}
}

func (h *InventarioHandler) Crear(c *gin.Context) {
	var req dto.ProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al registrar producto"))
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *InventarioHandler) Listar(c *gin.Context) {
	var filter dto.ProductoFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	c.JSON(http.StatusOK, h.svc.Listar(c.Request.Context(), filter))
}

func (h *InventarioHandler) Obtener(c *gin.Context) {
	p, err := h.svc.Obtener(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *InventarioHandler) Actualizar(c *gin.Context) {
	var req dto.ProductoRequest
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

func (h *InventarioHandler) Eliminar(c *gin.Context) {
	if err := h.svc.Eliminar(c.Request.Context(), c.Param("id")); err != nil {
		h.responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportarPDF streams the inventory catalog, one barcode per item.
func (h *InventarioHandler) ExportarPDF(c *gin.Context) {
	out, err := h.svc.ExportarPDF(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar PDF"))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="inventario.pdf"`)
	c.Data(http.StatusOK, "application/pdf", out)
}

func (h *InventarioHandler) responderError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrProductoNoEncontrado) {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusInternalServerError, apierror.New("Error interno"))
}
