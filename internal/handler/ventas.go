package handler

import (
	"net/http"

	"github.com/granaceros-POS/POS-Banckend/internal/dto"
	"github.com/granaceros-POS/POS-Banckend/internal/service"

	"github.com/gin-gonic/gin"
)

type VentasHandler struct{ svc service.VentaService }

func NewVentasHandler(svc service.VentaService) *VentasHandler { return &VentasHandler{svc: svc} }

// Configuracion devuelve la configuración del tipo de venta: descripción,
// rótulo de factura y lista de precios.
func (h *VentasHandler) Configuracion(c *gin.Context) {
	var req dto.ConfigVentaRequest
	if !bindQueryAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Configuracion(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
