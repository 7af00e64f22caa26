package handler

import (
	"net/http"

	"github.com/granaceros-POS/POS-Banckend/internal/dto"
	"github.com/granaceros-POS/POS-Banckend/internal/service"

	"github.com/gin-gonic/gin"
)

type CajaHandler struct {
	svc            service.CajaService
	almacenDefault int
}

func NewCajaHandler(svc service.CajaService, almacenDefault int) *CajaHandler {
	return &CajaHandler{svc: svc, almacenDefault: almacenDefault}
}

// VerificarApertura comprueba que la caja tenga sesión abierta y cajero
// asignado antes de permitir ventas.
func (h *CajaHandler) VerificarApertura(c *gin.Context) {
	var req dto.AperturaRequest
	if !bindQueryAndValidate(c, &req) {
		return
	}
	if req.AlmacenID == 0 {
		req.AlmacenID = h.almacenDefault
	}
	resp, err := h.svc.VerificarApertura(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
