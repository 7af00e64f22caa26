package handler

import (
	"net/http"

	"github.com/granaceros-POS/POS-Banckend/internal/dto"
	"github.com/granaceros-POS/POS-Banckend/internal/service"

	"github.com/gin-gonic/gin"
)

type TransaccionesHandler struct{ svc service.TransaccionService }

func NewTransaccionesHandler(svc service.TransaccionService) *TransaccionesHandler {
	return &TransaccionesHandler{svc: svc}
}

// RegistrarLinea inserta una línea del libro en la tabla vigente y en la
// histórica, atómicamente.
func (h *TransaccionesHandler) RegistrarLinea(c *gin.Context) {
	var req dto.LineaTransaccionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarLinea(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
