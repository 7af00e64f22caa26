package handler

import (
	"net/http"

	"github.com/granaceros-POS/POS-Banckend/internal/dto"
	"github.com/granaceros-POS/POS-Banckend/internal/service"

	"github.com/gin-gonic/gin"
)

type InventarioHandler struct {
	desglose   service.DesgloseService
	inventario service.InventarioService
	// almacenDefault aplica cuando la solicitud no trae almacen_id.
	almacenDefault int
}

func NewInventarioHandler(desglose service.DesgloseService, inventario service.InventarioService, almacenDefault int) *InventarioHandler {
	return &InventarioHandler{desglose: desglose, inventario: inventario, almacenDefault: almacenDefault}
}

// Desglose procesa la venta de una receta: explota la fórmula recursivamente,
// descuenta cada ingrediente del inventario y devuelve los tres costos
// acumulados. Todo o nada: cualquier falla revierte la transacción completa.
func (h *InventarioHandler) Desglose(c *gin.Context) {
	var req dto.DesgloseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if req.AlmacenID == 0 {
		req.AlmacenID = h.almacenDefault
	}
	resp, err := h.desglose.DesglosarVenta(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Movimiento aplica un ajuste manual de inventario bajo su propia transacción
// (entradas por compra, salidas por merma, etc.).
func (h *InventarioHandler) Movimiento(c *gin.Context) {
	var req dto.MovimientoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if req.AlmacenID == 0 {
		req.AlmacenID = h.almacenDefault
	}
	resp, err := h.inventario.AplicarMovimiento(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
