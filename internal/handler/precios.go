package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetPrecios godoc
// @Summary      Grain price board
// @Description  Returns the pizarra entries, optionally filtered by product name substring
// @Tags         precios
// @Produce      json
// @Param        producto  path  string  false  "Product filter (case-insensitive substring)"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /precios/{producto} [get]
// @Security     BearerAuth
func (h *Handler) GetPrecios(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-precios")
	defer span.End()

	producto := c.Param("producto")
	span.SetAttributes(attribute.String("producto", producto))

	board, err := h.boards.GetBoard(ctx, producto)
	if err != nil {
		respondUpstreamError(c, "Error al obtener precios de pizarra", err)
		return
	}

	resp := gin.H{
		"success":             true,
		"fecha_actualizacion": board.Fecha,
		"hora_actualizacion":  board.Hora,
		"data":                board.Entradas,
		"total":               len(board.Entradas),
	}
	if producto != "" {
		resp["producto_filtro"] = producto
	}
	c.JSON(http.StatusOK, resp)
}
