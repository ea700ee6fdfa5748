package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetPreciosInternacionales godoc
// @Summary      International grain futures
// @Description  Returns the first-seen futures quote per tracked product from the rendered page
// @Tags         precios
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /preciosinternacionales [get]
// @Security     BearerAuth
func (h *Handler) GetPreciosInternacionales(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-precios-internacionales")
	defer span.End()

	snap, err := h.futures.GetSnapshot(ctx)
	if err != nil {
		respondUpstreamError(c, "Error al obtener precios internacionales", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"fecha_consulta": fechaConsulta(),
		"precios": gin.H{
			"soja":    snap.Soja,
			"maiz":    snap.Maiz,
			"trigo":   snap.Trigo,
			"girasol": snap.Girasol,
		},
		"detalles": snap.Detalles,
	})
}
