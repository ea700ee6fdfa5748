package handler

import (
	"errors"
	"log"
	"net/http"

	"agroapi/internal/domain"

	"github.com/gin-gonic/gin"
)

// GetTasaActiva godoc
// @Summary      BNA lending rate announcement
// @Description  Returns the effective date and annual nominal rate; 404 when the page no longer carries them
// @Tags         tasas
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /tasaactivabna [get]
// @Security     BearerAuth
func (h *Handler) GetTasaActiva(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-tasa-activa")
	defer span.End()

	rate, err := h.exchange.GetLendingRate(ctx)
	var extractErr *domain.ExtractionError
	if errors.As(err, &extractErr) {
		// Single-record source: a missing required fragment is not found,
		// not a server error.
		log.Printf("tasa activa extraction failed: %v", err)
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Tasa activa no encontrada",
			"message": err.Error(),
		})
		return
	}
	if err != nil {
		respondUpstreamError(c, "Error al obtener la tasa activa", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"fecha_vigencia":     rate.FechaVigencia,
		"tasa_nominal_anual": rate.TasaNominalAnual,
		"fecha_consulta":     fechaConsulta(),
	})
}
