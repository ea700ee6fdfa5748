package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetWeather godoc
// @Summary      Weather report
// @Description  Returns reshaped OpenWeather conditions and forecast for the given or default coordinates
// @Tags         clima
// @Produce      json
// @Param        lat  query  string  false  "Latitude"
// @Param        lon  query  string  false  "Longitude"
// @Success      200  {object}  domain.WeatherReport
// @Failure      500  {object}  map[string]interface{}
// @Router       /weather [get]
func (h *Handler) GetWeather(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-weather")
	defer span.End()

	lat := c.DefaultQuery("lat", h.defaultLat)
	lon := c.DefaultQuery("lon", h.defaultLon)
	span.SetAttributes(attribute.String("lat", lat), attribute.String("lon", lon))

	report, err := h.weather.GetWeather(ctx, lat, lon)
	if err != nil {
		respondUpstreamError(c, "Error al obtener datos del clima", err)
		return
	}

	c.JSON(http.StatusOK, report)
}
