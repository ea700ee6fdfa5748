package handler

import (
	"log"
	"net/http"
	"time"

	"agroapi/internal/scrape"
	"agroapi/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

type Handler struct {
	tracer   trace.Tracer
	boards   *service.BoardService
	exchange *service.ExchangeService
	futures  *service.FuturesService
	weather  *service.WeatherService

	defaultLat string
	defaultLon string
}

func New(
	tracer trace.Tracer,
	boards *service.BoardService,
	exchange *service.ExchangeService,
	futures *service.FuturesService,
	weather *service.WeatherService,
	defaultLat, defaultLon string,
) *Handler {
	return &Handler{
		tracer:     tracer,
		boards:     boards,
		exchange:   exchange,
		futures:    futures,
		weather:    weather,
		defaultLat: defaultLat,
		defaultLon: defaultLon,
	}
}

// RegisterRoutes wires the HTTP surface. Only the root greeting and /weather
// stay outside the bearer gate; /health and swagger are operational.
func (h *Handler) RegisterRoutes(r *gin.Engine, apiToken string) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.GET("/weather", h.GetWeather)

	protected := r.Group("/", BearerAuth(apiToken))
	protected.GET("/precios", h.GetPrecios)
	protected.GET("/precios/:producto", h.GetPrecios)
	protected.GET("/cotizacionesbna", h.GetCotizacionesBNA)
	protected.GET("/billetes", h.GetBilletes)
	protected.GET("/billetes/:moneda", h.GetBilleteByMoneda)
	protected.GET("/divisas", h.GetDivisas)
	protected.GET("/divisas/:moneda", h.GetDivisaByMoneda)
	protected.GET("/tasaactivabna", h.GetTasaActiva)
	protected.GET("/preciosinternacionales", h.GetPreciosInternacionales)
}

// Root godoc
// @Summary      Service greeting
// @Description  Returns service name and available endpoints
// @Tags         meta
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       / [get]
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "API de precios agropecuarios y cotizaciones",
		"endpoints": []string{
			"/precios", "/precios/:producto",
			"/cotizacionesbna", "/billetes", "/divisas",
			"/billetes/:moneda", "/divisas/:moneda",
			"/tasaactivabna", "/preciosinternacionales", "/weather",
		},
	})
}

// Health godoc
// @Summary      Health check
// @Description  Returns the health status of the service
// @Tags         meta
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// respondUpstreamError converts any uncaught adapter, extractor or
// normalizer failure into the uniform 500 envelope, logging the cause
// server-side.
func respondUpstreamError(c *gin.Context, label string, err error) {
	log.Printf("%s: %v", label, err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   label,
		"message": err.Error(),
	})
}

func fechaConsulta() string {
	return scrape.BuenosAiresTime(time.Now()).Format("02/01/2006 15:04")
}
