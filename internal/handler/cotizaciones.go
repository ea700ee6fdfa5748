package handler

import (
	"errors"
	"net/http"

	"agroapi/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetCotizacionesBNA godoc
// @Summary      BNA exchange quotes
// @Description  Returns both the cash-notes and wire-transfer quote tables from one fetch
// @Tags         cotizaciones
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /cotizacionesbna [get]
// @Security     BearerAuth
func (h *Handler) GetCotizacionesBNA(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-cotizaciones-bna")
	defer span.End()

	board, err := h.exchange.GetBoard(ctx)
	if err != nil {
		respondUpstreamError(c, "Error al obtener cotizaciones BNA", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":             true,
		"fecha_actualizacion": board.Billetes.Fecha,
		"hora_actualizacion":  board.Billetes.Hora,
		"billetes":            board.Billetes.Cotizaciones,
		"divisas":             board.Divisas.Cotizaciones,
		"total_billetes":      len(board.Billetes.Cotizaciones),
		"total_divisas":       len(board.Divisas.Cotizaciones),
	})
}

// GetBilletes godoc
// @Summary      Cash-notes quotes
// @Tags         cotizaciones
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /billetes [get]
// @Security     BearerAuth
func (h *Handler) GetBilletes(c *gin.Context) {
	h.getSection(c, domain.CategoryBilletes)
}

// GetDivisas godoc
// @Summary      Wire-transfer quotes
// @Tags         cotizaciones
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /divisas [get]
// @Security     BearerAuth
func (h *Handler) GetDivisas(c *gin.Context) {
	h.getSection(c, domain.CategoryDivisas)
}

func (h *Handler) getSection(c *gin.Context, category domain.QuoteCategory) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-section")
	defer span.End()
	span.SetAttributes(attribute.String("category", string(category)))

	section, err := h.exchange.GetSection(ctx, category)
	if err != nil {
		respondUpstreamError(c, "Error al obtener cotizaciones BNA", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":             true,
		"fecha_actualizacion": section.Fecha,
		"hora_actualizacion":  section.Hora,
		"data":                section.Cotizaciones,
		"total":               len(section.Cotizaciones),
	})
}

// GetBilleteByMoneda godoc
// @Summary      Find one cash-notes quote by currency
// @Tags         cotizaciones
// @Produce      json
// @Param        moneda  path  string  true  "Currency filter (case-insensitive substring)"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /billetes/{moneda} [get]
// @Security     BearerAuth
func (h *Handler) GetBilleteByMoneda(c *gin.Context) {
	h.findCurrency(c, domain.CategoryBilletes, "Billete no encontrado")
}

// GetDivisaByMoneda godoc
// @Summary      Find one wire-transfer quote by currency
// @Tags         cotizaciones
// @Produce      json
// @Param        moneda  path  string  true  "Currency filter (case-insensitive substring)"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /divisas/{moneda} [get]
// @Security     BearerAuth
func (h *Handler) GetDivisaByMoneda(c *gin.Context) {
	h.findCurrency(c, domain.CategoryDivisas, "Divisa no encontrada")
}

func (h *Handler) findCurrency(c *gin.Context, category domain.QuoteCategory, notFound string) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.find-currency")
	defer span.End()

	moneda := c.Param("moneda")
	span.SetAttributes(
		attribute.String("category", string(category)),
		attribute.String("moneda", moneda),
	)

	quote, section, err := h.exchange.FindCurrency(ctx, category, moneda)
	if errors.Is(err, domain.ErrNoMatch) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   notFound,
			"message": "sin coincidencias para " + moneda,
		})
		return
	}
	if err != nil {
		respondUpstreamError(c, "Error al obtener cotizaciones BNA", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":             true,
		"fecha_actualizacion": section.Fecha,
		"hora_actualizacion":  section.Hora,
		"moneda_filtro":       moneda,
		"data":                quote,
	})
}
