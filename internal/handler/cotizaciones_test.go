package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"agroapi/internal/domain"
)

func sampleExchangeBoard() *domain.ExchangeBoard {
	return &domain.ExchangeBoard{
		Billetes: domain.QuoteSection{
			Fecha: "15/02/2024",
			Hora:  "13:00",
			Cotizaciones: []domain.CurrencyQuote{
				{Moneda: "Dolar U.S.A", Compra: 850, Venta: 890, CompraTexto: "850,00", VentaTexto: "890,00"},
				{Moneda: "Euro", Compra: 910, Venta: 960, CompraTexto: "910,00", VentaTexto: "960,00"},
			},
		},
		Divisas: domain.QuoteSection{
			Fecha: "15/02/2024",
			Hora:  "13:05",
			Cotizaciones: []domain.CurrencyQuote{
				{Moneda: "Dolar U.S.A", Compra: 840.5, Venta: 842.5, CompraTexto: "840,50", VentaTexto: "842,50"},
			},
		},
	}
}

func TestGetCotizacionesBNA(t *testing.T) {
	r := newTestRouter(t, handlerStubs{exchange: stubExchange{board: sampleExchangeBoard()}}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cotizacionesbna", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)

	if body["total_billetes"] != float64(2) {
		t.Errorf("expected total_billetes 2, got %v", body["total_billetes"])
	}
	if body["total_divisas"] != float64(1) {
		t.Errorf("expected total_divisas 1, got %v", body["total_divisas"])
	}
	if body["hora_actualizacion"] != "13:00" {
		t.Errorf("header time must come from the billetes section, got %v", body["hora_actualizacion"])
	}
}

func TestGetBilletes(t *testing.T) {
	r := newTestRouter(t, handlerStubs{exchange: stubExchange{board: sampleExchangeBoard()}}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/billetes", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["total"] != float64(2) {
		t.Errorf("expected total 2, got %v", body["total"])
	}
	data := body["data"].([]interface{})
	quote := data[0].(map[string]interface{})
	if quote["moneda"] != "Dolar U.S.A" {
		t.Errorf("unexpected moneda %v", quote["moneda"])
	}
	if quote["compra_texto"] != "850,00" {
		t.Errorf("unexpected compra_texto %v", quote["compra_texto"])
	}
}

func TestGetDivisaByMoneda(t *testing.T) {
	r := newTestRouter(t, handlerStubs{exchange: stubExchange{board: sampleExchangeBoard()}}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/divisas/dolar", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["moneda_filtro"] != "dolar" {
		t.Errorf("expected moneda_filtro dolar, got %v", body["moneda_filtro"])
	}
	quote := body["data"].(map[string]interface{})
	if quote["moneda"] != "Dolar U.S.A" {
		t.Errorf("unexpected moneda %v", quote["moneda"])
	}
	if quote["venta"] != 842.5 {
		t.Errorf("unexpected venta %v", quote["venta"])
	}
	if body["hora_actualizacion"] != "13:05" {
		t.Errorf("header time must come from the divisas section, got %v", body["hora_actualizacion"])
	}
}

func TestGetBilleteByMonedaNotFound(t *testing.T) {
	r := newTestRouter(t, handlerStubs{exchange: stubExchange{board: sampleExchangeBoard()}}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/billetes/yen", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["success"] != false {
		t.Errorf("expected success false, got %v", body["success"])
	}
	if body["error"] != "Billete no encontrado" {
		t.Errorf("unexpected error %v", body["error"])
	}
}

func TestGetCotizacionesUpstreamFailure(t *testing.T) {
	stub := stubExchange{err: &domain.FetchError{URL: "https://example.com/bna", Err: errConnRefused}}
	r := newTestRouter(t, handlerStubs{exchange: stub}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cotizacionesbna", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Error al obtener cotizaciones BNA" {
		t.Errorf("unexpected error label %v", body["error"])
	}
}
