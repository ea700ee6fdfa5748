package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"agroapi/internal/domain"
)

func TestGetTasaActiva(t *testing.T) {
	stub := stubExchange{rate: &domain.RateAnnouncement{
		FechaVigencia:    "15/02/2024",
		TasaNominalAnual: 52.25,
	}}
	r := newTestRouter(t, handlerStubs{exchange: stub}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tasaactivabna", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["fecha_vigencia"] != "15/02/2024" {
		t.Errorf("unexpected fecha_vigencia %v", body["fecha_vigencia"])
	}
	if body["tasa_nominal_anual"] != 52.25 {
		t.Errorf("unexpected tasa_nominal_anual %v", body["tasa_nominal_anual"])
	}
	if body["fecha_consulta"] == nil || body["fecha_consulta"] == "" {
		t.Error("expected fecha_consulta to be set")
	}
}

func TestGetTasaActivaNotFoundOnMissingFragment(t *testing.T) {
	stub := stubExchange{err: &domain.ExtractionError{Source: "bna-tasa", Field: "tasa nominal anual"}}
	r := newTestRouter(t, handlerStubs{exchange: stub}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tasaactivabna", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["error"] != "Tasa activa no encontrada" {
		t.Errorf("unexpected error %v", body["error"])
	}
}

func TestGetTasaActivaUpstreamFailure(t *testing.T) {
	stub := stubExchange{err: &domain.FetchError{URL: "https://example.com/tasa", Err: errConnRefused}}
	r := newTestRouter(t, handlerStubs{exchange: stub}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tasaactivabna", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Error al obtener la tasa activa" {
		t.Errorf("unexpected error label %v", body["error"])
	}
}
