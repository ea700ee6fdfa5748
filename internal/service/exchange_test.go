package service

import (
	"context"
	"errors"
	"testing"

	"agroapi/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

type stubExchangeProvider struct {
	board      *domain.ExchangeBoard
	rate       *domain.RateAnnouncement
	boardErr   error
	rateErr    error
	fetchCalls int
}

func (s *stubExchangeProvider) FetchExchangeBoard(ctx context.Context) (*domain.ExchangeBoard, error) {
	s.fetchCalls++
	return s.board, s.boardErr
}

func (s *stubExchangeProvider) FetchLendingRate(ctx context.Context) (*domain.RateAnnouncement, error) {
	return s.rate, s.rateErr
}

func sampleExchangeBoard() *domain.ExchangeBoard {
	return &domain.ExchangeBoard{
		Billetes: domain.QuoteSection{
			Fecha: "4/3/2024",
			Hora:  "10:15",
			Cotizaciones: []domain.CurrencyQuote{
				{Moneda: "Dolar U.S.A", Compra: 850, Venta: 890},
				{Moneda: "Euro", Compra: 920.5, Venta: 965.25},
				{Moneda: "Dolar Canadiense", Compra: 600, Venta: 640},
			},
		},
		Divisas: domain.QuoteSection{
			Fecha: "4/3/2024",
			Hora:  "10:20",
			Cotizaciones: []domain.CurrencyQuote{
				{Moneda: "Dolar U.S.A", Compra: 845, Venta: 855},
			},
		},
	}
}

func newExchangeService(p ExchangeProvider) *ExchangeService {
	return NewExchangeService(trace.NewNoopTracerProvider().Tracer("test"), p)
}

func TestGetSection(t *testing.T) {
	svc := newExchangeService(&stubExchangeProvider{board: sampleExchangeBoard()})

	section, err := svc.GetSection(context.Background(), domain.CategoryDivisas)
	if err != nil {
		t.Fatalf("GetSection: %v", err)
	}
	if len(section.Cotizaciones) != 1 || section.Hora != "10:20" {
		t.Errorf("unexpected divisas section: %+v", section)
	}

	if _, err := svc.GetSection(context.Background(), domain.QuoteCategory("cheques")); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestFindCurrencyFirstMatchOnly(t *testing.T) {
	svc := newExchangeService(&stubExchangeProvider{board: sampleExchangeBoard()})

	quote, section, err := svc.FindCurrency(context.Background(), domain.CategoryBilletes, "dolar")
	if err != nil {
		t.Fatalf("FindCurrency: %v", err)
	}
	// Two labels contain "dolar"; the first row wins.
	if quote.Moneda != "Dolar U.S.A" {
		t.Errorf("moneda = %q, want first match Dolar U.S.A", quote.Moneda)
	}
	if section.Fecha != "4/3/2024" {
		t.Errorf("section metadata missing: %+v", section)
	}
}

func TestFindCurrencyNoMatch(t *testing.T) {
	svc := newExchangeService(&stubExchangeProvider{board: sampleExchangeBoard()})

	_, _, err := svc.FindCurrency(context.Background(), domain.CategoryBilletes, "yen")
	if !errors.Is(err, domain.ErrNoMatch) {
		t.Errorf("expected ErrNoMatch, got %v", err)
	}
}

func TestGetLendingRatePassthrough(t *testing.T) {
	want := &domain.RateAnnouncement{FechaVigencia: "15/02/2024", TasaNominalAnual: 52.25}
	svc := newExchangeService(&stubExchangeProvider{rate: want})

	rate, err := svc.GetLendingRate(context.Background())
	if err != nil {
		t.Fatalf("GetLendingRate: %v", err)
	}
	if rate != want {
		t.Errorf("unexpected rate: %+v", rate)
	}

	failing := newExchangeService(&stubExchangeProvider{
		rateErr: &domain.ExtractionError{Source: "tasa_activa", Field: "fecha_vigencia"},
	})
	_, err = failing.GetLendingRate(context.Background())
	var extractErr *domain.ExtractionError
	if !errors.As(err, &extractErr) {
		t.Errorf("expected ExtractionError passthrough, got %v", err)
	}
}
