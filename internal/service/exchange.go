package service

import (
	"context"
	"fmt"

	"agroapi/internal/domain"
	"agroapi/internal/scrape"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type ExchangeProvider interface {
	FetchExchangeBoard(ctx context.Context) (*domain.ExchangeBoard, error)
	FetchLendingRate(ctx context.Context) (*domain.RateAnnouncement, error)
}

// ExchangeService serves the BNA exchange tables and lending rate.
type ExchangeService struct {
	tracer   trace.Tracer
	provider ExchangeProvider
}

func NewExchangeService(tracer trace.Tracer, provider ExchangeProvider) *ExchangeService {
	return &ExchangeService{tracer: tracer, provider: provider}
}

// GetBoard returns both quote tables from a single upstream fetch.
func (s *ExchangeService) GetBoard(ctx context.Context) (*domain.ExchangeBoard, error) {
	ctx, span := s.tracer.Start(ctx, "exchange-service.get-board")
	defer span.End()

	return s.provider.FetchExchangeBoard(ctx)
}

// GetSection returns one quote table.
func (s *ExchangeService) GetSection(ctx context.Context, category domain.QuoteCategory) (*domain.QuoteSection, error) {
	ctx, span := s.tracer.Start(ctx, "exchange-service.get-section")
	defer span.End()
	span.SetAttributes(attribute.String("category", string(category)))

	board, err := s.provider.FetchExchangeBoard(ctx)
	if err != nil {
		return nil, err
	}
	section, err := pickSection(board, category)
	if err != nil {
		return nil, err
	}
	return section, nil
}

// FindCurrency returns the first quote in the category whose label contains
// moneda, case- and accent-insensitive. No match yields ErrNoMatch.
func (s *ExchangeService) FindCurrency(ctx context.Context, category domain.QuoteCategory, moneda string) (*domain.CurrencyQuote, *domain.QuoteSection, error) {
	ctx, span := s.tracer.Start(ctx, "exchange-service.find-currency")
	defer span.End()
	span.SetAttributes(
		attribute.String("category", string(category)),
		attribute.String("moneda", moneda),
	)

	board, err := s.provider.FetchExchangeBoard(ctx)
	if err != nil {
		return nil, nil, err
	}
	section, err := pickSection(board, category)
	if err != nil {
		return nil, nil, err
	}

	for i := range section.Cotizaciones {
		if scrape.MatchesFilter(section.Cotizaciones[i].Moneda, moneda) {
			return &section.Cotizaciones[i], section, nil
		}
	}
	return nil, nil, domain.ErrNoMatch
}

// GetLendingRate returns the single-record rate announcement; a missing
// required fragment propagates as an ExtractionError.
func (s *ExchangeService) GetLendingRate(ctx context.Context) (*domain.RateAnnouncement, error) {
	ctx, span := s.tracer.Start(ctx, "exchange-service.get-lending-rate")
	defer span.End()

	return s.provider.FetchLendingRate(ctx)
}

func pickSection(board *domain.ExchangeBoard, category domain.QuoteCategory) (*domain.QuoteSection, error) {
	switch category {
	case domain.CategoryBilletes:
		return &board.Billetes, nil
	case domain.CategoryDivisas:
		return &board.Divisas, nil
	default:
		return nil, fmt.Errorf("unknown quote category: %s", category)
	}
}
