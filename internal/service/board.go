// Package service composes the source adapters into the per-endpoint views:
// one shared fetch-and-parse per upstream feeds every filter variant.
package service

import (
	"context"

	"agroapi/internal/domain"
	"agroapi/internal/scrape"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type BoardProvider interface {
	FetchBoard(ctx context.Context) (*domain.PriceBoard, error)
}

// BoardService serves the grain pizarra, whole or filtered by product.
type BoardService struct {
	tracer   trace.Tracer
	provider BoardProvider
}

func NewBoardService(tracer trace.Tracer, provider BoardProvider) *BoardService {
	return &BoardService{tracer: tracer, provider: provider}
}

// GetBoard fetches the pizarra and, when filtro is non-empty, restricts the
// entries to products containing the term (case- and accent-insensitive).
// A filter matching nothing yields an empty board, not an error.
func (s *BoardService) GetBoard(ctx context.Context, filtro string) (*domain.PriceBoard, error) {
	ctx, span := s.tracer.Start(ctx, "board-service.get-board")
	defer span.End()
	span.SetAttributes(attribute.String("filtro", filtro))

	board, err := s.provider.FetchBoard(ctx)
	if err != nil {
		return nil, err
	}
	if filtro == "" {
		return board, nil
	}

	filtered := &domain.PriceBoard{
		Fecha:    board.Fecha,
		Hora:     board.Hora,
		Entradas: []domain.PriceBoardEntry{},
	}
	for _, entry := range board.Entradas {
		if scrape.MatchesFilter(entry.Producto, filtro) {
			filtered.Entradas = append(filtered.Entradas, entry)
		}
	}
	return filtered, nil
}
