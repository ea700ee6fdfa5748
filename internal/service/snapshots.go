package service

import (
	"context"

	"agroapi/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

type FuturesProvider interface {
	FetchSnapshot(ctx context.Context) (*domain.FuturesSnapshot, error)
}

// FuturesService serves the international futures snapshot.
type FuturesService struct {
	tracer   trace.Tracer
	provider FuturesProvider
}

func NewFuturesService(tracer trace.Tracer, provider FuturesProvider) *FuturesService {
	return &FuturesService{tracer: tracer, provider: provider}
}

func (s *FuturesService) GetSnapshot(ctx context.Context) (*domain.FuturesSnapshot, error) {
	ctx, span := s.tracer.Start(ctx, "futures-service.get-snapshot")
	defer span.End()

	return s.provider.FetchSnapshot(ctx)
}

type WeatherProvider interface {
	FetchWeather(ctx context.Context, lat, lon string) (*domain.WeatherReport, error)
}

// WeatherService serves the reshaped weather report.
type WeatherService struct {
	tracer   trace.Tracer
	provider WeatherProvider
}

func NewWeatherService(tracer trace.Tracer, provider WeatherProvider) *WeatherService {
	return &WeatherService{tracer: tracer, provider: provider}
}

func (s *WeatherService) GetWeather(ctx context.Context, lat, lon string) (*domain.WeatherReport, error) {
	ctx, span := s.tracer.Start(ctx, "weather-service.get-weather")
	defer span.End()

	return s.provider.FetchWeather(ctx, lat, lon)
}
