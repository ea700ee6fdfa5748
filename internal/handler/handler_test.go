package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"agroapi/internal/domain"
	"agroapi/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

var errConnRefused = errors.New("connection refused")

type stubBoards struct {
	board *domain.PriceBoard
	err   error
}

func (s stubBoards) FetchBoard(ctx context.Context) (*domain.PriceBoard, error) {
	return s.board, s.err
}

type stubExchange struct {
	board *domain.ExchangeBoard
	rate  *domain.RateAnnouncement
	err   error
}

func (s stubExchange) FetchExchangeBoard(ctx context.Context) (*domain.ExchangeBoard, error) {
	return s.board, s.err
}

func (s stubExchange) FetchLendingRate(ctx context.Context) (*domain.RateAnnouncement, error) {
	return s.rate, s.err
}

type stubFutures struct {
	snap *domain.FuturesSnapshot
	err  error
}

func (s stubFutures) FetchSnapshot(ctx context.Context) (*domain.FuturesSnapshot, error) {
	return s.snap, s.err
}

type stubWeather struct {
	report *domain.WeatherReport
	err    error
}

func (s stubWeather) FetchWeather(ctx context.Context, lat, lon string) (*domain.WeatherReport, error) {
	return s.report, s.err
}

type handlerStubs struct {
	boards   service.BoardProvider
	exchange service.ExchangeProvider
	futures  service.FuturesProvider
	weather  service.WeatherProvider
}

func newTestRouter(t *testing.T, stubs handlerStubs, token string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tracer := trace.NewNoopTracerProvider().Tracer("handler-test")
	if stubs.boards == nil {
		stubs.boards = stubBoards{board: &domain.PriceBoard{}}
	}
	if stubs.exchange == nil {
		stubs.exchange = stubExchange{board: &domain.ExchangeBoard{}}
	}
	if stubs.futures == nil {
		stubs.futures = stubFutures{snap: &domain.FuturesSnapshot{}}
	}
	if stubs.weather == nil {
		stubs.weather = stubWeather{report: &domain.WeatherReport{}}
	}

	h := New(
		tracer,
		service.NewBoardService(tracer, stubs.boards),
		service.NewExchangeService(tracer, stubs.exchange),
		service.NewFuturesService(tracer, stubs.futures),
		service.NewWeatherService(tracer, stubs.weather),
		"-38.7", "-62.2",
	)

	r := gin.New()
	h.RegisterRoutes(r, token)
	return r
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return body
}
