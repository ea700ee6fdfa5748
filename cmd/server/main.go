package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agroapi/internal/bot"
	"agroapi/internal/config"
	"agroapi/internal/handler"
	"agroapi/internal/provider"
	"agroapi/internal/scrape"
	"agroapi/internal/service"
	"agroapi/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	_ "agroapi/docs"
)

var (
	loadEnvFunc          = godotenv.Load
	loadConfigFunc       = config.Load
	initTracerFunc       = tracing.InitTracer
	newBoardProviderFunc = func(cfg provider.PizarraConfig, tracer trace.Tracer) service.BoardProvider {
		return provider.NewPizarraProvider(cfg, tracer)
	}
	newExchangeProviderFunc = func(cfg provider.BNAConfig, tracer trace.Tracer) service.ExchangeProvider {
		return provider.NewBNAProvider(cfg, tracer)
	}
	newFuturesProviderFunc = func(cfg provider.FuturesConfig, tracer trace.Tracer) service.FuturesProvider {
		return provider.NewFuturesProvider(cfg, tracer)
	}
	newWeatherProviderFunc = func(apiKey string, clock scrape.ClockVariant, tracer trace.Tracer) service.WeatherProvider {
		return provider.NewWeatherProvider(apiKey, clock, tracer)
	}
	startTelegramBotFunc   = bot.StartTelegramBot
	newHandlerFunc         = handler.New
	newRouterFunc          = gin.Default
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           AgroAPI
// @version         1.0
// @description     Grain prices, BNA quotes and weather gateway.

// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in   header
// @name Authorization
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	pizarraCfg := provider.DefaultPizarraConfig()
	if cfg.PizarraURL != "" {
		pizarraCfg.URL = cfg.PizarraURL
	}
	bnaCfg := provider.DefaultBNAConfig()
	if cfg.BNAURL != "" {
		bnaCfg.ExchangeURL = cfg.BNAURL
	}
	if cfg.BNARateURL != "" {
		bnaCfg.RateURL = cfg.BNARateURL
	}
	futuresCfg := provider.DefaultFuturesConfig()
	if cfg.FuturesURL != "" {
		futuresCfg.URL = cfg.FuturesURL
	}

	boardService := service.NewBoardService(tracer, newBoardProviderFunc(pizarraCfg, tracer))
	exchangeService := service.NewExchangeService(tracer, newExchangeProviderFunc(bnaCfg, tracer))
	futuresService := service.NewFuturesService(tracer, newFuturesProviderFunc(futuresCfg, tracer))
	weatherService := service.NewWeatherService(tracer,
		newWeatherProviderFunc(cfg.OpenWeatherAPIKey, scrape.ClockVariant(cfg.WeatherClock), tracer))

	startTelegramBotFunc(cfg.TelegramBotToken, boardService, exchangeService, weatherService,
		cfg.DefaultLat, cfg.DefaultLon)

	h := newHandlerFunc(tracer, boardService, exchangeService, futuresService, weatherService,
		cfg.DefaultLat, cfg.DefaultLon)

	r := newRouterFunc()
	r.Use(otelgin.Middleware("agroapi"))

	h.RegisterRoutes(r, cfg.APIToken)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
