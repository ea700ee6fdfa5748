package config

import (
	"log"
	"os"
	"strings"
)

type Config struct {
	Port     string
	APIToken string

	OpenWeatherAPIKey string
	DefaultLat        string
	DefaultLon        string
	WeatherClock      string

	TelegramBotToken string

	PizarraURL string
	BNAURL     string
	BNARateURL string
	FuturesURL string
}

func Load() *Config {
	cfg := &Config{
		APIToken:          os.Getenv("API_TOKEN"),
		OpenWeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),
		DefaultLat:        os.Getenv("DEFAULT_LAT"),
		DefaultLon:        os.Getenv("DEFAULT_LON"),
		TelegramBotToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		PizarraURL:        strings.TrimSpace(os.Getenv("PIZARRA_URL")),
		BNAURL:            strings.TrimSpace(os.Getenv("BNA_URL")),
		BNARateURL:        strings.TrimSpace(os.Getenv("BNA_RATE_URL")),
		FuturesURL:        strings.TrimSpace(os.Getenv("FUTURES_URL")),
	}

	if cfg.APIToken == "" {
		log.Println("Warning: API_TOKEN not set, authentication disabled")
	}
	if cfg.OpenWeatherAPIKey == "" {
		log.Println("Warning: OPENWEATHER_API_KEY not set, /weather will fail upstream")
	}

	cfg.Port = strings.TrimSpace(os.Getenv("PORT"))
	if cfg.Port == "" {
		cfg.Port = "3000"
	}

	cfg.WeatherClock = strings.ToLower(strings.TrimSpace(os.Getenv("WEATHER_CLOCK")))
	if cfg.WeatherClock == "" {
		cfg.WeatherClock = "fixed"
	}
	if cfg.WeatherClock != "fixed" && cfg.WeatherClock != "local" {
		log.Printf("Warning: unsupported WEATHER_CLOCK=%q, defaulting to fixed", cfg.WeatherClock)
		cfg.WeatherClock = "fixed"
	}

	return cfg
}
