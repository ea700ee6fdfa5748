package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"agroapi/internal/domain"
	"agroapi/internal/scrape"

	"go.opentelemetry.io/otel/trace"
)

const openWeatherBaseURL = "https://api.openweathermap.org/data/3.0/onecall"

// forecastDays is how many daily entries beyond today the report carries.
const forecastDays = 4

// weatherIcons maps the two-character OpenWeather icon prefix to an emoji.
var weatherIcons = map[string]string{
	"01": "☀️",
	"02": "☁️",
	"03": "☁️",
	"04": "☁️",
	"09": "🌧️",
	"10": "🌧️",
	"11": "⛈️",
	"13": "❄️",
	"50": "🌫️",
}

func weatherIcon(code string) string {
	if len(code) >= 2 {
		if icon, ok := weatherIcons[code[:2]]; ok {
			return icon
		}
	}
	return "❓"
}

// oneCallResponse is the subset of the One Call payload the report uses.
type oneCallResponse struct {
	Current struct {
		Weather []struct {
			Icon        string `json:"icon"`
			Description string `json:"description"`
		} `json:"weather"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		WindSpeed float64 `json:"wind_speed"`
		UVI       float64 `json:"uvi"`
		Sunrise   int64   `json:"sunrise"`
		Sunset    int64   `json:"sunset"`
		Rain      struct {
			OneHour float64 `json:"1h"`
		} `json:"rain"`
	} `json:"current"`
	Daily []struct {
		Dt   int64 `json:"dt"`
		Temp struct {
			Min float64 `json:"min"`
			Max float64 `json:"max"`
		} `json:"temp"`
		FeelsLike struct {
			Day float64 `json:"day"`
		} `json:"feels_like"`
		Pop     float64 `json:"pop"`
		Weather []struct {
			Icon        string `json:"icon"`
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"daily"`
}

// WeatherProvider reshapes the OpenWeather One Call response. It is a plain
// field remap, not part of the extraction core.
type WeatherProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
	clock   scrape.ClockVariant
	tracer  trace.Tracer
}

func NewWeatherProvider(apiKey string, clock scrape.ClockVariant, tracer trace.Tracer) *WeatherProvider {
	return &WeatherProvider{
		client:  newHTTPClient(),
		baseURL: openWeatherBaseURL,
		apiKey:  apiKey,
		clock:   clock,
		tracer:  tracer,
	}
}

// FetchWeather fetches current conditions and the daily forecast for the
// given coordinates.
func (p *WeatherProvider) FetchWeather(ctx context.Context, lat, lon string) (*domain.WeatherReport, error) {
	ctx, span := p.tracer.Start(ctx, "weather.fetch")
	defer span.End()

	params := url.Values{}
	params.Set("lat", lat)
	params.Set("lon", lon)
	params.Set("appid", p.apiKey)
	params.Set("units", "metric")
	params.Set("lang", "es")
	params.Set("exclude", "hourly,minutely")
	endpoint := p.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &domain.FetchError{URL: p.baseURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &domain.FetchError{URL: p.baseURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &domain.FetchError{URL: p.baseURL, Err: fmt.Errorf("openweather status %d: %s", resp.StatusCode, body)}
	}

	var raw oneCallResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &domain.FetchError{URL: p.baseURL, Err: err}
	}
	if len(raw.Current.Weather) == 0 || len(raw.Daily) < forecastDays+1 {
		return nil, &domain.ExtractionError{Source: "openweather", Field: "daily"}
	}

	return p.buildReport(&raw), nil
}

func (p *WeatherProvider) buildReport(raw *oneCallResponse) *domain.WeatherReport {
	today := raw.Daily[0]
	report := &domain.WeatherReport{
		Current: domain.CurrentConditions{
			Icon:      weatherIcon(raw.Current.Weather[0].Icon),
			Condition: scrape.CapitalizeFirst(raw.Current.Weather[0].Description),
			TempMin:   fmt.Sprintf("%.1f", today.Temp.Min),
			TempMax:   fmt.Sprintf("%.1f", today.Temp.Max),
			FeelsLike: fmt.Sprintf("%.1f", raw.Current.FeelsLike),
			Humidity:  raw.Current.Humidity,
			WindSpeed: raw.Current.WindSpeed,
			UVI:       raw.Current.UVI,
			Sunrise:   scrape.FormatClock(raw.Current.Sunrise, p.clock),
			Sunset:    scrape.FormatClock(raw.Current.Sunset, p.clock),
			Rain:      raw.Current.Rain.OneHour,
			RainProb:  fmt.Sprintf("%.0f", today.Pop*100),
		},
	}

	for i := 1; i <= forecastDays; i++ {
		day := raw.Daily[i]
		icon := "❓"
		if len(day.Weather) > 0 {
			icon = weatherIcon(day.Weather[0].Icon)
		}
		report.Forecast = append(report.Forecast, domain.ForecastDay{
			Day:       scrape.DayName(day.Dt),
			Icon:      icon,
			TempMin:   fmt.Sprintf("%.1f", day.Temp.Min),
			TempMax:   fmt.Sprintf("%.1f", day.Temp.Max),
			FeelsLike: fmt.Sprintf("%.1f", day.FeelsLike.Day),
			RainProb:  fmt.Sprintf("%.0f", day.Pop*100),
		})
	}

	report.FormattedMessage = formatWeatherMessage(report)
	return report
}

// formatWeatherMessage renders the Telegram-markdown summary block.
func formatWeatherMessage(r *domain.WeatherReport) string {
	var b strings.Builder
	b.WriteString("El clima para hoy en tu ubicación es:\n")
	fmt.Fprintf(&b, "• %s Condición: %s\n", r.Current.Icon, r.Current.Condition)
	fmt.Fprintf(&b, "• 🌡️ Temperatura: %s °C - %s °C\n", r.Current.TempMin, r.Current.TempMax)
	fmt.Fprintf(&b, "• 🌡️ Sensación térmica: %s °C\n", r.Current.FeelsLike)
	fmt.Fprintf(&b, "• 💧 Humedad: %d%%\n", r.Current.Humidity)
	fmt.Fprintf(&b, "• 💨 Velocidad viento: %g km/h\n", r.Current.WindSpeed)
	fmt.Fprintf(&b, "• ☀️ Indice UV: %g\n", r.Current.UVI)
	fmt.Fprintf(&b, "• 🌅 Amanecer: %s\n", r.Current.Sunrise)
	fmt.Fprintf(&b, "• 🌇 Atardecer: %s\n", r.Current.Sunset)
	fmt.Fprintf(&b, "• 🌧️ Probabilidad de lluvia: %s%%\n", r.Current.RainProb)
	if r.Current.Rain > 0 {
		fmt.Fprintf(&b, "• 🌧️ Lluvia última hora: %gmm\n", r.Current.Rain)
	}
	fmt.Fprintf(&b, "Pronóstico de %d días:", len(r.Forecast))
	for _, day := range r.Forecast {
		fmt.Fprintf(&b, "\n• *%s*: %s %s°C - %s°C (ST: %s°C) 🌧️ %s%%",
			day.Day, day.Icon, day.TempMin, day.TempMax, day.FeelsLike, day.RainProb)
	}
	return b.String()
}
