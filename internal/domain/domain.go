package domain

// Tendencia is the direction of a price on the pizarra between two sessions.
type Tendencia string

const (
	TendenciaSube       Tendencia = "Sube"
	TendenciaBaja       Tendencia = "Baja"
	TendenciaSinCambios Tendencia = "Sin cambios"
)

const (
	// SinCotizacion replaces the "S/C" placeholder the pizarra shows when a
	// product did not trade.
	SinCotizacion = "Sin cotización"
	// FechaNoDisponible is reported when the page-level date fragment is
	// missing or the page layout shifted.
	FechaNoDisponible = "Fecha no disponible"
)

// PriceBoardEntry is one product quote on the grain pizarra.
type PriceBoardEntry struct {
	Fecha               string    `json:"fecha"`
	Producto            string    `json:"producto"`
	Precio              string    `json:"precio"`
	Variacion           string    `json:"variacion"`
	VariacionPorcentual string    `json:"variacion_porcentual"`
	Tendencia           Tendencia `json:"tendencia"`
	PrecioEstimativo    *string   `json:"precio_estimativo"`
}

// PriceBoard is the full pizarra snapshot for one fetch.
type PriceBoard struct {
	Fecha    string
	Hora     string
	Entradas []PriceBoardEntry
}

// CurrencyQuote is one row of a BNA exchange table.
type CurrencyQuote struct {
	Moneda      string  `json:"moneda"`
	Compra      float64 `json:"compra"`
	Venta       float64 `json:"venta"`
	CompraTexto string  `json:"compra_texto"`
	VentaTexto  string  `json:"venta_texto"`
}

// QuoteSection is one of the two BNA exchange tables. Each table carries its
// own as-of date and time on the page, so they are kept per section.
type QuoteSection struct {
	Fecha        string
	Hora         string
	Cotizaciones []CurrencyQuote
}

// ExchangeBoard holds both BNA exchange tables from a single fetch.
type ExchangeBoard struct {
	Billetes QuoteSection
	Divisas  QuoteSection
}

// QuoteCategory names a BNA exchange table.
type QuoteCategory string

const (
	CategoryBilletes QuoteCategory = "billetes"
	CategoryDivisas  QuoteCategory = "divisas"
)

// RateAnnouncement is the current BNA lending rate announcement.
type RateAnnouncement struct {
	FechaVigencia    string  `json:"fecha_vigencia"`
	TasaNominalAnual float64 `json:"tasa_nominal_anual"`
}

// FuturesDetail is the first-seen row for one tracked product in the
// international futures table.
type FuturesDetail struct {
	Precio   float64 `json:"precio"`
	Posicion string  `json:"posicion"`
}

// FuturesSnapshot summarizes international grain futures. A product the
// table never listed reports zero; girasol has no international quote and is
// always zero.
type FuturesSnapshot struct {
	Soja     float64                  `json:"soja"`
	Maiz     float64                  `json:"maiz"`
	Trigo    float64                  `json:"trigo"`
	Girasol  float64                  `json:"girasol"`
	Detalles map[string]FuturesDetail `json:"detalles"`
}

// CurrentConditions mirrors the reshaped OpenWeather current block.
type CurrentConditions struct {
	Icon      string  `json:"icon"`
	Condition string  `json:"condition"`
	TempMin   string  `json:"temp_min"`
	TempMax   string  `json:"temp_max"`
	FeelsLike string  `json:"feels_like"`
	Humidity  int     `json:"humidity"`
	WindSpeed float64 `json:"wind_speed"`
	UVI       float64 `json:"uvi"`
	Sunrise   string  `json:"sunrise"`
	Sunset    string  `json:"sunset"`
	Rain      float64 `json:"rain"`
	RainProb  string  `json:"rain_prob"`
}

// ForecastDay is one reshaped OpenWeather daily entry.
type ForecastDay struct {
	Day       string `json:"day"`
	Icon      string `json:"icon"`
	TempMin   string `json:"temp_min"`
	TempMax   string `json:"temp_max"`
	FeelsLike string `json:"feels_like"`
	RainProb  string `json:"rain_prob"`
}

// WeatherReport is the outward /weather payload.
type WeatherReport struct {
	Current          CurrentConditions `json:"current"`
	Forecast         []ForecastDay     `json:"forecast"`
	FormattedMessage string            `json:"formatted_message"`
}
