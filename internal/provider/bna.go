package provider

import (
	"context"
	"net/http"

	"agroapi/internal/domain"
	"agroapi/internal/scrape"

	"go.opentelemetry.io/otel/trace"
)

// BNAConfig carries the Banco Nación URLs plus the selectors and regexes for
// both the exchange tables and the lending-rate announcement.
type BNAConfig struct {
	ExchangeURL string
	RateURL     string

	BilletesSelector string
	DivisasSelector  string
	RowSelector      string
	CellSelector     string
	DateSelector     string
	DatePattern      string
	TimeSelector     string

	RateDatePattern  string
	RateValuePattern string
}

// DefaultBNAConfig returns the selectors for the current bna.com.ar layout.
func DefaultBNAConfig() BNAConfig {
	return BNAConfig{
		ExchangeURL:      "https://www.bna.com.ar/Personas",
		RateURL:          "https://www.bna.com.ar/Home/InformacionAlUsuarioFinanciero",
		BilletesSelector: "#billetes",
		DivisasSelector:  "#divisas",
		RowSelector:      "table tbody tr",
		CellSelector:     "td",
		DateSelector:     ".fechaCot",
		DatePattern:      `(\d{1,2}/\d{1,2}/\d{4})`,
		TimeSelector:     ".fechaCot",
		RateDatePattern:  `vigente desde el d[ií]a\s+(\d{1,2}/\d{1,2}/\d{4})`,
		RateValuePattern: `(?s)[Tt]asa [Nn]ominal [Aa]nual.*?([\d.]+,\d+)\s*%`,
	}
}

// BNAProvider scrapes the Banco Nación exchange tables and its lending-rate
// announcement page.
type BNAProvider struct {
	client *http.Client
	cfg    BNAConfig
	tracer trace.Tracer
}

func NewBNAProvider(cfg BNAConfig, tracer trace.Tracer) *BNAProvider {
	return &BNAProvider{
		client: newHTTPClient(),
		cfg:    cfg,
		tracer: tracer,
	}
}

// FetchExchangeBoard fetches the page once and parses both quote tables.
// The two sections carry independently extracted as-of date and time.
func (p *BNAProvider) FetchExchangeBoard(ctx context.Context) (*domain.ExchangeBoard, error) {
	ctx, span := p.tracer.Start(ctx, "bna.fetch-exchange-board")
	defer span.End()

	doc, err := fetchDocument(ctx, p.client, p.cfg.ExchangeURL)
	if err != nil {
		return nil, err
	}

	return &domain.ExchangeBoard{
		Billetes: buildQuoteSection(doc, p.cfg, p.cfg.BilletesSelector),
		Divisas:  buildQuoteSection(doc, p.cfg, p.cfg.DivisasSelector),
	}, nil
}

// buildQuoteSection parses one exchange table. A row missing any of label,
// buy or sell — or whose numbers fail normalization — is skipped, never
// included half-built.
func buildQuoteSection(doc *scrape.Document, cfg BNAConfig, sectionSelector string) domain.QuoteSection {
	section := domain.QuoteSection{Cotizaciones: []domain.CurrencyQuote{}}

	scope, ok := doc.Root().First(sectionSelector)
	if !ok {
		section.Fecha = domain.FechaNoDisponible
		return section
	}

	section.Fecha = domain.FechaNoDisponible
	if text, ok := (scrape.Locator{Selector: cfg.DateSelector, Pattern: cfg.DatePattern}).Extract(scope); ok {
		section.Fecha = text
	}
	if text, ok := (scrape.Locator{Selector: cfg.TimeSelector, Pattern: `(\d{1,2}:\d{2})`}).Extract(scope); ok {
		section.Hora = text
	}

	for _, row := range scope.All(cfg.RowSelector) {
		cells := row.All(cfg.CellSelector)
		if len(cells) < 3 {
			continue
		}
		moneda := cells[0].Text()
		compraRaw := cells[1].Text()
		ventaRaw := cells[2].Text()
		if moneda == "" || compraRaw == "" || ventaRaw == "" {
			continue
		}

		compra, err := scrape.ParseLocaleNumber(compraRaw)
		if err != nil {
			continue
		}
		venta, err := scrape.ParseLocaleNumber(ventaRaw)
		if err != nil {
			continue
		}

		section.Cotizaciones = append(section.Cotizaciones, domain.CurrencyQuote{
			Moneda:      moneda,
			Compra:      compra,
			Venta:       venta,
			CompraTexto: compraRaw,
			VentaTexto:  ventaRaw,
		})
	}

	return section
}

// FetchLendingRate fetches the announcement page and locates the effective
// date and the annual nominal rate by regex over the page text. Either one
// missing is terminal for the request.
func (p *BNAProvider) FetchLendingRate(ctx context.Context) (*domain.RateAnnouncement, error) {
	ctx, span := p.tracer.Start(ctx, "bna.fetch-lending-rate")
	defer span.End()

	doc, err := fetchDocument(ctx, p.client, p.cfg.RateURL)
	if err != nil {
		return nil, err
	}

	text := doc.Text()

	fecha, ok := scrape.ExtractByRegex(text, p.cfg.RateDatePattern)
	if !ok {
		return nil, &domain.ExtractionError{Source: "tasa_activa", Field: "fecha_vigencia"}
	}

	rateRaw, ok := scrape.ExtractByRegex(text, p.cfg.RateValuePattern)
	if !ok {
		return nil, &domain.ExtractionError{Source: "tasa_activa", Field: "tasa_nominal_anual"}
	}
	rate, err := scrape.ParseLocaleNumber(rateRaw)
	if err != nil {
		return nil, err
	}

	return &domain.RateAnnouncement{
		FechaVigencia:    fecha,
		TasaNominalAnual: rate,
	}, nil
}
