package provider

import (
	"context"
	"net/http"

	"agroapi/internal/domain"
	"agroapi/internal/scrape"

	"go.opentelemetry.io/otel/trace"
)

// PizarraConfig carries the upstream URL and every selector used against the
// board page. Layout drift upstream is fixed here, not in the builder.
type PizarraConfig struct {
	URL string

	BoardSelector      string
	ProductSelector    string
	PriceSelector      string
	ChangeSelector     string
	ChangePctSelector  string
	UpMarkerSelector   string
	DownMarkerSelector string
	EstimatedSelector  string
	DateSelector       string
	TimeSelector       string

	EstimatedPattern string
}

// DefaultPizarraConfig returns the selectors for the current board layout.
func DefaultPizarraConfig() PizarraConfig {
	return PizarraConfig{
		URL:                "https://www.cacbb.com.ar/pizarra",
		BoardSelector:      ".board",
		ProductSelector:    "h3",
		PriceSelector:      ".price",
		ChangeSelector:     ".price-var",
		ChangePctSelector:  ".price-var-pct",
		UpMarkerSelector:   ".fa-arrow-up",
		DownMarkerSelector: ".fa-arrow-down",
		EstimatedSelector:  ".price-sc",
		DateSelector:       ".fecha-pizarra",
		TimeSelector:       ".hora-pizarra",
		EstimatedPattern:   `\(Estimativo\)\s*(.+)`,
	}
}

// PizarraProvider scrapes the grain price board.
type PizarraProvider struct {
	client *http.Client
	cfg    PizarraConfig
	tracer trace.Tracer
}

func NewPizarraProvider(cfg PizarraConfig, tracer trace.Tracer) *PizarraProvider {
	return &PizarraProvider{
		client: newHTTPClient(),
		cfg:    cfg,
		tracer: tracer,
	}
}

// FetchBoard fetches and parses the full pizarra. A page with no board
// elements yields an empty board, not an error.
func (p *PizarraProvider) FetchBoard(ctx context.Context) (*domain.PriceBoard, error) {
	ctx, span := p.tracer.Start(ctx, "pizarra.fetch-board")
	defer span.End()

	doc, err := fetchDocument(ctx, p.client, p.cfg.URL)
	if err != nil {
		return nil, err
	}
	return buildBoard(doc, p.cfg), nil
}

// buildBoard composes the extractors into board records. Every record is
// derived independently from the same document snapshot.
func buildBoard(doc *scrape.Document, cfg PizarraConfig) *domain.PriceBoard {
	root := doc.Root()

	fecha := domain.FechaNoDisponible
	if text, ok := (scrape.Locator{Selector: cfg.DateSelector}).Extract(root); ok && text != "" {
		fecha = text
	}
	hora := ""
	if text, ok := (scrape.Locator{Selector: cfg.TimeSelector}).Extract(root); ok {
		hora = text
	}

	board := &domain.PriceBoard{Fecha: fecha, Hora: hora, Entradas: []domain.PriceBoardEntry{}}

	for _, el := range root.All(cfg.BoardSelector) {
		producto, ok := (scrape.Locator{Selector: cfg.ProductSelector}).Extract(el)
		if !ok || producto == "" {
			continue
		}
		precio, ok := (scrape.Locator{Selector: cfg.PriceSelector}).Extract(el)
		if !ok || precio == "" {
			continue
		}

		entry := domain.PriceBoardEntry{
			Fecha:            fecha,
			Producto:         producto,
			Precio:           precio,
			Tendencia:        deriveTrend(el, cfg),
			PrecioEstimativo: deriveEstimated(el, cfg),
		}
		if text, ok := (scrape.Locator{Selector: cfg.ChangeSelector}).Extract(el); ok {
			entry.Variacion = text
		}
		if text, ok := (scrape.Locator{Selector: cfg.ChangePctSelector}).Extract(el); ok {
			entry.VariacionPorcentual = text
		}

		board.Entradas = append(board.Entradas, entry)
	}

	return board
}

// deriveTrend reads the visual markers under an entry. The page never shows
// both at once; if it did, the up marker is checked first and wins.
func deriveTrend(el scrape.Selection, cfg PizarraConfig) domain.Tendencia {
	if el.Exists(cfg.UpMarkerSelector) {
		return domain.TendenciaSube
	}
	if el.Exists(cfg.DownMarkerSelector) {
		return domain.TendenciaBaja
	}
	return domain.TendenciaSinCambios
}

// deriveEstimated handles the secondary price fragment: a matching
// "(Estimativo) <value>" yields the captured value, a fragment without the
// parenthetical is passed through verbatim, absence yields nil.
func deriveEstimated(el scrape.Selection, cfg PizarraConfig) *string {
	node, ok := el.First(cfg.EstimatedSelector)
	if !ok {
		return nil
	}
	raw := node.Text()
	if captured, ok := scrape.ExtractByRegex(raw, cfg.EstimatedPattern); ok {
		return &captured
	}
	return &raw
}
