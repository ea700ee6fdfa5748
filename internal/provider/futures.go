package provider

import (
	"context"
	"time"

	"agroapi/internal/domain"
	"agroapi/internal/scrape"

	"github.com/chromedp/chromedp"
	"go.opentelemetry.io/otel/trace"
)

// FuturesConfig drives the rendered fetch of the international futures page.
// The upstream renders its table client-side, so a plain GET returns an
// empty shell.
type FuturesConfig struct {
	URL               string
	NavigationTimeout time.Duration
	SettleDelay       time.Duration

	RowSelector  string
	CellSelector string
}

func DefaultFuturesConfig() FuturesConfig {
	return FuturesConfig{
		URL:               "https://www.fyo.com/granos/precios-internacionales",
		NavigationTimeout: 60 * time.Second,
		SettleDelay:       5 * time.Second,
		RowSelector:       "table tbody tr",
		CellSelector:      "td",
	}
}

// trackedProducts are the four products the snapshot reports, keyed by the
// canonical name used in the response.
var trackedProducts = []string{"soja", "maiz", "trigo", "girasol"}

// renderSession is one isolated headless-browser instance. Every session is
// released exactly once per request, on every exit path.
type renderSession interface {
	HTML(url string) (string, error)
	Close()
}

// newRenderSession is a seam for tests; the default launches Chrome.
var newRenderSession = func(cfg FuturesConfig) renderSession {
	return newChromeSession(cfg)
}

type chromeSession struct {
	ctx     context.Context
	cancels []context.CancelFunc
	cfg     FuturesConfig
}

func newChromeSession(cfg FuturesConfig) *chromeSession {
	// The session is rooted in Background on purpose: a client disconnect
	// does not abort an in-flight render, the result is just discarded.
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(),
		chromedp.DefaultExecAllocatorOptions[:]...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	return &chromeSession{
		ctx:     browserCtx,
		cancels: []context.CancelFunc{cancelBrowser, cancelAlloc},
		cfg:     cfg,
	}
}

// HTML navigates, waits the fixed settle delay for client-side rendering,
// and returns the rendered markup. The navigation deadline is the only
// budget on the whole exchange.
func (s *chromeSession) HTML(url string) (string, error) {
	runCtx, cancel := context.WithTimeout(s.ctx, s.cfg.NavigationTimeout)
	defer cancel()

	var html string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(url),
		chromedp.Sleep(s.cfg.SettleDelay),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	return html, err
}

func (s *chromeSession) Close() {
	for _, cancel := range s.cancels {
		cancel()
	}
}

// FuturesProvider fetches international grain futures from a
// JavaScript-rendered page via a per-request headless browser.
type FuturesProvider struct {
	cfg    FuturesConfig
	tracer trace.Tracer
}

func NewFuturesProvider(cfg FuturesConfig, tracer trace.Tracer) *FuturesProvider {
	return &FuturesProvider{cfg: cfg, tracer: tracer}
}

// FetchSnapshot renders the page and builds the snapshot. The browser
// instance is torn down whether extraction succeeds, fails, or times out.
func (p *FuturesProvider) FetchSnapshot(ctx context.Context) (*domain.FuturesSnapshot, error) {
	_, span := p.tracer.Start(ctx, "futures.fetch-snapshot")
	defer span.End()

	session := newRenderSession(p.cfg)
	defer session.Close()

	html, err := session.HTML(p.cfg.URL)
	if err != nil {
		return nil, &domain.FetchError{URL: p.cfg.URL, Err: err}
	}

	doc, err := scrape.NewDocumentFromString(html)
	if err != nil {
		return nil, &domain.FetchError{URL: p.cfg.URL, Err: err}
	}

	return buildFuturesSnapshot(doc, p.cfg), nil
}

// buildFuturesSnapshot walks the futures table keeping the first valid row
// per tracked product; later rows for an already-seen product are ignored.
// A product never listed reports zero.
func buildFuturesSnapshot(doc *scrape.Document, cfg FuturesConfig) *domain.FuturesSnapshot {
	snapshot := &domain.FuturesSnapshot{Detalles: map[string]domain.FuturesDetail{}}

	for _, row := range doc.Root().All(cfg.RowSelector) {
		cells := row.All(cfg.CellSelector)
		if len(cells) < 3 {
			continue
		}
		name := cells[0].Text()
		posicion := cells[1].Text()
		precioRaw := cells[2].Text()

		key, ok := matchTrackedProduct(name)
		if !ok {
			continue
		}
		if _, seen := snapshot.Detalles[key]; seen {
			continue
		}

		precio, err := scrape.ParseLocaleNumber(precioRaw)
		if err != nil {
			continue
		}

		snapshot.Detalles[key] = domain.FuturesDetail{Precio: precio, Posicion: posicion}
		switch key {
		case "soja":
			snapshot.Soja = precio
		case "maiz":
			snapshot.Maiz = precio
		case "trigo":
			snapshot.Trigo = precio
		case "girasol":
			snapshot.Girasol = precio
		}
	}

	return snapshot
}

func matchTrackedProduct(name string) (string, bool) {
	folded := scrape.FoldForMatch(name)
	for _, key := range trackedProducts {
		if scrape.MatchesFilter(folded, key) {
			return key, true
		}
	}
	return "", false
}
