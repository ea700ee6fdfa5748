package provider

import (
	"context"
	"errors"
	"testing"

	"agroapi/internal/domain"
	"agroapi/internal/scrape"

	"go.opentelemetry.io/otel/trace"
)

const futuresFixture = `
<html><body>
  <table><tbody>
    <tr><td>Soja</td><td>Mayo 2024</td><td>382,50</td></tr>
    <tr><td>Soja</td><td>Julio 2024</td><td>390,00</td></tr>
    <tr><td>Maíz</td><td>Mayo 2024</td><td>175,25</td></tr>
    <tr><td>Trigo</td><td>Mayo 2024</td><td>210,00</td></tr>
    <tr><td>Cebada</td><td>Mayo 2024</td><td>190,00</td></tr>
  </tbody></table>
</body></html>`

func TestBuildFuturesSnapshotFirstOccurrenceWins(t *testing.T) {
	doc, err := scrape.NewDocumentFromString(futuresFixture)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}

	snap := buildFuturesSnapshot(doc, DefaultFuturesConfig())

	if snap.Soja != 382.50 {
		t.Errorf("soja = %v, want first row 382.50", snap.Soja)
	}
	if snap.Maiz != 175.25 || snap.Trigo != 210.00 {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
	if snap.Girasol != 0 {
		t.Errorf("girasol = %v, want 0", snap.Girasol)
	}
	if detail := snap.Detalles["soja"]; detail.Posicion != "Mayo 2024" {
		t.Errorf("soja posicion = %q, want Mayo 2024", detail.Posicion)
	}
	if _, ok := snap.Detalles["girasol"]; ok {
		t.Error("girasol must not appear in detalles when never listed")
	}
	// Cebada is not a tracked product.
	if len(snap.Detalles) != 3 {
		t.Errorf("expected 3 detail entries, got %d", len(snap.Detalles))
	}
}

type fakeSession struct {
	html       string
	err        error
	closeCalls int
}

func (s *fakeSession) HTML(url string) (string, error) { return s.html, s.err }
func (s *fakeSession) Close()                          { s.closeCalls++ }

func withFakeSession(t *testing.T, s *fakeSession) {
	t.Helper()
	orig := newRenderSession
	newRenderSession = func(FuturesConfig) renderSession { return s }
	t.Cleanup(func() { newRenderSession = orig })
}

func TestFetchSnapshotTearsDownSession(t *testing.T) {
	session := &fakeSession{html: futuresFixture}
	withFakeSession(t, session)

	p := NewFuturesProvider(DefaultFuturesConfig(), trace.NewNoopTracerProvider().Tracer("test"))
	snap, err := p.FetchSnapshot(context.Background())
	if err != nil {
		t.Fatalf("FetchSnapshot: %v", err)
	}
	if snap.Soja != 382.50 {
		t.Errorf("soja = %v", snap.Soja)
	}
	if session.closeCalls != 1 {
		t.Errorf("session closed %d times, want exactly 1", session.closeCalls)
	}
}

func TestFetchSnapshotTearsDownSessionOnFailure(t *testing.T) {
	session := &fakeSession{err: errors.New("navigation timeout")}
	withFakeSession(t, session)

	p := NewFuturesProvider(DefaultFuturesConfig(), trace.NewNoopTracerProvider().Tracer("test"))
	_, err := p.FetchSnapshot(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	var fetchErr *domain.FetchError
	if !errors.As(err, &fetchErr) {
		t.Errorf("error is %T, want *FetchError", err)
	}
	if session.closeCalls != 1 {
		t.Errorf("session closed %d times, want exactly 1", session.closeCalls)
	}
}
