// Package provider contains one source adapter per upstream site. Each
// adapter performs a single outbound fetch per call and reshapes the page
// into domain records; nothing is cached or retried.
package provider

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"agroapi/internal/domain"
	"agroapi/internal/scrape"
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}

// fetchDocument performs one GET and parses the body as HTML. Transport
// failures and non-2xx responses both surface as a FetchError.
func fetchDocument(ctx context.Context, client *http.Client, url string) (*scrape.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &domain.FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := client.Do(req)
	if err != nil {
		return nil, &domain.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.FetchError{URL: url, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	doc, err := scrape.NewDocument(resp.Body)
	if err != nil {
		return nil, &domain.FetchError{URL: url, Err: err}
	}
	return doc, nil
}
