package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"primecount/internal/domain"
)

// HTTP publishes runs to a collector over JSON/HTTP.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for the collector at base. A nil client uses
// http.DefaultClient.
func NewHTTP(base string, client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: client}
}

// PublishRun posts run to /runs.
func (c *HTTP) PublishRun(ctx context.Context, run domain.Comparison) error {
	return c.post(ctx, "/runs", run)
}

// FetchRuns returns every run the collector holds.
func (c *HTTP) FetchRuns(ctx context.Context) ([]domain.Comparison, error) {
	var runs []domain.Comparison
	if err := c.getJSON(ctx, "/runs", &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

func (c *HTTP) post(ctx context.Context, path string, in any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("relay post %s: %s", c.Base+path, resp.Status)
	}
	return nil
}

func (c *HTTP) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("relay get %s: %s", c.Base+path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

var _ domain.Publisher = (*HTTP)(nil)
