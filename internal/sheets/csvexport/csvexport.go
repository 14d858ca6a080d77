// Package csvexport fetches sheet tabs through the public CSV export endpoint
// of a spreadsheet published to the web. No credentials are involved; the
// document and tab identifiers are opaque lookup keys.
package csvexport

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"kas/internal/sheets"
)

const exportURL = "https://docs.google.com/spreadsheets/d/%s/export?format=csv&gid=%s"

type Client struct {
	http    *http.Client
	sheetID string
}

var _ sheets.Source = (*Client)(nil)

func New(sheetID string) *Client {
	return &Client{
		http:    newHTTPClient(),
		sheetID: sheetID,
	}
}

// newHTTPClient builds a client with pooling and bounded timeouts. The export
// endpoint sits behind the same Google frontends for every tab, so idle
// keep-alive connections pay off across the paired dashboard fetches.
func newHTTPClient() *http.Client {
	dialer := &net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	transport := &http.Transport{
		DialContext:           dialer.DialContext,
		MaxIdleConns:          10,
		MaxIdleConnsPerHost:   4,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 15 * time.Second,
		ForceAttemptHTTP2:     true,
	}
	return &http.Client{
		Transport: transport,
		Timeout:   30 * time.Second,
	}
}

// Fetch downloads and parses one tab. Rows are returned ragged, exactly as
// the sheet exports them; cell interpretation is the caller's business.
func (c *Client) Fetch(ctx context.Context, gid string) ([][]string, error) {
	url := fmt.Sprintf(exportURL, c.sheetID, gid)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build export request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch csv (gid=%s): %w", gid, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("fetch csv (gid=%s): unexpected status %s", gid, resp.Status)
	}

	return parseCSV(resp.Body)
}

// parseCSV reads the body leniently: user-edited sheets export ragged rows
// and the occasional unbalanced quote, neither of which should sink the pass.
func parseCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return rows, nil
}
