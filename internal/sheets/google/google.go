// Package google reads sheet tabs through the authenticated Sheets API, for
// spreadsheets that are not published to the web. Tabs are still addressed by
// gid: the numeric gid in a sheet URL is the API's sheetId property, so the
// client resolves gids to sheet titles once via spreadsheet metadata.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"kas/internal/sheets"
)

// Year-scoped transaction tabs only ever use columns A-F and the pipeline
// caps at 500 rows, so one fixed range covers every tab we read.
const fetchRange = "A1:F500"

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string

	mu     sync.Mutex
	titles map[string]string // gid -> sheet title
}

var _ sheets.Source = (*Client)(nil)

// NewFromEnv creates a read-only Sheets client.
// Required: GOOGLE_SHEET_ID.
// Credentials: GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or
// GOOGLE_APPLICATION_CREDENTIALS.
func NewFromEnv(ctx context.Context) (*Client, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SHEET_ID")
	}
	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		titles:        make(map[string]string),
	}, nil
}

func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error
	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return svc, nil
}

// Fetch reads one tab's cell grid, as strings. Trailing cells the API omits
// stay omitted; rows come back ragged just like the CSV export.
func (c *Client) Fetch(ctx context.Context, gid string) ([][]string, error) {
	title, err := c.sheetTitle(ctx, gid)
	if err != nil {
		return nil, err
	}
	rng := fmt.Sprintf("'%s'!%s", title, fetchRange)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rng, err)
	}
	rows := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		rows[i] = toStrings(row)
	}
	return rows, nil
}

// sheetTitle resolves a gid to its tab title, caching the whole mapping on
// first use so repeated fetches cost one metadata call total.
func (c *Client) sheetTitle(ctx context.Context, gid string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if title, ok := c.titles[gid]; ok {
		return title, nil
	}
	meta, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("spreadsheet metadata: %w", err)
	}
	for _, sh := range meta.Sheets {
		if sh.Properties == nil {
			continue
		}
		c.titles[strconv.FormatInt(sh.Properties.SheetId, 10)] = sh.Properties.Title
	}
	title, ok := c.titles[gid]
	if !ok {
		slog.DebugContext(ctx, "Sheet tab not found in spreadsheet", "gid", gid, "tabs", len(meta.Sheets))
		return "", fmt.Errorf("no sheet tab with gid %s", gid)
	}
	return title, nil
}

func toStrings(in []interface{}) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = fmt.Sprint(v)
	}
	return out
}
