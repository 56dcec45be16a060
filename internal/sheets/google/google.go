package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"calgarydogs/internal/core"
	ports "calgarydogs/internal/sheets"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// DefaultRange is read when no range is configured.
const DefaultRange = "Sheet1"

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	rng           string
}

// Ensure interface conformance
var _ ports.TableLoader = (*Client)(nil)

// Config selects the spreadsheet and credentials. One of CredentialsJSON or
// CredentialsFile is required.
type Config struct {
	SpreadsheetID   string
	Range           string
	CredentialsJSON string
	CredentialsFile string
}

// NewClient creates a read-only Sheets client using service account
// credentials.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	spreadsheetID := strings.TrimSpace(cfg.SpreadsheetID)
	if spreadsheetID == "" {
		return nil, errors.New("missing spreadsheet ID")
	}
	rng := strings.TrimSpace(cfg.Range)
	if rng == "" {
		rng = DefaultRange
	}

	credentialsJSON, err := readCredentials(ctx, cfg)
	if err != nil {
		return nil, err
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	slog.InfoContext(ctx, "Google Sheets service created", "spreadsheet_id", spreadsheetID, "range", rng)
	return &Client{svc: svc, spreadsheetID: spreadsheetID, rng: rng}, nil
}

func readCredentials(ctx context.Context, cfg Config) ([]byte, error) {
	inline := strings.TrimSpace(cfg.CredentialsJSON)
	path := strings.TrimSpace(cfg.CredentialsFile)
	switch {
	case inline != "":
		slog.DebugContext(ctx, "Using inline JSON credentials")
		return []byte(inline), nil
	case path != "":
		slog.DebugContext(ctx, "Reading credentials from file", "path", path)
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		return b, nil
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON or GOOGLE_SERVICE_ACCOUNT_FILE)")
	}
}

// Load reads the configured range and parses it as a registration table.
func (c *Client) Load(ctx context.Context) (*core.Table, error) {
	if c.svc == nil {
		return nil, errors.New("sheets service not initialized")
	}
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.rng).
		ValueRenderOption("UNFORMATTED_VALUE").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.rng, err)
	}
	tbl, err := parseValues(resp.Values)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", c.rng, err)
	}
	slog.DebugContext(ctx, "Loaded registration table from Google Sheets",
		"range", c.rng,
		"records", tbl.Len())
	return tbl, nil
}
