// Package sheets pulls the logical tables (tabs) of the commercial-assets
// Google Sheet and hands them on as ordered records with clean, unique,
// lower-cased keys. All of the source's header mess (duplicate columns,
// inconsistent casing, padding) is resolved here so the sync mappers see one
// consistent convention.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

const (
	TabStations = "Stations"
	TabUnits    = "Units"
	TabEarnings = "Earnings"
)

// ErrUnknownTab means the caller asked for a tab outside the configured
// allowlist. It is a configuration error raised before any network access.
var ErrUnknownTab = errors.New("unknown sheet tab")

// FetchError wraps whatever went wrong talking to the remote sheet
// (auth, not-found, transient transport) into one error type so callers
// never depend on transport detail.
type FetchError struct {
	Tab string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("could not fetch sheet tab %q", e.Tab)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Record is one sheet row keyed by trimmed, lower-cased header names.
// Duplicate headers are disambiguated with _2, _3, ... suffixes in
// encounter order.
type Record map[string]string

// Source is what the sync layer consumes; tests substitute a fake.
type Source interface {
	Fetch(ctx context.Context, tab string) ([]Record, error)
}

// Config carries everything the adapter needs, injected at construction so
// tests and alternate sheets never fight over process-wide globals.
type Config struct {
	SheetID         string
	CredentialsFile string
	Tabs            []string
}

func (c Config) allows(tab string) bool {
	for _, t := range c.Tabs {
		if t == tab {
			return true
		}
	}
	return false
}

// Client reads tabs from one spreadsheet through the Sheets API with a
// read-only service-account credential.
type Client struct {
	cfg Config
	svc *sheetsapi.Service
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(sheetsapi.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Client{cfg: cfg, svc: svc}, nil
}

// Fetch returns every data row of the named tab, in sheet order.
func (c *Client) Fetch(ctx context.Context, tab string) ([]Record, error) {
	if !c.cfg.allows(tab) {
		return nil, fmt.Errorf("%w %q, valid tabs are %v", ErrUnknownTab, tab, c.cfg.Tabs)
	}

	resp, err := c.svc.Spreadsheets.Values.Get(c.cfg.SheetID, tab).Context(ctx).Do()
	if err != nil {
		return nil, &FetchError{Tab: tab, Err: err}
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}

	headers := dedupeHeaders(resp.Values[0])
	return buildRecords(headers, resp.Values[1:]), nil
}

// buildRecords maps each data row against the headers, stopping at the last
// non-empty row. Interior blank rows are kept so callers count them as
// skipped, same as any other unusable row.
func buildRecords(headers []string, rows [][]interface{}) []Record {
	records := make([]Record, 0, len(rows))
	last := 0
	for _, row := range rows {
		rec, empty := rowRecord(headers, row)
		records = append(records, rec)
		if !empty {
			last = len(records)
		}
	}
	return records[:last]
}

// dedupeHeaders normalizes the header row to trimmed lower-case and renames
// repeated headers "x", "x_2", "x_3" in encounter order, so every record has
// unique keys even though the sheet has none.
func dedupeHeaders(row []interface{}) []string {
	seen := map[string]int{}
	headers := make([]string, len(row))
	for i, cell := range row {
		h := strings.ToLower(strings.TrimSpace(cellString(cell)))
		seen[h]++
		if seen[h] > 1 {
			h = fmt.Sprintf("%s_%d", h, seen[h])
		}
		headers[i] = h
	}
	return headers
}

// rowRecord associates a data row positionally with the deduplicated
// headers. Cells beyond the header width are dropped; missing trailing
// cells become "".
func rowRecord(headers []string, row []interface{}) (Record, bool) {
	rec := make(Record, len(headers))
	empty := true
	for i, h := range headers {
		v := ""
		if i < len(row) {
			v = cellString(row[i])
		}
		if strings.TrimSpace(v) != "" {
			empty = false
		}
		rec[h] = v
	}
	return rec, empty
}

func cellString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
