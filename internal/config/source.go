package config

import (
	"rail_assets/internal/sheets"
)

// LoadSource builds the sheet-source configuration from the environment.
// The sheet ID, the service-account credential path and the tab allowlist
// are injected into the sheets client at construction time rather than
// living as package globals, so tests can substitute their own.
func LoadSource() sheets.Config {
	return sheets.Config{
		SheetID:         GetEnv("SHEET_ID", ""),
		CredentialsFile: GetEnv("SHEETS_CREDENTIALS_FILE", "service-account.json"),
		Tabs:            []string{sheets.TabStations, sheets.TabUnits, sheets.TabEarnings},
	}
}
