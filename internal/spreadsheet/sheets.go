package spreadsheet

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsSource reads the food table from a Google Sheets document
type SheetsSource struct {
	service       *sheets.Service
	SpreadsheetID string
	Sheet         string
}

// NewSheetsSource creates a Sheets API backed source using a service account credentials file
func NewSheetsSource(ctx context.Context, credentialsFile, spreadsheetID, sheet string) (*SheetsSource, error) {
	service, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &SheetsSource{
		service:       service,
		SpreadsheetID: spreadsheetID,
		Sheet:         sheet,
	}, nil
}

// Load implements Source
func (s *SheetsSource) Load(ctx context.Context) (*Table, error) {
	resp, err := s.service.Spreadsheets.Values.Get(s.SpreadsheetID, s.Sheet+"!A:Z").
		ValueRenderOption("UNFORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}

	return NewTable(resp.Values), nil
}

func (s *SheetsSource) String() string {
	return fmt.Sprintf("sheets:%s#%s", s.SpreadsheetID, s.Sheet)
}
