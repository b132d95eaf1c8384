package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/sheets/v4"
)

// SpreadsheetClient is the row-level surface the repositories need from the
// remote workbook. Row and column indexes are 1-based, the way the sheet UI
// numbers them.
type SpreadsheetClient interface {
	ListWorksheets(ctx context.Context, sheetID string) ([]string, error)
	GetAllRows(ctx context.Context, sheetID, worksheet string) ([][]string, error)
	AppendRow(ctx context.Context, sheetID, worksheet string, values []string) error
	UpdateCell(ctx context.Context, sheetID, worksheet string, row, col int, value string) error
	DeleteRow(ctx context.Context, sheetID, worksheet string, row int) error
}

// GoogleSheetsClient talks to the Google Sheets v4 API with a
// service-account credential.
type GoogleSheetsClient struct {
	svc *sheets.Service
}

func NewGoogleSheetsClient(svc *sheets.Service) *GoogleSheetsClient {
	return &GoogleSheetsClient{svc: svc}
}

func (c *GoogleSheetsClient) ListWorksheets(ctx context.Context, sheetID string) ([]string, error) {
	ss, err := c.svc.Spreadsheets.Get(sheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return nil, mapAPIError(err)
	}

	titles := make([]string, 0, len(ss.Sheets))
	for _, sh := range ss.Sheets {
		if sh.Properties != nil {
			titles = append(titles, sh.Properties.Title)
		}
	}
	return titles, nil
}

func (c *GoogleSheetsClient) GetAllRows(ctx context.Context, sheetID, worksheet string) ([][]string, error) {
	rng := fmt.Sprintf("'%s'", escapeTitle(worksheet))
	resp, err := c.svc.Spreadsheets.Values.Get(sheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, mapAPIError(err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			row[i] = fmt.Sprint(cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (c *GoogleSheetsClient) AppendRow(ctx context.Context, sheetID, worksheet string, values []string) error {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}

	rng := fmt.Sprintf("'%s'!A1", escapeTitle(worksheet))
	_, err := c.svc.Spreadsheets.Values.Append(sheetID, rng, &sheets.ValueRange{
		Values: [][]interface{}{cells},
	}).ValueInputOption("USER_ENTERED").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	return mapAPIError(err)
}

func (c *GoogleSheetsClient) UpdateCell(ctx context.Context, sheetID, worksheet string, row, col int, value string) error {
	rng := fmt.Sprintf("'%s'!%s%d", escapeTitle(worksheet), columnLetter(col), row)
	_, err := c.svc.Spreadsheets.Values.Update(sheetID, rng, &sheets.ValueRange{
		Values: [][]interface{}{{value}},
	}).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	return mapAPIError(err)
}

func (c *GoogleSheetsClient) DeleteRow(ctx context.Context, sheetID, worksheet string, row int) error {
	numericID, err := c.worksheetID(ctx, sheetID, worksheet)
	if err != nil {
		return err
	}

	_, err = c.svc.Spreadsheets.BatchUpdate(sheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    numericID,
					Dimension:  "ROWS",
					StartIndex: int64(row - 1),
					EndIndex:   int64(row),
				},
			},
		}},
	}).Context(ctx).Do()
	return mapAPIError(err)
}

// worksheetID resolves a tab title to the numeric sheet ID the batch API
// wants.
func (c *GoogleSheetsClient) worksheetID(ctx context.Context, sheetID, worksheet string) (int64, error) {
	ss, err := c.svc.Spreadsheets.Get(sheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return 0, mapAPIError(err)
	}

	for _, sh := range ss.Sheets {
		if sh.Properties != nil && sh.Properties.Title == worksheet {
			return sh.Properties.SheetId, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrWorksheetNotFound, worksheet)
}

// mapAPIError folds Google API failures into the repository error taxonomy.
// A 400 on a quoted range means the tab does not exist.
func mapAPIError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 400:
			if strings.Contains(apiErr.Message, "Unable to parse range") {
				return fmt.Errorf("%w: %s", ErrWorksheetNotFound, apiErr.Message)
			}
			return fmt.Errorf("%w: %s", ErrRemoteIO, apiErr.Message)
		case 404:
			return fmt.Errorf("%w: %s", ErrWorksheetNotFound, apiErr.Message)
		case 401, 403:
			return fmt.Errorf("%w: %s", ErrConnection, apiErr.Message)
		default:
			return fmt.Errorf("%w: %s", ErrRemoteIO, apiErr.Message)
		}
	}
	return fmt.Errorf("%w: %v", ErrConnection, err)
}

// escapeTitle doubles single quotes so tab names survive A1 notation.
func escapeTitle(title string) string {
	return strings.ReplaceAll(title, "'", "''")
}

// columnLetter converts a 1-based column index to its A1 letter form.
func columnLetter(col int) string {
	letters := ""
	for col > 0 {
		col--
		letters = string(rune('A'+col%26)) + letters
		col /= 26
	}
	return letters
}
