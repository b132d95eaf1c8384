package repositories

import (
	"context"
	"fmt"
	"sort"
)

// fakeSpreadsheetClient is an in-memory workbook for repository tests.
type fakeSpreadsheetClient struct {
	sheets    map[string][][]string
	appendErr map[string]error // injected per-worksheet append failure
}

func newFakeClient() *fakeSpreadsheetClient {
	return &fakeSpreadsheetClient{
		sheets:    map[string][][]string{},
		appendErr: map[string]error{},
	}
}

func (f *fakeSpreadsheetClient) ListWorksheets(_ context.Context, _ string) ([]string, error) {
	titles := make([]string, 0, len(f.sheets))
	for title := range f.sheets {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	return titles, nil
}

func (f *fakeSpreadsheetClient) GetAllRows(_ context.Context, _, worksheet string) ([][]string, error) {
	rows, ok := f.sheets[worksheet]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrWorksheetNotFound, worksheet)
	}

	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

func (f *fakeSpreadsheetClient) AppendRow(_ context.Context, _, worksheet string, values []string) error {
	if err := f.appendErr[worksheet]; err != nil {
		return err
	}
	rows, ok := f.sheets[worksheet]
	if !ok {
		return fmt.Errorf("%w: %q", ErrWorksheetNotFound, worksheet)
	}
	f.sheets[worksheet] = append(rows, append([]string(nil), values...))
	return nil
}

func (f *fakeSpreadsheetClient) UpdateCell(_ context.Context, _, worksheet string, row, col int, value string) error {
	rows, ok := f.sheets[worksheet]
	if !ok {
		return fmt.Errorf("%w: %q", ErrWorksheetNotFound, worksheet)
	}
	if row < 1 || row > len(rows) {
		return fmt.Errorf("%w: row %d out of range", ErrRemoteIO, row)
	}

	for len(rows[row-1]) < col {
		rows[row-1] = append(rows[row-1], "")
	}
	rows[row-1][col-1] = value
	return nil
}

func (f *fakeSpreadsheetClient) DeleteRow(_ context.Context, _, worksheet string, row int) error {
	rows, ok := f.sheets[worksheet]
	if !ok {
		return fmt.Errorf("%w: %q", ErrWorksheetNotFound, worksheet)
	}
	if row < 1 || row > len(rows) {
		return fmt.Errorf("%w: row %d out of range", ErrRemoteIO, row)
	}

	f.sheets[worksheet] = append(rows[:row-1], rows[row:]...)
	return nil
}
