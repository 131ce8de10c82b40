package spreadsheet

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// XLSXFile reads a sheet from a workbook on the local filesystem
type XLSXFile struct {
	Path  string
	Sheet string
}

// Load implements Source
func (x XLSXFile) Load(_ context.Context) (*Table, error) {
	f, err := excelize.OpenFile(x.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", x.Path, err)
	}
	defer f.Close()
	return readSheet(f, x.Sheet)
}

func (x XLSXFile) String() string {
	return fmt.Sprintf("xlsx:%s#%s", x.Path, x.Sheet)
}

// ReadXLSX reads a sheet from a workbook held in r
func ReadXLSX(r io.Reader, sheet string) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()
	return readSheet(f, sheet)
}

func readSheet(f *excelize.File, sheet string) (*Table, error) {
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("sheet %q not found", sheet)
	}

	// Raw values keep percentages and rounded numbers as stored, not as displayed.
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	raw := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		raw[i] = cells
	}
	return NewTable(raw), nil
}

// S3Object reads a workbook stored in an S3 bucket
type S3Object struct {
	Fetcher ObjectFetcher
	Bucket  string
	Key     string
	Sheet   string
}

// ObjectFetcher downloads an object body
type ObjectFetcher interface {
	GetObject(ctx context.Context, bucket, key string) ([]byte, error)
}

// Load implements Source
func (o S3Object) Load(ctx context.Context) (*Table, error) {
	body, err := o.Fetcher.GetObject(ctx, o.Bucket, o.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to download s3://%s/%s: %w", o.Bucket, o.Key, err)
	}
	return ReadXLSX(bytes.NewReader(body), o.Sheet)
}

func (o S3Object) String() string {
	return fmt.Sprintf("s3://%s/%s#%s", o.Bucket, o.Key, o.Sheet)
}
