package spreadsheet

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pageza/macro-service/backend/internal/models"
)

func writeWorkbook(t *testing.T, sheet string, rows [][]any) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	for i, row := range rows {
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, addr, &row))
	}
	return f
}

func TestFoodsDropsIncompleteRows(t *testing.T) {
	table := NewTable([][]any{
		{"Item", "% PRT", "%FAT", "% CHO", "Notes"},
		{"Egg", 12.6, 9.5, 0.7, "boiled"},
		{"Butter", "0.9", "81", "0.1"},
		{"", 1.0, 1.0, 1.0},
		{"Mystery", "n/a", 1.0, 1.0},
		{"Short row", 2.0},
	})

	foods, err := table.Foods(DefaultColumns)
	require.NoError(t, err)
	assert.Equal(t, []models.FoodItem{
		{Item: "Egg", Protein: 12.6, Fat: 9.5, Carbs: 0.7},
		{Item: "Butter", Protein: 0.9, Fat: 81, Carbs: 0.1},
	}, foods)
	assert.False(t, table.HasType(DefaultColumns))
}

func TestFoodsReadsTypeColumn(t *testing.T) {
	table := NewTable([][]any{
		{"Type", "Item", "% PRT", "%FAT", "% CHO"},
		{"Protein", "Chicken", 31.0, 3.6, 0.0},
		{nil, "Rice", 2.7, 0.3, 28.0},
	})

	foods, err := table.Foods(DefaultColumns)
	require.NoError(t, err)
	require.Len(t, foods, 2)
	assert.Equal(t, "Protein", foods[0].Type)
	assert.Equal(t, "", foods[1].Type)
	assert.True(t, table.HasType(DefaultColumns))
}

func TestFoodsMissingColumn(t *testing.T) {
	table := NewTable([][]any{{"Item", "% PRT", "%FAT"}})
	_, err := table.Foods(DefaultColumns)
	assert.ErrorContains(t, err, "% CHO")
}

func TestXLSXFileLoad(t *testing.T) {
	f := writeWorkbook(t, "DATABASE", [][]any{
		{"Item", "% PRT", "%FAT", "% CHO"},
		{"Egg", 12.6, 9.5, 0.7},
		{"Almonds", 21.2, 49.9, 21.6},
		{"Blank"},
	})
	path := filepath.Join(t.TempDir(), "Food Calculator.xlsx")
	require.NoError(t, f.SaveAs(path))

	foods, hasType, err := LoadFoods(context.Background(), XLSXFile{Path: path, Sheet: "DATABASE"}, DefaultColumns)
	require.NoError(t, err)
	assert.False(t, hasType)
	assert.Equal(t, []models.FoodItem{
		{Item: "Egg", Protein: 12.6, Fat: 9.5, Carbs: 0.7},
		{Item: "Almonds", Protein: 21.2, Fat: 49.9, Carbs: 21.6},
	}, foods)
}

func TestXLSXFileMissingSheet(t *testing.T) {
	f := writeWorkbook(t, "Other", [][]any{{"Item"}})
	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))

	_, err := XLSXFile{Path: path, Sheet: "DATABASE"}.Load(context.Background())
	assert.ErrorContains(t, err, `sheet "DATABASE" not found`)
}

type fakeFetcher struct {
	body []byte
	err  error
}

func (f fakeFetcher) GetObject(_ context.Context, _, _ string) ([]byte, error) {
	return f.body, f.err
}

func TestS3ObjectLoad(t *testing.T) {
	f := writeWorkbook(t, "DATABASE", [][]any{
		{"Item", "% PRT", "%FAT", "% CHO", "Type"},
		{"Salmon", 20.4, 13.4, 0.0, "Fish"},
	})
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	src := S3Object{Fetcher: fakeFetcher{body: buf.Bytes()}, Bucket: "foods", Key: "calc.xlsx", Sheet: "DATABASE"}
	foods, hasType, err := LoadFoods(context.Background(), src, DefaultColumns)
	require.NoError(t, err)
	assert.True(t, hasType)
	assert.Equal(t, []models.FoodItem{{Item: "Salmon", Protein: 20.4, Fat: 13.4, Carbs: 0, Type: "Fish"}}, foods)

	src.Fetcher = fakeFetcher{err: errors.New("access denied")}
	_, err = src.Load(context.Background())
	assert.ErrorContains(t, err, "access denied")
}

func TestReadXLSXRejectsGarbage(t *testing.T) {
	_, err := ReadXLSX(bytes.NewReader([]byte("not a workbook")), "DATABASE")
	assert.Error(t, err)
}

func TestParseS3URL(t *testing.T) {
	bucket, key, ok := ParseS3URL("s3://food-data/sheets/Food Calculator.xlsx")
	assert.True(t, ok)
	assert.Equal(t, "food-data", bucket)
	assert.Equal(t, "sheets/Food Calculator.xlsx", key)

	for _, in := range []string{"Food Calculator.xlsx", "s3://bucket", "s3:///key", "s3://bucket/"} {
		_, _, ok := ParseS3URL(in)
		assert.False(t, ok, in)
	}
}
