package spreadsheet

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/pageza/macro-service/backend/internal/models"
	"github.com/pageza/macro-service/backend/internal/types"
)

// Columns names the header cells that hold each food attribute
type Columns struct {
	Item    string
	Protein string
	Fat     string
	Carbs   string
	Type    string
}

// DefaultColumns matches the layout of the food calculator workbook
var DefaultColumns = Columns{
	Item:    "Item",
	Protein: "% PRT",
	Fat:     "%FAT",
	Carbs:   "% CHO",
	Type:    "Type",
}

// Table is a sheet as a header row plus data rows. Cells hold float64,
// string or bool values depending on the source.
type Table struct {
	Header []string
	Rows   [][]any
}

// NewTable splits raw rows into a header and data rows
func NewTable(raw [][]any) *Table {
	if len(raw) == 0 {
		return &Table{}
	}
	header := make([]string, len(raw[0]))
	for i, cell := range raw[0] {
		header[i] = strings.TrimSpace(types.ToText(cell))
	}
	return &Table{Header: header, Rows: raw[1:]}
}

// Foods converts the table into food items. Rows with an empty or
// non-numeric value in any of the required columns are dropped.
func (t *Table) Foods(cols Columns) ([]models.FoodItem, error) {
	idx := make(map[string]int, len(t.Header))
	for i, name := range t.Header {
		if _, seen := idx[name]; !seen {
			idx[name] = i
		}
	}

	required := []string{cols.Item, cols.Protein, cols.Fat, cols.Carbs}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("column %q not found in sheet header", name)
		}
	}
	typeIdx, hasType := idx[cols.Type]
	if cols.Type == "" {
		hasType = false
	}

	foods := make([]models.FoodItem, 0, len(t.Rows))
	dropped := 0
	for _, row := range t.Rows {
		item := strings.TrimSpace(types.ToText(cell(row, idx[cols.Item])))
		protein, okP := types.ToFloat(cell(row, idx[cols.Protein]))
		fat, okF := types.ToFloat(cell(row, idx[cols.Fat]))
		carbs, okC := types.ToFloat(cell(row, idx[cols.Carbs]))
		if item == "" || !okP || !okF || !okC {
			dropped++
			continue
		}

		food := models.FoodItem{Item: item, Protein: protein, Fat: fat, Carbs: carbs}
		if hasType {
			food.Type = strings.TrimSpace(types.ToText(cell(row, typeIdx)))
		}
		foods = append(foods, food)
	}

	if dropped > 0 {
		log.Debug().Int("dropped", dropped).Msg("Skipped incomplete spreadsheet rows")
	}
	return foods, nil
}

// HasType reports whether the header carries the optional type column
func (t *Table) HasType(cols Columns) bool {
	if cols.Type == "" {
		return false
	}
	for _, name := range t.Header {
		if name == cols.Type {
			return true
		}
	}
	return false
}

func cell(row []any, i int) any {
	if i < 0 || i >= len(row) {
		return nil
	}
	return row[i]
}
