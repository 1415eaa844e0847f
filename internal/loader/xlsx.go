package loader

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/innpulsa-research/zasca-cli/internal/table"
)

// ReadXLSX loads a worksheet into a table. The first row is the header.
// If sheetName is empty the first sheet is used. Short rows are padded
// to the header width: spreadsheet exports routinely omit trailing
// empty cells.
func ReadXLSX(path, sheetName string) (*table.Table, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "loader: open xlsx")
	}

	var sheet *xlsx.Sheet
	if sheetName != "" {
		s, ok := f.Sheet[sheetName]
		if !ok {
			return nil, eris.Errorf("loader: sheet %q not found", sheetName)
		}
		sheet = s
	} else {
		if len(f.Sheets) == 0 {
			return nil, eris.New("loader: xlsx has no sheets")
		}
		sheet = f.Sheets[0]
	}

	if len(sheet.Rows) == 0 {
		return nil, eris.New("loader: xlsx sheet is empty")
	}

	header := rowToStrings(sheet.Rows[0], 0)
	t, err := table.New(header)
	if err != nil {
		return nil, eris.Wrap(err, "loader: xlsx header")
	}

	for _, row := range sheet.Rows[1:] {
		cells := rowToStrings(row, len(header))
		if len(cells) > len(header) {
			cells = cells[:len(header)]
		}
		if err := t.AppendRow(cells); err != nil {
			return nil, eris.Wrap(err, "loader: xlsx row")
		}
	}

	return t, nil
}

// rowToStrings renders a row's cells, padded to at least width cells.
func rowToStrings(row *xlsx.Row, width int) []string {
	n := len(row.Cells)
	if n < width {
		n = width
	}
	cells := make([]string, n)
	for j, cell := range row.Cells {
		cells[j] = cell.String()
	}
	return cells
}
