package loader

import (
	"bufio"
	"encoding/csv"
	"os"

	"github.com/rotisserie/eris"

	"github.com/innpulsa-research/zasca-cli/internal/table"
)

// WriteCSV writes the table as a flat UTF-8 CSV, header first. With
// withBOM the file starts with a UTF-8 BOM, matching the "utf-8-sig"
// encoding of the rest of the data lake so spreadsheet tools pick the
// encoding up.
func WriteCSV(t *table.Table, path string, withBOM bool) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "loader: create output")
	}
	defer f.Close() //nolint:errcheck

	bw := bufio.NewWriter(f)
	if withBOM {
		if _, err := bw.Write(utf8BOM); err != nil {
			return eris.Wrap(err, "loader: write BOM")
		}
	}

	w := csv.NewWriter(bw)
	if err := w.Write(t.Columns()); err != nil {
		return eris.Wrap(err, "loader: write header")
	}
	for i := 0; i < t.NumRows(); i++ {
		if err := w.Write(t.Row(i)); err != nil {
			return eris.Wrap(err, "loader: write row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrap(err, "loader: flush csv")
	}
	if err := bw.Flush(); err != nil {
		return eris.Wrap(err, "loader: flush output")
	}

	return f.Close()
}
