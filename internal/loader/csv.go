// Package loader materializes input datasets into in-memory tables and
// writes the final panel artifact. Loaders are collaborators of the
// core: all file I/O stops here.
package loader

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"

	"github.com/rotisserie/eris"

	"github.com/innpulsa-research/zasca-cli/internal/table"
)

// utf8BOM is the byte-order mark the upstream artifacts carry (they are
// written "utf-8-sig").
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadCSV loads a CSV file into a table. The first row is the header; a
// leading UTF-8 BOM is tolerated and stripped. Rows whose width differs
// from the header violate the input contract and abort the load.
func ReadCSV(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "loader: open csv")
	}
	defer f.Close() //nolint:errcheck

	return readCSV(f)
}

func readCSV(r io.Reader) (*table.Table, error) {
	br := bufio.NewReader(r)
	if peek, err := br.Peek(len(utf8BOM)); err == nil && string(peek) == string(utf8BOM) {
		if _, err := br.Discard(len(utf8BOM)); err != nil {
			return nil, eris.Wrap(err, "loader: discard BOM")
		}
	}

	reader := csv.NewReader(br)
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, eris.New("loader: csv is empty")
	}
	if err != nil {
		return nil, eris.Wrap(err, "loader: read csv header")
	}

	t, err := table.New(header)
	if err != nil {
		return nil, eris.Wrap(err, "loader: csv header")
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "loader: read csv row")
		}
		if err := t.AppendRow(record); err != nil {
			return nil, eris.Wrap(err, "loader: csv row")
		}
	}

	return t, nil
}
