package tables

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"
	"go-ml.dev/pkg/zorros"
)

/*
ReadCSV reads a table from CSV data with a header record
*/
func ReadCSV(source io.Reader) (*Table, error) {
	reader := csv.NewReader(source)
	header, err := reader.Read()
	if err != nil {
		return nil, zorros.Wrapf(err, "failed to read csv header: %v", err)
	}
	names := make([]string, len(header))
	copy(names, header)
	cols := make([][]string, len(names))
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, zorros.Wrapf(err, "failed to read csv record: %v", err)
		}
		for i := range cols {
			cols[i] = append(cols[i], rec[i])
		}
	}
	return New(names, cols)
}

/*
ReadCSVFile reads a table from a CSV file.
Files with the .xz suffix are decompressed transparently.
*/
func ReadCSVFile(path string) (t *Table, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, zorros.Trace(err)
	}
	defer f.Close()
	var source io.Reader = bufio.NewReader(f)
	if strings.HasSuffix(path, ".xz") {
		if source, err = xz.NewReader(source); err != nil {
			return nil, zorros.Wrapf(err, "failed to open xz stream: %v", err)
		}
	}
	return ReadCSV(source)
}
