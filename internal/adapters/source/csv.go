package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/okian/sportsday/internal/domain/model"
)

func loadCSVFile(path string) (*model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return LoadCSV(f)
}

// LoadCSV reads a CSV export of the form responses.
func LoadCSV(r io.Reader) (*model.Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return fromRows(rows)
}
