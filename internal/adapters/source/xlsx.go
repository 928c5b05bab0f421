package source

import (
	"fmt"
	"slices"

	"github.com/xuri/excelize/v2"

	"github.com/okian/sportsday/internal/domain/model"
)

func loadXLSX(path, sheet string) (*model.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	} else if !slices.Contains(f.GetSheetList(), sheet) {
		return nil, fmt.Errorf("%w: %q in %s", ErrSheetNotFound, sheet, path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return fromRows(rows)
}
