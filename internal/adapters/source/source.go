// Package source loads the registration sheet into an immutable dataset.
package source

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/okian/sportsday/internal/domain/model"
)

// Option applies a configuration option to a load.
type Option func(*options)

type options struct {
	sheet string
}

// WithSheet selects the worksheet of an xlsx workbook. The first sheet is
// used when empty.
func WithSheet(name string) Option {
	return func(o *options) {
		o.sheet = strings.TrimSpace(name)
	}
}

// Load reads path according to its extension (.xlsx or .csv).
func Load(ctx context.Context, path string, opts ...Option) (*model.Dataset, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return loadXLSX(path, o.sheet)
	case ".csv":
		return loadCSVFile(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// RequireColumns fails with ErrMissingColumn naming every absent column.
func RequireColumns(ds *model.Dataset, names ...string) error {
	var missing []string
	for _, n := range names {
		if !ds.HasColumn(n) {
			missing = append(missing, strconv.Quote(n))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

// fromRows turns a header row plus data rows into a dataset. Headers are
// trimmed, blank headers become "Unnamed: N" and repeated headers get a
// ".1", ".2" suffix. Short rows are padded with blanks and rows with no
// content at all are skipped.
func fromRows(rows [][]string) (*model.Dataset, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}
	cols := headers(rows[0])
	ds := &model.Dataset{Columns: cols, Records: make([]model.Record, 0, len(rows)-1)}

	for _, row := range rows[1:] {
		if blank(row) {
			continue
		}
		rec := make(model.Record, len(cols))
		for i, c := range cols {
			if i < len(row) {
				rec[c] = row[i]
			} else {
				rec[c] = ""
			}
		}
		ds.Records = append(ds.Records, rec)
	}
	return ds, nil
}

func headers(row []string) []string {
	seen := make(map[string]int, len(row))
	out := make([]string, len(row))
	for i, h := range row {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if h == "" {
			h = "Unnamed: " + strconv.Itoa(i)
		}
		if n, dup := seen[h]; dup {
			base := h
			for {
				n++
				h = base + "." + strconv.Itoa(n)
				if _, taken := seen[h]; !taken {
					break
				}
			}
			seen[base] = n
		}
		seen[h] = 0
		out[i] = h
	}
	return out
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
