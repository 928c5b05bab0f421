package source

import "errors"

// Sentinel kinds for record source errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
	ErrEmptySheet        = errors.New("dataset has no header row")
	ErrMissingColumn     = errors.New("dataset is missing required columns")
	ErrSheetNotFound     = errors.New("worksheet not found")
)
