// Package model contains domain models passed between layers.
package model

// Record is one registration row: column header -> cell text. Blank cells
// are "" and missing columns read as "". Records are never mutated after
// load; derive copies with Project.
type Record map[string]string

// Get returns the value of field, or "" when the record lacks it.
func (r Record) Get(field string) string {
	return r[field]
}

// Project copies the named fields into a new record. Fields the record
// lacks are included as "".
func (r Record) Project(fields ...string) Record {
	out := make(Record, len(fields))
	for _, f := range fields {
		out[f] = r[f]
	}
	return out
}

// Dataset is the registration table as loaded from the record source.
type Dataset struct {
	// Columns holds the trimmed headers in sheet order.
	Columns []string
	Records []Record
}

// HasColumn reports whether name is one of the dataset's columns.
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}
