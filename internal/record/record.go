// Package record defines the tabular data model shared by the
// standardization and validation layers: an ordered set of named columns,
// each holding one value per row. A nil value represents a null cell.
package record

import (
	"fmt"
	"strings"

	"github.com/aberghammer-analytics/nbastatgo/internal/common"
)

// Column is a single named column of values, one per row.
type Column struct {
	Name   string
	Values []any
}

// Record is an ordered collection of equal-length columns.
type Record struct {
	cols []Column
}

// New builds a record from the given columns. All columns must have the
// same length and distinct names.
func New(cols ...Column) (*Record, error) {
	r := &Record{}
	for _, c := range cols {
		if err := r.AddColumn(c.Name, c.Values); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// MustNew is New for test fixtures and static data; it panics on error.
func MustNew(cols ...Column) *Record {
	r, err := New(cols...)
	if err != nil {
		panic(err)
	}
	return r
}

// NumRows returns the number of rows.
func (r *Record) NumRows() int {
	if len(r.cols) == 0 {
		return 0
	}
	return len(r.cols[0].Values)
}

// NumColumns returns the number of columns.
func (r *Record) NumColumns() int {
	return len(r.cols)
}

// ColumnNames returns the column names in order.
func (r *Record) ColumnNames() []string {
	names := make([]string, len(r.cols))
	for i, c := range r.cols {
		names[i] = c.Name
	}
	return names
}

// Columns returns the columns in order. The slice is shared; callers must
// not reorder or resize it.
func (r *Record) Columns() []Column {
	return r.cols
}

// Has reports whether a column with the exact name exists.
func (r *Record) Has(name string) bool {
	_, ok := r.index(name)
	return ok
}

// Values returns the values of the named column.
func (r *Record) Values(name string) ([]any, error) {
	i, ok := r.index(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", common.ErrColumnNotFound, name)
	}
	return r.cols[i].Values, nil
}

// Lookup finds a column by name ignoring case and returns its actual name.
func (r *Record) Lookup(name string) (string, bool) {
	if _, ok := r.index(name); ok {
		return name, true
	}
	folded := strings.ToLower(name)
	for _, c := range r.cols {
		if strings.ToLower(c.Name) == folded {
			return c.Name, true
		}
	}
	return "", false
}

// AddColumn appends a column. The length must match existing columns and
// the name must be unused.
func (r *Record) AddColumn(name string, values []any) error {
	if _, ok := r.index(name); ok {
		return fmt.Errorf("%w: %q", common.ErrDuplicateColumn, name)
	}
	if len(r.cols) > 0 && len(values) != r.NumRows() {
		return fmt.Errorf("%w: column %q has %d values, want %d",
			common.ErrRaggedColumns, name, len(values), r.NumRows())
	}
	r.cols = append(r.cols, Column{Name: name, Values: values})
	return nil
}

// SetValues replaces the values of an existing column, preserving its
// position. The length must match the record's row count.
func (r *Record) SetValues(name string, values []any) error {
	i, ok := r.index(name)
	if !ok {
		return fmt.Errorf("%w: %q", common.ErrColumnNotFound, name)
	}
	if len(values) != r.NumRows() {
		return fmt.Errorf("%w: column %q has %d values, want %d",
			common.ErrRaggedColumns, name, len(values), r.NumRows())
	}
	r.cols[i].Values = values
	return nil
}

// RenameColumn changes a column's name in place. Renaming onto an existing
// name is rejected so two raw columns never silently merge.
func (r *Record) RenameColumn(oldName, newName string) error {
	i, ok := r.index(oldName)
	if !ok {
		return fmt.Errorf("%w: %q", common.ErrColumnNotFound, oldName)
	}
	if oldName == newName {
		return nil
	}
	if _, ok := r.index(newName); ok {
		return fmt.Errorf("%w: %q", common.ErrDuplicateColumn, newName)
	}
	r.cols[i].Name = newName
	return nil
}

// Clone returns a deep copy. Value slices are copied; values themselves
// are scalars and shared.
func (r *Record) Clone() *Record {
	out := &Record{cols: make([]Column, len(r.cols))}
	for i, c := range r.cols {
		values := make([]any, len(c.Values))
		copy(values, c.Values)
		out.cols[i] = Column{Name: c.Name, Values: values}
	}
	return out
}

// Rows flattens the record into row-oriented maps, mainly for JSON output
// and tool responses.
func (r *Record) Rows() []map[string]any {
	rows := make([]map[string]any, r.NumRows())
	for i := range rows {
		row := make(map[string]any, len(r.cols))
		for _, c := range r.cols {
			row[c.Name] = c.Values[i]
		}
		rows[i] = row
	}
	return rows
}

func (r *Record) index(name string) (int, bool) {
	for i, c := range r.cols {
		if c.Name == name {
			return i, true
		}
	}
	return 0, false
}

// IsNull reports whether a cell value represents a null.
func IsNull(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	return false
}
