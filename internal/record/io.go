package record

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aberghammer-analytics/nbastatgo/internal/common"
)

// DecodeJSON parses a JSON document into a record. Two orientations are
// accepted: an array of row objects (the shape the stats API returns) and
// an object of column arrays. Column order follows first appearance in
// the document; rows missing a column get a null cell.
func DecodeJSON(data []byte) (*Record, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return &Record{}, nil
	}
	switch trimmed[0] {
	case '[':
		return decodeRowsJSON(trimmed)
	case '{':
		return decodeColumnsJSON(trimmed)
	default:
		return nil, fmt.Errorf("decode json: expected array or object, got %q", trimmed[0])
	}
}

func decodeRowsJSON(data []byte) (*Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := expectDelim(dec, '['); err != nil {
		return nil, err
	}

	r := &Record{}
	rowCount := 0
	for dec.More() {
		if err := expectDelim(dec, '{'); err != nil {
			return nil, fmt.Errorf("row %d: %w", rowCount, err)
		}
		seen := make(map[string]bool)
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", rowCount, err)
			}
			key, ok := tok.(string)
			if !ok {
				return nil, fmt.Errorf("row %d: expected object key, got %v", rowCount, tok)
			}
			var raw any
			if err := dec.Decode(&raw); err != nil {
				return nil, fmt.Errorf("row %d, column %q: %w", rowCount, key, err)
			}
			value := normalizeJSONValue(raw)
			if !r.Has(key) {
				// Column first seen mid-stream: backfill earlier rows.
				values := make([]any, rowCount, rowCount+1)
				r.cols = append(r.cols, Column{Name: key, Values: values})
			}
			i, _ := r.index(key)
			r.cols[i].Values = append(r.cols[i].Values, value)
			seen[key] = true
		}
		if err := expectDelim(dec, '}'); err != nil {
			return nil, fmt.Errorf("row %d: %w", rowCount, err)
		}
		rowCount++
		for i := range r.cols {
			if !seen[r.cols[i].Name] {
				r.cols[i].Values = append(r.cols[i].Values, nil)
			}
		}
	}
	if err := expectDelim(dec, ']'); err != nil {
		return nil, err
	}
	return r, nil
}

func decodeColumnsJSON(data []byte) (*Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	r := &Record{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		var raw []any
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("column %q: %w", key, err)
		}
		values := make([]any, len(raw))
		for i, v := range raw {
			values[i] = normalizeJSONValue(v)
		}
		if err := r.AddColumn(key, values); err != nil {
			return nil, err
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return r, nil
}

// EncodeJSON renders a record as an indented array of row objects,
// keeping column order. Date values are written as plain dates since
// standardized date columns carry no time of day.
func EncodeJSON(r *Record) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("[")
	for i := 0; i < r.NumRows(); i++ {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  {")
		for j, c := range r.cols {
			if j > 0 {
				buf.WriteString(",")
			}
			buf.WriteString("\n    ")
			key, err := json.Marshal(c.Name)
			if err != nil {
				return nil, fmt.Errorf("encode column name %q: %w", c.Name, err)
			}
			buf.Write(key)
			buf.WriteString(": ")
			v := c.Values[i]
			if t, ok := v.(time.Time); ok {
				v = t.Format("2006-01-02")
			}
			cell, err := json.Marshal(v)
			if err != nil {
				return nil, fmt.Errorf("encode column %q row %d: %w", c.Name, i, err)
			}
			buf.Write(cell)
		}
		buf.WriteString("\n  }")
	}
	if r.NumRows() > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("]")
	return buf.Bytes(), nil
}

// FromCSV reads a headered CSV stream into a record. Cells stay strings;
// empty cells become nulls. Type coercion is the standardizer's job.
func FromCSV(reader io.Reader) (*Record, error) {
	cr := csv.NewReader(reader)
	header, err := cr.Read()
	if err == io.EOF {
		return &Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	r := &Record{}
	for _, name := range header {
		if err := r.AddColumn(strings.TrimSpace(name), nil); err != nil {
			return nil, err
		}
	}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		for i := range r.cols {
			var v any
			if i < len(row) && row[i] != "" {
				v = row[i]
			}
			r.cols[i].Values = append(r.cols[i].Values, v)
		}
	}
	return r, nil
}

// ToCSV writes a record as headered CSV.
func ToCSV(writer io.Writer, r *Record) error {
	cw := csv.NewWriter(writer)
	if err := cw.Write(r.ColumnNames()); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	row := make([]string, r.NumColumns())
	for i := 0; i < r.NumRows(); i++ {
		for j, c := range r.cols {
			row[j] = formatCell(c.Values[i])
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// LoadFile reads a record from a .json or .csv file.
func LoadFile(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return DecodeJSON(data)
	case ".csv":
		return FromCSV(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("load %s: %w", path, common.ErrUnsupportedInput)
	}
}

// SaveFile writes a record to a .json or .csv file.
func SaveFile(path string, r *Record) error {
	var buf bytes.Buffer
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err := EncodeJSON(r)
		if err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
		buf.Write(data)
		buf.WriteByte('\n')
	case ".csv":
		if err := ToCSV(&buf, r); err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
	default:
		return fmt.Errorf("save %s: %w", path, common.ErrUnsupportedInput)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func normalizeJSONValue(v any) any {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
		if f, err := n.Float64(); err == nil {
			return f
		}
		return n.String()
	default:
		return v
	}
}

func formatCell(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case time.Time:
		return c.Format("2006-01-02")
	case float64:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.6f", c), "0"), ".")
	default:
		return fmt.Sprint(c)
	}
}
