// Copyright 2026 The go-athena Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package athena

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// Value holds a single cell of a query result. Its underlying type depends
// on the column type reported by the service: float64 for numeric columns,
// string for character columns, bool for boolean, time.Time for date and
// timestamp columns, []Value for arrays, and the output of encoding/json
// for json columns. Cells the service reports as NULL decode to nil.
type Value = interface{}

// A Row maps column names to decoded cell values. If the result set
// declares two columns with the same name, the later column silently
// overwrites the earlier one.
type Row map[string]Value

// Column describes one column of a result set: its name and the type tag
// reported by the service. The tag selects the parser applied to every
// cell in that column position.
type Column struct {
	Name string
	Type string
}

type parseFunc func(string) (Value, error)

// parsers keys every supported column type tag (lowercased) to its cell
// parser. Tags absent from this table have no supported decoding; binding
// a column with such a tag aborts the query.
var parsers = map[string]parseFunc{
	"integer":                  parseNumber,
	"tinyint":                  parseNumber,
	"smallint":                 parseNumber,
	"bigint":                   parseNumber,
	"float":                    parseNumber,
	"double":                   parseNumber,
	"decimal":                  parseNumber,
	"char":                     parseString,
	"varchar":                  parseString,
	"string":                   parseString,
	"boolean":                  parseBool,
	"date":                     parseTime,
	"timestamp":                parseTime,
	"timestamp with time zone": parseTime,
	"array":                    parseArray,
	"json":                     parseJSON,
}

// parserFor returns the parser bound to the given column type tag.
// Unrecognized tags, including binary, map and struct columns, yield an
// UnsupportedTypeError.
func parserFor(typ string) (parseFunc, error) {
	if p, ok := parsers[strings.ToLower(typ)]; ok {
		return p, nil
	}
	return nil, &UnsupportedTypeError{Type: typ}
}

func parseNumber(s string) (Value, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return f, nil
}

func parseString(s string) (Value, error) {
	return s, nil
}

// parseBool reports true only for the truthy spellings "true", "t", "yes"
// and "1", compared case-insensitively. Every other input, valid boolean
// syntax or not, decodes to false. Callers depend on this permissive
// behavior, so it never returns an error.
func parseBool(s string) (Value, error) {
	switch strings.ToLower(s) {
	case "true", "t", "yes", "1":
		return true, nil
	}
	return false, nil
}

// timeLayouts are tried in order by parseTimestamp. The service renders
// timestamps as "2006-01-02 15:04:05.999"; the remaining layouts cover
// zoned timestamps, RFC3339 input and bare years.
var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05.999999999 -0700",
	time.RFC3339,
	"2006",
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	// Date-only cells ("2006-01-02" and loose variants like "2006-1-2").
	if d, err := civil.ParseDate(s); err == nil {
		return d.In(time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
}

func parseTime(s string) (Value, error) {
	t, err := parseTimestamp(s)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// parseArray decodes the service's textual array rendering: one pair of
// enclosing brackets around elements joined by ", ". Elements that parse
// as numbers become float64; everything else stays a string. Empty input
// decodes to an empty slice.
func parseArray(s string) (Value, error) {
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	if s == "" {
		return []Value{}, nil
	}
	parts := strings.Split(s, ", ")
	vals := make([]Value, 0, len(parts))
	for _, p := range parts {
		if f, err := strconv.ParseFloat(p, 64); err == nil {
			vals = append(vals, f)
		} else {
			vals = append(vals, p)
		}
	}
	return vals, nil
}

func parseJSON(s string) (Value, error) {
	var v interface{}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidJSON, s)
	}
	return v, nil
}

// bindColumns derives column descriptors from result metadata, verifying
// every reported type tag has a parser. It runs once per query; the first
// unsupported tag aborts the binding.
func bindColumns(metadata []columnMeta) ([]Column, error) {
	cols := make([]Column, 0, len(metadata))
	for _, m := range metadata {
		if _, err := parserFor(m.Type); err != nil {
			return nil, err
		}
		cols = append(cols, Column{Name: m.Name, Type: m.Type})
	}
	return cols, nil
}

// decodeRow decodes one raw result row positionally: the Nth column
// descriptor interprets the Nth cell. Missing and NULL cells decode to nil.
func decodeRow(cols []Column, cells []*string) (Row, error) {
	row := make(Row, len(cols))
	for i, col := range cols {
		if i >= len(cells) || cells[i] == nil {
			row[col.Name] = nil
			continue
		}
		parse, err := parserFor(col.Type)
		if err != nil {
			return nil, err
		}
		v, err := parse(*cells[i])
		if err != nil {
			return nil, err
		}
		row[col.Name] = v
	}
	return row, nil
}
