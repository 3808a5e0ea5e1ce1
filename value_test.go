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
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParseBool(t *testing.T) {
	truthy := []string{"true", "TRUE", "True", "t", "T", "yes", "YES", "1"}
	for _, s := range truthy {
		got, err := parseBool(s)
		if err != nil {
			t.Fatalf("parseBool(%q): %v", s, err)
		}
		if got != true {
			t.Errorf("parseBool(%q) = %v, want true", s, got)
		}
	}
	falsy := []string{"false", "FALSE", "0", "no", "", "tr ue", "not a boolean"}
	for _, s := range falsy {
		got, err := parseBool(s)
		if err != nil {
			t.Fatalf("parseBool(%q): %v", s, err)
		}
		if got != false {
			t.Errorf("parseBool(%q) = %v, want false", s, got)
		}
	}
}

func TestParseNumber(t *testing.T) {
	got, err := parseNumber("42")
	if err != nil {
		t.Fatalf("parseNumber(\"42\"): %v", err)
	}
	if got != float64(42) {
		t.Errorf("parseNumber(\"42\") = %v, want 42", got)
	}

	_, err = parseNumber("abc")
	if !errors.Is(err, ErrInvalidNumber) {
		t.Errorf("parseNumber(\"abc\") error = %v, want ErrInvalidNumber", err)
	}
}

func TestParseArray(t *testing.T) {
	testCases := []struct {
		in   string
		want []Value
	}{
		{"[1, 2, foo]", []Value{float64(1), float64(2), "foo"}},
		{"[]", []Value{}},
		{"", []Value{}},
		{"[single]", []Value{"single"}},
		{"[1.5, -2]", []Value{1.5, float64(-2)}},
	}
	for _, tc := range testCases {
		got, err := parseArray(tc.in)
		if err != nil {
			t.Fatalf("parseArray(%q): %v", tc.in, err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("parseArray(%q) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestParseJSON(t *testing.T) {
	got, err := parseJSON(`{"a": 1, "b": [true]}`)
	if err != nil {
		t.Fatalf("parseJSON: %v", err)
	}
	want := map[string]interface{}{"a": float64(1), "b": []interface{}{true}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parseJSON mismatch (-want +got):\n%s", diff)
	}

	_, err = parseJSON("{not json")
	if !errors.Is(err, ErrInvalidJSON) {
		t.Errorf("parseJSON(malformed) error = %v, want ErrInvalidJSON", err)
	}
}

func TestParseTime(t *testing.T) {
	testCases := []struct {
		in   string
		want time.Time
	}{
		{"2024-01-02 03:04:05.678", time.Date(2024, 1, 2, 3, 4, 5, 678000000, time.UTC)},
		{"2024-01-02", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"2024-01-02T03:04:05Z", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
	}
	for _, tc := range testCases {
		got, err := parseTime(tc.in)
		if err != nil {
			t.Fatalf("parseTime(%q): %v", tc.in, err)
		}
		if !got.(time.Time).Equal(tc.want) {
			t.Errorf("parseTime(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	_, err := parseTime("not a date")
	if !errors.Is(err, ErrInvalidTimestamp) {
		t.Errorf("parseTime(\"not a date\") error = %v, want ErrInvalidTimestamp", err)
	}
}

func TestParserFor(t *testing.T) {
	supported := []string{
		"integer", "tinyint", "smallint", "bigint", "float", "double", "decimal",
		"char", "varchar", "string", "boolean",
		"date", "timestamp", "timestamp with time zone",
		"array", "json", "VARCHAR", "Boolean",
	}
	for _, typ := range supported {
		if _, err := parserFor(typ); err != nil {
			t.Errorf("parserFor(%q): %v", typ, err)
		}
	}

	for _, typ := range []string{"binary", "map", "struct", "row", "interval", "whatever"} {
		_, err := parserFor(typ)
		var ute *UnsupportedTypeError
		if !errors.As(err, &ute) {
			t.Fatalf("parserFor(%q) error = %v, want UnsupportedTypeError", typ, err)
		}
		if ute.Type != typ {
			t.Errorf("UnsupportedTypeError.Type = %q, want %q", ute.Type, typ)
		}
	}
}

func TestParsersAreIdempotent(t *testing.T) {
	inputs := map[string]string{
		"double":  "3.5",
		"varchar": "hello",
		"boolean": "yes",
		"array":   "[1, a]",
		"json":    `{"k": "v"}`,
	}
	for typ, in := range inputs {
		p, err := parserFor(typ)
		if err != nil {
			t.Fatalf("parserFor(%q): %v", typ, err)
		}
		first, err := p(in)
		if err != nil {
			t.Fatalf("parse %s %q: %v", typ, in, err)
		}
		second, err := p(in)
		if err != nil {
			t.Fatalf("parse %s %q again: %v", typ, in, err)
		}
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("%s parser not idempotent for %q (-first +second):\n%s", typ, in, diff)
		}
	}
}

func TestDecodeRow(t *testing.T) {
	cols := []Column{
		{Name: "id", Type: "bigint"},
		{Name: "name", Type: "varchar"},
		{Name: "active", Type: "boolean"},
	}
	row, err := decodeRow(cols, []*string{strptr("7"), nil, strptr("true")})
	if err != nil {
		t.Fatalf("decodeRow: %v", err)
	}
	want := Row{"id": float64(7), "name": nil, "active": true}
	if diff := cmp.Diff(want, row); diff != "" {
		t.Errorf("decodeRow mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRowShortRow(t *testing.T) {
	cols := []Column{{Name: "a", Type: "varchar"}, {Name: "b", Type: "varchar"}}
	row, err := decodeRow(cols, []*string{strptr("x")})
	if err != nil {
		t.Fatalf("decodeRow: %v", err)
	}
	want := Row{"a": "x", "b": nil}
	if diff := cmp.Diff(want, row); diff != "" {
		t.Errorf("decodeRow mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRowDuplicateNames(t *testing.T) {
	// Duplicate column names overwrite: the later column wins.
	cols := []Column{{Name: "v", Type: "varchar"}, {Name: "v", Type: "varchar"}}
	row, err := decodeRow(cols, []*string{strptr("first"), strptr("second")})
	if err != nil {
		t.Fatalf("decodeRow: %v", err)
	}
	if got, want := row["v"], "second"; got != want {
		t.Errorf("row[\"v\"] = %v, want %q", got, want)
	}
}

func TestDecodeRowParseError(t *testing.T) {
	cols := []Column{{Name: "n", Type: "bigint"}}
	_, err := decodeRow(cols, []*string{strptr("abc")})
	if !errors.Is(err, ErrInvalidNumber) {
		t.Errorf("decodeRow error = %v, want ErrInvalidNumber", err)
	}
}

func TestBindColumns(t *testing.T) {
	cols, err := bindColumns([]columnMeta{{Name: "a", Type: "varchar"}, {Name: "b", Type: "json"}})
	if err != nil {
		t.Fatalf("bindColumns: %v", err)
	}
	want := []Column{{Name: "a", Type: "varchar"}, {Name: "b", Type: "json"}}
	if diff := cmp.Diff(want, cols); diff != "" {
		t.Errorf("bindColumns mismatch (-want +got):\n%s", diff)
	}

	_, err = bindColumns([]columnMeta{{Name: "a", Type: "varchar"}, {Name: "b", Type: "map"}})
	var ute *UnsupportedTypeError
	if !errors.As(err, &ute) || ute.Type != "map" {
		t.Errorf("bindColumns error = %v, want UnsupportedTypeError for \"map\"", err)
	}
}
