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
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

const paramTimestampFormat = "2006-01-02 15:04:05.999"

// bindParams substitutes the query's ? placeholders with the given
// parameters, left to right. Placeholders inside single-quoted string
// literals are left alone. With no parameters the query text passes
// through unchanged.
func bindParams(sql string, params []interface{}) (string, error) {
	if len(params) == 0 {
		return sql, nil
	}
	var b strings.Builder
	b.Grow(len(sql))
	next := 0
	inString := false
	for _, r := range sql {
		switch {
		case r == '\'':
			inString = !inString
			b.WriteRune(r)
		case r == '?' && !inString:
			if next >= len(params) {
				return "", fmt.Errorf("athena: query has more placeholders than the %d bound parameters", len(params))
			}
			lit, err := paramLiteral(params[next])
			if err != nil {
				return "", err
			}
			b.WriteString(lit)
			next++
		default:
			b.WriteRune(r)
		}
	}
	if next < len(params) {
		return "", fmt.Errorf("athena: %d parameters bound but query has only %d placeholders", len(params), next)
	}
	return b.String(), nil
}

// paramLiteral renders one parameter as a SQL literal.
func paramLiteral(v interface{}) (string, error) {
	switch v := v.(type) {
	case nil:
		return "NULL", nil
	case string:
		return "'" + strings.ReplaceAll(v, "'", "''") + "'", nil
	case bool:
		return strconv.FormatBool(v), nil
	case time.Time:
		return "TIMESTAMP '" + v.Format(paramTimestampFormat) + "'", nil
	case civil.Date:
		return "DATE '" + v.String() + "'", nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	}
	return "", fmt.Errorf("athena: Go type %T cannot be bound as a query parameter", v)
}
