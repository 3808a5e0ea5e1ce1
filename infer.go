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
	"math"
	"strconv"
	"strings"
)

// inferValue types a cell from its textual shape alone. It is used for
// result data that carries no schema, such as rows read back from the
// query's CSV output object.
//
// Checks run in a fixed order, each failure falling through to the next:
// JSON array, JSON object, date/timestamp, number, and finally the string
// unchanged. The order is significant: "[1962]" is an array rather than a
// string, and "1962" is a date rather than a number.
func inferValue(s string) Value {
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		var v []interface{}
		if err := json.Unmarshal([]byte(s), &v); err == nil {
			return v
		}
	}
	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
		var v map[string]interface{}
		if err := json.Unmarshal([]byte(s), &v); err == nil {
			return v
		}
	}
	if t, err := parseTimestamp(s); err == nil {
		return t
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) {
		return f
	}
	return s
}
