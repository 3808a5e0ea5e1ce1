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
	"fmt"
)

// ErrQueryNotFound is returned when a query ID has no matching in-flight
// query on this client.
var ErrQueryNotFound = errors.New("athena: query ID not found")

// Sentinel causes for cell parse failures. Parsers wrap these, so callers
// can test with errors.Is.
var (
	ErrInvalidNumber    = errors.New("athena: invalid number")
	ErrInvalidJSON      = errors.New("athena: invalid JSON")
	ErrInvalidTimestamp = errors.New("athena: invalid timestamp")
)

// QueryFailedError is returned by Wait when the service reports the
// execution reached the FAILED state. The service does not attach further
// diagnostics to the state transition itself.
type QueryFailedError struct {
	ExecutionID string
}

func (e *QueryFailedError) Error() string {
	return fmt.Sprintf("athena: query execution %s failed", e.ExecutionID)
}

// QueryCancelledError is returned by Wait when the service reports the
// execution reached the CANCELLED state.
type QueryCancelledError struct {
	ExecutionID string
}

func (e *QueryCancelledError) Error() string {
	return fmt.Sprintf("athena: query execution %s was cancelled", e.ExecutionID)
}

// StatusError is returned by Wait when the service reports an execution
// state outside the documented set. Status carries the raw reported value.
type StatusError struct {
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("athena: unsupported query execution status %q", e.Status)
}

// UnsupportedTypeError is returned during column binding when the result
// metadata reports a column type with no registered parser.
type UnsupportedTypeError struct {
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("athena: unsupported column type %q", e.Type)
}
