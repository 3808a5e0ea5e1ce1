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
	"context"
	"errors"

	"google.golang.org/api/iterator"
)

// RowIterator iterates over the decoded rows of a completed query. Pages
// are fetched one at a time, strictly in order; the iterator never has two
// page fetches outstanding.
type RowIterator struct {
	ctx context.Context
	j   *Job

	rows      []Row
	pageToken string
	done      bool
}

// Read returns an iterator over the query's results. It should be called
// after Wait has returned nil.
func (j *Job) Read(ctx context.Context) *RowIterator {
	return &RowIterator{ctx: ctx, j: j}
}

// Next returns the next result row. Its second return value is
// iterator.Done if there are no more rows.
func (it *RowIterator) Next() (Row, error) {
	for len(it.rows) == 0 {
		if it.done {
			return nil, iterator.Done
		}
		if err := it.fetchPage(); err != nil {
			return nil, err
		}
	}
	row := it.rows[0]
	it.rows = it.rows[1:]
	return row, nil
}

// fetchPage fetches and decodes the next page of results, appending the
// decoded rows to the job's accumulated result set.
func (it *RowIterator) fetchPage() error {
	page, err := it.j.c.service.fetchResultPage(it.ctx, it.j.executionID, it.pageToken)
	if err != nil {
		return err
	}

	if len(page.columns) > 0 {
		if err := it.j.bindColumnsOnce(page.columns); err != nil {
			return err
		}
	}
	cols := it.j.Columns()
	if cols == nil && len(page.rows) > 0 {
		return errors.New("athena: result page carries rows but no column metadata")
	}

	// The first page of a query with nothing accumulated yet leads with a
	// row echoing the column names; skip it. A page fetched with a token,
	// or after rows have accumulated, is data from row zero.
	start := 0
	if it.j.rowCount() == 0 && it.pageToken == "" && len(page.rows) > 0 {
		start = 1
	}

	decoded := make([]Row, 0, len(page.rows))
	for _, cells := range page.rows[start:] {
		row, err := decodeRow(cols, cells)
		if err != nil {
			return err
		}
		decoded = append(decoded, row)
	}
	it.j.appendRows(decoded)
	it.rows = append(it.rows, decoded...)

	it.pageToken = page.nextToken
	if page.nextToken == "" {
		it.done = true
	}
	return nil
}

// Fetch drains every result page and returns the complete decoded result
// set. The same rows remain available from Job.Rows.
func (j *Job) Fetch(ctx context.Context) ([]Row, error) {
	it := j.Read(ctx)
	for {
		_, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return j.Rows(), nil
}
