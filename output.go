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
	"encoding/csv"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
)

// FetchOutput reads the execution's CSV output object from S3 and decodes
// it, bypassing the paginated results API. The CSV carries no schema, so
// each cell is typed by shape inference rather than by column metadata;
// empty cells decode to nil. Row zero of the object holds the column
// names.
//
// For executions with large result sets this is substantially faster than
// draining pages, at the cost of the weaker typing. It requires the query
// to have an output location.
func (j *Job) FetchOutput(ctx context.Context) ([]Row, error) {
	if j.outputLocation == "" {
		return nil, fmt.Errorf("athena: query %s has no output location", j.queryID)
	}
	bucket, prefix, err := parseS3URI(j.outputLocation)
	if err != nil {
		return nil, err
	}
	key := path.Join(prefix, j.executionID+".csv")
	body, err := j.c.service.fetchOutputObject(ctx, bucket, key)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return decodeOutput(body)
}

func decodeOutput(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("athena: reading output header: %w", err)
	}
	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("athena: reading output row: %w", err)
		}
		row := make(Row, len(header))
		for i, name := range header {
			if i >= len(record) || record[i] == "" {
				row[name] = nil
				continue
			}
			row[name] = inferValue(record[i])
		}
		rows = append(rows, row)
	}
}

func parseS3URI(uri string) (bucket, prefix string, err error) {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != "s3" || u.Host == "" {
		return "", "", fmt.Errorf("athena: invalid s3 output location %q", uri)
	}
	return u.Host, strings.TrimPrefix(u.Path, "/"), nil
}
