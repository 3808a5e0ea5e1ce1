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
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeOutput(t *testing.T) {
	csv := "name,founded,tags\n" +
		"acme,1962,\"[\"\"tools\"\", \"\"anvils\"\"]\"\n" +
		"globex,,\n"
	rows, err := decodeOutput(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("decodeOutput: %v", err)
	}
	want := []Row{
		{
			"name":    "acme",
			"founded": time.Date(1962, 1, 1, 0, 0, 0, 0, time.UTC),
			"tags":    []interface{}{"tools", "anvils"},
		},
		{
			"name":    "globex",
			"founded": nil,
			"tags":    nil,
		},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeOutputEmpty(t *testing.T) {
	rows, err := decodeOutput(strings.NewReader(""))
	if err != nil {
		t.Fatalf("decodeOutput: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("rows = %v, want none", rows)
	}
}

func TestParseS3URI(t *testing.T) {
	bucket, prefix, err := parseS3URI("s3://my-bucket/some/prefix")
	if err != nil {
		t.Fatalf("parseS3URI: %v", err)
	}
	if bucket != "my-bucket" || prefix != "some/prefix" {
		t.Errorf("parseS3URI = (%q, %q), want (my-bucket, some/prefix)", bucket, prefix)
	}

	for _, bad := range []string{"http://bucket/x", "s3://", "not a uri at all\x7f://"} {
		if _, _, err := parseS3URI(bad); err == nil {
			t.Errorf("parseS3URI(%q) should fail", bad)
		}
	}
}

func TestFetchOutput(t *testing.T) {
	svc := &stubService{
		submitID:  "exec-5",
		outputCSV: "n\n7\n",
	}
	_, j := startTestJob(t, svc)

	rows, err := j.FetchOutput(context.Background())
	if err != nil {
		t.Fatalf("FetchOutput: %v", err)
	}
	if got, want := svc.gotBucket, "test-bucket"; got != want {
		t.Errorf("bucket = %q, want %q", got, want)
	}
	if got, want := svc.gotKey, "results/exec-5.csv"; got != want {
		t.Errorf("key = %q, want %q", got, want)
	}
	want := []Row{{"n": float64(7)}}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}
