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

// Package athena provides a client for running SQL queries on Amazon
// Athena and decoding the results into typed rows.
//
// A query runs asynchronously on the service. The client submits it,
// polls the execution at a fixed interval until it reaches a terminal
// state, and then drains the paginated result set, converting each
// textual cell with a parser chosen from the column's reported type.
//
// Example usage:
//
//	client, err := athena.NewClient(
//		athena.WithDatabase("sampledb"),
//		athena.WithOutputLocation("s3://my-bucket/results/"),
//	)
//	if err != nil {
//		// TODO: Handle error.
//	}
//
//	job, err := client.StartQuery(ctx, "SELECT name, population FROM cities WHERE population > ?",
//		athena.WithParameters(1000000))
//	if err != nil {
//		// TODO: Handle error.
//	}
//
//	if err := job.Wait(ctx); err != nil {
//		// TODO: Handle error.
//	}
//
//	rows, err := job.Fetch(ctx)
//	if err != nil {
//		// TODO: Handle error.
//	}
//	for _, row := range rows {
//		fmt.Println(row["name"], row["population"])
//	}
//
// For result streaming, Job.Read returns a RowIterator whose Next method
// reports iterator.Done when the rows are exhausted. Client.Query bundles
// the submit, wait and fetch steps. An in-flight query can be cancelled
// through Client.CancelQuery using the ID it was submitted with.
package athena
