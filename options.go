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
	"time"

	"github.com/aws/aws-sdk-go/service/athena/athenaiface"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// A ClientOption configures a Client at construction time.
type ClientOption func(*Client)

// WithDatabase sets the default database queries run against. A query may
// override it with QueryDatabase.
func WithDatabase(database string) ClientOption {
	return func(c *Client) { c.database = database }
}

// WithOutputLocation sets the S3 location (an s3:// URI) where the service
// writes query output.
func WithOutputLocation(location string) ClientOption {
	return func(c *Client) { c.outputLocation = location }
}

// WithWorkGroup sets the work group queries are submitted under.
func WithWorkGroup(workGroup string) ClientOption {
	return func(c *Client) { c.workGroup = workGroup }
}

// WithPollInterval sets how long Wait sleeps between execution status
// polls. The default is 3 seconds. Cancellation latency is bounded below
// by this interval.
func WithPollInterval(d time.Duration) ClientOption {
	return func(c *Client) { c.pollInterval = d }
}

// WithAthenaAPI supplies the Athena API handle, overriding the one built
// from a shared session.
func WithAthenaAPI(api athenaiface.AthenaAPI) ClientOption {
	return func(c *Client) {
		if s, ok := c.service.(*awsService); ok {
			s.athena = api
		}
	}
}

// WithS3API supplies the S3 API handle used to read query output objects,
// overriding the one built from a shared session.
func WithS3API(api s3iface.S3API) ClientOption {
	return func(c *Client) {
		if s, ok := c.service.(*awsService); ok {
			s.s3 = api
		}
	}
}

// withService replaces the whole service implementation. Tests use this to
// substitute a stub.
func withService(s service) ClientOption {
	return func(c *Client) { c.service = s }
}

// A QueryOption configures a single query submission.
type QueryOption func(*queryConfig)

type queryConfig struct {
	queryID        string
	params         []interface{}
	database       string
	outputLocation string
	workGroup      string
}

// WithQueryID assigns the caller-chosen ID used to look the query up for
// cancellation. IDs should be unique among in-flight queries on a client;
// with duplicates, lookup finds the earliest submission. When no ID is
// assigned, the client generates one.
func WithQueryID(id string) QueryOption {
	return func(qc *queryConfig) { qc.queryID = id }
}

// WithParameters binds positional parameters to the query's ?
// placeholders, left to right.
func WithParameters(params ...interface{}) QueryOption {
	return func(qc *queryConfig) { qc.params = params }
}

// QueryDatabase overrides the client's default database for one query.
func QueryDatabase(database string) QueryOption {
	return func(qc *queryConfig) { qc.database = database }
}

// QueryOutputLocation overrides the client's output location for one query.
func QueryOutputLocation(location string) QueryOption {
	return func(qc *queryConfig) { qc.outputLocation = location }
}

// QueryWorkGroup overrides the client's work group for one query.
func QueryWorkGroup(workGroup string) QueryOption {
	return func(qc *queryConfig) { qc.workGroup = workGroup }
}
