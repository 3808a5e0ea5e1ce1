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
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/athena"
	"github.com/aws/aws-sdk-go/service/s3"
)

const defaultPollInterval = 3 * time.Second

// Client may be used to run Athena queries. A client should be reused
// instead of created per-query; queries started through one client share
// its queue of in-flight executions, which is what CancelQuery consults.
type Client struct {
	database       string
	outputLocation string
	workGroup      string
	pollInterval   time.Duration

	service service
	queue   *queryQueue
}

// NewClient constructs a new Client. Unless the AWS API handles are
// supplied via options, a shared session is created and used for both the
// Athena and S3 clients. At least one of an output location and a work
// group must be configured, as the service cannot place results otherwise.
func NewClient(opts ...ClientOption) (*Client, error) {
	c := &Client{
		pollInterval: defaultPollInterval,
		queue:        &queryQueue{},
	}
	svc := &awsService{}
	c.service = svc
	for _, opt := range opts {
		opt(c)
	}
	if c.outputLocation == "" && c.workGroup == "" {
		return nil, errors.New("athena: an output location or a work group is required")
	}
	if c.pollInterval <= 0 {
		return nil, fmt.Errorf("athena: poll interval must be positive, got %v", c.pollInterval)
	}
	if s, ok := c.service.(*awsService); ok && (s.athena == nil || s.s3 == nil) {
		sess, err := session.NewSession()
		if err != nil {
			return nil, fmt.Errorf("athena: constructing client: %w", err)
		}
		if s.athena == nil {
			s.athena = athena.New(sess)
		}
		if s.s3 == nil {
			s.s3 = s3.New(sess)
		}
	}
	return c, nil
}

// Query runs a query to completion and returns every decoded result row.
// It is shorthand for StartQuery, Wait and Fetch.
func (c *Client) Query(ctx context.Context, sql string, opts ...QueryOption) ([]Row, error) {
	j, err := c.StartQuery(ctx, sql, opts...)
	if err != nil {
		return nil, err
	}
	if err := j.Wait(ctx); err != nil {
		return nil, err
	}
	return j.Fetch(ctx)
}

// CancelQuery requests cancellation of the in-flight query with the given
// caller-assigned ID. It returns ErrQueryNotFound if no such query is
// tracked by this client. Cancellation is asynchronous: the corresponding
// Wait observes the CANCELLED state on its next poll.
func (c *Client) CancelQuery(ctx context.Context, queryID string) error {
	j, err := c.queue.byID(queryID)
	if err != nil {
		return err
	}
	return j.Cancel(ctx)
}
