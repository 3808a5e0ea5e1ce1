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
	"sync"

	"github.com/google/uuid"
	"github.com/googleapis/gax-go/v2"
)

// State is one of the execution states a query progresses through, as
// reported by the service.
type State = string

const (
	// StateQueued indicates the execution is waiting to run.
	StateQueued State = "QUEUED"
	// StateRunning indicates the execution is running.
	StateRunning State = "RUNNING"
	// StateSucceeded indicates the execution finished and results are
	// available.
	StateSucceeded State = "SUCCEEDED"
	// StateFailed indicates the execution finished unsuccessfully.
	StateFailed State = "FAILED"
	// StateCancelled indicates the execution was stopped before finishing.
	StateCancelled State = "CANCELLED"
)

// A Job represents one query submitted through a Client. It tracks the
// remote execution from submission through completion and accumulates the
// decoded results.
type Job struct {
	c *Client

	queryID     string
	executionID string
	originalSQL string
	boundSQL    string

	database       string
	outputLocation string
	workGroup      string

	mu      sync.Mutex
	status  State
	columns []Column
	rows    []Row
}

// StartQuery submits a query for execution and returns a handle to it.
// The job is tracked by the client until it fails, is cancelled, or is
// explicitly forgotten; a successful job stays tracked so its ID remains
// valid for lookup.
func (c *Client) StartQuery(ctx context.Context, sql string, opts ...QueryOption) (*Job, error) {
	qc := &queryConfig{
		database:       c.database,
		outputLocation: c.outputLocation,
		workGroup:      c.workGroup,
	}
	for _, opt := range opts {
		opt(qc)
	}
	if qc.queryID == "" {
		qc.queryID = uuid.NewString()
	}

	bound, err := bindParams(sql, qc.params)
	if err != nil {
		return nil, err
	}

	j := &Job{
		c:              c,
		queryID:        qc.queryID,
		originalSQL:    sql,
		boundSQL:       bound,
		database:       qc.database,
		outputLocation: qc.outputLocation,
		workGroup:      qc.workGroup,
		status:         StateQueued,
	}
	c.queue.add(j)

	executionID, err := c.service.submitQuery(ctx, bound, &submitConf{
		database:       qc.database,
		outputLocation: qc.outputLocation,
		workGroup:      qc.workGroup,
	})
	if err != nil {
		c.queue.remove(j)
		return nil, err
	}
	j.executionID = executionID
	return j, nil
}

// ID returns the caller-assigned query ID.
func (j *Job) ID() string { return j.queryID }

// ExecutionID returns the identifier the service assigned to this
// execution. It is empty only if submission failed.
func (j *Job) ExecutionID() string { return j.executionID }

// SQL returns the query text after parameter binding.
func (j *Job) SQL() string { return j.boundSQL }

// Status returns the most recently observed execution state.
func (j *Job) Status() State {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.status
}

func (j *Job) setStatus(s State) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.status = s
}

// Wait polls the execution at the client's poll interval until it reaches
// a terminal state. It returns nil once the execution succeeds. A FAILED
// execution returns a *QueryFailedError, a CANCELLED one a
// *QueryCancelledError, and an unrecognized state a *StatusError; in each
// of those cases the job is dropped from the client's queue. An error from
// the service itself propagates unclassified and leaves the job tracked.
func (j *Job) Wait(ctx context.Context) error {
	for {
		if err := gax.Sleep(ctx, j.c.pollInterval); err != nil {
			return err
		}
		state, err := j.c.service.queryStatus(ctx, j.executionID)
		if err != nil {
			return err
		}
		j.setStatus(state)
		switch state {
		case StateQueued, StateRunning:
			// Keep polling.
		case StateSucceeded:
			return nil
		case StateFailed:
			j.c.queue.remove(j)
			return &QueryFailedError{ExecutionID: j.executionID}
		case StateCancelled:
			j.c.queue.remove(j)
			return &QueryCancelledError{ExecutionID: j.executionID}
		default:
			j.c.queue.remove(j)
			return &StatusError{Status: state}
		}
	}
}

// Cancel requests that the execution be stopped. It returns without
// waiting for cancellation to take effect; a concurrent Wait observes the
// CANCELLED state on its next poll.
func (j *Job) Cancel(ctx context.Context) error {
	return j.c.service.stopQuery(ctx, j.executionID)
}

// Columns returns the column descriptors, or nil before the first result
// page has been fetched.
func (j *Job) Columns() []Column {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.columns
}

func (j *Job) bindColumnsOnce(metadata []columnMeta) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.columns != nil {
		return nil
	}
	cols, err := bindColumns(metadata)
	if err != nil {
		return err
	}
	j.columns = cols
	return nil
}

func (j *Job) appendRows(rows []Row) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.rows = append(j.rows, rows...)
}

func (j *Job) rowCount() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.rows)
}

// Rows returns the rows decoded so far. After Fetch has drained every
// page, this is the complete result set.
func (j *Job) Rows() []Row {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.rows
}
