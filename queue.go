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

import "sync"

// queryQueue tracks the in-flight jobs of one client, keyed by the
// caller-assigned query ID. Insertion order is submission order. Jobs may
// be added and removed from multiple goroutines.
type queryQueue struct {
	mu   sync.Mutex
	jobs []*Job
}

// add appends a job. IDs are not checked for uniqueness; with duplicates,
// byID returns the earliest submission.
func (q *queryQueue) add(j *Job) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs = append(q.jobs, j)
}

// remove drops a job by identity. Removing a job that is not present is a
// no-op.
func (q *queryQueue) remove(j *Job) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, other := range q.jobs {
		if other == j {
			q.jobs = append(q.jobs[:i], q.jobs[i+1:]...)
			return
		}
	}
}

// byID returns the first job, in submission order, whose query ID matches.
func (q *queryQueue) byID(id string) (*Job, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, j := range q.jobs {
		if j.queryID == id {
			return j, nil
		}
	}
	return nil, ErrQueryNotFound
}

func (q *queryQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.jobs)
}
