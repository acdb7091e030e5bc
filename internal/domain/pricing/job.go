package pricing

import (
	"fmt"
	"time"

	"sameday-trips/internal/pkg/errs"
)

type JobStatus string

const (
	JobSubmitted JobStatus = "SUBMITTED"
	JobRunning   JobStatus = "RUNNING"
	JobSucceeded JobStatus = "SUCCEEDED"
	JobFailed    JobStatus = "FAILED"
	JobAborted   JobStatus = "ABORTED"
	JobTimedOut  JobStatus = "TIMED-OUT"
)

func (s JobStatus) IsTerminal() bool {
	switch s {
	case JobSucceeded, JobFailed, JobAborted, JobTimedOut:
		return true
	default:
		return false
	}
}

func (s JobStatus) IsValid() bool {
	return s == JobSubmitted || s == JobRunning || s.IsTerminal()
}

// Job tracks one asynchronous rental search from submission to a terminal
// status. It lives for a single fetch and is never persisted.
type Job struct {
	id          string
	submittedAt time.Time
	status      JobStatus
	results     []Vehicle
}

func NewJob(id string, submittedAt time.Time) (*Job, error) {
	if id == "" {
		return nil, errs.New("job id is required")
	}
	return &Job{id: id, submittedAt: submittedAt, status: JobSubmitted}, nil
}

// Transition moves the job forward. Repeating the current non-terminal status
// is allowed; leaving a terminal status or going back to Submitted is not.
func (j *Job) Transition(to JobStatus) error {
	if !to.IsValid() {
		return errs.Mark(fmt.Errorf("unknown job status %q", to), errs.ErrInvalidJobTransition)
	}
	if j.status.IsTerminal() || (to == JobSubmitted && j.status != JobSubmitted) {
		return errs.Mark(fmt.Errorf("job %s: %s -> %s", j.id, j.status, to), errs.ErrInvalidJobTransition)
	}
	j.status = to
	return nil
}

// Complete attaches the result set of a succeeded job.
func (j *Job) Complete(results []Vehicle) error {
	if j.status != JobSucceeded {
		return errs.Mark(fmt.Errorf("job %s: results before success (%s)", j.id, j.status), errs.ErrInvalidJobTransition)
	}
	j.results = results
	return nil
}

func (j *Job) ID() string             { return j.id }
func (j *Job) SubmittedAt() time.Time { return j.submittedAt }
func (j *Job) Status() JobStatus      { return j.status }
func (j *Job) Results() []Vehicle     { return j.results }

func (j *Job) Elapsed(now time.Time) time.Duration {
	return now.Sub(j.submittedAt)
}

// Cheapest returns the lowest daily price among the results. The upstream
// sorts ascending, but the whole page is scanned in case it did not.
func (j *Job) Cheapest() (Vehicle, bool) {
	if len(j.results) == 0 {
		return Vehicle{}, false
	}
	best := j.results[0]
	for _, v := range j.results[1:] {
		if v.DailyPrice < best.DailyPrice {
			best = v
		}
	}
	return best, true
}
