package printer

import (
	"errors"
	"fmt"
	"time"
)

// ErrJobNotFound is returned when a job id does not resolve to a job in
// the queue.
var ErrJobNotFound = errors.New("job not found")

// Job is a queued print job. Jobs are owned by their printer and only
// reachable through JobSummary copies.
type Job struct {
	id                   int
	name                 string
	username             string
	impressionsCompleted int
	state                JobState
	canceled             bool // canceled while processing, awaiting the processor
	createdAt            time.Time
	processingAt         time.Time
	completedAt          time.Time
}

// JobSummary is a read-only projection of one job.
type JobSummary struct {
	ID                   int       `json:"id"`
	Name                 string    `json:"name"`
	Username             string    `json:"username"`
	ImpressionsCompleted int       `json:"impressions_completed"`
	State                JobState  `json:"state"`
	Canceled             bool      `json:"canceled"`
	CreatedAt            time.Time `json:"created_at"`
	ProcessingAt         time.Time `json:"processing_at"`
	CompletedAt          time.Time `json:"completed_at"`
}

// Active reports whether the job still occupies the queue.
func (j JobSummary) Active() bool { return !j.State.Terminated() }

// CancelEligible reports whether the cancel action applies: queued jobs
// always, processing/stopped jobs only until a cancel is requested.
func (j JobSummary) CancelEligible() bool {
	switch j.State {
	case JobPending, JobHeld:
		return true
	case JobProcessing, JobStopped:
		return !j.Canceled
	}
	return false
}

func (j *Job) summary() JobSummary {
	return JobSummary{
		ID:                   j.id,
		Name:                 j.name,
		Username:             j.username,
		ImpressionsCompleted: j.impressionsCompleted,
		State:                j.state,
		Canceled:             j.canceled,
		CreatedAt:            j.createdAt,
		ProcessingAt:         j.processingAt,
		CompletedAt:          j.completedAt,
	}
}

// Submit adds a pending job to the queue and returns its summary.
func (p *Printer) Submit(name, username string) JobSummary {
	p.mu.Lock()
	job := &Job{
		id:        p.nextJobID,
		name:      name,
		username:  username,
		state:     JobPending,
		createdAt: time.Now(),
	}
	p.nextJobID++
	p.jobs = append(p.jobs, job)
	sum := job.summary()
	p.mu.Unlock()

	p.persistJob(sum)
	p.notify(Event{Type: EventJobCreated, Printer: p.name, JobID: sum.ID})
	return sum
}

// Jobs returns summaries of every job in creation order. The slice is a
// snapshot; later queue changes do not affect it.
func (p *Printer) Jobs() []JobSummary {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]JobSummary, 0, len(p.jobs))
	for _, j := range p.jobs {
		out = append(out, j.summary())
	}
	return out
}

// ActiveJobs returns summaries of the non-terminated jobs in creation
// order.
func (p *Printer) ActiveJobs() []JobSummary {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var out []JobSummary
	for _, j := range p.jobs {
		if !j.state.Terminated() {
			out = append(out, j.summary())
		}
	}
	return out
}

// ActiveJobCount returns the number of non-terminated jobs.
func (p *Printer) ActiveJobCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	n := 0
	for _, j := range p.jobs {
		if !j.state.Terminated() {
			n++
		}
	}
	return n
}

// FindJob returns the summary for the given job id.
func (p *Printer) FindJob(id int) (JobSummary, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if j := p.findLocked(id); j != nil {
		return j.summary(), true
	}
	return JobSummary{}, false
}

func (p *Printer) findLocked(id int) *Job {
	for _, j := range p.jobs {
		if j.id == id {
			return j
		}
	}
	return nil
}

// CancelJob cancels the job with the given id. Queued jobs terminate
// immediately; a processing or stopped job is only marked canceled and
// terminates when the processor hands it back. Canceling an already
// terminated job is a no-op.
func (p *Printer) CancelJob(id int) error {
	p.mu.Lock()
	job := p.findLocked(id)
	if job == nil {
		p.mu.Unlock()
		return ErrJobNotFound
	}
	sum, changed := p.cancelLocked(job)
	p.mu.Unlock()

	if changed {
		p.persistJob(sum)
		p.notify(Event{Type: EventJobStateChanged, Printer: p.name, JobID: sum.ID})
	}
	return nil
}

// cancelLocked applies cancel semantics to one job. Callers hold p.mu.
func (p *Printer) cancelLocked(job *Job) (JobSummary, bool) {
	switch job.state {
	case JobPending, JobHeld:
		job.state = JobCanceled
		job.completedAt = time.Now()
		return job.summary(), true
	case JobProcessing, JobStopped:
		if !job.canceled {
			job.canceled = true
			return job.summary(), true
		}
	}
	return job.summary(), false
}

// CancelAllJobs cancels every active job in the queue.
func (p *Printer) CancelAllJobs() {
	p.mu.Lock()
	var changed []JobSummary
	for _, j := range p.jobs {
		if j.state.Terminated() {
			continue
		}
		if sum, ok := p.cancelLocked(j); ok {
			changed = append(changed, sum)
		}
	}
	p.mu.Unlock()

	for _, sum := range changed {
		p.persistJob(sum)
		p.notify(Event{Type: EventJobStateChanged, Printer: p.name, JobID: sum.ID})
	}
}

// StartNextJob moves the oldest pending job to processing and flips the
// printer to the processing state. It is called by the job pipeline.
func (p *Printer) StartNextJob() (JobSummary, bool) {
	p.mu.Lock()
	var job *Job
	for _, j := range p.jobs {
		if j.state == JobPending {
			job = j
			break
		}
	}
	if job == nil {
		p.mu.Unlock()
		return JobSummary{}, false
	}
	job.state = JobProcessing
	job.processingAt = time.Now()
	p.state = StateProcessing
	sum := job.summary()
	p.mu.Unlock()

	p.persistJob(sum)
	p.notify(Event{Type: EventJobStateChanged, Printer: p.name, JobID: sum.ID})
	p.notify(Event{Type: EventPrinterStateChanged, Printer: p.name})
	return sum, true
}

// SetJobProgress updates a job's completed impression count.
func (p *Printer) SetJobProgress(id, impressions int) error {
	p.mu.Lock()
	job := p.findLocked(id)
	if job == nil {
		p.mu.Unlock()
		return ErrJobNotFound
	}
	job.impressionsCompleted = impressions
	sum := job.summary()
	p.mu.Unlock()

	p.persistJob(sum)
	return nil
}

// FinishJob moves a job to a terminal state. A job that was canceled
// while processing finishes as canceled regardless of the requested
// final state. The printer returns to idle when nothing is processing.
func (p *Printer) FinishJob(id int, final JobState) error {
	if !final.Terminated() {
		return errors.New("final job state must be terminal")
	}
	p.mu.Lock()
	job := p.findLocked(id)
	if job == nil {
		p.mu.Unlock()
		return ErrJobNotFound
	}
	if job.canceled && final == JobCompleted {
		final = JobCanceled
	}
	job.state = final
	job.completedAt = time.Now()
	stillProcessing := false
	for _, j := range p.jobs {
		if j.state == JobProcessing || j.state == JobStopped {
			stillProcessing = true
			break
		}
	}
	if !stillProcessing && p.state == StateProcessing {
		p.state = StateIdle
	}
	sum := job.summary()
	p.mu.Unlock()

	p.persistJob(sum)
	p.notify(Event{Type: EventJobStateChanged, Printer: p.name, JobID: sum.ID})
	p.notify(Event{Type: EventPrinterStateChanged, Printer: p.name})
	return nil
}

// HoldJob moves a pending job to the held state.
func (p *Printer) HoldJob(id int) error {
	return p.transitionJob(id, JobPending, JobHeld)
}

// ReleaseJob moves a held job back to pending.
func (p *Printer) ReleaseJob(id int) error {
	return p.transitionJob(id, JobHeld, JobPending)
}

// SuspendJob moves a processing job to the stopped state.
func (p *Printer) SuspendJob(id int) error {
	return p.transitionJob(id, JobProcessing, JobStopped)
}

// ResumeJob moves a stopped job back to processing.
func (p *Printer) ResumeJob(id int) error {
	return p.transitionJob(id, JobStopped, JobProcessing)
}

func (p *Printer) transitionJob(id int, from, to JobState) error {
	p.mu.Lock()
	job := p.findLocked(id)
	if job == nil {
		p.mu.Unlock()
		return ErrJobNotFound
	}
	if job.state != from {
		state := job.state
		p.mu.Unlock()
		return fmt.Errorf("job %d is %s, not %s", id, state, from)
	}
	job.state = to
	sum := job.summary()
	p.mu.Unlock()

	p.persistJob(sum)
	p.notify(Event{Type: EventJobStateChanged, Printer: p.name, JobID: sum.ID})
	return nil
}

// persistJob forwards a job snapshot to the system's persister.
func (p *Printer) persistJob(sum JobSummary) {
	if p.system != nil {
		p.system.persistJob(p, sum)
	}
}

// restoreJob reinserts a persisted job without firing persistence or
// events. Used when loading printers from storage.
func (p *Printer) restoreJob(sum JobSummary) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.jobs = append(p.jobs, &Job{
		id:                   sum.ID,
		name:                 sum.Name,
		username:             sum.Username,
		impressionsCompleted: sum.ImpressionsCompleted,
		state:                sum.State,
		canceled:             sum.Canceled,
		createdAt:            sum.CreatedAt,
		processingAt:         sum.ProcessingAt,
		completedAt:          sum.CompletedAt,
	})
	if sum.ID >= p.nextJobID {
		p.nextJobID = sum.ID + 1
	}
}
