package printer

import (
	"errors"
	"testing"
)

func newTestPrinter(t *testing.T) *Printer {
	t.Helper()
	return NewPrinter("test", "test-driver", DriverOptions{
		Sources: []string{"tray-1"},
	})
}

func TestCancelEligibleMatrix(t *testing.T) {
	tests := []struct {
		name     string
		state    JobState
		canceled bool
		want     bool
	}{
		{"pending", JobPending, false, true},
		{"held", JobHeld, false, true},
		{"processing", JobProcessing, false, true},
		{"processing canceled", JobProcessing, true, false},
		{"stopped", JobStopped, false, true},
		{"stopped canceled", JobStopped, true, false},
		{"aborted", JobAborted, false, false},
		{"canceled", JobCanceled, false, false},
		{"completed", JobCompleted, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := JobSummary{State: tt.state, Canceled: tt.canceled}
			if got := sum.CancelEligible(); got != tt.want {
				t.Errorf("CancelEligible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSubmitAssignsSequentialIDs(t *testing.T) {
	p := newTestPrinter(t)
	first := p.Submit("a.pdf", "alice")
	second := p.Submit("b.pdf", "bob")
	if first.ID != 1 || second.ID != 2 {
		t.Errorf("ids = %d, %d", first.ID, second.ID)
	}
	if first.State != JobPending {
		t.Errorf("new job state = %v", first.State)
	}
	if first.CreatedAt.IsZero() {
		t.Error("created timestamp not set")
	}

	jobs := p.Jobs()
	if len(jobs) != 2 || jobs[0].ID != 1 || jobs[1].ID != 2 {
		t.Errorf("Jobs() = %+v", jobs)
	}
}

func TestCancelPendingJobTerminatesImmediately(t *testing.T) {
	p := newTestPrinter(t)
	sum := p.Submit("a.pdf", "alice")

	if err := p.CancelJob(sum.ID); err != nil {
		t.Fatalf("CancelJob: %v", err)
	}
	got, _ := p.FindJob(sum.ID)
	if got.State != JobCanceled {
		t.Errorf("state = %v, want canceled", got.State)
	}
	if got.CompletedAt.IsZero() {
		t.Error("completed timestamp not set")
	}
}

func TestCancelProcessingJobOnlyMarks(t *testing.T) {
	p := newTestPrinter(t)
	sum := p.Submit("a.pdf", "alice")
	if _, ok := p.StartNextJob(); !ok {
		t.Fatal("StartNextJob found nothing")
	}

	if err := p.CancelJob(sum.ID); err != nil {
		t.Fatalf("CancelJob: %v", err)
	}
	got, _ := p.FindJob(sum.ID)
	if got.State != JobProcessing {
		t.Errorf("state = %v, processing job must stay with the processor", got.State)
	}
	if !got.Canceled {
		t.Error("canceled flag not set")
	}
	if got.CancelEligible() {
		t.Error("job must not be cancel-eligible twice")
	}

	// Second cancel is a no-op, not an error.
	if err := p.CancelJob(sum.ID); err != nil {
		t.Errorf("second cancel: %v", err)
	}

	// The processor hands it back; it finishes canceled even when the
	// pipeline reports normal completion.
	if err := p.FinishJob(sum.ID, JobCompleted); err != nil {
		t.Fatalf("FinishJob: %v", err)
	}
	got, _ = p.FindJob(sum.ID)
	if got.State != JobCanceled {
		t.Errorf("final state = %v, want canceled", got.State)
	}
}

func TestCancelJobUnknownID(t *testing.T) {
	p := newTestPrinter(t)
	err := p.CancelJob(42)
	if !errors.Is(err, ErrJobNotFound) {
		t.Errorf("err = %v, want ErrJobNotFound", err)
	}
}

func TestCancelAllJobsSkipsTerminated(t *testing.T) {
	p := newTestPrinter(t)
	done := p.Submit("done.pdf", "alice")
	if _, ok := p.StartNextJob(); !ok {
		t.Fatal("StartNextJob found nothing")
	}
	if err := p.FinishJob(done.ID, JobCompleted); err != nil {
		t.Fatalf("FinishJob: %v", err)
	}
	queued := p.Submit("queued.pdf", "bob")
	active := p.Submit("active.pdf", "carol")
	if _, ok := p.StartNextJob(); !ok {
		t.Fatal("StartNextJob found nothing")
	}

	p.CancelAllJobs()

	if got, _ := p.FindJob(done.ID); got.State != JobCompleted {
		t.Errorf("completed job changed: %v", got.State)
	}
	// queued was picked up by the second StartNextJob call, so it is
	// only marked; the pending job terminates immediately.
	if got, _ := p.FindJob(queued.ID); got.State != JobProcessing || !got.Canceled {
		t.Errorf("processing job = %+v, want marked canceled", got)
	}
	if got, _ := p.FindJob(active.ID); got.State != JobCanceled {
		t.Errorf("pending job = %v, want canceled", got.State)
	}
}

func TestStartAndFinishFlipPrinterState(t *testing.T) {
	p := newTestPrinter(t)
	sum := p.Submit("a.pdf", "alice")

	started, ok := p.StartNextJob()
	if !ok || started.ID != sum.ID {
		t.Fatalf("StartNextJob = %+v, %v", started, ok)
	}
	if p.State() != StateProcessing {
		t.Errorf("printer state = %v, want processing", p.State())
	}
	if started.ProcessingAt.IsZero() {
		t.Error("processing timestamp not set")
	}

	if err := p.FinishJob(sum.ID, JobCompleted); err != nil {
		t.Fatalf("FinishJob: %v", err)
	}
	if p.State() != StateIdle {
		t.Errorf("printer state = %v, want idle after last job", p.State())
	}
	got, _ := p.FindJob(sum.ID)
	if got.State != JobCompleted || got.CompletedAt.IsZero() {
		t.Errorf("finished job = %+v", got)
	}
}

func TestFinishJobRejectsNonTerminalState(t *testing.T) {
	p := newTestPrinter(t)
	sum := p.Submit("a.pdf", "alice")
	if err := p.FinishJob(sum.ID, JobProcessing); err == nil {
		t.Error("expected error for non-terminal final state")
	}
}

func TestHoldReleaseSuspendResume(t *testing.T) {
	p := newTestPrinter(t)
	sum := p.Submit("a.pdf", "alice")

	if err := p.HoldJob(sum.ID); err != nil {
		t.Fatalf("HoldJob: %v", err)
	}
	if got, _ := p.FindJob(sum.ID); got.State != JobHeld {
		t.Errorf("state = %v, want held", got.State)
	}
	// Held jobs are skipped by the processor.
	if _, ok := p.StartNextJob(); ok {
		t.Error("StartNextJob picked up a held job")
	}

	if err := p.ReleaseJob(sum.ID); err != nil {
		t.Fatalf("ReleaseJob: %v", err)
	}
	if _, ok := p.StartNextJob(); !ok {
		t.Fatal("StartNextJob found nothing after release")
	}

	if err := p.SuspendJob(sum.ID); err != nil {
		t.Fatalf("SuspendJob: %v", err)
	}
	if got, _ := p.FindJob(sum.ID); got.State != JobStopped {
		t.Errorf("state = %v, want stopped", got.State)
	}
	if err := p.ResumeJob(sum.ID); err != nil {
		t.Fatalf("ResumeJob: %v", err)
	}

	// Wrong-state transition reports the actual state.
	if err := p.ReleaseJob(sum.ID); err == nil {
		t.Error("expected error releasing a processing job")
	}
}

func TestActiveJobsAndCount(t *testing.T) {
	p := newTestPrinter(t)
	a := p.Submit("a.pdf", "alice")
	p.Submit("b.pdf", "bob")

	if err := p.CancelJob(a.ID); err != nil {
		t.Fatalf("CancelJob: %v", err)
	}

	if n := p.ActiveJobCount(); n != 1 {
		t.Errorf("ActiveJobCount = %d", n)
	}
	active := p.ActiveJobs()
	if len(active) != 1 || active[0].Name != "b.pdf" {
		t.Errorf("ActiveJobs = %+v", active)
	}
	if len(p.Jobs()) != 2 {
		t.Errorf("Jobs should keep terminated entries")
	}
}

func TestSetJobProgress(t *testing.T) {
	p := newTestPrinter(t)
	sum := p.Submit("a.pdf", "alice")
	if err := p.SetJobProgress(sum.ID, 5); err != nil {
		t.Fatalf("SetJobProgress: %v", err)
	}
	got, _ := p.FindJob(sum.ID)
	if got.ImpressionsCompleted != 5 {
		t.Errorf("impressions = %d", got.ImpressionsCompleted)
	}
	if err := p.SetJobProgress(99, 1); !errors.Is(err, ErrJobNotFound) {
		t.Errorf("err = %v, want ErrJobNotFound", err)
	}
}
