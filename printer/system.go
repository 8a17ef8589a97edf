package printer

import (
	"fmt"
	"sync"
)

// EventType classifies system events pushed to subscribers.
type EventType string

const (
	EventPrinterAdded         EventType = "printer-added"
	EventPrinterStateChanged  EventType = "printer-state-changed"
	EventPrinterConfigChanged EventType = "printer-config-changed"
	EventJobCreated           EventType = "job-created"
	EventJobStateChanged      EventType = "job-state-changed"
)

// Event describes one change to a printer or job. Events fire after the
// change is committed.
type Event struct {
	Type    EventType `json:"type"`
	Printer string    `json:"printer"`
	JobID   int       `json:"job_id,omitempty"`
}

// Persister receives write-through notifications when configuration or
// job state changes. Implementations must not call back into the
// printer being saved.
type Persister interface {
	SavePrinter(p *Printer)
	SaveJob(p *Printer, job JobSummary)
}

// System is the registry of managed printers plus system-wide metadata
// (name, firmware/software versions).
type System struct {
	name string

	mu        sync.RWMutex
	versions  []Version
	printers  map[string]*Printer
	order     []string
	persister Persister
	listeners []func(Event)
}

// NewSystem creates an empty printer registry.
func NewSystem(name string) *System {
	return &System{
		name:     name,
		printers: make(map[string]*Printer),
	}
}

// Name returns the system name.
func (s *System) Name() string { return s.name }

// SetPersister installs the write-through persistence sink.
func (s *System) SetPersister(p Persister) {
	s.mu.Lock()
	s.persister = p
	s.mu.Unlock()
}

// OnEvent registers a subscriber for committed change events.
// Subscribers run synchronously and must not block.
func (s *System) OnEvent(fn func(Event)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// AddPrinter registers a printer under its queue name.
func (s *System) AddPrinter(p *Printer) error {
	s.mu.Lock()
	if _, exists := s.printers[p.name]; exists {
		s.mu.Unlock()
		return fmt.Errorf("printer %q already registered", p.name)
	}
	p.system = s
	s.printers[p.name] = p
	s.order = append(s.order, p.name)
	s.mu.Unlock()

	s.persistPrinter(p)
	s.publish(Event{Type: EventPrinterAdded, Printer: p.name})
	return nil
}

// Printer returns the registered printer with the given queue name.
func (s *System) Printer(name string) (*Printer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.printers[name]
	return p, ok
}

// Printers returns all printers in registration order.
func (s *System) Printers() []*Printer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Printer, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.printers[name])
	}
	return out
}

// publish delivers an event to every subscriber.
func (s *System) publish(ev Event) {
	s.mu.RLock()
	listeners := append(make([]func(Event), 0, len(s.listeners)), s.listeners...)
	s.mu.RUnlock()
	for _, fn := range listeners {
		fn(ev)
	}
}

// persistPrinter forwards a printer to the persister, when set.
func (s *System) persistPrinter(p *Printer) {
	s.mu.RLock()
	persister := s.persister
	s.mu.RUnlock()
	if persister != nil {
		persister.SavePrinter(p)
	}
}

// persistJob forwards a job snapshot to the persister, when set.
func (s *System) persistJob(p *Printer, sum JobSummary) {
	s.mu.RLock()
	persister := s.persister
	s.mu.RUnlock()
	if persister != nil {
		persister.SaveJob(p, sum)
	}
}
