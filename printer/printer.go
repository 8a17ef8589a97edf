package printer

import (
	"fmt"
	"sync"
)

// Contact identifies the person responsible for a printer. The three
// fields update together as one unit: a config submission that touches
// any of them replaces the whole value.
type Contact struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
}

// Identity holds the administrator-editable printer identification.
type Identity struct {
	DNSSDName          string  `json:"dns_sd_name"`
	Location           string  `json:"location"`
	GeoLocation        string  `json:"geo_location"` // "geo:<lat>,<lon>" URI or empty
	Organization       string  `json:"organization"`
	OrganizationalUnit string  `json:"organizational_unit"`
	Contact            Contact `json:"contact"`
}

// Printer is one managed print queue: identity, driver options, state,
// supplies, and the job queue. All mutable state is guarded by mu;
// accessors return copies and mutations go through Update* methods,
// which mutate a private copy and swap it in, so readers never observe
// a half-applied form submission.
type Printer struct {
	name       string
	driverName string
	system     *System

	mu       sync.RWMutex
	id       int64
	identity Identity
	driver   DriverOptions
	state    State
	reasons  ReasonSet
	supplies []Supply

	jobs      []*Job
	nextJobID int
}

// NewPrinter creates a printer with the given driver options. The
// printer starts idle with an empty job queue; MediaReady is sized to
// match the source list.
func NewPrinter(name, driverName string, driver DriverOptions) *Printer {
	d := driver.Clone()
	d.normalizeReady()
	p := &Printer{
		name:       name,
		driverName: driverName,
		driver:     d,
		state:      StateIdle,
		nextJobID:  1,
	}
	p.identity.DNSSDName = name
	return p
}

// Name returns the printer's queue name.
func (p *Printer) Name() string { return p.name }

// DriverName returns the driver identifier the printer was created with.
func (p *Printer) DriverName() string { return p.driverName }

// ID returns the storage row id, zero until the printer is persisted.
func (p *Printer) ID() int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.id
}

// SetID records the storage row id.
func (p *Printer) SetID(id int64) {
	p.mu.Lock()
	p.id = id
	p.mu.Unlock()
}

// State returns the current printer state.
func (p *Printer) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// SetState changes the printer state and publishes a state event.
func (p *Printer) SetState(s State) {
	p.mu.Lock()
	changed := p.state != s
	p.state = s
	p.mu.Unlock()

	if changed {
		p.notify(Event{Type: EventPrinterStateChanged, Printer: p.name})
	}
}

// Reasons returns the active state-reason set.
func (p *Printer) Reasons() ReasonSet {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.reasons
}

// SetReason sets or clears one state reason.
func (p *Printer) SetReason(r Reason, active bool) {
	p.mu.Lock()
	before := p.reasons
	if active {
		p.reasons = p.reasons.With(r)
	} else {
		p.reasons = p.reasons.Without(r)
	}
	changed := p.reasons != before
	p.mu.Unlock()

	if changed {
		p.notify(Event{Type: EventPrinterStateChanged, Printer: p.name})
	}
}

// Supplies returns a copy of the current supply list.
func (p *Printer) Supplies() []Supply {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]Supply(nil), p.supplies...)
}

// SetSupplies replaces the supply list.
func (p *Printer) SetSupplies(supplies []Supply) {
	p.mu.Lock()
	p.supplies = append([]Supply(nil), supplies...)
	p.driver.HasSupplies = len(p.supplies) > 0
	p.mu.Unlock()

	p.notify(Event{Type: EventPrinterStateChanged, Printer: p.name})
}

// HasSupplies reports whether the printer reports any supplies.
func (p *Printer) HasSupplies() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.driver.HasSupplies
}

// Identity returns a copy of the printer identity.
func (p *Printer) Identity() Identity {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.identity
}

// UpdateIdentity applies mutate to a private copy of the identity and
// swaps it in, then persists and publishes a config event. It returns
// the committed identity.
func (p *Printer) UpdateIdentity(mutate func(*Identity)) Identity {
	p.mu.Lock()
	ident := p.identity
	mutate(&ident)
	p.identity = ident
	p.mu.Unlock()

	p.persist()
	p.notify(Event{Type: EventPrinterConfigChanged, Printer: p.name})
	return ident
}

// Driver returns a deep-copied snapshot of the driver options.
func (p *Printer) Driver() DriverOptions {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.driver.Clone()
}

// UpdateDriver applies mutate to a private deep copy of the driver
// options and swaps it in, then persists and publishes a config event.
// Readers holding an earlier snapshot are unaffected.
func (p *Printer) UpdateDriver(mutate func(*DriverOptions)) DriverOptions {
	p.mu.Lock()
	d := p.driver.Clone()
	mutate(&d)
	d.normalizeReady()
	p.driver = d
	p.mu.Unlock()

	p.persist()
	p.notify(Event{Type: EventPrinterConfigChanged, Printer: p.name})
	return d
}

// SetReadyMedia replaces the whole ready-media table. The entry count
// must match the source count.
func (p *Printer) SetReadyMedia(ready []MediaCol) error {
	p.mu.Lock()
	if len(ready) != len(p.driver.Sources) {
		n := len(p.driver.Sources)
		p.mu.Unlock()
		return fmt.Errorf("ready media count %d does not match source count %d", len(ready), n)
	}
	d := p.driver.Clone()
	d.MediaReady = append([]MediaCol(nil), ready...)
	p.driver = d
	p.mu.Unlock()

	p.persist()
	p.notify(Event{Type: EventPrinterConfigChanged, Printer: p.name})
	return nil
}

// restore loads persisted identity and driver options without firing
// persistence or events. Used when loading printers from storage.
func (p *Printer) restore(ident Identity, driver DriverOptions) {
	p.mu.Lock()
	p.identity = ident
	p.driver = driver.Clone()
	p.driver.normalizeReady()
	p.mu.Unlock()
}

// persist forwards the printer to the system's write-through persister.
func (p *Printer) persist() {
	if p.system != nil {
		p.system.persistPrinter(p)
	}
}

// notify publishes an event through the owning system.
func (p *Printer) notify(ev Event) {
	if p.system != nil {
		p.system.publish(ev)
	}
}
