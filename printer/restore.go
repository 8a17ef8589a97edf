package printer

import "fmt"

// RestorePrinter rebuilds a persisted printer and registers it without
// firing persistence or events; the storage layer calls this at
// startup, before the persister is wired.
func (s *System) RestorePrinter(name, driverName string, id int64, ident Identity, driver DriverOptions, jobs []JobSummary) (*Printer, error) {
	p := NewPrinter(name, driverName, driver)
	p.restore(ident, driver)
	p.id = id
	for _, sum := range jobs {
		p.restoreJob(sum)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.printers[name]; exists {
		return nil, fmt.Errorf("printer %q already registered", name)
	}
	p.system = s
	s.printers[name] = p
	s.order = append(s.order, name)
	return p, nil
}
