// Package dnssd advertises printers over DNS-SD (Bonjour) so that
// clients and the admin pages are reachable by the configured
// dns_sd_name. Registrations follow the name: renaming a printer on
// the configuration page re-registers it.
package dnssd

import (
	"fmt"
	"sync"

	"github.com/grandcat/zeroconf"

	"printdesk/server/logger"
	"printdesk/server/printer"
)

// registration tracks one printer's live DNS-SD services.
type registration struct {
	instance string
	servers  []*zeroconf.Server
}

// Advertiser registers printers as _ipp._tcp and _http._tcp services
// on the local domain.
type Advertiser struct {
	port int
	log  *logger.Logger

	mu   sync.Mutex
	regs map[string]*registration // keyed by printer queue name
}

// NewAdvertiser creates an advertiser announcing services on port.
func NewAdvertiser(port int, log *logger.Logger) *Advertiser {
	return &Advertiser{
		port: port,
		log:  log,
		regs: make(map[string]*registration),
	}
}

// Advertise registers (or re-registers after a rename) one printer.
// The service instance name is the printer's dns_sd_name, falling back
// to the queue name.
func (a *Advertiser) Advertise(p *printer.Printer) error {
	ident := p.Identity()
	instance := ident.DNSSDName
	if instance == "" {
		instance = p.Name()
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if reg, ok := a.regs[p.Name()]; ok {
		if reg.instance == instance {
			return nil
		}
		shutdown(reg)
		delete(a.regs, p.Name())
	}

	txt := []string{
		"txtvers=1",
		"rp=printers/" + p.Name(),
	}
	if ident.Location != "" {
		txt = append(txt, "note="+ident.Location)
	}

	reg := &registration{instance: instance}
	for _, svc := range []string{"_ipp._tcp", "_http._tcp"} {
		srv, err := zeroconf.Register(instance, svc, "local.", a.port, txt, nil)
		if err != nil {
			shutdown(reg)
			return fmt.Errorf("dnssd register %s for %q: %w", svc, instance, err)
		}
		reg.servers = append(reg.servers, srv)
	}
	a.regs[p.Name()] = reg

	if a.log != nil {
		a.log.Info("DNS-SD registered", "printer", p.Name(), "instance", instance, "port", a.port)
	}
	return nil
}

// Remove withdraws a printer's services.
func (a *Advertiser) Remove(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if reg, ok := a.regs[name]; ok {
		shutdown(reg)
		delete(a.regs, name)
	}
}

// Close withdraws every registration.
func (a *Advertiser) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for name, reg := range a.regs {
		shutdown(reg)
		delete(a.regs, name)
	}
}

// HandleEvent keeps registrations in step with the system: new
// printers are advertised, renamed printers re-registered. Wire it
// with System.OnEvent.
func (a *Advertiser) HandleEvent(system *printer.System) func(printer.Event) {
	return func(ev printer.Event) {
		switch ev.Type {
		case printer.EventPrinterAdded, printer.EventPrinterConfigChanged:
			p, ok := system.Printer(ev.Printer)
			if !ok {
				return
			}
			if err := a.Advertise(p); err != nil && a.log != nil {
				a.log.Warn("DNS-SD registration failed", "printer", ev.Printer, "error", err.Error())
			}
		}
	}
}

func shutdown(reg *registration) {
	for _, srv := range reg.servers {
		srv.Shutdown()
	}
	reg.servers = nil
}
