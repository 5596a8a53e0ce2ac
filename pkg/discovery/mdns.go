package discovery

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/enbility/zeroconf/v3"
)

// browseFunc matches zeroconf.Browse so tests can feed entries directly.
type browseFunc func(ctx context.Context, service, domain string, entries, removed chan *zeroconf.ServiceEntry, opts ...zeroconf.ClientOption) error

func zeroconfBrowse(ctx context.Context, service, domain string, entries, removed chan *zeroconf.ServiceEntry, opts ...zeroconf.ClientOption) error {
	return zeroconf.Browse(ctx, service, domain, entries, removed, opts...)
}

// MDNSDiscovery implements the Discovery interface using zeroconf.
//
// Each instance owns its own record sets; nothing is shared between
// instances, so running several authentication attempts in one process
// does not leak records from one attempt into the next.
type MDNSDiscovery struct {
	config BrowserConfig
	logger *slog.Logger
	browse browseFunc

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
	done    chan struct{}

	pairing RecordSet
	connect RecordSet
}

// NewMDNSDiscovery creates a new mDNS discovery service.
func NewMDNSDiscovery(config BrowserConfig, logger *slog.Logger) *MDNSDiscovery {
	if config.StopTimeout <= 0 {
		config.StopTimeout = DefaultStopTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &MDNSDiscovery{
		config:  config,
		logger:  logger.With("component", "discovery"),
		browse:  zeroconfBrowse,
		pairing: make(RecordSet),
		connect: make(RecordSet),
	}
}

// Start begins browsing the pairing and connect service types.
// Browsing continues until Stop is called or ctx is cancelled.
func (d *MDNSDiscovery) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.started {
		return ErrAlreadyStarted
	}

	opts, err := d.browserOptions()
	if err != nil {
		return err
	}

	browseCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	for _, stream := range []Stream{StreamPairing, StreamConnect} {
		entries := make(chan *zeroconf.ServiceEntry)
		removed := make(chan *zeroconf.ServiceEntry)
		browsed := make(chan struct{})

		wg.Add(2)
		go func() {
			defer wg.Done()
			d.receive(stream, entries, removed, browsed)
		}()
		go func() {
			defer wg.Done()
			defer close(browsed)
			err := d.browse(browseCtx, stream.ServiceType(), Domain, entries, removed, opts...)
			if err != nil && browseCtx.Err() == nil {
				d.logger.Warn("browse ended", "service", stream.ServiceType(), "error", err)
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	d.started = true
	d.cancel = cancel
	d.done = done
	d.logger.Debug("browsing started", "interface", d.config.Interface)
	return nil
}

// Stop cancels browsing and waits for the browse and receive goroutines to
// exit.
func (d *MDNSDiscovery) Stop() error {
	d.mu.Lock()
	if !d.started {
		d.mu.Unlock()
		return ErrNotStarted
	}
	d.started = false
	cancel, done := d.cancel, d.done
	d.cancel, d.done = nil, nil
	d.mu.Unlock()

	cancel()

	select {
	case <-done:
	case <-time.After(d.config.StopTimeout):
		return ErrStopTimeout
	}
	d.logger.Debug("browsing stopped")
	return nil
}

// PairingServices returns a snapshot of the pairing stream records.
func (d *MDNSDiscovery) PairingServices() RecordSet {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pairing.Clone()
}

// ConnectServices returns a snapshot of the connect stream records.
func (d *MDNSDiscovery) ConnectServices() RecordSet {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.connect.Clone()
}

// receive folds resolved entries of one stream into its record set.
//
// zeroconf sends on the channels without watching the browse context and
// closes them only once it has noticed the cancellation, so receive keeps
// draining after Stop until both channels are closed or the browse call
// has returned.
func (d *MDNSDiscovery) receive(stream Stream, entries, removed <-chan *zeroconf.ServiceEntry, browsed <-chan struct{}) {
	for entries != nil || removed != nil {
		select {
		case entry, ok := <-entries:
			if !ok {
				entries = nil
				continue
			}
			record, err := EntryToRecord(entry)
			if err != nil {
				d.logger.Warn("failed to get the ip from service", "instance", entry.Instance, "error", err)
				continue
			}
			if d.add(stream, record) {
				d.logger.Info("service resolved",
					"stream", stream.String(),
					"name", record.Name,
					"address", record.Address(),
				)
			}

		case entry, ok := <-removed:
			if !ok {
				removed = nil
				continue
			}
			// Records stay known for the lifetime of the attempt.
			d.logger.Debug("service removed", "stream", stream.String(), "instance", entry.Instance)

		case <-browsed:
			return
		}
	}
}

func (d *MDNSDiscovery) add(stream Stream, record ServiceRecord) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if stream == StreamConnect {
		return d.connect.Add(record)
	}
	return d.pairing.Add(record)
}

// browserOptions returns zeroconf client options based on config.
func (d *MDNSDiscovery) browserOptions() ([]zeroconf.ClientOption, error) {
	var opts []zeroconf.ClientOption

	if d.config.Interface != "" {
		iface, err := net.InterfaceByName(d.config.Interface)
		if err != nil {
			return nil, fmt.Errorf("interface %q: %w", d.config.Interface, err)
		}
		opts = append(opts, zeroconf.SelectIfaces([]net.Interface{*iface}))
	}

	return opts, nil
}

// EntryToRecord converts a resolved zeroconf entry to a ServiceRecord.
// The first IPv4 address is used; entries without one are rejected.
func EntryToRecord(entry *zeroconf.ServiceEntry) (ServiceRecord, error) {
	if len(entry.AddrIPv4) == 0 {
		return ServiceRecord{}, ErrNoIPv4Address
	}

	domain := strings.Trim(entry.Domain, ".")
	service := strings.Trim(entry.Service, ".")

	return ServiceRecord{
		Name:   fmt.Sprintf("%s.%s.%s.", entry.Instance, service, domain),
		IP:     entry.AddrIPv4[0].String(),
		Port:   uint16(entry.Port),
		Domain: domain,
	}, nil
}

// Ensure MDNSDiscovery implements Discovery interface.
var _ Discovery = (*MDNSDiscovery)(nil)
