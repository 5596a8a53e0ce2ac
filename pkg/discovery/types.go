package discovery

import (
	"errors"
	"net"
	"sort"
	"strconv"
	"time"
)

// Service type constants for mDNS.
const (
	// ServiceTypePairing is announced by devices waiting for a pair code
	// ("Pair device with pairing code" / QR code screen).
	ServiceTypePairing = "_adb-tls-pairing._tcp"

	// ServiceTypeConnect is announced by devices that already trust this
	// host and accept a direct wireless debugging session.
	ServiceTypeConnect = "_adb-tls-connect._tcp"

	// Domain is the mDNS domain. Records from any other domain are ignored.
	Domain = "local"
)

// Timing constants.
const (
	// DefaultStopTimeout bounds how long Stop waits for receivers to exit.
	DefaultStopTimeout = 10 * time.Second
)

// Discovery errors.
var (
	ErrAlreadyStarted = errors.New("discovery already started")
	ErrNotStarted     = errors.New("discovery not started")
	ErrNoIPv4Address  = errors.New("service entry has no IPv4 address")
	ErrStopTimeout    = errors.New("timeout waiting for browsers to stop")
)

// Stream identifies which of the two discovery streams a record came from.
type Stream uint8

const (
	// StreamPairing is the _adb-tls-pairing._tcp stream.
	StreamPairing Stream = iota

	// StreamConnect is the _adb-tls-connect._tcp stream.
	StreamConnect
)

// String returns the stream name.
func (s Stream) String() string {
	switch s {
	case StreamPairing:
		return "PAIRING"
	case StreamConnect:
		return "CONNECT"
	default:
		return "UNKNOWN"
	}
}

// ServiceType returns the mDNS service type browsed for the stream.
func (s Stream) ServiceType() string {
	if s == StreamConnect {
		return ServiceTypeConnect
	}
	return ServiceTypePairing
}

// ServiceRecord is an immutable snapshot of one discovered service.
// Two records are equal when all four fields are equal, so records with the
// same address but a different name are distinct.
type ServiceRecord struct {
	// Name is the announced instance name, usually decorated with the
	// service type (e.g. "adb-R58M123._adb-tls-connect._tcp.local.").
	Name string

	// IP is the textual device address.
	IP string

	// Port is the announced service port.
	Port uint16

	// Domain is the mDNS domain the record was found in.
	Domain string
}

// Address returns "ip:port". IPv6 literals are bracketed.
func (r ServiceRecord) Address() string {
	return net.JoinHostPort(r.IP, strconv.Itoa(int(r.Port)))
}

// IsLocal reports whether the record belongs to the "local" domain.
func (r ServiceRecord) IsLocal() bool {
	return r.Domain == Domain
}

// RecordSet is a set of service records.
// The zero value is not usable; create one with NewRecordSet.
type RecordSet map[ServiceRecord]struct{}

// NewRecordSet returns a set holding the given records.
func NewRecordSet(records ...ServiceRecord) RecordSet {
	s := make(RecordSet, len(records))
	for _, r := range records {
		s.Add(r)
	}
	return s
}

// Add inserts a record. It reports whether the record was new.
func (s RecordSet) Add(r ServiceRecord) bool {
	if _, ok := s[r]; ok {
		return false
	}
	s[r] = struct{}{}
	return true
}

// Contains reports whether the record is in the set.
func (s RecordSet) Contains(r ServiceRecord) bool {
	_, ok := s[r]
	return ok
}

// Len returns the number of records.
func (s RecordSet) Len() int {
	return len(s)
}

// Clone returns an independent copy of the set.
func (s RecordSet) Clone() RecordSet {
	c := make(RecordSet, len(s))
	for r := range s {
		c[r] = struct{}{}
	}
	return c
}

// Records returns the records sorted by name, ip, port and domain.
func (s RecordSet) Records() []ServiceRecord {
	out := make([]ServiceRecord, 0, len(s))
	for r := range s {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		if a.IP != b.IP {
			return a.IP < b.IP
		}
		if a.Port != b.Port {
			return a.Port < b.Port
		}
		return a.Domain < b.Domain
	})
	return out
}
