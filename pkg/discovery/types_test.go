package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceRecordAddress(t *testing.T) {
	tests := []struct {
		name   string
		record ServiceRecord
		want   string
	}{
		{
			name:   "IPv4",
			record: ServiceRecord{IP: "192.168.0.197", Port: 34317},
			want:   "192.168.0.197:34317",
		},
		{
			name:   "IPv6",
			record: ServiceRecord{IP: "fe80::1", Port: 5555},
			want:   "[fe80::1]:5555",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.Address())
		})
	}
}

func TestServiceRecordEqualityByValue(t *testing.T) {
	a := ServiceRecord{Name: "adb-1", IP: "10.0.0.2", Port: 40000, Domain: "local"}
	b := ServiceRecord{Name: "adb-1", IP: "10.0.0.2", Port: 40000, Domain: "local"}
	c := ServiceRecord{Name: "adb-2", IP: "10.0.0.2", Port: 40000, Domain: "local"}

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c, "same address with a different name is a different record")

	set := NewRecordSet(a, b, c)
	assert.Equal(t, 2, set.Len())
}

func TestServiceRecordIsLocal(t *testing.T) {
	assert.True(t, ServiceRecord{Domain: "local"}.IsLocal())
	assert.False(t, ServiceRecord{Domain: "example.com"}.IsLocal())
	assert.False(t, ServiceRecord{}.IsLocal())
}

func TestRecordSetAdd(t *testing.T) {
	set := NewRecordSet()
	r := ServiceRecord{Name: "adb", IP: "10.0.0.2", Port: 1, Domain: "local"}

	assert.True(t, set.Add(r))
	assert.False(t, set.Add(r))
	assert.True(t, set.Contains(r))
	assert.Equal(t, 1, set.Len())
}

func TestRecordSetCloneIsIndependent(t *testing.T) {
	r1 := ServiceRecord{Name: "a", IP: "10.0.0.1", Port: 1, Domain: "local"}
	r2 := ServiceRecord{Name: "b", IP: "10.0.0.2", Port: 2, Domain: "local"}

	set := NewRecordSet(r1)
	clone := set.Clone()
	clone.Add(r2)

	assert.False(t, set.Contains(r2))
	assert.Equal(t, 2, clone.Len())
}

func TestRecordSetRecordsSorted(t *testing.T) {
	set := NewRecordSet(
		ServiceRecord{Name: "b", IP: "10.0.0.1", Port: 1, Domain: "local"},
		ServiceRecord{Name: "a", IP: "10.0.0.2", Port: 2, Domain: "local"},
		ServiceRecord{Name: "a", IP: "10.0.0.1", Port: 3, Domain: "local"},
	)

	got := set.Records()
	want := []ServiceRecord{
		{Name: "a", IP: "10.0.0.1", Port: 3, Domain: "local"},
		{Name: "a", IP: "10.0.0.2", Port: 2, Domain: "local"},
		{Name: "b", IP: "10.0.0.1", Port: 1, Domain: "local"},
	}
	assert.Equal(t, want, got)
}

func TestStreamServiceType(t *testing.T) {
	assert.Equal(t, ServiceTypePairing, StreamPairing.ServiceType())
	assert.Equal(t, ServiceTypeConnect, StreamConnect.ServiceType())
	assert.Equal(t, "PAIRING", StreamPairing.String())
	assert.Equal(t, "CONNECT", StreamConnect.String())
	assert.Equal(t, "UNKNOWN", Stream(9).String())
}
