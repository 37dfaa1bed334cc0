// Package zone holds the timezone descriptors, the catalog of named zones,
// and the pure renderer that maps an instant and offset to display strings.
package zone

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// Descriptor identifies a displayable timezone. Name and OffsetLabel are
// presentation only; Zone is the authoritative IANA key and defines
// identity. Immutable once constructed.
type Descriptor struct {
	Name        string `json:"name" mapstructure:"name"`
	Zone        string `json:"zone" mapstructure:"zone"`
	OffsetLabel string `json:"offset" mapstructure:"offset"`
}

// Equal reports identity by zone key. Display fields do not participate.
func (d Descriptor) Equal(other Descriptor) bool {
	return d.Zone == other.Zone
}

// Location resolves the descriptor's IANA key. Called at selection time;
// an error here is a configuration problem, never a render-time one.
func (d Descriptor) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(d.Zone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", d.Zone, err)
	}
	return loc, nil
}

// Add appends d to the selection unless a descriptor with the same zone key
// is already present, in which case the selection is returned unchanged.
func Add(selection []Descriptor, d Descriptor) []Descriptor {
	for _, s := range selection {
		if s.Equal(d) {
			return selection
		}
	}
	return append(selection, d)
}

// Remove drops the descriptor with the given zone key, if present.
func Remove(selection []Descriptor, zoneKey string) []Descriptor {
	for i, s := range selection {
		if s.Zone == zoneKey {
			return append(selection[:i:i], selection[i+1:]...)
		}
	}
	return selection
}

// Contains reports whether the selection already holds the zone key.
func Contains(selection []Descriptor, zoneKey string) bool {
	for _, s := range selection {
		if s.Zone == zoneKey {
			return true
		}
	}
	return false
}
