package catalog

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/signalsfoundry/space-map/model"
)

// ErrSatelliteNotFound is returned when a lookup misses.
var ErrSatelliteNotFound = errors.New("satellite not found")

// ErrSatelliteExists is returned when an add collides with an existing name.
var ErrSatelliteExists = errors.New("satellite already exists")

// EventType indicates what kind of change happened in the catalog.
type EventType int

const (
	EventSatelliteAdded EventType = iota
	EventTLEUpdated
)

// Event is emitted to subscribers when the catalog changes. The satellite is
// carried by value so subscribers never alias catalog state.
type Event struct {
	Type      EventType
	Satellite model.SatelliteDefinition
}

// Catalog is an in-memory, thread-safe store of trackable satellites keyed
// by name. The ephemeris provider subscribes to it so TLE updates replace
// propagators without a restart.
type Catalog struct {
	mu   sync.RWMutex
	sats map[string]model.SatelliteDefinition

	subs []func(Event)
}

// New constructs an empty catalog.
func New() *Catalog {
	return &Catalog{sats: make(map[string]model.SatelliteDefinition)}
}

// Subscribe registers a callback for catalog events. Callbacks run
// synchronously on the mutating goroutine, after the lock is released.
func (c *Catalog) Subscribe(fn func(Event)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}

// AddSatellite stores a new satellite. The name must be unique and the
// definition must carry a TLE.
func (c *Catalog) AddSatellite(def model.SatelliteDefinition) error {
	if def.Name == "" {
		return fmt.Errorf("add satellite: name is required")
	}
	if !def.HasTLE() {
		return fmt.Errorf("add satellite %q: TLE lines are required", def.Name)
	}

	c.mu.Lock()
	if _, exists := c.sats[def.Name]; exists {
		c.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrSatelliteExists, def.Name)
	}
	c.sats[def.Name] = def
	subs := c.subs
	c.mu.Unlock()

	c.notify(subs, Event{Type: EventSatelliteAdded, Satellite: def})
	return nil
}

// GetSatellite returns the definition for a name.
func (c *Catalog) GetSatellite(name string) (model.SatelliteDefinition, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	def, ok := c.sats[name]
	if !ok {
		return model.SatelliteDefinition{}, fmt.Errorf("%w: %q", ErrSatelliteNotFound, name)
	}
	return def, nil
}

// GetByNoradID returns the definition matching a NORAD catalog number.
func (c *Catalog) GetByNoradID(id uint32) (model.SatelliteDefinition, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, def := range c.sats {
		if def.NoradID == id {
			return def, nil
		}
	}
	return model.SatelliteDefinition{}, fmt.Errorf("%w: norad id %d", ErrSatelliteNotFound, id)
}

// ListSatellites returns all definitions sorted by name.
func (c *Catalog) ListSatellites() []model.SatelliteDefinition {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.SatelliteDefinition, 0, len(c.sats))
	for _, def := range c.sats {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// UpdateTLE replaces the element set for an existing satellite and notifies
// subscribers so propagators can be rebuilt.
func (c *Catalog) UpdateTLE(name, line1, line2 string) error {
	if line1 == "" || line2 == "" {
		return fmt.Errorf("update TLE for %q: both lines are required", name)
	}

	c.mu.Lock()
	def, ok := c.sats[name]
	if !ok {
		c.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrSatelliteNotFound, name)
	}
	def.TLELine1 = line1
	def.TLELine2 = line2
	c.sats[name] = def
	subs := c.subs
	c.mu.Unlock()

	c.notify(subs, Event{Type: EventTLEUpdated, Satellite: def})
	return nil
}

func (c *Catalog) notify(subs []func(Event), ev Event) {
	for _, fn := range subs {
		fn(ev)
	}
}
