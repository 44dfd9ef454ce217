package viewer

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ncastellanos/flotilla/internal/pkg/constants"
	"github.com/ncastellanos/flotilla/internal/pkg/models"
)

// LiveMap is the viewer-side cache of transmitting drivers. Pushed
// events patch it between polls; the periodic pull is the source of
// truth for which drivers exist. A driver present locally but absent
// from a pull is kept for one grace window in case a fresher push beat
// the poll, then dropped.
type LiveMap struct {
	mu      sync.RWMutex
	drivers map[string]models.LocationRecord
	grace   time.Duration
	nowFn   func() time.Time
}

// NewLiveMap creates an empty live map. The grace duration should match
// the poll interval.
func NewLiveMap(grace time.Duration) *LiveMap {
	return &LiveMap{
		drivers: make(map[string]models.LocationRecord),
		grace:   grace,
		nowFn:   time.Now,
	}
}

// Apply patches the map with one pushed event
func (m *LiveMap) Apply(event string, data json.RawMessage) error {
	switch event {
	case constants.EventLocationUpdate:
		var e models.LocationEvent
		if err := json.Unmarshal(data, &e); err != nil {
			return fmt.Errorf("failed to parse location update: %w", err)
		}
		m.upsert(models.LocationRecord{
			DriverID:       e.DriverID,
			Latitude:       e.Latitude,
			Longitude:      e.Longitude,
			IsTransmitting: e.IsTransmitting,
			Timestamp:      time.UnixMilli(e.Timestamp),
		})
		return nil

	case constants.EventTransmissionStatus:
		var e models.TransmissionStatusEvent
		if err := json.Unmarshal(data, &e); err != nil {
			return fmt.Errorf("failed to parse transmission status: %w", err)
		}
		m.setTransmitting(e.DriverID, e.IsTransmitting)
		return nil

	case constants.EventTransmissionStopped:
		var e models.TransmissionStoppedEvent
		if err := json.Unmarshal(data, &e); err != nil {
			return fmt.Errorf("failed to parse transmission stopped: %w", err)
		}
		m.remove(e.DriverID)
		return nil

	default:
		return fmt.Errorf("unknown event %q", event)
	}
}

// Seed reconciles the map against a full pull. Pulled records replace
// local ones; local records missing from the pull are dropped once
// their last update is older than the grace window.
func (m *LiveMap) Seed(records []models.LocationRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()

	pulled := make(map[string]bool, len(records))
	for _, record := range records {
		pulled[record.DriverID] = true
		m.drivers[record.DriverID] = record
	}

	cutoff := m.nowFn().Add(-m.grace)
	for driverID, record := range m.drivers {
		if !pulled[driverID] && record.Timestamp.Before(cutoff) {
			delete(m.drivers, driverID)
		}
	}
}

// Get returns the cached record for a driver
func (m *LiveMap) Get(driverID string) (models.LocationRecord, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	record, ok := m.drivers[driverID]
	return record, ok
}

// Snapshot returns all cached records ordered by driver ID
func (m *LiveMap) Snapshot() []models.LocationRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]models.LocationRecord, 0, len(m.drivers))
	for _, record := range m.drivers {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].DriverID < records[j].DriverID
	})
	return records
}

// Count returns the number of cached drivers
func (m *LiveMap) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.drivers)
}

func (m *LiveMap) upsert(record models.LocationRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[record.DriverID] = record
}

// setTransmitting patches the flag on an existing entry. An unknown
// driver is ignored; the next pull decides whether they exist.
func (m *LiveMap) setTransmitting(driverID string, transmitting bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.drivers[driverID]
	if !ok {
		return
	}
	record.IsTransmitting = transmitting
	m.drivers[driverID] = record
}

func (m *LiveMap) remove(driverID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drivers, driverID)
}
