package viewer

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncastellanos/flotilla/internal/pkg/constants"
	"github.com/ncastellanos/flotilla/internal/pkg/models"
)

func locationEvent(t *testing.T, driverID, lat, lng string, transmitting bool) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(models.LocationEvent{
		DriverID:       driverID,
		Latitude:       lat,
		Longitude:      lng,
		IsTransmitting: transmitting,
		Timestamp:      time.Now().UnixMilli(),
	})
	require.NoError(t, err)
	return data
}

func TestApply_LocationUpdateUpserts(t *testing.T) {
	m := NewLiveMap(5 * time.Second)
	driverID := uuid.NewString()

	require.NoError(t, m.Apply(constants.EventLocationUpdate, locationEvent(t, driverID, "10.5", "-74.2", true)))
	require.NoError(t, m.Apply(constants.EventLocationUpdate, locationEvent(t, driverID, "10.6", "-74.3", true)))

	record, ok := m.Get(driverID)
	require.True(t, ok)
	assert.Equal(t, "10.6", record.Latitude)
	assert.Equal(t, 1, m.Count())
}

func TestApply_TransmissionStatusPatchesFlag(t *testing.T) {
	m := NewLiveMap(5 * time.Second)
	driverID := uuid.NewString()

	require.NoError(t, m.Apply(constants.EventLocationUpdate, locationEvent(t, driverID, "10.5", "-74.2", true)))

	data, _ := json.Marshal(models.TransmissionStatusEvent{DriverID: driverID, IsTransmitting: false})
	require.NoError(t, m.Apply(constants.EventTransmissionStatus, data))

	record, ok := m.Get(driverID)
	require.True(t, ok)
	assert.False(t, record.IsTransmitting)
	assert.Equal(t, "10.5", record.Latitude)
}

func TestApply_TransmissionStatusUnknownDriverIgnored(t *testing.T) {
	m := NewLiveMap(5 * time.Second)

	data, _ := json.Marshal(models.TransmissionStatusEvent{DriverID: uuid.NewString(), IsTransmitting: true})
	require.NoError(t, m.Apply(constants.EventTransmissionStatus, data))
	assert.Equal(t, 0, m.Count())
}

func TestApply_TransmissionStoppedRemoves(t *testing.T) {
	m := NewLiveMap(5 * time.Second)
	driverID := uuid.NewString()

	require.NoError(t, m.Apply(constants.EventLocationUpdate, locationEvent(t, driverID, "10.5", "-74.2", true)))

	data, _ := json.Marshal(models.TransmissionStoppedEvent{DriverID: driverID})
	require.NoError(t, m.Apply(constants.EventTransmissionStopped, data))

	_, ok := m.Get(driverID)
	assert.False(t, ok)
	assert.Equal(t, 0, m.Count())
}

func TestApply_UnknownEvent(t *testing.T) {
	m := NewLiveMap(5 * time.Second)
	assert.Error(t, m.Apply("telemetry", json.RawMessage(`{}`)))
}

func TestApply_MalformedPayload(t *testing.T) {
	m := NewLiveMap(5 * time.Second)
	assert.Error(t, m.Apply(constants.EventLocationUpdate, json.RawMessage(`not json`)))
}

func TestSeed_ReplacesAndDropsStale(t *testing.T) {
	m := NewLiveMap(5 * time.Second)

	staleID := uuid.NewString()
	freshID := uuid.NewString()
	pulledID := uuid.NewString()

	now := time.Now()
	m.upsert(models.LocationRecord{DriverID: staleID, Latitude: "1.0", Longitude: "1.0", Timestamp: now.Add(-time.Minute)})
	m.upsert(models.LocationRecord{DriverID: freshID, Latitude: "2.0", Longitude: "2.0", Timestamp: now})

	m.Seed([]models.LocationRecord{
		{DriverID: pulledID, Latitude: "3.0", Longitude: "3.0", IsTransmitting: true, Timestamp: now},
	})

	// Stale entry absent from the pull is dropped.
	_, ok := m.Get(staleID)
	assert.False(t, ok)

	// Fresh entry survives one grace window even though the pull missed it.
	_, ok = m.Get(freshID)
	assert.True(t, ok)

	record, ok := m.Get(pulledID)
	require.True(t, ok)
	assert.Equal(t, "3.0", record.Latitude)
}

func TestSeed_PullOverridesPush(t *testing.T) {
	m := NewLiveMap(5 * time.Second)
	driverID := uuid.NewString()

	require.NoError(t, m.Apply(constants.EventLocationUpdate, locationEvent(t, driverID, "10.5", "-74.2", true)))

	m.Seed([]models.LocationRecord{
		{DriverID: driverID, Latitude: "10.9", Longitude: "-74.9", IsTransmitting: true, Timestamp: time.Now()},
	})

	record, ok := m.Get(driverID)
	require.True(t, ok)
	assert.Equal(t, "10.9", record.Latitude)
}

func TestSnapshot_Ordered(t *testing.T) {
	m := NewLiveMap(5 * time.Second)

	m.upsert(models.LocationRecord{DriverID: "b"})
	m.upsert(models.LocationRecord{DriverID: "a"})
	m.upsert(models.LocationRecord{DriverID: "c"})

	records := m.Snapshot()
	require.Len(t, records, 3)
	assert.Equal(t, "a", records[0].DriverID)
	assert.Equal(t, "c", records[2].DriverID)
}
