package nats

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncastellanos/flotilla/internal/pkg/models"
	ws "github.com/ncastellanos/flotilla/internal/pkg/websocket"
)

func newTestNatsHandler() *NatsHandler {
	manager := ws.NewManager(models.JWTConfig{Secret: "test-secret"})
	return NewNatsHandler(nil, manager)
}

func TestHandleLocationUpdate(t *testing.T) {
	h := newTestNatsHandler()

	event := models.LocationEvent{
		DriverID:  uuid.NewString(),
		Latitude:  "10.5",
		Longitude: "-74.2",
	}
	message, err := json.Marshal(event)
	require.NoError(t, err)

	assert.NoError(t, h.handleLocationUpdate(message))
}

func TestHandleLocationUpdate_Malformed(t *testing.T) {
	h := newTestNatsHandler()
	assert.Error(t, h.handleLocationUpdate([]byte("not json")))
}

func TestHandleTransmissionStopped(t *testing.T) {
	h := newTestNatsHandler()

	message, err := json.Marshal(models.TransmissionStoppedEvent{DriverID: uuid.NewString()})
	require.NoError(t, err)

	assert.NoError(t, h.handleTransmissionStopped(message))
}
