package http

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJSON_BearerToken(t *testing.T) {
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "Bearer my-token", r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("X-API-Key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":[{"driver_id":"d1"}]}`))
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL, time.Second).WithBearerToken("my-token")

	var envelope struct {
		Data []struct {
			DriverID string `json:"driver_id"`
		} `json:"data"`
	}
	require.NoError(t, client.GetJSON(context.Background(), "/drivers/transmitting", &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "d1", envelope.Data[0].DriverID)
}

func TestGetJSON_APIKey(t *testing.T) {
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "wall-key", r.Header.Get("X-API-Key"))
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL, time.Second).WithAPIKey("wall-key")
	assert.NoError(t, client.GetJSON(context.Background(), "/internal/drivers/transmitting", nil))
}

func TestGetJSON_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL, time.Second)
	err := client.GetJSON(context.Background(), "/drivers/transmitting", nil)
	assert.ErrorContains(t, err, "unexpected status 401")
}

func TestPostJSON_SendsBody(t *testing.T) {
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(nethttp.StatusCreated)
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL, time.Second)
	body := map[string]string{"latitude": "10.5", "longitude": "-74.2"}
	assert.NoError(t, client.PostJSON(context.Background(), "/drivers/abc/location", body, nil))
}
