package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name      string
		lat       string
		lng       string
		expectErr bool
	}{
		{name: "valid coordinates", lat: "10.9878", lng: "-74.7889", expectErr: false},
		{name: "valid negative latitude", lat: "-33.4489", lng: "-70.6693", expectErr: false},
		{name: "malformed latitude", lat: "not-a-number", lng: "-74.7889", expectErr: true},
		{name: "malformed longitude", lat: "10.9878", lng: "", expectErr: true},
		{name: "latitude out of range", lat: "91.0", lng: "-74.7889", expectErr: true},
		{name: "longitude out of range", lat: "10.9878", lng: "-180.5", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, err := ParseCoordinates(tt.lat, tt.lng)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, point.Latitude, point.Latitude, 0.0001)
		})
	}
}

func TestDistanceMeters(t *testing.T) {
	// Barranquilla city center to a point roughly 1.1km north
	p1 := GeoPoint{Latitude: 10.9878, Longitude: -74.7889}
	p2 := GeoPoint{Latitude: 10.9978, Longitude: -74.7889}

	d := DistanceMeters(p1, p2)
	assert.InDelta(t, 1112, d, 20)

	// Same point is zero
	assert.Equal(t, 0.0, DistanceMeters(p1, p1))
}

func TestEncodeDecodeGeohash(t *testing.T) {
	point := GeoPoint{Latitude: 10.9878, Longitude: -74.7889}

	hash := EncodePoint(point, GeohashPrecision)
	require.Len(t, hash, GeohashPrecision)

	lat, lng := DecodeGeohash(hash)
	assert.InDelta(t, point.Latitude, lat, 0.01)
	assert.InDelta(t, point.Longitude, lng, 0.01)
}

func TestNeighbors(t *testing.T) {
	hash := EncodePoint(GeoPoint{Latitude: 10.9878, Longitude: -74.7889}, GeohashPrecision)
	neighbors := Neighbors(hash)
	assert.Len(t, neighbors, 8)
}
