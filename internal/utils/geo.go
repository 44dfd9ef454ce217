package utils

import (
	"fmt"
	"math"
	"strconv"

	"github.com/mmcloughlin/geohash"
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// GeohashPrecision is the precision used for ledger records; 7
// characters is roughly a 150m cell, coarse enough for map clustering.
const GeohashPrecision = 7

// ParseCoordinates parses decimal-degree strings and validates ranges.
// Coordinates travel the system as text; this is the single point where
// they become numbers.
func ParseCoordinates(latStr, lngStr string) (GeoPoint, error) {
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return GeoPoint{}, fmt.Errorf("invalid latitude %q: %w", latStr, err)
	}

	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return GeoPoint{}, fmt.Errorf("invalid longitude %q: %w", lngStr, err)
	}

	if lat < -90 || lat > 90 {
		return GeoPoint{}, fmt.Errorf("latitude %s out of range", latStr)
	}
	if lng < -180 || lng > 180 {
		return GeoPoint{}, fmt.Errorf("longitude %s out of range", lngStr)
	}

	return GeoPoint{Latitude: lat, Longitude: lng}, nil
}

// EncodePoint converts a point to a geohash string
func EncodePoint(point GeoPoint, precision uint) string {
	return geohash.EncodeWithPrecision(point.Latitude, point.Longitude, precision)
}

// DecodeGeohash converts a geohash string to latitude and longitude
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// DistanceMeters calculates the distance between two points in meters
// using the Haversine formula
func DistanceMeters(point1, point2 GeoPoint) float64 {
	const earthRadius = 6371000.0

	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// Neighbors returns the neighboring geohashes of a given geohash
func Neighbors(hash string) []string {
	return geohash.Neighbors(hash)
}
