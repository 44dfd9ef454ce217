package constants

// Redis key formats
const (
	KeyDriverLocation = "driver:location:%s" // Format: driver:location:{driver_id}
	KeyTransmitting   = "drivers:transmitting"
	KeyDriverGeo      = "drivers:geo" // GeoHash set of all driver positions
)

// Redis hash fields
const (
	FieldLatitude     = "lat"
	FieldLongitude    = "lng"
	FieldTransmitting = "transmitting"
	FieldGeohash      = "geohash"
	FieldTimestamp    = "ts"
)
