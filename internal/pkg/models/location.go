package models

// GeoPosition represents a geographical position with latitude and longitude
type GeoPosition struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationReport is the driver position payload sent to the backend
type LocationReport struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NearbyTaxi is one entry of the nearby-taxi snapshot. DistanceKm is computed
// client-side from the current position and is not part of the wire format.
type NearbyTaxi struct {
	ID         string  `json:"id"`
	DriverName string  `json:"driver_name"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKm float64 `json:"distance_km,omitempty"`
}
