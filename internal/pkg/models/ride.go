package models

// PickupAddressFallback is substituted when the passenger leaves the pickup
// address empty: the ride is picked up at the device's current position.
const PickupAddressFallback = "current location"

// Passenger count bounds for a single ride request
const (
	MinPassengerCount = 1
	MaxPassengerCount = 4
)

// RideForm is the ride request as entered by the passenger. PassengerCount is
// kept as a string because it arrives from a free-text form field and is
// validated on submission.
type RideForm struct {
	PickupAddress      string `json:"pickup_address"`
	DestinationAddress string `json:"destination_address"`
	PassengerCount     string `json:"passenger_count"`
	HasLuggage         bool   `json:"has_luggage"`
}

// RideSubmission is the outbound ride request payload. Fire-and-forget: the
// client does not track the created ride's lifecycle.
type RideSubmission struct {
	PickupLatitude     float64 `json:"pickup_latitude"`
	PickupLongitude    float64 `json:"pickup_longitude"`
	PickupAddress      string  `json:"pickup_address"`
	DestinationAddress string  `json:"destination_address"`
	PassengerCount     int     `json:"passenger_count"`
	HasLuggage         bool    `json:"has_luggage"`
}

// Ride is a ride record as returned by the backend ride history endpoint
type Ride struct {
	ID                 string  `json:"id"`
	PickupLatitude     float64 `json:"pickup_latitude"`
	PickupLongitude    float64 `json:"pickup_longitude"`
	PickupAddress      string  `json:"pickup_address"`
	DestinationAddress string  `json:"destination_address,omitempty"`
	Status             string  `json:"status"`
	DriverID           string  `json:"driver_id,omitempty"`
}
