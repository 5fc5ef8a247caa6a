package utils

import (
	"math"
	"sort"

	"github.com/mmcloughlin/geohash"

	"github.com/anqasa/smarttaxi/internal/pkg/models"
)

// EncodeLocation converts a position to a geohash string, used as a compact
// location tag in log fields
func EncodeLocation(pos models.GeoPosition, precision uint) string {
	return geohash.EncodeWithPrecision(pos.Latitude, pos.Longitude, precision)
}

// CalculateDistance calculates the distance between two positions in
// kilometers using the Haversine formula
func CalculateDistance(a, b models.GeoPosition) float64 {
	// Earth's radius in kilometers
	const earthRadius = 6371.0

	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadius * c
}

// AnnotateDistances fills in the client-side distance of each taxi from the
// given position and sorts the slice nearest first
func AnnotateDistances(taxis []models.NearbyTaxi, from models.GeoPosition) {
	for i := range taxis {
		taxis[i].DistanceKm = CalculateDistance(from, models.GeoPosition{
			Latitude:  taxis[i].Latitude,
			Longitude: taxis[i].Longitude,
		})
	}
	sort.Slice(taxis, func(i, j int) bool {
		return taxis[i].DistanceKm < taxis[j].DistanceKm
	})
}
