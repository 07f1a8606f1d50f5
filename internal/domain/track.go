package domain

import "github.com/golang/geo/s2"

// EarthRadiusKm is the mean Earth radius used for track lengths.
const EarthRadiusKm = 6371.0088

// TrackLengthKm returns the great-circle length of the storm's track, summed
// over consecutive points.
func (s Storm) TrackLengthKm() float64 {
	var radians float64
	for i := 1; i < len(s.Points); i++ {
		a := s2.LatLngFromDegrees(s.Points[i-1].Lat, s.Points[i-1].Lng)
		b := s2.LatLngFromDegrees(s.Points[i].Lat, s.Points[i].Lng)
		radians += a.Distance(b).Radians()
	}
	return radians * EarthRadiusKm
}
