package entity

import "github.com/paulmach/orb"

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Point converts the coordinates to an orb geometry point (lng, lat order).
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// Offset returns a copy shifted by the given deltas in degrees.
func (c Coordinates) Offset(dLat, dLng float64) Coordinates {
	return Coordinates{Lat: c.Lat + dLat, Lng: c.Lng + dLng}
}

// GeoFix is a single device position reading with its reported accuracy
// radius in meters. A zero Accuracy means the source did not report one.
type GeoFix struct {
	Coordinates
	Accuracy float64 `json:"accuracy,omitempty"`
}

// BetterThan reports whether this fix has a strictly smaller accuracy radius
// than other. Fixes without a reported accuracy never win.
func (f GeoFix) BetterThan(other GeoFix) bool {
	if f.Accuracy <= 0 {
		return false
	}
	if other.Accuracy <= 0 {
		return true
	}

	return f.Accuracy < other.Accuracy
}
