// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// LatLng is the internal representation of a geographic coordinate pair.
//
// The wire and storage format is a GeoJSON Point whose coordinates are
// ordered [longitude, latitude]; the conversion between the two shapes
// happens here and nowhere else.
type LatLng struct {
	Lat float64
	Lng float64
}

// Point converts the coordinate pair to an orb.Point ([lng, lat]).
func (l LatLng) Point() orb.Point {
	return orb.Point{l.Lng, l.Lat}
}

// Geometry wraps the coordinate pair in a GeoJSON geometry
// ({"type":"Point","coordinates":[lng,lat]}).
func (l LatLng) Geometry() *geojson.Geometry {
	return geojson.NewGeometry(l.Point())
}

// FromPoint converts an orb.Point ([lng, lat]) back to a LatLng.
func FromPoint(p orb.Point) LatLng {
	return LatLng{Lat: p.Lat(), Lng: p.Lon()}
}

// FromGeometry extracts a LatLng from a GeoJSON geometry, which must be a Point.
func FromGeometry(g *geojson.Geometry) (LatLng, error) {
	if g == nil {
		return LatLng{}, errors.New("geometry is nil")
	}

	point, ok := g.Geometry().(orb.Point)
	if !ok {
		return LatLng{}, errors.Errorf("geometry is not a point: %s", g.Type)
	}

	return FromPoint(point), nil
}

// MarshalJSON serializes the pair as a GeoJSON Point, so every JSON surface
// (API responses, jsonb storage) carries `coordinates:[lng,lat]`.
func (l LatLng) MarshalJSON() ([]byte, error) {
	data, err := l.Geometry().MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode point geometry")
	}

	return data, nil
}

// UnmarshalJSON parses a GeoJSON Point back into the internal shape.
func (l *LatLng) UnmarshalJSON(data []byte) error {
	var g geojson.Geometry
	if err := json.Unmarshal(data, &g); err != nil {
		return errors.Wrap(err, "failed to decode point geometry")
	}

	parsed, err := FromGeometry(&g)
	if err != nil {
		return err
	}
	*l = parsed

	return nil
}

// GeocodeResult is a single forward-geocoding match.
type GeocodeResult struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// FallbackAddress is the human-readable stand-in used when reverse
// geocoding is unavailable (upstream failure or offline).
func FallbackAddress(lat, lng float64) string {
	return fmt.Sprintf("Location (%.6f, %.6f)", lat, lng)
}
