// Package geo holds the planar and geographic vector types used to place
// customers, plus the distance metrics routes are costed with.
package geo

import (
	"fmt"
	"math"
)

// EarthRadiusMiles is the mean Earth radius used by the projection.
const EarthRadiusMiles = 3958.8

// Vec2 is a point or displacement in the local planar frame (miles).
type Vec2 struct {
	X, Y float64
}

// GeoVec2 is a geographic coordinate in degrees.
type GeoVec2 struct {
	Latitude, Longitude float64
}

func (a Vec2) Add(b Vec2) Vec2      { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2      { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Scale(k float64) Vec2 { return Vec2{a.X * k, a.Y * k} }
func (a Vec2) Div(k float64) Vec2   { return Vec2{a.X / k, a.Y / k} }
func (a Vec2) String() string       { return fmt.Sprintf("(%g, %g)", a.X, a.Y) }
func (a GeoVec2) Add(b GeoVec2) GeoVec2 {
	return GeoVec2{a.Latitude + b.Latitude, a.Longitude + b.Longitude}
}
func (a GeoVec2) Sub(b GeoVec2) GeoVec2 {
	return GeoVec2{a.Latitude - b.Latitude, a.Longitude - b.Longitude}
}
func (a GeoVec2) Scale(k float64) GeoVec2 {
	return GeoVec2{a.Latitude * k, a.Longitude * k}
}
func (a GeoVec2) Div(k float64) GeoVec2 {
	return GeoVec2{a.Latitude / k, a.Longitude / k}
}
func (a GeoVec2) String() string { return fmt.Sprintf("(%g, %g)", a.Latitude, a.Longitude) }

// Length is the Euclidean norm of v.
func Length(v Vec2) float64 { return math.Hypot(v.X, v.Y) }

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Project maps pos onto a plane tangent at center using the equirectangular
// approximation. Only valid for small boxes; no antimeridian or polar handling.
func Project(pos, center GeoVec2) Vec2 {
	centerLat := Radians(center.Latitude)
	return Vec2{
		X: EarthRadiusMiles * (Radians(pos.Longitude) - Radians(center.Longitude)) * math.Cos(centerLat),
		Y: EarthRadiusMiles * (Radians(pos.Latitude) - centerLat),
	}
}
