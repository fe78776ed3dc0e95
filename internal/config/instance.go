package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"hetvrp/internal/customer"
	"hetvrp/internal/geo"
)

type point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type geoPoint struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

type customerEntry struct {
	X         *float64 `yaml:"x"`
	Y         *float64 `yaml:"y"`
	Latitude  *float64 `yaml:"latitude"`
	Longitude *float64 `yaml:"longitude"`
	Demand    float64  `yaml:"demand"`
}

// InstanceFile is the YAML layout of a problem instance. Customers are given
// either in plane coordinates (miles from the depot) or geographically, in
// which case center is required and they are projected about it. A
// geographic instance has its depot at center.
type InstanceFile struct {
	Depot     *point          `yaml:"depot"`
	Center    *geoPoint       `yaml:"center"`
	Customers []customerEntry `yaml:"customers"`
}

// LoadInstance reads an instance file into a customer set.
func LoadInstance(path string) (*customer.Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load instance: %w", err)
	}
	cs, err := ParseInstance(data)
	if err != nil {
		return nil, fmt.Errorf("load instance %s: %w", path, err)
	}
	return cs, nil
}

// ParseInstance decodes an instance document.
func ParseInstance(data []byte) (*customer.Set, error) {
	var f InstanceFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if len(f.Customers) == 0 {
		return nil, fmt.Errorf("no customers: %w", ErrInvalidOption)
	}
	var depot geo.Vec2
	if f.Depot != nil {
		if f.Center != nil {
			return nil, fmt.Errorf("depot and center are exclusive: %w", ErrInvalidOption)
		}
		depot = geo.Vec2{X: f.Depot.X, Y: f.Depot.Y}
	}

	cs := make([]customer.Customer, len(f.Customers))
	for i, e := range f.Customers {
		if e.Demand < 0 {
			return nil, fmt.Errorf("customer %d: negative demand %g: %w", i+1, e.Demand, ErrInvalidOption)
		}
		switch {
		case e.X != nil && e.Y != nil && e.Latitude == nil && e.Longitude == nil:
			cs[i] = customer.New(geo.Vec2{X: *e.X, Y: *e.Y}, e.Demand)
		case e.Latitude != nil && e.Longitude != nil && e.X == nil && e.Y == nil:
			if f.Center == nil {
				return nil, fmt.Errorf("customer %d: geographic position without center: %w", i+1, ErrInvalidOption)
			}
			center := geo.GeoVec2{Latitude: f.Center.Latitude, Longitude: f.Center.Longitude}
			pos := geo.GeoVec2{Latitude: *e.Latitude, Longitude: *e.Longitude}
			cs[i] = customer.New(geo.Project(pos, center), e.Demand)
		default:
			return nil, fmt.Errorf("customer %d: want x/y or latitude/longitude: %w", i+1, ErrInvalidOption)
		}
	}
	return customer.NewSet(depot, cs), nil
}
