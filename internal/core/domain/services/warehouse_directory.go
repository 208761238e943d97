package services

import (
	"errors"
	"strings"

	"parcelflow/internal/core/domain/model/warehouse"
)

// ErrNoWarehouseAvailable is returned when no active warehouse can serve the
// destination city.
var ErrNoWarehouseAvailable = errors.New("no warehouse available")

// defaultWarehouseCity receives every destination the directory has no
// explicit mapping for.
const defaultWarehouseCity = "paris"

// servedCities are the cities with their own warehouse. A destination whose
// name contains one of these routes there; everything else falls back to the
// default city.
var servedCities = []string{"paris", "marseille", "lyon", "lille", "montpellier", "rennes"}

// WarehouseDirectory is a domain service picking the warehouse that serves a
// destination city. The routing is a coarse city-name match, which mirrors
// how the warehouse network is actually laid out: one site per covered city
// plus a default hub.
type WarehouseDirectory struct{}

// NewWarehouseDirectory creates a new WarehouseDirectory instance.
func NewWarehouseDirectory() WarehouseDirectory {
	return WarehouseDirectory{}
}

// Nearest picks from the given active warehouses the one serving the
// destination city. Matching is case-insensitive and substring-based, so
// "Greater Lyon" routes to the Lyon warehouse. When the city is not covered,
// the default hub is chosen; ErrNoWarehouseAvailable when even that is
// missing from the pool.
func (d WarehouseDirectory) Nearest(destinationCity string, warehouses []*warehouse.Warehouse) (*warehouse.Warehouse, error) {
	target := defaultWarehouseCity
	lowered := strings.ToLower(destinationCity)
	for _, city := range servedCities {
		if strings.Contains(lowered, city) {
			target = city
			break
		}
	}

	var fallback *warehouse.Warehouse
	for _, w := range warehouses {
		if err := w.Validate(); err != nil {
			return nil, err
		}
		if !w.IsActive() {
			continue
		}
		city := strings.ToLower(w.City())
		if strings.Contains(city, target) {
			return w, nil
		}
		if fallback == nil && strings.Contains(city, defaultWarehouseCity) {
			fallback = w
		}
	}

	if fallback != nil {
		return fallback, nil
	}
	return nil, ErrNoWarehouseAvailable
}
