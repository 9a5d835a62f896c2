// Package bodies holds the catalog of central bodies a satellite can be
// placed around: their radii, gravitational parameters, and rendering hints.
package bodies

import "strings"

// CelestialBody describes a central body: its name, mean equatorial radius
// in kilometers, and standard gravitational parameter μ in km³/s².
type CelestialBody struct {
	Name       string  `json:"name"`
	Radius     float64 `json:"radius_km"`
	Mu         float64 `json:"mu_km3_s2"`
	MarkerSize int     `json:"marker_size"`
	Color      string  `json:"color"`
}

// Catalog lists the supported central bodies. Radius and μ values follow
// Vallado's fundamentals tables.
var Catalog = []CelestialBody{
	{Name: "Earth", Radius: 6378.1363, Mu: 398600.4415, MarkerSize: 15, Color: "blue"},
	{Name: "Moon", Radius: 1738.0, Mu: 4902.8, MarkerSize: 8, Color: "gray"},
	{Name: "Mars", Radius: 3397.2, Mu: 42828.3, MarkerSize: 12, Color: "orangered"},
}

// Earth is the default central body.
var Earth = Catalog[0]

// ByName returns the body with the given name (case-insensitive),
// or nil if not found.
func ByName(name string) *CelestialBody {
	upper := strings.ToUpper(name)
	for i := range Catalog {
		if strings.ToUpper(Catalog[i].Name) == upper {
			return &Catalog[i]
		}
	}
	return nil
}
