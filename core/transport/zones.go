// Package transport - Postcode and zone reference data
package transport

import (
	"math"

	"warequote/internal/errors"
)

// Location is a resolved postcode with its zone grouping
type Location struct {
	// Postcode is the four-digit postcode
	Postcode string `json:"postcode"`

	// Suburb is the representative suburb name
	Suburb string `json:"suburb"`

	// Lat is the latitude in degrees
	Lat float64 `json:"lat"`

	// Lon is the longitude in degrees
	Lon float64 `json:"lon"`

	// Zone is the named geographic zone
	Zone string `json:"zone"`

	// Metro is the metro region the zone belongs to
	Metro string `json:"metro"`
}

// postcodeTable maps postcodes to locations.
// Coverage follows the depots we service; an absent postcode is a hard
// failure because no distance can be derived for it.
var postcodeTable = map[string]Location{
	"2000": {Postcode: "2000", Suburb: "Sydney", Lat: -33.8688, Lon: 151.2093, Zone: "sydney_city", Metro: "sydney"},
	"2060": {Postcode: "2060", Suburb: "North Sydney", Lat: -33.8389, Lon: 151.2070, Zone: "sydney_city", Metro: "sydney"},
	"2148": {Postcode: "2148", Suburb: "Blacktown", Lat: -33.7668, Lon: 150.9054, Zone: "sydney_west", Metro: "sydney"},
	"2170": {Postcode: "2170", Suburb: "Liverpool", Lat: -33.9200, Lon: 150.9230, Zone: "sydney_west", Metro: "sydney"},
	"2200": {Postcode: "2200", Suburb: "Bankstown", Lat: -33.9171, Lon: 151.0350, Zone: "sydney_west", Metro: "sydney"},
	"2560": {Postcode: "2560", Suburb: "Campbelltown", Lat: -34.0650, Lon: 150.8142, Zone: "sydney_southwest", Metro: "sydney"},
	"2750": {Postcode: "2750", Suburb: "Penrith", Lat: -33.7507, Lon: 150.6877, Zone: "sydney_west", Metro: "sydney"},
	"2300": {Postcode: "2300", Suburb: "Newcastle", Lat: -32.9283, Lon: 151.7817, Zone: "newcastle", Metro: "newcastle"},
	"2500": {Postcode: "2500", Suburb: "Wollongong", Lat: -34.4278, Lon: 150.8931, Zone: "illawarra", Metro: "wollongong"},
	"2650": {Postcode: "2650", Suburb: "Wagga Wagga", Lat: -35.1082, Lon: 147.3598, Zone: "riverina", Metro: "riverina"},
	"2600": {Postcode: "2600", Suburb: "Canberra", Lat: -35.3081, Lon: 149.1245, Zone: "canberra", Metro: "canberra"},
	"3000": {Postcode: "3000", Suburb: "Melbourne", Lat: -37.8136, Lon: 144.9631, Zone: "melbourne_city", Metro: "melbourne"},
	"3020": {Postcode: "3020", Suburb: "Sunshine", Lat: -37.7880, Lon: 144.8330, Zone: "melbourne_west", Metro: "melbourne"},
	"3175": {Postcode: "3175", Suburb: "Dandenong", Lat: -37.9810, Lon: 145.2150, Zone: "melbourne_southeast", Metro: "melbourne"},
	"3220": {Postcode: "3220", Suburb: "Geelong", Lat: -38.1499, Lon: 144.3617, Zone: "geelong", Metro: "geelong"},
	"4000": {Postcode: "4000", Suburb: "Brisbane", Lat: -27.4698, Lon: 153.0251, Zone: "brisbane_city", Metro: "brisbane"},
	"4178": {Postcode: "4178", Suburb: "Wynnum", Lat: -27.4430, Lon: 153.1730, Zone: "brisbane_east", Metro: "brisbane"},
	"4500": {Postcode: "4500", Suburb: "Brendale", Lat: -27.3200, Lon: 152.9800, Zone: "brisbane_north", Metro: "brisbane"},
	"4217": {Postcode: "4217", Suburb: "Surfers Paradise", Lat: -28.0023, Lon: 153.4145, Zone: "gold_coast", Metro: "gold_coast"},
	"5000": {Postcode: "5000", Suburb: "Adelaide", Lat: -34.9285, Lon: 138.6007, Zone: "adelaide_city", Metro: "adelaide"},
}

// roadFactor approximates road distance from great-circle distance
const roadFactor = 1.2

// earthRadiusKm is the mean earth radius
const earthRadiusKm = 6371.0

// Resolve looks up a postcode; an unknown postcode is a fatal error
func Resolve(postcode string) (Location, error) {
	loc, ok := postcodeTable[postcode]
	if !ok {
		return Location{}, errors.Zone(postcode)
	}
	return loc, nil
}

// RoadDistanceKm estimates the road distance between two locations:
// great-circle (haversine) distance scaled by the road factor
func RoadDistanceKm(from, to Location) float64 {
	lat1 := from.Lat * math.Pi / 180
	lat2 := to.Lat * math.Pi / 180
	dLat := (to.Lat - from.Lat) * math.Pi / 180
	dLon := (to.Lon - from.Lon) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c * roadFactor
}

// SameMetro reports whether two locations sit in the same metro region
func SameMetro(a, b Location) bool {
	return a.Metro == b.Metro
}
