// Package geodist computes great-circle distances between coordinate pairs.
package geodist

import "math"

// earthRadiusKM is the mean Earth radius. The spherical approximation is
// sufficient at the sub-kilometer precision the pipeline needs.
const earthRadiusKM = 6371.0

// Kilometers returns the haversine great-circle distance in kilometers
// between two points given in decimal degrees. It is a pure function and
// does not validate its inputs: callers own upstream data quality, and
// missing coordinates must be handled before calling.
func Kilometers(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlon1 := lon1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	rlon2 := lon2 * math.Pi / 180

	dlat := rlat2 - rlat1
	dlon := rlon2 - rlon1

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusKM * c
}
