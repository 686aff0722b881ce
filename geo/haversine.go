package geo

import "math"

// EarthRadiusMeters is the mean Earth radius used by Haversine.
const EarthRadiusMeters = 6371000.0

// degToRad converts degrees to radians.
const degToRad = math.Pi / 180

// Point is an immutable latitude/longitude pair in degrees.
type Point struct {
	Lat  float64
	Long float64
}

// Known reports whether p carries a real position; (0,0) is the "unknown" marker.
func (p Point) Known() bool { return p.Lat != 0 || p.Long != 0 }

// DistanceTo returns the haversine distance in metres from p to q.
func (p Point) DistanceTo(q Point) float64 {
	return Haversine(p.Lat, p.Long, q.Lat, q.Long)
}

// Haversine returns the great-circle distance in metres between
// (lat1, lon1) and (lat2, lon2), all given in degrees.
//
// If both points are exactly (0,0) the result is 0: both positions are
// unknown and no formula result would be meaningful.
//
// Complexity: O(1).
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == 0 && lon1 == 0 && lat2 == 0 && lon2 == 0 {
		return 0
	}

	phi1 := lat1 * degToRad
	phi2 := lat2 * degToRad
	dPhi := (lat2 - lat1) * degToRad
	dLambda := (lon2 - lon1) * degToRad

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	a := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}
