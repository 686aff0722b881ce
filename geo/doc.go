// Package geo is the geographic distance oracle used by the route solvers.
//
// It exposes the haversine great-circle distance between two latitude/longitude
// pairs expressed in degrees. Results are in metres on a sphere with Earth's
// mean radius (EarthRadiusMeters).
//
// Unknown positions:
//
//	A vertex loaded without coordinates carries (0,0). When BOTH points are
//	exactly (0,0) Haversine returns 0. That zero means "position unknown",
//	not "coincident points"; callers must not treat it as a real zero-length
//	edge when coordinates are simply absent from the input.
//
// Complexity: O(1) per call, no allocations.
package geo
