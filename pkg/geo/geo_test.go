// pkg/geo/geo_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package geo

import (
	"math"
	"testing"
)

func TestGreatCircleSymmetry(t *testing.T) {
	a := Waypoint{Lat: 43.6777, Lon: -79.6248}
	b := Waypoint{Lat: 45.4706, Lon: -73.7408}

	if d1, d2 := GreatCircleNM(a, b), GreatCircleNM(b, a); math.Abs(d1-d2) > 1e-9 {
		t.Errorf("GreatCircleNM not symmetric: %v vs %v", d1, d2)
	}
}

func TestGreatCircleIdentity(t *testing.T) {
	a := Waypoint{Lat: 51.1225, Lon: -114.0139}
	if d := GreatCircleNM(a, a); d != 0 {
		t.Errorf("GreatCircleNM(a, a) = %v, want 0", d)
	}
}

func TestGreatCircleKnownDistance(t *testing.T) {
	// Toronto Pearson to Montreal Trudeau is roughly 274nm.
	cyyz := Waypoint{Lat: 43.6777, Lon: -79.6248}
	cyul := Waypoint{Lat: 45.4706, Lon: -73.7408}
	d := GreatCircleNM(cyyz, cyul)
	if d < 264 || d > 284 {
		t.Errorf("GreatCircleNM(CYYZ, CYUL) = %v, expected roughly 274nm", d)
	}
}

func TestInterpolate(t *testing.T) {
	a := Waypoint{Lat: 0, Lon: 0}
	b := Waypoint{Lat: 10, Lon: 20}

	if mid := Interpolate(a, b, 0.5); mid.Lat != 5 || mid.Lon != 10 {
		t.Errorf("Interpolate midpoint = %+v, want {5 10}", mid)
	}
	if start := Interpolate(a, b, 0); start != a {
		t.Errorf("Interpolate(a, b, 0) = %+v, want %+v", start, a)
	}
	if end := Interpolate(a, b, 1); end != b {
		t.Errorf("Interpolate(a, b, 1) = %+v, want %+v", end, b)
	}
}
