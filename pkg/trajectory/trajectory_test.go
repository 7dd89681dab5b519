// pkg/trajectory/trajectory_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package trajectory

import (
	"testing"

	"github.com/Vrishab20/aeroinsight/pkg/flightplan"
	"github.com/Vrishab20/aeroinsight/pkg/geo"
)

func testFlight() flightplan.FlightPlan {
	return flightplan.FlightPlan{
		ACID:          "ACA123",
		PlaneType:     "Boeing 737",
		Route:         "0N/0E 0N/2E",
		AltitudeFt:    30000,
		DepartureTime: 0,
		SpeedKt:       360,
		Passengers:    150,
	}
}

func TestBuildStartsAtDeparture(t *testing.T) {
	route := []geo.Waypoint{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 2}}
	track, err := Build(testFlight(), route, 60)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(track) == 0 {
		t.Fatal("expected at least one point")
	}
	if track[0].Timestamp != 0 {
		t.Errorf("first timestamp = %d, want 0", track[0].Timestamp)
	}
	if track[0].Lat != 0 || track[0].Lon != 0 {
		t.Errorf("first point = %+v, want origin", track[0])
	}
}

func TestBuildEndsNearFinalWaypoint(t *testing.T) {
	route := []geo.Waypoint{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 2}}
	track, err := Build(testFlight(), route, 60)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	last := track[len(track)-1]
	if last.Lon < 1.9 {
		t.Errorf("last point lon = %v, expected close to 2", last.Lon)
	}
}

func TestBuildRejectsDegenerateRoute(t *testing.T) {
	route := []geo.Waypoint{{Lat: 0, Lon: 0}}
	if _, err := Build(testFlight(), route, 60); err == nil {
		t.Error("expected error for single-waypoint route")
	}
}

func TestBuildRejectsNonPositiveSampleInterval(t *testing.T) {
	route := []geo.Waypoint{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 2}}
	if _, err := Build(testFlight(), route, 0); err == nil {
		t.Error("expected error for zero sample interval")
	}
}

func TestBuildMonotonicTimestamps(t *testing.T) {
	route := []geo.Waypoint{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 2}, {Lat: 1, Lon: 2}}
	track, err := Build(testFlight(), route, 60)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i := 1; i < len(track); i++ {
		if track[i].Timestamp <= track[i-1].Timestamp {
			t.Fatalf("non-monotonic timestamps at %d: %d <= %d", i, track[i].Timestamp, track[i-1].Timestamp)
		}
	}
}
