// pkg/flightplan/model_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package flightplan

import "testing"

func TestWithAltitudeDeltaDoesNotMutateOriginal(t *testing.T) {
	original := FlightPlan{ACID: "ACA1", AltitudeFt: 30000}
	updated := original.WithAltitudeDelta(2000)

	if original.AltitudeFt != 30000 {
		t.Errorf("original mutated: AltitudeFt = %d, want 30000", original.AltitudeFt)
	}
	if updated.AltitudeFt != 32000 {
		t.Errorf("updated.AltitudeFt = %d, want 32000", updated.AltitudeFt)
	}
}

func TestWithSpeedDeltaDoesNotMutateOriginal(t *testing.T) {
	original := FlightPlan{ACID: "ACA1", SpeedKt: 400}
	updated := original.WithSpeedDelta(-25)

	if original.SpeedKt != 400 {
		t.Errorf("original mutated: SpeedKt = %d, want 400", original.SpeedKt)
	}
	if updated.SpeedKt != 375 {
		t.Errorf("updated.SpeedKt = %d, want 375", updated.SpeedKt)
	}
}

func TestWithDepartureDeltaConvertsMinutesToSeconds(t *testing.T) {
	original := FlightPlan{ACID: "ACA1", DepartureTime: 0}
	updated := original.WithDepartureDelta(5)

	if updated.DepartureTime != 300 {
		t.Errorf("DepartureTime = %d, want 300", updated.DepartureTime)
	}
}

func TestWithRerouteWaypointAppendsToken(t *testing.T) {
	original := FlightPlan{ACID: "ACA1", Route: "0N/0E 0N/2E"}
	updated := original.WithRerouteWaypoint("FIX01")

	if updated.Route != "0N/0E 0N/2E FIX01" {
		t.Errorf("Route = %q, want trailing FIX01", updated.Route)
	}
	if original.Route != "0N/0E 0N/2E" {
		t.Errorf("original route mutated: %q", original.Route)
	}
}
