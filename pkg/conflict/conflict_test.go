// pkg/conflict/conflict_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package conflict

import (
	"testing"

	"github.com/Vrishab20/aeroinsight/pkg/flightplan"
	"github.com/Vrishab20/aeroinsight/pkg/trajectory"
)

func buildTrack(t *testing.T, acid, route string, altitudeFt int) []trajectory.Point {
	t.Helper()
	f := flightplan.FlightPlan{
		ACID: acid, PlaneType: "Boeing 737", Route: route,
		AltitudeFt: altitudeFt, DepartureTime: 0, SpeedKt: 360, Passengers: 150,
	}
	points, err := flightplan.ParseRoute(route, "", "", nil)
	if err != nil {
		t.Fatalf("ParseRoute(%q): %v", route, err)
	}
	track, err := trajectory.Build(f, points, 60)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return track
}

// headOnRoutes returns two route strings, flown in opposite directions and crossing at the
// midpoint, matching the specification's head-on crossing scenario.
func headOnRoutes() (string, string) {
	return "0N/0E 0N/2E", "0N/2E 0N/0E"
}

func TestHeadOnCrossingProducesOneConflict(t *testing.T) {
	depRoute, arrRoute := headOnRoutes()
	x := buildTrack(t, "X", depRoute, 30000)
	y := buildTrack(t, "Y", arrRoute, 30000)

	events := Detect(map[string][]trajectory.Point{"X": x, "Y": y}, DefaultTimeBinSec, DefaultBucketDeg)
	if len(events) != 1 {
		t.Fatalf("expected exactly 1 conflict, got %d", len(events))
	}
	ev := events[0]
	if ev.MinHorizontalNM > 1.0 {
		t.Errorf("min_horizontal_nm = %v, expected near 0", ev.MinHorizontalNM)
	}
	if ev.MinVerticalFt != 0 {
		t.Errorf("min_vertical_ft = %v, want 0", ev.MinVerticalFt)
	}
	if ev.Severity < 1.9 || ev.Severity > 2.0 {
		t.Errorf("severity = %v, expected near 2.0", ev.Severity)
	}
	if ev.FlightA >= ev.FlightB {
		t.Errorf("FlightA=%q FlightB=%q not lexicographically ordered", ev.FlightA, ev.FlightB)
	}
}

func TestVerticalClearanceAtThresholdIsNotAConflict(t *testing.T) {
	depRoute, arrRoute := headOnRoutes()
	x := buildTrack(t, "X", depRoute, 30000)
	y := buildTrack(t, "Y", arrRoute, 32000) // exactly 2000ft away

	events := Detect(map[string][]trajectory.Point{"X": x, "Y": y}, DefaultTimeBinSec, DefaultBucketDeg)
	if len(events) != 0 {
		t.Fatalf("expected no conflicts at exactly the vertical threshold, got %d", len(events))
	}
}

func TestParallelTracksSixNMApartAreNotAConflict(t *testing.T) {
	x := buildTrack(t, "X", "0N/0E 0N/2E", 30000)
	y := buildTrack(t, "Y", "0.1N/0E 0.1N/2E", 30000)

	events := Detect(map[string][]trajectory.Point{"X": x, "Y": y}, DefaultTimeBinSec, DefaultBucketDeg)
	if len(events) != 0 {
		t.Fatalf("expected no conflicts for tracks ~6nm apart, got %d", len(events))
	}
}

func TestSeverityWithinDocumentedRange(t *testing.T) {
	if s := severity(0, 0); s != 2.0 {
		t.Errorf("severity(0, 0) = %v, want 2.0", s)
	}
	if s := severity(HorizontalThresholdNM, VerticalThresholdFt); s != 0 {
		t.Errorf("severity at thresholds = %v, want 0", s)
	}
}

func TestEventsSortedBySeverityDescending(t *testing.T) {
	depRoute, arrRoute := headOnRoutes()
	x := buildTrack(t, "X", depRoute, 30000)
	y := buildTrack(t, "Y", arrRoute, 30000)
	z := buildTrack(t, "Z", "50N/0E 50N/0.01E", 30000)

	events := Detect(map[string][]trajectory.Point{"X": x, "Y": y, "Z": z}, DefaultTimeBinSec, DefaultBucketDeg)
	for i := 1; i < len(events); i++ {
		if events[i].Severity > events[i-1].Severity {
			t.Fatalf("events not sorted by severity descending at index %d", i)
		}
	}
}
