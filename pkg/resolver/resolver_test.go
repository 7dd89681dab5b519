// pkg/resolver/resolver_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package resolver

import (
	"testing"

	"github.com/Vrishab20/aeroinsight/pkg/conflict"
	"github.com/Vrishab20/aeroinsight/pkg/flightplan"
)

func TestCandidatesSuppressOutOfBandAltitudeDeltas(t *testing.T) {
	flight := flightplan.FlightPlan{
		ACID: "ACA1", PlaneType: "Boeing 737", Route: "0N/0E 0N/2E",
		AltitudeFt: 44000, SpeedKt: 400,
	}

	candidates := candidatesFor(flight)

	has := func(delta int) bool {
		for _, c := range candidates {
			if c.ActionType == "altitude" && c.DeltaAltitudeFt != nil && *c.DeltaAltitudeFt == delta {
				return true
			}
		}
		return false
	}

	if has(4000) {
		t.Error("+4000ft candidate should be suppressed: 48000ft exceeds the jet ceiling")
	}
	if has(2000) {
		t.Error("+2000ft candidate should be suppressed: 46000ft exceeds the jet ceiling")
	}
	if !has(-2000) {
		t.Error("-2000ft candidate should survive: 42000ft is within the jet band")
	}
	if !has(-4000) {
		t.Error("-4000ft candidate should survive: 40000ft is within the jet band")
	}
}

func TestProposeKeepsTopThreePerConflictSide(t *testing.T) {
	flightA := flightplan.FlightPlan{ACID: "ACA1", PlaneType: "Boeing 737", Route: "0N/0E 0N/2E", AltitudeFt: 30000, SpeedKt: 400}
	flightB := flightplan.FlightPlan{ACID: "ACA2", PlaneType: "Boeing 737", Route: "0N/2E 0N/0E", AltitudeFt: 30000, SpeedKt: 400}

	ev := conflict.Event{FlightA: "ACA1", FlightB: "ACA2", StartTime: 0, EndTime: 60, MinHorizontalNM: 0, MinVerticalFt: 0, Severity: 2.0}
	flights := map[string]flightplan.FlightPlan{"ACA1": flightA, "ACA2": flightB}

	proposals := Propose([]conflict.Event{ev}, flights, DefaultWeights())
	entries := Entries(proposals)
	if len(entries) != 2 {
		t.Fatalf("expected 2 conflict-side entries, got %d", len(entries))
	}
	for _, e := range entries {
		if len(e.Candidates) > 3 {
			t.Errorf("entry %q has %d candidates, want at most 3", e.Key, len(e.Candidates))
		}
		for i := 1; i < len(e.Candidates); i++ {
			if e.Candidates[i].Score > e.Candidates[i-1].Score {
				t.Errorf("entry %q candidates not sorted by score descending", e.Key)
			}
		}
	}
}

func TestScoreIsBenefitMinusCost(t *testing.T) {
	delta := -2000
	c := Candidate{FlightID: "ACA1", ActionType: "altitude", DeltaAltitudeFt: &delta}
	ev := conflict.Event{Severity: 1.5}

	scored := score(c, ev, DefaultWeights())
	want := round4(scored.Benefit - scored.Cost)
	if scored.Score != want {
		t.Errorf("score = %v, want benefit-cost = %v", scored.Score, want)
	}
}
