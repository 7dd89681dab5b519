// pkg/resolver/resolver.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package resolver enumerates tactical maneuver candidates for each side of
// a conflict, filters them against the flight's aircraft constraints, and
// scores the survivors by a benefit-minus-cost function, grounded on the
// original batch core's resolver and scoring modules.
package resolver

import (
	"fmt"
	"sort"

	"github.com/Vrishab20/aeroinsight/pkg/conflict"
	"github.com/Vrishab20/aeroinsight/pkg/flightplan"
	"github.com/Vrishab20/aeroinsight/pkg/util"
)

// Step sets mirror the original tuning: altitude and speed deltas are
// filtered against the aircraft's constraint band before being offered;
// departure candidates are always offered, and a reroute candidate whenever
// the flight's route is non-empty, since they don't change the aircraft's
// flight envelope.
var (
	AltitudeStepsFt  = []int{-4000, -2000, 2000, 4000}
	SpeedStepsKt     = []int{-25, -15, -10, 10, 15, 25}
	DepartureStepsMin = []int{-10, -5, -2, 2, 5, 10}
)

// RerouteWaypoint is the single synthetic waypoint reroute candidates
// propose inserting.
const RerouteWaypoint = "FIX01"

// Candidate is a single tentative single-flight maneuver, with exactly one
// of its Delta*/RerouteWaypoint fields populated.
type Candidate struct {
	FlightID            string
	ActionType          string
	Summary             string
	DeltaAltitudeFt     *int
	DeltaSpeedKt        *int
	DeltaDepartureMin   *int
	RerouteWaypoint     *string
	Score               float64
	Benefit             float64
	Cost                float64
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

// validWithDelta reports whether flight still validates cleanly (zero
// issues, including the "unknown plane type" informational one) after
// applying the given altitude/speed delta. Matching the source this is
// derived from, an unmatched aircraft descriptor invalidates every
// altitude/speed candidate for that flight, not just out-of-band ones.
func validWithDelta(flight flightplan.FlightPlan, deltaAlt, deltaSpeed int) bool {
	updated := flight
	if deltaAlt != 0 {
		updated = updated.WithAltitudeDelta(deltaAlt)
	}
	if deltaSpeed != 0 {
		updated = updated.WithSpeedDelta(deltaSpeed)
	}
	return len(flightplan.Validate(updated)) == 0
}

func candidatesFor(flight flightplan.FlightPlan) []Candidate {
	var candidates []Candidate

	for _, delta := range AltitudeStepsFt {
		if validWithDelta(flight, delta, 0) {
			candidates = append(candidates, Candidate{
				FlightID:        flight.ACID,
				ActionType:      "altitude",
				Summary:         fmt.Sprintf("Change altitude by %+d ft", delta),
				DeltaAltitudeFt: intPtr(delta),
			})
		}
	}

	for _, delta := range SpeedStepsKt {
		if validWithDelta(flight, 0, delta) {
			candidates = append(candidates, Candidate{
				FlightID:     flight.ACID,
				ActionType:   "speed",
				Summary:      fmt.Sprintf("Change speed by %+d kt", delta),
				DeltaSpeedKt: intPtr(delta),
			})
		}
	}

	for _, delta := range DepartureStepsMin {
		candidates = append(candidates, Candidate{
			FlightID:          flight.ACID,
			ActionType:        "departure",
			Summary:           fmt.Sprintf("Shift departure by %+d min", delta),
			DeltaDepartureMin: intPtr(delta),
		})
	}

	if flight.Route != "" {
		candidates = append(candidates, Candidate{
			FlightID:        flight.ACID,
			ActionType:      "reroute",
			Summary:         fmt.Sprintf("Insert waypoint %s", RerouteWaypoint),
			RerouteWaypoint: strPtr(RerouteWaypoint),
		})
	}

	return candidates
}

// Propose generates, filters, and scores resolution candidates for both
// sides of every conflict, keeping the top 3 by score per conflict-side.
// The result is an OrderedMap keyed `"<flight_a>-<flight_b>:<flight_id>"`
// in the order conflicts (and sides within a conflict) were processed, so
// serialized output is reproducible without relying on Go's unordered map
// iteration.
func Propose(conflicts []conflict.Event, flights map[string]flightplan.FlightPlan, w Weights) *util.OrderedMap {
	proposals := util.NewOrderedMap()

	for _, ev := range conflicts {
		for _, flightID := range []string{ev.FlightA, ev.FlightB} {
			flight, ok := flights[flightID]
			if !ok {
				continue
			}

			scored := make([]Candidate, 0, len(candidatesFor(flight)))
			for _, c := range candidatesFor(flight) {
				scored = append(scored, score(c, ev, w))
			}
			sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
			if len(scored) > 3 {
				scored = scored[:3]
			}

			key := fmt.Sprintf("%s-%s:%s", ev.FlightA, ev.FlightB, flightID)
			proposals.Set(key, scored)
		}
	}

	return proposals
}

// ProposalEntry is one conflict-side's resolution candidates, in
// construction order. Serializing proposals as a slice of entries (rather
// than the OrderedMap directly) keeps wire formats that don't special-case
// ordered maps — msgpack in particular — just as order-stable as JSON,
// since slice order survives any encoding.
type ProposalEntry struct {
	Key        string
	Candidates []Candidate
}

// Entries flattens an OrderedMap built by Propose into its construction
// order.
func Entries(proposals *util.OrderedMap) []ProposalEntry {
	keys := proposals.Keys()
	entries := make([]ProposalEntry, 0, len(keys))
	for _, key := range keys {
		v, ok := proposals.Get(key)
		if !ok {
			continue
		}
		candidates, _ := v.([]Candidate)
		entries = append(entries, ProposalEntry{Key: key, Candidates: candidates})
	}
	return entries
}
