// pkg/resolver/scoring.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package resolver

import (
	"math"

	"github.com/Vrishab20/aeroinsight/pkg/conflict"
)

// Weights tunes the benefit/cost terms a candidate is scored on.
type Weights struct {
	ConflictWeight    float64
	DelayWeight       float64
	AltitudeWeight    float64
	SpeedWeight       float64
	ComplexityWeight  float64
}

// DefaultWeights matches the batch core's tuned defaults.
func DefaultWeights() Weights {
	return Weights{
		ConflictWeight:   1.0,
		DelayWeight:      0.04,
		AltitudeWeight:   0.002,
		SpeedWeight:      0.01,
		ComplexityWeight: 0.2,
	}
}

// score returns a new Candidate, a copy of c with Benefit/Cost/Score
// computed against the conflict that motivated the candidate — scoring
// never mutates its input, so the same draft candidate can be safely
// reused across scoring passes with different weights.
func score(c Candidate, ev conflict.Event, w Weights) Candidate {
	delay := absInt(derefOr(c.DeltaDepartureMin, 0))
	altitude := absInt(derefOr(c.DeltaAltitudeFt, 0))
	speed := absInt(derefOr(c.DeltaSpeedKt, 0))
	complexity := 0.3
	if c.RerouteWaypoint != nil {
		complexity = 1.0
	}

	benefit := round4(ev.Severity * w.ConflictWeight)
	cost := round4(float64(delay)*w.DelayWeight +
		float64(altitude)*w.AltitudeWeight +
		float64(speed)*w.SpeedWeight +
		complexity*w.ComplexityWeight)

	out := c
	out.Benefit = benefit
	out.Cost = cost
	out.Score = round4(benefit - cost)
	return out
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func derefOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}
