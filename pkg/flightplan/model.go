// pkg/flightplan/model.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package flightplan holds the canonical flight record, its wire-format
// parsing, route parsing, and aircraft classification/validation — the
// parts of the pipeline grounded on the teacher's pkg/aviation.FlightPlan,
// generalized from an ATC simulator's live flight strip to a batch
// analysis record.
package flightplan

// FlightPlan is the canonical, immutable flight record the rest of the
// pipeline operates on. It is never mutated in place once parsed:
// resolution candidates are applied by producing a deep copy with a delta
// applied (see WithAltitudeDelta etc.), never by mutating the receiver.
type FlightPlan struct {
	ACID            string
	PlaneType       string
	Route           string
	AltitudeFt      int
	DepartureTime   int // seconds since epoch
	SpeedKt         int
	Passengers      int
	IsCargo         bool
	DepartureAirport string
	ArrivalAirport   string
}

// WithAltitudeDelta returns a deep copy of f with AltitudeFt shifted by
// deltaFt.
func (f FlightPlan) WithAltitudeDelta(deltaFt int) FlightPlan {
	c := deepCopy(f)
	c.AltitudeFt += deltaFt
	return c
}

// WithSpeedDelta returns a deep copy of f with SpeedKt shifted by deltaKt.
func (f FlightPlan) WithSpeedDelta(deltaKt int) FlightPlan {
	c := deepCopy(f)
	c.SpeedKt += deltaKt
	return c
}

// WithDepartureDelta returns a deep copy of f with DepartureTime shifted by
// deltaMin minutes.
func (f FlightPlan) WithDepartureDelta(deltaMin int) FlightPlan {
	c := deepCopy(f)
	c.DepartureTime += deltaMin * 60
	return c
}

// WithRerouteWaypoint returns a deep copy of f with waypoint appended as a
// trailing token of Route.
func (f FlightPlan) WithRerouteWaypoint(waypoint string) FlightPlan {
	c := deepCopy(f)
	c.Route = c.Route + " " + waypoint
	return c
}
