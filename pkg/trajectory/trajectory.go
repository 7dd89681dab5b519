// pkg/trajectory/trajectory.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package trajectory synthesizes a 4D track (lat/lon/altitude/time) for a
// flight plan by sampling great-circle distance along its route at a fixed
// cadence, grounded on the original batch core's trajectory builder and the
// teacher's pkg/math great-circle helpers.
package trajectory

import (
	"fmt"
	"math"

	"github.com/Vrishab20/aeroinsight/pkg/flightplan"
	"github.com/Vrishab20/aeroinsight/pkg/geo"
)

// DefaultSampleSeconds is the cadence used when the caller doesn't override it.
const DefaultSampleSeconds = 60

// Point is a single sampled position along a flight's synthesized track.
type Point struct {
	ACID       string
	Lat        float64
	Lon        float64
	AltitudeFt int
	Timestamp  int // seconds since epoch
	SpeedKt    int
}

// segmentDistances returns the great-circle length, in nm, of each leg
// between consecutive route points.
func segmentDistances(points []geo.Waypoint) []float64 {
	distances := make([]float64, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		distances[i] = geo.GreatCircleNM(points[i], points[i+1])
	}
	return distances
}

// Build samples a flight's route into a time-ordered sequence of Points,
// advancing at groundspeed SpeedKt and emitting one sample at every
// multiple of sampleSec seconds after DepartureTime up to and including the
// route's total transit time. Unless that time is itself a multiple of
// sampleSec, the last sample lies short of the final waypoint. Route must
// contain at least two waypoints and its total length must be positive.
func Build(flight flightplan.FlightPlan, route []geo.Waypoint, sampleSec int) ([]Point, error) {
	if sampleSec <= 0 {
		return nil, fmt.Errorf("sample interval must be positive, got %d", sampleSec)
	}
	if len(route) < 2 {
		return nil, fmt.Errorf("route must have at least two waypoints, got %d", len(route))
	}

	distances := segmentDistances(route)
	var totalNM float64
	for _, d := range distances {
		totalNM += d
	}
	if totalNM <= 0 {
		return nil, fmt.Errorf("route distance must be positive")
	}

	speedKt := flight.SpeedKt
	if speedKt < 1 {
		speedKt = 1
	}
	totalSec := int(math.Ceil(totalNM / float64(speedKt) * 3600.0))

	var track []Point
	segmentIndex := 0
	segmentProgress := 0.0
	segmentRemaining := distances[0]

	for elapsed := 0; elapsed <= totalSec; {
		for segmentIndex < len(distances) && segmentRemaining <= 0 {
			segmentIndex++
			if segmentIndex < len(distances) {
				segmentRemaining = distances[segmentIndex]
				segmentProgress = 0.0
			}
		}

		var w geo.Waypoint
		if segmentIndex >= len(distances) {
			w = route[len(route)-1]
		} else {
			segLen := distances[segmentIndex]
			if segLen < 1e-6 {
				segLen = 1e-6
			}
			t := segmentProgress / segLen
			if t > 1.0 {
				t = 1.0
			}
			w = geo.Interpolate(route[segmentIndex], route[segmentIndex+1], t)
		}

		track = append(track, Point{
			ACID:       flight.ACID,
			Lat:        w.Lat,
			Lon:        w.Lon,
			AltitudeFt: flight.AltitudeFt,
			Timestamp:  flight.DepartureTime + elapsed,
			SpeedKt:    flight.SpeedKt,
		})

		elapsed += sampleSec
		advanceNM := float64(speedKt) * float64(sampleSec) / 3600.0
		segmentProgress += advanceNM
		segmentRemaining -= advanceNM
	}

	return track, nil
}
