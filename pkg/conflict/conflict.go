// pkg/conflict/conflict.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package conflict implements the pairwise proximity scan over synthesized
// trajectories, grounded on the original batch core's conflict detector and
// the teacher's great-circle distance helpers.
package conflict

import (
	"math"
	"sort"

	"github.com/Vrishab20/aeroinsight/pkg/geo"
	"github.com/Vrishab20/aeroinsight/pkg/trajectory"
)

const (
	// HorizontalThresholdNM is the horizontal separation minimum; two
	// points strictly closer than this (and vertically closer than
	// VerticalThresholdFt) are in conflict at that instant.
	HorizontalThresholdNM = 5.0
	// VerticalThresholdFt is the vertical separation minimum.
	VerticalThresholdFt = 2000

	// DefaultTimeBinSec is the width of the time bins points are grouped
	// into before the spatial bucketization pass, and also the maximum
	// gap allowed between consecutive hits before an event is split.
	DefaultTimeBinSec = 60
	// DefaultBucketDeg is the width, in degrees, of the lat/lon grid cells
	// used to bound the candidate pairs considered within a time bin.
	DefaultBucketDeg = 1.0
)

// Event is a maximal contiguous interval, allowing a gap of at most one
// time bin, during which an ordered pair of flights violated separation
// minima.
type Event struct {
	FlightA         string
	FlightB         string
	StartTime       int
	EndTime         int
	MinHorizontalNM float64
	MinVerticalFt   int
	// Severity is the sum of the horizontal and vertical proximities, each
	// normalized to [0, 1], so it ranges over [0, 2], not [0, 1].
	Severity float64
}

type bucketKey struct {
	lat int
	lon int
}

func keyFor(lat, lon, bucketDeg float64) bucketKey {
	return bucketKey{
		lat: int(math.Floor(lat / bucketDeg)),
		lon: int(math.Floor(lon / bucketDeg)),
	}
}

func neighborKeys(k bucketKey) []bucketKey {
	keys := make([]bucketKey, 0, 9)
	for dlat := -1; dlat <= 1; dlat++ {
		for dlon := -1; dlon <= 1; dlon++ {
			keys = append(keys, bucketKey{lat: k.lat + dlat, lon: k.lon + dlon})
		}
	}
	return keys
}

// acidPair is an ordered pair of flight identifiers with a < b
// lexicographically, guaranteeing flight_a < flight_b in the emitted Event.
type acidPair struct {
	a, b string
}

func pairFor(x, y string) acidPair {
	if x < y {
		return acidPair{a: x, b: y}
	}
	return acidPair{a: y, b: x}
}

type hit struct {
	timestamp  int
	horizontal float64
	vertical   int
}

// Detect scans a batch's synthesized trajectories for conflicts, returning
// events sorted by severity descending. trajectories must map each flight's
// ACID to its own point sequence; points belonging to different flights are
// the only ones ever compared.
func Detect(trajectories map[string][]trajectory.Point, timeBinSec int, bucketDeg float64) []Event {
	bins := make(map[int][]trajectory.Point)
	for _, points := range trajectories {
		for _, p := range points {
			bin := p.Timestamp / timeBinSec
			bins[bin] = append(bins[bin], p)
		}
	}

	rawHits := make(map[acidPair][]hit)

	for _, points := range bins {
		spatial := make(map[bucketKey][]trajectory.Point)
		for _, p := range points {
			k := keyFor(p.Lat, p.Lon, bucketDeg)
			spatial[k] = append(spatial[k], p)
		}

		type pairTimeKey struct {
			pair      acidPair
			timestamp int
		}
		checked := make(map[pairTimeKey]bool)

		for bucket, bucketPoints := range spatial {
			var candidates []trajectory.Point
			for _, n := range neighborKeys(bucket) {
				candidates = append(candidates, spatial[n]...)
			}

			for _, a := range bucketPoints {
				for _, b := range candidates {
					if a.ACID == b.ACID {
						continue
					}
					pair := pairFor(a.ACID, b.ACID)
					pk := pairTimeKey{pair: pair, timestamp: a.Timestamp}
					if checked[pk] {
						continue
					}
					checked[pk] = true

					horizontalNM := geo.GreatCircleNM(geo.Waypoint{Lat: a.Lat, Lon: a.Lon}, geo.Waypoint{Lat: b.Lat, Lon: b.Lon})
					verticalFt := abs(a.AltitudeFt - b.AltitudeFt)
					if horizontalNM < HorizontalThresholdNM && verticalFt < VerticalThresholdFt {
						rawHits[pair] = append(rawHits[pair], hit{timestamp: a.Timestamp, horizontal: horizontalNM, vertical: verticalFt})
					}
				}
			}
		}
	}

	pairs := make([]acidPair, 0, len(rawHits))
	for pair := range rawHits {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].a != pairs[j].a {
			return pairs[i].a < pairs[j].a
		}
		return pairs[i].b < pairs[j].b
	})

	var events []Event
	for _, pair := range pairs {
		hits := rawHits[pair]
		sort.Slice(hits, func(i, j int) bool { return hits[i].timestamp < hits[j].timestamp })

		start := hits[0].timestamp
		end := hits[0].timestamp
		minH := hits[0].horizontal
		minV := hits[0].vertical

		flush := func() {
			events = append(events, Event{
				FlightA:         pair.a,
				FlightB:         pair.b,
				StartTime:       start,
				EndTime:         end + timeBinSec,
				MinHorizontalNM: round4(minH),
				MinVerticalFt:   minV,
				Severity:        severity(minH, minV),
			})
		}

		for _, h := range hits[1:] {
			if h.timestamp <= end+timeBinSec {
				end = h.timestamp
				if h.horizontal < minH {
					minH = h.horizontal
				}
				if h.vertical < minV {
					minV = h.vertical
				}
				continue
			}
			flush()
			start, end, minH, minV = h.timestamp, h.timestamp, h.horizontal, h.vertical
		}
		flush()
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].Severity > events[j].Severity })
	return events
}

func severity(horizontalNM float64, verticalFt int) float64 {
	horiz := (HorizontalThresholdNM - horizontalNM) / HorizontalThresholdNM
	if horiz < 0 {
		horiz = 0
	}
	vert := (VerticalThresholdFt - float64(verticalFt)) / VerticalThresholdFt
	if vert < 0 {
		vert = 0
	}
	return round4(horiz + vert)
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
