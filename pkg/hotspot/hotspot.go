// pkg/hotspot/hotspot.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package hotspot aggregates synthesized trajectories into a 4D occupancy
// grid (lat/lon/altitude-band/time-bin) and projects it down to ranked 3D
// congestion cells, grounded on the original batch core's hotspot detector.
package hotspot

import (
	"math"
	"sort"

	"github.com/Vrishab20/aeroinsight/pkg/trajectory"
)

// Config bounds the occupancy grid's cell dimensions and the number of
// cells returned.
type Config struct {
	LatBucketDeg   float64
	LonBucketDeg   float64
	AltitudeBandFt int
	TimeBinSec     int
	TopN           int
}

// DefaultConfig matches the cadence the conflict detector uses, so both
// passes can share one trajectory map without surprising a caller who
// expects consistent bucket granularity across the two analyses.
func DefaultConfig() Config {
	return Config{
		LatBucketDeg:   1.0,
		LonBucketDeg:   1.0,
		AltitudeBandFt: 2000,
		TimeBinSec:     60,
		TopN:           10,
	}
}

// Cell is a ranked 3D congestion cell (lat/lon/altitude-band), aggregated
// over every time bin in which it held traffic.
type Cell struct {
	LatBucket        int
	LonBucket        int
	AltitudeBand     int
	TimeStart        int
	TimeEnd          int
	PeakDensity      int
	OccupancyMinutes int
	UniqueFlights    int
	Score            float64
}

type cellKey struct {
	lat int
	lon int
	alt int
}

// cellStats is the tagged accumulator per REDESIGN FLAG: a typed record of
// known fields rather than a dict of heterogeneous value types, so the
// projection step below never needs a type switch to read it back out.
type cellStats struct {
	peakDensity int
	timeBins    map[int]struct{}
	flights     map[string]struct{}
}

func newCellStats() *cellStats {
	return &cellStats{timeBins: make(map[int]struct{}), flights: make(map[string]struct{})}
}

func bucket(value float64, step float64) int {
	return int(math.Floor(value / step))
}

// Detect builds the 4D occupancy grid over every flight's trajectory and
// returns the top TopN cells by score, descending.
func Detect(trajectories map[string][]trajectory.Point, cfg Config) []Cell {
	type occupancyKey struct {
		lat, lon, alt, timeBin int
	}
	occupancy := make(map[occupancyKey][]trajectory.Point)

	for _, points := range trajectories {
		for _, p := range points {
			key := occupancyKey{
				lat:     bucket(p.Lat, cfg.LatBucketDeg),
				lon:     bucket(p.Lon, cfg.LonBucketDeg),
				alt:     bucket(float64(p.AltitudeFt), float64(cfg.AltitudeBandFt)),
				timeBin: p.Timestamp / cfg.TimeBinSec,
			}
			occupancy[key] = append(occupancy[key], p)
		}
	}

	cells := make(map[cellKey]*cellStats)
	for key, points := range occupancy {
		ck := cellKey{lat: key.lat, lon: key.lon, alt: key.alt}
		stats, ok := cells[ck]
		if !ok {
			stats = newCellStats()
			cells[ck] = stats
		}
		if len(points) > stats.peakDensity {
			stats.peakDensity = len(points)
		}
		stats.timeBins[key.timeBin] = struct{}{}
		for _, p := range points {
			stats.flights[p.ACID] = struct{}{}
		}
	}

	var out []Cell
	for ck, stats := range cells {
		if len(stats.timeBins) == 0 {
			continue
		}
		bins := make([]int, 0, len(stats.timeBins))
		for b := range stats.timeBins {
			bins = append(bins, b)
		}
		sort.Ints(bins)

		timeStart := bins[0] * cfg.TimeBinSec
		timeEnd := (bins[len(bins)-1] + 1) * cfg.TimeBinSec
		occupancyMinutes := len(bins) * (cfg.TimeBinSec / 60)
		uniqueFlights := len(stats.flights)
		peakDensity := stats.peakDensity

		score := round4(float64(peakDensity)*0.6 + float64(uniqueFlights)*0.3 + float64(occupancyMinutes)*0.1)

		out = append(out, Cell{
			LatBucket:        ck.lat,
			LonBucket:        ck.lon,
			AltitudeBand:     ck.alt,
			TimeStart:        timeStart,
			TimeEnd:          timeEnd,
			PeakDensity:      peakDensity,
			OccupancyMinutes: occupancyMinutes,
			UniqueFlights:    uniqueFlights,
			Score:            score,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		// Deterministic tie-break: hash-map iteration order is not
		// stable across runs, so cells with identical scores fall
		// back to their grid coordinates.
		if out[i].LatBucket != out[j].LatBucket {
			return out[i].LatBucket < out[j].LatBucket
		}
		if out[i].LonBucket != out[j].LonBucket {
			return out[i].LonBucket < out[j].LonBucket
		}
		return out[i].AltitudeBand < out[j].AltitudeBand
	})

	if cfg.TopN > 0 && len(out) > cfg.TopN {
		out = out[:cfg.TopN]
	}
	return out
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
