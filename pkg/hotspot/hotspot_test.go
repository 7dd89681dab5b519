// pkg/hotspot/hotspot_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package hotspot

import (
	"testing"

	"github.com/Vrishab20/aeroinsight/pkg/trajectory"
)

func point(acid string, lat, lon float64, alt, ts int) trajectory.Point {
	return trajectory.Point{ACID: acid, Lat: lat, Lon: lon, AltitudeFt: alt, Timestamp: ts, SpeedKt: 360}
}

func TestDetectPeakDensityAtCongestedCell(t *testing.T) {
	cfg := DefaultConfig()
	trajectories := map[string][]trajectory.Point{
		"A": {point("A", 45.0, -75.3, 30000, 0)},
		"B": {point("B", 45.1, -75.1, 30000, 0)},
		"C": {point("C", 45.2, -75.2, 30000, 0)},
		"D": {point("D", 10.0, 10.0, 30000, 0)},
	}

	cells := Detect(trajectories, cfg)
	if len(cells) == 0 {
		t.Fatal("expected at least one cell")
	}
	top := cells[0]
	if top.PeakDensity != 3 {
		t.Errorf("top cell peak_density = %d, want 3", top.PeakDensity)
	}
	if top.UniqueFlights != 3 {
		t.Errorf("top cell unique_flights = %d, want 3", top.UniqueFlights)
	}
}

func TestDetectInvariantsHold(t *testing.T) {
	cfg := DefaultConfig()
	trajectories := map[string][]trajectory.Point{
		"A": {point("A", 45.0, -75.0, 30000, 0), point("A", 45.0, -75.0, 30000, 60)},
	}
	cells := Detect(trajectories, cfg)
	for _, c := range cells {
		if c.TimeStart >= c.TimeEnd {
			t.Errorf("cell time_start %d >= time_end %d", c.TimeStart, c.TimeEnd)
		}
		if c.PeakDensity < 1 {
			t.Errorf("cell peak_density = %d, want >= 1", c.PeakDensity)
		}
	}
}

func TestDetectRespectsTopN(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TopN = 1

	trajectories := map[string][]trajectory.Point{
		"A": {point("A", 45.0, -75.0, 30000, 0)},
		"B": {point("B", 10.0, 10.0, 30000, 0)},
	}
	cells := Detect(trajectories, cfg)
	if len(cells) != 1 {
		t.Fatalf("expected 1 cell with TopN=1, got %d", len(cells))
	}
}

func TestDetectSortedByScoreDescending(t *testing.T) {
	cfg := DefaultConfig()
	trajectories := map[string][]trajectory.Point{
		"A": {point("A", 45.0, -75.0, 30000, 0)},
		"B": {point("B", 45.0, -75.0, 30000, 0)},
		"C": {point("C", 10.0, 10.0, 30000, 0)},
	}
	cells := Detect(trajectories, cfg)
	for i := 1; i < len(cells); i++ {
		if cells[i].Score > cells[i-1].Score {
			t.Fatalf("cells not sorted by score descending at index %d", i)
		}
	}
}
