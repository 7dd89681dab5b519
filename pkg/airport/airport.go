// pkg/airport/airport.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package airport defines the coordinate-lookup interface the route parser
// depends on. The embedded Canadian airport table itself is an external
// collaborator — this package treats it as injected data, never as a
// constant hard-coded into the analytical core.
package airport

import (
	"strings"

	"github.com/Vrishab20/aeroinsight/pkg/geo"
	"github.com/Vrishab20/aeroinsight/pkg/util"
)

// Lookup resolves an uppercase ICAO airport code to coordinates.
type Lookup interface {
	Coordinates(code string) (geo.Waypoint, bool)
}

// StaticTable is a reference Lookup implementation backed by an in-memory
// map, the shape the caller-supplied coordinate table takes in practice.
type StaticTable struct {
	codes map[string]geo.Waypoint
}

// NewStaticTable builds a StaticTable from a code->coordinate map. Entries
// with out-of-range coordinates are dropped and reported through the
// returned ErrorLogger's accumulated errors rather than panicking — a
// malformed table entry should not bring down the pipeline, but it
// shouldn't be silently trusted either.
func NewStaticTable(codes map[string][2]float64) (*StaticTable, *util.ErrorLogger) {
	e := &util.ErrorLogger{}
	t := &StaticTable{codes: make(map[string]geo.Waypoint, len(codes))}

	for code, ll := range codes {
		e.Push("airport " + code)
		w := geo.Waypoint{Lat: ll[0], Lon: ll[1]}
		if !w.Valid() {
			e.ErrorString("coordinates %+v out of range, dropping entry", ll)
		} else {
			t.codes[strings.ToUpper(strings.TrimSpace(code))] = w
		}
		e.Pop()
	}

	return t, e
}

// Coordinates implements Lookup.
func (t *StaticTable) Coordinates(code string) (geo.Waypoint, bool) {
	if t == nil || code == "" {
		return geo.Waypoint{}, false
	}
	w, ok := t.codes[strings.ToUpper(strings.TrimSpace(code))]
	return w, ok
}
