// pkg/flightplan/classify.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package flightplan

import (
	"fmt"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ConstraintClass is the speed/altitude band an aircraft is held to.
type ConstraintClass string

const (
	Jet        ConstraintClass = "jet"
	Turboprop  ConstraintClass = "turboprop"
	Prop       ConstraintClass = "prop"
	Helicopter ConstraintClass = "helicopter"
)

// Constraints bounds an aircraft's speed (kt) and altitude (ft) bands.
type Constraints struct {
	MinSpeedKt    int
	MaxSpeedKt    int
	MinAltitudeFt int
	MaxAltitudeFt int
}

var constraintBands = map[ConstraintClass]Constraints{
	Jet:        {MinSpeedKt: 200, MaxSpeedKt: 550, MinAltitudeFt: 10000, MaxAltitudeFt: 45000},
	Turboprop:  {MinSpeedKt: 150, MaxSpeedKt: 450, MinAltitudeFt: 5000, MaxAltitudeFt: 41000},
	Prop:       {MinSpeedKt: 90, MaxSpeedKt: 220, MinAltitudeFt: 1000, MaxAltitudeFt: 18000},
	Helicopter: {MinSpeedKt: 60, MaxSpeedKt: 160, MinAltitudeFt: 0, MaxAltitudeFt: 10000},
}

// category is the finer-grained match produced by the known-aircraft
// table, before being folded down to a ConstraintClass.
type category string

const (
	categoryWidebody  category = "widebody"
	categoryNarrowbody category = "narrowbody"
	categoryRegional  category = "regional"
	categoryCargo     category = "cargo"
)

var categoryToConstraintClass = map[category]ConstraintClass{
	categoryWidebody:   Jet,
	categoryNarrowbody: Jet,
	categoryRegional:   Turboprop,
	categoryCargo:      Jet,
}

// knownAircraft maps a substring of a normalized aircraft descriptor to its
// category. Table entries are matched by the first one whose key is a
// substring of the descriptor; per the documented redesign, entries are
// sorted by descending key length before matching so specific keys
// ("boeing 787-9") are tried before generic ones ("787") regardless of map
// iteration order, which Go does not guarantee to be stable.
var knownAircraft = map[string]category{
	"boeing 787-9":     categoryWidebody,
	"boeing 787":       categoryWidebody,
	"787-9":            categoryWidebody,
	"787":              categoryWidebody,
	"boeing 777-300er": categoryWidebody,
	"boeing 777":       categoryWidebody,
	"777-300er":        categoryWidebody,
	"777":              categoryWidebody,
	"airbus a330":      categoryWidebody,
	"a330":             categoryWidebody,

	"boeing 737-800":  categoryNarrowbody,
	"boeing 737 max 8": categoryNarrowbody,
	"boeing 737 max":  categoryNarrowbody,
	"boeing 737":      categoryNarrowbody,
	"737-800":         categoryNarrowbody,
	"737 max 8":       categoryNarrowbody,
	"737 max":         categoryNarrowbody,
	"737":             categoryNarrowbody,
	"airbus a320":     categoryNarrowbody,
	"airbus a321":     categoryNarrowbody,
	"airbus a220-300": categoryNarrowbody,
	"airbus a220":     categoryNarrowbody,
	"a320":            categoryNarrowbody,
	"a321":            categoryNarrowbody,
	"a220-300":        categoryNarrowbody,
	"a220":            categoryNarrowbody,

	"dash 8-400":       categoryRegional,
	"dash 8":           categoryRegional,
	"dash-8":           categoryRegional,
	"q400":             categoryRegional,
	"embraer e195-e2":  categoryRegional,
	"embraer e195":     categoryRegional,
	"e195-e2":          categoryRegional,
	"e195":             categoryRegional,
	"embraer":          categoryRegional,
	"crj":              categoryRegional,
	"bombardier crj":   categoryRegional,

	"boeing 767-300f":  categoryCargo,
	"boeing 767f":      categoryCargo,
	"767-300f":         categoryCargo,
	"767f":             categoryCargo,
	"boeing 757-200f":  categoryCargo,
	"boeing 757f":      categoryCargo,
	"757-200f":         categoryCargo,
	"757f":             categoryCargo,
	"airbus a300-600f": categoryCargo,
	"airbus a300f":     categoryCargo,
	"a300-600f":        categoryCargo,
	"a300f":            categoryCargo,
}

// knownAircraftByLength is knownAircraft's keys, sorted from longest to
// shortest (ties broken alphabetically), computed once at init so
// classification never depends on map iteration order, even between two
// keys of equal length.
var knownAircraftByLength = sortedKnownAircraftKeys()

func sortedKnownAircraftKeys() []string {
	keys := make([]string, 0, len(knownAircraft))
	for k := range knownAircraft {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}

type classification struct {
	class   ConstraintClass
	matched bool
}

// classifyCache memoizes descriptor -> classification across a batch;
// large batches repeat airline fleets heavily, so this avoids rescanning
// the sorted key table for every flight.
var classifyCache, _ = lru.New[string, classification](4096)

// Classify maps a free-text aircraft descriptor to a ConstraintClass,
// reporting whether a specific match (table or keyword) was found.
// Unmatched descriptors default to Jet with matched=false.
func Classify(planeType string) (ConstraintClass, bool) {
	normalized := strings.ToLower(strings.TrimSpace(planeType))
	if normalized == "" {
		return Jet, false
	}

	if c, ok := classifyCache.Get(normalized); ok {
		return c.class, c.matched
	}

	class, matched := classifyUncached(normalized)
	classifyCache.Add(normalized, classification{class: class, matched: matched})
	return class, matched
}

func classifyUncached(normalized string) (ConstraintClass, bool) {
	for _, key := range knownAircraftByLength {
		if strings.Contains(normalized, key) {
			cat := knownAircraft[key]
			if class, ok := categoryToConstraintClass[cat]; ok {
				return class, true
			}
			return Jet, true
		}
	}

	switch {
	case strings.Contains(normalized, "heli"):
		return Helicopter, true
	case strings.Contains(normalized, "turboprop"),
		strings.Contains(normalized, "turbo") && strings.Contains(normalized, "prop"):
		return Turboprop, true
	case strings.Contains(normalized, "prop"), strings.Contains(normalized, "piston"):
		return Prop, true
	case strings.Contains(normalized, "jet"):
		return Jet, true
	case strings.Contains(normalized, "boeing"), strings.Contains(normalized, "airbus"):
		return Jet, true
	case strings.HasPrefix(normalized, "b7"), strings.HasPrefix(normalized, "a3"), strings.HasPrefix(normalized, "a2"):
		return Jet, true
	}

	return Jet, false
}

// Validate checks a flight's speed and altitude against its aircraft's
// constraint band, returning human-readable issues (empty means valid).
// An unmatched descriptor also produces an informational ConstraintIssue.
func Validate(f FlightPlan) []Issue {
	var issues []Issue

	class, matched := Classify(f.PlaneType)
	bands := constraintBands[class]

	if !matched {
		issues = append(issues, Issue{Kind: ConstraintIssue, Subject: f.ACID,
			Message: fmt.Sprintf("unknown plane type %q, defaulting to %q constraints", f.PlaneType, class)})
	}

	if f.SpeedKt < bands.MinSpeedKt || f.SpeedKt > bands.MaxSpeedKt {
		issues = append(issues, Issue{Kind: ConstraintIssue, Subject: f.ACID,
			Message: fmt.Sprintf("speed %dkt outside %d-%dkt", f.SpeedKt, bands.MinSpeedKt, bands.MaxSpeedKt)})
	}
	if f.AltitudeFt < bands.MinAltitudeFt || f.AltitudeFt > bands.MaxAltitudeFt {
		issues = append(issues, Issue{Kind: ConstraintIssue, Subject: f.ACID,
			Message: fmt.Sprintf("altitude %dft outside %d-%dft", f.AltitudeFt, bands.MinAltitudeFt, bands.MaxAltitudeFt)})
	}

	return issues
}

// ConstraintsFor returns the constraint band for a flight's classified
// aircraft.
func ConstraintsFor(f FlightPlan) Constraints {
	class, _ := Classify(f.PlaneType)
	return constraintBands[class]
}
