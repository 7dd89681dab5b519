// pkg/flightplan/route.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package flightplan

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Vrishab20/aeroinsight/pkg/airport"
	"github.com/Vrishab20/aeroinsight/pkg/geo"
)

// waypointRE matches a single route token of the form <deg>[.<frac>](N|S)/<deg>[.<frac>](E|W),
// case-insensitive, anchored.
var waypointRE = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)([NS])/(\d+(?:\.\d+)?)([EW])$`)

// RouteError reports an invalid waypoint token, carrying the offending
// token so the pipeline can attribute it to the owning flight.
type RouteError struct {
	Token string
	Msg   string
}

func (e *RouteError) Error() string {
	if e.Token == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %q", e.Msg, e.Token)
}

// ParseWaypoint parses a single token of the waypoint grammar.
func ParseWaypoint(token string) (geo.Waypoint, error) {
	m := waypointRE.FindStringSubmatch(strings.TrimSpace(token))
	if m == nil {
		return geo.Waypoint{}, &RouteError{Token: token, Msg: "invalid waypoint"}
	}

	lat, _ := strconv.ParseFloat(m[1], 64)
	lon, _ := strconv.ParseFloat(m[3], 64)
	if strings.EqualFold(m[2], "S") {
		lat = -lat
	}
	if strings.EqualFold(m[4], "W") {
		lon = -lon
	}

	w := geo.Waypoint{Lat: lat, Lon: lon}
	if !w.Valid() {
		return geo.Waypoint{}, &RouteError{Token: token, Msg: "waypoint out of range"}
	}
	return w, nil
}

// ParseRoute parses a whitespace-separated route string into an ordered
// list of waypoints. An empty or whitespace-only route fails. A route with
// exactly one waypoint is expanded via the injected airport lookup:
// departure before, arrival after, in whichever combination resolves. If
// fewer than two waypoints remain after expansion, parsing fails.
func ParseRoute(route string, departureAirport, arrivalAirport string, lookup airport.Lookup) ([]geo.Waypoint, error) {
	trimmed := strings.TrimSpace(route)
	if trimmed == "" {
		return nil, &RouteError{Msg: "route is empty"}
	}

	tokens := strings.Fields(trimmed)
	points := make([]geo.Waypoint, 0, len(tokens))
	for _, tok := range tokens {
		w, err := ParseWaypoint(tok)
		if err != nil {
			return nil, err
		}
		points = append(points, w)
	}

	if len(points) == 1 {
		dep, depOK := coords(lookup, departureAirport)
		arr, arrOK := coords(lookup, arrivalAirport)
		switch {
		case depOK && arrOK:
			points = []geo.Waypoint{dep, points[0], arr}
		case depOK:
			points = []geo.Waypoint{dep, points[0]}
		case arrOK:
			points = []geo.Waypoint{points[0], arr}
		default:
			return nil, &RouteError{Msg: "route must include at least two waypoints"}
		}
	}

	if len(points) < 2 {
		return nil, &RouteError{Msg: "route must include at least two waypoints"}
	}

	return points, nil
}

func coords(lookup airport.Lookup, code string) (geo.Waypoint, bool) {
	if lookup == nil || code == "" {
		return geo.Waypoint{}, false
	}
	return lookup.Coordinates(code)
}
