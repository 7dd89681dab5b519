// pkg/flightplan/issue.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package flightplan

import (
	"encoding/json"
	"fmt"
)

// Kind categorizes an Issue per the error handling design: schema and route
// issues cause the offending flight to be skipped; trajectory issues are
// raised while building a trajectory for an already-parsed flight;
// constraint issues are informational and never skip a flight.
type Kind int

const (
	SchemaIssue Kind = iota
	RouteIssue
	TrajectoryIssue
	ConstraintIssue
)

func (k Kind) String() string {
	switch k {
	case SchemaIssue:
		return "schema"
	case RouteIssue:
		return "route"
	case TrajectoryIssue:
		return "trajectory"
	case ConstraintIssue:
		return "constraint"
	default:
		return "unknown"
	}
}

// Issue is a single accumulated problem, attributed to a flight's ACID (or
// "index:N" when no ACID could be recovered). It serializes as a flat
// string to match the wire contract's issues array.
type Issue struct {
	Kind    Kind
	Subject string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Subject, i.Message)
}

func (i Issue) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

// Fatal reports whether an issue of this kind causes its flight to be
// skipped from further analysis.
func (k Kind) Fatal() bool {
	return k == SchemaIssue || k == RouteIssue
}
