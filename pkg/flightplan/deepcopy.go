// pkg/flightplan/deepcopy.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package flightplan

import "github.com/brunoga/deep"

// deepCopy returns an independent copy of f. FlightPlan currently holds no
// reference types, but resolution candidates must never alias the original
// flight's storage even as fields are added over time, so the copy goes
// through deep.Copy rather than a plain struct assignment.
func deepCopy(f FlightPlan) FlightPlan {
	return *deep.MustCopy(&f)
}
