// pkg/flightplan/parse.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package flightplan

import (
	"encoding/json"
	"fmt"
)

// ParseBatch decodes a batch of raw flight records into FlightPlans.
// Records that are not JSON objects, or are missing a required field, or
// have a field of the wrong type, are skipped and reported as a
// SchemaIssue attributed to the record's ACID if one could be recovered,
// else to "index:N". ParseBatch never aborts because of one bad record.
func ParseBatch(raw []json.RawMessage) ([]FlightPlan, []Issue) {
	var flights []FlightPlan
	var issues []Issue

	for index, item := range raw {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(item, &obj); err != nil {
			issues = append(issues, Issue{Kind: SchemaIssue, Subject: subjectFor(nil, index),
				Message: fmt.Sprintf("expected a JSON object: %v", err)})
			continue
		}

		acid, acidOK := stringField(obj, "ACID")
		subject := subjectFor(&acid, index)
		if !acidOK {
			issues = append(issues, Issue{Kind: SchemaIssue, Subject: subject, Message: "missing or invalid required field \"ACID\""})
			continue
		}

		plan, fieldIssues := parseFields(obj, subject)
		if len(fieldIssues) > 0 {
			issues = append(issues, fieldIssues...)
			continue
		}

		flights = append(flights, plan)
	}

	return flights, issues
}

func subjectFor(acid *string, index int) string {
	if acid != nil && *acid != "" {
		return *acid
	}
	return fmt.Sprintf("index:%d", index)
}

func parseFields(obj map[string]json.RawMessage, subject string) (FlightPlan, []Issue) {
	var issues []Issue
	missing := func(field string) {
		issues = append(issues, Issue{Kind: SchemaIssue, Subject: subject, Message: fmt.Sprintf("missing or invalid required field %q", field)})
	}

	acid, ok := stringField(obj, "ACID")
	if !ok {
		missing("ACID")
	}
	planeType, ok := stringField(obj, "Plane type")
	if !ok {
		missing("Plane type")
	}
	route, ok := stringField(obj, "route")
	if !ok {
		missing("route")
	}
	altitude, ok := intField(obj, "altitude")
	if !ok {
		missing("altitude")
	}
	departureTime, ok := intField(obj, "departure time")
	if !ok {
		missing("departure time")
	}
	speed, ok := intField(obj, "aircraft speed")
	if !ok {
		missing("aircraft speed")
	}
	passengers, ok := intField(obj, "passengers")
	if !ok {
		missing("passengers")
	}
	isCargo, ok := boolField(obj, "is_cargo")
	if !ok {
		missing("is_cargo")
	}
	// Optional fields: absence is fine, wrong type is not.
	departureAirport, depOK := optionalStringField(obj, "departure airport", &issues, subject)
	arrivalAirport, arrOK := optionalStringField(obj, "arrival airport", &issues, subject)
	_ = depOK
	_ = arrOK

	if len(issues) > 0 {
		return FlightPlan{}, issues
	}

	return FlightPlan{
		ACID:             acid,
		PlaneType:        planeType,
		Route:            route,
		AltitudeFt:       altitude,
		DepartureTime:    departureTime,
		SpeedKt:          speed,
		Passengers:       passengers,
		IsCargo:          isCargo,
		DepartureAirport: departureAirport,
		ArrivalAirport:   arrivalAirport,
	}, nil
}

func stringField(obj map[string]json.RawMessage, name string) (string, bool) {
	raw, ok := obj[name]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func optionalStringField(obj map[string]json.RawMessage, name string, issues *[]Issue, subject string) (string, bool) {
	raw, ok := obj[name]
	if !ok {
		return "", true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		*issues = append(*issues, Issue{Kind: SchemaIssue, Subject: subject, Message: fmt.Sprintf("field %q must be a string", name)})
		return "", false
	}
	return s, true
}

// intField decodes a required integer field, explicitly rejecting
// booleans: the raw token is checked for true/false before decoding, so the
// rejection does not rest on encoding/json's own type error for a bool
// decoded into a float64. A fractional number is truncated toward zero.
func intField(obj map[string]json.RawMessage, name string) (int, bool) {
	raw, ok := obj[name]
	if !ok {
		return 0, false
	}
	if isJSONBool(raw) {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	return int(f), true
}

func boolField(obj map[string]json.RawMessage, name string) (bool, bool) {
	raw, ok := obj[name]
	if !ok {
		return false, false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, false
	}
	return b, true
}

func isJSONBool(raw json.RawMessage) bool {
	s := trimSpace(string(raw))
	return s == "true" || s == "false"
}

func trimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && isJSONSpace(s[start]) {
		start++
	}
	for end > start && isJSONSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isJSONSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
