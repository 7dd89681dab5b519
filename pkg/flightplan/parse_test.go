// pkg/flightplan/parse_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package flightplan

import (
	"encoding/json"
	"testing"
)

func raw(s string) json.RawMessage { return json.RawMessage(s) }

func TestParseBatchValidRecord(t *testing.T) {
	records := []json.RawMessage{raw(`{
		"ACID": "ACA123",
		"Plane type": "Boeing 737",
		"route": "0N/0E 0N/2E",
		"altitude": 30000,
		"departure time": 0,
		"aircraft speed": 400,
		"passengers": 150,
		"is_cargo": false
	}`)}

	flights, issues := ParseBatch(records)
	if len(issues) != 0 {
		t.Fatalf("unexpected issues: %v", issues)
	}
	if len(flights) != 1 {
		t.Fatalf("expected 1 flight, got %d", len(flights))
	}
	if flights[0].ACID != "ACA123" {
		t.Errorf("ACID = %q, want ACA123", flights[0].ACID)
	}
}

func TestParseBatchSkipsNonObjectRecord(t *testing.T) {
	records := []json.RawMessage{raw(`"not an object"`)}
	flights, issues := ParseBatch(records)
	if len(flights) != 0 {
		t.Errorf("expected no flights, got %d", len(flights))
	}
	if len(issues) != 1 || issues[0].Kind != SchemaIssue {
		t.Fatalf("expected 1 SchemaIssue, got %v", issues)
	}
}

func TestParseBatchRejectsMissingField(t *testing.T) {
	records := []json.RawMessage{raw(`{"ACID": "ACA1"}`)}
	flights, issues := ParseBatch(records)
	if len(flights) != 0 {
		t.Errorf("expected no flights, got %d", len(flights))
	}
	if len(issues) == 0 {
		t.Fatal("expected schema issues for missing fields")
	}
	for _, iss := range issues {
		if iss.Kind != SchemaIssue {
			t.Errorf("issue kind = %v, want SchemaIssue", iss.Kind)
		}
	}
}

func TestParseBatchRejectsBooleanForIntegerField(t *testing.T) {
	records := []json.RawMessage{raw(`{
		"ACID": "ACA123",
		"Plane type": "Boeing 737",
		"route": "0N/0E 0N/2E",
		"altitude": true,
		"departure time": 0,
		"aircraft speed": 400,
		"passengers": 150,
		"is_cargo": false
	}`)}

	flights, issues := ParseBatch(records)
	if len(flights) != 0 {
		t.Errorf("expected no flights for boolean altitude, got %d", len(flights))
	}
	if len(issues) == 0 {
		t.Fatal("expected a schema issue for boolean altitude")
	}
}

func TestParseBatchOneBadRecordDoesNotAbortBatch(t *testing.T) {
	good := raw(`{
		"ACID": "ACA123", "Plane type": "Boeing 737", "route": "0N/0E 0N/2E",
		"altitude": 30000, "departure time": 0, "aircraft speed": 400,
		"passengers": 150, "is_cargo": false
	}`)
	bad := raw(`{"ACID": "ACA999"}`)

	flights, issues := ParseBatch([]json.RawMessage{good, bad})
	if len(flights) != 1 {
		t.Fatalf("expected 1 surviving flight, got %d", len(flights))
	}
	if len(issues) == 0 {
		t.Fatal("expected issues recorded for the bad record")
	}
}
