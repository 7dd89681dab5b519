// pkg/output/output.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package output encodes a pipeline Result for external consumption. JSON
// is the default wire format; msgpack and a zstd-compressed archive variant
// are offered for batch/archival consumers, grounded on the teacher's
// wx/resources.go resource cache, which serializes the same way
// (msgpack.v5 payloads, optionally zstd-compressed on disk).
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/Vrishab20/aeroinsight/pkg/conflict"
	"github.com/Vrishab20/aeroinsight/pkg/flightplan"
	"github.com/Vrishab20/aeroinsight/pkg/hotspot"
	"github.com/Vrishab20/aeroinsight/pkg/resolver"
	"github.com/Vrishab20/aeroinsight/pkg/trajectory"
)

// Format selects the wire encoding Write uses.
type Format int

const (
	JSON Format = iota
	MsgPack
	MsgPackZstd
)

// Document is the wire shape of a pipeline Result: field names are stable
// and match what every analytical pass documents for its output.
type Document struct {
	Trajectories map[string][]trajectory.Point `json:"trajectories" msgpack:"trajectories"`
	Conflicts    []conflict.Event              `json:"conflicts" msgpack:"conflicts"`
	Hotspots     []hotspot.Cell                `json:"hotspots" msgpack:"hotspots"`
	Proposals    []resolver.ProposalEntry       `json:"proposals" msgpack:"proposals"`
	Issues       []flightplan.Issue            `json:"issues" msgpack:"issues"`
}

// Write encodes doc to w in the requested format. JSON is written with
// two-space indentation to match the reference implementation's
// human-readable archive output; msgpack formats are written compact.
func Write(w io.Writer, doc Document, format Format) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)

	case MsgPack:
		return msgpack.NewEncoder(w).Encode(doc)

	case MsgPackZstd:
		var buf bytes.Buffer
		if err := msgpack.NewEncoder(&buf).Encode(doc); err != nil {
			return fmt.Errorf("encode msgpack: %w", err)
		}
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return fmt.Errorf("open zstd writer: %w", err)
		}
		if _, err := zw.Write(buf.Bytes()); err != nil {
			zw.Close()
			return fmt.Errorf("write zstd payload: %w", err)
		}
		return zw.Close()

	default:
		return fmt.Errorf("unknown output format %d", format)
	}
}

// Read decodes a Document previously written by Write in the given format.
func Read(r io.Reader, format Format) (Document, error) {
	var doc Document

	switch format {
	case JSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return doc, fmt.Errorf("decode json: %w", err)
		}
	case MsgPack:
		if err := msgpack.NewDecoder(r).Decode(&doc); err != nil {
			return doc, fmt.Errorf("decode msgpack: %w", err)
		}
	case MsgPackZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return doc, fmt.Errorf("open zstd reader: %w", err)
		}
		defer zr.Close()
		if err := msgpack.NewDecoder(zr).Decode(&doc); err != nil {
			return doc, fmt.Errorf("decode msgpack: %w", err)
		}
	default:
		return doc, fmt.Errorf("unknown output format %d", format)
	}

	return doc, nil
}
