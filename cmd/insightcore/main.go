// main.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Command insightcore runs the air-traffic-planning analytical core over a
// batch of filed flight plans: it parses the input, synthesizes
// trajectories, detects conflicts and hotspots, and proposes resolutions,
// writing the result in the requested wire format.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goforj/godump"

	"github.com/Vrishab20/aeroinsight/pkg/airport"
	"github.com/Vrishab20/aeroinsight/pkg/log"
	"github.com/Vrishab20/aeroinsight/pkg/output"
	"github.com/Vrishab20/aeroinsight/pkg/pipeline"
	"github.com/Vrishab20/aeroinsight/pkg/resolver"
	"github.com/Vrishab20/aeroinsight/pkg/telemetry"
)

var (
	inputFile  = flag.String("input", "", "path to a JSON file holding an array of flight plan records (defaults to stdin)")
	outputFile = flag.String("output", "", "path to write the result to (defaults to stdout)")
	format     = flag.String("format", "json", "output format: json, msgpack, msgpack-zstd")
	logLevel   = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir     = flag.String("logdir", "", "log file directory")
	sampleSec  = flag.Int("sample-sec", 0, "trajectory sample cadence in seconds (0 = use default)")
	maxWorkers = flag.Int("workers", 0, "max concurrent trajectory-builder workers (0 = use default)")
	timeoutSec = flag.Int("timeout-sec", 60, "pipeline run deadline in seconds")
	verbose    = flag.Bool("verbose", false, "dump the resolved run configuration before starting")
)

func main() {
	flag.Parse()
	logger := log.New(*logLevel, *logDir)

	cfg := pipeline.DefaultConfig()
	lookup, tableErrors := airport.NewStaticTable(airport.CanadianCoordinates)
	if tableErrors.HaveErrors() {
		logger.Warnf("airport table: %s", tableErrors.String())
	}
	cfg.Lookup = lookup
	if *sampleSec > 0 {
		cfg.SampleSeconds = *sampleSec
	}
	if *maxWorkers > 0 {
		cfg.MaxWorkers = *maxWorkers
	}

	if *verbose {
		godump.Dump(cfg)
	}

	raw, err := readBatch(*inputFile)
	if err != nil {
		logger.Errorf("reading input: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(*timeoutSec)*time.Second)
	defer cancel()

	var result *pipeline.Result
	err = telemetry.LogRun(logger, "pipeline run", func() error {
		var runErr error
		result, runErr = pipeline.Run(ctx, raw, cfg, logger)
		return runErr
	})
	if err != nil {
		logger.Errorf("pipeline run: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	doc := output.Document{
		Trajectories: result.Trajectories,
		Conflicts:    result.Conflicts,
		Hotspots:     result.Hotspots,
		Proposals:    resolver.Entries(result.Proposals),
		Issues:       result.Issues,
	}

	outFormat, err := parseFormat(*format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	w := os.Stdout
	if *outputFile != "" {
		f, err := os.Create(*outputFile)
		if err != nil {
			logger.Errorf("creating output file: %v", err)
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if err := output.Write(w, doc, outFormat); err != nil {
		logger.Errorf("writing output: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func readBatch(path string) ([]json.RawMessage, error) {
	var data []byte
	var err error
	if path == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("expected a JSON array of flight records: %w", err)
	}
	return raw, nil
}

func parseFormat(s string) (output.Format, error) {
	switch s {
	case "json":
		return output.JSON, nil
	case "msgpack":
		return output.MsgPack, nil
	case "msgpack-zstd":
		return output.MsgPackZstd, nil
	default:
		return output.JSON, fmt.Errorf("unknown output format %q", s)
	}
}
