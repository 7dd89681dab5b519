// pkg/pipeline/pipeline.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package pipeline wires the analytical core's components together: parse
// and validate a flight batch, expand each route, synthesize trajectories
// in parallel, run the conflict and hotspot passes concurrently over the
// shared trajectory map, then propose resolutions. Concurrency is grounded
// on the teacher's worker-pool/errgroup usage (cmd/vice/resources_download.go,
// cmd/wxingest), generalized from file-download and weather-fetch workers
// to CPU-bound analytical passes.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/Vrishab20/aeroinsight/pkg/airport"
	"github.com/Vrishab20/aeroinsight/pkg/conflict"
	"github.com/Vrishab20/aeroinsight/pkg/flightplan"
	"github.com/Vrishab20/aeroinsight/pkg/hotspot"
	"github.com/Vrishab20/aeroinsight/pkg/log"
	"github.com/Vrishab20/aeroinsight/pkg/resolver"
	"github.com/Vrishab20/aeroinsight/pkg/trajectory"
	"github.com/Vrishab20/aeroinsight/pkg/util"
)

// Config bounds the cadence and grid granularity the run's analytical
// passes use, and the collaborators it's wired against.
type Config struct {
	Lookup            airport.Lookup
	SampleSeconds     int
	TimeBinSeconds    int
	BucketDegrees     float64
	Hotspots          hotspot.Config
	ResolverWeights   resolver.Weights
	MaxWorkers        int
}

// DefaultConfig returns a Config using the documented defaults for every
// analytical pass, with no airport table wired in (callers supply one via
// Lookup when single-waypoint routes need expansion).
func DefaultConfig() Config {
	return Config{
		SampleSeconds:   trajectory.DefaultSampleSeconds,
		TimeBinSeconds:  conflict.DefaultTimeBinSec,
		BucketDegrees:   conflict.DefaultBucketDeg,
		Hotspots:        hotspot.DefaultConfig(),
		ResolverWeights: resolver.DefaultWeights(),
		MaxWorkers:      8,
	}
}

// Result is the full output of one run: the issues accumulated along the
// way plus every analytical pass's findings.
type Result struct {
	Flights     []flightplan.FlightPlan
	Trajectories map[string][]trajectory.Point
	Conflicts   []conflict.Event
	Hotspots    []hotspot.Cell
	Proposals   *util.OrderedMap
	Issues      []flightplan.Issue
}

// Run executes the full pipeline over a batch of raw JSON flight records.
// It never aborts on a single bad record: schema and route issues drop
// just the offending flight, accumulating into Result.Issues.
func Run(ctx context.Context, raw []json.RawMessage, cfg Config, logger *log.Logger) (*Result, error) {
	logger.Infof("parsing batch of %d records", len(raw))
	flights, issues := flightplan.ParseBatch(raw)

	for _, f := range flights {
		issues = append(issues, flightplan.Validate(f)...)
	}

	trajectories, flights, routeIssues := buildTrajectories(ctx, flights, cfg, logger)
	issues = append(issues, routeIssues...)

	flightMap := make(map[string]flightplan.FlightPlan, len(flights))
	for _, f := range flights {
		flightMap[f.ACID] = f
	}

	var conflicts []conflict.Event
	var hotspots []hotspot.Cell

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		if err := egCtx.Err(); err != nil {
			return err
		}
		conflicts = conflict.Detect(trajectories, cfg.TimeBinSeconds, cfg.BucketDegrees)
		return nil
	})
	eg.Go(func() error {
		if err := egCtx.Err(); err != nil {
			return err
		}
		hotspots = hotspot.Detect(trajectories, cfg.Hotspots)
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("analytical pass: %w", err)
	}

	logger.Infof("detected %d conflicts, %d hotspot cells", len(conflicts), len(hotspots))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("resolution pass: %w", err)
	}
	proposals := resolver.Propose(conflicts, flightMap, cfg.ResolverWeights)

	return &Result{
		Flights:      flights,
		Trajectories: trajectories,
		Conflicts:    conflicts,
		Hotspots:     hotspots,
		Proposals:    proposals,
		Issues:       issues,
	}, nil
}

// buildTrajectories synthesizes one trajectory per flight, embarrassingly
// parallel across flights per the documented concurrency model. A flight
// whose route fails to parse or whose trajectory build fails is dropped
// (RouteIssue/TrajectoryIssue respectively) and excluded from the returned
// flight slice, so downstream passes never see a flight without a
// trajectory.
func buildTrajectories(ctx context.Context, flights []flightplan.FlightPlan, cfg Config, logger *log.Logger) (map[string][]trajectory.Point, []flightplan.FlightPlan, []flightplan.Issue) {
	type outcome struct {
		index      int
		flight     flightplan.FlightPlan
		points     []trajectory.Point
		issue      *flightplan.Issue
	}

	outcomes := make([]outcome, len(flights))
	sem := make(chan struct{}, max(1, cfg.MaxWorkers))

	var eg errgroup.Group
	for i, f := range flights {
		i, f := i, f
		eg.Go(func() error {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return ctx.Err()
			}

			route, err := flightplan.ParseRoute(f.Route, f.DepartureAirport, f.ArrivalAirport, cfg.Lookup)
			if err != nil {
				outcomes[i] = outcome{index: i, issue: &flightplan.Issue{
					Kind: flightplan.RouteIssue, Subject: f.ACID, Message: err.Error(),
				}}
				return nil
			}

			points, err := trajectory.Build(f, route, cfg.SampleSeconds)
			if err != nil {
				outcomes[i] = outcome{index: i, issue: &flightplan.Issue{
					Kind: flightplan.TrajectoryIssue, Subject: f.ACID, Message: err.Error(),
				}}
				return nil
			}

			outcomes[i] = outcome{index: i, flight: f, points: points}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		logger.Warnf("trajectory build canceled: %v", err)
	}

	trajectories := make(map[string][]trajectory.Point)
	var kept []flightplan.FlightPlan
	var issues []flightplan.Issue
	for _, o := range outcomes {
		if o.issue != nil {
			issues = append(issues, *o.issue)
			continue
		}
		if o.points == nil {
			continue
		}
		trajectories[o.flight.ACID] = o.points
		kept = append(kept, o.flight)
	}

	sort.SliceStable(kept, func(i, j int) bool { return kept[i].ACID < kept[j].ACID })

	return trajectories, kept, issues
}
