// pkg/telemetry/telemetry.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package telemetry logs a resource snapshot around a pipeline run, grounded
// on the teacher's LoggingMutex diagnostic dump (pkg/util/sync.go), which
// logs CPU/memory/goroutine state when something looks stuck; here the same
// snapshot brackets every run instead of firing only on contention.
package telemetry

import (
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/Vrishab20/aeroinsight/pkg/log"
)

// Snapshot is a point-in-time resource reading.
type Snapshot struct {
	Timestamp      time.Time
	CPUPercent     float64
	AllocMB        uint64
	TotalAllocMB   uint64
	SysMB          uint64
	NumGoroutines  int
	MemUsedPercent float64
}

// Sample captures CPU load (over a short blocking window), Go heap stats,
// and system memory usage.
func Sample() Snapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	s := Snapshot{
		Timestamp:     time.Now(),
		AllocMB:       m.Alloc / (1024 * 1024),
		TotalAllocMB:  m.TotalAlloc / (1024 * 1024),
		SysMB:         m.Sys / (1024 * 1024),
		NumGoroutines: runtime.NumGoroutine(),
	}

	if usage, err := cpu.Percent(200*time.Millisecond, false); err == nil && len(usage) > 0 {
		s.CPUPercent = usage[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		s.MemUsedPercent = vm.UsedPercent
	}

	return s
}

// LogRun samples before and after fn runs, logging both snapshots and the
// wall-clock duration through logger.
func LogRun(logger *log.Logger, label string, fn func() error) error {
	before := Sample()
	logger.Infof("%s: starting (cpu=%.1f%% alloc=%dMB goroutines=%d)",
		label, before.CPUPercent, before.AllocMB, before.NumGoroutines)

	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	after := Sample()
	logger.Infof("%s: finished in %s (cpu=%.1f%% alloc=%dMB goroutines=%d)",
		label, elapsed, after.CPUPercent, after.AllocMB, after.NumGoroutines)

	return err
}
