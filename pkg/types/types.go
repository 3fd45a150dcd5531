package types

import "time"

// TotalLabel names the synthesized row that sums every group.
const TotalLabel = "Total"

// ProcessSample is one process as seen by a single refresh of the process table.
type ProcessSample struct {
	PID        int32
	Name       string
	Cmdline    []string
	CPUPercent float64
}

// Snapshot is the process table captured by one sampler cycle.
type Snapshot struct {
	Processes []ProcessSample
	TakenAt   time.Time
}

// GroupSummary holds the cumulative CPU usage of all processes sharing a name.
type GroupSummary struct {
	Name       string
	CPUPercent float64
	Count      uint32
}
