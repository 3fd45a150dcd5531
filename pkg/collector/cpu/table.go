package cpu

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/process"
)

// CPUUsage is one CPU-time reading of a process. StartedAt tells two
// processes that shared a pid apart.
type CPUUsage struct {
	Seconds   float64 // cumulative user+system CPU time
	StartedAt int64   // process creation time, ms since the epoch
}

// ProcessTable is the OS process-introspection capability the Sampler reads from.
type ProcessTable interface {
	// PIDs lists every process currently running on the host.
	PIDs(ctx context.Context) ([]int32, error)
	// Describe returns the display name and argv of a process.
	Describe(ctx context.Context, pid int32) (string, []string, error)
	// CPUTime reads the CPU usage counters of a process.
	CPUTime(ctx context.Context, pid int32) (CPUUsage, error)
}

// listPIDs and newProcess allow tests to stub the gopsutil entry points.
var (
	listPIDs   = process.PidsWithContext
	newProcess = process.NewProcessWithContext
)

// HostTable reads the host process table through gopsutil. Handles are opened
// per read: gopsutil caches creation time and name on a handle, which would
// hide a pid being reused by a new process.
type HostTable struct{}

// NewHostTable returns a ProcessTable backed by the running host.
func NewHostTable() *HostTable {
	return &HostTable{}
}

// PIDs lists live processes.
func (t *HostTable) PIDs(ctx context.Context) ([]int32, error) {
	pids, err := listPIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing pids: %w", err)
	}
	return pids, nil
}

// Describe reads the name and command line of pid.
func (t *HostTable) Describe(ctx context.Context, pid int32) (string, []string, error) {
	p, err := open(ctx, pid)
	if err != nil {
		return "", nil, err
	}
	name, err := p.NameWithContext(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("reading name of pid %d: %w", pid, err)
	}
	// Kernel threads have no argv; an error here means the same thing.
	cmdline, err := p.CmdlineSliceWithContext(ctx)
	if err != nil {
		cmdline = nil
	}
	return name, cmdline, nil
}

// CPUTime reads the cumulative CPU seconds and the creation time of pid.
func (t *HostTable) CPUTime(ctx context.Context, pid int32) (CPUUsage, error) {
	p, err := open(ctx, pid)
	if err != nil {
		return CPUUsage{}, err
	}
	times, err := p.TimesWithContext(ctx)
	if err != nil {
		return CPUUsage{}, fmt.Errorf("reading cpu times of pid %d: %w", pid, err)
	}
	started, err := p.CreateTimeWithContext(ctx)
	if err != nil {
		return CPUUsage{}, fmt.Errorf("reading start time of pid %d: %w", pid, err)
	}
	return CPUUsage{Seconds: times.User + times.System, StartedAt: started}, nil
}

func open(ctx context.Context, pid int32) (*process.Process, error) {
	p, err := newProcess(ctx, pid)
	if err != nil {
		return nil, fmt.Errorf("opening pid %d: %w", pid, err)
	}
	return p, nil
}
