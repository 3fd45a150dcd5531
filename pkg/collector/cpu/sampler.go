package cpu

import (
	"context"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-set/v3"
	"github.com/srodi/proctop/pkg/types"
)

// MinimumCPUUpdateInterval is the shortest gap between two process-table reads
// for which CPU accounting yields meaningful values.
const MinimumCPUUpdateInterval = 200 * time.Millisecond

// CycleInterval is how long Sample blocks before refreshing. Intervals under a
// second are padded to a full second so percentages read on a 1 Hz cadence.
func CycleInterval() time.Duration {
	if MinimumCPUUpdateInterval < time.Second {
		return time.Second
	}
	return MinimumCPUUpdateInterval
}

// Sampler refreshes CPU usage of every process and turns cumulative CPU time
// into per-cycle percentages against its previous observation.
type Sampler struct {
	table  ProcessTable
	logger hclog.Logger

	now  func() time.Time
	wait func(ctx context.Context, d time.Duration) error

	primed   bool
	baseline map[int32]*baselineEntry
}

type baselineEntry struct {
	name       string
	cmdline    []string
	startedAt  int64
	cpuSeconds float64
	at         time.Time
}

// NewSampler wraps table. A nil logger discards output.
func NewSampler(table ProcessTable, logger hclog.Logger) *Sampler {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Sampler{
		table:    table,
		logger:   logger.Named("sampler"),
		now:      time.Now,
		wait:     sleepContext,
		baseline: make(map[int32]*baselineEntry),
	}
}

// Sample waits out CycleInterval, then refreshes CPU usage for all processes.
// The only error returned is the context's, when it ends during the wait.
func (s *Sampler) Sample(ctx context.Context) (types.Snapshot, error) {
	if !s.primed {
		s.refresh(ctx)
		s.primed = true
	}
	if err := s.wait(ctx, CycleInterval()); err != nil {
		return types.Snapshot{}, err
	}
	return s.refresh(ctx), nil
}

func (s *Sampler) refresh(ctx context.Context) types.Snapshot {
	now := s.now()
	snap := types.Snapshot{TakenAt: now}

	pids, err := s.table.PIDs(ctx)
	if err != nil {
		s.logger.Warn("process table unavailable, skipping cycle", "error", err)
		return snap
	}

	live := set.New[int32](len(pids))
	snap.Processes = make([]types.ProcessSample, 0, len(pids))
	for _, pid := range pids {
		live.Insert(pid)
		if sample, ok := s.observe(ctx, pid, now); ok {
			snap.Processes = append(snap.Processes, sample)
		}
	}

	for pid := range s.baseline {
		if !live.Contains(pid) {
			delete(s.baseline, pid)
		}
	}
	return snap
}

// observe refreshes the CPU time of one pid. Name and argv are read only
// when the pid is first seen or now belongs to a different process.
func (s *Sampler) observe(ctx context.Context, pid int32, now time.Time) (types.ProcessSample, bool) {
	usage, err := s.table.CPUTime(ctx, pid)
	if err != nil {
		s.logger.Trace("process vanished before cpu refresh", "pid", pid, "error", err)
		delete(s.baseline, pid)
		return types.ProcessSample{}, false
	}

	entry, known := s.baseline[pid]
	if known && (usage.StartedAt != entry.startedAt || usage.Seconds < entry.cpuSeconds) {
		s.logger.Trace("pid reused by a new process", "pid", pid, "name", entry.name)
		delete(s.baseline, pid)
		known = false
	}
	if !known {
		name, cmdline, err := s.table.Describe(ctx, pid)
		if err != nil {
			s.logger.Trace("process vanished before describe", "pid", pid, "error", err)
			return types.ProcessSample{}, false
		}
		entry = &baselineEntry{
			name:      displayName(pid, name, cmdline),
			cmdline:   cmdline,
			startedAt: usage.StartedAt,
		}
	}

	var percent float64
	if known {
		percent = cpuPercent(entry.cpuSeconds, usage.Seconds, now.Sub(entry.at).Seconds())
	}
	entry.cpuSeconds = usage.Seconds
	entry.at = now
	s.baseline[pid] = entry

	return types.ProcessSample{
		PID:        pid,
		Name:       entry.name,
		Cmdline:    entry.cmdline,
		CPUPercent: percent,
	}, true
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
