package cpu

import (
	"fmt"
	"path/filepath"
	"strings"
)

// displayName picks the label a process is grouped under. The OS-reported
// name wins; argv[0] and finally the pid stand in when it is blank.
func displayName(pid int32, name string, cmdline []string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	if len(cmdline) > 0 {
		if base := filepath.Base(strings.TrimSpace(cmdline[0])); base != "." && base != "/" {
			return base
		}
	}
	return fmt.Sprintf("pid-%d", pid)
}

// cpuPercent converts a CPU-seconds delta over a wall-clock window into a
// percentage of one core. Counters that went backwards report zero.
func cpuPercent(prev, cur, elapsedSeconds float64) float64 {
	if elapsedSeconds <= 0 || cur < prev {
		return 0
	}
	return (cur - prev) / elapsedSeconds * 100
}
