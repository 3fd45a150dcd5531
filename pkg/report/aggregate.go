package report

import "github.com/srodi/proctop/pkg/types"

// Aggregate groups the processes of a snapshot by exact display name, summing
// CPU usage and counting members. Processes without a command line (kernel
// threads, zombies) are left out. Groups keep the order in which their first
// member appeared in the snapshot.
func Aggregate(snapshot types.Snapshot) []types.GroupSummary {
	groups := make([]types.GroupSummary, 0, 16)
	index := make(map[string]int)

	for _, proc := range snapshot.Processes {
		if len(proc.Cmdline) == 0 {
			continue
		}
		if i, ok := index[proc.Name]; ok {
			groups[i].CPUPercent += proc.CPUPercent
			groups[i].Count++
			continue
		}
		index[proc.Name] = len(groups)
		groups = append(groups, types.GroupSummary{
			Name:       proc.Name,
			CPUPercent: proc.CPUPercent,
			Count:      1,
		})
	}
	return groups
}
