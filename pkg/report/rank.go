package report

import (
	"cmp"
	"slices"

	"github.com/srodi/proctop/pkg/types"
)

// RankedTable is the per-group rows ordered for display plus the synthesized
// total over every group.
type RankedTable struct {
	Rows  []types.GroupSummary
	Total types.GroupSummary
}

// Rank orders groups by cumulative CPU usage, highest first, and computes the
// Total row over the whole input. The input slice is left untouched.
//
// cmp.Compare is a total order on floats: NaN sorts after every number
// instead of breaking the sort. Equal values keep their input order.
func Rank(groups []types.GroupSummary) RankedTable {
	rows := slices.Clone(groups)
	slices.SortStableFunc(rows, func(a, b types.GroupSummary) int {
		return cmp.Compare(b.CPUPercent, a.CPUPercent)
	})

	total := types.GroupSummary{Name: types.TotalLabel}
	for _, g := range groups {
		total.CPUPercent += g.CPUPercent
		total.Count += g.Count
	}
	return RankedTable{Rows: rows, Total: total}
}
