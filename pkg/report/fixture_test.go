package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/srodi/proctop/pkg/types"
	"gopkg.in/yaml.v3"
)

type fixtureProcess struct {
	PID     int32    `yaml:"pid"`
	Name    string   `yaml:"name"`
	Cmdline []string `yaml:"cmdline"`
	CPU     float64  `yaml:"cpu"`
}

type fixture struct {
	Processes []fixtureProcess `yaml:"processes"`
}

// loadSnapshot decodes a YAML process table from testdata.
func loadSnapshot(t *testing.T, name string) types.Snapshot {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("reading fixture %s: %v", name, err)
	}
	var f fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		t.Fatalf("decoding fixture %s: %v", name, err)
	}
	snap := types.Snapshot{Processes: make([]types.ProcessSample, 0, len(f.Processes))}
	for _, p := range f.Processes {
		snap.Processes = append(snap.Processes, types.ProcessSample{
			PID:        p.PID,
			Name:       p.Name,
			Cmdline:    p.Cmdline,
			CPUPercent: p.CPU,
		})
	}
	return snap
}
