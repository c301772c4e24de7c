package export

import (
	"fmt"
	"os"

	"github.com/specialistvlad/gxlfixture/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// Entry describes one exported graph. It doubles as a manifest record.
type Entry struct {
	Name                string   `yaml:"name"`
	Source              string   `yaml:"source"`
	Fixture             string   `yaml:"fixture"`
	Nodes               int      `yaml:"nodes"`
	Edges               int      `yaml:"edges"`
	ProcessorCount      int      `yaml:"processor_count"`
	TotalScheduleLength *int64   `yaml:"total_schedule_length,omitempty"`
	ProcessorEndTimes   []int64  `yaml:"processor_end_times,flow"`
	Violations          []string `yaml:"violations,omitempty"`
}

// Manifest is the document written to Options.ManifestPath.
type Manifest struct {
	Generator string  `yaml:"generator"`
	Graphs    []Entry `yaml:"graphs"`
}

// WriteManifest writes entries as a YAML manifest.
func WriteManifest(path string, entries []Entry) error {
	data, err := yaml.Marshal(Manifest{Generator: "gxlfixture", Graphs: entries})
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	return fsutil.WriteFile(path, data)
}

// ReadManifest loads a manifest previously written by WriteManifest.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", path, err)
	}
	return &m, nil
}
