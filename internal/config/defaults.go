package config

import "path/filepath"

// BaseModels are the fine-tunable base models offered by the service.
var BaseModels = []string{"ada", "babbage", "curie", "davinci"}

// ContainerDataDir is where dataset files live when running inside a
// container.
const ContainerDataDir = "/data"

const (
	defaultCSVPath   = "dataset.csv"
	defaultJSONLPath = "dataset.jsonl"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Model:     "curie",
		MaxTokens: 64,
		CSVPath:   defaultCSVPath,
		JSONLPath: defaultJSONLPath,
	}
}

// applyContainerPaths moves default dataset paths under ContainerDataDir when
// the container flag is set. Explicitly configured paths are left alone.
func (c *Config) applyContainerPaths() {
	if !c.Container {
		return
	}
	if c.CSVPath == defaultCSVPath {
		c.CSVPath = filepath.Join(ContainerDataDir, defaultCSVPath)
	}
	if c.JSONLPath == defaultJSONLPath {
		c.JSONLPath = filepath.Join(ContainerDataDir, defaultJSONLPath)
	}
}
