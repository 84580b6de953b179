package config

// Config is the top-level codetune configuration, corresponding to
// .codetune.yml. It is built once at startup and passed explicitly to the
// components that need it; there is no module-level client state.
type Config struct {
	Model     string   `yaml:"model" koanf:"model"`
	MaxTokens int      `yaml:"max_tokens" koanf:"max_tokens"`
	CSVPath   string   `yaml:"csv_path" koanf:"csv_path"`
	JSONLPath string   `yaml:"jsonl_path" koanf:"jsonl_path"`
	Container bool     `yaml:"container" koanf:"container"`
	Include   []string `yaml:"include" koanf:"include"`
	Exclude   []string `yaml:"exclude" koanf:"exclude"`
	Debug     bool     `yaml:"debug" koanf:"debug"`
}
