package config

// Config represents the complete docdex configuration.
// It can be loaded from .docdex/config.yml with environment variable
// overrides.
type Config struct {
	Paths  PathsConfig  `yaml:"paths" mapstructure:"paths"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Index  IndexConfig  `yaml:"index" mapstructure:"index"`
}

// PathsConfig defines which files to scan and which to ignore.
type PathsConfig struct {
	Source []string `yaml:"source" mapstructure:"source"` // glob patterns for source files
	Ignore []string `yaml:"ignore" mapstructure:"ignore"` // glob patterns to ignore
}

// OutputConfig defines where and how the index is written.
type OutputConfig struct {
	Dir   string `yaml:"dir" mapstructure:"dir"`     // directory for generated files
	Title string `yaml:"title" mapstructure:"title"` // page title of the symbol index
}

// IndexConfig tunes index construction.
type IndexConfig struct {
	Locale string `yaml:"locale" mapstructure:"locale"` // BCP 47 tag for name collation, e.g. "en"
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Source: []string{
				"**/*.c",
				"**/*.h",
				"**/*.py",
			},
			Ignore: []string{
				"node_modules/**",
				"vendor/**",
				".git/**",
				"dist/**",
				"build/**",
				"__pycache__/**",
			},
		},
		Output: OutputConfig{
			Dir:   "docs/index",
			Title: "Symbol Index",
		},
		Index: IndexConfig{
			Locale: "und",
		},
	}
}
