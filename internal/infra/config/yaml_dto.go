package config

type YAMLConfig struct {
	Tally YAMLTally `yaml:"tally"`
}

type YAMLTally struct {
	DataFile   string    `yaml:"data_file,omitempty"`
	Currency   *string   `yaml:"currency,omitempty"`
	Categories []string  `yaml:"categories,omitempty"`
	Paths      YAMLPaths `yaml:"paths,omitempty"`
}

type YAMLPaths struct {
	LogsDir string `yaml:"logs_dir,omitempty"`
}
