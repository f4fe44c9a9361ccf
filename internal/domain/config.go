package domain

// Config represents the tally configuration loaded from tally.yaml.
type Config struct {
	DataFile   string
	Currency   string
	Categories CategorySet
	Paths      PathsConfig
}

type PathsConfig struct {
	LogsDir string
}

// DefaultConfig provides sane defaults if tally.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		DataFile:   "expenses.json",
		Currency:   "$",
		Categories: DefaultCategories(),
		Paths: PathsConfig{
			LogsDir: ".tally/logs",
		},
	}
}
