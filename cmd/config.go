package cmd

type Config struct {
	EventsFile             string
	TranslationFile        string
	TraversalFile          string
	InitialInventoryFile   string
	FinalReportFile        string
	OrderLogFile           string
	LogFile                string
	PolicyFile             string
	TraceFile              string
	HTTPPort               string
	Serve                  bool
	SnapshotSchedule       string
	ShortageReportSchedule string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
}

// DatabaseConfigured reports whether snapshots can be persisted.
func (c Config) DatabaseConfigured() bool {
	return c.DBHost != "" && c.DBName != ""
}
