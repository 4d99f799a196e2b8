package domain

const (
	// DefaultPrompt is printed before each read.
	DefaultPrompt = "$>"

	// DefaultCapacity is the number of background task slots.
	DefaultCapacity = 10

	// LogFormatPretty renders human readable, colored log lines.
	LogFormatPretty = "pretty"

	// LogFormatJSON renders one JSON object per log line.
	LogFormatJSON = "json"
)

// Config holds interpreter settings.
type Config struct {
	Prompt      string
	Capacity    int
	HistoryFile string
	LogFormat   string
	LogLevel    string
}

// DefaultConfig returns the settings used when no config file is found.
func DefaultConfig() *Config {
	return &Config{
		Prompt:    DefaultPrompt,
		Capacity:  DefaultCapacity,
		LogFormat: LogFormatPretty,
		LogLevel:  "info",
	}
}
