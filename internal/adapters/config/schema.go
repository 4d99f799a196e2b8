package config

// File represents the structure of the .bsh.yaml configuration file.
// Zero values mean "use the default".
type File struct {
	Prompt      *string `yaml:"prompt" validate:"omitempty,max=64"`
	Capacity    int     `yaml:"capacity" validate:"omitempty,min=1,max=1024"`
	HistoryFile string  `yaml:"history_file"`
	LogFormat   string  `yaml:"log_format" validate:"omitempty,oneof=pretty json"`
	LogLevel    string  `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}
