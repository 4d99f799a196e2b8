package app

import (
	"go.trai.ch/bsh/internal/core/domain"
	"go.trai.ch/bsh/internal/core/ports"
)

// PromptFor returns the text printed before each read. A non-empty prompt
// is separated from the input by a space.
func PromptFor(prompt string) string {
	if prompt == "" {
		return ""
	}
	return prompt + " "
}

// ApplyLogSettings configures the logger from the loaded settings.
func ApplyLogSettings(log ports.Logger, cfg *domain.Config) error {
	log.SetJSON(cfg.LogFormat == domain.LogFormatJSON)
	return log.SetLevel(cfg.LogLevel)
}
