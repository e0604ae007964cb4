package config

import (
	"github.com/nosoynormal/vermutcalc/internal/logging"
)

// ToLoggingConfig converts LoggingConfig to logging.Config.
//
// If File is set, Output becomes logging.OutputFile; otherwise it is logging.OutputStderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}
