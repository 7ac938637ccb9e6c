package log

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// verbosityLevels maps the number of -v flags to a level; extra flags stay at TRACE.
var verbosityLevels = []Level{ERROR, WARN, INFO, DEBUG, TRACE}

// SetLoggingVerbosity applies the -v count, falling back to KCCTL_LOG_LEVEL when no -v was given.
func SetLoggingVerbosity(cmd *cobra.Command, logger *Logger) error {
	count, err := cmd.Flags().GetCount("verbose")
	if err != nil {
		return err
	}
	if count == 0 {
		if level, ok := ParseLevel(viper.GetString("log_level")); ok {
			logger.SetLevel(level)
			return nil
		}
	}
	if count >= len(verbosityLevels) {
		count = len(verbosityLevels) - 1
	}
	logger.SetLevel(verbosityLevels[count])
	return nil
}
