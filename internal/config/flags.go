package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags registers the client flags on fs and parses args.
// Positional arguments left after the flags stay available via fs.Args().
//
// Flags:
//
//	-a user API root resource URL
//	-request-timeout outbound request timeout (e.g., "15s")
//	-d session store DSN
//	-locale error message locale
//	-log-file log file path
//	-log-level log level
//	-c/-config json file path with configs
func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var (
		httpAddress    string
		requestTimeout time.Duration
		sessionDSN     string
		locale         string
		logFile        string
		logLevel       string
		jsonConfigPath string
	)

	fs.StringVar(&httpAddress, "a", "", "User API root resource URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&sessionDSN, "d", "", "Session store DSN (file path, memory or redis URL)")
	fs.StringVar(&locale, "locale", "", "Error message locale (fr, en)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Locale:   locale,
			LogFile:  logFile,
			LogLevel: logLevel,
		},
		Storage: Storage{
			Session: Session{DSN: sessionDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    httpAddress,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
