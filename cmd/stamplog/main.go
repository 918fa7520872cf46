package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/orgoj/stamplog/internal/applog"
	"github.com/orgoj/stamplog/internal/config"
	"github.com/orgoj/stamplog/internal/logger"
	"github.com/orgoj/stamplog/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, applog.Get()))
}

// run writes every positional argument as one entry, or every non-blank
// stdin line when there are no arguments. It returns the exit code.
func run(args []string, stdin io.Reader, stdout io.Writer, app *applog.AppLogger) int {
	fs := flag.NewFlagSet("stamplog", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to the configuration file")
	logPath := fs.String("path", "", "Log file path (overrides log_file.path)")
	testConfigShort := fs.Bool("t", false, "Test configuration and exit (nginx style)")
	testConfigLong := fs.Bool("test", false, "Test configuration and exit (nginx style)")
	showVersion := fs.Bool("version", false, "Show version information and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.VersionInfo())
		return 0
	}

	// --- Configuration --- //
	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.ReadConfig(*configPath)
		if err != nil {
			app.Error("Failed to load configuration: %v", err)
			return 1
		}
	}
	if *logPath != "" {
		cfg.LogFile.Path = *logPath
	}
	if err := config.ValidateConfig(cfg); err != nil {
		app.Error("Configuration validation failed: %v", err)
		return 1
	}

	if *testConfigShort || *testConfigLong {
		fmt.Fprintf(stdout, "Configuration for '%s' is valid.\n", cfg.LogFile.Path)
		return 0
	}

	if err := app.SetLevelFromString(cfg.AppLog.Level); err != nil {
		app.Warn("Invalid log level '%s', keeping current: %v", cfg.AppLog.Level, err)
	}
	app.Debug("%s", version.VersionInfo())

	// --- Logging --- //
	lgr, err := logger.NewFileLogger(cfg.LogFile.Path, logger.WithEcho(stdout))
	if err != nil {
		app.Error("Failed to open log file: %v", err)
		return 1
	}
	app.Info("Writing entries to '%s'", lgr.Path())

	entries := fs.Args()
	if len(entries) > 0 {
		err = logger.WriteAll(lgr, nonBlank(entries))
	} else {
		err = writeLines(lgr, stdin)
	}
	if err != nil {
		app.Error("Failed to write log entry: %v", err)
		return 1
	}
	return 0
}

// writeLines writes each non-blank line of r as one entry. Lines have no
// length limit; a trailing "\n" or "\r\n" is dropped.
func writeLines(l logger.Logger, r io.Reader) error {
	reader := bufio.NewReader(r)
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return readErr
		}
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) != "" {
			if err := l.Write(line); err != nil {
				return err
			}
		}
		if readErr == io.EOF {
			return nil
		}
	}
}

// nonBlank drops entries that would render as empty text.
func nonBlank(values []string) []string {
	out := values[:0:0]
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
