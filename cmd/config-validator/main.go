package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/orgoj/stamplog/internal/config"
)

func main() {
	flag.Parse()
	os.Exit(run(flag.Args(), os.Stdout))
}

func run(args []string, out io.Writer) int {
	if len(args) < 1 {
		fmt.Fprintln(out, "Error: Config file path is required")
		fmt.Fprintln(out, "Usage: config-validator <config-file>")
		return 1
	}
	configPath := args[0]

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return 1
	}

	if err := validateConfig(cfg); err != nil {
		fmt.Fprintf(out, "Validation error: %v\n", err)
		return 1
	}

	fmt.Fprintln(out, "Configuration is valid!")
	return 0
}

// validateConfig checks what can only be known on the target machine:
// the log file must be creatable, so its parent directory has to exist.
func validateConfig(cfg *config.Config) error {
	dir := filepath.Dir(cfg.LogFile.Path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("log_file.path directory '%s': %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("log_file.path parent '%s' is not a directory", dir)
	}
	if st, err := os.Stat(cfg.LogFile.Path); err == nil && st.IsDir() {
		return fmt.Errorf("log_file.path '%s' is a directory", cfg.LogFile.Path)
	}
	return nil
}
