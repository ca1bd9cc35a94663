package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

type Config struct {
	// StartMode is "editor" or "level".
	StartMode string
	LevelPath string
	Watch     bool
	Debug     bool
	LogLevel  string
	LogFormat string
}

func Default() Config {
	return Config{
		StartMode: "editor",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Parse reads command line flags. args excludes the program name.
func Parse(args []string, output io.Writer) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("blockdash", flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage of %s:\n", fs.Name())
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.StartMode, "mode", cfg.StartMode, "start mode: editor or level")
	fs.StringVar(&cfg.LevelPath, "level", cfg.LevelPath, "level descriptor path (empty uses the built-in level)")
	fs.BoolVar(&cfg.Watch, "watch", cfg.Watch, "reload the level when the descriptor or prefabs change")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug overlay and logging")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.StartMode = strings.ToLower(strings.TrimSpace(cfg.StartMode))
	if cfg.StartMode != "editor" && cfg.StartMode != "level" {
		err := fmt.Errorf("config: invalid -mode %q", cfg.StartMode)
		fmt.Fprintln(fs.Output(), err)
		fs.Usage()
		return Config{}, err
	}
	if cfg.Debug {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

// ExitCode maps a Parse error to the process exit status. Asking for help
// is a success; every other error has already been reported on the output
// passed to Parse.
func ExitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	default:
		return 2
	}
}
