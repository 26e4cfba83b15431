package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/turtletowerz/go-hls/logging"
)

var errNoFiles = errors.New("no playlist files given")

type config struct {
	Threads     int
	Summary     bool
	KeepBlank   bool
	Verbose     bool
	Quiet       bool
	MetricsFile string
	Files       []string
}

// parseConfig reads flags from args, falling back to M3U8LINT_* environment variables
func parseConfig(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}

	fs := flag.NewFlagSet("m3u8lint", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: m3u8lint [flags] playlist.m3u8...")
		fs.PrintDefaults()
	}

	fs.IntVar(&cfg.Threads, "threads", getEnvInt("M3U8LINT_THREADS", runtime.NumCPU()), "number of files validated at once")
	fs.BoolVar(&cfg.Summary, "summary", getEnvBool("M3U8LINT_SUMMARY", false), "print one summary line per file instead of every line")
	fs.BoolVar(&cfg.KeepBlank, "blank", getEnvBool("M3U8LINT_BLANK", false), "report empty lines as blank instead of skipping them")
	fs.BoolVar(&cfg.Verbose, "v", false, "log debug messages")
	fs.BoolVar(&cfg.Quiet, "q", false, "only log errors")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", getEnv("M3U8LINT_METRICS_FILE", ""), "write prometheus metrics to this file when done")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Files = fs.Args()
	if len(cfg.Files) == 0 {
		fs.Usage()
		return nil, errNoFiles
	}
	if cfg.Verbose && cfg.Quiet {
		return nil, errors.New("-v and -q cannot be used together")
	}
	if cfg.Threads < 1 {
		logging.Warn("invalid thread count %d, using 1", cfg.Threads)
		cfg.Threads = 1
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		logging.Warn("invalid %s %q, using default: %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
