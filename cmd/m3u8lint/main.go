// Command m3u8lint reads HLS playlists, checks that every line is UTF-8
// as RFC 8216 requires and prints each line with its kind.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	hls "github.com/turtletowerz/go-hls"
	"github.com/turtletowerz/go-hls/logging"
	"github.com/turtletowerz/go-hls/m3u8"
	"github.com/turtletowerz/go-hls/metrics"
	"github.com/turtletowerz/go-hls/progressbar"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "m3u8lint: %v\n", err)
		return 2
	}

	logging.SetOutput(stderr)
	switch {
	case cfg.Verbose:
		logging.SetLevel(logging.LevelDebug)
	case cfg.Quiet:
		logging.SetLevel(logging.LevelError)
	}

	v := hls.New(cfg.Threads)
	v.SetKeepBlank(cfg.KeepBlank)
	if !cfg.Quiet {
		v.SetWarningFunc(func(path string, w m3u8.Warning) {
			fmt.Fprintf(stderr, "%s: warning: %v\n", path, w)
		})
	}
	if cfg.MetricsFile != "" {
		metrics.InitializeMetrics()
		v.SetObserver(metrics.NewCollectorObserver())
	}

	var bar *progressbar.Bar
	if showProgress(cfg, stderr) {
		bar = progressbar.New(len(cfg.Files), "files")
		v.SetProgressFunc(func(done, total int) error {
			out, err := bar.Set(done)
			if err != nil {
				return err
			}
			fmt.Fprint(stderr, out)
			return nil
		})
	}

	results, err := v.ValidateFiles(cfg.Files)
	if bar != nil {
		fmt.Fprint(stderr, bar.Done())
	}
	if err != nil {
		logging.Error("validation stopped: %v", err)
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(stderr, "%s: %v\n", res.Path, res.Err)
			continue
		}

		if cfg.Summary {
			printSummary(stdout, res)
		} else {
			printLines(stdout, res)
		}
	}

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			logging.Error("writing metrics to %s: %v", cfg.MetricsFile, err)
			return 1
		}
	}

	if failed > 0 {
		logging.Info("%d of %d playlists failed", failed, len(results))
		return 1
	}
	return 0
}

// showProgress only draws the bar for several files on an interactive terminal
func showProgress(cfg *config, stderr io.Writer) bool {
	if cfg.Quiet || len(cfg.Files) < 2 {
		return false
	}
	f, ok := stderr.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func printLines(w io.Writer, res hls.Result) {
	for _, line := range res.Lines.Lines() {
		fmt.Fprintf(w, "%s:%d\t%s\t%s\n", res.Path, line.Index, line.Kind, line.Value)
	}
}

func printSummary(w io.Writer, res hls.Result) {
	set := res.Lines
	fmt.Fprintf(w, "%s: %d lines (%d tags, %d comments, %d uris, %d blank), %d warnings\n",
		res.Path, set.Len(),
		len(set.Filter(m3u8.Tag)), len(set.Filter(m3u8.Comment)),
		len(set.Filter(m3u8.URI)), len(set.Filter(m3u8.Blank)),
		len(set.Warnings))
}
