package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/bradleydigital/appicon/internal/app"
	"github.com/bradleydigital/appicon/internal/config"
	"github.com/bradleydigital/appicon/internal/export"
)

const debugLogPath = "./appicon-debug.log"

// usageError makes main exit with status 2.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "appicon:", err)
		var ue usageError
		if errors.As(err, &ue) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(out io.Writer, args []string) error {
	env, err := config.FromEnv(config.DefaultOutput)
	if err != nil {
		return usageError{err}
	}

	fs := flag.NewFlagSet("appicon", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintln(out, "Usage: appicon [flags] [output-path]")
		fs.PrintDefaults()
	}
	configPath := fs.String("config", env.Config, "HCL design file overriding the built-in icon design; also configurable via "+config.EnvConfig)
	output := fs.String("o", env.Output, "output PNG path; also configurable via "+config.EnvOutput)
	workers := fs.Int("workers", env.Workers, "background worker count, 0 for GOMAXPROCS; also configurable via "+config.EnvWorkers)
	sizes := fs.String("sizes", "", "comma-separated extra icon sizes written next to the output (e.g. 180,120)")
	contents := fs.Bool("contents", false, "write Contents.json for the app icon set")
	previewFB := fs.String("preview-fb", "", "show the icon on this framebuffer device (e.g. /dev/fb0)")
	compression := fs.String("compression", "default", "PNG compression: default, none, best-speed or best")
	debug := fs.Bool("debug", false, "enable debug logging to "+debugLogPath)
	stdioLog := fs.String("stdio-log", env.StdioLog, "redirect stdout+stderr to this file; also configurable via "+config.EnvStdioLog)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return usageError{err}
	}
	if fs.NArg() > 1 {
		return usageError{fmt.Errorf("expected at most one output path, got %d arguments", fs.NArg())}
	}
	if fs.NArg() == 1 {
		*output = fs.Arg(0)
	}

	// Best-effort: keep a record of the run even when stdout is not captured.
	if *stdioLog != "" {
		w, closeLog, err := redirectStdIO(*stdioLog, out)
		if err != nil {
			fmt.Fprintln(out, "stdio log redirect error:", err)
		}
		defer closeLog()
		out = w
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile(debugLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Fprintln(out, "debug log open error:", err)
		}
	}

	cfg := config.Default()
	if *configPath != "" {
		if cfg, err = config.LoadFile(*configPath, cfg); err != nil {
			return err
		}
		logger.Infof("main", "design loaded from %s", *configPath)
	}
	if *workers < 0 {
		return usageError{fmt.Errorf("-workers must not be negative")}
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}

	extra, err := parseSizes(*sizes)
	if err != nil {
		return usageError{err}
	}
	level, err := export.ParseCompression(*compression)
	if err != nil {
		return usageError{err}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := app.New(cfg, app.Options{
		Output:      *output,
		Sizes:       extra,
		Contents:    *contents,
		PreviewFB:   *previewFB,
		Compression: level,
	}, out)
	a.Logger = logger
	return a.Run(ctx)
}

// openStdioLog opens path for appending; an empty path yields a nil file.
func openStdioLog(path string) (*os.File, error) {
	if path == "" {
		return nil, nil
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}

func parseSizes(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var sizes []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid icon size %q", part)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}
