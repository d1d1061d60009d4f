package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kirillkom/guide-extractor/internal/adapters/cli"
	"github.com/kirillkom/guide-extractor/internal/bootstrap"
	"github.com/kirillkom/guide-extractor/internal/config"
	"github.com/kirillkom/guide-extractor/internal/observability/logging"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg := config.Load()

	fs := flag.NewFlagSet("guide-extractor", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: guide-extractor [flags] <file-or-dir>...\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.OutputPath, "out", cfg.OutputPath, "destination workbook")
	fs.StringVar(&cfg.SheetName, "sheet", cfg.SheetName, "worksheet name")
	fs.StringVar(&cfg.FailureReportPath, "report", cfg.FailureReportPath, "write the failure log as YAML to this path")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "write Prometheus textfile metrics to this path")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.IntVar(&cfg.ExcerptChars, "excerpt", cfg.ExcerptChars, "characters of leading text kept for unmatched files")
	quiet := fs.Bool("quiet", !cfg.ProgressEnabled, "do not print per-file progress")
	if err := fs.Parse(args); err != nil {
		return cli.ExitUsage
	}
	cfg.ProgressEnabled = !*quiet

	logger := logging.NewJSONLogger(os.Stderr, cfg.ServiceName, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(cfg, logger, os.Stderr)
	if err != nil {
		logger.Error("bootstrap.error", "error", err)
		return cli.ExitError
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("metrics.textfile.error", "error", err)
		}
	}()

	paths, err := cli.ExpandInputs(fs.Args(), app.Texts.Supported)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		fs.Usage()
		return cli.ExitUsage
	}

	summary, err := app.CompileUC.Compile(ctx, paths, cli.OutputPath(cfg.OutputPath))
	return cli.PrintSummary(os.Stdout, summary, err)
}
