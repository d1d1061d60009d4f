package bootstrap

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/kirillkom/guide-extractor/internal/adapters/cli"
	"github.com/kirillkom/guide-extractor/internal/config"
	"github.com/kirillkom/guide-extractor/internal/core/extraction"
	"github.com/kirillkom/guide-extractor/internal/core/ports"
	"github.com/kirillkom/guide-extractor/internal/core/usecase"
	"github.com/kirillkom/guide-extractor/internal/infrastructure/exporter/xlsx"
	"github.com/kirillkom/guide-extractor/internal/infrastructure/extractor"
	"github.com/kirillkom/guide-extractor/internal/infrastructure/extractor/pdftext"
	"github.com/kirillkom/guide-extractor/internal/infrastructure/extractor/plaintext"
	"github.com/kirillkom/guide-extractor/internal/infrastructure/report/yamlreport"
	"github.com/kirillkom/guide-extractor/internal/infrastructure/resilience"
	"github.com/kirillkom/guide-extractor/internal/infrastructure/storage/guarded"
	"github.com/kirillkom/guide-extractor/internal/infrastructure/storage/localfs"
	"github.com/kirillkom/guide-extractor/internal/observability/metrics"
)

type App struct {
	Config config.Config
	Logger *slog.Logger

	Texts     *extractor.Router
	Metrics   *metrics.BatchMetrics
	BatchUC   ports.BatchExtractor
	CompileUC ports.GuideCompiler

	closeFn func() error
}

// New wires the extraction pipeline. progressOut receives per-file progress
// lines when progress is enabled.
func New(cfg config.Config, logger *slog.Logger, progressOut io.Writer) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	// Paths are used as given, relative to the working directory.
	storage, err := localfs.New("")
	if err != nil {
		return nil, fmt.Errorf("init object storage: %w", err)
	}

	sources := guarded.New(storage, resilience.NewExecutor(resilience.SourceReadConfig(), logger))
	texts := extractor.NewRouter(pdftext.NewExtractor(sources), plaintext.NewExtractor(sources))
	fields := extraction.NewExtractor(cfg.ExcerptChars)
	batchMetrics := metrics.NewBatchMetrics(cfg.ServiceName)

	var progress ports.ProgressReporter
	if cfg.ProgressEnabled && progressOut != nil {
		progress = cli.NewProgressPrinter(progressOut)
	}

	executorCfg := resilience.DefaultConfig()
	executorCfg.RetryMaxAttempts = cfg.ExportRetryMaxAttempts
	executorCfg.RetryInitialBackoff = cfg.ExportRetryInitialBackoff
	executorCfg.RetryMaxBackoff = cfg.ExportRetryMaxBackoff
	executor := resilience.NewExecutor(executorCfg, logger)

	exporter := xlsx.NewExporter(storage, executor, cfg.SheetName, logger)

	var reporter ports.FailureReporter
	if cfg.FailureReportPath != "" {
		reporter = yamlreport.NewWriter(storage, executor, logger)
	}

	batchUC := usecase.NewExtractBatchUseCase(texts, fields, progress, batchMetrics, logger)
	compileUC := usecase.NewCompileUseCase(batchUC, exporter, reporter, cfg.FailureReportPath, logger)

	return &App{
		Config: cfg,
		Logger: logger,

		Texts:     texts,
		Metrics:   batchMetrics,
		BatchUC:   batchUC,
		CompileUC: compileUC,

		closeFn: func() error {
			if cfg.MetricsFile == "" {
				return nil
			}
			return batchMetrics.WriteTextfile(cfg.MetricsFile)
		},
	}, nil
}

// Close flushes the metrics textfile when one is configured.
func (a *App) Close() error {
	if a.closeFn != nil {
		return a.closeFn()
	}
	return nil
}
