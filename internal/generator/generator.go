// Package generator runs one conversion: discover documents, flatten their
// operations and write the report.
package generator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/GabrielNunesIT/openapi-table/internal/adapters/converters"
	"github.com/GabrielNunesIT/openapi-table/internal/adapters/loader"
	"github.com/GabrielNunesIT/openapi-table/internal/config"
	"github.com/GabrielNunesIT/openapi-table/internal/domain"
	"github.com/GabrielNunesIT/openapi-table/internal/extract"
	"github.com/GabrielNunesIT/openapi-table/internal/report"
)

// Logger is the subset of logger.ILogger the generator uses.
type Logger interface {
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Generator converts a directory of OpenAPI documents into one report.
type Generator struct {
	cfg     *config.Config
	log     Logger
	builder *extract.Builder
	now     func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the time source for the report timestamp.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// Result describes a completed run.
type Result struct {
	OutputFile string
	Files      int
	Rows       int
}

// New creates a new Generator.
func New(cfg *config.Config, log Logger, opts ...Option) *Generator {
	g := &Generator{
		cfg: cfg,
		log: log,
		builder: extract.NewBuilder(
			extract.WithServiceNames(cfg.ServiceNames),
			extract.WithPreferredServer(cfg.PreferredServer),
		),
		now: time.Now,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Run performs the conversion. It fails without touching the output file
// when no YAML file is found or no operation could be extracted.
func (g *Generator) Run() (Result, error) {
	writer, err := converters.New(g.cfg.Format, converters.Options{
		Delimiter: g.cfg.Delimiter,
		FontPath:  g.cfg.PDFFont,
	})
	if err != nil {
		return Result{}, err
	}

	if writer.Format() == converters.FormatPDF && g.cfg.PDFFont == "" {
		g.log.Warningf("No PDF font configured; Korean text will not render (set --pdf-font to a TTF file)")
	}

	inputDir, err := filepath.Abs(g.cfg.InputDir)
	if err != nil {
		return Result{}, fmt.Errorf("failed to resolve path: %w", err)
	}

	files, err := loader.Discover(inputDir)
	if err != nil {
		return Result{}, err
	}

	if len(files) == 0 {
		return Result{}, fmt.Errorf("%s: %w", inputDir, domain.ErrNoInputFiles)
	}

	g.log.Infof("Found %d YAML files in %s", len(files), inputDir)

	rows := g.Collect(files)
	if len(rows) == 0 {
		return Result{}, domain.ErrNoOperations
	}

	output, err := g.OutputPath()
	if err != nil {
		return Result{}, err
	}

	g.log.Infof("Writing %s report...", writer.Format())

	rep := report.New(rows, g.now())
	if err := write(writer, rep, output); err != nil {
		return Result{}, err
	}

	summary := rep.Summary()

	g.log.Infof("Successfully created: %s", output)
	g.log.Infof("Converted %d APIs from %d files", summary.APICount, summary.FileCount)

	return Result{
		OutputFile: output,
		Files:      summary.FileCount,
		Rows:       summary.APICount,
	}, nil
}

// Collect builds the rows of every file in order. Files that cannot be read
// or decoded are logged and skipped.
func (g *Generator) Collect(files []string) []domain.Row {
	var rows []domain.Row

	for _, file := range files {
		g.log.Infof("Processing: %s", filepath.Base(file))

		doc, err := loader.Load(file)
		if err != nil {
			g.log.Errorf("Skipping %s: %v", filepath.Base(file), err)
			continue
		}

		rows = append(rows, g.builder.Rows(doc)...)
	}

	return rows
}

// OutputPath returns the absolute path of the report file.
func (g *Generator) OutputPath() (string, error) {
	name := g.cfg.OutputFile
	if name == "" {
		name = config.DefaultOutputBase + converters.Extension(g.cfg.Format)
	}

	path, err := filepath.Abs(name)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	return path, nil
}

func write(writer report.Writer, rep *report.Report, path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	defer func() {
		err = errors.Join(err, file.Close())
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if err := writer.Write(rep, file); err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	return nil
}
