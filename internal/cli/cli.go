// Package cli provides the command-line interface for the OpenAPI table generator.
package cli

import (
	"fmt"

	"github.com/GabrielNunesIT/go-libs/logger"
	"github.com/GabrielNunesIT/openapi-table/internal/config"
	"github.com/GabrielNunesIT/openapi-table/internal/generator"
	"github.com/spf13/cobra"
)

// CLI holds the command-line interface configuration.
type CLI struct {
	log        logger.ILogger
	rootCmd    *cobra.Command
	configFile string
	inputDir   string
	outputFile string
	format     string
	delimiter  string
	pdfFont    string
}

// New creates a new CLI instance.
func New(log logger.ILogger) *CLI {
	cli := &CLI{
		log: log,
	}

	cli.rootCmd = &cobra.Command{
		Use:           "openapi-table",
		Short:         "Flatten OpenAPI 3.0 YAML files into an API design table",
		Long:          "A CLI tool that reads every OpenAPI 3.0 YAML file in a directory and writes one row per operation, grouped by service, as a delimited or transposed report.",
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          cli.run,
	}

	cli.setupFlags()

	return cli
}

func (c *CLI) setupFlags() {
	flags := c.rootCmd.Flags()
	flags.StringVar(&c.configFile, "config", "", "Path to a configuration file")
	flags.StringVarP(&c.inputDir, "directory", "d", config.DefaultInputDir, "Input directory containing OpenAPI YAML files")
	flags.StringVarP(&c.outputFile, "output", "o", "", "Path for the output file (default API설계서 with the format's extension)")
	flags.StringVarP(&c.format, "format", "f", config.DefaultFormat, "Output format: transposed, flat, confluence, docx, pdf")
	flags.StringVar(&c.delimiter, "delimiter", config.DefaultDelimiter, "Field delimiter for flat and transposed output")
	flags.StringVar(&c.pdfFont, "pdf-font", "", "TTF font embedded in PDF output (needed for Korean text)")
}

// Execute runs the CLI.
func (c *CLI) Execute() error {
	return c.rootCmd.Execute()
}

func (c *CLI) run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	c.applyFlags(cmd, cfg)

	_, err = generator.New(cfg, c.log).Run()

	return err
}

// applyFlags overrides configuration values with flags given explicitly.
func (c *CLI) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("directory") {
		cfg.InputDir = c.inputDir
	}
	if flags.Changed("output") {
		cfg.OutputFile = c.outputFile
	}
	if flags.Changed("format") {
		cfg.Format = c.format
	}
	if flags.Changed("delimiter") {
		cfg.Delimiter = c.delimiter
	}
	if flags.Changed("pdf-font") {
		cfg.PDFFont = c.pdfFont
	}
}
