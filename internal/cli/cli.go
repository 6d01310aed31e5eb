// Package cli provides the command-line interface for the OpenAPI upgrade tool.
package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v4"

	"github.com/GabrielNunesIT/openapi-upgrade/internal/adapters/writers"
	"github.com/GabrielNunesIT/openapi-upgrade/internal/config"
	"github.com/GabrielNunesIT/openapi-upgrade/internal/convert"
	"github.com/GabrielNunesIT/openapi-upgrade/internal/domain"
	"github.com/GabrielNunesIT/openapi-upgrade/internal/validate"
)

// CLI holds the command-line interface configuration.
type CLI struct {
	log        zerolog.Logger
	rootCmd    *cobra.Command
	inputFile  string
	outputFile string
	format     string
	strict     bool
	noValidate bool
	quiet      bool
}

// New creates a new CLI instance.
func New(log zerolog.Logger) *CLI {
	cli := &CLI{
		log: log,
	}

	cli.rootCmd = &cobra.Command{
		Use:           "openapi-upgrade",
		Short:         "Upgrade Swagger 2.0 / OpenAPI 3.0 specifications to OpenAPI 3.1",
		Long:          "A CLI tool that converts Swagger 2.0 and OpenAPI 3.0 specification documents to OpenAPI 3.1, rewriting legacy references, lifting body parameters into request bodies, and reshaping security schemes.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          cli.run,
	}

	cli.setupFlags()

	return cli
}

func (c *CLI) setupFlags() {
	c.rootCmd.Flags().StringVarP(&c.inputFile, "input", "i", "", "Path to the Swagger 2.0 or OpenAPI 3.0 specification file (required)")
	c.rootCmd.Flags().StringVarP(&c.outputFile, "output", "o", "", "Path for the converted OpenAPI 3.1 document (required)")
	c.rootCmd.Flags().StringVarP(&c.format, "format", "f", "", "Output format: yaml, json (default: derived from the output extension)")
	c.rootCmd.Flags().BoolVar(&c.strict, "strict", false, "Fail on any conversion or validation warning")
	c.rootCmd.Flags().BoolVar(&c.noValidate, "no-validate", false, "Skip the pre- and post-conversion structural checks")
	c.rootCmd.Flags().BoolVarP(&c.quiet, "quiet", "q", false, "Suppress diagnostic output below the error level")

	_ = c.rootCmd.MarkFlagRequired("input")
	_ = c.rootCmd.MarkFlagRequired("output")
}

// Execute runs the CLI.
func (c *CLI) Execute() error {
	return c.rootCmd.Execute()
}

// ExecuteArgs runs the CLI with explicit arguments. Used by tests.
func (c *CLI) ExecuteArgs(args []string) error {
	c.rootCmd.SetArgs(args)
	return c.rootCmd.Execute()
}

func (c *CLI) run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	c.applyLogLevel(cfg)

	if c.noValidate {
		cfg.Validate = false
	}

	c.log.Info().Str("path", c.inputFile).Msg("loading specification")

	doc, err := c.loadDocument(c.inputFile)
	if err != nil {
		return err
	}

	warningCount := 0

	if cfg.Validate {
		for _, warning := range validate.Input(doc) {
			c.log.Warn().Str("stage", "pre-validation").Msg(warning)
			warningCount++
		}
	}

	conv := convert.New()
	conv.RequestMediaType = cfg.MediaType

	result, err := conv.Convert(doc)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	c.log.Info().
		Str("source_version", result.SourceVersion).
		Str("target_version", domain.Version).
		Msg("converted specification")

	for _, issue := range result.Issues {
		switch issue.Severity {
		case convert.SeverityWarning:
			c.log.Warn().Str("path", issue.Path).Msg(issue.Message)
		default:
			c.log.Info().Str("path", issue.Path).Msg(issue.Message)
		}
	}
	warningCount += result.WarningCount

	if cfg.Validate {
		for _, warning := range validate.Output(result.Document) {
			c.log.Warn().Str("stage", "post-validation").Msg(warning)
			warningCount++
		}
	}

	if cfg.Strict && warningCount > 0 {
		return fmt.Errorf("strict mode: %d warning(s) encountered, output not written", warningCount)
	}

	writer, err := c.getWriter(cfg)
	if err != nil {
		return err
	}

	outputFile, err := os.Create(c.outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer outputFile.Close()

	if err := writer.Write(result.Document, outputFile); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	c.log.Info().
		Str("path", c.outputFile).
		Str("format", writer.Format()).
		Int("warnings", warningCount).
		Msg("successfully wrote converted document")

	return nil
}

func (c *CLI) applyLogLevel(cfg *config.Config) {
	if c.quiet {
		c.log = c.log.Level(zerolog.ErrorLevel)
		return
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		c.log.Warn().Str("log_level", cfg.LogLevel).Msg("unknown log level, keeping default")
		return
	}
	c.log = c.log.Level(level)
}

// getWriter selects the output writer: an explicit --format flag wins, then
// the output file extension, then the configured default.
func (c *CLI) getWriter(cfg *config.Config) (domain.Writer, error) {
	format := strings.ToLower(c.format)
	if format == "" {
		format = writers.DetectFormat(c.outputFile)
	}
	if format == "" {
		format = strings.ToLower(cfg.Format)
	}

	switch format {
	case "json":
		return writers.NewJSONWriter(), nil
	case "yaml", "yml":
		return writers.NewYAMLWriter(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: yaml, json)", format)
	}
}

// loadDocument reads and parses a specification file into a raw document
// tree. The format is detected from the extension first, then from the
// leading content byte: JSON documents start with '{' or '['.
func (c *CLI) loadDocument(path string) (map[string]any, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read specification file: %w", err)
	}

	var raw any
	if isJSON(absPath, data) {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON specification: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML specification: %w", err)
		}
	}

	doc, ok := normalize(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("specification root is not a mapping")
	}

	return doc, nil
}

func isJSON(path string, data []byte) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return true
	case ".yaml", ".yml":
		return false
	}

	trimmed := bytes.TrimLeft(data, " \t\n\r")
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}

// normalize converts YAML's loosely-typed mappings into map[string]any trees.
// YAML documents key responses by bare status codes, which decode as
// non-string keys.
func normalize(node any) any {
	switch v := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, value := range v {
			out[key] = normalize(value)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, value := range v {
			out[fmt.Sprint(key)] = normalize(value)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, value := range v {
			out[i] = normalize(value)
		}
		return out
	default:
		return node
	}
}
