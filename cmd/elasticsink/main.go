package main

import (
	"fmt"
	"os"
	"runtime"

	json "github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/datalift/elasticsink/pkg/config"
	"github.com/datalift/elasticsink/pkg/logger"
	"github.com/datalift/elasticsink/pkg/sinkerrors"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	var logLevel string

	root := &cobra.Command{
		Use:   "elasticsink",
		Short: "Elasticsink - Elasticsearch sink connector tooling",
		Long: `Elasticsink streams records from a topic-partitioned source into Elasticsearch.
This tool validates connector configuration files and renders the configuration reference.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Init(logger.Config{Level: logLevel, Encoding: "json"})
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Elasticsink v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	validateCmd := &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a connector configuration file",
		Long: `Validate resolves a configuration file (.properties, .json, .yaml or .yml)
against the connector's field definitions, applying defaults, type coercion,
per-field validation and cross-field checks. ${VAR} references are substituted
from the environment before parsing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateConfig(args[0])
		},
	}
	root.AddCommand(validateCmd)

	var docsFormat string
	docsCmd := &cobra.Command{
		Use:   "docs",
		Short: "Render the configuration reference",
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderDocs(cmd, docsFormat)
		},
	}
	docsCmd.Flags().StringVar(&docsFormat, "format", "markdown", "Output format (markdown, json)")
	root.AddCommand(docsCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func validateConfig(path string) error {
	log := logger.With(zap.String("component", "elasticsink-cli"), zap.String("config", path))

	props, err := config.LoadProps(path)
	if err != nil {
		return err
	}

	cfg, err := config.New(props)
	if err != nil {
		return sinkerrors.Wrap(err, sinkerrors.ErrorTypeConfig, "configuration is invalid").
			WithDetail("path", path)
	}

	transport, err := cfg.Transport()
	if err != nil {
		return err
	}

	log.Info("configuration is valid",
		zap.Int("fields", config.Def.Len()),
		zap.Strings("connection_urls", transport.URLs),
		zap.Bool("authentication", transport.UseAuthentication()),
		zap.Bool("secured", cfg.Secured()),
		zap.Bool("proxy", cfg.IsBasicProxyConfigured()),
		zap.Bool("proxy_authentication", cfg.IsProxyWithAuthenticationConfigured()))
	return nil
}

func renderDocs(cmd *cobra.Command, format string) error {
	switch format {
	case "markdown":
		fmt.Fprint(cmd.OutOrStdout(), config.Def.RenderMarkdown())
		return nil
	case "json":
		data, err := json.MarshalIndent(config.Def.Documentation(), "", "  ")
		if err != nil {
			return sinkerrors.Wrap(err, sinkerrors.ErrorTypeInternal, "rendering configuration reference")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	default:
		return sinkerrors.New(sinkerrors.ErrorTypeConfig,
			fmt.Sprintf("unsupported docs format %q, expected markdown or json", format))
	}
}
