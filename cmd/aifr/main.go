// Package main provides the aifr binary entry point.
// AIFR converts slug-based flaw reports into linked-data documents that
// reference canonical, resolvable identifiers for the AI systems and
// organizations involved.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	// Register vocabularies via init()
	_ "github.com/c360studio/aifr/vocabulary/aifr"

	"github.com/c360studio/semstreams/natsclient"
	"github.com/spf13/cobra"

	"github.com/c360studio/aifr/config"
	"github.com/c360studio/aifr/export"
	"github.com/c360studio/aifr/graph"
	"github.com/c360studio/aifr/jsonld"
	"github.com/c360studio/aifr/kb"
	"github.com/c360studio/aifr/processor"
	"github.com/c360studio/aifr/report"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "aifr"
)

// sampleReport is the documented example form submission the root command
// runs the pipeline against.
const sampleReport = `{
  "ai_systems": ["claude-sonnet-4", "deepseek-r1"],
  "ai_systems_unknown": [
    {"description": "Some AI chatbot on my bank's customer support page"}
  ],
  "flaw_description": "The model confidently reports account balances for accounts that do not exist.",
  "flaw_severity": "Medium"
}`

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		kbPath     string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "AI flaw report pipeline",
		Long: `AIFR resolves slug-based flaw reports against a knowledge base and
projects them into JSON-LD documents with canonical system and publisher
identifiers.

The pipeline runs in three stages:
- validate the raw form submission
- resolve slugs into enriched system identities
- project the processed report into a linked-data graph

Run without arguments to process the embedded sample report.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(configPath, kbPath, logLevel)
			if err != nil {
				return err
			}
			return runPipeline(cmd.Context(), cfg, []byte(sampleReport), cmd.OutOrStdout())
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&kbPath, "kb", "", "Knowledge base directory (overrides config)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "process <report.json>",
		Short: "Run the pipeline over a raw report file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(configPath, kbPath, logLevel)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read report: %w", err)
			}
			return runPipeline(cmd.Context(), cfg, data, cmd.OutOrStdout())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "slugs",
		Short: "List knowledge-base system slugs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(configPath, kbPath, logLevel)
			if err != nil {
				return err
			}
			k, stop, err := openKB(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer stop()
			for _, entry := range k.Slugs() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", entry.Slug, entry.DisplayName)
			}
			return nil
		},
	})

	var exportFormat string
	exportCmd := &cobra.Command{
		Use:   "export <report.json>",
		Short: "Process a raw report and export it as RDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(configPath, kbPath, logLevel)
			if err != nil {
				return err
			}
			format := export.Format(strings.ToLower(exportFormat))
			if _, ok := export.GetFormatInfo(format); !ok {
				return fmt.Errorf("unknown format %q (supported: turtle, ntriples)", exportFormat)
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read report: %w", err)
			}

			k, stop, err := openKB(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer stop()
			raw, err := report.ParseRaw(data)
			if err != nil {
				return err
			}
			processed, err := processor.New(k).Process(raw)
			if err != nil {
				return err
			}

			output, err := export.NewReportExporter().Export(processed, k, format)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), output)
			return nil
		},
	}
	exportCmd.Flags().StringVar(&exportFormat, "format", "turtle", "Output format (turtle, ntriples)")
	cmd.AddCommand(exportCmd)

	return cmd
}

// setup configures logging and loads the layered configuration.
func setup(configPath, kbPath, logLevel string) (*config.Config, error) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg.Merge(loaded)
	}
	if kbPath != "" {
		cfg.KB.Path = kbPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// openKB loads the knowledge base and, when watch is enabled, starts a
// hot-reload watcher for it. The returned stop function releases the
// watcher; it is safe to call when no watcher was started.
func openKB(ctx context.Context, cfg *config.Config) (*kb.KB, func(), error) {
	k, err := kb.Open(kb.Config{
		Path:     cfg.KB.Path,
		Patterns: cfg.KB.Patterns,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("open knowledge base: %w", err)
	}

	stop := func() {}
	if cfg.KB.Watch.Enabled {
		w, err := kb.NewWatcher(k, cfg.KB.Watch.GetDebounceDelay(), slog.Default())
		if err != nil {
			return nil, nil, fmt.Errorf("watch knowledge base: %w", err)
		}
		w.Start(ctx)
		stop = func() { _ = w.Close() }
		slog.Debug("Knowledge base watch enabled",
			"path", cfg.KB.Path,
			"debounce", cfg.KB.Watch.GetDebounceDelay())
	}
	return k, stop, nil
}

// runPipeline runs raw -> processed -> JSON-LD and prints each stage.
func runPipeline(ctx context.Context, cfg *config.Config, data []byte, out io.Writer) error {
	raw, err := report.ParseRaw(data)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "=== Raw Form Data ===")
	if err := printJSON(out, raw); err != nil {
		return err
	}

	k, stop, err := openKB(ctx, cfg)
	if err != nil {
		return err
	}
	defer stop()

	processed, err := processor.New(k).Process(raw)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\n=== Processed Report ===")
	if err := printJSON(out, processed); err != nil {
		return err
	}

	doc, err := jsonld.Project(processed, k)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\n=== JSON-LD Report ===")
	if err := printJSON(out, doc); err != nil {
		return err
	}

	if cfg.NATS.URL != "" {
		if err := publishToGraph(cfg, processed); err != nil {
			return err
		}
	}

	return nil
}

// publishToGraph connects to NATS and publishes the report entities.
func publishToGraph(cfg *config.Config, processed *report.ProcessedAIFlawReport) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	slog.Info("Connecting to NATS", "url", cfg.NATS.URL)
	client, err := natsclient.NewClient(cfg.NATS.URL,
		natsclient.WithName(appName),
		natsclient.WithMaxReconnects(-1),
		natsclient.WithReconnectWait(time.Second),
	)
	if err != nil {
		return fmt.Errorf("create NATS client: %w", err)
	}
	if err := client.Connect(ctx); err != nil {
		return fmt.Errorf("NATS connection failed: %w", err)
	}
	defer client.Close(ctx)

	if err := client.WaitForConnection(ctx); err != nil {
		return fmt.Errorf("NATS connection failed: %w", err)
	}

	if err := graph.PublishReport(ctx, client, processed); err != nil {
		return fmt.Errorf("publish report: %w", err)
	}
	slog.Info("Report published to knowledge graph",
		"entity", graph.ReportEntityID(processed.ReportID))
	return nil
}

func printJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
