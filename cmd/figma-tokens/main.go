package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	figmatokens "github.com/hellenic-development/figma-tokens"
	"github.com/hellenic-development/figma-tokens/pkg/sink"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = figmatokens.Version

var (
	figmaURL    string
	fileKey     string
	accessToken string
	outDir      string
	formatsFlag string
	configPath  string
	nodeIDs     []string
	stylePrefix string
	watch       bool
	interval    time.Duration
	verbose     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "figma-tokens",
		Short: "Sync design tokens from a Figma file",
		Long:  "A tool that fetches colors, typography, spacing, and effects from a Figma file and writes them as CSS custom properties, a Tailwind theme extension, SCSS variables, and a JSON token document",
		RunE:  run,
	}

	rootCmd.Flags().StringVarP(&figmaURL, "url", "u", "", "Figma file URL")
	rootCmd.Flags().StringVarP(&fileKey, "file-key", "k", "", "Figma file key (alternative to --url)")
	rootCmd.Flags().StringVarP(&accessToken, "token", "t", "", "Figma Personal Access Token (default: $FIGMA_TOKEN)")
	rootCmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default: design-tokens)")
	rootCmd.Flags().StringVarP(&formatsFlag, "formats", "f", "", "Comma-separated output formats: css, tailwind, scss, json (default: all)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML project config (default: .figma-tokens.yaml)")
	rootCmd.Flags().StringSliceVar(&nodeIDs, "node-ids", nil, "Restrict sync to specific node IDs (reserved, currently full-document)")
	rootCmd.Flags().StringVar(&stylePrefix, "style-prefix", "", "Only sync styles with this name prefix (reserved, currently all styles)")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep running and re-sync on an interval")
	rootCmd.Flags().DurationVar(&interval, "interval", 0, "Polling interval for --watch (default: 1m)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print progress messages")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("figma-tokens version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cyan := color.New(color.FgCyan)
	cyan.Println("\n🎨 Figma Token Sync")
	cyan.Println("===================")
	cyan.Println()

	cfgPath := configPath
	explicit := cfgPath != ""
	if cfgPath == "" {
		cfgPath = defaultConfigPath
	}
	cfg, err := loadProjectConfig(cfgPath, explicit)
	if err != nil {
		return err
	}

	formats, err := resolveFormats(formatsFlag, cfg)
	if err != nil {
		return err
	}
	outputNames, err := resolveOutputNames(cfg)
	if err != nil {
		return err
	}

	opts := figmatokens.Options{
		AccessToken: resolveToken(accessToken, cfg),
		FileURL:     resolveString(figmaURL, cfg.FileURL, ""),
		FileKey:     resolveString(fileKey, cfg.FileKey, ""),
		Formats:     formats,
		OutputDir:   resolveString(outDir, cfg.OutDir, "design-tokens"),
		OutputNames: outputNames,
		NodeIDs:     append(nodeIDs, cfg.NodeIDs...),
		StylePrefix: resolveString(stylePrefix, cfg.StylePrefix, ""),
	}
	if verbose {
		opts.Logger = &cliLogger{}
	}

	if opts.AccessToken == "" {
		return fmt.Errorf("no access token: pass --token or set $FIGMA_TOKEN")
	}
	if opts.FileURL == "" && opts.FileKey == "" {
		return fmt.Errorf("no file: pass --url or --file-key, or set file_url in %s", cfgPath)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !watch {
		return syncOnce(ctx, opts)
	}

	tick, err := resolveInterval(interval, cfg, time.Minute)
	if err != nil {
		return err
	}

	// One fingerprint cache for the whole watch session, so unchanged remote
	// snapshots skip every write.
	opts.Cache = sink.NewFingerprintCache()

	cyan.Printf("Watching (every %s), press Ctrl+C to stop\n\n", tick)
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		if err := syncOnce(ctx, opts); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			// Keep watching through transient failures.
			color.New(color.FgRed).Printf("Sync failed: %v\n", err)
		}
		select {
		case <-ctx.Done():
			fmt.Println()
			return nil
		case <-ticker.C:
		}
	}
}

func syncOnce(ctx context.Context, opts figmatokens.Options) error {
	green := color.New(color.FgGreen)

	result, err := figmatokens.Run(ctx, opts)
	if err != nil {
		return err
	}

	set := result.Set
	fmt.Printf("📄 %s\n", result.FileName)
	fmt.Printf("  • Colors: %d\n", set.Colors.Len())
	fmt.Printf("  • Typography: %d\n", set.Typography.Len())
	fmt.Printf("  • Spacing: %d\n", set.Spacing.Len())
	fmt.Printf("  • Effects: %d\n", set.Effects.Len())
	fmt.Println()

	for _, out := range result.Outputs {
		switch out.Status {
		case sink.StatusUnchanged:
			fmt.Printf("  = %s (unchanged)\n", out.Path)
		case sink.StatusChanged:
			green.Printf("  ~ %s (updated)\n", out.Path)
		default:
			green.Printf("  + %s (created)\n", out.Path)
		}
	}

	written := 0
	for _, out := range result.Outputs {
		if out.Status != sink.StatusUnchanged {
			written++
		}
	}
	if written == 0 {
		fmt.Println("\n✨ Everything up to date")
	} else {
		green.Printf("\n✨ Wrote %d file(s)\n", written)
	}
	fmt.Println()

	return nil
}

// cliLogger implements figmatokens.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
