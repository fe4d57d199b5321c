package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/mvp-joe/docdex/internal/config"
	"github.com/mvp-joe/docdex/internal/hierarchy"
	"github.com/mvp-joe/docdex/internal/index"
	"github.com/mvp-joe/docdex/internal/render"
	"github.com/mvp-joe/docdex/internal/scanner"
)

var quietFlag bool

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the symbol index for the current directory",
	Long: `Build scans the configured source files, merges every documented
symbol into the index tree, resolves the class hierarchy, and writes
the HTML symbol index.

Examples:
  # Build the index for the current directory
  docdex build

  # Build without progress output
  docdex build --quiet
`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Disable progress bars and non-error output")
}

func runBuild(cmd *cobra.Command, args []string) error {
	// Set up context with cancellation for Ctrl+C
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nInterrupted! Cancelling build...")
		cancel()
	}()

	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadConfigFromDir(rootDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	tag, err := language.Parse(cfg.Index.Locale)
	if err != nil {
		return fmt.Errorf("failed to parse locale %q: %w", cfg.Index.Locale, err)
	}

	discovery, err := scanner.NewFileDiscovery(rootDir, cfg.Paths.Source, cfg.Paths.Ignore)
	if err != nil {
		return fmt.Errorf("failed to compile path patterns: %w", err)
	}

	files, err := discovery.DiscoverFiles()
	if err != nil {
		return fmt.Errorf("failed to discover source files: %w", err)
	}

	progress := NewCLIProgressReporter(quietFlag)
	progress.OnDiscoveryComplete(len(files))
	progress.OnScanStart(len(files))

	builder := index.NewBuilder(index.WithComparator(index.NewComparator(tag)))
	resolver := hierarchy.NewResolver()

	for _, file := range files {
		select {
		case <-ctx.Done():
			return fmt.Errorf("build cancelled")
		default:
		}

		parser := scanner.ParserForFile(file)
		if parser == nil {
			progress.OnFileScanned(filepath.Base(file))
			continue
		}

		relPath, err := filepath.Rel(rootDir, file)
		if err != nil {
			relPath = file
		}
		relPath = filepath.ToSlash(relPath)

		scan, err := parser.ParseFile(ctx, file)
		if err != nil {
			log.Printf("Warning: failed to scan %s: %v", relPath, err)
			progress.OnFileScanned(filepath.Base(file))
			continue
		}
		if scan == nil {
			progress.OnFileScanned(filepath.Base(file))
			continue
		}

		for _, fact := range scan.Facts {
			builder.Add(fact.Symbol, fact.Class, relPath, fact.Type, fact.Prototype, fact.Summary)
		}
		resolver.SetFile(relPath, scan.Registry)

		progress.OnFileScanned(filepath.Base(file))
	}

	// One sort after all merges, before any rendering
	builder.Sort()

	h, err := resolver.Resolve()
	if err != nil {
		return fmt.Errorf("failed to resolve class hierarchy: %w", err)
	}
	if cyclic, err := h.HasCycle(); err == nil && cyclic {
		log.Println("Warning: class hierarchy contains an inheritance loop")
	}
	classes, err := h.Classes()
	if err != nil {
		return fmt.Errorf("failed to list classes: %w", err)
	}

	outputDir := filepath.Join(rootDir, cfg.Output.Dir)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	renderer, err := render.NewHTML(cfg.Output.Title)
	if err != nil {
		return err
	}

	outPath := filepath.Join(outputDir, "index.html")
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer out.Close()

	if err := renderer.Render(out, builder.Elements()); err != nil {
		return err
	}

	stats := builder.Stats()
	progress.OnComplete(stats, len(classes))
	if quietFlag {
		fmt.Printf("Index built: %d symbols in %.2fs\n", stats.Symbols, stats.Duration.Seconds())
	}

	return nil
}
