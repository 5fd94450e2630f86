// Package app wires configuration, ignore rules, the walker and the
// printer into the scan-and-serialize run.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/ykawataki/c2c/internal/config"
	"github.com/ykawataki/c2c/internal/ignore"
	"github.com/ykawataki/c2c/internal/logger"
	"github.com/ykawataki/c2c/internal/printer"
	"github.com/ykawataki/c2c/internal/sniff"
	"github.com/ykawataki/c2c/internal/spool"
	"github.com/ykawataki/c2c/internal/summary"
	"github.com/ykawataki/c2c/internal/walker"
)

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	Output io.Writer // Exported so tests can substitute the destination
}

// New creates a new App instance
func New(cfg *config.Config) *App {
	// Configure color globally
	color.NoColor = !cfg.UseColors

	// Set up output destination
	var output io.Writer = os.Stdout
	if cfg.OutputFile != "" {
		file, err := os.Create(cfg.OutputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to create output file: %v\n", err)
			os.Exit(1)
		}
		// Note: file will be closed by main function
		output = file
	}

	// Set up logger
	log := logger.New(os.Stderr, cfg.UseColors)
	if cfg.Debug {
		log.WithLevel(logger.LevelDebug)
	} else if cfg.LogLevel != "" {
		log.SetLevel(cfg.LogLevel)
	}

	return &App{
		cfg:    cfg,
		log:    log,
		Output: output,
	}
}

// Run executes the main application logic. The returned error signals a
// fatal condition; per-file failures are logged and skipped instead.
func (a *App) Run() error {
	startTime := time.Now()

	// Show version and exit if requested
	if a.cfg.ShowVersion {
		fmt.Printf("c2c version %s\n", a.cfg.Version)
		return nil
	}

	// Helper for info messages, suppressed by quiet flag
	infoLog := func(format string, args ...interface{}) {
		if !a.cfg.Quiet {
			a.log.Info(format, args...)
		}
	}

	if a.log.Level() == logger.LevelDebug {
		a.log.Debug("Debug mode enabled")
		a.log.Debug("Color output: %v", a.cfg.UseColors)
		a.log.Debug("Directory: %s", a.cfg.RootDir)
		a.log.Debug("Output format: %s", a.cfg.Format)
		a.log.Debug("Ignore file name: %s", a.cfg.IgnoreFile)
		if len(a.cfg.Excludes) > 0 {
			a.log.Debug("Exclude patterns: %v", a.cfg.Excludes)
		}
		if a.cfg.Extensions != "" {
			a.log.Debug("Extensions filter: %s", a.cfg.Extensions)
		}
	}

	// --- Directory validation ---
	absRootDir, err := filepath.Abs(a.cfg.RootDir)
	if err != nil {
		a.log.Error("Invalid root directory path '%s': %v", a.cfg.RootDir, err)
		return err
	}

	dirInfo, err := os.Stat(absRootDir)
	if err != nil {
		if os.IsNotExist(err) {
			a.log.Error("'%s' is not a directory", a.cfg.RootDir)
		} else {
			a.log.Error("Could not access root directory '%s': %v", absRootDir, err)
		}
		return err
	}
	if !dirInfo.IsDir() {
		a.log.Error("'%s' is not a directory", a.cfg.RootDir)
		return fmt.Errorf("app: path %q is not a directory", absRootDir)
	}

	format, err := printer.ParseFormat(a.cfg.Format)
	if err != nil {
		a.log.Error("%v", err)
		return err
	}

	// --- Initialize ignore matcher ---
	// The .git exclusion always comes first so user patterns and discovered
	// rules are evaluated after it.
	excludes := append([]string{".git"}, a.cfg.Excludes...)
	if len(a.cfg.Excludes) > 0 {
		infoLog("Using additional exclude patterns: %v", a.cfg.Excludes)
	}

	matcher, err := ignore.New(absRootDir,
		ignore.WithLogger(a.log),
		ignore.WithExcludes(excludes),
		ignore.WithIgnoreFileName(a.cfg.IgnoreFile),
		ignore.WithDiscovery(!a.cfg.NoGitignore),
	)
	if err != nil {
		a.log.Error("Error initializing ignore rules: %v", err)
		return err
	}

	// --- Set up walk options ---
	walkOptions := []walker.Option{
		walker.WithLogger(a.log),
		walker.WithSkipHidden(a.cfg.SkipHidden),
	}
	if a.cfg.Extensions != "" {
		exts := strings.Split(a.cfg.Extensions, ",")
		walkOptions = append(walkOptions, walker.WithExtensions(exts))
		infoLog("Filtering enabled. Only including extensions: %s", a.cfg.Extensions)
	}
	if a.cfg.MaxFileSizeMB > 0 {
		walkOptions = append(walkOptions, walker.WithMaxFileSize(a.cfg.MaxFileSizeMB*1024*1024))
		infoLog("Ignoring files larger than %d MB.", a.cfg.MaxFileSizeMB)
	}

	// --- Start the directory walk ---
	infoLog("Scanning directory: %s", absRootDir)

	files, skippedItems, err := walker.Walk(absRootDir, matcher, walkOptions...)
	if err != nil {
		a.log.Error("Critical error during directory walk: %v", err)
		return err
	}

	// --- Serialize the kept files ---
	// Output is spooled so an aborted run never leaves a partial stream in
	// the destination.
	sp, err := spool.New(a.Output)
	if err != nil {
		a.log.Error("Error creating output buffer: %v", err)
		return err
	}
	defer sp.Close()

	p := printer.New().WithOutput(sp).WithFormat(format)
	if err := p.WriteHeader(); err != nil {
		a.log.Error("Error writing output header: %v", err)
		return err
	}

	binarySkipped := 0
	for _, relativePath := range files {
		absPath := filepath.Join(absRootDir, filepath.FromSlash(relativePath))

		isBinary, err := sniff.IsBinary(absPath)
		if err != nil {
			a.log.Error("Error reading file %s: %v", relativePath, err)
			skippedItems = append(skippedItems, walker.SkippedItem{
				Path:   relativePath,
				Reason: walker.ReasonSkippedReadError,
			})
			continue
		}
		if isBinary {
			a.log.Debug("Skipping binary file: %s", relativePath)
			skippedItems = append(skippedItems, walker.SkippedItem{
				Path:   relativePath,
				Reason: walker.ReasonSkippedBinary,
			})
			binarySkipped++
			continue
		}

		content, err := os.ReadFile(absPath)
		if err != nil {
			a.log.Error("Error reading file %s: %v", relativePath, err)
			skippedItems = append(skippedItems, walker.SkippedItem{
				Path:   relativePath,
				Reason: walker.ReasonSkippedReadError,
			})
			continue
		}
		if !utf8.Valid(content) {
			a.log.Error("Error reading file %s: content is not valid UTF-8", relativePath)
			skippedItems = append(skippedItems, walker.SkippedItem{
				Path:   relativePath,
				Reason: walker.ReasonSkippedReadError,
			})
			continue
		}

		if err := p.PrintFile(relativePath, content); err != nil {
			a.log.Error("Error writing file %s to output: %v", relativePath, err)
			return err
		}
	}

	if err := sp.Flush(); err != nil {
		a.log.Error("Error flushing output: %v", err)
		return err
	}

	// --- Show results summary ---
	duration := time.Since(startTime)
	summary.DisplayResults(a.log, p.Count(), binarySkipped, duration, a.cfg.Quiet)

	// --- Show Skipped Items (if requested) ---
	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.log, skippedItems, os.Stderr, a.cfg.Quiet)
	}

	return nil
}
