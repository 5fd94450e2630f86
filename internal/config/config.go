package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Config holds all application configuration settings
type Config struct {
	// Directory settings
	RootDir string

	// Ignore settings
	Excludes    []string
	IgnoreFile  string
	NoGitignore bool

	// Filtering settings
	SkipHidden    bool
	Extensions    string
	MaxFileSizeMB int64

	// Output settings
	Format     string
	OutputFile string

	// Logging settings
	Debug       bool
	Quiet       bool
	LogLevel    string
	NoColor     bool
	UseColors   bool
	ShowSkipped bool

	// Version info
	ShowVersion bool
	Version     string
}

// stringList collects repeated flag values in order.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}

// Parse builds a Config from the given command-line arguments. Exactly one
// positional argument, the directory to scan, is required unless -version
// is set.
func Parse(args []string) (*Config, error) {
	c := &Config{
		Version: "1.0.0", // Update this when releasing new versions
	}

	fs := flag.NewFlagSet("c2c", flag.ContinueOnError)

	var excludes stringList
	fs.Var(&excludes, "e", "Additional exclude pattern (gitignore syntax, repeatable)")
	fs.Var(&excludes, "exclude", "Additional exclude pattern (gitignore syntax, repeatable)")
	fs.StringVar(&c.Format, "format", "text", "Output format: text or jsonl")
	fs.StringVar(&c.IgnoreFile, "ignore-file", ".gitignore", "Name of the ignore files to load rules from")
	fs.BoolVar(&c.NoGitignore, "no-gitignore", false, "Do not load ignore files found in the tree")
	fs.BoolVar(&c.SkipHidden, "skip-hidden", false, "Skip hidden files/directories (starting with '.')")
	fs.StringVar(&c.Extensions, "ext", "", "Only include files with these extensions (comma-separated, e.g., 'go,md,txt')")
	fs.Int64Var(&c.MaxFileSizeMB, "max-size", 0, "Max file size to emit in MB (0 = no limit)")
	fs.StringVar(&c.OutputFile, "output", "", "Output to file instead of stdout")
	fs.BoolVar(&c.Debug, "debug", false, "Enable debug output")
	fs.BoolVar(&c.Quiet, "quiet", false, "Suppress INFO messages (only show WARN, ERROR)")
	fs.StringVar(&c.LogLevel, "log-level", "INFO", "Set the logging level (DEBUG, INFO, WARN, ERROR)")
	fs.BoolVar(&c.NoColor, "no-color", false, "Disable color output")
	fs.BoolVar(&c.ShowSkipped, "show-skipped", false, "Show a list of skipped files/directories and reasons at the end")
	fs.BoolVar(&c.ShowVersion, "version", false, "Show version information")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	c.Excludes = excludes

	rest := fs.Args()
	switch {
	case len(rest) == 0:
		if !c.ShowVersion {
			return nil, errors.New("missing required directory argument")
		}
	case len(rest) > 1:
		return nil, fmt.Errorf("unexpected extra arguments: %v", rest[1:])
	default:
		c.RootDir = rest[0]
	}

	// Determine if colors should be used
	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd()) && c.OutputFile == ""

	return c, nil
}

// New creates a new Config from os.Args, exiting on usage errors.
func New() *Config {
	c, err := Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "c2c: %v\n", err)
		os.Exit(2)
	}
	return c
}
