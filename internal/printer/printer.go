// Package printer serializes the kept files to the output stream, either as
// delimited plain text or as JSON Lines.
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Format selects the output serialization.
type Format int

const (
	// FormatText separates files with a per-run delimiter token.
	FormatText Format = iota
	// FormatJSONL emits one JSON object per file.
	FormatJSONL
)

// String returns the flag spelling of the format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSONL:
		return "jsonl"
	default:
		return "unknown"
	}
}

// ParseFormat converts a flag value into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText, nil
	case "jsonl":
		return FormatJSONL, nil
	default:
		return FormatText, fmt.Errorf("printer: unknown output format %q (supported: text, jsonl)", s)
	}
}

// NewDelimiter generates the per-run delimiter token: "### FILE_" followed
// by six hex characters and a trailing space. The randomness makes a
// collision with file content unlikely.
func NewDelimiter() string {
	id := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("### FILE_%s ", id[:6])
}

// FileRecord is one JSONL output line.
type FileRecord struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// Printer writes the serialized stream. It is not safe for concurrent use;
// the scan is single-threaded.
type Printer struct {
	output    io.Writer
	format    Format
	delimiter string
	count     int64
}

// New creates a Printer writing text format to stdout with a fresh
// delimiter.
func New() *Printer {
	return &Printer{
		output:    os.Stdout,
		format:    FormatText,
		delimiter: NewDelimiter(),
	}
}

// WithOutput sets the output destination.
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithFormat sets the serialization format.
func (p *Printer) WithFormat(f Format) *Printer {
	p.format = f
	return p
}

// Delimiter returns the delimiter token, including its trailing space.
func (p *Printer) Delimiter() string {
	return p.delimiter
}

// Count returns the number of files written so far.
func (p *Printer) Count() int64 {
	return p.count
}

// WriteHeader emits the commented header block describing the format.
func (p *Printer) WriteHeader() error {
	token := strings.TrimSpace(p.delimiter)

	var err error
	switch p.format {
	case FormatJSONL:
		_, err = fmt.Fprintf(p.output, `# Project Directory Contents (JSON Lines)
# Each following line is a standalone JSON object: {"path": <relative path>, "content": <file content>}
# Note: Binary files and patterns matching any .gitignore are excluded.
`)
	default:
		_, err = fmt.Fprintf(p.output, `# Project Directory Contents
# Format: Files are separated by a delimiter line starting with %q
# Each delimiter line is followed by the file path, then the file contents.
# Note: Binary files and patterns matching any .gitignore are excluded.

# DELIMITER=%s

`+"\n", token, token)
	}
	return err
}

// PrintFile writes one file record in the configured format. Content is
// written verbatim in text mode; in JSONL mode it becomes the "content"
// string of a single-line JSON object.
func (p *Printer) PrintFile(relativePath string, content []byte) error {
	switch p.format {
	case FormatJSONL:
		record := FileRecord{Path: relativePath, Content: string(content)}
		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("printer: marshal %s: %w", relativePath, err)
		}
		if _, err := p.output.Write(append(data, '\n')); err != nil {
			return err
		}
	default:
		if _, err := fmt.Fprintf(p.output, "%s%s\n", p.delimiter, relativePath); err != nil {
			return err
		}
		if _, err := p.output.Write(content); err != nil {
			return err
		}
		if _, err := io.WriteString(p.output, "\n"); err != nil {
			return err
		}
	}

	p.count++
	return nil
}
