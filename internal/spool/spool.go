// Package spool buffers serialized output in a temporary file so the real
// destination only receives a complete run. An aborted run leaves the
// destination untouched and the temp file is removed either way.
package spool

import (
	"fmt"
	"io"
	"os"
)

// Buffer accumulates writes in a temp file until Flush copies them to the
// destination.
type Buffer struct {
	dest io.Writer
	tmp  *os.File
}

// New creates a Buffer spooling to a fresh temp file.
func New(dest io.Writer) (*Buffer, error) {
	tmp, err := os.CreateTemp("", "c2c-*")
	if err != nil {
		return nil, fmt.Errorf("spool: create temp file: %w", err)
	}
	return &Buffer{dest: dest, tmp: tmp}, nil
}

// Write appends to the spool file.
func (b *Buffer) Write(p []byte) (int, error) {
	return b.tmp.Write(p)
}

// Flush copies the spooled bytes to the destination. Call it once, after
// all writes succeeded.
func (b *Buffer) Flush() error {
	if _, err := b.tmp.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("spool: rewind temp file: %w", err)
	}
	if _, err := io.Copy(b.dest, b.tmp); err != nil {
		return fmt.Errorf("spool: copy to destination: %w", err)
	}
	return nil
}

// Close removes the spool file. Safe to call whether or not Flush ran.
func (b *Buffer) Close() error {
	if b.tmp == nil {
		return nil
	}
	name := b.tmp.Name()
	err := b.tmp.Close()
	if removeErr := os.Remove(name); removeErr != nil && !os.IsNotExist(removeErr) && err == nil {
		err = removeErr
	}
	b.tmp = nil
	return err
}
