// Package validation provides input validation for the CLI: checks on
// the annotation input, the mapping file and the output destination that
// run before any parsing starts.
package validation

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// MaxInputSize caps annotation and mapping files (64 MB). The parser
// holds the whole file in memory; anything bigger is almost certainly
// not a curated annotation file.
const MaxInputSize = 64 << 20

// Common validation errors.
var (
	ErrNotRegularFile = errors.New("not a regular file")
	ErrFileTooLarge   = errors.New("file too large")
	ErrOutputExists   = errors.New("output already exists")
	ErrEmptyPath      = errors.New("path cannot be empty")
)

// ValidateInputFile checks that path names an existing regular file of
// acceptable size.
func ValidateInputFile(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", path, ErrNotRegularFile)
	}
	if info.Size() > MaxInputSize {
		return fmt.Errorf("%s (%d bytes): %w", path, info.Size(), ErrFileTooLarge)
	}
	return nil
}

// ValidateOutputPath checks that path does not already exist and that
// its parent directory does. Refusing to overwrite keeps a botched run
// from destroying a previous result.
func ValidateOutputPath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s: %w", path, ErrOutputExists)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("output directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output directory %s is not a directory", dir)
	}
	return nil
}
