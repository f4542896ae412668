// =============================================================================
// Receipts Report - File Manager Utility
// =============================================================================
//
// This module provides file management utilities, including:
//   - Existence checks for input files
//   - Directory listing for the data folder
//   - Atomic replacement of output files
//
// ATOMIC WRITES:
//   Output is written to a hidden temporary file in the destination
//   directory, flushed to disk, closed and then renamed over the target.
//   Readers see either the previous file (or none) or the complete new
//   one. The temporary file is removed on every failure path.
//
// =============================================================================

package utils

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// =============================================================================
// FILE DISCOVERY
// =============================================================================

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}

// ListFiles returns the names of regular files in dir, sorted.
//
// PARAMETERS:
//   - dir: The directory to scan.
//   - extension: Keep only names with this extension (case-insensitive).
//     If empty, every file is returned.
//
// RETURNS:
//   - A slice of file names (not paths). An empty directory yields an empty slice.
//   - An error if the directory cannot be read (including when it does not exist).
func ListFiles(dir, extension string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	files := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if extension == "" || strings.EqualFold(filepath.Ext(name), extension) {
			files = append(files, name)
		}
	}

	sort.Strings(files)
	return files, nil
}

// =============================================================================
// ATOMIC WRITES
// =============================================================================

// WriteFileAtomic writes a file through a temporary sibling and renames it
// into place.
//
// PARAMETERS:
//   - path: The destination path. Its directory must exist.
//   - write: Writes the full file content to w.
//
// RETURNS:
//   - An error from write, from flushing, or from the rename. On error the
//     destination is untouched and no temporary file is left behind.
func WriteFileAtomic(path string, write func(w io.Writer) error) (err error) {
	tmpPath := TempPath(path)

	file, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	defer func() {
		if err != nil {
			file.Close()
			os.Remove(tmpPath)
		}
	}()

	if err = write(file); err != nil {
		return err
	}
	if err = file.Sync(); err != nil {
		return fmt.Errorf("failed to flush file: %w", err)
	}
	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move file into place: %w", err)
	}

	return nil
}

// TempPath returns a unique hidden sibling path for path.
// The extension is kept so that tools keyed on it still recognise the file.
func TempPath(path string) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)

	return filepath.Join(dir, fmt.Sprintf(".%s-%s.tmp%s", name, uuid.New().String(), ext))
}
