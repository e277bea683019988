// Package output saves rendered views to disk.
package output

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/quantmind-br/siteview/internal/utils"
)

// ErrFileExists is returned when the target exists and Force is off
var ErrFileExists = errors.New("output file already exists")

// Writer saves rendered output to a file
type Writer struct {
	path  string
	force bool
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	// Path is a file, or a directory when it ends with a separator or
	// already exists as one. Directories get a file named after the site.
	Path  string
	Force bool
}

// NewWriter creates a new output writer
func NewWriter(opts WriterOptions) *Writer {
	return &Writer{
		path:  utils.ExpandPath(opts.Path),
		force: opts.Force,
	}
}

// Target returns the file the writer would create for a site
func (w *Writer) Target(canonicalURL, ext string) string {
	if w.isDir() {
		return filepath.Join(w.path, utils.SiteFilename(canonicalURL, ext))
	}
	return w.path
}

// Write renders into memory and then writes the file, so a failed render
// leaves nothing on disk. It returns the written path.
func (w *Writer) Write(canonicalURL, ext string, render func(io.Writer) error) (string, error) {
	path := w.Target(canonicalURL, ext)

	if !w.force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%w: %s (use --force to overwrite)", ErrFileExists, path)
		}
	}

	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return "", err
	}

	if err := utils.EnsureDir(path); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write output: %w", err)
	}
	return path, nil
}

func (w *Writer) isDir() bool {
	if strings.HasSuffix(w.path, "/") || strings.HasSuffix(w.path, string(filepath.Separator)) {
		return true
	}
	info, err := os.Stat(w.path)
	return err == nil && info.IsDir()
}

// Extension returns the file extension for an output format
func Extension(format string) string {
	switch format {
	case "json":
		return "json"
	case "yaml":
		return "yaml"
	default:
		return "txt"
	}
}
