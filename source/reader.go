// Copyright The CloudPanel API Authors
// SPDX-License-Identifier: Apache-2.0

package source // import "github.com/josephgodwinkimani/cloudpanel-api-sub001/source"

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/transform"
)

const (
	// DefaultWindow is the per-source tail window applied when neither the
	// descriptor nor the reader override it.
	DefaultWindow = 300

	defaultBufferSize = 16 * 1024
	maxLineSize       = 1024 * 1024
)

// Reader reads bounded tail windows from source files. It holds no per-file
// state; every call re-reads the file from the start.
type Reader struct {
	logger *zap.SugaredLogger

	// Window is the default tail window for descriptors that do not set one.
	Window int
}

// NewReader creates a reader with the default window.
func NewReader(logger *zap.SugaredLogger) *Reader {
	return &Reader{logger: logger, Window: DefaultWindow}
}

// Tail returns up to the window's worth of most recent non-empty lines from
// the descriptor's file, most recent first. A missing file is an expected
// condition and yields (nil, nil); any other failure is returned to the
// caller, which surfaces it as a synthetic entry without aborting other
// sources.
func (r *Reader) Tail(desc Descriptor) ([]string, error) {
	window := desc.Window
	if window <= 0 {
		window = r.Window
	}
	if window <= 0 {
		window = DefaultWindow
	}

	file, err := os.Open(desc.Path)
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.Debugw("source file not present yet", "source", desc.Name, "path", desc.Path)
			return nil, nil
		}
		return nil, fmt.Errorf("opening %s: %w", desc.Path, err)
	}
	defer file.Close()

	enc, err := LookupEncoding(desc.Encoding)
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(transform.NewReader(file, enc.NewDecoder()))
	scanner.Buffer(make([]byte, 0, defaultBufferSize), maxLineSize)

	lines := make([]string, 0, window)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		// Keep memory bounded on very large files.
		if len(lines) > 2*window {
			lines = append(lines[:0], lines[len(lines)-window:]...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", desc.Path, err)
	}

	if len(lines) > window {
		lines = lines[len(lines)-window:]
	}

	// Most recent first.
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return lines, nil
}
