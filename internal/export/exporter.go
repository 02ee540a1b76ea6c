// Package export renders a validated timeline into the professional
// interchange formats: CMX-3600 EDL, FCPXML 1.10, and XMEML versions
// 4 (frame-based) and 5 (tick-based). Each exporter is a pure function
// from timeline to document bytes; the only I/O is the final atomic
// commit of the rendered file.
package export

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/videoculler/engine/internal/timeline"
)

// DefaultTitle names the exported timeline when the caller gives none.
const DefaultTitle = "Video Culler Timeline"

// Exporter renders one target format. Render must not perform storage
// I/O and must not mutate the timeline; derived per-format identifiers
// stay local to the render call.
type Exporter interface {
	Format() string
	FileExt() string
	Render(tl *timeline.Timeline, title string) ([]byte, error)
}

// NewRegistry returns the supported exporters keyed by format name.
func NewRegistry(logger *slog.Logger) map[string]Exporter {
	exporters := []Exporter{
		NewEDLExporter(logger),
		NewFCPXMLExporter(logger),
		NewResolveXMLExporter(logger),
		NewPremiereXMLExporter(logger),
	}
	reg := make(map[string]Exporter, len(exporters))
	for _, e := range exporters {
		reg[e.Format()] = e
	}
	return reg
}

// FormatNames lists the registry's format names in stable order.
func FormatNames(reg map[string]Exporter) []string {
	names := make([]string, 0, len(reg))
	for name := range reg {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Export renders the timeline and commits it to outputPath as a single
// atomic write. If rendering fails, nothing is written.
func Export(exp Exporter, tl *timeline.Timeline, title, outputPath string) error {
	data, err := exp.Render(tl, title)
	if err != nil {
		return fmt.Errorf("render %s: %w", exp.Format(), err)
	}
	if err := WriteFileAtomic(outputPath, data); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}
	return nil
}

// stem returns the final path segment without its extension, the clip
// name every format derives from the media reference.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// fileURL renders a media path as a file:// URL, absolutizing relative
// paths against the working directory.
func fileURL(path string) string {
	return "file://" + filepath.ToSlash(absPath(path))
}

func absPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// formatScore renders a score without trailing zeros, so integral
// scores print as integers.
func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

func exportTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return DefaultTitle
	}
	return title
}
