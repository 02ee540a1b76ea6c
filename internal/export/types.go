package export

import (
	"fmt"

	"github.com/videoculler/engine/internal/timeline"
)

// ExportRequest is the mapping-shaped export input: ordered clips,
// markers, and global settings, plus the target format and
// destination.
type ExportRequest struct {
	Title     string        `json:"title"`
	Format    string        `json:"format"`
	OutputDir string        `json:"output_dir"`
	Clips     []ClipInput   `json:"clips"`
	Markers   []MarkerInput `json:"markers"`
	Settings  SettingsInput `json:"settings"`
}

type ClipInput struct {
	Path     string   `json:"path"`
	InPoint  float64  `json:"in_point"`
	OutPoint float64  `json:"out_point"`
	Score    *float64 `json:"score,omitempty"`
	Category string   `json:"category,omitempty"`
}

type MarkerInput struct {
	Time float64 `json:"time"`
	Name string  `json:"name"`
	Note string  `json:"note,omitempty"`
}

type SettingsInput struct {
	FrameRate  float64 `json:"framerate"`
	Resolution []int   `json:"resolution"`
}

// BuildTimeline converts the request into a validated timeline. The
// returned error identifies the offending clip or marker index.
func (r *ExportRequest) BuildTimeline() (*timeline.Timeline, error) {
	if len(r.Settings.Resolution) != 2 {
		return nil, fmt.Errorf("settings: resolution must be [width, height], got %v", r.Settings.Resolution)
	}

	tl := &timeline.Timeline{
		Clips:   make([]timeline.Clip, len(r.Clips)),
		Markers: make([]timeline.Marker, len(r.Markers)),
		Settings: timeline.Settings{
			FrameRate: r.Settings.FrameRate,
			Width:     r.Settings.Resolution[0],
			Height:    r.Settings.Resolution[1],
		},
	}
	for i, c := range r.Clips {
		tl.Clips[i] = timeline.Clip{
			Path:     c.Path,
			InPoint:  c.InPoint,
			OutPoint: c.OutPoint,
			Score:    c.Score,
			Category: c.Category,
		}
	}
	for i, m := range r.Markers {
		tl.Markers[i] = timeline.Marker{Time: m.Time, Name: m.Name, Note: m.Note}
	}

	if err := tl.Validate(); err != nil {
		return nil, err
	}
	return tl, nil
}

// ExportResponse reports one committed export.
type ExportResponse struct {
	Status      string `json:"status"`
	Format      string `json:"format"`
	OutputPath  string `json:"output_path"`
	ClipCount   int    `json:"clip_count"`
	MarkerCount int    `json:"marker_count"`
}
