// Package timeline defines the validated, immutable input model for an
// export: ordered trimmed clips, time-stamped markers, and global
// rate/resolution settings. Clip order defines concatenation order on
// the output timeline.
package timeline

import "fmt"

// Clip is one trimmed source range. In and out points are seconds,
// source-relative, with InPoint < OutPoint. Score and Category are
// pre-computed by the focus-quality analyzer; this engine only
// serializes them. Clips are read-only during export; per-format
// resource IDs belong to emitter-local maps, never to the Clip.
type Clip struct {
	Path     string   `json:"path"`
	InPoint  float64  `json:"in_point"`
	OutPoint float64  `json:"out_point"`
	Score    *float64 `json:"score,omitempty"`
	Category string   `json:"category,omitempty"`
}

// Marker is a named instant in source-relative seconds, the same time
// space as clip trim points. A marker belongs to every clip whose trim
// range contains it.
type Marker struct {
	Time float64 `json:"time"`
	Name string  `json:"name"`
	Note string  `json:"note,omitempty"`
}

// Settings carries the global frame rate and target resolution.
type Settings struct {
	FrameRate float64 `json:"framerate"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
}

// Timeline is the complete export input. It is built once and
// read-only for the duration of export; emitter runs are independent
// and side-effect-free on it.
type Timeline struct {
	Clips    []Clip
	Markers  []Marker
	Settings Settings
}

// Validate checks required fields. Errors identify the offending clip
// or marker by index so the caller can surface them directly.
func (t *Timeline) Validate() error {
	if t.Settings.FrameRate <= 0 {
		return fmt.Errorf("settings: framerate must be positive, got %v", t.Settings.FrameRate)
	}
	if t.Settings.Width <= 0 || t.Settings.Height <= 0 {
		return fmt.Errorf("settings: resolution must be positive, got %dx%d", t.Settings.Width, t.Settings.Height)
	}
	if len(t.Clips) == 0 {
		return fmt.Errorf("timeline has no clips")
	}
	for i, c := range t.Clips {
		if c.Path == "" {
			return fmt.Errorf("clip %d: path is required", i)
		}
		if c.InPoint < 0 {
			return fmt.Errorf("clip %d: in_point must not be negative, got %v", i, c.InPoint)
		}
		if c.InPoint >= c.OutPoint {
			return fmt.Errorf("clip %d: in_point must be less than out_point (%v >= %v)", i, c.InPoint, c.OutPoint)
		}
	}
	for i, m := range t.Markers {
		if m.Time < 0 {
			return fmt.Errorf("marker %d: time must not be negative, got %v", i, m.Time)
		}
	}
	return nil
}
