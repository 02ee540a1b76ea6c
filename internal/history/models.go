package history

import (
	"crypto/rand"
	"fmt"
	"time"
)

const (
	ExportStatusRunning   = "running"
	ExportStatusCompleted = "completed"
	ExportStatusFailed    = "failed"
)

// ExportRecord is one row of the export ledger: what was requested,
// where the document went, and how the attempt ended.
type ExportRecord struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Format         string    `json:"format"`
	OutputPath     string    `json:"output_path"`
	Status         string    `json:"status"`
	Error          string    `json:"error,omitempty"`
	ClipCount      int       `json:"clip_count"`
	MarkerCount    int       `json:"marker_count"`
	FrameRate      float64   `json:"frame_rate"`
	DurationFrames int64     `json:"duration_frames"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ConfigEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func NewID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:])
}
