package api

import (
	"time"

	"github.com/videoculler/engine/internal/export"
	"github.com/videoculler/engine/internal/history"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	UptimeS int64  `json:"uptime_s"`
}

type FormatsResponse struct {
	Formats []string `json:"formats"`
}

// ExportAccepted is the success body of POST /export: the rendered
// document's ledger id plus the commit summary.
type ExportAccepted struct {
	ExportID string `json:"export_id"`
	export.ExportResponse
}

type ExportRecordResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Format         string  `json:"format"`
	OutputPath     string  `json:"output_path"`
	Status         string  `json:"status"`
	Error          string  `json:"error,omitempty"`
	ClipCount      int     `json:"clip_count"`
	MarkerCount    int     `json:"marker_count"`
	FrameRate      float64 `json:"frame_rate"`
	DurationFrames int64   `json:"duration_frames"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

type ExportRecordsResponse struct {
	Exports []ExportRecordResponse `json:"exports"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func ExportRecordToResponse(rec *history.ExportRecord) ExportRecordResponse {
	return ExportRecordResponse{
		ID:             rec.ID,
		Title:          rec.Title,
		Format:         rec.Format,
		OutputPath:     rec.OutputPath,
		Status:         rec.Status,
		Error:          rec.Error,
		ClipCount:      rec.ClipCount,
		MarkerCount:    rec.MarkerCount,
		FrameRate:      rec.FrameRate,
		DurationFrames: rec.DurationFrames,
		CreatedAt:      rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      rec.UpdatedAt.Format(time.RFC3339),
	}
}
