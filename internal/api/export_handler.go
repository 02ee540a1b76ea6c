package api

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/videoculler/engine/internal/export"
	"github.com/videoculler/engine/internal/history"
	"github.com/videoculler/engine/internal/timecode"
	"github.com/videoculler/engine/internal/timeline"
)

func exportHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req export.ExportRequest
		dec := json.NewDecoder(r.Body)
		if err := dec.Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
			return
		}

		exp, ok := cfg.Registry[strings.ToLower(req.Format)]
		if !ok {
			WriteError(w, http.StatusBadRequest,
				"format must be one of: "+strings.Join(export.FormatNames(cfg.Registry), ", "),
				"BAD_REQUEST")
			return
		}

		outputDir := req.OutputDir
		if outputDir == "" {
			outputDir = cfg.ExportDir
		}
		if err := export.ValidateOutputDir(outputDir); err != nil {
			WriteError(w, http.StatusBadRequest, err.Error(), "BAD_REQUEST")
			return
		}

		tl, err := req.BuildTimeline()
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error(), "BAD_REQUEST")
			return
		}

		name := export.SanitizeName(req.Title, 120)
		if name == "" {
			name = export.SanitizeName(export.DefaultTitle, 120)
		}
		outputPath := filepath.Join(outputDir, name+exp.FileExt())

		profile := timecode.NewProfile(tl.Settings.FrameRate)
		totalFrames := timeline.TotalFrames(timeline.Sequence(tl.Clips, profile))

		now := time.Now().UTC()
		rec := &history.ExportRecord{
			ID:             history.NewID(),
			Title:          req.Title,
			Format:         exp.Format(),
			OutputPath:     outputPath,
			Status:         history.ExportStatusRunning,
			ClipCount:      len(tl.Clips),
			MarkerCount:    len(tl.Markers),
			FrameRate:      tl.Settings.FrameRate,
			DurationFrames: int64(totalFrames),
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := cfg.Repository.CreateExport(r.Context(), rec); err != nil {
			cfg.Logger.Error("failed to record export", "error", err)
			WriteError(w, http.StatusInternalServerError, "failed to record export", "INTERNAL_ERROR")
			return
		}

		if err := export.Export(exp, tl, req.Title, outputPath); err != nil {
			cfg.Logger.Error("export failed", "format", exp.Format(), "error", err, "export_id", rec.ID)
			if uerr := cfg.Repository.UpdateExportStatus(r.Context(), rec.ID, history.ExportStatusFailed, err.Error()); uerr != nil {
				cfg.Logger.Error("failed to update export status", "error", uerr, "export_id", rec.ID)
			}
			WriteError(w, http.StatusInternalServerError, "failed to write export file", "INTERNAL_ERROR")
			return
		}

		if err := cfg.Repository.UpdateExportStatus(r.Context(), rec.ID, history.ExportStatusCompleted, ""); err != nil {
			cfg.Logger.Error("failed to update export status", "error", err, "export_id", rec.ID)
		}

		cfg.Logger.Info("export completed",
			"format", exp.Format(),
			"output_path", outputPath,
			"clips", len(tl.Clips),
			"frames", totalFrames,
			"export_id", rec.ID,
		)

		WriteJSON(w, http.StatusOK, ExportAccepted{
			ExportID: rec.ID,
			ExportResponse: export.ExportResponse{
				Status:      "ok",
				Format:      exp.Format(),
				OutputPath:  outputPath,
				ClipCount:   len(tl.Clips),
				MarkerCount: len(tl.Markers),
			},
		})
	}
}
