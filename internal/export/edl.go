package export

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/videoculler/engine/internal/timecode"
	"github.com/videoculler/engine/internal/timeline"
)

// EDLExporter renders the CMX-3600 Edit Decision List. Events carry
// source and record timecodes; score, category, source path, and
// markers travel as comment lines under the `*` prefix, the only
// metadata channel the format has.
type EDLExporter struct {
	logger *slog.Logger
}

func NewEDLExporter(logger *slog.Logger) *EDLExporter {
	return &EDLExporter{logger: logger}
}

func (e *EDLExporter) Format() string  { return "edl" }
func (e *EDLExporter) FileExt() string { return ".edl" }

func (e *EDLExporter) Render(tl *timeline.Timeline, title string) ([]byte, error) {
	p := timecode.NewProfile(tl.Settings.FrameRate)

	lines := []string{"TITLE: " + exportTitle(title)}
	if p.DropFrame {
		lines = append(lines, "FCM: DROP FRAME")
	} else {
		lines = append(lines, "FCM: NON-DROP FRAME")
	}
	lines = append(lines, "")

	placements := timeline.Sequence(tl.Clips, p)
	for i, clip := range tl.Clips {
		pl := placements[i]

		lines = append(lines, fmt.Sprintf("%03d  %-8s V     C        %s %s %s %s",
			i+1,
			reelName(clip.Path),
			p.Timecode(pl.InFrames),
			p.Timecode(pl.OutFrames),
			p.Timecode(pl.StartFrames),
			p.Timecode(pl.EndFrames),
		))

		lines = append(lines, "* FROM CLIP NAME: "+filepath.Base(clip.Path))
		if clip.Score != nil {
			lines = append(lines, "* VIDEO CULLER SCORE: "+formatScore(*clip.Score))
		}
		if clip.Category != "" {
			lines = append(lines, "* CATEGORY: "+clip.Category)
		}
		lines = append(lines, "* SOURCE FILE: "+absPath(clip.Path))

		// Marker timecodes are absolute record positions: the clip's
		// record start plus the clip-relative offset.
		for _, m := range timeline.ProjectMarkers(clip, tl.Markers) {
			markerFrames := pl.StartFrames + p.SecondsToFrames(m.RelativeTime)
			lines = append(lines, fmt.Sprintf("* MARKER: %s AT %s", m.DisplayName(), p.Timecode(markerFrames)))
		}

		lines = append(lines, "")
	}

	return []byte(strings.Join(lines, "\n")), nil
}

// reelName derives the 8-character reel field from the media stem,
// truncated and left-justified per the CMX column layout. Truncation
// counts runes so a multibyte stem never leaves a broken character.
func reelName(path string) string {
	r := []rune(stem(path))
	if len(r) > 8 {
		r = r[:8]
	}
	return string(r)
}
