package export

import (
	"encoding/xml"
	"fmt"
	"log/slog"

	"github.com/videoculler/engine/internal/timecode"
	"github.com/videoculler/engine/internal/timeline"
)

// FCPXMLVersion is the interchange schema version token.
const FCPXMLVersion = "1.10"

// metadata keys for the analyzer-supplied fields.
const (
	metadataKeyScore    = "com.videoCuller.score"
	metadataKeyCategory = "com.videoCuller.category"
)

// FCPXMLExporter renders the asset/spine-based FCPXML 1.10 schema.
// Time values are exact rational tokens; every clip gets a format and
// an asset resource, referenced by emitter-local IDs.
type FCPXMLExporter struct {
	logger *slog.Logger
}

func NewFCPXMLExporter(logger *slog.Logger) *FCPXMLExporter {
	return &FCPXMLExporter{logger: logger}
}

func (e *FCPXMLExporter) Format() string  { return "fcpxml" }
func (e *FCPXMLExporter) FileExt() string { return ".fcpxml" }

func (e *FCPXMLExporter) Render(tl *timeline.Timeline, title string) ([]byte, error) {
	p := timecode.NewProfile(tl.Settings.FrameRate)
	frameDuration := p.FrameDuration(e.logger)
	tcFormat := fcpTCFormat(tl.Settings.FrameRate)

	// Resource IDs are scratch state of this render: formats are
	// r1..rN, assets rN+100 style per clip index, never written back
	// onto the shared clips.
	formatID := func(i int) string { return fmt.Sprintf("r%d", i+1) }
	assetID := func(i int) string { return fmt.Sprintf("r%d", i+100) }

	resources := FCPResources{
		Formats: make([]FCPFormat, len(tl.Clips)),
		Assets:  make([]FCPAsset, len(tl.Clips)),
	}
	for i, clip := range tl.Clips {
		resources.Formats[i] = FCPFormat{
			ID:            formatID(i),
			Name:          fmt.Sprintf("%dx%dp", tl.Settings.Width, tl.Settings.Height),
			FrameDuration: frameDuration,
			Width:         fmt.Sprintf("%d", tl.Settings.Width),
			Height:        fmt.Sprintf("%d", tl.Settings.Height),
		}
		resources.Assets[i] = FCPAsset{
			ID:       assetID(i),
			Name:     stem(clip.Path),
			Src:      fileURL(clip.Path),
			Start:    "0s",
			HasVideo: "1",
			HasAudio: "1",
			Format:   formatID(i),
			Duration: fmt.Sprintf("%ds", p.SecondsToFrames(clip.OutPoint)),
		}
	}

	placements := timeline.Sequence(tl.Clips, p)
	spine := FCPSpine{AssetClips: make([]FCPAssetClip, len(tl.Clips))}
	for i, clip := range tl.Clips {
		pl := placements[i]
		ac := FCPAssetClip{
			Name:     stem(clip.Path),
			Ref:      assetID(i),
			Offset:   p.Rational(pl.StartFrames),
			Duration: p.Rational(pl.DurationFrames),
			Start:    p.Rational(pl.InFrames),
			TCFormat: tcFormat,
		}

		if clip.Score != nil || clip.Category != "" {
			md := &FCPMetadata{}
			if clip.Score != nil {
				md.Entries = append(md.Entries, FCPMetadataEntry{Key: metadataKeyScore, Value: formatScore(*clip.Score)})
			}
			if clip.Category != "" {
				md.Entries = append(md.Entries, FCPMetadataEntry{Key: metadataKeyCategory, Value: clip.Category})
			}
			ac.Metadata = md
		}

		for _, m := range timeline.ProjectMarkers(clip, tl.Markers) {
			ac.Markers = append(ac.Markers, FCPMarker{
				Start:     p.Rational(p.SecondsToFrames(m.RelativeTime)),
				Value:     m.DisplayName(),
				Completed: "0",
				Note:      m.Note,
			})
		}

		spine.AssetClips[i] = ac
	}

	sequenceFormat := "r1"
	if len(tl.Clips) > 0 {
		sequenceFormat = formatID(0)
	}

	doc := FCPXML{
		Version:   FCPXMLVersion,
		Resources: resources,
		Library: FCPLibrary{
			Events: []FCPEvent{{
				Name: "Video Culler Export",
				Projects: []FCPProject{{
					Name: exportTitle(title),
					Sequences: []FCPSequence{{
						Format:   sequenceFormat,
						Duration: p.Rational(timeline.TotalFrames(placements)),
						TCStart:  "0s",
						TCFormat: tcFormat,
						Spine:    spine,
					}},
				}},
			}},
		},
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), append(out, '\n')...), nil
}

// fcpTCFormat is the spine schema's own timecode-format predicate:
// integer rates 24, 30, and 60 are NDF, everything else DF.
func fcpTCFormat(fps float64) string {
	if fps == 24 || fps == 30 || fps == 60 {
		return "NDF"
	}
	return "DF"
}
