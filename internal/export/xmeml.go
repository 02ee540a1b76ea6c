package export

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/videoculler/engine/internal/timecode"
	"github.com/videoculler/engine/internal/timeline"
)

// Version tokens of the two XMEML variants.
const (
	XMEMLVersionResolve  = "4"
	XMEMLVersionPremiere = "5"
)

// xmemlDoctype is the fixed declaration+type-identifier preamble the
// tick-based variant's consuming application requires verbatim.
const xmemlDoctype = "<!DOCTYPE xmeml>\n"

// ResolveXMLExporter renders the version-4 XMEML variant: frame-unit
// times, a project wrapper, and a single video track. Score and
// category are not representable in this variant and are dropped.
type ResolveXMLExporter struct {
	logger *slog.Logger
}

func NewResolveXMLExporter(logger *slog.Logger) *ResolveXMLExporter {
	return &ResolveXMLExporter{logger: logger}
}

func (e *ResolveXMLExporter) Format() string  { return "resolve" }
func (e *ResolveXMLExporter) FileExt() string { return ".xml" }

func (e *ResolveXMLExporter) Render(tl *timeline.Timeline, title string) ([]byte, error) {
	p := timecode.NewProfile(tl.Settings.FrameRate)
	rate := xmemlRate(p)

	placements := timeline.Sequence(tl.Clips, p)
	track := XMEMLTrack{ClipItems: make([]XMEMLClipItem, len(tl.Clips))}
	for i, clip := range tl.Clips {
		pl := placements[i]
		item := XMEMLClipItem{
			ID:       fmt.Sprintf("clipitem-%d", i+1),
			Name:     stem(clip.Path),
			Duration: int64(pl.DurationFrames),
			Rate:     rate,
			Start:    int64(pl.StartFrames),
			End:      int64(pl.EndFrames),
			In:       int64(pl.InFrames),
			Out:      int64(pl.OutFrames),
			File: &XMEMLFile{
				ID:      fmt.Sprintf("file-%d", i+1),
				Name:    filepath.Base(clip.Path),
				PathURL: fileURL(clip.Path),
			},
		}

		for _, m := range timeline.ProjectMarkers(clip, tl.Markers) {
			rel := int64(p.SecondsToFrames(m.RelativeTime))
			item.Markers = append(item.Markers, XMEMLMarker{
				Name:    m.DisplayName(),
				Comment: m.Note,
				In:      rel,
				Out:     rel,
			})
		}

		track.ClipItems[i] = item
	}

	doc := XMEML{
		Version: XMEMLVersionResolve,
		Project: &XMEMLProject{
			Name: exportTitle(title),
			Sequence: XMEMLSequence{
				Name:     exportTitle(title),
				Duration: int64(timeline.TotalFrames(placements)),
				Rate:     rate,
				Media: XMEMLMedia{
					Video: &XMEMLVideo{
						Format: &XMEMLVideoFormat{
							SampleCharacteristics: sampleCharacteristics(rate, tl.Settings),
						},
						Track: track,
					},
				},
			},
		},
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), append(out, '\n')...), nil
}

// PremiereXMLExporter renders the version-5 XMEML variant: tick-unit
// times, a mirrored silent audio track, and the fixed doctype
// preamble. Category survives as the label2 field; score is dropped
// by this variant.
type PremiereXMLExporter struct {
	logger *slog.Logger
}

func NewPremiereXMLExporter(logger *slog.Logger) *PremiereXMLExporter {
	return &PremiereXMLExporter{logger: logger}
}

func (e *PremiereXMLExporter) Format() string  { return "premiere" }
func (e *PremiereXMLExporter) FileExt() string { return ".xml" }

func (e *PremiereXMLExporter) Render(tl *timeline.Timeline, title string) ([]byte, error) {
	p := timecode.NewProfile(tl.Settings.FrameRate)
	rate := XMEMLRate{Timebase: p.TickTimebase(), NTSC: ntscToken(p.NTSC)}
	perFrame := p.TicksPerFrame()

	placements := timeline.Sequence(tl.Clips, p)
	videoTrack := XMEMLTrack{ClipItems: make([]XMEMLClipItem, len(tl.Clips))}
	audioTrack := XMEMLTrack{ClipItems: make([]XMEMLClipItem, len(tl.Clips))}

	for i, clip := range tl.Clips {
		pl := placements[i]
		inTicks := int64(pl.InFrames) * perFrame
		outTicks := int64(pl.OutFrames) * perFrame
		startTicks := int64(pl.StartFrames) * perFrame
		endTicks := int64(pl.EndFrames) * perFrame
		durationTicks := int64(pl.DurationFrames) * perFrame

		item := XMEMLClipItem{
			ID:       fmt.Sprintf("clipitem-%d", i+1),
			Name:     stem(clip.Path),
			Duration: durationTicks,
			Rate:     rate,
			Start:    startTicks,
			End:      endTicks,
			In:       inTicks,
			Out:      outTicks,
			File: &XMEMLFile{
				ID:      fmt.Sprintf("file-%d", i+1),
				Name:    filepath.Base(clip.Path),
				PathURL: fileURL(clip.Path),
				Rate:    &rate,
				Media: &XMEMLFileMedia{
					Video: XMEMLFileVideo{
						SampleCharacteristics: sampleCharacteristics(rate, tl.Settings),
					},
				},
			},
		}

		// Markers carry the absolute source time in ticks, with a
		// one-tick span.
		for _, m := range timeline.ProjectMarkers(clip, tl.Markers) {
			abs := p.SecondsToTicks(m.Time)
			item.Markers = append(item.Markers, XMEMLMarker{
				Name:    m.DisplayName(),
				Comment: m.Note,
				In:      abs,
				Out:     abs + 1,
			})
		}

		if clip.Score != nil || clip.Category != "" {
			item.Labels = &XMEMLLabels{Label2: clip.Category}
		}

		videoTrack.ClipItems[i] = item

		// The mirrored audio item is structurally required by the
		// consuming application; it repeats the video timing and
		// references the file by id only.
		audioTrack.ClipItems[i] = XMEMLClipItem{
			ID:       fmt.Sprintf("audioclip-%d", i+1),
			Name:     stem(clip.Path),
			Duration: durationTicks,
			Rate:     rate,
			Start:    startTicks,
			End:      endTicks,
			In:       inTicks,
			Out:      outTicks,
			File:     &XMEMLFile{ID: fmt.Sprintf("file-%d", i+1)},
		}
	}

	displayFormat := "NDF"
	if p.NTSC {
		displayFormat = "DF"
	}

	doc := XMEML{
		Version: XMEMLVersionPremiere,
		Sequence: &XMEMLSequence{
			Name:     exportTitle(title),
			Duration: int64(timeline.TotalFrames(placements)) * perFrame,
			Rate:     rate,
			Media: XMEMLMedia{
				Video: &XMEMLVideo{Track: videoTrack},
				Audio: &XMEMLAudio{Track: audioTrack},
			},
			Timecode: &XMEMLTimecode{
				Rate:          rate,
				String:        "00:00:00:00",
				Frame:         0,
				DisplayFormat: displayFormat,
			},
		},
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	content := xml.Header + xmemlDoctype + string(out) + "\n"
	return []byte(content), nil
}

func xmemlRate(p timecode.Profile) XMEMLRate {
	return XMEMLRate{Timebase: p.Timebase, NTSC: ntscToken(p.NTSC)}
}

func ntscToken(ntsc bool) string {
	if ntsc {
		return "TRUE"
	}
	return "FALSE"
}

func sampleCharacteristics(rate XMEMLRate, s timeline.Settings) XMEMLSampleCharacteristics {
	return XMEMLSampleCharacteristics{Rate: rate, Width: s.Width, Height: s.Height}
}
