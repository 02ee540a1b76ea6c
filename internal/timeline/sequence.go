package timeline

import "github.com/videoculler/engine/internal/timecode"

// Placement is one clip's position on the output timeline, in frames.
// InFrames and OutFrames are the source trim points rounded
// independently; DurationFrames is their difference, not a rounding of
// the duration itself. The same duration advances the running offset
// and computes the clip's own end, so consecutive clips are exactly
// back to back regardless of per-clip rounding noise.
type Placement struct {
	InFrames       int
	OutFrames      int
	DurationFrames int
	StartFrames    int
	EndFrames      int
}

// Sequence computes back-to-back placements for the clips in timeline
// order under the given rate profile.
func Sequence(clips []Clip, p timecode.Profile) []Placement {
	placements := make([]Placement, len(clips))
	offset := 0
	for i, c := range clips {
		in := p.SecondsToFrames(c.InPoint)
		out := p.SecondsToFrames(c.OutPoint)
		d := out - in
		placements[i] = Placement{
			InFrames:       in,
			OutFrames:      out,
			DurationFrames: d,
			StartFrames:    offset,
			EndFrames:      offset + d,
		}
		offset += d
	}
	return placements
}

// TotalFrames is the summed duration of all placements, identical to
// the last placement's end.
func TotalFrames(placements []Placement) int {
	total := 0
	for _, pl := range placements {
		total += pl.DurationFrames
	}
	return total
}
