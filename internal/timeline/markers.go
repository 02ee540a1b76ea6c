package timeline

// DefaultMarkerName is used when a marker has no name.
const DefaultMarkerName = "Marker"

// ProjectedMarker is a marker placed onto one clip. RelativeTime is
// seconds from the clip's in point; the consuming emitter converts it
// to its own unit.
type ProjectedMarker struct {
	Marker
	RelativeTime float64
}

// DisplayName returns the marker name or the default when empty.
func (m ProjectedMarker) DisplayName() string {
	if m.Name == "" {
		return DefaultMarkerName
	}
	return m.Name
}

// ProjectMarkers returns the markers that fall inside the clip's trim
// range. Bounds are inclusive and compared in source-relative seconds,
// independent of the clip's position on the output timeline. A marker
// inside the overlapping trim ranges of several clips attaches to each
// of them.
func ProjectMarkers(clip Clip, markers []Marker) []ProjectedMarker {
	var out []ProjectedMarker
	for _, m := range markers {
		if clip.InPoint <= m.Time && m.Time <= clip.OutPoint {
			out = append(out, ProjectedMarker{
				Marker:       m,
				RelativeTime: m.Time - clip.InPoint,
			})
		}
	}
	return out
}
