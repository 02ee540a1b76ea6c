// Package timecode derives per-frame-rate conversion policy for the
// export formats. A Profile is a pure function of the frame rate: it
// carries the integer timebase used for frame arithmetic plus the
// drop-frame and NTSC predicates the individual formats consume.
//
// Frame counts are the working unit. Seconds are rounded into frames
// exactly once; a value already in the frame domain is never rounded
// again, so rounding error cannot compound across clips.
package timecode

import (
	"fmt"
	"log/slog"
	"math"
)

// TicksPerSecond is the fixed tick resolution of the version-5 XMEML
// schema, independent of frame rate. Every documented timebase divides
// it evenly.
const TicksPerSecond int64 = 254016000000

// frameDurations maps documented broadcast/cinema rates to the exact
// rational frame-duration token used by the FCPXML format resource.
var frameDurations = map[float64]string{
	23.976: "24000/1001s",
	24:     "24s",
	25:     "25s",
	29.97:  "30000/1001s",
	30:     "30s",
	50:     "50s",
	59.94:  "60000/1001s",
	60:     "60s",
}

// tickTimebases maps documented rates to the integer timebase of the
// tick-based XMEML variant.
var tickTimebases = map[float64]int{
	23.976: 24,
	24:     24,
	25:     25,
	29.97:  30,
	30:     30,
	50:     50,
	59.94:  60,
	60:     60,
}

// Profile holds the derived time policy for one frame rate.
type Profile struct {
	FPS      float64
	Timebase int

	// DropFrame is the timecode-string predicate: only 29.97 and
	// 59.94 use the semicolon frame separator.
	DropFrame bool

	// NTSC is the XMEML rate-block predicate. It covers 23.976 as
	// well, which DropFrame does not.
	NTSC bool
}

// NewProfile derives the conversion policy for a frame rate. The rate
// must be positive; that is enforced by timeline validation before any
// profile is built. Sub-integer rates clamp to a timebase of 1 so the
// frame-domain arithmetic stays well defined.
func NewProfile(fps float64) Profile {
	tb := int(math.Round(fps))
	if tb < 1 {
		tb = 1
	}
	return Profile{
		FPS:       fps,
		Timebase:  tb,
		DropFrame: rateIs(fps, 29.97) || rateIs(fps, 59.94),
		NTSC:      rateIs(fps, 23.976) || rateIs(fps, 29.97) || rateIs(fps, 59.94),
	}
}

func rateIs(fps, want float64) bool {
	return math.Abs(fps-want) < 0.01
}

// SecondsToFrames converts a source-relative time in seconds to a
// frame count. This is the only place seconds are rounded.
func (p Profile) SecondsToFrames(seconds float64) int {
	return int(math.Round(seconds * p.FPS))
}

// FramesToSeconds is the exact inverse used for display conversion; the
// result is never re-rounded.
func (p Profile) FramesToSeconds(frames int) float64 {
	return float64(frames) / p.FPS
}

// Timecode renders a frame count as HH:MM:SS:FF, decomposing in the
// integer frame domain over the timebase. Drop-frame rates use a
// semicolon between seconds and frames.
func (p Profile) Timecode(frames int) string {
	tb := p.Timebase
	ff := frames % tb
	totalSeconds := frames / tb
	ss := totalSeconds % 60
	totalMinutes := totalSeconds / 60
	mm := totalMinutes % 60
	hh := totalMinutes / 60

	sep := ":"
	if p.DropFrame {
		sep = ";"
	}
	return fmt.Sprintf("%02d:%02d:%02d%s%02d", hh, mm, ss, sep, ff)
}

// Rational renders a frame count as the exact fraction-of-a-second
// token "<frames>/<timebase>s". Both operands are integers, so no
// rounding occurs.
func (p Profile) Rational(frames int) string {
	return fmt.Sprintf("%d/%ds", frames, p.Timebase)
}

// FrameDuration returns the rational frame-duration token for the
// profile's rate. Unmapped rates fall back to the 24 fps token rather
// than failing; the fallback is logged, not raised.
func (p Profile) FrameDuration(logger *slog.Logger) string {
	if d, ok := frameDurations[p.FPS]; ok {
		return d
	}
	if logger != nil {
		logger.Warn("frame rate has no documented rational token, using 24 fps fallback", "fps", p.FPS)
	}
	return "24s"
}

// TickTimebase returns the integer timebase used for tick arithmetic
// in the version-5 XMEML variant, falling back to 24 for unmapped
// rates.
func (p Profile) TickTimebase() int {
	if tb, ok := tickTimebases[p.FPS]; ok {
		return tb
	}
	return 24
}

// TicksPerFrame returns the fixed tick count of one frame. Every
// documented timebase divides TicksPerSecond evenly, so the division
// is exact.
func (p Profile) TicksPerFrame() int64 {
	return TicksPerSecond / int64(p.TickTimebase())
}

// FramesToTicks converts a frame count to the tick unit.
func (p Profile) FramesToTicks(frames int) int64 {
	return int64(frames) * p.TicksPerFrame()
}

// SecondsToTicks converts seconds to ticks by way of the frame domain,
// so tick values stay frame-aligned.
func (p Profile) SecondsToTicks(seconds float64) int64 {
	return p.FramesToTicks(p.SecondsToFrames(seconds))
}
