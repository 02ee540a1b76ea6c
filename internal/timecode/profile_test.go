package timecode

import (
	"io"
	"log/slog"
	"testing"
)

func TestNewProfile_Predicates(t *testing.T) {
	tests := []struct {
		fps       float64
		timebase  int
		dropFrame bool
		ntsc      bool
	}{
		{fps: 23.976, timebase: 24, dropFrame: false, ntsc: true},
		{fps: 24, timebase: 24, dropFrame: false, ntsc: false},
		{fps: 25, timebase: 25, dropFrame: false, ntsc: false},
		{fps: 29.97, timebase: 30, dropFrame: true, ntsc: true},
		{fps: 30, timebase: 30, dropFrame: false, ntsc: false},
		{fps: 59.94, timebase: 60, dropFrame: true, ntsc: true},
		{fps: 60, timebase: 60, dropFrame: false, ntsc: false},
	}

	for _, tc := range tests {
		p := NewProfile(tc.fps)
		if p.Timebase != tc.timebase {
			t.Errorf("NewProfile(%v).Timebase = %d, want %d", tc.fps, p.Timebase, tc.timebase)
		}
		if p.DropFrame != tc.dropFrame {
			t.Errorf("NewProfile(%v).DropFrame = %v, want %v", tc.fps, p.DropFrame, tc.dropFrame)
		}
		if p.NTSC != tc.ntsc {
			t.Errorf("NewProfile(%v).NTSC = %v, want %v", tc.fps, p.NTSC, tc.ntsc)
		}
	}
}

func TestNewProfile_SubIntegerRateClampsTimebase(t *testing.T) {
	p := NewProfile(0.4)
	if p.Timebase != 1 {
		t.Fatalf("NewProfile(0.4).Timebase = %d, want 1", p.Timebase)
	}
	// Frame arithmetic over the clamped timebase must stay well
	// defined.
	if got := p.Timecode(4); got != "00:00:04:00" {
		t.Errorf("Timecode(4) at 0.4 fps = %q, want %q", got, "00:00:04:00")
	}
	if got := p.Rational(4); got != "4/1s" {
		t.Errorf("Rational(4) at 0.4 fps = %q, want %q", got, "4/1s")
	}
}

func TestSecondsToFrames_RoundTripIdempotent(t *testing.T) {
	for _, fps := range []float64{23.976, 24, 25, 29.97, 30, 59.94, 60} {
		p := NewProfile(fps)
		for _, frames := range []int{0, 1, 143, 240, 86400} {
			got := p.SecondsToFrames(p.FramesToSeconds(frames))
			if got != frames {
				t.Errorf("fps %v: frames->seconds->frames(%d) = %d", fps, frames, got)
			}
		}
	}
}

func TestTimecode(t *testing.T) {
	tests := []struct {
		name   string
		fps    float64
		frames int
		want   string
	}{
		{name: "zero", fps: 24, frames: 0, want: "00:00:00:00"},
		{name: "one second", fps: 24, frames: 24, want: "00:00:01:00"},
		{name: "fractional second", fps: 30, frames: 15, want: "00:00:00:15"},
		{name: "one minute", fps: 30, frames: 1800, want: "00:01:00:00"},
		{name: "one hour", fps: 30, frames: 108000, want: "01:00:00:00"},
		{name: "drop frame separator", fps: 29.97, frames: 45, want: "00:00:01;15"},
		{name: "non drop high rate", fps: 60, frames: 61, want: "00:00:01:01"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NewProfile(tc.fps).Timecode(tc.frames)
			if got != tc.want {
				t.Fatalf("Timecode(%d) at %v fps = %q, want %q", tc.frames, tc.fps, got, tc.want)
			}
		})
	}
}

func TestRational(t *testing.T) {
	p := NewProfile(23.976)
	if got := p.Rational(240); got != "240/24s" {
		t.Errorf("Rational(240) = %q, want %q", got, "240/24s")
	}
	p = NewProfile(30)
	if got := p.Rational(0); got != "0/30s" {
		t.Errorf("Rational(0) = %q, want %q", got, "0/30s")
	}
}

func TestFrameDuration_DocumentedRates(t *testing.T) {
	tests := []struct {
		fps  float64
		want string
	}{
		{23.976, "24000/1001s"},
		{24, "24s"},
		{25, "25s"},
		{29.97, "30000/1001s"},
		{30, "30s"},
		{50, "50s"},
		{59.94, "60000/1001s"},
		{60, "60s"},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, tc := range tests {
		if got := NewProfile(tc.fps).FrameDuration(logger); got != tc.want {
			t.Errorf("FrameDuration at %v fps = %q, want %q", tc.fps, got, tc.want)
		}
	}
}

func TestFrameDuration_UnmappedRateFallsBack(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := NewProfile(48)
	if got := p.FrameDuration(logger); got != "24s" {
		t.Errorf("FrameDuration at 48 fps = %q, want fallback %q", got, "24s")
	}
	// nil logger must not panic
	if got := p.FrameDuration(nil); got != "24s" {
		t.Errorf("FrameDuration with nil logger = %q, want %q", got, "24s")
	}
}

func TestTicks(t *testing.T) {
	p := NewProfile(24)
	perFrame := TicksPerSecond / 24
	if p.TicksPerFrame() != perFrame {
		t.Fatalf("TicksPerFrame = %d, want %d", p.TicksPerFrame(), perFrame)
	}
	if got := p.FramesToTicks(240); got != 240*perFrame {
		t.Errorf("FramesToTicks(240) = %d, want %d", got, 240*perFrame)
	}
	if got := p.SecondsToTicks(10.0); got != 240*perFrame {
		t.Errorf("SecondsToTicks(10.0) = %d, want %d", got, 240*perFrame)
	}
}

func TestTicks_TimebaseDividesEvenly(t *testing.T) {
	for _, fps := range []float64{23.976, 24, 25, 29.97, 30, 50, 59.94, 60, 48} {
		p := NewProfile(fps)
		tb := int64(p.TickTimebase())
		if TicksPerSecond%tb != 0 {
			t.Errorf("timebase %d at %v fps does not divide %d", tb, fps, TicksPerSecond)
		}
	}
}

func TestTickTimebase_UnmappedRateFallsBack(t *testing.T) {
	if got := NewProfile(48).TickTimebase(); got != 24 {
		t.Errorf("TickTimebase at 48 fps = %d, want 24", got)
	}
}
