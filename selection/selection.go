// SPDX-License-Identifier: EPL-2.0

package selection

// Handle identifies a draggable selection boundary.
type Handle int

const (
	HandleNone Handle = iota
	HandleStart
	HandleEnd
)

func (h Handle) String() string {
	switch h {
	case HandleStart:
		return "start"
	case HandleEnd:
		return "end"
	}
	return "none"
}

// Range is a trim selection in seconds. A valid Range satisfies
// 0 <= Start < End <= duration with End-Start >= the controller's minimum.
type Range struct {
	Start float64
	End   float64
}

// Duration of the selected span in seconds.
func (r Range) Duration() float64 { return r.End - r.Start }

// TimeToX maps a time in seconds onto a pixel x-coordinate for the given
// total duration and view width. Inverse of XToTime.
func TimeToX(t, duration float64, width int) float64 {
	if duration <= 0 {
		return 0
	}
	return t / duration * float64(width)
}

// XToTime maps a pixel x-coordinate back onto a time in seconds. Inverse
// of TimeToX.
func XToTime(x, duration float64, width int) float64 {
	if width <= 0 {
		return 0
	}
	return x / float64(width) * duration
}
