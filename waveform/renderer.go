// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"math"

	"github.com/ik5/wavetrim/buffer"
	"github.com/ik5/wavetrim/selection"
)

const (
	// DefaultHeight of the rendered view in pixels.
	DefaultHeight = 200

	// DefaultHandleWidth of each boundary marker in pixels.
	DefaultHandleWidth = 8
)

// Column is the min/max amplitude envelope of one pixel-wide slice of the
// waveform, both values in [-1, 1].
type Column struct {
	Min float32
	Max float32
}

// YSpan maps the column onto vertical pixel coordinates for the given view
// height using y = (1 + v) * height / 2. top <= bottom always holds.
func (c Column) YSpan(height int) (top, bottom int) {
	top = int((1 + float64(c.Min)) * float64(height) / 2)
	bottom = int((1 + float64(c.Max)) * float64(height) / 2)
	return top, bottom
}

// MarkerState is the visual state of a boundary handle.
type MarkerState int

const (
	MarkerDefault MarkerState = iota
	MarkerHovered
	MarkerActive
)

func (s MarkerState) String() string {
	switch s {
	case MarkerHovered:
		return "hovered"
	case MarkerActive:
		return "active"
	}
	return "default"
}

// Marker is a handle's draw instruction: a vertical bar of Width pixels
// centered on X.
type Marker struct {
	X     int
	Width int
	State MarkerState
}

// Frame is one complete render of the waveform view: the per-pixel
// envelope, the selection overlay span, and both handle markers.
type Frame struct {
	Width  int
	Height int

	Columns []Column

	// Overlay rectangle over the selected span, in pixel x-coordinates.
	SelStartX int
	SelEndX   int

	Start Marker
	End   Marker
}

// Renderer turns a buffer plus selection state into Frames. The zero value
// is not usable; call NewRenderer.
type Renderer struct {
	height      int
	handleWidth int
}

func NewRenderer() *Renderer {
	return &Renderer{
		height:      DefaultHeight,
		handleWidth: DefaultHandleWidth,
	}
}

// Height of rendered frames in pixels.
func (r *Renderer) Height() int { return r.height }

// Render computes a Frame for the buffer at the given pixel width. The
// envelope is recomputed from channel 0 on every call; the selection
// overlay and handle positions use the same time-to-pixel mapping the
// selection controller hit-tests with.
func (r *Renderer) Render(buf *buffer.Buffer, sel selection.Range, active, hovered selection.Handle, width int) Frame {
	duration := buf.Duration()

	frame := Frame{
		Width:   width,
		Height:  r.height,
		Columns: Envelope(buf.Channel(0), width),

		SelStartX: int(selection.TimeToX(sel.Start, duration, width)),
		SelEndX:   int(selection.TimeToX(sel.End, duration, width)),
	}

	frame.Start = Marker{
		X:     frame.SelStartX,
		Width: r.handleWidth,
		State: markerState(selection.HandleStart, active, hovered),
	}
	frame.End = Marker{
		X:     frame.SelEndX,
		Width: r.handleWidth,
		State: markerState(selection.HandleEnd, active, hovered),
	}

	return frame
}

// markerState resolves a handle's visual state; active wins over hovered.
func markerState(h, active, hovered selection.Handle) MarkerState {
	switch {
	case active == h:
		return MarkerActive
	case hovered == h:
		return MarkerHovered
	}
	return MarkerDefault
}

// Envelope reduces samples to one min/max Column per pixel. Pixel i covers
// the sample range [i*step, (i+1)*step) with step = ceil(len/width), the
// final range clamped to the sample count. An empty range (width greater
// than the sample count) produces a zero-amplitude column.
func Envelope(samples []float32, width int) []Column {
	if width <= 0 {
		return nil
	}

	columns := make([]Column, width)
	step := int(math.Ceil(float64(len(samples)) / float64(width)))

	for i := 0; i < width; i++ {
		lo := i * step
		hi := lo + step
		if hi > len(samples) {
			hi = len(samples)
		}
		if lo >= hi {
			continue // zero column
		}

		cmin := samples[lo]
		cmax := samples[lo]
		for _, v := range samples[lo+1 : hi] {
			if v < cmin {
				cmin = v
			}
			if v > cmax {
				cmax = v
			}
		}

		columns[i] = Column{Min: cmin, Max: cmax}
	}

	return columns
}
