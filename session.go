// SPDX-License-Identifier: EPL-2.0

package wavetrim

import (
	"fmt"
	"io"
	"sync"

	"github.com/ik5/wavetrim/audio"
	"github.com/ik5/wavetrim/buffer"
	"github.com/ik5/wavetrim/export"
	"github.com/ik5/wavetrim/formats/aiff"
	"github.com/ik5/wavetrim/formats/mp3"
	"github.com/ik5/wavetrim/formats/vorbis"
	"github.com/ik5/wavetrim/formats/wav"
	"github.com/ik5/wavetrim/selection"
	"github.com/ik5/wavetrim/waveform"
)

// Session ties the whole editor together: one loaded buffer, one selection
// controller over it, a renderer for the waveform view, and an exporter for
// the trimmed result. A fresh upload replaces the buffer and resets every
// piece of selection state.
//
// Session methods are safe for concurrent use, though the intended pattern
// is a single interaction goroutine plus export calls from anywhere.
type Session struct {
	registry *audio.Registry
	renderer *waveform.Renderer
	exporter *export.Exporter

	mu    sync.Mutex
	width int
	buf   *buffer.Buffer
	ctrl  *selection.Controller
	unsub func()

	dirty bool
	frame waveform.Frame
}

// NewSession creates an empty session rendering at the given pixel width.
// All supported upload formats are registered up front.
func NewSession(width int) *Session {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})

	return &Session{
		registry: reg,
		renderer: waveform.NewRenderer(),
		exporter: export.NewExporter(),
		width:    width,
	}
}

// Load decodes an upload into the session. The decoder is picked by name's
// extension; unknown extensions fail with ErrUnsupportedFormat. On success
// the previous buffer and all selection state are discarded and the
// selection spans the full new duration.
func (s *Session) Load(r io.Reader, name string) error {
	dec, ok := s.registry.ForFile(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}

	src, err := dec.Decode(r)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", name, err)
	}
	defer src.Close()

	buf, err := buffer.FromSource(src)
	if err != nil {
		return fmt.Errorf("loading %s: %w", name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.install(buf)
	return nil
}

// LoadBuffer installs an already decoded buffer, for callers that built one
// themselves. Selection state resets the same way Load does.
func (s *Session) LoadBuffer(buf *buffer.Buffer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.install(buf)
}

// install replaces the buffer and rebuilds the controller. Callers hold mu.
func (s *Session) install(buf *buffer.Buffer) {
	if s.unsub != nil {
		s.unsub()
	}

	s.buf = buf
	s.ctrl = selection.NewController(buf.Duration(), s.width)
	s.unsub = s.ctrl.Subscribe(s.markDirty)
	s.dirty = true
}

func (s *Session) markDirty() {
	s.mu.Lock()
	s.dirty = true
	s.mu.Unlock()
}

// Loaded reports whether the session holds a buffer.
func (s *Session) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.buf != nil
}

// Duration of the loaded buffer in seconds, zero when empty.
func (s *Session) Duration() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buf == nil {
		return 0
	}
	return s.buf.Duration()
}

// Selection returns the current trim range.
func (s *Session) Selection() selection.Range {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctrl == nil {
		return selection.Range{}
	}
	return s.ctrl.Selection()
}

// Frame renders the current view. Frames are cached; a new one is computed
// only after a mutation marked the session dirty.
func (s *Session) Frame() (waveform.Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buf == nil {
		return waveform.Frame{}, ErrNoBuffer
	}

	if s.dirty {
		s.frame = s.renderer.Render(s.buf, s.ctrl.Selection(),
			s.ctrl.Active(), s.ctrl.Hovered(), s.width)
		s.dirty = false
	}

	return s.frame, nil
}

// PointerDown forwards a press at pixel x to the selection controller.
func (s *Session) PointerDown(x float64) {
	s.mu.Lock()
	ctrl := s.ctrl
	s.mu.Unlock()

	if ctrl != nil {
		ctrl.PointerDown(x)
	}
}

// PointerMove forwards pointer motion at pixel x.
func (s *Session) PointerMove(x float64) {
	s.mu.Lock()
	ctrl := s.ctrl
	s.mu.Unlock()

	if ctrl != nil {
		ctrl.PointerMove(x)
	}
}

// PointerUp releases any active handle.
func (s *Session) PointerUp() {
	s.mu.Lock()
	ctrl := s.ctrl
	s.mu.Unlock()

	if ctrl != nil {
		ctrl.PointerUp()
	}
}

// SetStart moves the selection start to t seconds, clamped like a drag.
func (s *Session) SetStart(t float64) {
	s.mu.Lock()
	ctrl := s.ctrl
	s.mu.Unlock()

	if ctrl != nil {
		ctrl.SetStart(t)
	}
}

// SetEnd moves the selection end to t seconds, clamped like a drag.
func (s *Session) SetEnd(t float64) {
	s.mu.Lock()
	ctrl := s.ctrl
	s.mu.Unlock()

	if ctrl != nil {
		ctrl.SetEnd(t)
	}
}

// Resize changes the view width; selection times are untouched, pixel
// positions remap on the next Frame.
func (s *Session) Resize(width int) {
	s.mu.Lock()
	s.width = width
	ctrl := s.ctrl
	s.mu.Unlock()

	if ctrl != nil {
		ctrl.Resize(width)
	}
}

// Busy reports whether an export is currently running.
func (s *Session) Busy() bool {
	return s.exporter.Busy()
}

// Export encodes the selected range as a WAV artifact with default options.
func (s *Session) Export() (*export.Artifact, error) {
	return s.ExportWith(export.Options{})
}

// ExportWith encodes the selected range with explicit options. A concurrent
// export fails with export.ErrBusy; an empty session with ErrNoBuffer.
func (s *Session) ExportWith(opts export.Options) (*export.Artifact, error) {
	s.mu.Lock()
	buf := s.buf
	var sel selection.Range
	if s.ctrl != nil {
		sel = s.ctrl.Selection()
	}
	s.mu.Unlock()

	if buf == nil {
		return nil, ErrNoBuffer
	}

	return s.exporter.Export(buf, sel, opts)
}

// Reset drops the loaded buffer and all selection state.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unsub != nil {
		s.unsub()
		s.unsub = nil
	}

	s.buf = nil
	s.ctrl = nil
	s.dirty = false
	s.frame = waveform.Frame{}
}

// Close releases the session. It is equivalent to Reset.
func (s *Session) Close() error {
	s.Reset()
	return nil
}
