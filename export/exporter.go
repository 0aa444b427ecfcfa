// SPDX-License-Identifier: EPL-2.0

package export

import (
	"bytes"
	"fmt"
	"sync/atomic"

	"github.com/ik5/wavetrim/audio"
	"github.com/ik5/wavetrim/buffer"
	"github.com/ik5/wavetrim/formats/wav"
	"github.com/ik5/wavetrim/selection"
)

const (
	// FileName every exported clip is published under.
	FileName = "trimmed_audio.wav"

	// MIMEType of exported clips.
	MIMEType = "audio/wav"

	// collectFrames is the per-read frame count while draining the
	// trimmed source.
	collectFrames = 4096
)

// Artifact is one finished export: a complete WAV byte stream plus the
// metadata a delivery surface needs to hand it over.
type Artifact struct {
	Data []byte
	MIME string
	Name string
}

// Options adjust the export pipeline. The zero value exports the selection
// verbatim: source sample rate, source channel layout.
type Options struct {
	// SampleRate resamples the clip when positive and different from the
	// buffer's rate.
	SampleRate int

	// Mono mixes all channels down to one before encoding.
	Mono bool
}

// Exporter encodes buffer selections to WAV artifacts. At most one export
// runs at a time; concurrent calls are rejected with ErrBusy rather than
// queued.
type Exporter struct {
	busy atomic.Bool
}

func NewExporter() *Exporter {
	return &Exporter{}
}

// Busy reports whether an export is currently running.
func (e *Exporter) Busy() bool {
	return e.busy.Load()
}

// Export slices the selected range out of buf and encodes it as PCM 16-bit
// WAV. A degenerate selection surfaces buffer.ErrInvalidRange; a second
// Export while one is running fails with ErrBusy.
func (e *Exporter) Export(buf *buffer.Buffer, sel selection.Range, opts Options) (*Artifact, error) {
	if !e.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer e.busy.Store(false)

	clip, err := buf.Slice(sel.Start, sel.End)
	if err != nil {
		return nil, fmt.Errorf("slicing selection: %w", err)
	}

	var src audio.Source = clip.Source()

	if opts.SampleRate > 0 && opts.SampleRate != clip.SampleRate() {
		src = audio.NewResampler(src, opts.SampleRate)
	}
	if opts.Mono && clip.Channels() > 1 {
		src = audio.NewMonoMixer(src)
	}

	// Read whole frames so the resampler's channel-multiple contract holds.
	pcm16, err := audio.Collect16(src, collectFrames*src.Channels())
	if err != nil {
		return nil, fmt.Errorf("collecting samples: %w", err)
	}

	out := new(bytes.Buffer)
	if err := wav.WritePCM16(out, src.SampleRate(), src.Channels(), pcm16); err != nil {
		return nil, fmt.Errorf("encoding wav: %w", err)
	}

	return &Artifact{
		Data: out.Bytes(),
		MIME: MIMEType,
		Name: FileName,
	}, nil
}
