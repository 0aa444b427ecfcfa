// SPDX-License-Identifier: EPL-2.0

package buffer

import (
	"fmt"
	"io"
	"math"

	"github.com/ik5/wavetrim/audio"
)

// Buffer holds fully decoded, channel-major audio: one []float32 per
// channel, every channel the same length, samples in [-1, 1]. A Buffer is
// immutable once built; a new upload produces a new Buffer.
type Buffer struct {
	channels [][]float32
	rate     int
}

// New validates and wraps channel-major sample data. All channels must have
// equal length and rate must be positive.
func New(channels [][]float32, rate int) (*Buffer, error) {
	if len(channels) == 0 {
		return nil, ErrNoChannels
	}
	if rate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	frames := len(channels[0])
	for _, ch := range channels[1:] {
		if len(ch) != frames {
			return nil, ErrChannelMismatch
		}
	}

	return &Buffer{channels: channels, rate: rate}, nil
}

// FromSource drains a streaming source into a Buffer, deinterleaving as it
// reads. The source is read to EOF; closing it stays with the caller.
func FromSource(src audio.Source) (*Buffer, error) {
	channelCount := src.Channels()
	if channelCount <= 0 {
		return nil, ErrNoChannels
	}

	channels := make([][]float32, channelCount)
	buf := make([]float32, 4096*channelCount)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			frames := n / channelCount
			for f := 0; f < frames; f++ {
				for c := 0; c < channelCount; c++ {
					channels[c] = append(channels[c], buf[f*channelCount+c])
				}
			}
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return New(channels, src.SampleRate())
}

// SampleRate in Hz.
func (b *Buffer) SampleRate() int { return b.rate }

// Channels returns the channel count.
func (b *Buffer) Channels() int { return len(b.channels) }

// Frames returns the sample count per channel.
func (b *Buffer) Frames() int { return len(b.channels[0]) }

// Duration of the buffer in seconds.
func (b *Buffer) Duration() float64 {
	return float64(b.Frames()) / float64(b.rate)
}

// Channel returns channel i's samples. The slice is a view into the buffer;
// callers must not mutate it.
func (b *Buffer) Channel(i int) []float32 { return b.channels[i] }

// Slice extracts the frame range covered by [startSec, endSec):
// startOffset = floor(startSec*rate), endOffset = floor(endSec*rate),
// clamped to the buffer bounds. A range that resolves to zero or negative
// frames yields ErrInvalidRange. The returned Buffer shares the underlying
// sample memory.
func (b *Buffer) Slice(startSec, endSec float64) (*Buffer, error) {
	startOffset := int(math.Floor(startSec * float64(b.rate)))
	endOffset := int(math.Floor(endSec * float64(b.rate)))

	if startOffset < 0 {
		startOffset = 0
	}
	if endOffset > b.Frames() {
		endOffset = b.Frames()
	}

	if endOffset-startOffset <= 0 {
		return nil, ErrInvalidRange
	}

	channels := make([][]float32, len(b.channels))
	for i, ch := range b.channels {
		channels[i] = ch[startOffset:endOffset]
	}

	return &Buffer{channels: channels, rate: b.rate}, nil
}

// Source returns a streaming view over the buffer, interleaving frames on
// the fly. Each call starts a fresh read from frame zero.
func (b *Buffer) Source() audio.Source {
	return &bufferSource{buf: b}
}

type bufferSource struct {
	buf  *Buffer
	pos  int // next frame to emit
	done bool
}

func (s *bufferSource) SampleRate() int { return s.buf.rate }
func (s *bufferSource) Channels() int   { return len(s.buf.channels) }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	if s.done || s.pos >= s.buf.Frames() {
		s.done = true
		return 0, io.EOF
	}

	channels := len(s.buf.channels)
	framesRequested := len(dst) / channels
	if framesRequested == 0 {
		return 0, nil
	}

	framesAvailable := s.buf.Frames() - s.pos
	frames := framesRequested
	if frames > framesAvailable {
		frames = framesAvailable
	}

	for f := 0; f < frames; f++ {
		for c := 0; c < channels; c++ {
			dst[f*channels+c] = s.buf.channels[c][s.pos+f]
		}
	}

	s.pos += frames

	if s.pos >= s.buf.Frames() {
		s.done = true
		return frames * channels, io.EOF
	}

	return frames * channels, nil
}
