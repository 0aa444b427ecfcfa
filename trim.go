// SPDX-License-Identifier: EPL-2.0

package wavetrim

import (
	"fmt"
	"io"

	"github.com/ik5/wavetrim/audio"
	"github.com/ik5/wavetrim/buffer"
	"github.com/ik5/wavetrim/formats/wav"
)

// TrimToWAV is a high-level convenience function that cuts [startSec, endSec)
// out of a decoded source and writes the clip as a PCM 16-bit WAV.
//
// The function runs the full pipeline in one call:
//  1. Drains src into an in-memory buffer
//  2. Slices the requested time range (floor frame offsets, clamped to
//     the buffer bounds)
//  3. Quantizes the float32 samples to int16 PCM
//  4. Writes a complete WAV stream to w
//
// Sample rate and channel layout pass through unchanged. For resampling or
// mixdown on the way out, use a Session with export.Options instead.
//
// Example:
//
//	src, _ := decoder.Decode(file)
//	defer src.Close()
//
//	out, _ := os.Create("clip.wav")
//	err := wavetrim.TrimToWAV(src, 1.5, 4.0, out)
func TrimToWAV(src audio.Source, startSec, endSec float64, w io.Writer) error {
	buf, err := buffer.FromSource(src)
	if err != nil {
		return fmt.Errorf("loading source: %w", err)
	}

	clip, err := buf.Slice(startSec, endSec)
	if err != nil {
		return fmt.Errorf("slicing range: %w", err)
	}

	pcm16, err := audio.Collect16(clip.Source(), 4096*clip.Channels())
	if err != nil {
		return fmt.Errorf("collecting samples: %w", err)
	}

	return wav.WritePCM16(w, clip.SampleRate(), clip.Channels(), pcm16)
}
