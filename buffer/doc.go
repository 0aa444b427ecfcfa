// SPDX-License-Identifier: EPL-2.0

// Package buffer holds fully decoded audio for the trimming engine.
//
// A Buffer is built once per uploaded file from a streaming audio.Source
// and is immutable afterwards: the waveform renderer reads its channels,
// the selection controller maps against its duration, and the export path
// slices frame ranges out of it.
//
// # Building a Buffer
//
//	src, _ := wav.Decoder{}.Decode(file)
//	buf, err := buffer.FromSource(src)
//
// # Slicing
//
// Slice resolves a time range to frame offsets with floor() semantics and
// returns a view sharing the underlying sample memory:
//
//	cut, err := buf.Slice(1.5, 3.25)
//	if errors.Is(err, buffer.ErrInvalidRange) {
//	    // degenerate selection, nothing to encode
//	}
//
// # Streaming back out
//
// Source() adapts a Buffer back into the streaming world, so the same
// resample/downmix pipeline that runs over decoders also runs over decoded
// buffers:
//
//	pcm16, err := audio.Collect16(cut.Source(), 4096)
package buffer
