// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio decoding and encoding for the trimmer.
//
// Both sides of the package speak the same dialect: the canonical 44-byte
// RIFF/WAVE header with a PCM fmt chunk followed directly by the data
// chunk, 16-bit little-endian samples, any channel count, any sample rate.
//
// # Decoding
//
// Decoder satisfies audio.Decoder and is registered under the "wav"
// extension by the session:
//
//	decoder := wav.Decoder{}
//	source, err := decoder.Decode(file)
//
// The returned audio.Source yields interleaved float32 samples in
// [-1.0, 1.0].
//
// # Encoding
//
// WritePCM16 writes a complete WAV stream from interleaved int16 samples:
//
//	err := wav.WritePCM16(out, 44100, 2, samples)
//
// The export pipeline uses it as the final container step.
//
// # Error Handling
//
// Decode failures map to sentinel errors:
//   - ErrNotWavFile: the input is not RIFF/WAVE
//   - ErrOnlyPCM16bitSupported: compressed or non-16-bit input
//   - ErrUnsupportedWavLayout, ErrUnsupportedWavChunks: non-canonical
//     chunk ordering
package wav
