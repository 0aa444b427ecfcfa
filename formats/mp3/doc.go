// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 uploads for the trimmer.
//
// The Decoder wraps github.com/hajimehoshi/go-mp3 behind the audio.Decoder
// interface, so MP3 files flow through the same load path as WAV, Ogg
// Vorbis and AIFF uploads. The session registers it under the "mp3"
// extension.
//
// # Output Format
//
//   - Sample format: float32 in [-1.0, 1.0]
//   - Channels: always 2 (go-mp3 upmixes mono streams)
//   - Sample rate: whatever the stream declares, typically 44.1 or 48 kHz
//
// Encoding is out of scope; exports always leave as WAV.
package mp3
