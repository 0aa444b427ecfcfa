// SPDX-License-Identifier: EPL-2.0

// Package wavetrim is the core of an audio trimming editor: load an upload,
// show its waveform, drag a selection, export the clip as WAV.
//
// # Supported Formats
//
// Uploads decode through per-format subpackages:
//   - WAV (PCM 16-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// Exports always leave as PCM 16-bit WAV regardless of the input format.
//
// # Quick Start
//
// The Session wires the whole editor together:
//
//	session := wavetrim.NewSession(800)
//
//	f, _ := os.Open("podcast.mp3")
//	session.Load(f, "podcast.mp3")
//
//	// Pointer events drive the selection handles.
//	session.PointerDown(120)
//	session.PointerMove(340)
//	session.PointerUp()
//
//	frame, _ := session.Frame() // draw model for the embedding surface
//	artifact, _ := session.Export()
//	os.WriteFile(artifact.Name, artifact.Data, 0o644)
//
// # One-Shot Trimming
//
// For non-interactive use, TrimToWAV cuts a time range straight from a
// decoded source:
//
//	src, _ := wav.Decoder{}.Decode(in)
//	wavetrim.TrimToWAV(src, 1.5, 4.0, out)
//
// # Building Blocks
//
// Each concern lives in its own subpackage and works standalone:
//
//   - buffer: decoded channel-major sample storage and time-range slicing
//   - waveform: min/max envelope rendering and the frame draw model
//   - selection: pointer hit-testing, drag clamping, the 0.1s minimum range
//   - export: the single-flight WAV export pipeline
//   - audio: the Source streaming interface, resampler, mono mixer
//
// See the individual subpackages for detailed documentation.
package wavetrim
