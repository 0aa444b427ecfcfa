// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis uploads for the trimmer.
//
// The Decoder wraps github.com/jfreymuth/oggvorbis behind the
// audio.Decoder interface. oggvorbis already produces float32 samples in
// [-1.0, 1.0], so decoding is a frame-to-sample reshuffle rather than a
// numeric conversion. The session registers it under the "ogg" extension.
//
// Encoding is out of scope; exports always leave as WAV.
package vorbis
