// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF uploads for the trimmer.
//
// The Decoder wraps github.com/go-audio/aiff behind the audio.Decoder
// interface. go-audio needs an io.ReadSeeker, so non-seekable input is
// buffered in memory before parsing. Only 16-bit PCM streams are
// accepted; other bit depths fail with ErrOnlyPCM16bitSupported. The
// session registers it under the "aiff" extension.
package aiff
