// SPDX-License-Identifier: EPL-2.0

// Package waveform renders the trimming view.
//
// The Renderer reduces a decoded buffer to a min/max amplitude envelope
// with one Column per pixel of view width, positions the translucent
// selection overlay, and resolves the visual state of both boundary
// handles. The result is a Frame: a plain draw model the embedding
// surface rasterizes however it likes (canvas, terminal, image).
//
// Rendering is stateless; every Render call recomputes the frame from the
// buffer and the current selection. Callers that want caching key it on
// (buffer, selection, handle state, width) — the output is deterministic.
package waveform
