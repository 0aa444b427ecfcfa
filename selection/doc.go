// SPDX-License-Identifier: EPL-2.0

// Package selection owns the trim-range state of the editor.
//
// The Controller translates pointer pixel coordinates into times over the
// loaded buffer's duration, hit-tests the two boundary handles, and keeps
// the selection invariant (End-Start >= DefaultMinRange) through every
// mutation path: handle drags, fresh clicks and direct numeric entry all
// run through the same clamp routines.
//
// # Coordinate mapping
//
// The forward mapping x = t/duration*W and its inverse t = x/W*duration
// are the package-level TimeToX and XToTime. The waveform renderer uses
// the same functions, so overlay geometry and hit-testing can never
// disagree.
//
// # Interaction model
//
//	ctrl := selection.NewController(buf.Duration(), width)
//	unsub := ctrl.Subscribe(markDirty)
//	defer unsub()
//
//	ctrl.PointerDown(x) // grab a handle, or start a fresh selection
//	ctrl.PointerMove(x) // drag + hover tracking
//	ctrl.PointerUp()    // release
//
// Pointer-move and pointer-up are expected to be delivered globally by the
// embedding surface, so a drag keeps tracking when the pointer leaves the
// waveform area; the unsubscribe function handles teardown.
package selection
