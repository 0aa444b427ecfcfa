// SPDX-License-Identifier: EPL-2.0

// Package export turns buffer selections into downloadable WAV artifacts.
//
// The Exporter runs the trim pipeline end to end: slice the selected
// range out of the decoded buffer, optionally resample or mix down,
// quantize to 16-bit PCM, and wrap the result in a RIFF/WAVE container.
// The output Artifact always carries the fixed FileName and MIMEType.
//
// Exports are single-flight. The Exporter holds a busy flag for the
// duration of a run; a second Export call while one is in progress fails
// fast with ErrBusy instead of queueing. Clients retry after the first
// export finishes.
//
//	exporter := export.NewExporter()
//	artifact, err := exporter.Export(buf, ctrl.Selection(), export.Options{})
//	if errors.Is(err, export.ErrBusy) {
//	    // an export is already running
//	}
package export
