// SPDX-License-Identifier: EPL-2.0

// Package audio provides low-level audio streaming primitives.
//
// This package contains the building blocks the trimming engine is
// assembled from:
//   - Source interface for streaming audio input
//   - Decoder interface and extension-keyed Registry
//   - Resampler for sample rate conversion
//   - MonoMixer for channel downmixing
//   - Collect16 for draining a stream into 16-bit PCM
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// All decoders and processors implement this interface, allowing them
// to be chained together into pipelines.
//
// # Sample Format
//
// Audio samples are float32 values in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// The normalized format keeps intermediate processing independent of
// bit depth.
//
// # Format Registry
//
// The registry allows dynamic decoder registration keyed by file
// extension:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.ForFile("upload.wav")
//
// # Pipelines
//
// Processors wrap other Sources, so optional stages compose naturally:
//
//	src, _ := decoder.Decode(file)
//	resampled := audio.NewResampler(src, 16000)
//	mono := audio.NewMonoMixer(resampled)
//	pcm16, err := audio.Collect16(mono, 4096)
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available. Other
// errors indicate problems with the source or processing:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // normal end of stream
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // process n samples from buf
//	}
package audio
