package wav

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{"ErrNotWavFile", ErrNotWavFile, "not a WAV file"},
		{"ErrUnsupportedWavLayout", ErrUnsupportedWavLayout, "unsupported WAV layout"},
		{"ErrOnlyPCM16bitSupported", ErrOnlyPCM16bitSupported, "only PCM 16-bit supported"},
		{"ErrUnsupportedWavChunks", ErrUnsupportedWavChunks, "unsupported WAV chunks"},
		{"ErrInvalidChannelCount", ErrInvalidChannelCount, "channel count must be positive"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.err.Error() != tt.msg {
				t.Errorf("%s.Error() = %q, want %q", tt.name, tt.err.Error(), tt.msg)
			}
		})
	}
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotWavFile", ErrNotWavFile},
		{"ErrUnsupportedWavLayout", ErrUnsupportedWavLayout},
		{"ErrOnlyPCM16bitSupported", ErrOnlyPCM16bitSupported},
		{"ErrUnsupportedWavChunks", ErrUnsupportedWavChunks},
		{"ErrInvalidChannelCount", ErrInvalidChannelCount},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			wrapped := fmt.Errorf("decoding upload: %w", tt.err)
			if !errors.Is(wrapped, tt.err) {
				t.Errorf("errors.Is(wrapped, %s) = false, want true", tt.name)
			}
		})
	}
}

func TestErrors_Uniqueness(t *testing.T) {
	t.Parallel()

	allErrors := []error{
		ErrNotWavFile,
		ErrUnsupportedWavLayout,
		ErrOnlyPCM16bitSupported,
		ErrUnsupportedWavChunks,
		ErrInvalidChannelCount,
	}

	for i := range allErrors {
		for j := range allErrors {
			if i != j && errors.Is(allErrors[i], allErrors[j]) {
				t.Errorf("errors[%d] and errors[%d] match each other", i, j)
			}
		}
	}
}
