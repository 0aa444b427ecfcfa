package buffer

import "errors"

var (
	ErrNoChannels        = errors.New("buffer requires at least one channel")
	ErrChannelMismatch   = errors.New("all channels must have equal length")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrInvalidRange      = errors.New("selection resolves to zero frames")
)
