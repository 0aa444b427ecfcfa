package wavetrim

import "errors"

var (
	// ErrUnsupportedFormat rejects uploads with no registered decoder.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrNoBuffer is returned by operations that need a loaded buffer.
	ErrNoBuffer = errors.New("no audio loaded")
)
