package export

import "errors"

var (
	// ErrBusy rejects an export started while another is running.
	ErrBusy = errors.New("export already in progress")
)
