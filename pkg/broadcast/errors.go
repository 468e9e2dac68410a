package broadcast

import "errors"

var (
	// ErrClosed is returned by Broadcast after the broadcaster has been closed.
	ErrClosed = errors.New("broadcast: broadcaster is closed")
)
