package toast

import "errors"

var (
	// ErrNoDisplay is returned when there is no page to attach a toast to.
	ErrNoDisplay = errors.New("toast: no display attached")

	// ErrNilDisplay is the panic value of New when called without a display.
	ErrNilDisplay = errors.New("toast: display cannot be nil")
)
