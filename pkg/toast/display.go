package toast

import "context"

// Display is the document a Notifier draws into. Implementations must be safe
// for concurrent use: Attach runs on the caller's goroutine, Fade and Detach on
// timer goroutines.
type Display interface {
	// Attach inserts the element for n, fully opaque.
	Attach(ctx context.Context, n Notification) error
	// Fade restyles the element for n so it transitions to transparent.
	Fade(ctx context.Context, n Notification) error
	// Detach removes the element for n.
	Detach(ctx context.Context, n Notification) error
}
