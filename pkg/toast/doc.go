// Package toast displays transient notifications ("toasts") in server-driven
// web pages.
//
// A Notifier renders a small styled element fixed to the bottom-right corner of
// the viewport, colored by category, and removes it on a fixed two-stage
// schedule: after VisibleFor (3s) the element starts a FadeFor (400ms) opacity
// transition to transparent, and once the transition ends it is detached.
//
// The Notifier never touches a browser directly. It drives a Display, which
// attaches, fades and detaches elements. BroadcastDisplay routes those patches
// to the page named by WithPage, where Relay turns them into datastar element
// patches over Server-Sent Events:
//
//	hub := broadcast.NewHub[toast.Patch](64)
//	notifier := toast.New(toast.NewBroadcastDisplay(hub), toast.WithLogger(log))
//
//	// in a request handler
//	ctx = toast.WithPage(ctx, pageID)
//	if err := notifier.Show(ctx, "Saved successfully", toast.CategorySuccess); err != nil {
//	    return err
//	}
//
//	// in the page's SSE stream handler
//	return toast.Relay(stream, hub.Subscribe(stream, pageID), stream, notifier.Style())
//
// Inline renders a toast into a full page response instead. The element
// carries a CSS animation that hides it on schedule, so it also goes away on
// pages that never open a stream.
//
// # Categories
//
// "success", "error" and "info" select green, red and blue backgrounds. Any
// other string, including the empty one, selects the neutral gray.
//
// # Concurrency
//
// Every Show call owns its element and its timers; toasts never wait on or
// interact with each other. Overlapping toasts share the same corner and may
// cover one another. There is no way to cancel a scheduled dismissal.
package toast
