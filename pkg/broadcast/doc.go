// Package broadcast delivers typed messages to in-process subscribers.
//
// A MemoryBroadcaster fans every message out to all of its subscribers. A Hub
// keeps one broadcaster per topic, so a publisher can address a single group
// of subscribers. The toast notifier keys topics by page id: each page stream
// subscribes to its own topic and a Show call reaches only that page.
//
//	h := broadcast.NewHub[string](16)
//	defer h.Close()
//
//	sub := h.Subscribe(ctx, "page-1") // cleaned up when ctx is cancelled
//	_ = h.Publish(ctx, "page-1", broadcast.Message[string]{Data: "hello"})
//
//	for msg := range sub.Receive(ctx) {
//		fmt.Println(msg.Data)
//	}
//
// Delivery never blocks the publisher: a subscriber whose buffer is full is
// dropped and its channel closed. Closing a subscriber deregisters it, and a
// topic disappears with its last subscriber.
package broadcast
