package toast

import (
	"context"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/toastkit/pkg/broadcast"
)

// Op is the kind of change a Patch applies to a page.
type Op string

const (
	OpAttach Op = "attach"
	OpFade   Op = "fade"
	OpDetach Op = "detach"
)

// Patch is a single display change published to connected pages.
type Patch struct {
	Op           Op
	Notification Notification
}

// Options returns the datastar patch options that apply p to a page:
// append into body, morph in place, or remove by id.
func (p Patch) Options() []datastar.PatchElementOption {
	selector := "#" + p.Notification.ID

	switch p.Op {
	case OpAttach:
		return []datastar.PatchElementOption{
			datastar.WithSelector("body"),
			datastar.WithMode(datastar.ElementPatchModeAppend),
		}
	case OpDetach:
		return []datastar.PatchElementOption{
			datastar.WithSelector(selector),
			datastar.WithMode(datastar.ElementPatchModeRemove),
		}
	default:
		return []datastar.PatchElementOption{
			datastar.WithSelector(selector),
			datastar.WithMode(datastar.ElementPatchModeOuter),
		}
	}
}

// BroadcastDisplay publishes display changes to the page named in the
// context (see WithPage). Each page stream subscribes to its own topic, so a
// toast only ever reaches the page that asked for it.
type BroadcastDisplay struct {
	router broadcast.Router[Patch]
}

// NewBroadcastDisplay creates a display backed by router.
func NewBroadcastDisplay(router broadcast.Router[Patch]) *BroadcastDisplay {
	return &BroadcastDisplay{router: router}
}

// Attach fails with ErrNoDisplay when ctx names no page or the page has no
// open stream.
func (d *BroadcastDisplay) Attach(ctx context.Context, n Notification) error {
	page := PageFrom(ctx)
	if page == "" || d.router.SubscriberCount(page) == 0 {
		return ErrNoDisplay
	}
	return d.publish(ctx, page, OpAttach, n)
}

// Fade is a no-op when the page has disconnected since the toast was shown.
func (d *BroadcastDisplay) Fade(ctx context.Context, n Notification) error {
	page := PageFrom(ctx)
	if page == "" {
		return ErrNoDisplay
	}
	return d.publish(ctx, page, OpFade, n)
}

func (d *BroadcastDisplay) Detach(ctx context.Context, n Notification) error {
	page := PageFrom(ctx)
	if page == "" {
		return ErrNoDisplay
	}
	return d.publish(ctx, page, OpDetach, n)
}

func (d *BroadcastDisplay) publish(ctx context.Context, page string, op Op, n Notification) error {
	return d.router.Publish(ctx, page, broadcast.Message[Patch]{Data: Patch{Op: op, Notification: n}})
}

// Sender writes a component to one page. handler.StreamContext satisfies it.
type Sender interface {
	SendComponent(component templ.Component, opts ...datastar.PatchElementOption) error
}

// RelayOption configures Relay.
type RelayOption func(*relayConfig)

type relayConfig struct {
	onSent func(Patch)
}

// OnSent calls fn after each patch is written to the page.
func OnSent(fn func(Patch)) RelayOption {
	return func(c *relayConfig) {
		if fn != nil {
			c.onSent = fn
		}
	}
}

// Relay forwards patches from sub to out until ctx is done, the subscription
// closes, or a send fails. It closes sub on return.
func Relay(ctx context.Context, sub broadcast.Subscriber[Patch], out Sender, style Style, opts ...RelayOption) error {
	defer sub.Close()

	cfg := relayConfig{onSent: func(Patch) {}}
	for _, opt := range opts {
		opt(&cfg)
	}

	patches := sub.Receive(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-patches:
			if !ok {
				return nil
			}
			p := msg.Data
			if err := out.SendComponent(Component(p.Notification, style), p.Options()...); err != nil {
				return err
			}
			cfg.onSent(p)
		}
	}
}
