package toast

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/a-h/templ"
	"github.com/google/uuid"

	"github.com/dmitrymomot/toastkit/pkg/logger"
	"github.com/dmitrymomot/toastkit/pkg/statemachine"
)

// Notifier shows toasts on a Display and dismisses them on schedule.
// It holds no per-toast state, so one Notifier serves any number of
// concurrent Show calls.
type Notifier struct {
	display    Display
	clock      Clock
	log        *slog.Logger
	recorder   Recorder
	style      Style
	visibleFor time.Duration
	fadeFor    time.Duration
	newID      func() string
}

// New creates a Notifier drawing into display. It panics with ErrNilDisplay
// when display is nil.
func New(display Display, opts ...Option) *Notifier {
	if display == nil {
		panic(ErrNilDisplay)
	}

	n := &Notifier{
		display:    display,
		clock:      systemClock{},
		log:        logger.Discard(),
		recorder:   nopRecorder{},
		style:      DefaultStyle(),
		visibleFor: DefaultVisibleFor,
		fadeFor:    DefaultFadeFor,
		newID:      func() string { return "toast-" + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Style returns the presentation used for every toast of this Notifier.
func (n *Notifier) Style() Style {
	return n.style
}

// Show attaches a toast with message and category to the display and
// schedules its fade-out and removal. The attach error, if any, is returned
// and nothing is scheduled.
func (n *Notifier) Show(ctx context.Context, message, category string) error {
	t := n.newToast(message, category)

	if err := n.display.Attach(ctx, t.snapshot()); err != nil {
		n.recorder.DisplayFailed(stageAttach)
		return fmt.Errorf("attach toast: %w", err)
	}
	n.recorder.ToastShown(category)

	n.log.DebugContext(ctx, "toast shown",
		logger.Component("toast"),
		logger.ToastID(t.base.ID),
		logger.Category(category),
		logger.PageID(PageFrom(ctx)),
	)

	n.schedule(ctx, t)
	return nil
}

// Success shows a toast in the success category.
func (n *Notifier) Success(ctx context.Context, message string) error {
	return n.Show(ctx, message, CategorySuccess)
}

// Error shows a toast in the error category.
func (n *Notifier) Error(ctx context.Context, message string) error {
	return n.Show(ctx, message, CategoryError)
}

// Info shows a toast in the info category.
func (n *Notifier) Info(ctx context.Context, message string) error {
	return n.Show(ctx, message, CategoryInfo)
}

// Inline schedules a toast whose initial element the caller renders as part
// of a full page. Only the fade and detach stages go through the display; the
// element also dismisses itself on pages without an event stream.
func (n *Notifier) Inline(ctx context.Context, message, category string) templ.Component {
	t := n.newToast(message, category)
	n.recorder.ToastShown(category)
	n.schedule(ctx, t)
	return InlineComponent(t.snapshot(), n.style, n.visibleFor)
}

func (n *Notifier) newToast(message, category string) *toast {
	return newToast(Notification{
		ID:        n.newID(),
		Message:   message,
		Category:  category,
		Color:     ColorFor(category),
		Fade:      n.fadeFor,
		CreatedAt: n.clock.Now(),
	})
}

// schedule chains the two deferred stages. They outlive the request that
// created the toast, so cancellation of ctx is dropped.
func (n *Notifier) schedule(ctx context.Context, t *toast) {
	ctx = context.WithoutCancel(ctx)

	n.clock.AfterFunc(n.visibleFor, func() {
		n.advance(ctx, t, eventFade, stageFade, n.display.Fade)

		n.clock.AfterFunc(n.fadeFor, func() {
			n.advance(ctx, t, eventRemove, stageDetach, n.display.Detach)
		})
	})
}

// advance moves t to its next state and hands the new snapshot to stage.
// Failures have no caller to return to and are logged.
func (n *Notifier) advance(ctx context.Context, t *toast, event statemachine.Event, name string, stage func(context.Context, Notification) error) {
	if err := t.lifecycle.Fire(ctx, event, nil); err != nil {
		n.log.ErrorContext(ctx, "toast lifecycle transition failed",
			logger.Component("toast"),
			logger.ToastID(t.base.ID),
			logger.Event(event.Name()),
			logger.Error(err),
		)
		return
	}

	snap := t.snapshot()
	if err := stage(ctx, snap); err != nil {
		n.recorder.DisplayFailed(name)
		n.log.WarnContext(ctx, "toast display update failed",
			logger.Component("toast"),
			logger.ToastID(snap.ID),
			logger.PageID(PageFrom(ctx)),
			logger.State(string(snap.State)),
			logger.Error(err),
		)
	}

	if t.lifecycle.Final() {
		lifetime := n.clock.Now().Sub(snap.CreatedAt)
		n.recorder.ToastRemoved(lifetime)
		n.log.DebugContext(ctx, "toast removed",
			logger.Component("toast"),
			logger.ToastID(snap.ID),
			logger.Duration(lifetime),
		)
	}
}
