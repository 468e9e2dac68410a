package toast

import (
	"time"

	"github.com/dmitrymomot/toastkit/pkg/statemachine"
)

// State is a point in a notification's lifecycle.
type State string

const (
	StateVisible   State = "visible"
	StateFadingOut State = "fading_out"
	StateRemoved   State = "removed"
)

// Name implements statemachine.State.
func (s State) Name() string { return string(s) }

const (
	eventFade   = statemachine.StringEvent("fade")
	eventRemove = statemachine.StringEvent("remove")
)

// Notification is a snapshot of one toast. Displays receive copies; the
// Notifier alone advances the lifecycle.
type Notification struct {
	ID        string
	Message   string
	Category  string
	Color     string
	State     State
	Fade      time.Duration
	CreatedAt time.Time
}

// Opacity is 1 while visible and 0 once fading has started.
func (n Notification) Opacity() int {
	if n.State == StateVisible {
		return 1
	}
	return 0
}

// toast pairs a notification with the state machine that owns its lifecycle.
type toast struct {
	base      Notification
	lifecycle statemachine.StateMachine
}

func newToast(base Notification) *toast {
	base.State = StateVisible
	return &toast{
		base: base,
		lifecycle: statemachine.MustNew(StateVisible,
			statemachine.WithTransition(StateVisible, StateFadingOut, eventFade),
			statemachine.WithTransition(StateFadingOut, StateRemoved, eventRemove),
		),
	}
}

func (t *toast) snapshot() Notification {
	n := t.base
	n.State = State(t.lifecycle.Current().Name())
	return n
}
