package toast

import "time"

// Display stages reported to Recorder.DisplayFailed.
const (
	stageAttach = "attach"
	stageFade   = "fade"
	stageDetach = "detach"
)

// Recorder observes toast activity. Implementations must be safe for
// concurrent use: the deferred stages call it from timer goroutines.
type Recorder interface {
	ToastShown(category string)
	ToastRemoved(lifetime time.Duration)
	DisplayFailed(stage string)
}

type nopRecorder struct{}

func (nopRecorder) ToastShown(string)          {}
func (nopRecorder) ToastRemoved(time.Duration) {}
func (nopRecorder) DisplayFailed(string)       {}
