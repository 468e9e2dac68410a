package toast

import "time"

// Clock schedules the deferred stages of a toast.
type Clock interface {
	Now() time.Time
	// AfterFunc runs f once after d. Scheduled calls cannot be cancelled.
	AfterFunc(d time.Duration, f func())
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}
