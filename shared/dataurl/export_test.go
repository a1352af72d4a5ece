package dataurl

import "time"

func SetNow(fn func() time.Time) (restore func()) {
	previous := now
	now = fn

	return func() { now = previous }
}
