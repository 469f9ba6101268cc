package service

import "time"

// SetClock : подмена текущего времени в тестах
func SetClock(c *StravaOAuthClient, now func() time.Time) {
	c.now = now
}
