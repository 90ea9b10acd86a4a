// ABOUTME: Duration formatting utilities for human-facing configuration output
// ABOUTME: Renders lifetimes such as the cache TTL as "1 hour" or "90 seconds"

package duration

import (
	"fmt"
	"time"
)

// Humanize renders d in the largest unit that divides it exactly: hours, minutes or seconds.
// Sub-second remainders are truncated.
func Humanize(d time.Duration) string {
	switch {
	case d >= time.Hour && d%time.Hour == 0:
		return plural(int64(d/time.Hour), "hour")
	case d >= time.Minute && d%time.Minute == 0:
		return plural(int64(d/time.Minute), "minute")
	default:
		return plural(int64(d/time.Second), "second")
	}
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
