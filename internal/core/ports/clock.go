package ports

import "time"

// Clock supplies "now" to everything that derives state from dates, so a
// real feed or a fixed test time can be swapped in without touching the
// consumers.
type Clock interface {
	Now() time.Time
}
