package workspace

import "time"

// Banner is a transient notification shown at the top of the frame.
// Gen is a monotonic generation number: expiry is only honored for the
// generation it was scheduled against, so a timer left over from an
// earlier banner can never dismiss a newer one.
type Banner struct {
	Message string
	TTL     time.Duration
	Gen     uint64
}
