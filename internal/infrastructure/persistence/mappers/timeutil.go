package mappers

import "time"

// convertMillisToTime converts a Unix millisecond timestamp to a time.Time.
// All persistence models store timestamps as int64 milliseconds.
func convertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
