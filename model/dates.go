package model

import (
	"strconv"
	"time"
)

// Timestamp is millis since epoch, the exchange uses it for "since" and "from" cursors
type Timestamp int64

// MakeTimestamp creates a new Timestamp
func MakeTimestamp(ts int64) *Timestamp {
	timestamp := Timestamp(ts)
	return &timestamp
}

// MakeTimestampFromTime converts a time.Time to a Timestamp, truncating to the millisecond
func MakeTimestampFromTime(t time.Time) *Timestamp {
	return MakeTimestamp(t.UnixNano() / int64(time.Millisecond))
}

// AsInt64 is a convenience method
func (t Timestamp) AsInt64() int64 {
	return int64(t)
}

// AsTime converts the Timestamp to a time.Time in UTC
func (t Timestamp) AsTime() time.Time {
	return time.Unix(0, int64(t)*int64(time.Millisecond)).UTC()
}

// String renders the Timestamp the way it appears in request paths
func (t Timestamp) String() string {
	return strconv.FormatInt(int64(t), 10)
}
