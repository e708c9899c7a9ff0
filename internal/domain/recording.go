package domain

import "time"

// Recording references a stored session recording by object key.
// The object payload itself lives in external storage.
type Recording struct {
	SessionID  string
	Key        string
	RecordedAt time.Time
}
