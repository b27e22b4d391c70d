package domain

import "time"

// DefaultStalePeriod is how long an account stays "active" after its last
// balance change when no period is configured.
const DefaultStalePeriod = 10 * 24 * time.Hour

// Int64Ptr returns a pointer to v. Handy for optional ids and quantities.
func Int64Ptr(v int64) *int64 {
	return &v
}

// StringPtr returns a pointer to s, or nil when s is empty.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
