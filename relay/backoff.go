package relay

import "time"

// BackoffPolicy maps a consecutive failure count to a wait. Counts past the
// end of the table reuse the last entry.
type BackoffPolicy struct {
	Intervals []time.Duration
}

var ConsumeRetryPolicy = BackoffPolicy{
	[]time.Duration{
		1 * time.Second,
		5 * time.Second,
		10 * time.Second,
		30 * time.Second,
	},
}

func (b BackoffPolicy) Duration(n int) time.Duration {
	if len(b.Intervals) == 0 {
		return 0
	}

	if n < 0 {
		n = 0
	}

	if n >= len(b.Intervals) {
		n = len(b.Intervals) - 1
	}

	return b.Intervals[n]
}
