package job

import (
	"math"
	"time"
)

// Urgency buckets drive the deadline coloring in clients. The thresholds are
// fixed contract values, not derived.
type Urgency string

const (
	UrgencyNone    Urgency = "none"    // no deadline set
	UrgencyOverdue Urgency = "overdue" // deadline passed
	UrgencyUrgent  Urgency = "urgent"  // 0..2 days left
	UrgencyWarning Urgency = "warning" // 3..7 days left
	UrgencySafe    Urgency = "safe"    // more than 7 days left
)

// DaysUntil returns the whole days between now and the deadline, rounded up.
// Negative values mean the deadline has passed. A job without a deadline
// yields nil, which callers must treat as neutral urgency.
func DaysUntil(deadline *time.Time, now time.Time) *int {
	if deadline == nil {
		return nil
	}
	days := int(math.Ceil(deadline.Sub(now).Hours() / 24))
	return &days
}

// ClassifyUrgency maps a DaysUntil result onto an urgency bucket.
func ClassifyUrgency(days *int) Urgency {
	switch {
	case days == nil:
		return UrgencyNone
	case *days < 0:
		return UrgencyOverdue
	case *days <= 2:
		return UrgencyUrgent
	case *days <= 7:
		return UrgencyWarning
	default:
		return UrgencySafe
	}
}
