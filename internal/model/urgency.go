package model

import "time"

type Urgency string

const (
	UrgencyOverdue Urgency = "Overdue"
	UrgencyUrgent  Urgency = "Urgent"
	UrgencyNormal  Urgency = "Normal"
)

const urgentWindow = 24 * time.Hour

// ClassifyUrgency buckets a deadline against the current instant:
// Overdue when the deadline is at or before now, Urgent when less than
// 24 hours remain, Normal otherwise.
func ClassifyUrgency(now, deadline time.Time) Urgency {
	remaining := deadline.Sub(now)
	switch {
	case remaining <= 0:
		return UrgencyOverdue
	case remaining < urgentWindow:
		return UrgencyUrgent
	default:
		return UrgencyNormal
	}
}
