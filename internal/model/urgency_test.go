package model

import (
	"testing"
	"time"
)

func TestClassifyUrgency(t *testing.T) {
	now := time.Date(2024, 12, 25, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		deadline time.Time
		want     Urgency
	}{
		{"an hour past", time.Date(2024, 12, 25, 9, 0, 0, 0, time.UTC), UrgencyOverdue},
		{"exactly now", now, UrgencyOverdue},
		{"later today", time.Date(2024, 12, 25, 20, 0, 0, 0, time.UTC), UrgencyUrgent},
		{"just inside the window", now.Add(24*time.Hour - time.Second), UrgencyUrgent},
		{"exactly 24h out", now.Add(24 * time.Hour), UrgencyNormal},
		{"in two days", time.Date(2024, 12, 27, 10, 0, 0, 0, time.UTC), UrgencyNormal},
	}

	for _, tc := range cases {
		if got := ClassifyUrgency(now, tc.deadline); got != tc.want {
			t.Fatalf("%s: ClassifyUrgency = %s, want %s", tc.name, got, tc.want)
		}
	}
}
