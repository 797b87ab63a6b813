package scheduler

import (
	"testing"
	"time"

	"github.com/sandeepkv93/taskdesk/internal/model"
)

func TestEngineEmitsInTriggerOrder(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now()
	if err := engine.Schedule(Alert{TaskID: 2, Title: "later", TriggerAt: now.Add(80 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule later: %v", err)
	}
	if err := engine.Schedule(Alert{TaskID: 1, Title: "sooner", TriggerAt: now.Add(20 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule sooner: %v", err)
	}

	first := waitAlert(t, engine.C(), time.Second)
	second := waitAlert(t, engine.C(), time.Second)
	if first.Title != "sooner" || second.Title != "later" {
		t.Fatalf("unexpected order: first=%s second=%s", first.Title, second.Title)
	}
}

func TestEngineNonBlockingDropsWhenConsumerIsSlow(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	defer engine.Stop()

	trigger := time.Now().Add(20 * time.Millisecond)
	for i := 0; i < 25; i++ {
		if err := engine.Schedule(Alert{TaskID: int64(i), Title: "evt", TriggerAt: trigger}); err != nil {
			t.Fatalf("schedule alert: %v", err)
		}
	}

	time.Sleep(120 * time.Millisecond)
	if engine.Dropped() == 0 {
		t.Fatalf("expected dropped alerts > 0, got %d", engine.Dropped())
	}
}

func TestScheduleValidatesTriggerTime(t *testing.T) {
	engine := NewEngine(1)
	if err := engine.Schedule(Alert{TaskID: 1}); err != ErrInvalidTriggerTime {
		t.Fatalf("expected ErrInvalidTriggerTime, got %v", err)
	}
}

func TestScheduleTaskSkipsPastTriggers(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now()

	// Deadline within the urgent window: only the overdue alert remains.
	if err := engine.ScheduleTask(1, "due soon", now.Add(30*time.Millisecond), now); err != nil {
		t.Fatalf("schedule task: %v", err)
	}
	got := waitAlert(t, engine.C(), time.Second)
	if got.Urgency != model.UrgencyOverdue || got.TaskID != 1 {
		t.Fatalf("unexpected alert: %+v", got)
	}

	// Deadline already past: nothing gets queued at all.
	if err := engine.ScheduleTask(2, "already gone", now.Add(-time.Hour), now); err != nil {
		t.Fatalf("schedule past task: %v", err)
	}
	select {
	case a := <-engine.C():
		t.Fatalf("expected no alert for past deadline, got %+v", a)
	case <-time.After(60 * time.Millisecond):
	}
}

func waitAlert(t *testing.T, ch <-chan Alert, timeout time.Duration) Alert {
	t.Helper()
	select {
	case a := <-ch:
		return a
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for alert")
		return Alert{}
	}
}
