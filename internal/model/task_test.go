package model

import (
	"errors"
	"testing"
	"time"
)

func TestPriorityRankOrder(t *testing.T) {
	if PriorityHigh.Rank() != 1 || PriorityMedium.Rank() != 2 || PriorityLow.Rank() != 3 {
		t.Fatalf("unexpected ranks: %d %d %d", PriorityHigh.Rank(), PriorityMedium.Rank(), PriorityLow.Rank())
	}
	if Priority("Critical").IsValid() {
		t.Fatal("Critical should not be a valid priority")
	}
}

func TestParseDeadlineLayout(t *testing.T) {
	got, err := ParseDeadline("25/12/2024 11:30 PM")
	if err != nil {
		t.Fatalf("parse deadline: %v", err)
	}
	want := time.Date(2024, 12, 25, 23, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("parsed %v, want %v", got, want)
	}

	if _, err := ParseDeadline("2024-12-25 23:30"); err == nil {
		t.Fatal("expected ISO-style text to be rejected")
	}
}

func TestTaskValidate(t *testing.T) {
	deadline := time.Date(2024, 12, 25, 23, 30, 0, 0, time.Local)
	task := Task{
		Title:    "Submit report",
		Priority: PriorityHigh,
		Deadline: deadline,
		Duration: 30,
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got: %v", err)
	}

	task.Priority = Priority("Whenever")
	err := task.Validate()
	if err == nil || !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got: %v", err)
	}

	task.Priority = PriorityLow
	task.Duration = 0
	if err := task.Validate(); err == nil {
		t.Fatal("expected error for zero duration")
	}
}
