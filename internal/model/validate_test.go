package model

import (
	"errors"
	"testing"
	"time"
)

func validInput() TaskInput {
	return TaskInput{
		Title:        "Prepare slides",
		Description:  "Quarterly review deck",
		Priority:     "Medium",
		DeadlineText: "25/12/2024 11:30 PM",
		DurationText: "30",
	}
}

func assertKind(t *testing.T, err error, want ValidationKind) {
	t.Helper()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got: %v", err)
	}
	if ve.Kind != want {
		t.Fatalf("kind = %s, want %s", ve.Kind, want)
	}
}

func TestValidateTaskInputSuccess(t *testing.T) {
	fields, err := ValidateTaskInput(validInput())
	if err != nil {
		t.Fatalf("expected valid input, got: %v", err)
	}
	if fields.Duration != 30 || fields.Priority != PriorityMedium {
		t.Fatalf("unexpected fields: %+v", fields)
	}
	want := time.Date(2024, 12, 25, 23, 30, 0, 0, time.Local)
	if !fields.Deadline.Equal(want) {
		t.Fatalf("deadline = %v, want %v", fields.Deadline, want)
	}
	if fields.DeadlineStr != "25/12/2024 11:30 PM" {
		t.Fatalf("deadline text not preserved: %q", fields.DeadlineStr)
	}
}

func TestValidateTaskInputMissingFields(t *testing.T) {
	for _, mutate := range []func(*TaskInput){
		func(in *TaskInput) { in.Title = "" },
		func(in *TaskInput) { in.DeadlineText = "  " },
		func(in *TaskInput) { in.DurationText = "" },
	} {
		in := validInput()
		mutate(&in)
		_, err := ValidateTaskInput(in)
		assertKind(t, err, MissingRequiredField)
	}

	// Description is optional.
	in := validInput()
	in.Description = ""
	if _, err := ValidateTaskInput(in); err != nil {
		t.Fatalf("empty description should be accepted, got: %v", err)
	}
}

func TestValidateTaskInputPriority(t *testing.T) {
	in := validInput()
	in.Priority = "Urgentish"
	_, err := ValidateTaskInput(in)
	assertKind(t, err, InvalidPriority)
}

func TestValidateTaskInputDuration(t *testing.T) {
	for _, bad := range []string{"0", "-5", "abc"} {
		in := validInput()
		in.DurationText = bad
		_, err := ValidateTaskInput(in)
		assertKind(t, err, InvalidDuration)
	}
}

func TestValidateTaskInputDeadlineFormat(t *testing.T) {
	in := validInput()
	in.DeadlineText = "2024-12-25 23:30"
	_, err := ValidateTaskInput(in)
	assertKind(t, err, InvalidDeadlineFormat)
}

func TestValidateTaskInputShortCircuitOrder(t *testing.T) {
	// Several rules broken at once: priority is reported first because
	// required fields are present and priority precedes duration.
	in := validInput()
	in.Priority = "Nope"
	in.DurationText = "abc"
	in.DeadlineText = "not a date"
	_, err := ValidateTaskInput(in)
	assertKind(t, err, InvalidPriority)

	// Missing required field wins over everything else.
	in.Title = ""
	_, err = ValidateTaskInput(in)
	assertKind(t, err, MissingRequiredField)
}
