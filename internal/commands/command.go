package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeSort    Type = "sort"
	TypeRefresh Type = "refresh"
	TypeLogout  Type = "logout"
	TypeQuit    Type = "quit"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type SortArgs struct {
	Option string
}

type Command struct {
	Type Type
	Raw  string
	Sort *SortArgs
}

// Parse reads a palette command, with or without the leading slash.
func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeSort:
		return parseSort(input, args)
	case TypeRefresh:
		return Command{Type: TypeRefresh, Raw: input}, nil
	case TypeLogout:
		return Command{Type: TypeLogout, Raw: input}, nil
	case TypeQuit:
		return Command{Type: TypeQuit, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseSort(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "sort requires an option: deadline or priority"}
	}
	option := strings.ToLower(args[0])
	if option != "deadline" && option != "priority" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown sort option: %s", option)}
	}
	return Command{Type: TypeSort, Raw: raw, Sort: &SortArgs{Option: option}}, nil
}
