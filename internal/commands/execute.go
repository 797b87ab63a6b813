package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Sort    func(SortArgs) (Result, error)
	Refresh func() (Result, error)
	Logout  func() (Result, error)
	Quit    func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeSort:
		if handlers.Sort == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "sort handler not configured"}
		}
		return handlers.Sort(*cmd.Sort)
	case TypeRefresh:
		if handlers.Refresh == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "refresh handler not configured"}
		}
		return handlers.Refresh()
	case TypeLogout:
		if handlers.Logout == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "logout handler not configured"}
		}
		return handlers.Logout()
	case TypeQuit:
		if handlers.Quit == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "quit handler not configured"}
		}
		return handlers.Quit()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
