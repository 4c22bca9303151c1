package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeAdd     Type = "add"
	TypeDone    Type = "done"
	TypeMove    Type = "move"
	TypeDelete  Type = "del"
	TypeList    Type = "list"
	TypeOverdue Type = "overdue"
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

type AddArgs struct {
	Title string
}

// DoneArgs and the other target-bearing args accept "selected" to act
// on the task under the cursor.
type DoneArgs struct {
	Target string
}

type MoveArgs struct {
	Target string
	Status string
}

type DeleteArgs struct {
	Target string
}

type ListArgs struct {
	Name string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Done   *DoneArgs
	Move   *MoveArgs
	Delete *DeleteArgs
	List   *ListArgs
}

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
	case TypeAdd:
		return parseAdd(input, args)
	case TypeDone:
		return parseDone(input, args)
	case TypeMove:
		return parseMove(input, args)
	case TypeDelete:
		return parseDelete(input, args)
	case TypeList:
		return parseList(input, args)
	case TypeOverdue:
		return Command{Type: TypeOverdue, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Title: title}}, nil
}

func parseDone(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "done requires a target"}
	}
	return Command{Type: TypeDone, Raw: raw, Done: &DoneArgs{Target: strings.ToLower(args[0])}}, nil
}

func parseMove(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "move requires a target and a status"}
	}
	status := strings.ToLower(args[1])
	switch status {
	case "todo", "doing", "done":
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown status: %s", status)}
	}
	return Command{Type: TypeMove, Raw: raw, Move: &MoveArgs{Target: strings.ToLower(args[0]), Status: status}}, nil
}

func parseDelete(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "del requires a target"}
	}
	return Command{Type: TypeDelete, Raw: raw, Delete: &DeleteArgs{Target: strings.ToLower(args[0])}}, nil
}

func parseList(raw string, args []string) (Command, error) {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "list requires a name"}
	}
	return Command{Type: TypeList, Raw: raw, List: &ListArgs{Name: name}}, nil
}
