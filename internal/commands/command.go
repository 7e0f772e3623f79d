package commands

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/tasktracker/internal/model"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeFilter Type = "filter"
	TypeSearch Type = "search"
	TypeTheme  Type = "theme"
	TypeToggle Type = "toggle"
	TypeDelete Type = "delete"
	TypeLogout Type = "logout"
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

// AddArgs is the parsed form of
//
//	add <title words...> [p:low|medium|high] [due:YYYY-MM-DD] [cat:<label>]
type AddArgs struct {
	Draft model.AddDraft
}

type FilterArgs struct {
	Filter model.Filter
}

// SearchArgs with an empty Query clears the search.
type SearchArgs struct {
	Query string
}

// ThemeArgs with an empty Theme toggles.
type ThemeArgs struct {
	Theme model.Theme
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Filter *FilterArgs
	Search *SearchArgs
	Theme  *ThemeArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if strings.HasPrefix(raw, ":") || strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(raw[1:])
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
	case TypeFilter:
		return parseFilter(input, args)
	case TypeSearch:
		return Command{Type: TypeSearch, Raw: input, Search: &SearchArgs{Query: strings.Join(args, " ")}}, nil
	case TypeTheme:
		return parseTheme(input, args)
	case TypeToggle, TypeDelete, TypeLogout:
		if len(args) > 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s takes no arguments", head)}
		}
		return Command{Type: Type(head), Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	var draft model.AddDraft
	words := make([]string, 0, len(args))
	for _, arg := range args {
		lower := strings.ToLower(arg)
		switch {
		case strings.HasPrefix(lower, "p:"):
			p, err := model.ParsePriority(arg[len("p:"):])
			if err != nil {
				return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error()}
			}
			draft.Priority = p
		case strings.HasPrefix(lower, "due:"):
			due, err := model.ParseDueDate(arg[len("due:"):])
			if err != nil {
				return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error()}
			}
			draft.DueDate = due
		case strings.HasPrefix(lower, "cat:"):
			draft.Category = arg[len("cat:"):]
		default:
			words = append(words, arg)
		}
	}
	draft.Title = strings.TrimSpace(strings.Join(words, " "))
	if draft.Title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Draft: draft}}, nil
}

func parseFilter(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "filter requires one of: all, pending, completed"}
	}
	f, err := model.ParseFilter(args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error()}
	}
	return Command{Type: TypeFilter, Raw: raw, Filter: &FilterArgs{Filter: f}}, nil
}

func parseTheme(raw string, args []string) (Command, error) {
	if len(args) == 0 || strings.EqualFold(args[0], "toggle") {
		return Command{Type: TypeTheme, Raw: raw, Theme: &ThemeArgs{}}, nil
	}
	th, err := model.ParseTheme(args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error()}
	}
	return Command{Type: TypeTheme, Raw: raw, Theme: &ThemeArgs{Theme: th}}, nil
}
