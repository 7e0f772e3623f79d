package commands

import (
	"errors"
	"testing"
	"time"

	"github.com/sandeepkv93/tasktracker/internal/model"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{":add pay rent", TypeAdd},
		{"filter pending", TypeFilter},
		{"/search tax docs", TypeSearch},
		{"theme dark", TypeTheme},
		{"toggle", TypeToggle},
		{"DELETE", TypeDelete},
		{"logout", TypeLogout},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseAddOptions(t *testing.T) {
	cmd, err := Parse("add file taxes p:high due:2026-04-15 cat:Finance")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	d := cmd.Add.Draft
	if d.Title != "file taxes" || d.Priority != model.PriorityHigh || d.Category != "Finance" {
		t.Fatalf("unexpected draft: %+v", d)
	}
	if d.DueDate == nil || !d.DueDate.Equal(time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected due date: %v", d.DueDate)
	}
}

func TestParseInvalidArguments(t *testing.T) {
	for _, in := range []string{"add", "add p:high", "add x p:urgent", "add x due:someday", "filter", "filter done", "theme blue", "delete all"} {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
			t.Fatalf("parse %q: expected invalid argument error, got %v", in, err)
		}
	}
}

func TestParseThemeToggle(t *testing.T) {
	for _, in := range []string{"theme", "theme toggle"} {
		cmd, err := Parse(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if cmd.Theme.Theme != "" {
			t.Fatalf("parse %q: expected toggle, got %q", in, cmd.Theme.Theme)
		}
	}
}

func TestParseSearchEmptyClears(t *testing.T) {
	cmd, err := Parse("search")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Search.Query != "" {
		t.Fatalf("expected empty query, got %q", cmd.Search.Query)
	}
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := Parse(":unknown do x")
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestParseEmpty(t *testing.T) {
	for _, in := range []string{"", "  ", ":"} {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeEmptyInput {
			t.Fatalf("parse %q: expected empty input error, got %v", in, err)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse(":add write docs")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Add: func(a AddArgs) (Result, error) {
			called = true
			if a.Draft.Title != "write docs" {
				t.Fatalf("unexpected title: %q", a.Draft.Title)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("filter completed")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
