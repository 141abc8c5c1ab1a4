package commands

import (
	"testing"

	"github.com/spf13/cobra"

	"tableflip.dev/zentask/pkg/commands/options"
	"tableflip.dev/zentask/pkg/task"
)

func TestVerbsRegistered(t *testing.T) {
	root := New()
	for _, path := range [][]string{
		{"add"}, {"done"}, {"rm"}, {"edit"}, {"mv"}, {"ls"}, {"show"},
		{"log"}, {"report"}, {"cal"}, {"use"}, {"settings"}, {"reset"},
		{"remind"}, {"mcp"}, {"ui"}, {"key"}, {"version"}, {"completion"},
		{"project", "add"}, {"project", "ls"}, {"project", "edit"}, {"project", "rm"},
		{"section", "add"}, {"section", "ls"}, {"section", "edit"}, {"section", "rm"},
	} {
		cmd, _, err := root.Find(path)
		if err != nil || cmd == root {
			t.Fatalf("expected %v to be registered, got %v", path, err)
		}
	}
}

func editCommand(to *options.TaskOptions) *cobra.Command {
	cmd := &cobra.Command{Use: "edit"}
	options.AddPlacementArgs(cmd, to)
	options.AddTaskArgs(cmd, to)
	options.AddEditArgs(cmd, to)
	return cmd
}

func TestTaskUpdateOnlyChangedFlags(t *testing.T) {
	to := &options.TaskOptions{}
	cmd := editCommand(to)
	if err := cmd.ParseFlags([]string{"--priority", "h", "--due", "2025-06-28", "--color", "f59e0b", "--repeat", "none"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	u, err := taskUpdate(cmd, to)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if u.Title != nil || u.ProjectID != nil || u.SectionID != nil || u.Notes != nil || u.WorkingDate != nil {
		t.Fatalf("expected unset fields to stay nil, got %+v", u)
	}
	if u.Priority == nil || *u.Priority != task.High {
		t.Fatalf("expected High, got %v", u.Priority)
	}
	if u.DeadlineDate == nil || *u.DeadlineDate != "2025-06-28" {
		t.Fatalf("expected deadline, got %v", u.DeadlineDate)
	}
	if u.Color == nil || *u.Color != "#f59e0b" {
		t.Fatalf("expected normalized color, got %v", u.Color)
	}
	if u.Repeat == nil || *u.Repeat != task.NoRepeat {
		t.Fatalf("expected repeat cleared, got %v", u.Repeat)
	}
}

func TestTaskUpdateRejectsBadValues(t *testing.T) {
	for _, args := range [][]string{
		{"--priority", "urgent"},
		{"--due", "next tuesday"},
		{"--repeat", "hourly"},
		{"--color", "not-a-color"},
	} {
		to := &options.TaskOptions{}
		cmd := editCommand(to)
		if err := cmd.ParseFlags(args); err != nil {
			t.Fatalf("parse %v: %v", args, err)
		}
		if _, err := taskUpdate(cmd, to); err == nil {
			t.Fatalf("expected an error for %v", args)
		}
	}
}

func TestEmptyColorClears(t *testing.T) {
	to := &options.TaskOptions{}
	cmd := editCommand(to)
	if err := cmd.ParseFlags([]string{"--color", ""}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	u, err := taskUpdate(cmd, to)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if u.Color == nil || *u.Color != "" {
		t.Fatalf("expected an empty color override, got %v", u.Color)
	}
}
