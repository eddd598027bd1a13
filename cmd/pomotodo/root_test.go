package main

import (
	"testing"

	"github.com/spf13/cobra"
)

func findCommand(t *testing.T, parent *cobra.Command, name string) *cobra.Command {
	t.Helper()
	for _, cmd := range parent.Commands() {
		if cmd.Name() == name {
			return cmd
		}
	}
	t.Fatalf("command %q not registered on %q", name, parent.Name())
	return nil
}

func TestRootCmd_HasJSONFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("json")
	if flag == nil {
		t.Error("rootCmd should have --json flag")
	}
}

func TestRootCmd_Commands(t *testing.T) {
	for _, name := range []string{"login", "logout", "account", "pomo", "todo"} {
		findCommand(t, rootCmd, name)
	}
}

func TestPomoCmd_Subcommands(t *testing.T) {
	pomo := findCommand(t, rootCmd, "pomo")
	for _, name := range []string{"list", "log", "show", "rename", "rm"} {
		findCommand(t, pomo, name)
	}
}

func TestTodoCmd_Subcommands(t *testing.T) {
	todo := findCommand(t, rootCmd, "todo")
	for _, name := range []string{"list", "add", "show", "edit", "done", "rm", "subs", "sub-add", "sub-done", "sub-rm"} {
		findCommand(t, todo, name)
	}
}

func TestPomoLogCmd_Flags(t *testing.T) {
	for _, name := range []string{"started", "ended", "length", "abandoned"} {
		if pomoLogCmd.Flags().Lookup(name) == nil {
			t.Errorf("pomoLogCmd should have --%s flag", name)
		}
	}
}

func TestTodoListCmd_Flags(t *testing.T) {
	for _, name := range []string{"completed", "all", "completed-after", "completed-before"} {
		if todoListCmd.Flags().Lookup(name) == nil {
			t.Errorf("todoListCmd should have --%s flag", name)
		}
	}
}
