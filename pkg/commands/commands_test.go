package commands

import (
	"testing"
)

func TestCommandTree(t *testing.T) {
	root := New()
	for _, name := range []string{"ui", "add", "history", "delete", "clear", "catalog", "boost", "stats", "info", "migrate", "mcp", "version", "completion"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd == root {
			t.Fatalf("expected %q to be registered: %v", name, err)
		}
	}
	for alias, want := range map[string]string{"ls": "history", "rm": "delete", "key": "catalog"} {
		cmd, _, err := root.Find([]string{alias})
		if err != nil || cmd.Name() != want {
			t.Fatalf("expected alias %q to resolve to %q", alias, want)
		}
	}
	for _, flag := range []string{"path", "backend"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Fatalf("expected persistent flag --%s", flag)
		}
	}
}
