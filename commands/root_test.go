package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir: %v", err)
	}

	got := expandPath("~/attendance.log")
	want := filepath.Join(home, "attendance.log")
	if got != want {
		t.Errorf("expandPath(~/attendance.log) = %q, want %q", got, want)
	}

	abs := expandPath("attendance.log")
	if !filepath.IsAbs(abs) {
		t.Errorf("expandPath should return an absolute path, got %q", abs)
	}
}

func TestRootCommandFlags(t *testing.T) {
	for _, name := range []string{"config", "timezone", "ignore", "output", "debug"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("missing persistent flag %q", name)
		}
	}

	if rootCmd.PersistentFlags().Lookup("output").DefValue != "table" {
		t.Error("default output format should be table")
	}
}

func TestWatchCommandRegistered(t *testing.T) {
	for _, cmd := range rootCmd.Commands() {
		if strings.HasPrefix(cmd.Use, "watch") {
			return
		}
	}
	t.Error("watch subcommand not registered")
}
