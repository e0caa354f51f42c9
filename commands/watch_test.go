package commands

import (
	"strings"
	"testing"
)

func TestRunWatchRejectsStdin(t *testing.T) {
	err := runWatch(watchCmd, []string{"-"})
	if err == nil {
		t.Fatal("watching stdin should fail")
	}
	if !strings.Contains(err.Error(), "stdin") {
		t.Errorf("error should mention stdin, got %q", err)
	}
}

func TestRunWatchRejectsDirectory(t *testing.T) {
	err := runWatch(watchCmd, []string{t.TempDir()})
	if err == nil {
		t.Fatal("watching a directory should fail")
	}
	if !strings.Contains(err.Error(), "not a regular file") {
		t.Errorf("error should name the cause, got %q", err)
	}
}
