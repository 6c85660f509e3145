//go:build !windows

package jhash_test

import (
	"strings"
	"testing"

	. "src.jhash.dev/pkg/jhash"
	"src.jhash.dev/pkg/prog/progtest"
	"src.jhash.dev/pkg/testutil"
)

func TestColorAuto_Terminal(t *testing.T) {
	testutil.Unsetenv(t, "NO_COLOR")
	exit, stdout := progtest.RunWithTTY(t, Program{}, "value", "a", "b")
	if exit != 0 {
		t.Errorf("exit status %v, want 0", exit)
	}
	if !strings.Contains(stdout, "\x1b[36ma\x1b[") {
		t.Errorf("stdout %q has no colored label", stdout)
	}
}

func TestColorAuto_NoColorEnv(t *testing.T) {
	testutil.Setenv(t, "NO_COLOR", "1")
	_, stdout := progtest.RunWithTTY(t, Program{}, "value", "a", "b")
	if strings.Contains(stdout, "\x1b[") {
		t.Errorf("stdout %q is colored despite NO_COLOR", stdout)
	}
}
