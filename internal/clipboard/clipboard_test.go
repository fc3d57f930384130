package clipboard

import (
	"errors"
	"runtime"
	"testing"
)

func TestCopy_HelperReceivesInput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on a POSIX stdin-consuming command")
	}

	// "cat" stands in for yank: reads stdin, exits zero.
	c := New("cat")
	if err := c.Copy("some snippet content\n"); err != nil {
		t.Fatalf("Copy() error = %v", err)
	}
}

func TestCopy_MissingHelper(t *testing.T) {
	c := New("definitely-not-a-real-helper-binary")

	err := c.Copy("content")
	if !errors.Is(err, ErrHelperNotFound) {
		t.Errorf("Copy() error = %v, want ErrHelperNotFound", err)
	}
}

func TestCopy_HelperFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on a POSIX command")
	}

	// "false" exists but exits non-zero: a failure, not a missing helper.
	c := New("false")
	err := c.Copy("content")
	if err == nil {
		t.Fatal("Copy() expected error from failing helper")
	}
	if errors.Is(err, ErrHelperNotFound) {
		t.Error("exit failure should not be reported as a missing helper")
	}
}
