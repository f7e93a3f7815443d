package main

import (
	"bytes"
	"strings"
	"testing"
)

func execute(args ...string) (string, error) {
	cmd := newRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRequiresExactlyOneName(t *testing.T) {
	if _, err := execute(); err == nil {
		t.Fatalf("expected error without a name")
	}
	if _, err := execute("one", "two"); err == nil {
		t.Fatalf("expected error with two names")
	}
}

func TestRejectsInvalidName(t *testing.T) {
	_, err := execute("--root", t.TempDir(), "Not-Valid")
	if err == nil {
		t.Fatalf("expected error for invalid name")
	}
	if !strings.Contains(err.Error(), "Not-Valid") {
		t.Fatalf("error should name the offender: %v", err)
	}
}

func TestRejectsReservedName(t *testing.T) {
	_, err := execute("--root", t.TempDir(), "help")
	if err == nil {
		t.Fatalf("expected error for reserved name")
	}
	if !strings.Contains(err.Error(), "reserved") {
		t.Fatalf("expected reserved-name error, got: %v", err)
	}
}
