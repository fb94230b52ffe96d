package commands_test

import (
	"bytes"
	"io"
	"testing"

	"apple/cmd/apple/commands"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := commands.NewRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRender_AllFlags(t *testing.T) {
	got, err := run(t, "render", "--owner", "Alice", "--color", "Red", "--weight", "150")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "Alice : Red : 150\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestRender_NoFlags_PrintsFreshRecord(t *testing.T) {
	got, err := run(t, "render")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := " :  : 0\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestRender_NegativeWeight(t *testing.T) {
	got, err := run(t, "render", "--owner", "Bob", "--weight=-5")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "Bob :  : -5\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestRender_BadWeight_Fails(t *testing.T) {
	if _, err := run(t, "render", "--weight", "heavy"); err == nil {
		t.Fatal("expected error for non-integer weight")
	}
}

func TestRender_ExtraArgs_Fails(t *testing.T) {
	if _, err := run(t, "render", "stray"); err == nil {
		t.Fatal("expected error for positional argument")
	}
}
