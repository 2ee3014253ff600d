package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestCommandEndToEnd(t *testing.T) {
	var out bytes.Buffer

	cmd := newRootCmd(func() int { return 42 })
	cmd.SetIn(strings.NewReader("abc\n10\n99\n42\n"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected a win, got error: %v", err)
	}

	want := transcript(
		msgWelcome,
		msgPrompt, msgReprompt,
		msgPrompt, "Your guess: 10", msgTooSmall,
		msgPrompt, "Your guess: 99", msgTooBig,
		msgPrompt, "Your guess: 42", msgWin,
	)
	if got := out.String(); got != want {
		t.Errorf("got output\n%q\nwant\n%q", got, want)
	}
}

func TestCommandFailsOnClosedInput(t *testing.T) {
	cmd := newRootCmd(func() int { return 42 })
	cmd.SetIn(strings.NewReader("10\n"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	if !errors.Is(err, errInputClosed) {
		t.Fatalf("expected errInputClosed, got %v", err)
	}
}

func TestCommandRejectsArguments(t *testing.T) {
	called := false

	cmd := newRootCmd(func() int {
		called = true
		return 42
	})
	cmd.SetIn(strings.NewReader("42\n"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"42"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected positional arguments to be rejected")
	}
	if called {
		t.Error("secret must not be drawn when the command is rejected")
	}
}

func TestCommandDrawsSecretOncePerRun(t *testing.T) {
	draws := 0

	cmd := newRootCmd(func() int {
		draws++
		return 3
	})
	cmd.SetIn(strings.NewReader("x\n1\n5\ny\n3\n"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draws != 1 {
		t.Errorf("expected one draw, got %d", draws)
	}
}
