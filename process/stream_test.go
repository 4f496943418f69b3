package process_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/prockit/command"
	perrors "github.com/kbukum/prockit/errors"
	"github.com/kbukum/prockit/process"
)

func popen(t *testing.T, args ...string) *process.Stream {
	t.Helper()
	s, err := process.Popen(context.Background(), command.New(args...))
	if err != nil {
		t.Fatalf("popen: %v", err)
	}
	return s
}

func TestPopenAsText(t *testing.T) {
	s := popen(t, "echo", "hello")
	text, err := s.AsText()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "hello\n" {
		t.Fatalf("expected 'hello\\n', got %q", text)
	}
}

func TestPopenCombinesStdoutAndStderr(t *testing.T) {
	s := popen(t, "sh", "-c", "echo out; echo err >&2")
	text, err := s.AsText()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "out") || !strings.Contains(text, "err") {
		t.Fatalf("expected both streams in output, got %q", text)
	}
}

func TestPopenChildGetsNoInput(t *testing.T) {
	// cat would block forever if stdin were left open
	done := make(chan struct{})
	go func() {
		defer close(done)
		s := popen(t, "cat")
		text, err := s.AsText()
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if text != "" {
			t.Errorf("expected empty output, got %q", text)
		}
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("cat did not see EOF on stdin")
	}
}

func TestWaitForIdempotent(t *testing.T) {
	s := popen(t, "sh", "-c", "exit 3")
	if _, err := io.ReadAll(s); err != nil {
		t.Fatalf("drain: %v", err)
	}
	for i := 0; i < 3; i++ {
		status, err := s.WaitFor()
		if err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
		if status != 3 {
			t.Fatalf("call %d: expected exit 3, got %d", i, status)
		}
	}
}

func TestVerifyOrDieSuccess(t *testing.T) {
	s := popen(t, "echo", "fine")
	text, err := s.VerifyOrDie("should not fail")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "fine\n" {
		t.Fatalf("expected 'fine\\n', got %q", text)
	}
}

func TestVerifyOrDieFailure(t *testing.T) {
	s := popen(t, "sh", "-c", "echo boom; exit 1")
	_, err := s.VerifyOrDie("failed")
	if err == nil {
		t.Fatal("expected verification error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "failed") || !strings.Contains(msg, "boom") {
		t.Fatalf("expected diagnostic and captured output in %q", msg)
	}
	appErr, ok := perrors.AsAppError(err)
	if !ok || appErr.Code != perrors.ErrCodeNonZeroExit {
		t.Fatalf("expected NON_ZERO_EXIT, got %v", err)
	}
}

func TestWithErrorCheckCleanExit(t *testing.T) {
	s := popen(t, "printf", "ok")
	data, err := io.ReadAll(s.WithErrorCheck())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "ok" {
		t.Fatalf("expected 'ok', got %q", data)
	}
}

func TestWithErrorCheckNonZeroExit(t *testing.T) {
	s := popen(t, "sh", "-c", "printf data; exit 3")
	data, err := io.ReadAll(s.WithErrorCheck())
	if err == nil {
		t.Fatal("expected read error at end-of-stream")
	}
	if string(data) != "data" {
		t.Fatalf("bytes produced before the failure should be returned, got %q", data)
	}
	if !strings.Contains(err.Error(), "exit code=3") {
		t.Fatalf("expected exit code in error, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), s.DisplayName()) {
		t.Fatalf("expected display name %q in error %q", s.DisplayName(), err.Error())
	}
}

func TestDisplayName(t *testing.T) {
	s := popen(t, "echo", "a value")
	if got := s.DisplayName(); got != `echo "a value"` {
		t.Fatalf("expected quoted rendering, got %q", got)
	}
	if _, err := s.AsText(); err != nil {
		t.Fatalf("drain: %v", err)
	}

	fallback := s.WithDisplayName("").DisplayName()
	if !strings.HasPrefix(fallback, "process-") {
		t.Fatalf("expected generated fallback name, got %q", fallback)
	}
}

func TestPopenWaitInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ln := process.NewLauncher(process.Config{GracePeriod: 500 * time.Millisecond})
	s, err := ln.Popen(ctx, command.New("sleep", "10"))
	if err != nil {
		t.Fatalf("popen: %v", err)
	}

	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	if _, err := io.ReadAll(s); err != nil {
		t.Fatalf("drain: %v", err)
	}
	_, werr := s.WaitFor()
	appErr, ok := perrors.AsAppError(werr)
	if !ok || appErr.Code != perrors.ErrCodeWaitInterrupted {
		t.Fatalf("expected WAIT_INTERRUPTED, got %v", werr)
	}
}
