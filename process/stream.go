package process

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"
	"sync"

	perrors "github.com/kbukum/prockit/errors"
)

// Stream is the reader end of the combined-output pipe of a running
// process. It is a single forward-only byte sequence: once it reports
// end-of-stream it cannot be restarted, and it is tied one-to-one to the
// lifetime of the process behind it.
type Stream struct {
	cmd    *exec.Cmd
	pipe   *os.File
	ctx    context.Context
	cancel context.CancelFunc

	// displayName describes the process in error diagnostics only.
	displayName string
	runID       string

	waitOnce sync.Once
	status   int
	waitErr  error
}

func newStream(ctx context.Context, cancel context.CancelFunc, c *exec.Cmd, pipe *os.File, runID string) *Stream {
	return &Stream{cmd: c, pipe: pipe, ctx: ctx, cancel: cancel, runID: runID}
}

// WithDisplayName sets the human-readable name used in error diagnostics
// and returns the receiver.
func (s *Stream) WithDisplayName(name string) *Stream {
	s.displayName = name
	return s
}

// DisplayName returns the configured display name, or a generated run
// identifier when none was set.
func (s *Stream) DisplayName() string {
	if s.displayName != "" {
		return s.displayName
	}
	return "process-" + s.runID
}

// Process returns the underlying OS process handle.
func (s *Stream) Process() *os.Process {
	if s.cmd == nil {
		return nil
	}
	return s.cmd.Process
}

// Read reads from the combined output pipe. It returns io.EOF once the
// child has closed its side.
func (s *Stream) Read(p []byte) (int, error) {
	return s.pipe.Read(p)
}

// Close closes the reader end of the pipe. It does not wait for or kill
// the process; the exit status still has to be collected with WaitFor.
func (s *Stream) Close() error {
	return s.pipe.Close()
}

// WaitFor blocks until the process terminates and returns its exit status.
// It is idempotent: every call returns the same terminal status. A wait cut
// short by context cancellation surfaces as a WAIT_INTERRUPTED (or TIMEOUT)
// error on the same channel as read failures.
func (s *Stream) WaitFor() (int, error) {
	s.waitOnce.Do(func() {
		err := s.cmd.Wait()
		// capture the context state before releasing it; our own cancel
		// must not read as an interrupted wait
		var ctxFailed bool
		if s.ctx != nil {
			ctxFailed = s.ctx.Err() != nil
		}
		if s.cancel != nil {
			s.cancel()
		}
		s.status = s.cmd.ProcessState.ExitCode()

		if ctxFailed {
			s.waitErr = contextErr(s.ctx, s.DisplayName())
			return
		}
		var exitErr *exec.ExitError
		if err != nil && !stderrors.As(err, &exitErr) {
			s.status = -1
			s.waitErr = perrors.Internal(err)
		}
	})
	return s.status, s.waitErr
}

// AsText reads the whole stream to completion, then waits for the process
// so the child is reaped, and returns the accumulated output. Callers must
// not call WaitFor beforehand and expect streaming behavior: draining and
// reaping are coupled here.
func (s *Stream) AsText() (string, error) {
	data, err := io.ReadAll(s)
	if err != nil {
		return "", err
	}
	if _, err := s.WaitFor(); err != nil {
		return "", err
	}
	return string(data), nil
}

// VerifyOrDie reads the whole stream and verifies the exit status. A zero
// exit returns the captured text. A non-zero exit returns an error whose
// message is the caller-supplied diagnostic followed by the full captured
// output; it is never silently swallowed.
func (s *Stream) VerifyOrDie(message string) (string, error) {
	text, err := s.AsText()
	if err != nil {
		return "", err
	}
	status, err := s.WaitFor()
	if err != nil {
		return "", err
	}
	if status == 0 {
		return text, nil
	}
	return "", perrors.Verification(message, text, status).
		WithDetail("command", s.DisplayName())
}

// WithErrorCheck decorates the stream so a non-zero exit surfaces as a
// read error. Every read that observes end-of-stream triggers an implicit
// WaitFor; if the exit status is non-zero the read fails with an error
// naming the process and the code, after all successfully produced bytes
// have been returned.
func (s *Stream) WithErrorCheck() io.ReadCloser {
	return &errorCheckReader{stream: s}
}

type errorCheckReader struct {
	stream *Stream
}

func (r *errorCheckReader) Read(p []byte) (int, error) {
	n, err := r.stream.Read(p)
	if err == io.EOF {
		if cerr := r.check(); cerr != nil {
			return n, cerr
		}
	}
	return n, err
}

func (r *errorCheckReader) Close() error {
	return r.stream.Close()
}

func (r *errorCheckReader) check() error {
	status, err := r.stream.WaitFor()
	if err != nil {
		return err
	}
	if status != 0 {
		return perrors.NonZeroExit(r.stream.DisplayName(), status)
	}
	return nil
}
