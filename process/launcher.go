package process

import (
	"context"
	stderrors "errors"
	"maps"
	"os"
	"os/exec"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/prockit/command"
	perrors "github.com/kbukum/prockit/errors"
	"github.com/kbukum/prockit/logger"
)

// Launcher builds and starts child processes from command builders.
// The zero-config launcher behind the package-level System and Popen is
// sufficient for most callers; construct one explicitly to set defaults or
// inject a logger.
type Launcher struct {
	cfg Config
	log *logger.Logger
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithLogger sets the logger used for launch diagnostics. By default the
// launcher uses the registered "process" component logger.
func WithLogger(l *logger.Logger) Option {
	return func(ln *Launcher) { ln.log = l }
}

// NewLauncher creates a Launcher with the given defaults.
func NewLauncher(cfg Config, opts ...Option) *Launcher {
	cfg.ApplyDefaults()
	ln := &Launcher{cfg: cfg}
	for _, opt := range opts {
		opt(ln)
	}
	if ln.log == nil {
		ln.log = logger.Get("process")
	}
	return ln
}

// System executes the command with the child inheriting the parent's stdin,
// stdout, and stderr, and blocks until it exits. The exit status is
// returned as a value; a non-zero exit is not an error. Spawn refusal and
// an interrupted wait are.
func (ln *Launcher) System(ctx context.Context, b *command.Builder) (int, error) {
	ctx, cancel := ln.deadline(ctx)
	defer cancel()

	c, err := ln.buildCmd(ctx, b)
	if err != nil {
		return -1, err
	}
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	runID := uuid.NewString()
	start := time.Now()
	ln.log.Debug("executing command", logger.Fields(
		logger.FieldCommand, b.QuotedString(),
		logger.FieldRunID, runID,
	))

	if err := c.Start(); err != nil {
		return -1, perrors.SpawnFailed(c.Path, err)
	}

	waitErr := c.Wait()
	status := c.ProcessState.ExitCode()
	ln.log.Debug("command finished", logger.Fields(
		logger.FieldRunID, runID,
		logger.FieldExitCode, status,
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))

	if ctx.Err() != nil {
		return status, contextErr(ctx, b.QuotedString())
	}
	var exitErr *exec.ExitError
	if waitErr == nil || stderrors.As(waitErr, &exitErr) {
		return status, nil
	}
	return -1, perrors.Internal(waitErr)
}

// Popen executes the command with stdout and stderr merged into a single
// pipe, in OS arrival order, and returns a Stream over that pipe. The child
// receives no input: its stdin reads end-of-file immediately.
func (ln *Launcher) Popen(ctx context.Context, b *command.Builder) (*Stream, error) {
	ctx, cancel := ln.deadline(ctx)

	c, err := ln.buildCmd(ctx, b)
	if err != nil {
		cancel()
		return nil, err
	}

	pr, pw, err := os.Pipe()
	if err != nil {
		cancel()
		return nil, perrors.Internal(err)
	}
	c.Stdout = pw
	c.Stderr = pw
	// c.Stdin stays nil: the child reads from the null device

	runID := uuid.NewString()
	ln.log.Debug("executing command", logger.Fields(
		logger.FieldCommand, b.QuotedString(),
		logger.FieldRunID, runID,
	))

	if err := c.Start(); err != nil {
		pr.Close()
		pw.Close()
		cancel()
		return nil, perrors.SpawnFailed(c.Path, err)
	}
	// the write end now belongs to the child; keeping it open in the parent
	// would prevent the read end from ever seeing EOF
	pw.Close()

	return newStream(ctx, cancel, c, pr, runID).WithDisplayName(b.QuotedString()), nil
}

// System runs the command through a default launcher, inheriting the
// parent's standard streams, and returns the exit status.
func System(ctx context.Context, b *command.Builder) (int, error) {
	return NewLauncher(Config{}).System(ctx, b)
}

// Popen runs the command through a default launcher and returns a Stream
// over its combined output.
func Popen(ctx context.Context, b *command.Builder) (*Stream, error) {
	return NewLauncher(Config{}).Popen(ctx, b)
}

// buildCmd turns a builder into a started-ready exec.Cmd. The builder is
// read once here; later mutation of it does not affect the invocation.
func (ln *Launcher) buildCmd(ctx context.Context, b *command.Builder) (*exec.Cmd, error) {
	if b == nil || len(b.Args()) == 0 {
		return nil, perrors.InvalidCommand("empty argument list")
	}

	argv := b.Argv()
	c := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // dynamic argv is the purpose of this package
	c.Dir = b.Dir()
	c.Env = mergeEnv(b.Env)

	// Process group so cancellation reaches the whole tree; SIGTERM first,
	// SIGKILL after the grace period.
	setSysProcAttr(c)
	c.Cancel = func() error { return terminate(c) }
	c.WaitDelay = ln.cfg.GracePeriod

	return c, nil
}

// deadline applies the configured default timeout, if any.
func (ln *Launcher) deadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if ln.cfg.Timeout > 0 {
		return context.WithTimeout(ctx, ln.cfg.Timeout)
	}
	return context.WithCancel(ctx)
}

// mergeEnv merges the builder's overlay with the parent environment.
func mergeEnv(overlay map[string]string) []string {
	if len(overlay) == 0 {
		return nil // inherit parent env
	}
	env := os.Environ()
	for _, k := range slices.Sorted(maps.Keys(overlay)) {
		env = append(env, k+"="+overlay[k])
	}
	return env
}

// contextErr translates a context failure into the error taxonomy so it
// propagates along the same channel as other launch failures.
func contextErr(ctx context.Context, name string) *perrors.AppError {
	if stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
		return perrors.Timeout(name)
	}
	return perrors.WaitInterrupted(ctx.Err())
}
