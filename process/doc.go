// Package process launches commands accumulated by the command package and
// exposes their output and exit status.
//
// Two launch modes are provided. System runs the child with the parent's
// standard streams and blocks until it exits, returning the exit status.
// Popen redirects stdout and stderr into a single combined pipe and returns
// a Stream over it; the child receives no input.
//
//	out, err := process.Popen(ctx, command.New("git", "status"))
//	if err != nil {
//		return err
//	}
//	text, err := out.VerifyOrDie("git status failed")
//
// A Stream is a single forward-only byte sequence tied one-to-one to its
// process. Callers must eventually collect the exit status (WaitFor, AsText,
// or VerifyOrDie) so the OS wait handle is not leaked.
package process
