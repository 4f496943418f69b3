//go:build windows

package process

import "os/exec"

// setSysProcAttr is a no-op on Windows; process groups via Setpgid do not
// exist there.
func setSysProcAttr(_ *exec.Cmd) {}

// terminate kills the child directly; Windows has no SIGTERM.
func terminate(c *exec.Cmd) error {
	if c.Process == nil {
		return nil
	}
	return c.Process.Kill()
}
