package process

import "os"

// PidUnknown is returned when the platform or runtime cannot supply a
// process identifier.
const PidUnknown = -1

// Pid returns the OS process identifier of the child behind the stream, or
// PidUnknown when it cannot be determined. It never panics and never
// returns zero.
func (s *Stream) Pid() int {
	if s == nil || s.cmd == nil {
		return PidUnknown
	}
	return PidOf(s.cmd.Process)
}

// PidOf extracts the OS process identifier from a process handle, or
// PidUnknown when the handle is nil or the runtime probe fails. Any panic
// from the probe is converted to the sentinel rather than escaping to the
// caller.
func PidOf(p *os.Process) (pid int) {
	defer func() {
		if recover() != nil {
			pid = PidUnknown
		}
	}()
	if p == nil || p.Pid <= 0 {
		return PidUnknown
	}
	return p.Pid
}
