//go:build !windows

package process

import (
	"os/exec"
	"syscall"
)

// detach puts the child in its own session so closing the launcher's
// terminal does not signal it.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
