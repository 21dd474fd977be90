//go:build unix

package gitrun

import (
	"os/exec"
	"syscall"
)

// withSysProcAttr starts git in its own session so an interrupt aimed at
// the prompt does not reach it.
func withSysProcAttr(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}
}
