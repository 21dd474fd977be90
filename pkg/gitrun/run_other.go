//go:build !unix

package gitrun

import "os/exec"

func withSysProcAttr(cmd *exec.Cmd) {}
