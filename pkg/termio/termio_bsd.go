//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package termio

import "golang.org/x/sys/unix"

// fread selects the input queue, FREAD in sys/fcntl.h.
const fread = 0x1

func flush(fd int) {
	_ = unix.IoctlSetPointerInt(fd, unix.TIOCFLUSH, fread)
}
