//go:build unix

package termio

import (
	"time"

	"golang.org/x/sys/unix"
)

func drain(fd int) {
	if err := unix.SetNonblock(fd, true); err != nil {
		return
	}
	defer unix.SetNonblock(fd, false) //nolint:errcheck

	buf := make([]byte, 1024)
	for range 10 {
		n, err := unix.Read(fd, buf)
		if err != nil || n <= 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
}
