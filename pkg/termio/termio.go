// Package termio works around type-ahead on interactive terminals.
package termio

import (
	"os"
	"time"

	"golang.org/x/term"
)

// settleDelay gives keystrokes that are still in flight time to arrive
// before the buffer is drained.
const settleDelay = 10 * time.Millisecond

// DiscardPendingInput drops input typed while the model was working, so it
// cannot answer the next prompt. Files that are not terminals are left
// untouched.
func DiscardPendingInput(f *os.File) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return
	}

	flush(fd)
	time.Sleep(settleDelay)
	drain(fd)
}
