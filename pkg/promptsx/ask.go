package promptsx

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoAnswer is returned when the input ends before a valid answer.
var ErrNoAnswer = errors.New("no answer received")

// AskYesNo writes question to w and reads answers from r line by line until
// one is valid. An empty answer means yes.
func AskYesNo(r io.Reader, w io.Writer, question string) (bool, error) {
	scanner := bufio.NewScanner(r)

	for {
		if _, err := fmt.Fprintf(w, "%s [Y/n] ", question); err != nil {
			return false, err
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return false, fmt.Errorf("failed to read answer: %w", err)
			}
			return false, ErrNoAnswer
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "", "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			if _, err := fmt.Fprintln(w, "Please answer y or n."); err != nil {
				return false, err
			}
		}
	}
}
