package promptsx

import (
	"io"
	"os"

	"github.com/orochaa/go-clack/prompts"
	"github.com/orochaa/go-clack/third_party/picocolors"

	"github.com/zbiljic/autocommit/pkg/termio"
)

// PromptConfirmer asks on the terminal and offers review of the message.
type PromptConfirmer struct{}

func (PromptConfirmer) Confirm(question string) (approved, review bool, err error) {
	termio.DiscardPendingInput(os.Stdin)

	answer, err := ConfirmEdit(ConfirmEditParams{
		Message:  question + " " + picocolors.Gray("(Ctrl+c to exit)"),
		EditHint: "e to review",
	})
	if err != nil {
		if prompts.IsCancel(err) {
			return false, false, nil
		}
		return false, false, err
	}

	return answer.Value, answer.Edit, nil
}

// LineConfirmer asks a plain yes/no question, for input that is not a
// terminal.
type LineConfirmer struct {
	In  io.Reader
	Out io.Writer
}

func (c LineConfirmer) Confirm(question string) (approved, review bool, err error) {
	approved, err = AskYesNo(c.In, c.Out, question)
	return approved, false, err
}
